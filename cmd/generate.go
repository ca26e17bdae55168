package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/content"
	"github.com/visaetude/prepcore/internal/insertion"
	"github.com/visaetude/prepcore/internal/llm"
	"github.com/visaetude/prepcore/internal/mockexam"
	"github.com/visaetude/prepcore/internal/tts"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and persist learning content",
}

var generateLessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Generate lessons for one section and level",
	RunE:  runGenerateLesson,
}

var generateExamCmd = &cobra.Command{
	Use:   "exam",
	Short: "Generate mock-exam question batches",
	RunE:  runGenerateExam,
}

func init() {
	for _, c := range []*cobra.Command{generateLessonCmd, generateExamCmd} {
		c.Flags().String("exam", "TEF", "Target exam code")
		c.Flags().String("section", "co", "Section: co, ce, eo or ee")
		c.Flags().String("level", "A1", "CEFR level")
		c.Flags().String("language", "fr", "Content language")
		c.Flags().Int("count", 1, "How many lessons/batches to generate")
		c.Flags().Duration("sleep", 0, "Pause between generations (rate limiting)")
		c.Flags().Bool("continue-on-error", false, "Keep going when one generation fails")
	}
	generateCmd.AddCommand(generateLessonCmd)
	generateCmd.AddCommand(generateExamCmd)
}

type generateOpts struct {
	exam     string
	section  cefr.Skill
	level    cefr.Level
	language string
	count    int
	sleep    time.Duration
	keepOn   bool
}

func parseGenerateOpts(cmd *cobra.Command) (*generateOpts, error) {
	examCode, _ := cmd.Flags().GetString("exam")
	sectionStr, _ := cmd.Flags().GetString("section")
	levelStr, _ := cmd.Flags().GetString("level")
	language, _ := cmd.Flags().GetString("language")
	count, _ := cmd.Flags().GetInt("count")
	sleep, _ := cmd.Flags().GetDuration("sleep")
	keepOn, _ := cmd.Flags().GetBool("continue-on-error")

	section := cefr.Skill(sectionStr)
	if !cefr.ValidSkill(section) {
		return nil, fmt.Errorf("invalid section %q: choose one of co, ce, eo, ee", sectionStr)
	}
	level, err := cefr.Parse(levelStr)
	if err != nil {
		return nil, err
	}
	if count < 1 {
		count = 1
	}
	return &generateOpts{
		exam:     examCode,
		section:  section,
		level:    level,
		language: language,
		count:    count,
		sleep:    sleep,
		keepOn:   keepOn,
	}, nil
}

func runGenerateLesson(cmd *cobra.Command, args []string) error {
	opts, err := parseGenerateOpts(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	defer logger.Sync()

	provider, err := llm.NewProvider(cmd.Context(), llm.ConfigFromEnv(), logger)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var synth tts.Synthesizer
	if opts.section == cefr.SkillCO {
		synth, err = tts.New(tts.ConfigFromEnv())
		if err != nil {
			return err
		}
	}

	agent := content.NewAgent(provider)
	inserter := insertion.NewService(st)

	failures := 0
	for i := 0; i < opts.count; i++ {
		if i > 0 && opts.sleep > 0 {
			time.Sleep(opts.sleep)
		}

		payload, err := agent.Generate(cmd.Context(), opts.section, opts.language, opts.level)
		if err != nil {
			failures++
			if !opts.keepOn {
				return fmt.Errorf("generate lesson %d: %w", i+1, err)
			}
			fmt.Fprintf(os.Stderr, "lesson %d failed: %v\n", i+1, err)
			continue
		}

		audioRef := ""
		if synth != nil {
			if script, ok := payload["audio_script"].(string); ok && script != "" {
				audioRef, err = synth.Synthesize(cmd.Context(), script, opts.language)
				if err != nil {
					// A lesson without audio is still usable.
					fmt.Fprintf(os.Stderr, "audio synthesis failed: %v\n", err)
					audioRef = ""
				}
			}
		}

		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		lesson, err := inserter.InsertLesson(cmd.Context(), insertion.LessonInput{
			ExamCode: opts.exam,
			Skill:    opts.section,
			Level:    opts.level,
			Language: opts.language,
			Payload:  raw,
			AudioRef: audioRef,
		})
		if err != nil {
			failures++
			if !opts.keepOn {
				return fmt.Errorf("insert lesson %d: %w", i+1, err)
			}
			fmt.Fprintf(os.Stderr, "insert %d failed: %v\n", i+1, err)
			continue
		}
		fmt.Printf("lesson %d/%d: %s (id=%d)\n", i+1, opts.count, lesson.Slug, lesson.ID)
	}

	if failures > 0 {
		fmt.Printf("Done with %d failure(s).\n", failures)
	}
	return nil
}

func runGenerateExam(cmd *cobra.Command, args []string) error {
	opts, err := parseGenerateOpts(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	defer logger.Sync()

	provider, err := llm.NewProvider(cmd.Context(), llm.ConfigFromEnv(), logger)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	agent := mockexam.NewAgent(provider)
	inserter := insertion.NewService(st)

	failures := 0
	for i := 0; i < opts.count; i++ {
		if i > 0 && opts.sleep > 0 {
			time.Sleep(opts.sleep)
		}

		batch, err := agent.Generate(cmd.Context(), opts.section, opts.level, opts.language)
		if err != nil {
			failures++
			if !opts.keepOn {
				return fmt.Errorf("generate batch %d: %w", i+1, err)
			}
			fmt.Fprintf(os.Stderr, "batch %d failed: %v\n", i+1, err)
			continue
		}

		n, err := inserter.InsertExamBatch(cmd.Context(), opts.exam, opts.section, batch)
		if err != nil {
			failures++
			if !opts.keepOn {
				return fmt.Errorf("insert batch %d: %w", i+1, err)
			}
			fmt.Fprintf(os.Stderr, "insert %d failed: %v\n", i+1, err)
			continue
		}
		fmt.Printf("batch %d/%d: %d question(s) inserted\n", i+1, opts.count, n)
	}

	if failures > 0 {
		fmt.Printf("Done with %d failure(s).\n", failures)
	}
	return nil
}
