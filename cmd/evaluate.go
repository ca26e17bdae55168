package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/visaetude/prepcore/internal/evaluator"
	"github.com/visaetude/prepcore/internal/llm"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score productive work (speaking and writing)",
}

var evaluateWritingCmd = &cobra.Command{
	Use:   "ee <text-file>",
	Short: "Evaluate a written production",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		e, err := newEvaluator(cmd)
		if err != nil {
			return err
		}

		topic, _ := cmd.Flags().GetString("topic")
		instructions, _ := cmd.Flags().GetString("instructions")
		level, _ := cmd.Flags().GetString("level")

		result, err := e.EvaluateWriting(cmd.Context(), evaluator.WritingInput{
			Text:         string(text),
			Topic:        topic,
			Instructions: instructions,
			Level:        level,
		})
		if err != nil {
			return err
		}

		fmt.Printf("score: %d/100\n%s\n", result.Score, result.Feedback)
		for _, c := range result.Errors {
			fmt.Printf("- %s → %s (%s)\n", c.Original, c.Correction, c.Rule)
		}
		return nil
	},
}

var evaluateSpeakingCmd = &cobra.Command{
	Use:   "eo <audio-file>",
	Short: "Transcribe and evaluate a speaking recording",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mock := os.Getenv("PREPCORE_EVAL_MOCK") == "1"
		transcriber, err := evaluator.NewTranscriber(mock,
			os.Getenv("PREPCORE_LLM_API_KEY"), os.Getenv("PREPCORE_LLM_BASE_URL"))
		if err != nil {
			return err
		}

		transcript, err := transcriber.Transcribe(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		e, err := newEvaluator(cmd)
		if err != nil {
			return err
		}

		topic, _ := cmd.Flags().GetString("topic")
		instructions, _ := cmd.Flags().GetString("instructions")
		level, _ := cmd.Flags().GetString("level")

		result, err := e.EvaluateSpeaking(cmd.Context(), evaluator.SpeakingInput{
			Transcript:   transcript,
			Topic:        topic,
			Instructions: instructions,
			Level:        level,
		})
		if err != nil {
			return err
		}

		fmt.Printf("score: %d/100\n%s\n", result.Score, result.Feedback)
		for _, s := range result.Suggestions {
			fmt.Printf("- %s\n", s)
		}
		return nil
	},
}

func newEvaluator(cmd *cobra.Command) (*evaluator.Evaluator, error) {
	logger := newLogger(cmd)
	provider, err := llm.NewProvider(cmd.Context(), llm.ConfigFromEnv(), logger)
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}
	mock := os.Getenv("PREPCORE_EVAL_MOCK") == "1"
	return evaluator.New(provider, logger).WithMockMode(mock), nil
}

func init() {
	for _, c := range []*cobra.Command{evaluateWritingCmd, evaluateSpeakingCmd} {
		c.Flags().String("topic", "", "Task topic")
		c.Flags().String("instructions", "", "Task instructions")
		c.Flags().String("level", "B1", "Expected CEFR level")
	}
	evaluateCmd.AddCommand(evaluateWritingCmd)
	evaluateCmd.AddCommand(evaluateSpeakingCmd)
}
