package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Map a raw section result onto an exam's official scale",
	RunE: func(cmd *cobra.Command, args []string) error {
		examCode, _ := cmd.Flags().GetString("exam")
		sectionStr, _ := cmd.Flags().GetString("section")
		raw, _ := cmd.Flags().GetInt("raw")
		total, _ := cmd.Flags().GetInt("total")

		section := cefr.Skill(sectionStr)
		if !cefr.ValidSkill(section) {
			return fmt.Errorf("invalid section %q: choose one of co, ce, eo, ee", sectionStr)
		}

		s, err := scoring.MapScore(examCode, section, raw, total)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s: %d/%d (%.0f%%) → %.0f/%.0f, %s\n",
			strings.ToUpper(examCode), strings.ToUpper(sectionStr),
			s.Raw, s.Total, s.Percent, s.Score, s.Max, s.Band)
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("exam", "TEF", "Exam code: TEF, TCF, DELF or DALF")
	scoreCmd.Flags().String("section", "co", "Section: co, ce, eo or ee")
	scoreCmd.Flags().Int("raw", 0, "Correct answers")
	scoreCmd.Flags().Int("total", 0, "Total questions")
}
