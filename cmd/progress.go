package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/certs"
	"github.com/visaetude/prepcore/internal/progression"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show a learner's per-skill CEFR progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		examCode, _ := cmd.Flags().GetString("exam")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		engine := progression.NewEngine(st, certs.NewService(certs.ConfigFromEnv()))
		for _, skill := range cefr.Skills {
			level, err := engine.Progress(cmd.Context(), userID, examCode, skill)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s\n", strings.ToUpper(string(skill)), level)
		}

		global, err := engine.GlobalLevel(cmd.Context(), userID, examCode)
		if err != nil {
			return err
		}
		fmt.Printf("global  %s\n", global)
		return nil
	},
}

func init() {
	progressCmd.Flags().String("user", "", "User identifier")
	progressCmd.Flags().String("exam", "TEF", "Exam code")
}
