package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visaetude/prepcore/internal/examdef"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed exam formats into the database",
	Long:  "Creates the TEF, TCF, DELF and DALF exams with their sections. Existing exams are left untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		formats := examdef.Defaults()
		if path, _ := cmd.Flags().GetString("formats"); path != "" {
			var err error
			formats, err = examdef.Load(path)
			if err != nil {
				return err
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		created, err := examdef.Seed(cmd.Context(), st, formats)
		if err != nil {
			return err
		}
		fmt.Printf("Seeded %d exam(s), %d already present.\n", created, len(formats)-created)
		return nil
	},
}

func init() {
	seedCmd.Flags().String("formats", "", "YAML file of exam formats (defaults to the built-in TEF/TCF/DELF/DALF set)")
}
