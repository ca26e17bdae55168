package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/certs"
)

var certsCmd = &cobra.Command{
	Use:   "certs",
	Short: "Issue and verify CEFR certificates",
}

var certsIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a certificate for a user and level",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		examCode, _ := cmd.Flags().GetString("exam")
		levelStr, _ := cmd.Flags().GetString("level")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		level, err := cefr.Parse(levelStr)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := certs.NewService(certs.ConfigFromEnv())
		issuance, err := svc.Issue(cmd.Context(), st.Client(), userID, examCode, level)
		if err != nil {
			return err
		}
		if issuance.Created {
			fmt.Printf("Issued %s: %s\n", issuance.PublicID, issuance.PDFPath)
		} else {
			fmt.Printf("Already issued %s: %s\n", issuance.PublicID, issuance.PDFPath)
		}
		fmt.Println(svc.VerifyURL(issuance.PublicID))
		return nil
	},
}

var certsVerifyCmd = &cobra.Command{
	Use:   "verify <public-id>",
	Short: "Verify a certificate by its public ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := certs.NewService(certs.ConfigFromEnv())
		cert, err := svc.Verify(cmd.Context(), st.Client(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Valid: %s — %s %s, issued %s\n",
			cert.PublicID, cert.ExamCode, cert.Level, cert.IssuedAt.Format("2006-01-02"))
		return nil
	},
}

var certsRenderCmd = &cobra.Command{
	Use:   "render <public-id>",
	Short: "Re-render the PDF of an issued certificate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := certs.NewService(certs.ConfigFromEnv())
		path, err := svc.Render(cmd.Context(), st.Client(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	certsIssueCmd.Flags().String("user", "", "User identifier")
	certsIssueCmd.Flags().String("exam", "TEF", "Exam code")
	certsIssueCmd.Flags().String("level", "A2", "Certified CEFR level")

	certsCmd.AddCommand(certsIssueCmd)
	certsCmd.AddCommand(certsVerifyCmd)
	certsCmd.AddCommand(certsRenderCmd)
}
