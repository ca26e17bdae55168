package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/visaetude/prepcore/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepcore",
	Short: "CEFR exam preparation engine",
	Long:  "Prepcore — content generation, mock exams, scoring and certification for French proficiency tests (TEF, TCF, DELF, DALF).",
}

func Execute() error {
	// Optional .env for local setups; real deployments set the
	// environment directly.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPCORE_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(certsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(evaluateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PREPCORE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
