package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mightyhq/prepcore/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepcore",
	Short: "Adaptive SAT practice engine",
	Long:  "Prepcore provides diagnostic scoring, daily practice plans, and stress tracking for SAT prep.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPCORE_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "User ID to operate on")

	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(stressCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PREPCORE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}

// userID returns the --user flag value.
func userID(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	return u
}

// newLogger builds the CLI logger. Level comes from PREPCORE_LOG_LEVEL
// (zerolog level names); default is warn so normal runs stay quiet.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if s := os.Getenv("PREPCORE_LOG_LEVEL"); s != "" {
		if parsed, err := zerolog.ParseLevel(s); err == nil {
			level = parsed
		}
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
