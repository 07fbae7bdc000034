package cmd

import (
	"github.com/classday/probank/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "probank [file]",
	Short: "Bilingual math problem bank editor",
	Long: "Probank — terminal editor for Korean/English math problem banks with\n" +
		"parent/child grouping, JSON import/export, and image-to-text extraction.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PROBANK_DB env var)")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(vlmCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PROBANK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
