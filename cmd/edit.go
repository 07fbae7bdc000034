package cmd

import (
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Import a bank JSON file and open it in the editor",
	Args:  cobra.ExactArgs(1),
	RunE:  runApp,
}

func init() {
	rootCmd.AddCommand(editCmd)
}
