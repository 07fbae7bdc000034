package cmd

import (
	"fmt"
	"os"

	"github.com/classday/probank/internal/app"
	"github.com/classday/probank/internal/bank"
	"github.com/classday/probank/internal/bankfile"
	"github.com/classday/probank/internal/store"
	"github.com/classday/probank/internal/vlm"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// A bank file argument is imported before the editor opens.
func runApp(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	bankStore := bank.NewStore()
	opts := app.Options{Store: bankStore}

	if len(args) == 1 {
		records, err := bankfile.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}
		bankStore.Load(records)
		if top, sub, ok := bankfile.InferSelection(records); ok {
			bankStore.SetSelection(top, sub)
		}
		opts.StartEditor = true
	}

	extractor, err := vlm.NewExtractorFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "VLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Image extraction will be unavailable.")
	} else {
		opts.Bridge = vlm.NewBridge(extractor, vlm.ConfigFromEnv().Timeout)
	}

	return app.Run(opts)
}
