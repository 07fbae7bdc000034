package cmd

import (
	"errors"
	"fmt"

	"github.com/classday/probank/internal/bank"
	"github.com/classday/probank/internal/bankfile"
	"github.com/classday/probank/internal/catalog"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a bank JSON file and summarize its structure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := bankfile.ReadFile(args[0])
		if err != nil {
			var ferr *bankfile.FormatError
			if errors.As(err, &ferr) && ferr.Index >= 0 {
				return fmt.Errorf("%s: element %d is invalid: %v", args[0], ferr.Index, ferr.Err)
			}
			return fmt.Errorf("%s: %w", args[0], err)
		}

		groups := bank.BuildGroups(records)
		grouped := 0
		for _, g := range groups {
			grouped += 1 + len(g.Children)
		}
		orphans := len(records) - grouped

		fmt.Printf("%s: %d records, %d groups", args[0], len(records), len(groups))
		if orphans > 0 {
			fmt.Printf(", %d orphaned", orphans)
		}
		fmt.Println()

		if top, sub, ok := bankfile.InferSelection(records); ok {
			topLabel := ""
			for _, t := range catalog.TopLevels() {
				if t.ID == top {
					topLabel = t.Label
				}
			}
			subLabel, _ := catalog.SubLevelLabel(sub)
			fmt.Printf("category: %s › %s %s\n", topLabel, catalog.ChapterNumberOrRaw(sub), subLabel)
		} else {
			fmt.Println("category: not recognized")
		}
		return nil
	},
}
