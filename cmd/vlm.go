package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/classday/probank/internal/store"
	"github.com/spf13/cobra"
)

var vlmCmd = &cobra.Command{
	Use:   "vlm",
	Short: "Inspect image extraction events",
}

var vlmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent extraction events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		field, _ := cmd.Flags().GetString("field")
		provider, _ := cmd.Flags().GetString("provider")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		events, err := s.EventRepo().QueryVLMEvents(ctx, store.QueryOpts{
			Limit:    limit,
			Field:    field,
			Provider: provider,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No extraction events found.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-19s  %-18s  %-28s  %-8s  %-7s  %s\n",
			"ID", "Timestamp", "Field", "Model", "Bytes", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-18s  %-28s  %-8d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.Field, 18),
				model,
				e.ImageBytes,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var vlmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View the full record of an extraction event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		e, err := s.EventRepo().GetVLMEvent(ctx, id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:        %d\n", e.ID)
		fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Model:     %s\n", e.Model)
		fmt.Printf("Field:     %s\n", e.Field)
		fmt.Printf("Image:     %d bytes\n", e.ImageBytes)
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("RESPONSE EXCERPT")
		fmt.Println(sep)
		if e.ResponseExcerpt != "" {
			fmt.Println(e.ResponseExcerpt)
		} else {
			fmt.Println("(not captured)")
		}

		return nil
	},
}

var vlmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated extraction usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		byField, err := s.EventRepo().VLMUsageByField(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(byField) == 0 {
			fmt.Println("No extraction usage recorded yet.")
			return nil
		}

		fmt.Println("Usage by Field")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-24s  %8s  %8s  %12s  %8s\n",
			"Field", "Requests", "Failed", "Image Bytes", "Avg Ms")
		fmt.Println(strings.Repeat("─", 72))

		var totalReq, totalFail int
		var totalBytes int64
		for _, u := range byField {
			fmt.Printf("%-24s  %8d  %8d  %12d  %8d\n",
				truncate(u.Key, 24), u.Requests, u.Failures, u.TotalBytes, u.AvgLatencyMs)
			totalReq += u.Requests
			totalFail += u.Failures
			totalBytes += u.TotalBytes
		}

		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-24s  %8d  %8d  %12d\n", "TOTAL", totalReq, totalFail, totalBytes)

		byModel, err := s.EventRepo().VLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		if len(byModel) > 0 {
			fmt.Println()
			fmt.Println("Usage by Model")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-32s  %8s  %8s  %8s\n", "Model", "Requests", "Failed", "Avg Ms")
			fmt.Println(strings.Repeat("─", 72))
			for _, u := range byModel {
				fmt.Printf("%-32s  %8d  %8d  %8d\n",
					truncate(u.Key, 32), u.Requests, u.Failures, u.AvgLatencyMs)
			}
		}

		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	vlmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	vlmListCmd.Flags().StringP("field", "f", "", "Filter by field label (e.g. question, answer)")
	vlmListCmd.Flags().StringP("provider", "p", "", "Filter by provider (openai, anthropic, gemini)")

	vlmCmd.AddCommand(vlmListCmd)
	vlmCmd.AddCommand(vlmViewCmd)
	vlmCmd.AddCommand(vlmStatsCmd)
}
