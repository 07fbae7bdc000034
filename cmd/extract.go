package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/classday/probank/internal/vlm"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract bilingual problem text from an image (no database)",
	Long: `Send a problem image through the configured VLM provider and print the
recognized {korean, english} pair.

This is a stateless developer tool — no database, no event journal. Useful
for evaluating extraction quality and testing provider configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("field", "question", "Field label recorded with the request: question or answer")
	extractCmd.Flags().Bool("json", false, "Print the raw JSON result")
}

func runExtract(cmd *cobra.Command, args []string) error {
	field, _ := cmd.Flags().GetString("field")
	asJSON, _ := cmd.Flags().GetBool("json")

	if field != "question" && field != "answer" {
		return fmt.Errorf("invalid field %q: must be question or answer", field)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	// No EventRepo, so nothing is journaled.
	ctx := context.Background()
	extractor, err := vlm.NewExtractorFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("VLM provider: %w", err)
	}
	bridge := vlm.NewBridge(extractor, vlm.ConfigFromEnv().Timeout)

	img := vlm.Image{Data: data, MIME: imageMIME(args[0])}
	result, err := bridge.ExtractField(ctx, field, img)
	if err != nil {
		return err
	}

	if asJSON {
		out, err := json.MarshalIndent(map[string]string{
			"korean":  result.Korean,
			"english": result.English,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Model: %s\n\n", bridge.ModelID())
	fmt.Println("── Korean ──")
	fmt.Println(result.Korean)
	if result.English != "" {
		fmt.Println("\n── English ──")
		fmt.Println(result.English)
	}
	return nil
}

func imageMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
