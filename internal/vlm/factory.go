package vlm

import (
	"context"
	"fmt"

	"github.com/classday/probank/internal/store"
)

// NewExtractor creates an Extractor from configuration.
// It returns the extractor wrapped with retry and logging middleware.
// eventRepo may be nil to disable journaling.
func NewExtractor(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Extractor, error) {
	var base Extractor
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIExtractor(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicExtractor(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiExtractor(ctx, cfg.Gemini)
	case "mock":
		return NewMockExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown VLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s extractor: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	wrapped := base
	if eventRepo != nil {
		wrapped = WithLogging(wrapped, cfg.Provider, eventRepo)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}

// NewExtractorFromEnv builds an Extractor driven entirely by environment
// variables, falling back to key discovery when the configured provider has
// no credentials.
func NewExtractorFromEnv(ctx context.Context, eventRepo store.EventRepo) (Extractor, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewExtractor(ctx, cfg, eventRepo)
}
