package vlm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/classday/probank/internal/store"
)

// excerptLen bounds the response text stored in the journal.
const excerptLen = 500

// LoggingExtractor is a decorator that records every extraction call as an event.
type LoggingExtractor struct {
	inner     Extractor
	provider  string
	eventRepo store.EventRepo
}

// WithLogging wraps an Extractor with event logging. The provider label is
// recorded alongside the model ID so journal queries can group by backend.
func WithLogging(e Extractor, provider string, repo store.EventRepo) Extractor {
	return &LoggingExtractor{inner: e, provider: provider, eventRepo: repo}
}

func (l *LoggingExtractor) Extract(ctx context.Context, img Image) (*Extraction, error) {
	start := time.Now()

	ext, err := l.inner.Extract(ctx, img)

	data := store.VLMRequestEventData{
		Provider:   l.provider,
		Model:      l.inner.ModelID(),
		Field:      FieldFrom(ctx),
		ImageBytes: len(img.Data),
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}

	if ext != nil {
		data.ResponseExcerpt = excerpt(ext.Korean)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the extraction if logging fails.
	if logErr := l.eventRepo.AppendVLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log VLM request event: %v\n", logErr)
	}

	return ext, err
}

func (l *LoggingExtractor) ModelID() string {
	return l.inner.ModelID()
}

func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptLen {
		return s
	}
	return string(runes[:excerptLen])
}
