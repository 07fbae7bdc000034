package vlm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryExtractor is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryExtractor struct {
	inner  Extractor
	config RetryConfig
}

// WithRetry wraps an Extractor with retry logic.
func WithRetry(e Extractor, cfg RetryConfig) Extractor {
	return &RetryExtractor{inner: e, config: cfg}
}

func (r *RetryExtractor) Extract(ctx context.Context, img Image) (*Extraction, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		result, err := r.inner.Extract(ctx, img)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return nil, err
		}

		// Last attempt: return the error without sleeping.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *RetryExtractor) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry determines if an error is retryable.
func shouldRetry(err error) bool {
	// Context errors are never retried; a cancelled or timed-out extraction
	// is done.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// An empty response will not improve on retry of the same image.
	var empty *ErrEmptyResponse
	if errors.As(err, &empty) {
		return false
	}

	// Rate limit and provider unavailable are retryable; other errors
	// (network, etc.) are treated as transient too.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *RetryExtractor) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
