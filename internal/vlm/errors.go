package vlm

import (
	"fmt"
	"time"
)

// BridgeError is the single error surfaced to editing flows: the extraction
// call failed, timed out, or returned a non-success status. The image preview
// a caller applied optimistically stays; the record's text fields are left
// unchanged.
type BridgeError struct {
	Err error
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("image extraction failed: %v", e.Err)
}

func (e *BridgeError) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("VLM provider unavailable: %v", e.Err)
	}
	return "VLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the provider returned no usable content at all.
// Malformed content is not an error (the parser falls back to raw text);
// this covers responses with no choices or empty text.
type ErrEmptyResponse struct {
	Err error
}

func (e *ErrEmptyResponse) Error() string {
	return fmt.Sprintf("empty VLM response: %v", e.Err)
}

func (e *ErrEmptyResponse) Unwrap() error { return e.Err }
