package vlm

import (
	"context"
	"sync"
	"time"
)

// Bridge is the editor-facing facade over an Extractor. It enforces the
// configured per-request timeout, tags each request with the target field,
// and wraps every failure in *BridgeError so callers handle a single error
// shape.
//
// Bridge also tracks a per-field request sequence. Image uploads race when
// the user swaps an image while an extraction is in flight; callers take a
// token with Begin before dispatching and compare it against Current when
// the response lands, dropping anything stale.
type Bridge struct {
	extractor Extractor
	timeout   time.Duration

	mu  sync.Mutex
	seq map[string]uint64
}

// NewBridge creates a Bridge. A zero timeout falls back to the default.
func NewBridge(extractor Extractor, timeout time.Duration) *Bridge {
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	return &Bridge{
		extractor: extractor,
		timeout:   timeout,
		seq:       make(map[string]uint64),
	}
}

// ModelID reports the underlying extractor's model.
func (b *Bridge) ModelID() string {
	return b.extractor.ModelID()
}

// Begin registers a new request for field and returns its sequence token.
// Any in-flight request for the same field becomes stale.
func (b *Bridge) Begin(field string) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq[field]++
	return b.seq[field]
}

// Current returns the newest sequence token issued for field. A response
// carrying an older token must be discarded.
func (b *Bridge) Current(field string) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.seq[field]
}

// ExtractField runs an extraction for the named field with the bridge
// timeout applied. On any failure the returned error is a *BridgeError;
// the caller's record fields must be left untouched in that case.
func (b *Bridge) ExtractField(ctx context.Context, field string, img Image) (*Extraction, error) {
	ctx, cancel := context.WithTimeout(WithField(ctx, field), b.timeout)
	defer cancel()

	ext, err := b.extractor.Extract(ctx, img)
	if err != nil {
		return nil, &BridgeError{Err: err}
	}
	return ext, nil
}
