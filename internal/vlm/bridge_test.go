package vlm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBridge_WrapsFailuresInBridgeError(t *testing.T) {
	mock := NewMockExtractor(
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	b := NewBridge(mock, time.Second)

	_, err := b.ExtractField(context.Background(), "question", testImage())
	if err == nil {
		t.Fatal("expected error")
	}
	var be *BridgeError
	if !errors.As(err, &be) {
		t.Fatalf("expected BridgeError, got %T (%v)", err, err)
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatal("expected BridgeError to wrap the cause")
	}
}

func TestBridge_Success(t *testing.T) {
	mock := NewMockExtractor(
		MockResult{Extraction: Extraction{Korean: "문제", English: "problem"}},
	)
	b := NewBridge(mock, time.Second)

	ext, err := b.ExtractField(context.Background(), "question", testImage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ext.Korean != "문제" || ext.English != "problem" {
		t.Fatalf("got %+v", ext)
	}
}

func TestBridge_TimeoutBecomesBridgeError(t *testing.T) {
	slow := extractorFunc(func(ctx context.Context, _ Image) (*Extraction, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	b := NewBridge(slow, 5*time.Millisecond)

	start := time.Now()
	_, err := b.ExtractField(context.Background(), "answer", testImage())
	if err == nil {
		t.Fatal("expected error")
	}
	var be *BridgeError
	if !errors.As(err, &be) {
		t.Fatalf("expected BridgeError, got %T", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("timeout did not fire promptly")
	}
}

func TestBridge_FieldFlowsToContext(t *testing.T) {
	var got string
	e := extractorFunc(func(ctx context.Context, _ Image) (*Extraction, error) {
		got = FieldFrom(ctx)
		return &Extraction{Korean: "ok"}, nil
	})
	b := NewBridge(e, time.Second)

	if _, err := b.ExtractField(context.Background(), "question", testImage()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "question" {
		t.Fatalf("field in context = %q", got)
	}
}

func TestBridge_SequenceTokens(t *testing.T) {
	b := NewBridge(NewMockExtractor(), time.Second)

	q1 := b.Begin("question")
	a1 := b.Begin("answer")
	q2 := b.Begin("question")

	if q1 != 1 || q2 != 2 {
		t.Fatalf("question tokens = %d, %d", q1, q2)
	}
	if a1 != 1 {
		t.Fatalf("answer token = %d, fields must sequence independently", a1)
	}

	// The older question request is now stale.
	if b.Current("question") == q1 {
		t.Fatal("expected first question token to be stale")
	}
	if b.Current("question") != q2 {
		t.Fatalf("current question token = %d, want %d", b.Current("question"), q2)
	}
	if b.Current("answer") != a1 {
		t.Fatalf("current answer token = %d, want %d", b.Current("answer"), a1)
	}
}

// extractorFunc adapts a function to the Extractor interface for tests.
type extractorFunc func(ctx context.Context, img Image) (*Extraction, error)

func (f extractorFunc) Extract(ctx context.Context, img Image) (*Extraction, error) {
	return f(ctx, img)
}

func (f extractorFunc) ModelID() string { return "func" }
