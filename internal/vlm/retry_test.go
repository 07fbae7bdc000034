package vlm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockExtractor(
		MockResult{Extraction: Extraction{Korean: "문제"}},
	)
	e := WithRetry(mock, retryConfig())

	ext, err := e.Extract(context.Background(), testImage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ext.Korean != "문제" {
		t.Fatalf("korean = %q", ext.Korean)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockExtractor(
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Extraction: Extraction{Korean: "문제"}},
	)
	e := WithRetry(mock, retryConfig())

	ext, err := e.Extract(context.Background(), testImage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ext.Korean != "문제" {
		t.Fatalf("korean = %q", ext.Korean)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockExtractor(
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	e := WithRetry(mock, retryConfig())

	_, err := e.Extract(context.Background(), testImage())
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_EmptyResponseNotRetried(t *testing.T) {
	mock := NewMockExtractor(
		MockResult{Err: &ErrEmptyResponse{Err: errors.New("no choices")}},
		MockResult{Extraction: Extraction{Korean: "문제"}}, // Won't be reached.
	)
	e := WithRetry(mock, retryConfig())

	_, err := e.Extract(context.Background(), testImage())
	if err == nil {
		t.Fatal("expected error")
	}
	var empty *ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyResponse, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockExtractor(
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Extraction: Extraction{Korean: "문제"}},
	)
	e := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately.

	_, err := e.Extract(ctx, testImage())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMockExtractor(
		MockResult{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		MockResult{Extraction: Extraction{Korean: "문제"}},
	)
	e := WithRetry(mock, retryConfig())

	ext, err := e.Extract(context.Background(), testImage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ext.Korean != "문제" {
		t.Fatalf("korean = %q", ext.Korean)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	mock := NewMockExtractor()
	e := WithRetry(mock, retryConfig())
	if e.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", e.ModelID())
	}
}
