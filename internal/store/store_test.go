package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryVLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []VLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o", Field: "question", ImageBytes: 1024, LatencyMs: 400, Success: true, ResponseExcerpt: "이차방정식"},
		{Provider: "openai", Model: "gpt-4o", Field: "answer", ImageBytes: 512, LatencyMs: 250, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Field: "question", ImageBytes: 2048, LatencyMs: 900, Success: false, ErrorMessage: "rate limited"},
	}
	for i, d := range data {
		if err := repo.AppendVLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryVLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Provider != "gemini" {
		t.Errorf("events[0].Provider = %q, want gemini", events[0].Provider)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}
	if events[2].ResponseExcerpt != "이차방정식" {
		t.Errorf("excerpt = %q", events[2].ResponseExcerpt)
	}
}

func TestQueryVLMEventsFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		field := "question"
		if i%2 == 1 {
			field = "answer"
		}
		err := repo.AppendVLMRequest(ctx, VLMRequestEventData{
			Provider: "mock", Model: "mock", Field: field, Success: true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byField, err := repo.QueryVLMEvents(ctx, QueryOpts{Field: "answer"})
	if err != nil {
		t.Fatalf("query by field: %v", err)
	}
	if len(byField) != 2 {
		t.Errorf("got %d answer events, want 2", len(byField))
	}

	limited, err := repo.QueryVLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d events with limit 1", len(limited))
	}

	after, err := repo.QueryVLMEvents(ctx, QueryOpts{After: limited[0].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 0 {
		t.Errorf("got %d events after newest, want 0", len(after))
	}
}

func TestGetVLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendVLMRequest(ctx, VLMRequestEventData{
		Provider: "anthropic", Model: "claude-3-5-haiku-latest", Field: "question", Success: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryVLMEvents(ctx, QueryOpts{})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (len %d)", err, len(events))
	}

	e, err := repo.GetVLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Provider != "anthropic" {
		t.Fatalf("got %+v", e)
	}

	missing, err := repo.GetVLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestVLMUsageByField(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []VLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o", Field: "question", ImageBytes: 100, LatencyMs: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o", Field: "question", ImageBytes: 300, LatencyMs: 400, Success: false, ErrorMessage: "timeout"},
		{Provider: "openai", Model: "gpt-4o", Field: "answer", ImageBytes: 50, LatencyMs: 100, Success: true},
	}
	for i, d := range seed {
		if err := repo.AppendVLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.VLMUsageByField(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d groups, want 2", len(stats))
	}

	// Sorted by request count descending, so "question" comes first.
	q := stats[0]
	if q.Key != "question" || q.Requests != 2 || q.Failures != 1 {
		t.Errorf("question stats = %+v", q)
	}
	if q.TotalBytes != 400 {
		t.Errorf("question bytes = %d, want 400", q.TotalBytes)
	}
	if q.AvgLatencyMs != 300 {
		t.Errorf("question avg latency = %d, want 300", q.AvgLatencyMs)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='vlm_request_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "vlm_request_events" {
		t.Errorf("table name = %q, want 'vlm_request_events'", name)
	}
}
