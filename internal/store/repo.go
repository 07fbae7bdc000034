package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	After    int64     // sequence > After
	Before   int64     // sequence < Before
	From     time.Time // timestamp >= From
	To       time.Time // timestamp <= To
	Provider string    // exact provider match ("" = any)
	Field    string    // exact field label match ("" = any)
}

// VLMRequestEventData captures the data for a single image extraction event.
type VLMRequestEventData struct {
	Provider        string
	Model           string
	Field           string
	ImageBytes      int
	LatencyMs       int64
	Success         bool
	ErrorMessage    string
	ResponseExcerpt string
}

// VLMEvent is a persisted extraction event as read back from the journal.
type VLMEvent struct {
	ID              int
	Sequence        int64
	Timestamp       time.Time
	Provider        string
	Model           string
	Field           string
	ImageBytes      int
	LatencyMs       int64
	Success         bool
	ErrorMessage    string
	ResponseExcerpt string
}

// VLMUsage aggregates extraction activity for one grouping key.
type VLMUsage struct {
	Key          string // field label or model ID depending on the query
	Requests     int
	Failures     int
	TotalBytes   int64
	AvgLatencyMs int64
}

// EventRepo provides append and query access to the extraction journal.
type EventRepo interface {
	// AppendVLMRequest records an image extraction call.
	AppendVLMRequest(ctx context.Context, data VLMRequestEventData) error

	// QueryVLMEvents returns events newest-first, filtered by opts.
	QueryVLMEvents(ctx context.Context, opts QueryOpts) ([]VLMEvent, error)

	// GetVLMEvent returns a single event by ID, or nil if not found.
	GetVLMEvent(ctx context.Context, id int) (*VLMEvent, error)

	// VLMUsageByField aggregates usage per target field label.
	VLMUsageByField(ctx context.Context) ([]VLMUsage, error)

	// VLMUsageByModel aggregates usage per model ID.
	VLMUsageByModel(ctx context.Context) ([]VLMUsage, error)
}
