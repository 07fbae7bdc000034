package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/classday/probank/ent"
	"github.com/classday/probank/ent/vlmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	db     *sql.DB
	seq    *sequenceCounter
}

func (r *eventRepo) AppendVLMRequest(ctx context.Context, data VLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.VLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetField(data.Field).
		SetImageBytes(data.ImageBytes).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetResponseExcerpt(data.ResponseExcerpt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save VLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryVLMEvents(ctx context.Context, opts QueryOpts) ([]VLMEvent, error) {
	q := r.client.VLMRequestEvent.Query()

	if opts.After > 0 {
		q = q.Where(vlmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(vlmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(vlmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(vlmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Provider != "" {
		q = q.Where(vlmrequestevent.ProviderEQ(opts.Provider))
	}
	if opts.Field != "" {
		q = q.Where(vlmrequestevent.FieldEQ(opts.Field))
	}

	q = q.Order(ent.Desc(vlmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query VLM events: %w", err)
	}

	events := make([]VLMEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, toVLMEvent(row))
	}
	return events, nil
}

func (r *eventRepo) GetVLMEvent(ctx context.Context, id int) (*VLMEvent, error) {
	row, err := r.client.VLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get VLM event %d: %w", id, err)
	}
	e := toVLMEvent(row)
	return &e, nil
}

func (r *eventRepo) VLMUsageByField(ctx context.Context) ([]VLMUsage, error) {
	return r.usageBy(ctx, "field")
}

func (r *eventRepo) VLMUsageByModel(ctx context.Context) ([]VLMUsage, error) {
	return r.usageBy(ctx, "model")
}

// usageBy aggregates the journal grouped by the given column. Raw SQL
// because ent's GroupBy can't express the conditional failure count in a
// single pass.
func (r *eventRepo) usageBy(ctx context.Context, column string) ([]VLMUsage, error) {
	query := fmt.Sprintf(`SELECT %s,
		COUNT(*),
		SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END),
		COALESCE(SUM(image_bytes), 0),
		COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0)
	FROM vlm_request_events
	GROUP BY %s
	ORDER BY COUNT(*) DESC`, column, column)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("usage by %s: %w", column, err)
	}
	defer rows.Close()

	var stats []VLMUsage
	for rows.Next() {
		var u VLMUsage
		if err := rows.Scan(&u.Key, &u.Requests, &u.Failures, &u.TotalBytes, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		stats = append(stats, u)
	}
	return stats, rows.Err()
}

func toVLMEvent(row *ent.VLMRequestEvent) VLMEvent {
	return VLMEvent{
		ID:              row.ID,
		Sequence:        row.Sequence,
		Timestamp:       row.Timestamp,
		Provider:        row.Provider,
		Model:           row.Model,
		Field:           row.Field,
		ImageBytes:      row.ImageBytes,
		LatencyMs:       row.LatencyMs,
		Success:         row.Success,
		ErrorMessage:    row.ErrorMessage,
		ResponseExcerpt: row.ResponseExcerpt,
	}
}
