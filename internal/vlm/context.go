package vlm

import "context"

type contextKey string

const fieldKey contextKey = "vlm_field"

// WithField attaches the target field label (e.g. "question", "answer") to
// the context for event logging.
func WithField(ctx context.Context, field string) context.Context {
	return context.WithValue(ctx, fieldKey, field)
}

// FieldFrom extracts the field label from the context.
func FieldFrom(ctx context.Context) string {
	if v, ok := ctx.Value(fieldKey).(string); ok {
		return v
	}
	return "unknown"
}
