package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VLMRequestEvent records every image extraction call for auditing and
// debugging. The response excerpt keeps the journal readable without
// storing full model output.
type VLMRequestEvent struct {
	ent.Schema
}

func (VLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (VLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Provider name: openai, anthropic, gemini, mock"),
		field.String("model").
			Comment("Actual model ID used"),
		field.String("field").
			Comment("Target field label: question, answer"),
		field.Int("image_bytes").
			Default(0).
			Comment("Size of the uploaded image in bytes"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the request"),
		field.Bool("success").
			Comment("Whether the extraction succeeded"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
		field.Text("response_excerpt").
			Default("").
			Comment("Leading portion of the extracted text"),
	}
}

func (VLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("field"),
		index.Fields("success"),
	}
}
