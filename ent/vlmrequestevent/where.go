// Code generated by ent, DO NOT EDIT.

package vlmrequestevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/classday/probank/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldModel, v))
}

// Field applies equality check predicate on the "field" field. It's identical to FieldEQ.
func Field(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldField, v))
}

// ImageBytes applies equality check predicate on the "image_bytes" field. It's identical to ImageBytesEQ.
func ImageBytes(v int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldImageBytes, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ResponseExcerpt applies equality check predicate on the "response_excerpt" field. It's identical to ResponseExcerptEQ.
func ResponseExcerpt(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldResponseExcerpt, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldContainsFold(FieldModel, v))
}

// FieldEQ applies the EQ predicate on the "field" field.
func FieldEQ(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldField, v))
}

// FieldNEQ applies the NEQ predicate on the "field" field.
func FieldNEQ(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNEQ(FieldField, v))
}

// FieldIn applies the In predicate on the "field" field.
func FieldIn(vs ...string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldIn(FieldField, vs...))
}

// FieldNotIn applies the NotIn predicate on the "field" field.
func FieldNotIn(vs ...string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNotIn(FieldField, vs...))
}

// FieldGT applies the GT predicate on the "field" field.
func FieldGT(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGT(FieldField, v))
}

// FieldGTE applies the GTE predicate on the "field" field.
func FieldGTE(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGTE(FieldField, v))
}

// FieldLT applies the LT predicate on the "field" field.
func FieldLT(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLT(FieldField, v))
}

// FieldLTE applies the LTE predicate on the "field" field.
func FieldLTE(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLTE(FieldField, v))
}

// FieldContains applies the Contains predicate on the "field" field.
func FieldContains(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldContains(FieldField, v))
}

// FieldHasPrefix applies the HasPrefix predicate on the "field" field.
func FieldHasPrefix(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldHasPrefix(FieldField, v))
}

// FieldHasSuffix applies the HasSuffix predicate on the "field" field.
func FieldHasSuffix(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldHasSuffix(FieldField, v))
}

// FieldEqualFold applies the EqualFold predicate on the "field" field.
func FieldEqualFold(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEqualFold(FieldField, v))
}

// FieldContainsFold applies the ContainsFold predicate on the "field" field.
func FieldContainsFold(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldContainsFold(FieldField, v))
}

// ImageBytesEQ applies the EQ predicate on the "image_bytes" field.
func ImageBytesEQ(v int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldImageBytes, v))
}

// ImageBytesNEQ applies the NEQ predicate on the "image_bytes" field.
func ImageBytesNEQ(v int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNEQ(FieldImageBytes, v))
}

// ImageBytesIn applies the In predicate on the "image_bytes" field.
func ImageBytesIn(vs ...int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldIn(FieldImageBytes, vs...))
}

// ImageBytesNotIn applies the NotIn predicate on the "image_bytes" field.
func ImageBytesNotIn(vs ...int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNotIn(FieldImageBytes, vs...))
}

// ImageBytesGT applies the GT predicate on the "image_bytes" field.
func ImageBytesGT(v int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGT(FieldImageBytes, v))
}

// ImageBytesGTE applies the GTE predicate on the "image_bytes" field.
func ImageBytesGTE(v int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGTE(FieldImageBytes, v))
}

// ImageBytesLT applies the LT predicate on the "image_bytes" field.
func ImageBytesLT(v int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLT(FieldImageBytes, v))
}

// ImageBytesLTE applies the LTE predicate on the "image_bytes" field.
func ImageBytesLTE(v int) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLTE(FieldImageBytes, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ResponseExcerptEQ applies the EQ predicate on the "response_excerpt" field.
func ResponseExcerptEQ(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEQ(FieldResponseExcerpt, v))
}

// ResponseExcerptNEQ applies the NEQ predicate on the "response_excerpt" field.
func ResponseExcerptNEQ(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNEQ(FieldResponseExcerpt, v))
}

// ResponseExcerptIn applies the In predicate on the "response_excerpt" field.
func ResponseExcerptIn(vs ...string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldIn(FieldResponseExcerpt, vs...))
}

// ResponseExcerptNotIn applies the NotIn predicate on the "response_excerpt" field.
func ResponseExcerptNotIn(vs ...string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldNotIn(FieldResponseExcerpt, vs...))
}

// ResponseExcerptGT applies the GT predicate on the "response_excerpt" field.
func ResponseExcerptGT(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGT(FieldResponseExcerpt, v))
}

// ResponseExcerptGTE applies the GTE predicate on the "response_excerpt" field.
func ResponseExcerptGTE(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldGTE(FieldResponseExcerpt, v))
}

// ResponseExcerptLT applies the LT predicate on the "response_excerpt" field.
func ResponseExcerptLT(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLT(FieldResponseExcerpt, v))
}

// ResponseExcerptLTE applies the LTE predicate on the "response_excerpt" field.
func ResponseExcerptLTE(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldLTE(FieldResponseExcerpt, v))
}

// ResponseExcerptContains applies the Contains predicate on the "response_excerpt" field.
func ResponseExcerptContains(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldContains(FieldResponseExcerpt, v))
}

// ResponseExcerptHasPrefix applies the HasPrefix predicate on the "response_excerpt" field.
func ResponseExcerptHasPrefix(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldHasPrefix(FieldResponseExcerpt, v))
}

// ResponseExcerptHasSuffix applies the HasSuffix predicate on the "response_excerpt" field.
func ResponseExcerptHasSuffix(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldHasSuffix(FieldResponseExcerpt, v))
}

// ResponseExcerptEqualFold applies the EqualFold predicate on the "response_excerpt" field.
func ResponseExcerptEqualFold(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldEqualFold(FieldResponseExcerpt, v))
}

// ResponseExcerptContainsFold applies the ContainsFold predicate on the "response_excerpt" field.
func ResponseExcerptContainsFold(v string) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.FieldContainsFold(FieldResponseExcerpt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VLMRequestEvent) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VLMRequestEvent) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VLMRequestEvent) predicate.VLMRequestEvent {
	return predicate.VLMRequestEvent(sql.NotPredicates(p))
}
