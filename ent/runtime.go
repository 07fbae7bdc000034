// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/classday/probank/ent/schema"
	"github.com/classday/probank/ent/vlmrequestevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	vlmrequesteventMixin := schema.VLMRequestEvent{}.Mixin()
	vlmrequesteventMixinFields0 := vlmrequesteventMixin[0].Fields()
	_ = vlmrequesteventMixinFields0
	vlmrequesteventFields := schema.VLMRequestEvent{}.Fields()
	_ = vlmrequesteventFields
	// vlmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	vlmrequesteventDescTimestamp := vlmrequesteventMixinFields0[1].Descriptor()
	// vlmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	vlmrequestevent.DefaultTimestamp = vlmrequesteventDescTimestamp.Default.(func() time.Time)
	// vlmrequesteventDescImageBytes is the schema descriptor for image_bytes field.
	vlmrequesteventDescImageBytes := vlmrequesteventFields[3].Descriptor()
	// vlmrequestevent.DefaultImageBytes holds the default value on creation for the image_bytes field.
	vlmrequestevent.DefaultImageBytes = vlmrequesteventDescImageBytes.Default.(int)
	// vlmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	vlmrequesteventDescLatencyMs := vlmrequesteventFields[4].Descriptor()
	// vlmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	vlmrequestevent.DefaultLatencyMs = vlmrequesteventDescLatencyMs.Default.(int64)
	// vlmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	vlmrequesteventDescErrorMessage := vlmrequesteventFields[6].Descriptor()
	// vlmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	vlmrequestevent.DefaultErrorMessage = vlmrequesteventDescErrorMessage.Default.(string)
	// vlmrequesteventDescResponseExcerpt is the schema descriptor for response_excerpt field.
	vlmrequesteventDescResponseExcerpt := vlmrequesteventFields[7].Descriptor()
	// vlmrequestevent.DefaultResponseExcerpt holds the default value on creation for the response_excerpt field.
	vlmrequestevent.DefaultResponseExcerpt = vlmrequesteventDescResponseExcerpt.Default.(string)
}
