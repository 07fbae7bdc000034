// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// VlmRequestEventsColumns holds the columns for the "vlm_request_events" table.
	VlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "field", Type: field.TypeString},
		{Name: "image_bytes", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "response_excerpt", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// VlmRequestEventsTable holds the schema information for the "vlm_request_events" table.
	VlmRequestEventsTable = &schema.Table{
		Name:       "vlm_request_events",
		Columns:    VlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{VlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vlmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{VlmRequestEventsColumns[1]},
			},
			{
				Name:    "vlmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{VlmRequestEventsColumns[2]},
			},
			{
				Name:    "vlmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{VlmRequestEventsColumns[3]},
			},
			{
				Name:    "vlmrequestevent_field",
				Unique:  false,
				Columns: []*schema.Column{VlmRequestEventsColumns[5]},
			},
			{
				Name:    "vlmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{VlmRequestEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		VlmRequestEventsTable,
	}
)

func init() {
}
