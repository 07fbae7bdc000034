// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// VLMRequestEvent is the predicate function for vlmrequestevent builders.
type VLMRequestEvent func(*sql.Selector)
