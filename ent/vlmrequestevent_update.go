// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classday/probank/ent/predicate"
	"github.com/classday/probank/ent/vlmrequestevent"
)

// VLMRequestEventUpdate is the builder for updating VLMRequestEvent entities.
type VLMRequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *VLMRequestEventMutation
}

// Where appends a list predicates to the VLMRequestEventUpdate builder.
func (_u *VLMRequestEventUpdate) Where(ps ...predicate.VLMRequestEvent) *VLMRequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *VLMRequestEventUpdate) SetProvider(v string) *VLMRequestEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *VLMRequestEventUpdate) SetNillableProvider(v *string) *VLMRequestEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *VLMRequestEventUpdate) SetModel(v string) *VLMRequestEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *VLMRequestEventUpdate) SetNillableModel(v *string) *VLMRequestEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetField sets the "field" field.
func (_u *VLMRequestEventUpdate) SetField(v string) *VLMRequestEventUpdate {
	_u.mutation.SetFieldField(v)
	return _u
}

// SetNillableField sets the "field" field if the given value is not nil.
func (_u *VLMRequestEventUpdate) SetNillableField(v *string) *VLMRequestEventUpdate {
	if v != nil {
		_u.SetField(*v)
	}
	return _u
}

// SetImageBytes sets the "image_bytes" field.
func (_u *VLMRequestEventUpdate) SetImageBytes(v int) *VLMRequestEventUpdate {
	_u.mutation.ResetImageBytes()
	_u.mutation.SetImageBytes(v)
	return _u
}

// SetNillableImageBytes sets the "image_bytes" field if the given value is not nil.
func (_u *VLMRequestEventUpdate) SetNillableImageBytes(v *int) *VLMRequestEventUpdate {
	if v != nil {
		_u.SetImageBytes(*v)
	}
	return _u
}

// AddImageBytes adds value to the "image_bytes" field.
func (_u *VLMRequestEventUpdate) AddImageBytes(v int) *VLMRequestEventUpdate {
	_u.mutation.AddImageBytes(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *VLMRequestEventUpdate) SetLatencyMs(v int64) *VLMRequestEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *VLMRequestEventUpdate) SetNillableLatencyMs(v *int64) *VLMRequestEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *VLMRequestEventUpdate) AddLatencyMs(v int64) *VLMRequestEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *VLMRequestEventUpdate) SetSuccess(v bool) *VLMRequestEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *VLMRequestEventUpdate) SetNillableSuccess(v *bool) *VLMRequestEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VLMRequestEventUpdate) SetErrorMessage(v string) *VLMRequestEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VLMRequestEventUpdate) SetNillableErrorMessage(v *string) *VLMRequestEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetResponseExcerpt sets the "response_excerpt" field.
func (_u *VLMRequestEventUpdate) SetResponseExcerpt(v string) *VLMRequestEventUpdate {
	_u.mutation.SetResponseExcerpt(v)
	return _u
}

// SetNillableResponseExcerpt sets the "response_excerpt" field if the given value is not nil.
func (_u *VLMRequestEventUpdate) SetNillableResponseExcerpt(v *string) *VLMRequestEventUpdate {
	if v != nil {
		_u.SetResponseExcerpt(*v)
	}
	return _u
}

// Mutation returns the VLMRequestEventMutation object of the builder.
func (_u *VLMRequestEventUpdate) Mutation() *VLMRequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VLMRequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VLMRequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VLMRequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VLMRequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VLMRequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(vlmrequestevent.Table, vlmrequestevent.Columns, sqlgraph.NewFieldSpec(vlmrequestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(vlmrequestevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(vlmrequestevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetField(); ok {
		_spec.SetField(vlmrequestevent.FieldField, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageBytes(); ok {
		_spec.SetField(vlmrequestevent.FieldImageBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImageBytes(); ok {
		_spec.AddField(vlmrequestevent.FieldImageBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(vlmrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(vlmrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(vlmrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(vlmrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseExcerpt(); ok {
		_spec.SetField(vlmrequestevent.FieldResponseExcerpt, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vlmrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VLMRequestEventUpdateOne is the builder for updating a single VLMRequestEvent entity.
type VLMRequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VLMRequestEventMutation
}

// SetProvider sets the "provider" field.
func (_u *VLMRequestEventUpdateOne) SetProvider(v string) *VLMRequestEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *VLMRequestEventUpdateOne) SetNillableProvider(v *string) *VLMRequestEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *VLMRequestEventUpdateOne) SetModel(v string) *VLMRequestEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *VLMRequestEventUpdateOne) SetNillableModel(v *string) *VLMRequestEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetField sets the "field" field.
func (_u *VLMRequestEventUpdateOne) SetField(v string) *VLMRequestEventUpdateOne {
	_u.mutation.SetFieldField(v)
	return _u
}

// SetNillableField sets the "field" field if the given value is not nil.
func (_u *VLMRequestEventUpdateOne) SetNillableField(v *string) *VLMRequestEventUpdateOne {
	if v != nil {
		_u.SetField(*v)
	}
	return _u
}

// SetImageBytes sets the "image_bytes" field.
func (_u *VLMRequestEventUpdateOne) SetImageBytes(v int) *VLMRequestEventUpdateOne {
	_u.mutation.ResetImageBytes()
	_u.mutation.SetImageBytes(v)
	return _u
}

// SetNillableImageBytes sets the "image_bytes" field if the given value is not nil.
func (_u *VLMRequestEventUpdateOne) SetNillableImageBytes(v *int) *VLMRequestEventUpdateOne {
	if v != nil {
		_u.SetImageBytes(*v)
	}
	return _u
}

// AddImageBytes adds value to the "image_bytes" field.
func (_u *VLMRequestEventUpdateOne) AddImageBytes(v int) *VLMRequestEventUpdateOne {
	_u.mutation.AddImageBytes(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *VLMRequestEventUpdateOne) SetLatencyMs(v int64) *VLMRequestEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *VLMRequestEventUpdateOne) SetNillableLatencyMs(v *int64) *VLMRequestEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *VLMRequestEventUpdateOne) AddLatencyMs(v int64) *VLMRequestEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *VLMRequestEventUpdateOne) SetSuccess(v bool) *VLMRequestEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *VLMRequestEventUpdateOne) SetNillableSuccess(v *bool) *VLMRequestEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VLMRequestEventUpdateOne) SetErrorMessage(v string) *VLMRequestEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VLMRequestEventUpdateOne) SetNillableErrorMessage(v *string) *VLMRequestEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetResponseExcerpt sets the "response_excerpt" field.
func (_u *VLMRequestEventUpdateOne) SetResponseExcerpt(v string) *VLMRequestEventUpdateOne {
	_u.mutation.SetResponseExcerpt(v)
	return _u
}

// SetNillableResponseExcerpt sets the "response_excerpt" field if the given value is not nil.
func (_u *VLMRequestEventUpdateOne) SetNillableResponseExcerpt(v *string) *VLMRequestEventUpdateOne {
	if v != nil {
		_u.SetResponseExcerpt(*v)
	}
	return _u
}

// Mutation returns the VLMRequestEventMutation object of the builder.
func (_u *VLMRequestEventUpdateOne) Mutation() *VLMRequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the VLMRequestEventUpdate builder.
func (_u *VLMRequestEventUpdateOne) Where(ps ...predicate.VLMRequestEvent) *VLMRequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VLMRequestEventUpdateOne) Select(field string, fields ...string) *VLMRequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VLMRequestEvent entity.
func (_u *VLMRequestEventUpdateOne) Save(ctx context.Context) (*VLMRequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VLMRequestEventUpdateOne) SaveX(ctx context.Context) *VLMRequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VLMRequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VLMRequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VLMRequestEventUpdateOne) sqlSave(ctx context.Context) (_node *VLMRequestEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(vlmrequestevent.Table, vlmrequestevent.Columns, sqlgraph.NewFieldSpec(vlmrequestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VLMRequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vlmrequestevent.FieldID)
		for _, f := range fields {
			if !vlmrequestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vlmrequestevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(vlmrequestevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(vlmrequestevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetField(); ok {
		_spec.SetField(vlmrequestevent.FieldField, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageBytes(); ok {
		_spec.SetField(vlmrequestevent.FieldImageBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImageBytes(); ok {
		_spec.AddField(vlmrequestevent.FieldImageBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(vlmrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(vlmrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(vlmrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(vlmrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseExcerpt(); ok {
		_spec.SetField(vlmrequestevent.FieldResponseExcerpt, field.TypeString, value)
	}
	_node = &VLMRequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vlmrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
