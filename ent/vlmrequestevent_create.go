// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classday/probank/ent/vlmrequestevent"
)

// VLMRequestEventCreate is the builder for creating a VLMRequestEvent entity.
type VLMRequestEventCreate struct {
	config
	mutation *VLMRequestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *VLMRequestEventCreate) SetSequence(v int64) *VLMRequestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *VLMRequestEventCreate) SetTimestamp(v time.Time) *VLMRequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *VLMRequestEventCreate) SetNillableTimestamp(v *time.Time) *VLMRequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *VLMRequestEventCreate) SetProvider(v string) *VLMRequestEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *VLMRequestEventCreate) SetModel(v string) *VLMRequestEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetField sets the "field" field.
func (_c *VLMRequestEventCreate) SetField(v string) *VLMRequestEventCreate {
	_c.mutation.SetFieldField(v)
	return _c
}

// SetImageBytes sets the "image_bytes" field.
func (_c *VLMRequestEventCreate) SetImageBytes(v int) *VLMRequestEventCreate {
	_c.mutation.SetImageBytes(v)
	return _c
}

// SetNillableImageBytes sets the "image_bytes" field if the given value is not nil.
func (_c *VLMRequestEventCreate) SetNillableImageBytes(v *int) *VLMRequestEventCreate {
	if v != nil {
		_c.SetImageBytes(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *VLMRequestEventCreate) SetLatencyMs(v int64) *VLMRequestEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *VLMRequestEventCreate) SetNillableLatencyMs(v *int64) *VLMRequestEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *VLMRequestEventCreate) SetSuccess(v bool) *VLMRequestEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *VLMRequestEventCreate) SetErrorMessage(v string) *VLMRequestEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *VLMRequestEventCreate) SetNillableErrorMessage(v *string) *VLMRequestEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetResponseExcerpt sets the "response_excerpt" field.
func (_c *VLMRequestEventCreate) SetResponseExcerpt(v string) *VLMRequestEventCreate {
	_c.mutation.SetResponseExcerpt(v)
	return _c
}

// SetNillableResponseExcerpt sets the "response_excerpt" field if the given value is not nil.
func (_c *VLMRequestEventCreate) SetNillableResponseExcerpt(v *string) *VLMRequestEventCreate {
	if v != nil {
		_c.SetResponseExcerpt(*v)
	}
	return _c
}

// Mutation returns the VLMRequestEventMutation object of the builder.
func (_c *VLMRequestEventCreate) Mutation() *VLMRequestEventMutation {
	return _c.mutation
}

// Save creates the VLMRequestEvent in the database.
func (_c *VLMRequestEventCreate) Save(ctx context.Context) (*VLMRequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VLMRequestEventCreate) SaveX(ctx context.Context) *VLMRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VLMRequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VLMRequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VLMRequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := vlmrequestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ImageBytes(); !ok {
		v := vlmrequestevent.DefaultImageBytes
		_c.mutation.SetImageBytes(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := vlmrequestevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := vlmrequestevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.ResponseExcerpt(); !ok {
		v := vlmrequestevent.DefaultResponseExcerpt
		_c.mutation.SetResponseExcerpt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VLMRequestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "VLMRequestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "VLMRequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "VLMRequestEvent.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "VLMRequestEvent.model"`)}
	}
	if _, ok := _c.mutation.GetField(); !ok {
		return &ValidationError{Name: "field", err: errors.New(`ent: missing required field "VLMRequestEvent.field"`)}
	}
	if _, ok := _c.mutation.ImageBytes(); !ok {
		return &ValidationError{Name: "image_bytes", err: errors.New(`ent: missing required field "VLMRequestEvent.image_bytes"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "VLMRequestEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "VLMRequestEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "VLMRequestEvent.error_message"`)}
	}
	if _, ok := _c.mutation.ResponseExcerpt(); !ok {
		return &ValidationError{Name: "response_excerpt", err: errors.New(`ent: missing required field "VLMRequestEvent.response_excerpt"`)}
	}
	return nil
}

func (_c *VLMRequestEventCreate) sqlSave(ctx context.Context) (*VLMRequestEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VLMRequestEventCreate) createSpec() (*VLMRequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &VLMRequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vlmrequestevent.Table, sqlgraph.NewFieldSpec(vlmrequestevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(vlmrequestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(vlmrequestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(vlmrequestevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(vlmrequestevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.GetField(); ok {
		_spec.SetField(vlmrequestevent.FieldField, field.TypeString, value)
		_node.Field = value
	}
	if value, ok := _c.mutation.ImageBytes(); ok {
		_spec.SetField(vlmrequestevent.FieldImageBytes, field.TypeInt, value)
		_node.ImageBytes = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(vlmrequestevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(vlmrequestevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(vlmrequestevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.ResponseExcerpt(); ok {
		_spec.SetField(vlmrequestevent.FieldResponseExcerpt, field.TypeString, value)
		_node.ResponseExcerpt = value
	}
	return _node, _spec
}

// VLMRequestEventCreateBulk is the builder for creating many VLMRequestEvent entities in bulk.
type VLMRequestEventCreateBulk struct {
	config
	err      error
	builders []*VLMRequestEventCreate
}

// Save creates the VLMRequestEvent entities in the database.
func (_c *VLMRequestEventCreateBulk) Save(ctx context.Context) ([]*VLMRequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VLMRequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VLMRequestEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VLMRequestEventCreateBulk) SaveX(ctx context.Context) []*VLMRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VLMRequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VLMRequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
