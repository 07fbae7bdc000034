// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/classday/probank/ent/predicate"
	"github.com/classday/probank/ent/vlmrequestevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeVLMRequestEvent = "VLMRequestEvent"
)

// VLMRequestEventMutation represents an operation that mutates the VLMRequestEvent nodes in the graph.
type VLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	field            *string
	image_bytes      *int
	addimage_bytes   *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	response_excerpt *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*VLMRequestEvent, error)
	predicates       []predicate.VLMRequestEvent
}

var _ ent.Mutation = (*VLMRequestEventMutation)(nil)

// vlmrequesteventOption allows management of the mutation configuration using functional options.
type vlmrequesteventOption func(*VLMRequestEventMutation)

// newVLMRequestEventMutation creates new mutation for the VLMRequestEvent entity.
func newVLMRequestEventMutation(c config, op Op, opts ...vlmrequesteventOption) *VLMRequestEventMutation {
	m := &VLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeVLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVLMRequestEventID sets the ID field of the mutation.
func withVLMRequestEventID(id int) vlmrequesteventOption {
	return func(m *VLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *VLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*VLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVLMRequestEvent sets the old VLMRequestEvent of the mutation.
func withVLMRequestEvent(node *VLMRequestEvent) vlmrequesteventOption {
	return func(m *VLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*VLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *VLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *VLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the VLMRequestEvent entity.
// If the VLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *VLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *VLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *VLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *VLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *VLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the VLMRequestEvent entity.
// If the VLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *VLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *VLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *VLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the VLMRequestEvent entity.
// If the VLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *VLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *VLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *VLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the VLMRequestEvent entity.
// If the VLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *VLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetFieldField sets the "field" field.
func (m *VLMRequestEventMutation) SetFieldField(s string) {
	m.field = &s
}

// GetField returns the value of the "field" field in the mutation.
func (m *VLMRequestEventMutation) GetField() (r string, exists bool) {
	v := m.field
	if v == nil {
		return
	}
	return *v, true
}

// GetOldField returns the old "field" field's value of the VLMRequestEvent entity.
// If the VLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VLMRequestEventMutation) GetOldField(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("GetOldField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("GetOldField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for GetOldField: %w", err)
	}
	return oldValue.Field, nil
}

// ResetFieldField resets all changes to the "field" field.
func (m *VLMRequestEventMutation) ResetFieldField() {
	m.field = nil
}

// SetImageBytes sets the "image_bytes" field.
func (m *VLMRequestEventMutation) SetImageBytes(i int) {
	m.image_bytes = &i
	m.addimage_bytes = nil
}

// ImageBytes returns the value of the "image_bytes" field in the mutation.
func (m *VLMRequestEventMutation) ImageBytes() (r int, exists bool) {
	v := m.image_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldImageBytes returns the old "image_bytes" field's value of the VLMRequestEvent entity.
// If the VLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VLMRequestEventMutation) OldImageBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageBytes: %w", err)
	}
	return oldValue.ImageBytes, nil
}

// AddImageBytes adds i to the "image_bytes" field.
func (m *VLMRequestEventMutation) AddImageBytes(i int) {
	if m.addimage_bytes != nil {
		*m.addimage_bytes += i
	} else {
		m.addimage_bytes = &i
	}
}

// AddedImageBytes returns the value that was added to the "image_bytes" field in this mutation.
func (m *VLMRequestEventMutation) AddedImageBytes() (r int, exists bool) {
	v := m.addimage_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetImageBytes resets all changes to the "image_bytes" field.
func (m *VLMRequestEventMutation) ResetImageBytes() {
	m.image_bytes = nil
	m.addimage_bytes = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *VLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *VLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the VLMRequestEvent entity.
// If the VLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *VLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *VLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *VLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *VLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *VLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the VLMRequestEvent entity.
// If the VLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *VLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *VLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *VLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the VLMRequestEvent entity.
// If the VLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *VLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetResponseExcerpt sets the "response_excerpt" field.
func (m *VLMRequestEventMutation) SetResponseExcerpt(s string) {
	m.response_excerpt = &s
}

// ResponseExcerpt returns the value of the "response_excerpt" field in the mutation.
func (m *VLMRequestEventMutation) ResponseExcerpt() (r string, exists bool) {
	v := m.response_excerpt
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseExcerpt returns the old "response_excerpt" field's value of the VLMRequestEvent entity.
// If the VLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VLMRequestEventMutation) OldResponseExcerpt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseExcerpt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseExcerpt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseExcerpt: %w", err)
	}
	return oldValue.ResponseExcerpt, nil
}

// ResetResponseExcerpt resets all changes to the "response_excerpt" field.
func (m *VLMRequestEventMutation) ResetResponseExcerpt() {
	m.response_excerpt = nil
}

// Where appends a list predicates to the VLMRequestEventMutation builder.
func (m *VLMRequestEventMutation) Where(ps ...predicate.VLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VLMRequestEvent).
func (m *VLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, vlmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, vlmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, vlmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, vlmrequestevent.FieldModel)
	}
	if m.field != nil {
		fields = append(fields, vlmrequestevent.FieldField)
	}
	if m.image_bytes != nil {
		fields = append(fields, vlmrequestevent.FieldImageBytes)
	}
	if m.latency_ms != nil {
		fields = append(fields, vlmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, vlmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, vlmrequestevent.FieldErrorMessage)
	}
	if m.response_excerpt != nil {
		fields = append(fields, vlmrequestevent.FieldResponseExcerpt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vlmrequestevent.FieldSequence:
		return m.Sequence()
	case vlmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case vlmrequestevent.FieldProvider:
		return m.Provider()
	case vlmrequestevent.FieldModel:
		return m.Model()
	case vlmrequestevent.FieldField:
		return m.GetField()
	case vlmrequestevent.FieldImageBytes:
		return m.ImageBytes()
	case vlmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case vlmrequestevent.FieldSuccess:
		return m.Success()
	case vlmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case vlmrequestevent.FieldResponseExcerpt:
		return m.ResponseExcerpt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vlmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case vlmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case vlmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case vlmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case vlmrequestevent.FieldField:
		return m.GetOldField(ctx)
	case vlmrequestevent.FieldImageBytes:
		return m.OldImageBytes(ctx)
	case vlmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case vlmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case vlmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case vlmrequestevent.FieldResponseExcerpt:
		return m.OldResponseExcerpt(ctx)
	}
	return nil, fmt.Errorf("unknown VLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vlmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case vlmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case vlmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case vlmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case vlmrequestevent.FieldField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldField(v)
		return nil
	case vlmrequestevent.FieldImageBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageBytes(v)
		return nil
	case vlmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case vlmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case vlmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case vlmrequestevent.FieldResponseExcerpt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseExcerpt(v)
		return nil
	}
	return fmt.Errorf("unknown VLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, vlmrequestevent.FieldSequence)
	}
	if m.addimage_bytes != nil {
		fields = append(fields, vlmrequestevent.FieldImageBytes)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, vlmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vlmrequestevent.FieldSequence:
		return m.AddedSequence()
	case vlmrequestevent.FieldImageBytes:
		return m.AddedImageBytes()
	case vlmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vlmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case vlmrequestevent.FieldImageBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImageBytes(v)
		return nil
	case vlmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown VLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown VLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case vlmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case vlmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case vlmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case vlmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case vlmrequestevent.FieldField:
		m.ResetFieldField()
		return nil
	case vlmrequestevent.FieldImageBytes:
		m.ResetImageBytes()
		return nil
	case vlmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case vlmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case vlmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case vlmrequestevent.FieldResponseExcerpt:
		m.ResetResponseExcerpt()
		return nil
	}
	return fmt.Errorf("unknown VLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VLMRequestEvent edge %s", name)
}
