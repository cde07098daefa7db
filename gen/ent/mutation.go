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
	"github.com/google/uuid"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/attackobject"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/document"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/indicator"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/ingestjob"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/mapping"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/predicate"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/report"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/sentence"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttackObject = "AttackObject"
	TypeDocument     = "Document"
	TypeIndicator    = "Indicator"
	TypeIngestJob    = "IngestJob"
	TypeMapping      = "Mapping"
	TypeReport       = "Report"
	TypeSentence     = "Sentence"
)

// AttackObjectMutation represents an operation that mutates the AttackObject nodes in the graph.
type AttackObjectMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	kind            *string
	name            *string
	stix_id         *string
	attack_id       *string
	attack_url      *string
	matrix          *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	mappings        map[uuid.UUID]struct{}
	removedmappings map[uuid.UUID]struct{}
	clearedmappings bool
	done            bool
	oldValue        func(context.Context) (*AttackObject, error)
	predicates      []predicate.AttackObject
}

var _ ent.Mutation = (*AttackObjectMutation)(nil)

// attackobjectOption allows management of the mutation configuration using functional options.
type attackobjectOption func(*AttackObjectMutation)

// newAttackObjectMutation creates new mutation for the AttackObject entity.
func newAttackObjectMutation(c config, op Op, opts ...attackobjectOption) *AttackObjectMutation {
	m := &AttackObjectMutation{
		config:        c,
		op:            op,
		typ:           TypeAttackObject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttackObjectID sets the ID field of the mutation.
func withAttackObjectID(id uuid.UUID) attackobjectOption {
	return func(m *AttackObjectMutation) {
		var (
			err   error
			once  sync.Once
			value *AttackObject
		)
		m.oldValue = func(ctx context.Context) (*AttackObject, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttackObject.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttackObject sets the old AttackObject of the mutation.
func withAttackObject(node *AttackObject) attackobjectOption {
	return func(m *AttackObjectMutation) {
		m.oldValue = func(context.Context) (*AttackObject, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttackObjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttackObjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AttackObject entities.
func (m *AttackObjectMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttackObjectMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttackObjectMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttackObject.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *AttackObjectMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AttackObjectMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the AttackObject entity.
// If the AttackObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackObjectMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AttackObjectMutation) ResetKind() {
	m.kind = nil
}

// SetName sets the "name" field.
func (m *AttackObjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AttackObjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AttackObject entity.
// If the AttackObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackObjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AttackObjectMutation) ResetName() {
	m.name = nil
}

// SetStixID sets the "stix_id" field.
func (m *AttackObjectMutation) SetStixID(s string) {
	m.stix_id = &s
}

// StixID returns the value of the "stix_id" field in the mutation.
func (m *AttackObjectMutation) StixID() (r string, exists bool) {
	v := m.stix_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStixID returns the old "stix_id" field's value of the AttackObject entity.
// If the AttackObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackObjectMutation) OldStixID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStixID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStixID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStixID: %w", err)
	}
	return oldValue.StixID, nil
}

// ResetStixID resets all changes to the "stix_id" field.
func (m *AttackObjectMutation) ResetStixID() {
	m.stix_id = nil
}

// SetAttackID sets the "attack_id" field.
func (m *AttackObjectMutation) SetAttackID(s string) {
	m.attack_id = &s
}

// AttackID returns the value of the "attack_id" field in the mutation.
func (m *AttackObjectMutation) AttackID() (r string, exists bool) {
	v := m.attack_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttackID returns the old "attack_id" field's value of the AttackObject entity.
// If the AttackObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackObjectMutation) OldAttackID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttackID: %w", err)
	}
	return oldValue.AttackID, nil
}

// ResetAttackID resets all changes to the "attack_id" field.
func (m *AttackObjectMutation) ResetAttackID() {
	m.attack_id = nil
}

// SetAttackURL sets the "attack_url" field.
func (m *AttackObjectMutation) SetAttackURL(s string) {
	m.attack_url = &s
}

// AttackURL returns the value of the "attack_url" field in the mutation.
func (m *AttackObjectMutation) AttackURL() (r string, exists bool) {
	v := m.attack_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAttackURL returns the old "attack_url" field's value of the AttackObject entity.
// If the AttackObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackObjectMutation) OldAttackURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttackURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttackURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttackURL: %w", err)
	}
	return oldValue.AttackURL, nil
}

// ResetAttackURL resets all changes to the "attack_url" field.
func (m *AttackObjectMutation) ResetAttackURL() {
	m.attack_url = nil
}

// SetMatrix sets the "matrix" field.
func (m *AttackObjectMutation) SetMatrix(s string) {
	m.matrix = &s
}

// Matrix returns the value of the "matrix" field in the mutation.
func (m *AttackObjectMutation) Matrix() (r string, exists bool) {
	v := m.matrix
	if v == nil {
		return
	}
	return *v, true
}

// OldMatrix returns the old "matrix" field's value of the AttackObject entity.
// If the AttackObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackObjectMutation) OldMatrix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatrix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatrix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatrix: %w", err)
	}
	return oldValue.Matrix, nil
}

// ResetMatrix resets all changes to the "matrix" field.
func (m *AttackObjectMutation) ResetMatrix() {
	m.matrix = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttackObjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttackObjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AttackObject entity.
// If the AttackObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackObjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttackObjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AttackObjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AttackObjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AttackObject entity.
// If the AttackObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackObjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AttackObjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMappingIDs adds the "mappings" edge to the Mapping entity by ids.
func (m *AttackObjectMutation) AddMappingIDs(ids ...uuid.UUID) {
	if m.mappings == nil {
		m.mappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.mappings[ids[i]] = struct{}{}
	}
}

// ClearMappings clears the "mappings" edge to the Mapping entity.
func (m *AttackObjectMutation) ClearMappings() {
	m.clearedmappings = true
}

// MappingsCleared reports if the "mappings" edge to the Mapping entity was cleared.
func (m *AttackObjectMutation) MappingsCleared() bool {
	return m.clearedmappings
}

// RemoveMappingIDs removes the "mappings" edge to the Mapping entity by IDs.
func (m *AttackObjectMutation) RemoveMappingIDs(ids ...uuid.UUID) {
	if m.removedmappings == nil {
		m.removedmappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.mappings, ids[i])
		m.removedmappings[ids[i]] = struct{}{}
	}
}

// RemovedMappings returns the removed IDs of the "mappings" edge to the Mapping entity.
func (m *AttackObjectMutation) RemovedMappingsIDs() (ids []uuid.UUID) {
	for id := range m.removedmappings {
		ids = append(ids, id)
	}
	return
}

// MappingsIDs returns the "mappings" edge IDs in the mutation.
func (m *AttackObjectMutation) MappingsIDs() (ids []uuid.UUID) {
	for id := range m.mappings {
		ids = append(ids, id)
	}
	return
}

// ResetMappings resets all changes to the "mappings" edge.
func (m *AttackObjectMutation) ResetMappings() {
	m.mappings = nil
	m.clearedmappings = false
	m.removedmappings = nil
}

// Where appends a list predicates to the AttackObjectMutation builder.
func (m *AttackObjectMutation) Where(ps ...predicate.AttackObject) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttackObjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttackObjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttackObject, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttackObjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttackObjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttackObject).
func (m *AttackObjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttackObjectMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.kind != nil {
		fields = append(fields, attackobject.FieldKind)
	}
	if m.name != nil {
		fields = append(fields, attackobject.FieldName)
	}
	if m.stix_id != nil {
		fields = append(fields, attackobject.FieldStixID)
	}
	if m.attack_id != nil {
		fields = append(fields, attackobject.FieldAttackID)
	}
	if m.attack_url != nil {
		fields = append(fields, attackobject.FieldAttackURL)
	}
	if m.matrix != nil {
		fields = append(fields, attackobject.FieldMatrix)
	}
	if m.created_at != nil {
		fields = append(fields, attackobject.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, attackobject.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttackObjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attackobject.FieldKind:
		return m.Kind()
	case attackobject.FieldName:
		return m.Name()
	case attackobject.FieldStixID:
		return m.StixID()
	case attackobject.FieldAttackID:
		return m.AttackID()
	case attackobject.FieldAttackURL:
		return m.AttackURL()
	case attackobject.FieldMatrix:
		return m.Matrix()
	case attackobject.FieldCreatedAt:
		return m.CreatedAt()
	case attackobject.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttackObjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attackobject.FieldKind:
		return m.OldKind(ctx)
	case attackobject.FieldName:
		return m.OldName(ctx)
	case attackobject.FieldStixID:
		return m.OldStixID(ctx)
	case attackobject.FieldAttackID:
		return m.OldAttackID(ctx)
	case attackobject.FieldAttackURL:
		return m.OldAttackURL(ctx)
	case attackobject.FieldMatrix:
		return m.OldMatrix(ctx)
	case attackobject.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case attackobject.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AttackObject field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttackObjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attackobject.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case attackobject.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case attackobject.FieldStixID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStixID(v)
		return nil
	case attackobject.FieldAttackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttackID(v)
		return nil
	case attackobject.FieldAttackURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttackURL(v)
		return nil
	case attackobject.FieldMatrix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatrix(v)
		return nil
	case attackobject.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case attackobject.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AttackObject field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttackObjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttackObjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttackObjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AttackObject numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttackObjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttackObjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttackObjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AttackObject nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttackObjectMutation) ResetField(name string) error {
	switch name {
	case attackobject.FieldKind:
		m.ResetKind()
		return nil
	case attackobject.FieldName:
		m.ResetName()
		return nil
	case attackobject.FieldStixID:
		m.ResetStixID()
		return nil
	case attackobject.FieldAttackID:
		m.ResetAttackID()
		return nil
	case attackobject.FieldAttackURL:
		m.ResetAttackURL()
		return nil
	case attackobject.FieldMatrix:
		m.ResetMatrix()
		return nil
	case attackobject.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case attackobject.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AttackObject field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttackObjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.mappings != nil {
		edges = append(edges, attackobject.EdgeMappings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttackObjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attackobject.EdgeMappings:
		ids := make([]ent.Value, 0, len(m.mappings))
		for id := range m.mappings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttackObjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmappings != nil {
		edges = append(edges, attackobject.EdgeMappings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttackObjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case attackobject.EdgeMappings:
		ids := make([]ent.Value, 0, len(m.removedmappings))
		for id := range m.removedmappings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttackObjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmappings {
		edges = append(edges, attackobject.EdgeMappings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttackObjectMutation) EdgeCleared(name string) bool {
	switch name {
	case attackobject.EdgeMappings:
		return m.clearedmappings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttackObjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AttackObject unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttackObjectMutation) ResetEdge(name string) error {
	switch name {
	case attackobject.EdgeMappings:
		m.ResetMappings()
		return nil
	}
	return fmt.Errorf("unknown AttackObject edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	filename         *string
	storage_path     *string
	created_by       *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	jobs             map[uuid.UUID]struct{}
	removedjobs      map[uuid.UUID]struct{}
	clearedjobs      bool
	reports          map[uuid.UUID]struct{}
	removedreports   map[uuid.UUID]struct{}
	clearedreports   bool
	sentences        map[uuid.UUID]struct{}
	removedsentences map[uuid.UUID]struct{}
	clearedsentences bool
	done             bool
	oldValue         func(context.Context) (*Document, error)
	predicates       []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *DocumentMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *DocumentMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *DocumentMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *DocumentMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *DocumentMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *DocumentMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[document.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *DocumentMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[document.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *DocumentMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, document.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobIDs adds the "jobs" edge to the IngestJob entity by ids.
func (m *DocumentMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the IngestJob entity.
func (m *DocumentMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the IngestJob entity was cleared.
func (m *DocumentMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the IngestJob entity by IDs.
func (m *DocumentMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the IngestJob entity.
func (m *DocumentMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DocumentMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DocumentMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddReportIDs adds the "reports" edge to the Report entity by ids.
func (m *DocumentMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Report entity.
func (m *DocumentMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Report entity was cleared.
func (m *DocumentMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Report entity by IDs.
func (m *DocumentMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Report entity.
func (m *DocumentMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *DocumentMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *DocumentMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// AddSentenceIDs adds the "sentences" edge to the Sentence entity by ids.
func (m *DocumentMutation) AddSentenceIDs(ids ...uuid.UUID) {
	if m.sentences == nil {
		m.sentences = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sentences[ids[i]] = struct{}{}
	}
}

// ClearSentences clears the "sentences" edge to the Sentence entity.
func (m *DocumentMutation) ClearSentences() {
	m.clearedsentences = true
}

// SentencesCleared reports if the "sentences" edge to the Sentence entity was cleared.
func (m *DocumentMutation) SentencesCleared() bool {
	return m.clearedsentences
}

// RemoveSentenceIDs removes the "sentences" edge to the Sentence entity by IDs.
func (m *DocumentMutation) RemoveSentenceIDs(ids ...uuid.UUID) {
	if m.removedsentences == nil {
		m.removedsentences = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sentences, ids[i])
		m.removedsentences[ids[i]] = struct{}{}
	}
}

// RemovedSentences returns the removed IDs of the "sentences" edge to the Sentence entity.
func (m *DocumentMutation) RemovedSentencesIDs() (ids []uuid.UUID) {
	for id := range m.removedsentences {
		ids = append(ids, id)
	}
	return
}

// SentencesIDs returns the "sentences" edge IDs in the mutation.
func (m *DocumentMutation) SentencesIDs() (ids []uuid.UUID) {
	for id := range m.sentences {
		ids = append(ids, id)
	}
	return
}

// ResetSentences resets all changes to the "sentences" edge.
func (m *DocumentMutation) ResetSentences() {
	m.sentences = nil
	m.clearedsentences = false
	m.removedsentences = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.storage_path != nil {
		fields = append(fields, document.FieldStoragePath)
	}
	if m.created_by != nil {
		fields = append(fields, document.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFilename:
		return m.Filename()
	case document.FieldStoragePath:
		return m.StoragePath()
	case document.FieldCreatedBy:
		return m.CreatedBy()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case document.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case document.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldCreatedBy) {
		fields = append(fields, document.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case document.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.jobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	if m.reports != nil {
		edges = append(edges, document.EdgeReports)
	}
	if m.sentences != nil {
		edges = append(edges, document.EdgeSentences)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeSentences:
		ids := make([]ent.Value, 0, len(m.sentences))
		for id := range m.sentences {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedjobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	if m.removedreports != nil {
		edges = append(edges, document.EdgeReports)
	}
	if m.removedsentences != nil {
		edges = append(edges, document.EdgeSentences)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeSentences:
		ids := make([]ent.Value, 0, len(m.removedsentences))
		for id := range m.removedsentences {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedjobs {
		edges = append(edges, document.EdgeJobs)
	}
	if m.clearedreports {
		edges = append(edges, document.EdgeReports)
	}
	if m.clearedsentences {
		edges = append(edges, document.EdgeSentences)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeJobs:
		return m.clearedjobs
	case document.EdgeReports:
		return m.clearedreports
	case document.EdgeSentences:
		return m.clearedsentences
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeJobs:
		m.ResetJobs()
		return nil
	case document.EdgeReports:
		m.ResetReports()
		return nil
	case document.EdgeSentences:
		m.ResetSentences()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// IndicatorMutation represents an operation that mutates the Indicator nodes in the graph.
type IndicatorMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	indicator_type *string
	value          *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	report         *uuid.UUID
	clearedreport  bool
	done           bool
	oldValue       func(context.Context) (*Indicator, error)
	predicates     []predicate.Indicator
}

var _ ent.Mutation = (*IndicatorMutation)(nil)

// indicatorOption allows management of the mutation configuration using functional options.
type indicatorOption func(*IndicatorMutation)

// newIndicatorMutation creates new mutation for the Indicator entity.
func newIndicatorMutation(c config, op Op, opts ...indicatorOption) *IndicatorMutation {
	m := &IndicatorMutation{
		config:        c,
		op:            op,
		typ:           TypeIndicator,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIndicatorID sets the ID field of the mutation.
func withIndicatorID(id uuid.UUID) indicatorOption {
	return func(m *IndicatorMutation) {
		var (
			err   error
			once  sync.Once
			value *Indicator
		)
		m.oldValue = func(ctx context.Context) (*Indicator, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Indicator.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIndicator sets the old Indicator of the mutation.
func withIndicator(node *Indicator) indicatorOption {
	return func(m *IndicatorMutation) {
		m.oldValue = func(context.Context) (*Indicator, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IndicatorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IndicatorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Indicator entities.
func (m *IndicatorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IndicatorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IndicatorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Indicator.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *IndicatorMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *IndicatorMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Indicator entity.
// If the Indicator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndicatorMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *IndicatorMutation) ResetReportID() {
	m.report = nil
}

// SetIndicatorType sets the "indicator_type" field.
func (m *IndicatorMutation) SetIndicatorType(s string) {
	m.indicator_type = &s
}

// IndicatorType returns the value of the "indicator_type" field in the mutation.
func (m *IndicatorMutation) IndicatorType() (r string, exists bool) {
	v := m.indicator_type
	if v == nil {
		return
	}
	return *v, true
}

// OldIndicatorType returns the old "indicator_type" field's value of the Indicator entity.
// If the Indicator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndicatorMutation) OldIndicatorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndicatorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndicatorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndicatorType: %w", err)
	}
	return oldValue.IndicatorType, nil
}

// ResetIndicatorType resets all changes to the "indicator_type" field.
func (m *IndicatorMutation) ResetIndicatorType() {
	m.indicator_type = nil
}

// SetValue sets the "value" field.
func (m *IndicatorMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *IndicatorMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Indicator entity.
// If the Indicator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndicatorMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *IndicatorMutation) ResetValue() {
	m.value = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IndicatorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IndicatorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Indicator entity.
// If the Indicator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndicatorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IndicatorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IndicatorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IndicatorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Indicator entity.
// If the Indicator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndicatorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IndicatorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *IndicatorMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[indicator.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *IndicatorMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *IndicatorMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *IndicatorMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the IndicatorMutation builder.
func (m *IndicatorMutation) Where(ps ...predicate.Indicator) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IndicatorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IndicatorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Indicator, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IndicatorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IndicatorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Indicator).
func (m *IndicatorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IndicatorMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.report != nil {
		fields = append(fields, indicator.FieldReportID)
	}
	if m.indicator_type != nil {
		fields = append(fields, indicator.FieldIndicatorType)
	}
	if m.value != nil {
		fields = append(fields, indicator.FieldValue)
	}
	if m.created_at != nil {
		fields = append(fields, indicator.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, indicator.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IndicatorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case indicator.FieldReportID:
		return m.ReportID()
	case indicator.FieldIndicatorType:
		return m.IndicatorType()
	case indicator.FieldValue:
		return m.Value()
	case indicator.FieldCreatedAt:
		return m.CreatedAt()
	case indicator.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IndicatorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case indicator.FieldReportID:
		return m.OldReportID(ctx)
	case indicator.FieldIndicatorType:
		return m.OldIndicatorType(ctx)
	case indicator.FieldValue:
		return m.OldValue(ctx)
	case indicator.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case indicator.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Indicator field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IndicatorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case indicator.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case indicator.FieldIndicatorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndicatorType(v)
		return nil
	case indicator.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case indicator.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case indicator.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Indicator field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IndicatorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IndicatorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IndicatorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Indicator numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IndicatorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IndicatorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IndicatorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Indicator nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IndicatorMutation) ResetField(name string) error {
	switch name {
	case indicator.FieldReportID:
		m.ResetReportID()
		return nil
	case indicator.FieldIndicatorType:
		m.ResetIndicatorType()
		return nil
	case indicator.FieldValue:
		m.ResetValue()
		return nil
	case indicator.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case indicator.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Indicator field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IndicatorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, indicator.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IndicatorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case indicator.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IndicatorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IndicatorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IndicatorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, indicator.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IndicatorMutation) EdgeCleared(name string) bool {
	switch name {
	case indicator.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IndicatorMutation) ClearEdge(name string) error {
	switch name {
	case indicator.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown Indicator unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IndicatorMutation) ResetEdge(name string) error {
	switch name {
	case indicator.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown Indicator edge %s", name)
}

// IngestJobMutation represents an operation that mutates the IngestJob nodes in the graph.
type IngestJobMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	status          *string
	message         *string
	created_by      *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*IngestJob, error)
	predicates      []predicate.IngestJob
}

var _ ent.Mutation = (*IngestJobMutation)(nil)

// ingestjobOption allows management of the mutation configuration using functional options.
type ingestjobOption func(*IngestJobMutation)

// newIngestJobMutation creates new mutation for the IngestJob entity.
func newIngestJobMutation(c config, op Op, opts ...ingestjobOption) *IngestJobMutation {
	m := &IngestJobMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestJobID sets the ID field of the mutation.
func withIngestJobID(id uuid.UUID) ingestjobOption {
	return func(m *IngestJobMutation) {
		var (
			err   error
			once  sync.Once
			value *IngestJob
		)
		m.oldValue = func(ctx context.Context) (*IngestJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngestJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestJob sets the old IngestJob of the mutation.
func withIngestJob(node *IngestJob) ingestjobOption {
	return func(m *IngestJobMutation) {
		m.oldValue = func(context.Context) (*IngestJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IngestJob entities.
func (m *IngestJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngestJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *IngestJobMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *IngestJobMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *IngestJobMutation) ResetDocumentID() {
	m.document = nil
}

// SetStatus sets the "status" field.
func (m *IngestJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *IngestJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IngestJobMutation) ResetStatus() {
	m.status = nil
}

// SetMessage sets the "message" field.
func (m *IngestJobMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *IngestJobMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *IngestJobMutation) ResetMessage() {
	m.message = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *IngestJobMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *IngestJobMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *IngestJobMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[ingestjob.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *IngestJobMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *IngestJobMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, ingestjob.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *IngestJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IngestJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IngestJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IngestJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IngestJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IngestJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *IngestJobMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[ingestjob.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *IngestJobMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *IngestJobMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *IngestJobMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the IngestJobMutation builder.
func (m *IngestJobMutation) Where(ps ...predicate.IngestJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngestJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngestJob).
func (m *IngestJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestJobMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.document != nil {
		fields = append(fields, ingestjob.FieldDocumentID)
	}
	if m.status != nil {
		fields = append(fields, ingestjob.FieldStatus)
	}
	if m.message != nil {
		fields = append(fields, ingestjob.FieldMessage)
	}
	if m.created_by != nil {
		fields = append(fields, ingestjob.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, ingestjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ingestjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingestjob.FieldDocumentID:
		return m.DocumentID()
	case ingestjob.FieldStatus:
		return m.Status()
	case ingestjob.FieldMessage:
		return m.Message()
	case ingestjob.FieldCreatedBy:
		return m.CreatedBy()
	case ingestjob.FieldCreatedAt:
		return m.CreatedAt()
	case ingestjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingestjob.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case ingestjob.FieldStatus:
		return m.OldStatus(ctx)
	case ingestjob.FieldMessage:
		return m.OldMessage(ctx)
	case ingestjob.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case ingestjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ingestjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IngestJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingestjob.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case ingestjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ingestjob.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case ingestjob.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case ingestjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ingestjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IngestJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IngestJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingestjob.FieldCreatedBy) {
		fields = append(fields, ingestjob.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestJobMutation) ClearField(name string) error {
	switch name {
	case ingestjob.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown IngestJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestJobMutation) ResetField(name string) error {
	switch name {
	case ingestjob.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case ingestjob.FieldStatus:
		m.ResetStatus()
		return nil
	case ingestjob.FieldMessage:
		m.ResetMessage()
		return nil
	case ingestjob.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case ingestjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ingestjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown IngestJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, ingestjob.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ingestjob.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, ingestjob.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestJobMutation) EdgeCleared(name string) bool {
	switch name {
	case ingestjob.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestJobMutation) ClearEdge(name string) error {
	switch name {
	case ingestjob.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown IngestJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestJobMutation) ResetEdge(name string) error {
	switch name {
	case ingestjob.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown IngestJob edge %s", name)
}

// MappingMutation represents an operation that mutates the Mapping nodes in the graph.
type MappingMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	confidence           *float64
	addconfidence        *float64
	model_name           *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	report               *uuid.UUID
	clearedreport        bool
	sentence             *uuid.UUID
	clearedsentence      bool
	attack_object        *uuid.UUID
	clearedattack_object bool
	done                 bool
	oldValue             func(context.Context) (*Mapping, error)
	predicates           []predicate.Mapping
}

var _ ent.Mutation = (*MappingMutation)(nil)

// mappingOption allows management of the mutation configuration using functional options.
type mappingOption func(*MappingMutation)

// newMappingMutation creates new mutation for the Mapping entity.
func newMappingMutation(c config, op Op, opts ...mappingOption) *MappingMutation {
	m := &MappingMutation{
		config:        c,
		op:            op,
		typ:           TypeMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMappingID sets the ID field of the mutation.
func withMappingID(id uuid.UUID) mappingOption {
	return func(m *MappingMutation) {
		var (
			err   error
			once  sync.Once
			value *Mapping
		)
		m.oldValue = func(ctx context.Context) (*Mapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Mapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMapping sets the old Mapping of the mutation.
func withMapping(node *Mapping) mappingOption {
	return func(m *MappingMutation) {
		m.oldValue = func(context.Context) (*Mapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Mapping entities.
func (m *MappingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MappingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MappingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Mapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *MappingMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *MappingMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Mapping entity.
// If the Mapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *MappingMutation) ResetReportID() {
	m.report = nil
}

// SetSentenceID sets the "sentence_id" field.
func (m *MappingMutation) SetSentenceID(u uuid.UUID) {
	m.sentence = &u
}

// SentenceID returns the value of the "sentence_id" field in the mutation.
func (m *MappingMutation) SentenceID() (r uuid.UUID, exists bool) {
	v := m.sentence
	if v == nil {
		return
	}
	return *v, true
}

// OldSentenceID returns the old "sentence_id" field's value of the Mapping entity.
// If the Mapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingMutation) OldSentenceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentenceID: %w", err)
	}
	return oldValue.SentenceID, nil
}

// ClearSentenceID clears the value of the "sentence_id" field.
func (m *MappingMutation) ClearSentenceID() {
	m.sentence = nil
	m.clearedFields[mapping.FieldSentenceID] = struct{}{}
}

// SentenceIDCleared returns if the "sentence_id" field was cleared in this mutation.
func (m *MappingMutation) SentenceIDCleared() bool {
	_, ok := m.clearedFields[mapping.FieldSentenceID]
	return ok
}

// ResetSentenceID resets all changes to the "sentence_id" field.
func (m *MappingMutation) ResetSentenceID() {
	m.sentence = nil
	delete(m.clearedFields, mapping.FieldSentenceID)
}

// SetAttackObjectID sets the "attack_object_id" field.
func (m *MappingMutation) SetAttackObjectID(u uuid.UUID) {
	m.attack_object = &u
}

// AttackObjectID returns the value of the "attack_object_id" field in the mutation.
func (m *MappingMutation) AttackObjectID() (r uuid.UUID, exists bool) {
	v := m.attack_object
	if v == nil {
		return
	}
	return *v, true
}

// OldAttackObjectID returns the old "attack_object_id" field's value of the Mapping entity.
// If the Mapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingMutation) OldAttackObjectID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttackObjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttackObjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttackObjectID: %w", err)
	}
	return oldValue.AttackObjectID, nil
}

// ClearAttackObjectID clears the value of the "attack_object_id" field.
func (m *MappingMutation) ClearAttackObjectID() {
	m.attack_object = nil
	m.clearedFields[mapping.FieldAttackObjectID] = struct{}{}
}

// AttackObjectIDCleared returns if the "attack_object_id" field was cleared in this mutation.
func (m *MappingMutation) AttackObjectIDCleared() bool {
	_, ok := m.clearedFields[mapping.FieldAttackObjectID]
	return ok
}

// ResetAttackObjectID resets all changes to the "attack_object_id" field.
func (m *MappingMutation) ResetAttackObjectID() {
	m.attack_object = nil
	delete(m.clearedFields, mapping.FieldAttackObjectID)
}

// SetConfidence sets the "confidence" field.
func (m *MappingMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *MappingMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Mapping entity.
// If the Mapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *MappingMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *MappingMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *MappingMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetModelName sets the "model_name" field.
func (m *MappingMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *MappingMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the Mapping entity.
// If the Mapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *MappingMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[mapping.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *MappingMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[mapping.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *MappingMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, mapping.FieldModelName)
}

// SetCreatedAt sets the "created_at" field.
func (m *MappingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MappingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Mapping entity.
// If the Mapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MappingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MappingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MappingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Mapping entity.
// If the Mapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MappingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *MappingMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[mapping.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *MappingMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *MappingMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *MappingMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// ClearSentence clears the "sentence" edge to the Sentence entity.
func (m *MappingMutation) ClearSentence() {
	m.clearedsentence = true
	m.clearedFields[mapping.FieldSentenceID] = struct{}{}
}

// SentenceCleared reports if the "sentence" edge to the Sentence entity was cleared.
func (m *MappingMutation) SentenceCleared() bool {
	return m.SentenceIDCleared() || m.clearedsentence
}

// SentenceIDs returns the "sentence" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SentenceID instead. It exists only for internal usage by the builders.
func (m *MappingMutation) SentenceIDs() (ids []uuid.UUID) {
	if id := m.sentence; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSentence resets all changes to the "sentence" edge.
func (m *MappingMutation) ResetSentence() {
	m.sentence = nil
	m.clearedsentence = false
}

// ClearAttackObject clears the "attack_object" edge to the AttackObject entity.
func (m *MappingMutation) ClearAttackObject() {
	m.clearedattack_object = true
	m.clearedFields[mapping.FieldAttackObjectID] = struct{}{}
}

// AttackObjectCleared reports if the "attack_object" edge to the AttackObject entity was cleared.
func (m *MappingMutation) AttackObjectCleared() bool {
	return m.AttackObjectIDCleared() || m.clearedattack_object
}

// AttackObjectIDs returns the "attack_object" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AttackObjectID instead. It exists only for internal usage by the builders.
func (m *MappingMutation) AttackObjectIDs() (ids []uuid.UUID) {
	if id := m.attack_object; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAttackObject resets all changes to the "attack_object" edge.
func (m *MappingMutation) ResetAttackObject() {
	m.attack_object = nil
	m.clearedattack_object = false
}

// Where appends a list predicates to the MappingMutation builder.
func (m *MappingMutation) Where(ps ...predicate.Mapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Mapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Mapping).
func (m *MappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MappingMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.report != nil {
		fields = append(fields, mapping.FieldReportID)
	}
	if m.sentence != nil {
		fields = append(fields, mapping.FieldSentenceID)
	}
	if m.attack_object != nil {
		fields = append(fields, mapping.FieldAttackObjectID)
	}
	if m.confidence != nil {
		fields = append(fields, mapping.FieldConfidence)
	}
	if m.model_name != nil {
		fields = append(fields, mapping.FieldModelName)
	}
	if m.created_at != nil {
		fields = append(fields, mapping.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mapping.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mapping.FieldReportID:
		return m.ReportID()
	case mapping.FieldSentenceID:
		return m.SentenceID()
	case mapping.FieldAttackObjectID:
		return m.AttackObjectID()
	case mapping.FieldConfidence:
		return m.Confidence()
	case mapping.FieldModelName:
		return m.ModelName()
	case mapping.FieldCreatedAt:
		return m.CreatedAt()
	case mapping.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mapping.FieldReportID:
		return m.OldReportID(ctx)
	case mapping.FieldSentenceID:
		return m.OldSentenceID(ctx)
	case mapping.FieldAttackObjectID:
		return m.OldAttackObjectID(ctx)
	case mapping.FieldConfidence:
		return m.OldConfidence(ctx)
	case mapping.FieldModelName:
		return m.OldModelName(ctx)
	case mapping.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mapping.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Mapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mapping.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case mapping.FieldSentenceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentenceID(v)
		return nil
	case mapping.FieldAttackObjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttackObjectID(v)
		return nil
	case mapping.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case mapping.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case mapping.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mapping.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Mapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MappingMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, mapping.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MappingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mapping.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mapping.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Mapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MappingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mapping.FieldSentenceID) {
		fields = append(fields, mapping.FieldSentenceID)
	}
	if m.FieldCleared(mapping.FieldAttackObjectID) {
		fields = append(fields, mapping.FieldAttackObjectID)
	}
	if m.FieldCleared(mapping.FieldModelName) {
		fields = append(fields, mapping.FieldModelName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MappingMutation) ClearField(name string) error {
	switch name {
	case mapping.FieldSentenceID:
		m.ClearSentenceID()
		return nil
	case mapping.FieldAttackObjectID:
		m.ClearAttackObjectID()
		return nil
	case mapping.FieldModelName:
		m.ClearModelName()
		return nil
	}
	return fmt.Errorf("unknown Mapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MappingMutation) ResetField(name string) error {
	switch name {
	case mapping.FieldReportID:
		m.ResetReportID()
		return nil
	case mapping.FieldSentenceID:
		m.ResetSentenceID()
		return nil
	case mapping.FieldAttackObjectID:
		m.ResetAttackObjectID()
		return nil
	case mapping.FieldConfidence:
		m.ResetConfidence()
		return nil
	case mapping.FieldModelName:
		m.ResetModelName()
		return nil
	case mapping.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mapping.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Mapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.report != nil {
		edges = append(edges, mapping.EdgeReport)
	}
	if m.sentence != nil {
		edges = append(edges, mapping.EdgeSentence)
	}
	if m.attack_object != nil {
		edges = append(edges, mapping.EdgeAttackObject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MappingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mapping.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case mapping.EdgeSentence:
		if id := m.sentence; id != nil {
			return []ent.Value{*id}
		}
	case mapping.EdgeAttackObject:
		if id := m.attack_object; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedreport {
		edges = append(edges, mapping.EdgeReport)
	}
	if m.clearedsentence {
		edges = append(edges, mapping.EdgeSentence)
	}
	if m.clearedattack_object {
		edges = append(edges, mapping.EdgeAttackObject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MappingMutation) EdgeCleared(name string) bool {
	switch name {
	case mapping.EdgeReport:
		return m.clearedreport
	case mapping.EdgeSentence:
		return m.clearedsentence
	case mapping.EdgeAttackObject:
		return m.clearedattack_object
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MappingMutation) ClearEdge(name string) error {
	switch name {
	case mapping.EdgeReport:
		m.ClearReport()
		return nil
	case mapping.EdgeSentence:
		m.ClearSentence()
		return nil
	case mapping.EdgeAttackObject:
		m.ClearAttackObject()
		return nil
	}
	return fmt.Errorf("unknown Mapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MappingMutation) ResetEdge(name string) error {
	switch name {
	case mapping.EdgeReport:
		m.ResetReport()
		return nil
	case mapping.EdgeSentence:
		m.ResetSentence()
		return nil
	case mapping.EdgeAttackObject:
		m.ResetAttackObject()
		return nil
	}
	return fmt.Errorf("unknown Mapping edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	text              *string
	created_by        *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	document          *uuid.UUID
	cleareddocument   bool
	sentences         map[uuid.UUID]struct{}
	removedsentences  map[uuid.UUID]struct{}
	clearedsentences  bool
	indicators        map[uuid.UUID]struct{}
	removedindicators map[uuid.UUID]struct{}
	clearedindicators bool
	mappings          map[uuid.UUID]struct{}
	removedmappings   map[uuid.UUID]struct{}
	clearedmappings   bool
	done              bool
	oldValue          func(context.Context) (*Report, error)
	predicates        []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id uuid.UUID) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ReportMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ReportMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ReportMutation) ResetName() {
	m.name = nil
}

// SetDocumentID sets the "document_id" field.
func (m *ReportMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ReportMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDocumentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ClearDocumentID clears the value of the "document_id" field.
func (m *ReportMutation) ClearDocumentID() {
	m.document = nil
	m.clearedFields[report.FieldDocumentID] = struct{}{}
}

// DocumentIDCleared returns if the "document_id" field was cleared in this mutation.
func (m *ReportMutation) DocumentIDCleared() bool {
	_, ok := m.clearedFields[report.FieldDocumentID]
	return ok
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ReportMutation) ResetDocumentID() {
	m.document = nil
	delete(m.clearedFields, report.FieldDocumentID)
}

// SetText sets the "text" field.
func (m *ReportMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ReportMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ReportMutation) ResetText() {
	m.text = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ReportMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ReportMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ReportMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[report.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ReportMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[report.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ReportMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, report.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ReportMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[report.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ReportMutation) DocumentCleared() bool {
	return m.DocumentIDCleared() || m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ReportMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddSentenceIDs adds the "sentences" edge to the Sentence entity by ids.
func (m *ReportMutation) AddSentenceIDs(ids ...uuid.UUID) {
	if m.sentences == nil {
		m.sentences = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sentences[ids[i]] = struct{}{}
	}
}

// ClearSentences clears the "sentences" edge to the Sentence entity.
func (m *ReportMutation) ClearSentences() {
	m.clearedsentences = true
}

// SentencesCleared reports if the "sentences" edge to the Sentence entity was cleared.
func (m *ReportMutation) SentencesCleared() bool {
	return m.clearedsentences
}

// RemoveSentenceIDs removes the "sentences" edge to the Sentence entity by IDs.
func (m *ReportMutation) RemoveSentenceIDs(ids ...uuid.UUID) {
	if m.removedsentences == nil {
		m.removedsentences = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sentences, ids[i])
		m.removedsentences[ids[i]] = struct{}{}
	}
}

// RemovedSentences returns the removed IDs of the "sentences" edge to the Sentence entity.
func (m *ReportMutation) RemovedSentencesIDs() (ids []uuid.UUID) {
	for id := range m.removedsentences {
		ids = append(ids, id)
	}
	return
}

// SentencesIDs returns the "sentences" edge IDs in the mutation.
func (m *ReportMutation) SentencesIDs() (ids []uuid.UUID) {
	for id := range m.sentences {
		ids = append(ids, id)
	}
	return
}

// ResetSentences resets all changes to the "sentences" edge.
func (m *ReportMutation) ResetSentences() {
	m.sentences = nil
	m.clearedsentences = false
	m.removedsentences = nil
}

// AddIndicatorIDs adds the "indicators" edge to the Indicator entity by ids.
func (m *ReportMutation) AddIndicatorIDs(ids ...uuid.UUID) {
	if m.indicators == nil {
		m.indicators = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.indicators[ids[i]] = struct{}{}
	}
}

// ClearIndicators clears the "indicators" edge to the Indicator entity.
func (m *ReportMutation) ClearIndicators() {
	m.clearedindicators = true
}

// IndicatorsCleared reports if the "indicators" edge to the Indicator entity was cleared.
func (m *ReportMutation) IndicatorsCleared() bool {
	return m.clearedindicators
}

// RemoveIndicatorIDs removes the "indicators" edge to the Indicator entity by IDs.
func (m *ReportMutation) RemoveIndicatorIDs(ids ...uuid.UUID) {
	if m.removedindicators == nil {
		m.removedindicators = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.indicators, ids[i])
		m.removedindicators[ids[i]] = struct{}{}
	}
}

// RemovedIndicators returns the removed IDs of the "indicators" edge to the Indicator entity.
func (m *ReportMutation) RemovedIndicatorsIDs() (ids []uuid.UUID) {
	for id := range m.removedindicators {
		ids = append(ids, id)
	}
	return
}

// IndicatorsIDs returns the "indicators" edge IDs in the mutation.
func (m *ReportMutation) IndicatorsIDs() (ids []uuid.UUID) {
	for id := range m.indicators {
		ids = append(ids, id)
	}
	return
}

// ResetIndicators resets all changes to the "indicators" edge.
func (m *ReportMutation) ResetIndicators() {
	m.indicators = nil
	m.clearedindicators = false
	m.removedindicators = nil
}

// AddMappingIDs adds the "mappings" edge to the Mapping entity by ids.
func (m *ReportMutation) AddMappingIDs(ids ...uuid.UUID) {
	if m.mappings == nil {
		m.mappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.mappings[ids[i]] = struct{}{}
	}
}

// ClearMappings clears the "mappings" edge to the Mapping entity.
func (m *ReportMutation) ClearMappings() {
	m.clearedmappings = true
}

// MappingsCleared reports if the "mappings" edge to the Mapping entity was cleared.
func (m *ReportMutation) MappingsCleared() bool {
	return m.clearedmappings
}

// RemoveMappingIDs removes the "mappings" edge to the Mapping entity by IDs.
func (m *ReportMutation) RemoveMappingIDs(ids ...uuid.UUID) {
	if m.removedmappings == nil {
		m.removedmappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.mappings, ids[i])
		m.removedmappings[ids[i]] = struct{}{}
	}
}

// RemovedMappings returns the removed IDs of the "mappings" edge to the Mapping entity.
func (m *ReportMutation) RemovedMappingsIDs() (ids []uuid.UUID) {
	for id := range m.removedmappings {
		ids = append(ids, id)
	}
	return
}

// MappingsIDs returns the "mappings" edge IDs in the mutation.
func (m *ReportMutation) MappingsIDs() (ids []uuid.UUID) {
	for id := range m.mappings {
		ids = append(ids, id)
	}
	return
}

// ResetMappings resets all changes to the "mappings" edge.
func (m *ReportMutation) ResetMappings() {
	m.mappings = nil
	m.clearedmappings = false
	m.removedmappings = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, report.FieldName)
	}
	if m.document != nil {
		fields = append(fields, report.FieldDocumentID)
	}
	if m.text != nil {
		fields = append(fields, report.FieldText)
	}
	if m.created_by != nil {
		fields = append(fields, report.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, report.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldName:
		return m.Name()
	case report.FieldDocumentID:
		return m.DocumentID()
	case report.FieldText:
		return m.Text()
	case report.FieldCreatedBy:
		return m.CreatedBy()
	case report.FieldCreatedAt:
		return m.CreatedAt()
	case report.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldName:
		return m.OldName(ctx)
	case report.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case report.FieldText:
		return m.OldText(ctx)
	case report.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case report.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case report.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case report.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case report.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case report.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldDocumentID) {
		fields = append(fields, report.FieldDocumentID)
	}
	if m.FieldCleared(report.FieldCreatedBy) {
		fields = append(fields, report.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldDocumentID:
		m.ClearDocumentID()
		return nil
	case report.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldName:
		m.ResetName()
		return nil
	case report.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case report.FieldText:
		m.ResetText()
		return nil
	case report.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case report.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.document != nil {
		edges = append(edges, report.EdgeDocument)
	}
	if m.sentences != nil {
		edges = append(edges, report.EdgeSentences)
	}
	if m.indicators != nil {
		edges = append(edges, report.EdgeIndicators)
	}
	if m.mappings != nil {
		edges = append(edges, report.EdgeMappings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeSentences:
		ids := make([]ent.Value, 0, len(m.sentences))
		for id := range m.sentences {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeIndicators:
		ids := make([]ent.Value, 0, len(m.indicators))
		for id := range m.indicators {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeMappings:
		ids := make([]ent.Value, 0, len(m.mappings))
		for id := range m.mappings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedsentences != nil {
		edges = append(edges, report.EdgeSentences)
	}
	if m.removedindicators != nil {
		edges = append(edges, report.EdgeIndicators)
	}
	if m.removedmappings != nil {
		edges = append(edges, report.EdgeMappings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeSentences:
		ids := make([]ent.Value, 0, len(m.removedsentences))
		for id := range m.removedsentences {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeIndicators:
		ids := make([]ent.Value, 0, len(m.removedindicators))
		for id := range m.removedindicators {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeMappings:
		ids := make([]ent.Value, 0, len(m.removedmappings))
		for id := range m.removedmappings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareddocument {
		edges = append(edges, report.EdgeDocument)
	}
	if m.clearedsentences {
		edges = append(edges, report.EdgeSentences)
	}
	if m.clearedindicators {
		edges = append(edges, report.EdgeIndicators)
	}
	if m.clearedmappings {
		edges = append(edges, report.EdgeMappings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeDocument:
		return m.cleareddocument
	case report.EdgeSentences:
		return m.clearedsentences
	case report.EdgeIndicators:
		return m.clearedindicators
	case report.EdgeMappings:
		return m.clearedmappings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	case report.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeDocument:
		m.ResetDocument()
		return nil
	case report.EdgeSentences:
		m.ResetSentences()
		return nil
	case report.EdgeIndicators:
		m.ResetIndicators()
		return nil
	case report.EdgeMappings:
		m.ResetMappings()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// SentenceMutation represents an operation that mutates the Sentence nodes in the graph.
type SentenceMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	text            *string
	_order          *int
	add_order       *int
	disposition     *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	report          *uuid.UUID
	clearedreport   bool
	document        *uuid.UUID
	cleareddocument bool
	mappings        map[uuid.UUID]struct{}
	removedmappings map[uuid.UUID]struct{}
	clearedmappings bool
	done            bool
	oldValue        func(context.Context) (*Sentence, error)
	predicates      []predicate.Sentence
}

var _ ent.Mutation = (*SentenceMutation)(nil)

// sentenceOption allows management of the mutation configuration using functional options.
type sentenceOption func(*SentenceMutation)

// newSentenceMutation creates new mutation for the Sentence entity.
func newSentenceMutation(c config, op Op, opts ...sentenceOption) *SentenceMutation {
	m := &SentenceMutation{
		config:        c,
		op:            op,
		typ:           TypeSentence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSentenceID sets the ID field of the mutation.
func withSentenceID(id uuid.UUID) sentenceOption {
	return func(m *SentenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Sentence
		)
		m.oldValue = func(ctx context.Context) (*Sentence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sentence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSentence sets the old Sentence of the mutation.
func withSentence(node *Sentence) sentenceOption {
	return func(m *SentenceMutation) {
		m.oldValue = func(context.Context) (*Sentence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SentenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SentenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Sentence entities.
func (m *SentenceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SentenceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SentenceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sentence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetText sets the "text" field.
func (m *SentenceMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *SentenceMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *SentenceMutation) ResetText() {
	m.text = nil
}

// SetReportID sets the "report_id" field.
func (m *SentenceMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *SentenceMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *SentenceMutation) ResetReportID() {
	m.report = nil
}

// SetDocumentID sets the "document_id" field.
func (m *SentenceMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *SentenceMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldDocumentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ClearDocumentID clears the value of the "document_id" field.
func (m *SentenceMutation) ClearDocumentID() {
	m.document = nil
	m.clearedFields[sentence.FieldDocumentID] = struct{}{}
}

// DocumentIDCleared returns if the "document_id" field was cleared in this mutation.
func (m *SentenceMutation) DocumentIDCleared() bool {
	_, ok := m.clearedFields[sentence.FieldDocumentID]
	return ok
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *SentenceMutation) ResetDocumentID() {
	m.document = nil
	delete(m.clearedFields, sentence.FieldDocumentID)
}

// SetOrder sets the "order" field.
func (m *SentenceMutation) SetOrder(i int) {
	m._order = &i
	m.add_order = nil
}

// Order returns the value of the "order" field in the mutation.
func (m *SentenceMutation) Order() (r int, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrder returns the old "order" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrder: %w", err)
	}
	return oldValue.Order, nil
}

// AddOrder adds i to the "order" field.
func (m *SentenceMutation) AddOrder(i int) {
	if m.add_order != nil {
		*m.add_order += i
	} else {
		m.add_order = &i
	}
}

// AddedOrder returns the value that was added to the "order" field in this mutation.
func (m *SentenceMutation) AddedOrder() (r int, exists bool) {
	v := m.add_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrder resets all changes to the "order" field.
func (m *SentenceMutation) ResetOrder() {
	m._order = nil
	m.add_order = nil
}

// SetDisposition sets the "disposition" field.
func (m *SentenceMutation) SetDisposition(s string) {
	m.disposition = &s
}

// Disposition returns the value of the "disposition" field in the mutation.
func (m *SentenceMutation) Disposition() (r string, exists bool) {
	v := m.disposition
	if v == nil {
		return
	}
	return *v, true
}

// OldDisposition returns the old "disposition" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldDisposition(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisposition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisposition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisposition: %w", err)
	}
	return oldValue.Disposition, nil
}

// ClearDisposition clears the value of the "disposition" field.
func (m *SentenceMutation) ClearDisposition() {
	m.disposition = nil
	m.clearedFields[sentence.FieldDisposition] = struct{}{}
}

// DispositionCleared returns if the "disposition" field was cleared in this mutation.
func (m *SentenceMutation) DispositionCleared() bool {
	_, ok := m.clearedFields[sentence.FieldDisposition]
	return ok
}

// ResetDisposition resets all changes to the "disposition" field.
func (m *SentenceMutation) ResetDisposition() {
	m.disposition = nil
	delete(m.clearedFields, sentence.FieldDisposition)
}

// SetCreatedAt sets the "created_at" field.
func (m *SentenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SentenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SentenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SentenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SentenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SentenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *SentenceMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[sentence.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *SentenceMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *SentenceMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *SentenceMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *SentenceMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[sentence.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *SentenceMutation) DocumentCleared() bool {
	return m.DocumentIDCleared() || m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *SentenceMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *SentenceMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddMappingIDs adds the "mappings" edge to the Mapping entity by ids.
func (m *SentenceMutation) AddMappingIDs(ids ...uuid.UUID) {
	if m.mappings == nil {
		m.mappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.mappings[ids[i]] = struct{}{}
	}
}

// ClearMappings clears the "mappings" edge to the Mapping entity.
func (m *SentenceMutation) ClearMappings() {
	m.clearedmappings = true
}

// MappingsCleared reports if the "mappings" edge to the Mapping entity was cleared.
func (m *SentenceMutation) MappingsCleared() bool {
	return m.clearedmappings
}

// RemoveMappingIDs removes the "mappings" edge to the Mapping entity by IDs.
func (m *SentenceMutation) RemoveMappingIDs(ids ...uuid.UUID) {
	if m.removedmappings == nil {
		m.removedmappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.mappings, ids[i])
		m.removedmappings[ids[i]] = struct{}{}
	}
}

// RemovedMappings returns the removed IDs of the "mappings" edge to the Mapping entity.
func (m *SentenceMutation) RemovedMappingsIDs() (ids []uuid.UUID) {
	for id := range m.removedmappings {
		ids = append(ids, id)
	}
	return
}

// MappingsIDs returns the "mappings" edge IDs in the mutation.
func (m *SentenceMutation) MappingsIDs() (ids []uuid.UUID) {
	for id := range m.mappings {
		ids = append(ids, id)
	}
	return
}

// ResetMappings resets all changes to the "mappings" edge.
func (m *SentenceMutation) ResetMappings() {
	m.mappings = nil
	m.clearedmappings = false
	m.removedmappings = nil
}

// Where appends a list predicates to the SentenceMutation builder.
func (m *SentenceMutation) Where(ps ...predicate.Sentence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SentenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SentenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sentence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SentenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SentenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sentence).
func (m *SentenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SentenceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.text != nil {
		fields = append(fields, sentence.FieldText)
	}
	if m.report != nil {
		fields = append(fields, sentence.FieldReportID)
	}
	if m.document != nil {
		fields = append(fields, sentence.FieldDocumentID)
	}
	if m._order != nil {
		fields = append(fields, sentence.FieldOrder)
	}
	if m.disposition != nil {
		fields = append(fields, sentence.FieldDisposition)
	}
	if m.created_at != nil {
		fields = append(fields, sentence.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sentence.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SentenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sentence.FieldText:
		return m.Text()
	case sentence.FieldReportID:
		return m.ReportID()
	case sentence.FieldDocumentID:
		return m.DocumentID()
	case sentence.FieldOrder:
		return m.Order()
	case sentence.FieldDisposition:
		return m.Disposition()
	case sentence.FieldCreatedAt:
		return m.CreatedAt()
	case sentence.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SentenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sentence.FieldText:
		return m.OldText(ctx)
	case sentence.FieldReportID:
		return m.OldReportID(ctx)
	case sentence.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case sentence.FieldOrder:
		return m.OldOrder(ctx)
	case sentence.FieldDisposition:
		return m.OldDisposition(ctx)
	case sentence.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sentence.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Sentence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SentenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sentence.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case sentence.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case sentence.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case sentence.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrder(v)
		return nil
	case sentence.FieldDisposition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisposition(v)
		return nil
	case sentence.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sentence.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Sentence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SentenceMutation) AddedFields() []string {
	var fields []string
	if m.add_order != nil {
		fields = append(fields, sentence.FieldOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SentenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sentence.FieldOrder:
		return m.AddedOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SentenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sentence.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Sentence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SentenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sentence.FieldDocumentID) {
		fields = append(fields, sentence.FieldDocumentID)
	}
	if m.FieldCleared(sentence.FieldDisposition) {
		fields = append(fields, sentence.FieldDisposition)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SentenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SentenceMutation) ClearField(name string) error {
	switch name {
	case sentence.FieldDocumentID:
		m.ClearDocumentID()
		return nil
	case sentence.FieldDisposition:
		m.ClearDisposition()
		return nil
	}
	return fmt.Errorf("unknown Sentence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SentenceMutation) ResetField(name string) error {
	switch name {
	case sentence.FieldText:
		m.ResetText()
		return nil
	case sentence.FieldReportID:
		m.ResetReportID()
		return nil
	case sentence.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case sentence.FieldOrder:
		m.ResetOrder()
		return nil
	case sentence.FieldDisposition:
		m.ResetDisposition()
		return nil
	case sentence.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sentence.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Sentence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SentenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.report != nil {
		edges = append(edges, sentence.EdgeReport)
	}
	if m.document != nil {
		edges = append(edges, sentence.EdgeDocument)
	}
	if m.mappings != nil {
		edges = append(edges, sentence.EdgeMappings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SentenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sentence.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case sentence.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case sentence.EdgeMappings:
		ids := make([]ent.Value, 0, len(m.mappings))
		for id := range m.mappings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SentenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmappings != nil {
		edges = append(edges, sentence.EdgeMappings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SentenceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sentence.EdgeMappings:
		ids := make([]ent.Value, 0, len(m.removedmappings))
		for id := range m.removedmappings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SentenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedreport {
		edges = append(edges, sentence.EdgeReport)
	}
	if m.cleareddocument {
		edges = append(edges, sentence.EdgeDocument)
	}
	if m.clearedmappings {
		edges = append(edges, sentence.EdgeMappings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SentenceMutation) EdgeCleared(name string) bool {
	switch name {
	case sentence.EdgeReport:
		return m.clearedreport
	case sentence.EdgeDocument:
		return m.cleareddocument
	case sentence.EdgeMappings:
		return m.clearedmappings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SentenceMutation) ClearEdge(name string) error {
	switch name {
	case sentence.EdgeReport:
		m.ClearReport()
		return nil
	case sentence.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Sentence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SentenceMutation) ResetEdge(name string) error {
	switch name {
	case sentence.EdgeReport:
		m.ResetReport()
		return nil
	case sentence.EdgeDocument:
		m.ResetDocument()
		return nil
	case sentence.EdgeMappings:
		m.ResetMappings()
		return nil
	}
	return fmt.Errorf("unknown Sentence edge %s", name)
}
