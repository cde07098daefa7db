// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/attackobject"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/mapping"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/predicate"
)

// AttackObjectUpdate is the builder for updating AttackObject entities.
type AttackObjectUpdate struct {
	config
	hooks    []Hook
	mutation *AttackObjectMutation
}

// Where appends a list predicates to the AttackObjectUpdate builder.
func (_u *AttackObjectUpdate) Where(ps ...predicate.AttackObject) *AttackObjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *AttackObjectUpdate) SetKind(v string) *AttackObjectUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AttackObjectUpdate) SetNillableKind(v *string) *AttackObjectUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AttackObjectUpdate) SetName(v string) *AttackObjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AttackObjectUpdate) SetNillableName(v *string) *AttackObjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStixID sets the "stix_id" field.
func (_u *AttackObjectUpdate) SetStixID(v string) *AttackObjectUpdate {
	_u.mutation.SetStixID(v)
	return _u
}

// SetNillableStixID sets the "stix_id" field if the given value is not nil.
func (_u *AttackObjectUpdate) SetNillableStixID(v *string) *AttackObjectUpdate {
	if v != nil {
		_u.SetStixID(*v)
	}
	return _u
}

// SetAttackID sets the "attack_id" field.
func (_u *AttackObjectUpdate) SetAttackID(v string) *AttackObjectUpdate {
	_u.mutation.SetAttackID(v)
	return _u
}

// SetNillableAttackID sets the "attack_id" field if the given value is not nil.
func (_u *AttackObjectUpdate) SetNillableAttackID(v *string) *AttackObjectUpdate {
	if v != nil {
		_u.SetAttackID(*v)
	}
	return _u
}

// SetAttackURL sets the "attack_url" field.
func (_u *AttackObjectUpdate) SetAttackURL(v string) *AttackObjectUpdate {
	_u.mutation.SetAttackURL(v)
	return _u
}

// SetNillableAttackURL sets the "attack_url" field if the given value is not nil.
func (_u *AttackObjectUpdate) SetNillableAttackURL(v *string) *AttackObjectUpdate {
	if v != nil {
		_u.SetAttackURL(*v)
	}
	return _u
}

// SetMatrix sets the "matrix" field.
func (_u *AttackObjectUpdate) SetMatrix(v string) *AttackObjectUpdate {
	_u.mutation.SetMatrix(v)
	return _u
}

// SetNillableMatrix sets the "matrix" field if the given value is not nil.
func (_u *AttackObjectUpdate) SetNillableMatrix(v *string) *AttackObjectUpdate {
	if v != nil {
		_u.SetMatrix(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AttackObjectUpdate) SetCreatedAt(v time.Time) *AttackObjectUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AttackObjectUpdate) SetNillableCreatedAt(v *time.Time) *AttackObjectUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AttackObjectUpdate) SetUpdatedAt(v time.Time) *AttackObjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMappingIDs adds the "mappings" edge to the Mapping entity by IDs.
func (_u *AttackObjectUpdate) AddMappingIDs(ids ...uuid.UUID) *AttackObjectUpdate {
	_u.mutation.AddMappingIDs(ids...)
	return _u
}

// AddMappings adds the "mappings" edges to the Mapping entity.
func (_u *AttackObjectUpdate) AddMappings(v ...*Mapping) *AttackObjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingIDs(ids...)
}

// Mutation returns the AttackObjectMutation object of the builder.
func (_u *AttackObjectUpdate) Mutation() *AttackObjectMutation {
	return _u.mutation
}

// ClearMappings clears all "mappings" edges to the Mapping entity.
func (_u *AttackObjectUpdate) ClearMappings() *AttackObjectUpdate {
	_u.mutation.ClearMappings()
	return _u
}

// RemoveMappingIDs removes the "mappings" edge to Mapping entities by IDs.
func (_u *AttackObjectUpdate) RemoveMappingIDs(ids ...uuid.UUID) *AttackObjectUpdate {
	_u.mutation.RemoveMappingIDs(ids...)
	return _u
}

// RemoveMappings removes "mappings" edges to Mapping entities.
func (_u *AttackObjectUpdate) RemoveMappings(v ...*Mapping) *AttackObjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttackObjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttackObjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttackObjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttackObjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AttackObjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := attackobject.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttackObjectUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := attackobject.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttackObject.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := attackobject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AttackObject.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StixID(); ok {
		if err := attackobject.StixIDValidator(v); err != nil {
			return &ValidationError{Name: "stix_id", err: fmt.Errorf(`ent: validator failed for field "AttackObject.stix_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttackID(); ok {
		if err := attackobject.AttackIDValidator(v); err != nil {
			return &ValidationError{Name: "attack_id", err: fmt.Errorf(`ent: validator failed for field "AttackObject.attack_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Matrix(); ok {
		if err := attackobject.MatrixValidator(v); err != nil {
			return &ValidationError{Name: "matrix", err: fmt.Errorf(`ent: validator failed for field "AttackObject.matrix": %w`, err)}
		}
	}
	return nil
}

func (_u *AttackObjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attackobject.Table, attackobject.Columns, sqlgraph.NewFieldSpec(attackobject.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(attackobject.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(attackobject.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StixID(); ok {
		_spec.SetField(attackobject.FieldStixID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttackID(); ok {
		_spec.SetField(attackobject.FieldAttackID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttackURL(); ok {
		_spec.SetField(attackobject.FieldAttackURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Matrix(); ok {
		_spec.SetField(attackobject.FieldMatrix, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(attackobject.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(attackobject.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attackobject.MappingsTable,
			Columns: []string{attackobject.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMappingsIDs(); len(nodes) > 0 && !_u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attackobject.MappingsTable,
			Columns: []string{attackobject.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attackobject.MappingsTable,
			Columns: []string{attackobject.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attackobject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttackObjectUpdateOne is the builder for updating a single AttackObject entity.
type AttackObjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttackObjectMutation
}

// SetKind sets the "kind" field.
func (_u *AttackObjectUpdateOne) SetKind(v string) *AttackObjectUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AttackObjectUpdateOne) SetNillableKind(v *string) *AttackObjectUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AttackObjectUpdateOne) SetName(v string) *AttackObjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AttackObjectUpdateOne) SetNillableName(v *string) *AttackObjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStixID sets the "stix_id" field.
func (_u *AttackObjectUpdateOne) SetStixID(v string) *AttackObjectUpdateOne {
	_u.mutation.SetStixID(v)
	return _u
}

// SetNillableStixID sets the "stix_id" field if the given value is not nil.
func (_u *AttackObjectUpdateOne) SetNillableStixID(v *string) *AttackObjectUpdateOne {
	if v != nil {
		_u.SetStixID(*v)
	}
	return _u
}

// SetAttackID sets the "attack_id" field.
func (_u *AttackObjectUpdateOne) SetAttackID(v string) *AttackObjectUpdateOne {
	_u.mutation.SetAttackID(v)
	return _u
}

// SetNillableAttackID sets the "attack_id" field if the given value is not nil.
func (_u *AttackObjectUpdateOne) SetNillableAttackID(v *string) *AttackObjectUpdateOne {
	if v != nil {
		_u.SetAttackID(*v)
	}
	return _u
}

// SetAttackURL sets the "attack_url" field.
func (_u *AttackObjectUpdateOne) SetAttackURL(v string) *AttackObjectUpdateOne {
	_u.mutation.SetAttackURL(v)
	return _u
}

// SetNillableAttackURL sets the "attack_url" field if the given value is not nil.
func (_u *AttackObjectUpdateOne) SetNillableAttackURL(v *string) *AttackObjectUpdateOne {
	if v != nil {
		_u.SetAttackURL(*v)
	}
	return _u
}

// SetMatrix sets the "matrix" field.
func (_u *AttackObjectUpdateOne) SetMatrix(v string) *AttackObjectUpdateOne {
	_u.mutation.SetMatrix(v)
	return _u
}

// SetNillableMatrix sets the "matrix" field if the given value is not nil.
func (_u *AttackObjectUpdateOne) SetNillableMatrix(v *string) *AttackObjectUpdateOne {
	if v != nil {
		_u.SetMatrix(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AttackObjectUpdateOne) SetCreatedAt(v time.Time) *AttackObjectUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AttackObjectUpdateOne) SetNillableCreatedAt(v *time.Time) *AttackObjectUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AttackObjectUpdateOne) SetUpdatedAt(v time.Time) *AttackObjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMappingIDs adds the "mappings" edge to the Mapping entity by IDs.
func (_u *AttackObjectUpdateOne) AddMappingIDs(ids ...uuid.UUID) *AttackObjectUpdateOne {
	_u.mutation.AddMappingIDs(ids...)
	return _u
}

// AddMappings adds the "mappings" edges to the Mapping entity.
func (_u *AttackObjectUpdateOne) AddMappings(v ...*Mapping) *AttackObjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingIDs(ids...)
}

// Mutation returns the AttackObjectMutation object of the builder.
func (_u *AttackObjectUpdateOne) Mutation() *AttackObjectMutation {
	return _u.mutation
}

// ClearMappings clears all "mappings" edges to the Mapping entity.
func (_u *AttackObjectUpdateOne) ClearMappings() *AttackObjectUpdateOne {
	_u.mutation.ClearMappings()
	return _u
}

// RemoveMappingIDs removes the "mappings" edge to Mapping entities by IDs.
func (_u *AttackObjectUpdateOne) RemoveMappingIDs(ids ...uuid.UUID) *AttackObjectUpdateOne {
	_u.mutation.RemoveMappingIDs(ids...)
	return _u
}

// RemoveMappings removes "mappings" edges to Mapping entities.
func (_u *AttackObjectUpdateOne) RemoveMappings(v ...*Mapping) *AttackObjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingIDs(ids...)
}

// Where appends a list predicates to the AttackObjectUpdate builder.
func (_u *AttackObjectUpdateOne) Where(ps ...predicate.AttackObject) *AttackObjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttackObjectUpdateOne) Select(field string, fields ...string) *AttackObjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttackObject entity.
func (_u *AttackObjectUpdateOne) Save(ctx context.Context) (*AttackObject, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttackObjectUpdateOne) SaveX(ctx context.Context) *AttackObject {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttackObjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttackObjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AttackObjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := attackobject.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttackObjectUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := attackobject.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttackObject.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := attackobject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AttackObject.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StixID(); ok {
		if err := attackobject.StixIDValidator(v); err != nil {
			return &ValidationError{Name: "stix_id", err: fmt.Errorf(`ent: validator failed for field "AttackObject.stix_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttackID(); ok {
		if err := attackobject.AttackIDValidator(v); err != nil {
			return &ValidationError{Name: "attack_id", err: fmt.Errorf(`ent: validator failed for field "AttackObject.attack_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Matrix(); ok {
		if err := attackobject.MatrixValidator(v); err != nil {
			return &ValidationError{Name: "matrix", err: fmt.Errorf(`ent: validator failed for field "AttackObject.matrix": %w`, err)}
		}
	}
	return nil
}

func (_u *AttackObjectUpdateOne) sqlSave(ctx context.Context) (_node *AttackObject, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attackobject.Table, attackobject.Columns, sqlgraph.NewFieldSpec(attackobject.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttackObject.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attackobject.FieldID)
		for _, f := range fields {
			if !attackobject.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attackobject.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(attackobject.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(attackobject.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StixID(); ok {
		_spec.SetField(attackobject.FieldStixID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttackID(); ok {
		_spec.SetField(attackobject.FieldAttackID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttackURL(); ok {
		_spec.SetField(attackobject.FieldAttackURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Matrix(); ok {
		_spec.SetField(attackobject.FieldMatrix, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(attackobject.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(attackobject.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attackobject.MappingsTable,
			Columns: []string{attackobject.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMappingsIDs(); len(nodes) > 0 && !_u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attackobject.MappingsTable,
			Columns: []string{attackobject.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attackobject.MappingsTable,
			Columns: []string{attackobject.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AttackObject{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attackobject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
