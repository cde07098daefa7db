// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/attackobject"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/mapping"
)

// AttackObjectCreate is the builder for creating a AttackObject entity.
type AttackObjectCreate struct {
	config
	mutation *AttackObjectMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *AttackObjectCreate) SetKind(v string) *AttackObjectCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AttackObjectCreate) SetName(v string) *AttackObjectCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStixID sets the "stix_id" field.
func (_c *AttackObjectCreate) SetStixID(v string) *AttackObjectCreate {
	_c.mutation.SetStixID(v)
	return _c
}

// SetAttackID sets the "attack_id" field.
func (_c *AttackObjectCreate) SetAttackID(v string) *AttackObjectCreate {
	_c.mutation.SetAttackID(v)
	return _c
}

// SetAttackURL sets the "attack_url" field.
func (_c *AttackObjectCreate) SetAttackURL(v string) *AttackObjectCreate {
	_c.mutation.SetAttackURL(v)
	return _c
}

// SetMatrix sets the "matrix" field.
func (_c *AttackObjectCreate) SetMatrix(v string) *AttackObjectCreate {
	_c.mutation.SetMatrix(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttackObjectCreate) SetCreatedAt(v time.Time) *AttackObjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttackObjectCreate) SetNillableCreatedAt(v *time.Time) *AttackObjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AttackObjectCreate) SetUpdatedAt(v time.Time) *AttackObjectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AttackObjectCreate) SetNillableUpdatedAt(v *time.Time) *AttackObjectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttackObjectCreate) SetID(v uuid.UUID) *AttackObjectCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AttackObjectCreate) SetNillableID(v *uuid.UUID) *AttackObjectCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddMappingIDs adds the "mappings" edge to the Mapping entity by IDs.
func (_c *AttackObjectCreate) AddMappingIDs(ids ...uuid.UUID) *AttackObjectCreate {
	_c.mutation.AddMappingIDs(ids...)
	return _c
}

// AddMappings adds the "mappings" edges to the Mapping entity.
func (_c *AttackObjectCreate) AddMappings(v ...*Mapping) *AttackObjectCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMappingIDs(ids...)
}

// Mutation returns the AttackObjectMutation object of the builder.
func (_c *AttackObjectCreate) Mutation() *AttackObjectMutation {
	return _c.mutation
}

// Save creates the AttackObject in the database.
func (_c *AttackObjectCreate) Save(ctx context.Context) (*AttackObject, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttackObjectCreate) SaveX(ctx context.Context) *AttackObject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttackObjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttackObjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttackObjectCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attackobject.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := attackobject.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := attackobject.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttackObjectCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AttackObject.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := attackobject.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttackObject.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AttackObject.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := attackobject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AttackObject.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StixID(); !ok {
		return &ValidationError{Name: "stix_id", err: errors.New(`ent: missing required field "AttackObject.stix_id"`)}
	}
	if v, ok := _c.mutation.StixID(); ok {
		if err := attackobject.StixIDValidator(v); err != nil {
			return &ValidationError{Name: "stix_id", err: fmt.Errorf(`ent: validator failed for field "AttackObject.stix_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttackID(); !ok {
		return &ValidationError{Name: "attack_id", err: errors.New(`ent: missing required field "AttackObject.attack_id"`)}
	}
	if v, ok := _c.mutation.AttackID(); ok {
		if err := attackobject.AttackIDValidator(v); err != nil {
			return &ValidationError{Name: "attack_id", err: fmt.Errorf(`ent: validator failed for field "AttackObject.attack_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttackURL(); !ok {
		return &ValidationError{Name: "attack_url", err: errors.New(`ent: missing required field "AttackObject.attack_url"`)}
	}
	if _, ok := _c.mutation.Matrix(); !ok {
		return &ValidationError{Name: "matrix", err: errors.New(`ent: missing required field "AttackObject.matrix"`)}
	}
	if v, ok := _c.mutation.Matrix(); ok {
		if err := attackobject.MatrixValidator(v); err != nil {
			return &ValidationError{Name: "matrix", err: fmt.Errorf(`ent: validator failed for field "AttackObject.matrix": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AttackObject.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AttackObject.updated_at"`)}
	}
	return nil
}

func (_c *AttackObjectCreate) sqlSave(ctx context.Context) (*AttackObject, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttackObjectCreate) createSpec() (*AttackObject, *sqlgraph.CreateSpec) {
	var (
		_node = &AttackObject{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attackobject.Table, sqlgraph.NewFieldSpec(attackobject.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(attackobject.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(attackobject.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.StixID(); ok {
		_spec.SetField(attackobject.FieldStixID, field.TypeString, value)
		_node.StixID = value
	}
	if value, ok := _c.mutation.AttackID(); ok {
		_spec.SetField(attackobject.FieldAttackID, field.TypeString, value)
		_node.AttackID = value
	}
	if value, ok := _c.mutation.AttackURL(); ok {
		_spec.SetField(attackobject.FieldAttackURL, field.TypeString, value)
		_node.AttackURL = value
	}
	if value, ok := _c.mutation.Matrix(); ok {
		_spec.SetField(attackobject.FieldMatrix, field.TypeString, value)
		_node.Matrix = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attackobject.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(attackobject.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MappingsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AttackObjectCreateBulk is the builder for creating many AttackObject entities in bulk.
type AttackObjectCreateBulk struct {
	config
	err      error
	builders []*AttackObjectCreate
}

// Save creates the AttackObject entities in the database.
func (_c *AttackObjectCreateBulk) Save(ctx context.Context) ([]*AttackObject, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttackObject, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttackObjectMutation)
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
func (_c *AttackObjectCreateBulk) SaveX(ctx context.Context) []*AttackObject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttackObjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttackObjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
