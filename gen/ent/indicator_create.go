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
	"github.com/joseph-ayodele/threat-mapper/gen/ent/indicator"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/report"
)

// IndicatorCreate is the builder for creating a Indicator entity.
type IndicatorCreate struct {
	config
	mutation *IndicatorMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *IndicatorCreate) SetReportID(v uuid.UUID) *IndicatorCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetIndicatorType sets the "indicator_type" field.
func (_c *IndicatorCreate) SetIndicatorType(v string) *IndicatorCreate {
	_c.mutation.SetIndicatorType(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *IndicatorCreate) SetValue(v string) *IndicatorCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IndicatorCreate) SetCreatedAt(v time.Time) *IndicatorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IndicatorCreate) SetNillableCreatedAt(v *time.Time) *IndicatorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IndicatorCreate) SetUpdatedAt(v time.Time) *IndicatorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IndicatorCreate) SetNillableUpdatedAt(v *time.Time) *IndicatorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IndicatorCreate) SetID(v uuid.UUID) *IndicatorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IndicatorCreate) SetNillableID(v *uuid.UUID) *IndicatorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *IndicatorCreate) SetReport(v *Report) *IndicatorCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the IndicatorMutation object of the builder.
func (_c *IndicatorCreate) Mutation() *IndicatorMutation {
	return _c.mutation
}

// Save creates the Indicator in the database.
func (_c *IndicatorCreate) Save(ctx context.Context) (*Indicator, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IndicatorCreate) SaveX(ctx context.Context) *Indicator {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IndicatorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IndicatorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IndicatorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := indicator.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := indicator.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := indicator.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IndicatorCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Indicator.report_id"`)}
	}
	if _, ok := _c.mutation.IndicatorType(); !ok {
		return &ValidationError{Name: "indicator_type", err: errors.New(`ent: missing required field "Indicator.indicator_type"`)}
	}
	if v, ok := _c.mutation.IndicatorType(); ok {
		if err := indicator.IndicatorTypeValidator(v); err != nil {
			return &ValidationError{Name: "indicator_type", err: fmt.Errorf(`ent: validator failed for field "Indicator.indicator_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Indicator.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := indicator.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Indicator.value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Indicator.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Indicator.updated_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "Indicator.report"`)}
	}
	return nil
}

func (_c *IndicatorCreate) sqlSave(ctx context.Context) (*Indicator, error) {
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

func (_c *IndicatorCreate) createSpec() (*Indicator, *sqlgraph.CreateSpec) {
	var (
		_node = &Indicator{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(indicator.Table, sqlgraph.NewFieldSpec(indicator.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.IndicatorType(); ok {
		_spec.SetField(indicator.FieldIndicatorType, field.TypeString, value)
		_node.IndicatorType = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(indicator.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(indicator.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(indicator.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   indicator.ReportTable,
			Columns: []string{indicator.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IndicatorCreateBulk is the builder for creating many Indicator entities in bulk.
type IndicatorCreateBulk struct {
	config
	err      error
	builders []*IndicatorCreate
}

// Save creates the Indicator entities in the database.
func (_c *IndicatorCreateBulk) Save(ctx context.Context) ([]*Indicator, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Indicator, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IndicatorMutation)
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
func (_c *IndicatorCreateBulk) SaveX(ctx context.Context) []*Indicator {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IndicatorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IndicatorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
