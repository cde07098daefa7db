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
	"github.com/joseph-ayodele/threat-mapper/gen/ent/indicator"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/predicate"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/report"
)

// IndicatorUpdate is the builder for updating Indicator entities.
type IndicatorUpdate struct {
	config
	hooks    []Hook
	mutation *IndicatorMutation
}

// Where appends a list predicates to the IndicatorUpdate builder.
func (_u *IndicatorUpdate) Where(ps ...predicate.Indicator) *IndicatorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *IndicatorUpdate) SetReportID(v uuid.UUID) *IndicatorUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *IndicatorUpdate) SetNillableReportID(v *uuid.UUID) *IndicatorUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetIndicatorType sets the "indicator_type" field.
func (_u *IndicatorUpdate) SetIndicatorType(v string) *IndicatorUpdate {
	_u.mutation.SetIndicatorType(v)
	return _u
}

// SetNillableIndicatorType sets the "indicator_type" field if the given value is not nil.
func (_u *IndicatorUpdate) SetNillableIndicatorType(v *string) *IndicatorUpdate {
	if v != nil {
		_u.SetIndicatorType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *IndicatorUpdate) SetValue(v string) *IndicatorUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *IndicatorUpdate) SetNillableValue(v *string) *IndicatorUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IndicatorUpdate) SetCreatedAt(v time.Time) *IndicatorUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IndicatorUpdate) SetNillableCreatedAt(v *time.Time) *IndicatorUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IndicatorUpdate) SetUpdatedAt(v time.Time) *IndicatorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *IndicatorUpdate) SetReport(v *Report) *IndicatorUpdate {
	return _u.SetReportID(v.ID)
}

// Mutation returns the IndicatorMutation object of the builder.
func (_u *IndicatorUpdate) Mutation() *IndicatorMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *IndicatorUpdate) ClearReport() *IndicatorUpdate {
	_u.mutation.ClearReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IndicatorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IndicatorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IndicatorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IndicatorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IndicatorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := indicator.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IndicatorUpdate) check() error {
	if v, ok := _u.mutation.IndicatorType(); ok {
		if err := indicator.IndicatorTypeValidator(v); err != nil {
			return &ValidationError{Name: "indicator_type", err: fmt.Errorf(`ent: validator failed for field "Indicator.indicator_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := indicator.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Indicator.value": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Indicator.report"`)
	}
	return nil
}

func (_u *IndicatorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(indicator.Table, indicator.Columns, sqlgraph.NewFieldSpec(indicator.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IndicatorType(); ok {
		_spec.SetField(indicator.FieldIndicatorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(indicator.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(indicator.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(indicator.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{indicator.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IndicatorUpdateOne is the builder for updating a single Indicator entity.
type IndicatorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IndicatorMutation
}

// SetReportID sets the "report_id" field.
func (_u *IndicatorUpdateOne) SetReportID(v uuid.UUID) *IndicatorUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *IndicatorUpdateOne) SetNillableReportID(v *uuid.UUID) *IndicatorUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetIndicatorType sets the "indicator_type" field.
func (_u *IndicatorUpdateOne) SetIndicatorType(v string) *IndicatorUpdateOne {
	_u.mutation.SetIndicatorType(v)
	return _u
}

// SetNillableIndicatorType sets the "indicator_type" field if the given value is not nil.
func (_u *IndicatorUpdateOne) SetNillableIndicatorType(v *string) *IndicatorUpdateOne {
	if v != nil {
		_u.SetIndicatorType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *IndicatorUpdateOne) SetValue(v string) *IndicatorUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *IndicatorUpdateOne) SetNillableValue(v *string) *IndicatorUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IndicatorUpdateOne) SetCreatedAt(v time.Time) *IndicatorUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IndicatorUpdateOne) SetNillableCreatedAt(v *time.Time) *IndicatorUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IndicatorUpdateOne) SetUpdatedAt(v time.Time) *IndicatorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *IndicatorUpdateOne) SetReport(v *Report) *IndicatorUpdateOne {
	return _u.SetReportID(v.ID)
}

// Mutation returns the IndicatorMutation object of the builder.
func (_u *IndicatorUpdateOne) Mutation() *IndicatorMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *IndicatorUpdateOne) ClearReport() *IndicatorUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// Where appends a list predicates to the IndicatorUpdate builder.
func (_u *IndicatorUpdateOne) Where(ps ...predicate.Indicator) *IndicatorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IndicatorUpdateOne) Select(field string, fields ...string) *IndicatorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Indicator entity.
func (_u *IndicatorUpdateOne) Save(ctx context.Context) (*Indicator, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IndicatorUpdateOne) SaveX(ctx context.Context) *Indicator {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IndicatorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IndicatorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IndicatorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := indicator.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IndicatorUpdateOne) check() error {
	if v, ok := _u.mutation.IndicatorType(); ok {
		if err := indicator.IndicatorTypeValidator(v); err != nil {
			return &ValidationError{Name: "indicator_type", err: fmt.Errorf(`ent: validator failed for field "Indicator.indicator_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := indicator.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Indicator.value": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Indicator.report"`)
	}
	return nil
}

func (_u *IndicatorUpdateOne) sqlSave(ctx context.Context) (_node *Indicator, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(indicator.Table, indicator.Columns, sqlgraph.NewFieldSpec(indicator.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Indicator.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, indicator.FieldID)
		for _, f := range fields {
			if !indicator.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != indicator.FieldID {
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
	if value, ok := _u.mutation.IndicatorType(); ok {
		_spec.SetField(indicator.FieldIndicatorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(indicator.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(indicator.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(indicator.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Indicator{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{indicator.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
