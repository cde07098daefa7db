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
	"github.com/joseph-ayodele/threat-mapper/gen/ent/report"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/sentence"
)

// MappingUpdate is the builder for updating Mapping entities.
type MappingUpdate struct {
	config
	hooks    []Hook
	mutation *MappingMutation
}

// Where appends a list predicates to the MappingUpdate builder.
func (_u *MappingUpdate) Where(ps ...predicate.Mapping) *MappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *MappingUpdate) SetReportID(v uuid.UUID) *MappingUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableReportID(v *uuid.UUID) *MappingUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetSentenceID sets the "sentence_id" field.
func (_u *MappingUpdate) SetSentenceID(v uuid.UUID) *MappingUpdate {
	_u.mutation.SetSentenceID(v)
	return _u
}

// SetNillableSentenceID sets the "sentence_id" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableSentenceID(v *uuid.UUID) *MappingUpdate {
	if v != nil {
		_u.SetSentenceID(*v)
	}
	return _u
}

// ClearSentenceID clears the value of the "sentence_id" field.
func (_u *MappingUpdate) ClearSentenceID() *MappingUpdate {
	_u.mutation.ClearSentenceID()
	return _u
}

// SetAttackObjectID sets the "attack_object_id" field.
func (_u *MappingUpdate) SetAttackObjectID(v uuid.UUID) *MappingUpdate {
	_u.mutation.SetAttackObjectID(v)
	return _u
}

// SetNillableAttackObjectID sets the "attack_object_id" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableAttackObjectID(v *uuid.UUID) *MappingUpdate {
	if v != nil {
		_u.SetAttackObjectID(*v)
	}
	return _u
}

// ClearAttackObjectID clears the value of the "attack_object_id" field.
func (_u *MappingUpdate) ClearAttackObjectID() *MappingUpdate {
	_u.mutation.ClearAttackObjectID()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MappingUpdate) SetConfidence(v float64) *MappingUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableConfidence(v *float64) *MappingUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MappingUpdate) AddConfidence(v float64) *MappingUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *MappingUpdate) SetModelName(v string) *MappingUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableModelName(v *string) *MappingUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *MappingUpdate) ClearModelName() *MappingUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MappingUpdate) SetCreatedAt(v time.Time) *MappingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableCreatedAt(v *time.Time) *MappingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MappingUpdate) SetUpdatedAt(v time.Time) *MappingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *MappingUpdate) SetReport(v *Report) *MappingUpdate {
	return _u.SetReportID(v.ID)
}

// SetSentence sets the "sentence" edge to the Sentence entity.
func (_u *MappingUpdate) SetSentence(v *Sentence) *MappingUpdate {
	return _u.SetSentenceID(v.ID)
}

// SetAttackObject sets the "attack_object" edge to the AttackObject entity.
func (_u *MappingUpdate) SetAttackObject(v *AttackObject) *MappingUpdate {
	return _u.SetAttackObjectID(v.ID)
}

// Mutation returns the MappingMutation object of the builder.
func (_u *MappingUpdate) Mutation() *MappingMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *MappingUpdate) ClearReport() *MappingUpdate {
	_u.mutation.ClearReport()
	return _u
}

// ClearSentence clears the "sentence" edge to the Sentence entity.
func (_u *MappingUpdate) ClearSentence() *MappingUpdate {
	_u.mutation.ClearSentence()
	return _u
}

// ClearAttackObject clears the "attack_object" edge to the AttackObject entity.
func (_u *MappingUpdate) ClearAttackObject() *MappingUpdate {
	_u.mutation.ClearAttackObject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MappingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MappingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MappingUpdate) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mapping.report"`)
	}
	return nil
}

func (_u *MappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mapping.Table, mapping.Columns, sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(mapping.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(mapping.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(mapping.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(mapping.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(mapping.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.ReportTable,
			Columns: []string{mapping.ReportColumn},
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
			Table:   mapping.ReportTable,
			Columns: []string{mapping.ReportColumn},
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
	if _u.mutation.SentenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.SentenceTable,
			Columns: []string{mapping.SentenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SentenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.SentenceTable,
			Columns: []string{mapping.SentenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttackObjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.AttackObjectTable,
			Columns: []string{mapping.AttackObjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attackobject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttackObjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.AttackObjectTable,
			Columns: []string{mapping.AttackObjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attackobject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MappingUpdateOne is the builder for updating a single Mapping entity.
type MappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MappingMutation
}

// SetReportID sets the "report_id" field.
func (_u *MappingUpdateOne) SetReportID(v uuid.UUID) *MappingUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableReportID(v *uuid.UUID) *MappingUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetSentenceID sets the "sentence_id" field.
func (_u *MappingUpdateOne) SetSentenceID(v uuid.UUID) *MappingUpdateOne {
	_u.mutation.SetSentenceID(v)
	return _u
}

// SetNillableSentenceID sets the "sentence_id" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableSentenceID(v *uuid.UUID) *MappingUpdateOne {
	if v != nil {
		_u.SetSentenceID(*v)
	}
	return _u
}

// ClearSentenceID clears the value of the "sentence_id" field.
func (_u *MappingUpdateOne) ClearSentenceID() *MappingUpdateOne {
	_u.mutation.ClearSentenceID()
	return _u
}

// SetAttackObjectID sets the "attack_object_id" field.
func (_u *MappingUpdateOne) SetAttackObjectID(v uuid.UUID) *MappingUpdateOne {
	_u.mutation.SetAttackObjectID(v)
	return _u
}

// SetNillableAttackObjectID sets the "attack_object_id" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableAttackObjectID(v *uuid.UUID) *MappingUpdateOne {
	if v != nil {
		_u.SetAttackObjectID(*v)
	}
	return _u
}

// ClearAttackObjectID clears the value of the "attack_object_id" field.
func (_u *MappingUpdateOne) ClearAttackObjectID() *MappingUpdateOne {
	_u.mutation.ClearAttackObjectID()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MappingUpdateOne) SetConfidence(v float64) *MappingUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableConfidence(v *float64) *MappingUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MappingUpdateOne) AddConfidence(v float64) *MappingUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *MappingUpdateOne) SetModelName(v string) *MappingUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableModelName(v *string) *MappingUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *MappingUpdateOne) ClearModelName() *MappingUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MappingUpdateOne) SetCreatedAt(v time.Time) *MappingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableCreatedAt(v *time.Time) *MappingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MappingUpdateOne) SetUpdatedAt(v time.Time) *MappingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *MappingUpdateOne) SetReport(v *Report) *MappingUpdateOne {
	return _u.SetReportID(v.ID)
}

// SetSentence sets the "sentence" edge to the Sentence entity.
func (_u *MappingUpdateOne) SetSentence(v *Sentence) *MappingUpdateOne {
	return _u.SetSentenceID(v.ID)
}

// SetAttackObject sets the "attack_object" edge to the AttackObject entity.
func (_u *MappingUpdateOne) SetAttackObject(v *AttackObject) *MappingUpdateOne {
	return _u.SetAttackObjectID(v.ID)
}

// Mutation returns the MappingMutation object of the builder.
func (_u *MappingUpdateOne) Mutation() *MappingMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *MappingUpdateOne) ClearReport() *MappingUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// ClearSentence clears the "sentence" edge to the Sentence entity.
func (_u *MappingUpdateOne) ClearSentence() *MappingUpdateOne {
	_u.mutation.ClearSentence()
	return _u
}

// ClearAttackObject clears the "attack_object" edge to the AttackObject entity.
func (_u *MappingUpdateOne) ClearAttackObject() *MappingUpdateOne {
	_u.mutation.ClearAttackObject()
	return _u
}

// Where appends a list predicates to the MappingUpdate builder.
func (_u *MappingUpdateOne) Where(ps ...predicate.Mapping) *MappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MappingUpdateOne) Select(field string, fields ...string) *MappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mapping entity.
func (_u *MappingUpdateOne) Save(ctx context.Context) (*Mapping, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MappingUpdateOne) SaveX(ctx context.Context) *Mapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MappingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MappingUpdateOne) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mapping.report"`)
	}
	return nil
}

func (_u *MappingUpdateOne) sqlSave(ctx context.Context) (_node *Mapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mapping.Table, mapping.Columns, sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mapping.FieldID)
		for _, f := range fields {
			if !mapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mapping.FieldID {
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
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(mapping.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(mapping.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(mapping.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(mapping.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(mapping.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.ReportTable,
			Columns: []string{mapping.ReportColumn},
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
			Table:   mapping.ReportTable,
			Columns: []string{mapping.ReportColumn},
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
	if _u.mutation.SentenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.SentenceTable,
			Columns: []string{mapping.SentenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SentenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.SentenceTable,
			Columns: []string{mapping.SentenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttackObjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.AttackObjectTable,
			Columns: []string{mapping.AttackObjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attackobject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttackObjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mapping.AttackObjectTable,
			Columns: []string{mapping.AttackObjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attackobject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Mapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
