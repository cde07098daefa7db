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
	"github.com/joseph-ayodele/threat-mapper/gen/ent/document"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/mapping"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/predicate"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/report"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/sentence"
)

// SentenceUpdate is the builder for updating Sentence entities.
type SentenceUpdate struct {
	config
	hooks    []Hook
	mutation *SentenceMutation
}

// Where appends a list predicates to the SentenceUpdate builder.
func (_u *SentenceUpdate) Where(ps ...predicate.Sentence) *SentenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *SentenceUpdate) SetText(v string) *SentenceUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SentenceUpdate) SetNillableText(v *string) *SentenceUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *SentenceUpdate) SetReportID(v uuid.UUID) *SentenceUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *SentenceUpdate) SetNillableReportID(v *uuid.UUID) *SentenceUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *SentenceUpdate) SetDocumentID(v uuid.UUID) *SentenceUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *SentenceUpdate) SetNillableDocumentID(v *uuid.UUID) *SentenceUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *SentenceUpdate) ClearDocumentID() *SentenceUpdate {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetOrder sets the "order" field.
func (_u *SentenceUpdate) SetOrder(v int) *SentenceUpdate {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *SentenceUpdate) SetNillableOrder(v *int) *SentenceUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *SentenceUpdate) AddOrder(v int) *SentenceUpdate {
	_u.mutation.AddOrder(v)
	return _u
}

// SetDisposition sets the "disposition" field.
func (_u *SentenceUpdate) SetDisposition(v string) *SentenceUpdate {
	_u.mutation.SetDisposition(v)
	return _u
}

// SetNillableDisposition sets the "disposition" field if the given value is not nil.
func (_u *SentenceUpdate) SetNillableDisposition(v *string) *SentenceUpdate {
	if v != nil {
		_u.SetDisposition(*v)
	}
	return _u
}

// ClearDisposition clears the value of the "disposition" field.
func (_u *SentenceUpdate) ClearDisposition() *SentenceUpdate {
	_u.mutation.ClearDisposition()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SentenceUpdate) SetCreatedAt(v time.Time) *SentenceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SentenceUpdate) SetNillableCreatedAt(v *time.Time) *SentenceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SentenceUpdate) SetUpdatedAt(v time.Time) *SentenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *SentenceUpdate) SetReport(v *Report) *SentenceUpdate {
	return _u.SetReportID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *SentenceUpdate) SetDocument(v *Document) *SentenceUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddMappingIDs adds the "mappings" edge to the Mapping entity by IDs.
func (_u *SentenceUpdate) AddMappingIDs(ids ...uuid.UUID) *SentenceUpdate {
	_u.mutation.AddMappingIDs(ids...)
	return _u
}

// AddMappings adds the "mappings" edges to the Mapping entity.
func (_u *SentenceUpdate) AddMappings(v ...*Mapping) *SentenceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingIDs(ids...)
}

// Mutation returns the SentenceMutation object of the builder.
func (_u *SentenceUpdate) Mutation() *SentenceMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *SentenceUpdate) ClearReport() *SentenceUpdate {
	_u.mutation.ClearReport()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *SentenceUpdate) ClearDocument() *SentenceUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearMappings clears all "mappings" edges to the Mapping entity.
func (_u *SentenceUpdate) ClearMappings() *SentenceUpdate {
	_u.mutation.ClearMappings()
	return _u
}

// RemoveMappingIDs removes the "mappings" edge to Mapping entities by IDs.
func (_u *SentenceUpdate) RemoveMappingIDs(ids ...uuid.UUID) *SentenceUpdate {
	_u.mutation.RemoveMappingIDs(ids...)
	return _u
}

// RemoveMappings removes "mappings" edges to Mapping entities.
func (_u *SentenceUpdate) RemoveMappings(v ...*Mapping) *SentenceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SentenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SentenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SentenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SentenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SentenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sentence.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SentenceUpdate) check() error {
	if v, ok := _u.mutation.Disposition(); ok {
		if err := sentence.DispositionValidator(v); err != nil {
			return &ValidationError{Name: "disposition", err: fmt.Errorf(`ent: validator failed for field "Sentence.disposition": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Sentence.report"`)
	}
	return nil
}

func (_u *SentenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sentence.Table, sentence.Columns, sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(sentence.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(sentence.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(sentence.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Disposition(); ok {
		_spec.SetField(sentence.FieldDisposition, field.TypeString, value)
	}
	if _u.mutation.DispositionCleared() {
		_spec.ClearField(sentence.FieldDisposition, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sentence.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sentence.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sentence.ReportTable,
			Columns: []string{sentence.ReportColumn},
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
			Table:   sentence.ReportTable,
			Columns: []string{sentence.ReportColumn},
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
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sentence.DocumentTable,
			Columns: []string{sentence.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sentence.DocumentTable,
			Columns: []string{sentence.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sentence.MappingsTable,
			Columns: []string{sentence.MappingsColumn},
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
			Table:   sentence.MappingsTable,
			Columns: []string{sentence.MappingsColumn},
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
			Table:   sentence.MappingsTable,
			Columns: []string{sentence.MappingsColumn},
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
			err = &NotFoundError{sentence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SentenceUpdateOne is the builder for updating a single Sentence entity.
type SentenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SentenceMutation
}

// SetText sets the "text" field.
func (_u *SentenceUpdateOne) SetText(v string) *SentenceUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SentenceUpdateOne) SetNillableText(v *string) *SentenceUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *SentenceUpdateOne) SetReportID(v uuid.UUID) *SentenceUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *SentenceUpdateOne) SetNillableReportID(v *uuid.UUID) *SentenceUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *SentenceUpdateOne) SetDocumentID(v uuid.UUID) *SentenceUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *SentenceUpdateOne) SetNillableDocumentID(v *uuid.UUID) *SentenceUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *SentenceUpdateOne) ClearDocumentID() *SentenceUpdateOne {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetOrder sets the "order" field.
func (_u *SentenceUpdateOne) SetOrder(v int) *SentenceUpdateOne {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *SentenceUpdateOne) SetNillableOrder(v *int) *SentenceUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *SentenceUpdateOne) AddOrder(v int) *SentenceUpdateOne {
	_u.mutation.AddOrder(v)
	return _u
}

// SetDisposition sets the "disposition" field.
func (_u *SentenceUpdateOne) SetDisposition(v string) *SentenceUpdateOne {
	_u.mutation.SetDisposition(v)
	return _u
}

// SetNillableDisposition sets the "disposition" field if the given value is not nil.
func (_u *SentenceUpdateOne) SetNillableDisposition(v *string) *SentenceUpdateOne {
	if v != nil {
		_u.SetDisposition(*v)
	}
	return _u
}

// ClearDisposition clears the value of the "disposition" field.
func (_u *SentenceUpdateOne) ClearDisposition() *SentenceUpdateOne {
	_u.mutation.ClearDisposition()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SentenceUpdateOne) SetCreatedAt(v time.Time) *SentenceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SentenceUpdateOne) SetNillableCreatedAt(v *time.Time) *SentenceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SentenceUpdateOne) SetUpdatedAt(v time.Time) *SentenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *SentenceUpdateOne) SetReport(v *Report) *SentenceUpdateOne {
	return _u.SetReportID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *SentenceUpdateOne) SetDocument(v *Document) *SentenceUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddMappingIDs adds the "mappings" edge to the Mapping entity by IDs.
func (_u *SentenceUpdateOne) AddMappingIDs(ids ...uuid.UUID) *SentenceUpdateOne {
	_u.mutation.AddMappingIDs(ids...)
	return _u
}

// AddMappings adds the "mappings" edges to the Mapping entity.
func (_u *SentenceUpdateOne) AddMappings(v ...*Mapping) *SentenceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingIDs(ids...)
}

// Mutation returns the SentenceMutation object of the builder.
func (_u *SentenceUpdateOne) Mutation() *SentenceMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *SentenceUpdateOne) ClearReport() *SentenceUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *SentenceUpdateOne) ClearDocument() *SentenceUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearMappings clears all "mappings" edges to the Mapping entity.
func (_u *SentenceUpdateOne) ClearMappings() *SentenceUpdateOne {
	_u.mutation.ClearMappings()
	return _u
}

// RemoveMappingIDs removes the "mappings" edge to Mapping entities by IDs.
func (_u *SentenceUpdateOne) RemoveMappingIDs(ids ...uuid.UUID) *SentenceUpdateOne {
	_u.mutation.RemoveMappingIDs(ids...)
	return _u
}

// RemoveMappings removes "mappings" edges to Mapping entities.
func (_u *SentenceUpdateOne) RemoveMappings(v ...*Mapping) *SentenceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingIDs(ids...)
}

// Where appends a list predicates to the SentenceUpdate builder.
func (_u *SentenceUpdateOne) Where(ps ...predicate.Sentence) *SentenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SentenceUpdateOne) Select(field string, fields ...string) *SentenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sentence entity.
func (_u *SentenceUpdateOne) Save(ctx context.Context) (*Sentence, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SentenceUpdateOne) SaveX(ctx context.Context) *Sentence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SentenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SentenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SentenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sentence.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SentenceUpdateOne) check() error {
	if v, ok := _u.mutation.Disposition(); ok {
		if err := sentence.DispositionValidator(v); err != nil {
			return &ValidationError{Name: "disposition", err: fmt.Errorf(`ent: validator failed for field "Sentence.disposition": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Sentence.report"`)
	}
	return nil
}

func (_u *SentenceUpdateOne) sqlSave(ctx context.Context) (_node *Sentence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sentence.Table, sentence.Columns, sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sentence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sentence.FieldID)
		for _, f := range fields {
			if !sentence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sentence.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(sentence.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(sentence.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(sentence.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Disposition(); ok {
		_spec.SetField(sentence.FieldDisposition, field.TypeString, value)
	}
	if _u.mutation.DispositionCleared() {
		_spec.ClearField(sentence.FieldDisposition, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sentence.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sentence.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sentence.ReportTable,
			Columns: []string{sentence.ReportColumn},
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
			Table:   sentence.ReportTable,
			Columns: []string{sentence.ReportColumn},
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
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sentence.DocumentTable,
			Columns: []string{sentence.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sentence.DocumentTable,
			Columns: []string{sentence.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sentence.MappingsTable,
			Columns: []string{sentence.MappingsColumn},
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
			Table:   sentence.MappingsTable,
			Columns: []string{sentence.MappingsColumn},
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
			Table:   sentence.MappingsTable,
			Columns: []string{sentence.MappingsColumn},
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
	_node = &Sentence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sentence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
