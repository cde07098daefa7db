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
	"github.com/joseph-ayodele/threat-mapper/gen/ent/document"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/mapping"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/report"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/sentence"
)

// SentenceCreate is the builder for creating a Sentence entity.
type SentenceCreate struct {
	config
	mutation *SentenceMutation
	hooks    []Hook
}

// SetText sets the "text" field.
func (_c *SentenceCreate) SetText(v string) *SentenceCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *SentenceCreate) SetReportID(v uuid.UUID) *SentenceCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *SentenceCreate) SetDocumentID(v uuid.UUID) *SentenceCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_c *SentenceCreate) SetNillableDocumentID(v *uuid.UUID) *SentenceCreate {
	if v != nil {
		_c.SetDocumentID(*v)
	}
	return _c
}

// SetOrder sets the "order" field.
func (_c *SentenceCreate) SetOrder(v int) *SentenceCreate {
	_c.mutation.SetOrder(v)
	return _c
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_c *SentenceCreate) SetNillableOrder(v *int) *SentenceCreate {
	if v != nil {
		_c.SetOrder(*v)
	}
	return _c
}

// SetDisposition sets the "disposition" field.
func (_c *SentenceCreate) SetDisposition(v string) *SentenceCreate {
	_c.mutation.SetDisposition(v)
	return _c
}

// SetNillableDisposition sets the "disposition" field if the given value is not nil.
func (_c *SentenceCreate) SetNillableDisposition(v *string) *SentenceCreate {
	if v != nil {
		_c.SetDisposition(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SentenceCreate) SetCreatedAt(v time.Time) *SentenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SentenceCreate) SetNillableCreatedAt(v *time.Time) *SentenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SentenceCreate) SetUpdatedAt(v time.Time) *SentenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SentenceCreate) SetNillableUpdatedAt(v *time.Time) *SentenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SentenceCreate) SetID(v uuid.UUID) *SentenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SentenceCreate) SetNillableID(v *uuid.UUID) *SentenceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *SentenceCreate) SetReport(v *Report) *SentenceCreate {
	return _c.SetReportID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *SentenceCreate) SetDocument(v *Document) *SentenceCreate {
	return _c.SetDocumentID(v.ID)
}

// AddMappingIDs adds the "mappings" edge to the Mapping entity by IDs.
func (_c *SentenceCreate) AddMappingIDs(ids ...uuid.UUID) *SentenceCreate {
	_c.mutation.AddMappingIDs(ids...)
	return _c
}

// AddMappings adds the "mappings" edges to the Mapping entity.
func (_c *SentenceCreate) AddMappings(v ...*Mapping) *SentenceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMappingIDs(ids...)
}

// Mutation returns the SentenceMutation object of the builder.
func (_c *SentenceCreate) Mutation() *SentenceMutation {
	return _c.mutation
}

// Save creates the Sentence in the database.
func (_c *SentenceCreate) Save(ctx context.Context) (*Sentence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SentenceCreate) SaveX(ctx context.Context) *Sentence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SentenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SentenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SentenceCreate) defaults() {
	if _, ok := _c.mutation.Order(); !ok {
		v := sentence.DefaultOrder
		_c.mutation.SetOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sentence.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sentence.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sentence.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SentenceCreate) check() error {
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Sentence.text"`)}
	}
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Sentence.report_id"`)}
	}
	if _, ok := _c.mutation.Order(); !ok {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required field "Sentence.order"`)}
	}
	if v, ok := _c.mutation.Disposition(); ok {
		if err := sentence.DispositionValidator(v); err != nil {
			return &ValidationError{Name: "disposition", err: fmt.Errorf(`ent: validator failed for field "Sentence.disposition": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Sentence.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Sentence.updated_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "Sentence.report"`)}
	}
	return nil
}

func (_c *SentenceCreate) sqlSave(ctx context.Context) (*Sentence, error) {
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

func (_c *SentenceCreate) createSpec() (*Sentence, *sqlgraph.CreateSpec) {
	var (
		_node = &Sentence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sentence.Table, sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(sentence.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Order(); ok {
		_spec.SetField(sentence.FieldOrder, field.TypeInt, value)
		_node.Order = value
	}
	if value, ok := _c.mutation.Disposition(); ok {
		_spec.SetField(sentence.FieldDisposition, field.TypeString, value)
		_node.Disposition = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sentence.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sentence.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
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
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MappingsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SentenceCreateBulk is the builder for creating many Sentence entities in bulk.
type SentenceCreateBulk struct {
	config
	err      error
	builders []*SentenceCreate
}

// Save creates the Sentence entities in the database.
func (_c *SentenceCreateBulk) Save(ctx context.Context) ([]*Sentence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Sentence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SentenceMutation)
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
func (_c *SentenceCreateBulk) SaveX(ctx context.Context) []*Sentence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SentenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SentenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
