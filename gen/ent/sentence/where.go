// Code generated by ent, DO NOT EDIT.

package sentence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldID, id))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldText, v))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldReportID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldDocumentID, v))
}

// Order applies equality check predicate on the "order" field. It's identical to OrderEQ.
func Order(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldOrder, v))
}

// Disposition applies equality check predicate on the "disposition" field. It's identical to DispositionEQ.
func Disposition(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldDisposition, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldUpdatedAt, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContainsFold(FieldText, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldReportID, vs...))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDIsNil applies the IsNil predicate on the "document_id" field.
func DocumentIDIsNil() predicate.Sentence {
	return predicate.Sentence(sql.FieldIsNull(FieldDocumentID))
}

// DocumentIDNotNil applies the NotNil predicate on the "document_id" field.
func DocumentIDNotNil() predicate.Sentence {
	return predicate.Sentence(sql.FieldNotNull(FieldDocumentID))
}

// OrderEQ applies the EQ predicate on the "order" field.
func OrderEQ(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldOrder, v))
}

// OrderNEQ applies the NEQ predicate on the "order" field.
func OrderNEQ(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldOrder, v))
}

// OrderIn applies the In predicate on the "order" field.
func OrderIn(vs ...int) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldOrder, vs...))
}

// OrderNotIn applies the NotIn predicate on the "order" field.
func OrderNotIn(vs ...int) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldOrder, vs...))
}

// OrderGT applies the GT predicate on the "order" field.
func OrderGT(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldOrder, v))
}

// OrderGTE applies the GTE predicate on the "order" field.
func OrderGTE(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldOrder, v))
}

// OrderLT applies the LT predicate on the "order" field.
func OrderLT(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldOrder, v))
}

// OrderLTE applies the LTE predicate on the "order" field.
func OrderLTE(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldOrder, v))
}

// DispositionEQ applies the EQ predicate on the "disposition" field.
func DispositionEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldDisposition, v))
}

// DispositionNEQ applies the NEQ predicate on the "disposition" field.
func DispositionNEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldDisposition, v))
}

// DispositionIn applies the In predicate on the "disposition" field.
func DispositionIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldDisposition, vs...))
}

// DispositionNotIn applies the NotIn predicate on the "disposition" field.
func DispositionNotIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldDisposition, vs...))
}

// DispositionGT applies the GT predicate on the "disposition" field.
func DispositionGT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldDisposition, v))
}

// DispositionGTE applies the GTE predicate on the "disposition" field.
func DispositionGTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldDisposition, v))
}

// DispositionLT applies the LT predicate on the "disposition" field.
func DispositionLT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldDisposition, v))
}

// DispositionLTE applies the LTE predicate on the "disposition" field.
func DispositionLTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldDisposition, v))
}

// DispositionContains applies the Contains predicate on the "disposition" field.
func DispositionContains(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContains(FieldDisposition, v))
}

// DispositionHasPrefix applies the HasPrefix predicate on the "disposition" field.
func DispositionHasPrefix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasPrefix(FieldDisposition, v))
}

// DispositionHasSuffix applies the HasSuffix predicate on the "disposition" field.
func DispositionHasSuffix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasSuffix(FieldDisposition, v))
}

// DispositionIsNil applies the IsNil predicate on the "disposition" field.
func DispositionIsNil() predicate.Sentence {
	return predicate.Sentence(sql.FieldIsNull(FieldDisposition))
}

// DispositionNotNil applies the NotNil predicate on the "disposition" field.
func DispositionNotNil() predicate.Sentence {
	return predicate.Sentence(sql.FieldNotNull(FieldDisposition))
}

// DispositionEqualFold applies the EqualFold predicate on the "disposition" field.
func DispositionEqualFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEqualFold(FieldDisposition, v))
}

// DispositionContainsFold applies the ContainsFold predicate on the "disposition" field.
func DispositionContainsFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContainsFold(FieldDisposition, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.Sentence {
	return predicate.Sentence(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.Sentence {
	return predicate.Sentence(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Sentence {
	return predicate.Sentence(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Sentence {
	return predicate.Sentence(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMappings applies the HasEdge predicate on the "mappings" edge.
func HasMappings() predicate.Sentence {
	return predicate.Sentence(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MappingsTable, MappingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMappingsWith applies the HasEdge predicate on the "mappings" edge with a given conditions (other predicates).
func HasMappingsWith(preds ...predicate.Mapping) predicate.Sentence {
	return predicate.Sentence(func(s *sql.Selector) {
		step := newMappingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Sentence) predicate.Sentence {
	return predicate.Sentence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Sentence) predicate.Sentence {
	return predicate.Sentence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Sentence) predicate.Sentence {
	return predicate.Sentence(sql.NotPredicates(p))
}
