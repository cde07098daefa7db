// Code generated by ent, DO NOT EDIT.

package indicator

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldEQ(FieldReportID, v))
}

// IndicatorType applies equality check predicate on the "indicator_type" field. It's identical to IndicatorTypeEQ.
func IndicatorType(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldEQ(FieldIndicatorType, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldEQ(FieldValue, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.Indicator {
	return predicate.Indicator(sql.FieldNotIn(FieldReportID, vs...))
}

// IndicatorTypeEQ applies the EQ predicate on the "indicator_type" field.
func IndicatorTypeEQ(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldEQ(FieldIndicatorType, v))
}

// IndicatorTypeNEQ applies the NEQ predicate on the "indicator_type" field.
func IndicatorTypeNEQ(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldNEQ(FieldIndicatorType, v))
}

// IndicatorTypeIn applies the In predicate on the "indicator_type" field.
func IndicatorTypeIn(vs ...string) predicate.Indicator {
	return predicate.Indicator(sql.FieldIn(FieldIndicatorType, vs...))
}

// IndicatorTypeNotIn applies the NotIn predicate on the "indicator_type" field.
func IndicatorTypeNotIn(vs ...string) predicate.Indicator {
	return predicate.Indicator(sql.FieldNotIn(FieldIndicatorType, vs...))
}

// IndicatorTypeGT applies the GT predicate on the "indicator_type" field.
func IndicatorTypeGT(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldGT(FieldIndicatorType, v))
}

// IndicatorTypeGTE applies the GTE predicate on the "indicator_type" field.
func IndicatorTypeGTE(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldGTE(FieldIndicatorType, v))
}

// IndicatorTypeLT applies the LT predicate on the "indicator_type" field.
func IndicatorTypeLT(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldLT(FieldIndicatorType, v))
}

// IndicatorTypeLTE applies the LTE predicate on the "indicator_type" field.
func IndicatorTypeLTE(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldLTE(FieldIndicatorType, v))
}

// IndicatorTypeContains applies the Contains predicate on the "indicator_type" field.
func IndicatorTypeContains(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldContains(FieldIndicatorType, v))
}

// IndicatorTypeHasPrefix applies the HasPrefix predicate on the "indicator_type" field.
func IndicatorTypeHasPrefix(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldHasPrefix(FieldIndicatorType, v))
}

// IndicatorTypeHasSuffix applies the HasSuffix predicate on the "indicator_type" field.
func IndicatorTypeHasSuffix(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldHasSuffix(FieldIndicatorType, v))
}

// IndicatorTypeEqualFold applies the EqualFold predicate on the "indicator_type" field.
func IndicatorTypeEqualFold(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldEqualFold(FieldIndicatorType, v))
}

// IndicatorTypeContainsFold applies the ContainsFold predicate on the "indicator_type" field.
func IndicatorTypeContainsFold(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldContainsFold(FieldIndicatorType, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.Indicator {
	return predicate.Indicator(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.Indicator {
	return predicate.Indicator(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.Indicator {
	return predicate.Indicator(sql.FieldContainsFold(FieldValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Indicator {
	return predicate.Indicator(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.Indicator {
	return predicate.Indicator(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.Indicator {
	return predicate.Indicator(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Indicator) predicate.Indicator {
	return predicate.Indicator(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Indicator) predicate.Indicator {
	return predicate.Indicator(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Indicator) predicate.Indicator {
	return predicate.Indicator(sql.NotPredicates(p))
}
