// Code generated by ent, DO NOT EDIT.

package mapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldReportID, v))
}

// SentenceID applies equality check predicate on the "sentence_id" field. It's identical to SentenceIDEQ.
func SentenceID(v uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldSentenceID, v))
}

// AttackObjectID applies equality check predicate on the "attack_object_id" field. It's identical to AttackObjectIDEQ.
func AttackObjectID(v uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldAttackObjectID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldConfidence, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldModelName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldNotIn(FieldReportID, vs...))
}

// SentenceIDEQ applies the EQ predicate on the "sentence_id" field.
func SentenceIDEQ(v uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldSentenceID, v))
}

// SentenceIDNEQ applies the NEQ predicate on the "sentence_id" field.
func SentenceIDNEQ(v uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldNEQ(FieldSentenceID, v))
}

// SentenceIDIn applies the In predicate on the "sentence_id" field.
func SentenceIDIn(vs ...uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldIn(FieldSentenceID, vs...))
}

// SentenceIDNotIn applies the NotIn predicate on the "sentence_id" field.
func SentenceIDNotIn(vs ...uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldNotIn(FieldSentenceID, vs...))
}

// SentenceIDIsNil applies the IsNil predicate on the "sentence_id" field.
func SentenceIDIsNil() predicate.Mapping {
	return predicate.Mapping(sql.FieldIsNull(FieldSentenceID))
}

// SentenceIDNotNil applies the NotNil predicate on the "sentence_id" field.
func SentenceIDNotNil() predicate.Mapping {
	return predicate.Mapping(sql.FieldNotNull(FieldSentenceID))
}

// AttackObjectIDEQ applies the EQ predicate on the "attack_object_id" field.
func AttackObjectIDEQ(v uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldAttackObjectID, v))
}

// AttackObjectIDNEQ applies the NEQ predicate on the "attack_object_id" field.
func AttackObjectIDNEQ(v uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldNEQ(FieldAttackObjectID, v))
}

// AttackObjectIDIn applies the In predicate on the "attack_object_id" field.
func AttackObjectIDIn(vs ...uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldIn(FieldAttackObjectID, vs...))
}

// AttackObjectIDNotIn applies the NotIn predicate on the "attack_object_id" field.
func AttackObjectIDNotIn(vs ...uuid.UUID) predicate.Mapping {
	return predicate.Mapping(sql.FieldNotIn(FieldAttackObjectID, vs...))
}

// AttackObjectIDIsNil applies the IsNil predicate on the "attack_object_id" field.
func AttackObjectIDIsNil() predicate.Mapping {
	return predicate.Mapping(sql.FieldIsNull(FieldAttackObjectID))
}

// AttackObjectIDNotNil applies the NotNil predicate on the "attack_object_id" field.
func AttackObjectIDNotNil() predicate.Mapping {
	return predicate.Mapping(sql.FieldNotNull(FieldAttackObjectID))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Mapping {
	return predicate.Mapping(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Mapping {
	return predicate.Mapping(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Mapping {
	return predicate.Mapping(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Mapping {
	return predicate.Mapping(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Mapping {
	return predicate.Mapping(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Mapping {
	return predicate.Mapping(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Mapping {
	return predicate.Mapping(sql.FieldLTE(FieldConfidence, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.Mapping {
	return predicate.Mapping(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.Mapping {
	return predicate.Mapping(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.Mapping {
	return predicate.Mapping(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.Mapping {
	return predicate.Mapping(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.Mapping {
	return predicate.Mapping(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.Mapping {
	return predicate.Mapping(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.Mapping {
	return predicate.Mapping(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.Mapping {
	return predicate.Mapping(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.Mapping {
	return predicate.Mapping(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.Mapping {
	return predicate.Mapping(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.Mapping {
	return predicate.Mapping(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.Mapping {
	return predicate.Mapping(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.Mapping {
	return predicate.Mapping(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.Mapping {
	return predicate.Mapping(sql.FieldContainsFold(FieldModelName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Mapping {
	return predicate.Mapping(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.Mapping {
	return predicate.Mapping(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.Mapping {
	return predicate.Mapping(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSentence applies the HasEdge predicate on the "sentence" edge.
func HasSentence() predicate.Mapping {
	return predicate.Mapping(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SentenceTable, SentenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSentenceWith applies the HasEdge predicate on the "sentence" edge with a given conditions (other predicates).
func HasSentenceWith(preds ...predicate.Sentence) predicate.Mapping {
	return predicate.Mapping(func(s *sql.Selector) {
		step := newSentenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttackObject applies the HasEdge predicate on the "attack_object" edge.
func HasAttackObject() predicate.Mapping {
	return predicate.Mapping(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AttackObjectTable, AttackObjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttackObjectWith applies the HasEdge predicate on the "attack_object" edge with a given conditions (other predicates).
func HasAttackObjectWith(preds ...predicate.AttackObject) predicate.Mapping {
	return predicate.Mapping(func(s *sql.Selector) {
		step := newAttackObjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mapping) predicate.Mapping {
	return predicate.Mapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mapping) predicate.Mapping {
	return predicate.Mapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mapping) predicate.Mapping {
	return predicate.Mapping(sql.NotPredicates(p))
}
