// Code generated by ent, DO NOT EDIT.

package attackobject

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLTE(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldKind, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldName, v))
}

// StixID applies equality check predicate on the "stix_id" field. It's identical to StixIDEQ.
func StixID(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldStixID, v))
}

// AttackID applies equality check predicate on the "attack_id" field. It's identical to AttackIDEQ.
func AttackID(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldAttackID, v))
}

// AttackURL applies equality check predicate on the "attack_url" field. It's identical to AttackURLEQ.
func AttackURL(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldAttackURL, v))
}

// Matrix applies equality check predicate on the "matrix" field. It's identical to MatrixEQ.
func Matrix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldMatrix, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldUpdatedAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldContainsFold(FieldKind, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldContainsFold(FieldName, v))
}

// StixIDEQ applies the EQ predicate on the "stix_id" field.
func StixIDEQ(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldStixID, v))
}

// StixIDNEQ applies the NEQ predicate on the "stix_id" field.
func StixIDNEQ(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNEQ(FieldStixID, v))
}

// StixIDIn applies the In predicate on the "stix_id" field.
func StixIDIn(vs ...string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldIn(FieldStixID, vs...))
}

// StixIDNotIn applies the NotIn predicate on the "stix_id" field.
func StixIDNotIn(vs ...string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNotIn(FieldStixID, vs...))
}

// StixIDGT applies the GT predicate on the "stix_id" field.
func StixIDGT(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGT(FieldStixID, v))
}

// StixIDGTE applies the GTE predicate on the "stix_id" field.
func StixIDGTE(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGTE(FieldStixID, v))
}

// StixIDLT applies the LT predicate on the "stix_id" field.
func StixIDLT(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLT(FieldStixID, v))
}

// StixIDLTE applies the LTE predicate on the "stix_id" field.
func StixIDLTE(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLTE(FieldStixID, v))
}

// StixIDContains applies the Contains predicate on the "stix_id" field.
func StixIDContains(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldContains(FieldStixID, v))
}

// StixIDHasPrefix applies the HasPrefix predicate on the "stix_id" field.
func StixIDHasPrefix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldHasPrefix(FieldStixID, v))
}

// StixIDHasSuffix applies the HasSuffix predicate on the "stix_id" field.
func StixIDHasSuffix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldHasSuffix(FieldStixID, v))
}

// StixIDEqualFold applies the EqualFold predicate on the "stix_id" field.
func StixIDEqualFold(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEqualFold(FieldStixID, v))
}

// StixIDContainsFold applies the ContainsFold predicate on the "stix_id" field.
func StixIDContainsFold(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldContainsFold(FieldStixID, v))
}

// AttackIDEQ applies the EQ predicate on the "attack_id" field.
func AttackIDEQ(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldAttackID, v))
}

// AttackIDNEQ applies the NEQ predicate on the "attack_id" field.
func AttackIDNEQ(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNEQ(FieldAttackID, v))
}

// AttackIDIn applies the In predicate on the "attack_id" field.
func AttackIDIn(vs ...string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldIn(FieldAttackID, vs...))
}

// AttackIDNotIn applies the NotIn predicate on the "attack_id" field.
func AttackIDNotIn(vs ...string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNotIn(FieldAttackID, vs...))
}

// AttackIDGT applies the GT predicate on the "attack_id" field.
func AttackIDGT(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGT(FieldAttackID, v))
}

// AttackIDGTE applies the GTE predicate on the "attack_id" field.
func AttackIDGTE(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGTE(FieldAttackID, v))
}

// AttackIDLT applies the LT predicate on the "attack_id" field.
func AttackIDLT(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLT(FieldAttackID, v))
}

// AttackIDLTE applies the LTE predicate on the "attack_id" field.
func AttackIDLTE(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLTE(FieldAttackID, v))
}

// AttackIDContains applies the Contains predicate on the "attack_id" field.
func AttackIDContains(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldContains(FieldAttackID, v))
}

// AttackIDHasPrefix applies the HasPrefix predicate on the "attack_id" field.
func AttackIDHasPrefix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldHasPrefix(FieldAttackID, v))
}

// AttackIDHasSuffix applies the HasSuffix predicate on the "attack_id" field.
func AttackIDHasSuffix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldHasSuffix(FieldAttackID, v))
}

// AttackIDEqualFold applies the EqualFold predicate on the "attack_id" field.
func AttackIDEqualFold(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEqualFold(FieldAttackID, v))
}

// AttackIDContainsFold applies the ContainsFold predicate on the "attack_id" field.
func AttackIDContainsFold(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldContainsFold(FieldAttackID, v))
}

// AttackURLEQ applies the EQ predicate on the "attack_url" field.
func AttackURLEQ(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldAttackURL, v))
}

// AttackURLNEQ applies the NEQ predicate on the "attack_url" field.
func AttackURLNEQ(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNEQ(FieldAttackURL, v))
}

// AttackURLIn applies the In predicate on the "attack_url" field.
func AttackURLIn(vs ...string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldIn(FieldAttackURL, vs...))
}

// AttackURLNotIn applies the NotIn predicate on the "attack_url" field.
func AttackURLNotIn(vs ...string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNotIn(FieldAttackURL, vs...))
}

// AttackURLGT applies the GT predicate on the "attack_url" field.
func AttackURLGT(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGT(FieldAttackURL, v))
}

// AttackURLGTE applies the GTE predicate on the "attack_url" field.
func AttackURLGTE(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGTE(FieldAttackURL, v))
}

// AttackURLLT applies the LT predicate on the "attack_url" field.
func AttackURLLT(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLT(FieldAttackURL, v))
}

// AttackURLLTE applies the LTE predicate on the "attack_url" field.
func AttackURLLTE(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLTE(FieldAttackURL, v))
}

// AttackURLContains applies the Contains predicate on the "attack_url" field.
func AttackURLContains(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldContains(FieldAttackURL, v))
}

// AttackURLHasPrefix applies the HasPrefix predicate on the "attack_url" field.
func AttackURLHasPrefix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldHasPrefix(FieldAttackURL, v))
}

// AttackURLHasSuffix applies the HasSuffix predicate on the "attack_url" field.
func AttackURLHasSuffix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldHasSuffix(FieldAttackURL, v))
}

// AttackURLEqualFold applies the EqualFold predicate on the "attack_url" field.
func AttackURLEqualFold(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEqualFold(FieldAttackURL, v))
}

// AttackURLContainsFold applies the ContainsFold predicate on the "attack_url" field.
func AttackURLContainsFold(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldContainsFold(FieldAttackURL, v))
}

// MatrixEQ applies the EQ predicate on the "matrix" field.
func MatrixEQ(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldMatrix, v))
}

// MatrixNEQ applies the NEQ predicate on the "matrix" field.
func MatrixNEQ(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNEQ(FieldMatrix, v))
}

// MatrixIn applies the In predicate on the "matrix" field.
func MatrixIn(vs ...string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldIn(FieldMatrix, vs...))
}

// MatrixNotIn applies the NotIn predicate on the "matrix" field.
func MatrixNotIn(vs ...string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNotIn(FieldMatrix, vs...))
}

// MatrixGT applies the GT predicate on the "matrix" field.
func MatrixGT(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGT(FieldMatrix, v))
}

// MatrixGTE applies the GTE predicate on the "matrix" field.
func MatrixGTE(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGTE(FieldMatrix, v))
}

// MatrixLT applies the LT predicate on the "matrix" field.
func MatrixLT(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLT(FieldMatrix, v))
}

// MatrixLTE applies the LTE predicate on the "matrix" field.
func MatrixLTE(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLTE(FieldMatrix, v))
}

// MatrixContains applies the Contains predicate on the "matrix" field.
func MatrixContains(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldContains(FieldMatrix, v))
}

// MatrixHasPrefix applies the HasPrefix predicate on the "matrix" field.
func MatrixHasPrefix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldHasPrefix(FieldMatrix, v))
}

// MatrixHasSuffix applies the HasSuffix predicate on the "matrix" field.
func MatrixHasSuffix(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldHasSuffix(FieldMatrix, v))
}

// MatrixEqualFold applies the EqualFold predicate on the "matrix" field.
func MatrixEqualFold(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEqualFold(FieldMatrix, v))
}

// MatrixContainsFold applies the ContainsFold predicate on the "matrix" field.
func MatrixContainsFold(v string) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldContainsFold(FieldMatrix, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AttackObject {
	return predicate.AttackObject(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMappings applies the HasEdge predicate on the "mappings" edge.
func HasMappings() predicate.AttackObject {
	return predicate.AttackObject(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MappingsTable, MappingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMappingsWith applies the HasEdge predicate on the "mappings" edge with a given conditions (other predicates).
func HasMappingsWith(preds ...predicate.Mapping) predicate.AttackObject {
	return predicate.AttackObject(func(s *sql.Selector) {
		step := newMappingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AttackObject) predicate.AttackObject {
	return predicate.AttackObject(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AttackObject) predicate.AttackObject {
	return predicate.AttackObject(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AttackObject) predicate.AttackObject {
	return predicate.AttackObject(sql.NotPredicates(p))
}
