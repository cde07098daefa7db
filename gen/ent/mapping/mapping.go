// Code generated by ent, DO NOT EDIT.

package mapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the mapping type in the database.
	Label = "mapping"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldSentenceID holds the string denoting the sentence_id field in the database.
	FieldSentenceID = "sentence_id"
	// FieldAttackObjectID holds the string denoting the attack_object_id field in the database.
	FieldAttackObjectID = "attack_object_id"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeReport holds the string denoting the report edge name in mutations.
	EdgeReport = "report"
	// EdgeSentence holds the string denoting the sentence edge name in mutations.
	EdgeSentence = "sentence"
	// EdgeAttackObject holds the string denoting the attack_object edge name in mutations.
	EdgeAttackObject = "attack_object"
	// Table holds the table name of the mapping in the database.
	Table = "mappings"
	// ReportTable is the table that holds the report relation/edge.
	ReportTable = "mappings"
	// ReportInverseTable is the table name for the Report entity.
	// It exists in this package in order to avoid circular dependency with the "report" package.
	ReportInverseTable = "reports"
	// ReportColumn is the table column denoting the report relation/edge.
	ReportColumn = "report_id"
	// SentenceTable is the table that holds the sentence relation/edge.
	SentenceTable = "mappings"
	// SentenceInverseTable is the table name for the Sentence entity.
	// It exists in this package in order to avoid circular dependency with the "sentence" package.
	SentenceInverseTable = "sentences"
	// SentenceColumn is the table column denoting the sentence relation/edge.
	SentenceColumn = "sentence_id"
	// AttackObjectTable is the table that holds the attack_object relation/edge.
	AttackObjectTable = "mappings"
	// AttackObjectInverseTable is the table name for the AttackObject entity.
	// It exists in this package in order to avoid circular dependency with the "attackobject" package.
	AttackObjectInverseTable = "attack_objects"
	// AttackObjectColumn is the table column denoting the attack_object relation/edge.
	AttackObjectColumn = "attack_object_id"
)

// Columns holds all SQL columns for mapping fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldSentenceID,
	FieldAttackObjectID,
	FieldConfidence,
	FieldModelName,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Mapping queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// BySentenceID orders the results by the sentence_id field.
func BySentenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentenceID, opts...).ToFunc()
}

// ByAttackObjectID orders the results by the attack_object_id field.
func ByAttackObjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttackObjectID, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByReportField orders the results by report field.
func ByReportField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportStep(), sql.OrderByField(field, opts...))
	}
}

// BySentenceField orders the results by sentence field.
func BySentenceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSentenceStep(), sql.OrderByField(field, opts...))
	}
}

// ByAttackObjectField orders the results by attack_object field.
func ByAttackObjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttackObjectStep(), sql.OrderByField(field, opts...))
	}
}
func newReportStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
	)
}
func newSentenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SentenceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SentenceTable, SentenceColumn),
	)
}
func newAttackObjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttackObjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AttackObjectTable, AttackObjectColumn),
	)
}
