// Code generated by ent, DO NOT EDIT.

package attackobject

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the attackobject type in the database.
	Label = "attack_object"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStixID holds the string denoting the stix_id field in the database.
	FieldStixID = "stix_id"
	// FieldAttackID holds the string denoting the attack_id field in the database.
	FieldAttackID = "attack_id"
	// FieldAttackURL holds the string denoting the attack_url field in the database.
	FieldAttackURL = "attack_url"
	// FieldMatrix holds the string denoting the matrix field in the database.
	FieldMatrix = "matrix"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMappings holds the string denoting the mappings edge name in mutations.
	EdgeMappings = "mappings"
	// Table holds the table name of the attackobject in the database.
	Table = "attack_objects"
	// MappingsTable is the table that holds the mappings relation/edge.
	MappingsTable = "mappings"
	// MappingsInverseTable is the table name for the Mapping entity.
	// It exists in this package in order to avoid circular dependency with the "mapping" package.
	MappingsInverseTable = "mappings"
	// MappingsColumn is the table column denoting the mappings relation/edge.
	MappingsColumn = "attack_object_id"
)

// Columns holds all SQL columns for attackobject fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldName,
	FieldStixID,
	FieldAttackID,
	FieldAttackURL,
	FieldMatrix,
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
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// StixIDValidator is a validator for the "stix_id" field. It is called by the builders before save.
	StixIDValidator func(string) error
	// AttackIDValidator is a validator for the "attack_id" field. It is called by the builders before save.
	AttackIDValidator func(string) error
	// MatrixValidator is a validator for the "matrix" field. It is called by the builders before save.
	MatrixValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AttackObject queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStixID orders the results by the stix_id field.
func ByStixID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStixID, opts...).ToFunc()
}

// ByAttackID orders the results by the attack_id field.
func ByAttackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttackID, opts...).ToFunc()
}

// ByAttackURL orders the results by the attack_url field.
func ByAttackURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttackURL, opts...).ToFunc()
}

// ByMatrix orders the results by the matrix field.
func ByMatrix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatrix, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMappingsCount orders the results by mappings count.
func ByMappingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMappingsStep(), opts...)
	}
}

// ByMappings orders the results by mappings terms.
func ByMappings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMappingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMappingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MappingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MappingsTable, MappingsColumn),
	)
}
