// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/attackobject"
)

// AttackObject is the model entity for the AttackObject schema.
type AttackObject struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// StixID holds the value of the "stix_id" field.
	StixID string `json:"stix_id,omitempty"`
	// AttackID holds the value of the "attack_id" field.
	AttackID string `json:"attack_id,omitempty"`
	// AttackURL holds the value of the "attack_url" field.
	AttackURL string `json:"attack_url,omitempty"`
	// Matrix holds the value of the "matrix" field.
	Matrix string `json:"matrix,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AttackObjectQuery when eager-loading is set.
	Edges        AttackObjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AttackObjectEdges holds the relations/edges for other nodes in the graph.
type AttackObjectEdges struct {
	// Mappings holds the value of the mappings edge.
	Mappings []*Mapping `json:"mappings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MappingsOrErr returns the Mappings value or an error if the edge
// was not loaded in eager-loading.
func (e AttackObjectEdges) MappingsOrErr() ([]*Mapping, error) {
	if e.loadedTypes[0] {
		return e.Mappings, nil
	}
	return nil, &NotLoadedError{edge: "mappings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttackObject) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attackobject.FieldKind, attackobject.FieldName, attackobject.FieldStixID, attackobject.FieldAttackID, attackobject.FieldAttackURL, attackobject.FieldMatrix:
			values[i] = new(sql.NullString)
		case attackobject.FieldCreatedAt, attackobject.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case attackobject.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttackObject fields.
func (_m *AttackObject) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attackobject.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case attackobject.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case attackobject.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case attackobject.FieldStixID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stix_id", values[i])
			} else if value.Valid {
				_m.StixID = value.String
			}
		case attackobject.FieldAttackID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attack_id", values[i])
			} else if value.Valid {
				_m.AttackID = value.String
			}
		case attackobject.FieldAttackURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attack_url", values[i])
			} else if value.Valid {
				_m.AttackURL = value.String
			}
		case attackobject.FieldMatrix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matrix", values[i])
			} else if value.Valid {
				_m.Matrix = value.String
			}
		case attackobject.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case attackobject.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttackObject.
// This includes values selected through modifiers, order, etc.
func (_m *AttackObject) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMappings queries the "mappings" edge of the AttackObject entity.
func (_m *AttackObject) QueryMappings() *MappingQuery {
	return NewAttackObjectClient(_m.config).QueryMappings(_m)
}

// Update returns a builder for updating this AttackObject.
// Note that you need to call AttackObject.Unwrap() before calling this method if this AttackObject
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttackObject) Update() *AttackObjectUpdateOne {
	return NewAttackObjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttackObject entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttackObject) Unwrap() *AttackObject {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttackObject is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttackObject) String() string {
	var builder strings.Builder
	builder.WriteString("AttackObject(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("stix_id=")
	builder.WriteString(_m.StixID)
	builder.WriteString(", ")
	builder.WriteString("attack_id=")
	builder.WriteString(_m.AttackID)
	builder.WriteString(", ")
	builder.WriteString("attack_url=")
	builder.WriteString(_m.AttackURL)
	builder.WriteString(", ")
	builder.WriteString("matrix=")
	builder.WriteString(_m.Matrix)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AttackObjects is a parsable slice of AttackObject.
type AttackObjects []*AttackObject
