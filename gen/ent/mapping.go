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
	"github.com/joseph-ayodele/threat-mapper/gen/ent/mapping"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/report"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/sentence"
)

// Mapping is the model entity for the Mapping schema.
type Mapping struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// SentenceID holds the value of the "sentence_id" field.
	SentenceID *uuid.UUID `json:"sentence_id,omitempty"`
	// AttackObjectID holds the value of the "attack_object_id" field.
	AttackObjectID *uuid.UUID `json:"attack_object_id,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName *string `json:"model_name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MappingQuery when eager-loading is set.
	Edges        MappingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MappingEdges holds the relations/edges for other nodes in the graph.
type MappingEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// Sentence holds the value of the sentence edge.
	Sentence *Sentence `json:"sentence,omitempty"`
	// AttackObject holds the value of the attack_object edge.
	AttackObject *AttackObject `json:"attack_object,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MappingEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// SentenceOrErr returns the Sentence value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MappingEdges) SentenceOrErr() (*Sentence, error) {
	if e.Sentence != nil {
		return e.Sentence, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: sentence.Label}
	}
	return nil, &NotLoadedError{edge: "sentence"}
}

// AttackObjectOrErr returns the AttackObject value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MappingEdges) AttackObjectOrErr() (*AttackObject, error) {
	if e.AttackObject != nil {
		return e.AttackObject, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: attackobject.Label}
	}
	return nil, &NotLoadedError{edge: "attack_object"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Mapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mapping.FieldSentenceID, mapping.FieldAttackObjectID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case mapping.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case mapping.FieldModelName:
			values[i] = new(sql.NullString)
		case mapping.FieldCreatedAt, mapping.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case mapping.FieldID, mapping.FieldReportID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Mapping fields.
func (_m *Mapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mapping.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case mapping.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				_m.ReportID = *value
			}
		case mapping.FieldSentenceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field sentence_id", values[i])
			} else if value.Valid {
				_m.SentenceID = new(uuid.UUID)
				*_m.SentenceID = *value.S.(*uuid.UUID)
			}
		case mapping.FieldAttackObjectID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field attack_object_id", values[i])
			} else if value.Valid {
				_m.AttackObjectID = new(uuid.UUID)
				*_m.AttackObjectID = *value.S.(*uuid.UUID)
			}
		case mapping.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case mapping.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = new(string)
				*_m.ModelName = value.String
			}
		case mapping.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mapping.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Mapping.
// This includes values selected through modifiers, order, etc.
func (_m *Mapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the Mapping entity.
func (_m *Mapping) QueryReport() *ReportQuery {
	return NewMappingClient(_m.config).QueryReport(_m)
}

// QuerySentence queries the "sentence" edge of the Mapping entity.
func (_m *Mapping) QuerySentence() *SentenceQuery {
	return NewMappingClient(_m.config).QuerySentence(_m)
}

// QueryAttackObject queries the "attack_object" edge of the Mapping entity.
func (_m *Mapping) QueryAttackObject() *AttackObjectQuery {
	return NewMappingClient(_m.config).QueryAttackObject(_m)
}

// Update returns a builder for updating this Mapping.
// Note that you need to call Mapping.Unwrap() before calling this method if this Mapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Mapping) Update() *MappingUpdateOne {
	return NewMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Mapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Mapping) Unwrap() *Mapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Mapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Mapping) String() string {
	var builder strings.Builder
	builder.WriteString("Mapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
	builder.WriteString(", ")
	if v := _m.SentenceID; v != nil {
		builder.WriteString("sentence_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AttackObjectID; v != nil {
		builder.WriteString("attack_object_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	if v := _m.ModelName; v != nil {
		builder.WriteString("model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Mappings is a parsable slice of Mapping.
type Mappings []*Mapping
