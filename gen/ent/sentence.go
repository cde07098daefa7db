// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/document"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/report"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/sentence"
)

// Sentence is the model entity for the Sentence schema.
type Sentence struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	// Order holds the value of the "order" field.
	Order int `json:"order,omitempty"`
	// Disposition holds the value of the "disposition" field.
	Disposition *string `json:"disposition,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SentenceQuery when eager-loading is set.
	Edges        SentenceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SentenceEdges holds the relations/edges for other nodes in the graph.
type SentenceEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// Mappings holds the value of the mappings edge.
	Mappings []*Mapping `json:"mappings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SentenceEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SentenceEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// MappingsOrErr returns the Mappings value or an error if the edge
// was not loaded in eager-loading.
func (e SentenceEdges) MappingsOrErr() ([]*Mapping, error) {
	if e.loadedTypes[2] {
		return e.Mappings, nil
	}
	return nil, &NotLoadedError{edge: "mappings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sentence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sentence.FieldDocumentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case sentence.FieldOrder:
			values[i] = new(sql.NullInt64)
		case sentence.FieldText, sentence.FieldDisposition:
			values[i] = new(sql.NullString)
		case sentence.FieldCreatedAt, sentence.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case sentence.FieldID, sentence.FieldReportID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sentence fields.
func (_m *Sentence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sentence.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sentence.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case sentence.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				_m.ReportID = *value
			}
		case sentence.FieldDocumentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = new(uuid.UUID)
				*_m.DocumentID = *value.S.(*uuid.UUID)
			}
		case sentence.FieldOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order", values[i])
			} else if value.Valid {
				_m.Order = int(value.Int64)
			}
		case sentence.FieldDisposition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field disposition", values[i])
			} else if value.Valid {
				_m.Disposition = new(string)
				*_m.Disposition = value.String
			}
		case sentence.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sentence.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Sentence.
// This includes values selected through modifiers, order, etc.
func (_m *Sentence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the Sentence entity.
func (_m *Sentence) QueryReport() *ReportQuery {
	return NewSentenceClient(_m.config).QueryReport(_m)
}

// QueryDocument queries the "document" edge of the Sentence entity.
func (_m *Sentence) QueryDocument() *DocumentQuery {
	return NewSentenceClient(_m.config).QueryDocument(_m)
}

// QueryMappings queries the "mappings" edge of the Sentence entity.
func (_m *Sentence) QueryMappings() *MappingQuery {
	return NewSentenceClient(_m.config).QueryMappings(_m)
}

// Update returns a builder for updating this Sentence.
// Note that you need to call Sentence.Unwrap() before calling this method if this Sentence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Sentence) Update() *SentenceUpdateOne {
	return NewSentenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Sentence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Sentence) Unwrap() *Sentence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sentence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Sentence) String() string {
	var builder strings.Builder
	builder.WriteString("Sentence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
	builder.WriteString(", ")
	if v := _m.DocumentID; v != nil {
		builder.WriteString("document_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("order=")
	builder.WriteString(fmt.Sprintf("%v", _m.Order))
	builder.WriteString(", ")
	if v := _m.Disposition; v != nil {
		builder.WriteString("disposition=")
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

// Sentences is a parsable slice of Sentence.
type Sentences []*Sentence
