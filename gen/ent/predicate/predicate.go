// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttackObject is the predicate function for attackobject builders.
type AttackObject func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Indicator is the predicate function for indicator builders.
type Indicator func(*sql.Selector)

// IngestJob is the predicate function for ingestjob builders.
type IngestJob func(*sql.Selector)

// Mapping is the predicate function for mapping builders.
type Mapping func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// Sentence is the predicate function for sentence builders.
type Sentence func(*sql.Selector)
