package entity

import (
	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/gen/ent"
)

// Mapping represents an evidence-to-taxonomy link for data transfer between layers.
type Mapping struct {
	ID             uuid.UUID  `json:"id"`
	ReportID       uuid.UUID  `json:"report_id"`
	SentenceID     *uuid.UUID `json:"sentence_id,omitempty"`
	AttackObjectID *uuid.UUID `json:"attack_object_id,omitempty"`
	AttackID       string     `json:"attack_id,omitempty"`
	Confidence     float64    `json:"confidence"`
	ModelName      *string    `json:"model_name,omitempty"`
}

// ObjectCounts represents a per-entry acceptance tally.
type ObjectCounts struct {
	AttackID string `json:"attack_id"`
	Name     string `json:"name"`
	Accepted int    `json:"accepted"`
	Pending  int    `json:"pending"`
	Total    int    `json:"total"`
}

func MappingFromEnt(row *ent.Mapping) Mapping {
	out := Mapping{
		ID:             row.ID,
		ReportID:       row.ReportID,
		SentenceID:     row.SentenceID,
		AttackObjectID: row.AttackObjectID,
		Confidence:     row.Confidence,
		ModelName:      row.ModelName,
	}
	if obj := row.Edges.AttackObject; obj != nil {
		out.AttackID = obj.AttackID
	}
	return out
}
