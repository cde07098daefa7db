package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/gen/ent"
)

// IngestJob represents an extraction job for data transfer between layers.
type IngestJob struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	CreatedBy  *string   `json:"created_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func IngestJobFromEnt(row *ent.IngestJob) IngestJob {
	return IngestJob{
		ID:         row.ID,
		DocumentID: row.DocumentID,
		Status:     row.Status,
		Message:    row.Message,
		CreatedBy:  row.CreatedBy,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
