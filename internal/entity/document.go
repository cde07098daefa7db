package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/gen/ent"
)

// Document represents an uploaded report file for data transfer between layers.
type Document struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func DocumentFromEnt(row *ent.Document) Document {
	return Document{
		ID:          row.ID,
		Filename:    row.Filename,
		StoragePath: row.StoragePath,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt,
	}
}
