package ingest

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// SubmitResult is the per-document submission outcome.
type SubmitResult struct {
	DocumentID uuid.UUID
	JobID      uuid.UUID
	Filename   string
	SubmittedAt time.Time
	Err        string
}

// DirStats summarizes a directory submission.
type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// Submitter is the behavior the server and the watcher depend on.
type Submitter interface {
	// Submit registers a document and queues an extraction job for it.
	Submit(ctx context.Context, filename string, r io.Reader, createdBy string) (SubmitResult, error)
	// SubmitPath submits a single file from the local filesystem.
	SubmitPath(ctx context.Context, path string, createdBy string) (SubmitResult, error)
	// SubmitDirectory submits all matching files under root.
	SubmitDirectory(ctx context.Context, root string, createdBy string, skipHidden bool) ([]SubmitResult, DirStats, error)
}
