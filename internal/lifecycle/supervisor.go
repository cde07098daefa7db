// Package lifecycle ties a document's destruction to release of its
// backing byte storage.
package lifecycle

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/internal/repository"
	"github.com/joseph-ayodele/threat-mapper/internal/storage"
)

// Supervisor performs the two-phase document destruction: the repository
// cascade removes dependent rows and returns the storage path, then the
// backing bytes are removed. Every code path that destroys a document
// must go through DestroyDocument so cleanup runs exactly once.
type Supervisor struct {
	documents repository.DocumentRepository
	store     storage.Store
	logger    *slog.Logger
}

func NewSupervisor(documents repository.DocumentRepository, store storage.Store, logger *slog.Logger) *Supervisor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Supervisor{documents: documents, store: store, logger: logger}
}

// DestroyDocument deletes the document and its dependents, then releases
// the backing storage. A storage object that is already gone is success.
func (s *Supervisor) DestroyDocument(ctx context.Context, id uuid.UUID) error {
	path, err := s.documents.Delete(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Remove(ctx, path); err != nil {
		s.logger.Error("storage cleanup failed after delete", "document_id", id, "path", path, "error", err)
		return err
	}
	s.logger.Info("document destroyed", "document_id", id, "path", path)
	return nil
}

// Cleanup removes a storage path directly. Idempotent; used when a path
// is known to be orphaned.
func (s *Supervisor) Cleanup(ctx context.Context, path string) error {
	return s.store.Remove(ctx, path)
}
