package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
)

// DocumentRepository stores uploaded documents. Delete is the first phase
// of the two-phase destruction: the store performs the structural cascade
// and hands the removed storage path back to the caller, which is
// responsible for releasing the backing bytes.
type DocumentRepository interface {
	Create(ctx context.Context, filename, storagePath string, createdBy string) (*ent.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	Delete(ctx context.Context, id uuid.UUID) (storagePath string, err error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, filename, storagePath string, createdBy string) (*ent.Document, error) {
	create := r.ent.Document.Create().
		SetFilename(filename).
		SetStoragePath(storagePath)
	if createdBy != "" {
		create = create.SetCreatedBy(createdBy)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "filename", filename, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", row.ID, "filename", filename)
	return row, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("DOCUMENT_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return row, err
}

// Delete removes the document row; reports, sentences, jobs, indicators
// and mappings go with it via the DB cascade. The recorded storage path
// is returned so cleanup can run exactly once, deterministically.
func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if ent.IsNotFound(err) {
		return "", common.NewAppError("DOCUMENT_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	path := row.StoragePath

	if err := r.ent.Document.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete document", "document_id", id, "error", err)
		return "", err
	}
	r.logger.Info("document deleted", "document_id", id, "storage_path", path)
	return path, nil
}
