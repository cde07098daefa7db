package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	entjob "github.com/joseph-ayodele/threat-mapper/gen/ent/ingestjob"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
)

// IngestJobRepository tracks ingestion attempts. Jobs are only ever
// mutated by the pipeline: queued at submission, then marked done or
// error exactly once. Rows are never deleted; they are the audit trail.
type IngestJobRepository interface {
	CreateQueued(ctx context.Context, documentID uuid.UUID, createdBy string) (*ent.IngestJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.IngestJob, error)
	ListByStatus(ctx context.Context, status constants.JobStatus) ([]*ent.IngestJob, error)
	MarkDone(ctx context.Context, jobID uuid.UUID) error
	MarkError(ctx context.Context, jobID uuid.UUID, message string) error
}

type ingestJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewIngestJobRepository(entc *ent.Client, log *slog.Logger) IngestJobRepository {
	return &ingestJobRepo{ent: entc, log: log}
}

func (r *ingestJobRepo) CreateQueued(ctx context.Context, documentID uuid.UUID, createdBy string) (*ent.IngestJob, error) {
	create := r.ent.IngestJob.
		Create().
		SetDocumentID(documentID).
		SetStatus(string(constants.JobStatusQueued))
	if createdBy != "" {
		create = create.SetCreatedBy(createdBy)
	}
	job, err := create.Save(ctx)
	if err != nil {
		r.log.Error("ingest_job create failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("ingest_job queued", "job_id", job.ID, "document_id", documentID)
	return job, nil
}

func (r *ingestJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.IngestJob, error) {
	job, err := r.ent.IngestJob.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("INGEST_JOB_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return job, err
}

// ListByStatus returns jobs of a status, oldest first, the order workers
// pick them up in.
func (r *ingestJobRepo) ListByStatus(ctx context.Context, status constants.JobStatus) ([]*ent.IngestJob, error) {
	jobs, err := r.ent.IngestJob.Query().
		Where(entjob.Status(string(status))).
		Order(ent.Asc(entjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("ingest_job list failed", "status", status, "err", err)
		return nil, err
	}
	return jobs, nil
}

func (r *ingestJobRepo) MarkDone(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.IngestJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusDone)).
		Save(ctx)
	if err != nil {
		r.log.Error("ingest_job finish(done) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("ingest_job finished (done)", "job_id", jobID)
	return nil
}

// MarkError records a terminal failure. The diagnostic is truncated to
// the message cap rather than failing the status update.
func (r *ingestJobRepo) MarkError(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.IngestJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusError)).
		SetMessage(constants.TruncateJobMessage(message)).
		Save(ctx)
	if err != nil {
		r.log.Error("ingest_job finish(error) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("ingest_job finished (error)", "job_id", jobID, "message", constants.TruncateJobMessage(message))
	return nil
}
