package server

import (
	"bytes"
	"context"
	"strings"
	"time"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	v1 "github.com/joseph-ayodele/threat-mapper/gen/proto/threatmapper/v1"
	"github.com/joseph-ayodele/threat-mapper/internal/ingest"
	"github.com/joseph-ayodele/threat-mapper/internal/lifecycle"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	submitter  ingest.Submitter
	jobs       repository.IngestJobRepository
	supervisor *lifecycle.Supervisor
	logger     *slog.Logger
}

func NewIngestionService(submitter ingest.Submitter, jobs repository.IngestJobRepository, supervisor *lifecycle.Supervisor, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		submitter:  submitter,
		jobs:       jobs,
		supervisor: supervisor,
		logger:     logger,
	}
}

// SubmitDocument implements v1.IngestionServiceServer
func (s *IngestionService) SubmitDocument(ctx context.Context, req *v1.SubmitDocumentRequest) (*v1.SubmitDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		s.logger.Error("submit request missing filename")
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	s.logger.Info("starting document submit", "filename", filename, "bytes", len(req.GetContent()))
	r, err := s.submitter.Submit(ctx, filename, bytes.NewReader(req.GetContent()), req.GetCreatedBy())
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.SubmitDocumentResponse{
		DocumentId: r.DocumentID.String(),
		JobId:      r.JobID.String(),
	}, nil
}

// SubmitPath implements v1.IngestionServiceServer
func (s *IngestionService) SubmitPath(ctx context.Context, req *v1.SubmitPathRequest) (*v1.SubmitPathResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("submit request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting path submit", "path", path)
	r, err := s.submitter.SubmitPath(ctx, path, req.GetCreatedBy())
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.SubmitPathResponse{
		DocumentId: r.DocumentID.String(),
		JobId:      r.JobID.String(),
	}, nil
}

// GetJob implements v1.IngestionServiceServer
func (s *IngestionService) GetJob(ctx context.Context, req *v1.GetJobRequest) (*v1.GetJobResponse, error) {
	jobID, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &v1.GetJobResponse{Job: jobToProto(job)}, nil
}

// ListJobs implements v1.IngestionServiceServer
func (s *IngestionService) ListJobs(ctx context.Context, req *v1.ListJobsRequest) (*v1.ListJobsResponse, error) {
	raw := strings.TrimSpace(req.GetStatus())
	jobStatus := constants.JobStatus(raw)
	switch jobStatus {
	case constants.JobStatusQueued, constants.JobStatusDone, constants.JobStatusError:
	default:
		return nil, status.Errorf(codes.InvalidArgument, "status must be one of %v", constants.JobStatuses)
	}

	rows, err := s.jobs.ListByStatus(ctx, jobStatus)
	if err != nil {
		s.logger.Error("list jobs failed", "status", jobStatus, "error", err)
		return nil, toStatus(err)
	}

	out := make([]*v1.IngestJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, jobToProto(row))
	}
	return &v1.ListJobsResponse{Jobs: out}, nil
}

// DeleteDocument implements v1.IngestionServiceServer
func (s *IngestionService) DeleteDocument(ctx context.Context, req *v1.DeleteDocumentRequest) (*v1.DeleteDocumentResponse, error) {
	documentID, err := parseUUID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	if err := s.supervisor.DestroyDocument(ctx, documentID); err != nil {
		s.logger.Error("delete document failed", "document_id", documentID, "error", err)
		return nil, toStatus(err)
	}

	s.logger.Info("document deleted", "document_id", documentID)
	return &v1.DeleteDocumentResponse{}, nil
}

func jobToProto(job *ent.IngestJob) *v1.IngestJob {
	return &v1.IngestJob{
		Id:         job.ID.String(),
		DocumentId: job.DocumentID.String(),
		Status:     job.Status,
		Message:    job.Message,
		CreatedAt:  job.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  job.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
