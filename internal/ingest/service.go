package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/internal/async"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
	"github.com/joseph-ayodele/threat-mapper/internal/storage"
)

// Service stores submitted document bytes, records the document row,
// queues an extraction job, and hands the job id to the worker queue.
type Service struct {
	store  storage.Store
	docs   repository.DocumentRepository
	jobs   repository.IngestJobRepository
	queue  async.Queue
	logger *slog.Logger
}

func NewService(store storage.Store, docs repository.DocumentRepository, jobs repository.IngestJobRepository, queue async.Queue, logger *slog.Logger) *Service {
	return &Service{store: store, docs: docs, jobs: jobs, queue: queue, logger: logger}
}

func (s *Service) Submit(ctx context.Context, filename string, r io.Reader, createdBy string) (SubmitResult, error) {
	var out SubmitResult

	ext := constants.NormalizeExt(filepath.Ext(filename))
	if !AllowedExt(ext) {
		s.logger.Warn("rejected document with unsupported extension", "filename", filename, "ext", ext)
		return out, common.InvalidArgumentErrorf("unsupported or missing extension: %q", ext)
	}

	path, err := s.store.Save(ctx, filename, r)
	if err != nil {
		return out, err
	}

	doc, err := s.docs.Create(ctx, filename, path, createdBy)
	if err != nil {
		// the stored bytes are unreachable without a row, remove them
		if rmErr := s.store.Remove(ctx, path); rmErr != nil {
			s.logger.Error("failed to remove stored bytes after create failure", "storage_path", path, "error", rmErr)
		}
		return out, err
	}

	job, err := s.jobs.CreateQueued(ctx, doc.ID, createdBy)
	if err != nil {
		return out, err
	}

	now := time.Now().UTC()
	if err := s.queue.Enqueue(ctx, async.Job{JobID: job.ID, SubmittedAt: now}); err != nil {
		return out, err
	}

	s.logger.Info("document submitted", "document_id", doc.ID, "job_id", job.ID, "filename", filename)
	return SubmitResult{
		DocumentID:  doc.ID,
		JobID:       job.ID,
		Filename:    filename,
		SubmittedAt: now,
	}, nil
}

func (s *Service) SubmitPath(ctx context.Context, path string, createdBy string) (SubmitResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("abs path: %w", err)
	}
	f, err := os.Open(abs)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("open: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("close file", "path", abs, "error", cerr)
		}
	}()

	return s.Submit(ctx, filepath.Base(abs), f, createdBy)
}
