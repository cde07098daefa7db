package ingest_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	"github.com/joseph-ayodele/threat-mapper/internal/async"
	"github.com/joseph-ayodele/threat-mapper/internal/ingest"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
	"github.com/joseph-ayodele/threat-mapper/internal/storage"
)

// recordingQueue captures enqueued jobs instead of running them.
type recordingQueue struct {
	jobs []async.Job
	err  error
}

func (q *recordingQueue) Enqueue(_ context.Context, job async.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Shutdown(context.Context) {}

type fixture struct {
	client  *ent.Client
	service *ingest.Service
	queue   *recordingQueue
	docs    repository.DocumentRepository
	jobs    repository.IngestJobRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.Default()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	client, err := repository.OpenSQLite(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store, err := storage.NewFSStore(t.TempDir(), logger)
	require.NoError(t, err)

	queue := &recordingQueue{}
	docs := repository.NewDocumentRepository(client, logger)
	jobs := repository.NewIngestJobRepository(client, logger)
	return &fixture{
		client:  client,
		service: ingest.NewService(store, docs, jobs, queue, logger),
		queue:   queue,
		docs:    docs,
		jobs:    jobs,
	}
}

func TestSubmit_CreatesDocumentAndQueuedJob(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.service.Submit(ctx, "campaign.md", strings.NewReader("The actor used PowerShell."), "analyst")
	require.NoError(t, err)
	assert.Equal(t, "campaign.md", res.Filename)

	doc, err := f.docs.GetByID(ctx, res.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, "campaign.md", doc.Filename)

	job, err := f.jobs.GetByID(ctx, res.JobID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusQueued), job.Status)
	assert.Equal(t, doc.ID, job.DocumentID)

	require.Len(t, f.queue.jobs, 1)
	assert.Equal(t, res.JobID, f.queue.jobs[0].JobID)
}

func TestSubmit_RejectsUnsupportedExtension(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Submit(ctx, "payload.exe", strings.NewReader("MZ"), "")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// nothing recorded, nothing queued
	n, err := f.client.Document.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, f.queue.jobs)
}

func TestSubmit_EnqueueFailureSurfaces(t *testing.T) {
	f := newFixture(t)
	f.queue.err = errors.New("queue full")

	_, err := f.service.Submit(context.Background(), "report.txt", strings.NewReader("text"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue full")
}

func TestSubmitDirectory_FiltersAndCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.html"), []byte("<p>beta</p>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.bin"), []byte{0x00}, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "c.txt"), []byte("hidden"), 0o644))

	results, stats, err := f.service.SubmitDirectory(ctx, root, "analyst", true)
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.Matched)
	assert.EqualValues(t, 2, stats.Succeeded)
	assert.Zero(t, stats.Failed)
	require.Len(t, results, 2)
	assert.Len(t, f.queue.jobs, 2)
}

func TestSubmitDirectory_EmptyRoot(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.service.SubmitDirectory(context.Background(), "  ", "", false)
	require.Error(t, err)
}

func TestIsHidden(t *testing.T) {
	assert.True(t, ingest.IsHidden("/data/reports/.git"))
	assert.True(t, ingest.IsHidden(".env"))
	assert.False(t, ingest.IsHidden("/data/reports/campaign.txt"))
}
