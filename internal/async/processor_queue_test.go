package async_test

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	"github.com/joseph-ayodele/threat-mapper/internal/async"
	"github.com/joseph-ayodele/threat-mapper/internal/pipeline"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
	"github.com/joseph-ayodele/threat-mapper/internal/scorer"
	"github.com/joseph-ayodele/threat-mapper/internal/storage"
)

type fixture struct {
	client *ent.Client
	queue  *async.ProcessorQueue
	jobs   repository.IngestJobRepository
	store  *storage.FSStore
	docs   repository.DocumentRepository
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

	jobs := repository.NewIngestJobRepository(client, logger)
	docs := repository.NewDocumentRepository(client, logger)
	proc := pipeline.NewProcessor(logger, client, store, scorer.NewKeywordScorer(), jobs, docs)
	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(2),
		async.WithQueueSize(8),
		async.WithProcessTimeout(30*time.Second),
	)
	for attackID, name := range map[string]string{"T1059.001": "PowerShell", "T1566": "Phishing"} {
		_, err := client.AttackObject.Create().
			SetKind(string(constants.KindTechnique)).
			SetName(name).
			SetStixID("attack-pattern--" + uuid.NewString()).
			SetAttackID(attackID).
			SetAttackURL("https://attack.mitre.org/techniques/" + attackID).
			SetMatrix("enterprise-attack").
			Save(context.Background())
		require.NoError(t, err)
	}
	return &fixture{client: client, queue: queue, jobs: jobs, store: store, docs: docs}
}

func (f *fixture) submit(t *testing.T, content string) *ent.IngestJob {
	t.Helper()
	ctx := context.Background()
	path, err := f.store.Save(ctx, "report.txt", strings.NewReader(content))
	require.NoError(t, err)
	doc, err := f.docs.Create(ctx, "report.txt", path, "")
	require.NoError(t, err)
	job, err := f.jobs.CreateQueued(ctx, doc.ID, "")
	require.NoError(t, err)
	return job
}

func (f *fixture) waitStatus(t *testing.T, jobID uuid.UUID, want constants.JobStatus) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		job, err := f.jobs.GetByID(context.Background(), jobID)
		require.NoError(t, err)
		if job.Status == string(want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("job %s never reached status %s", jobID, want)
}

func TestProcessorQueue_ProcessesEnqueuedJobs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	job := f.submit(t, "The actor used PowerShell. Later a phishing email arrived.")
	require.NoError(t, f.queue.Enqueue(ctx, async.Job{JobID: job.ID, SubmittedAt: time.Now()}))

	f.waitStatus(t, job.ID, constants.JobStatusDone)

	n, err := f.client.Sentence.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f.queue.Shutdown(ctx)
}

func TestProcessorQueue_ShutdownDrainsPendingWork(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		job := f.submit(t, "A phishing email was observed.")
		ids = append(ids, job.ID)
		require.NoError(t, f.queue.Enqueue(ctx, async.Job{JobID: job.ID, SubmittedAt: time.Now()}))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	f.queue.Shutdown(shutdownCtx)

	for _, id := range ids {
		job, err := f.jobs.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, string(constants.JobStatusDone), job.Status)
	}
}

func TestProcessorQueue_EnqueueAfterShutdownIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.queue.Shutdown(ctx)
	err := f.queue.Enqueue(ctx, async.Job{JobID: uuid.New(), SubmittedAt: time.Now()})
	assert.NoError(t, err)
}
