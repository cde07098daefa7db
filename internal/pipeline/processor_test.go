package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	entmapping "github.com/joseph-ayodele/threat-mapper/gen/ent/mapping"
	entsentence "github.com/joseph-ayodele/threat-mapper/gen/ent/sentence"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
	"github.com/joseph-ayodele/threat-mapper/internal/scorer"
	"github.com/joseph-ayodele/threat-mapper/internal/storage"
)

type fixture struct {
	client    *ent.Client
	store     *storage.FSStore
	processor *Processor
	docs      repository.DocumentRepository
	jobs      repository.IngestJobRepository
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

	docs := repository.NewDocumentRepository(client, logger)
	jobs := repository.NewIngestJobRepository(client, logger)
	proc := NewProcessor(logger, client, store, scorer.NewKeywordScorer(), jobs, docs)

	return &fixture{client: client, store: store, processor: proc, docs: docs, jobs: jobs}
}

// submit stores content and creates the document and queued job rows the
// way the ingest service does.
func (f *fixture) submit(t *testing.T, filename, content string) (*ent.Document, *ent.IngestJob) {
	t.Helper()
	ctx := context.Background()

	path, err := f.store.Save(ctx, filename, strings.NewReader(content))
	require.NoError(t, err)
	doc, err := f.docs.Create(ctx, filename, path, "tester")
	require.NoError(t, err)
	job, err := f.jobs.CreateQueued(ctx, doc.ID, "tester")
	require.NoError(t, err)
	return doc, job
}

func seedTechnique(t *testing.T, client *ent.Client, attackID, name string) *ent.AttackObject {
	t.Helper()
	obj, err := client.AttackObject.Create().
		SetKind(string(constants.KindTechnique)).
		SetName(name).
		SetStixID("attack-pattern--" + uuid.NewString()).
		SetAttackID(attackID).
		SetAttackURL("https://attack.mitre.org/techniques/" + attackID).
		SetMatrix("enterprise-attack").
		Save(context.Background())
	require.NoError(t, err)
	return obj
}

func TestProcessJob_HappyPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seedTechnique(t, f.client, "T1059.001", "PowerShell")
	seedTechnique(t, f.client, "T1566", "Phishing")

	text := "The actor sent a phishing email. The payload launched PowerShell.\n" +
		"C2 traffic went to 10.1.2.3."
	doc, job := f.submit(t, "report.txt", text)

	require.NoError(t, f.processor.ProcessJob(ctx, job.ID))

	got, err := f.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusDone), got.Status)
	assert.Empty(t, got.Message)

	report, err := f.client.Report.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Report for report.txt", report.Name)
	require.NotNil(t, report.DocumentID)
	assert.Equal(t, doc.ID, *report.DocumentID)

	sentences, err := f.client.Sentence.Query().
		Where(entsentence.ReportID(report.ID)).
		Order(ent.Asc(entsentence.FieldOrder)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, sentences, 3)
	for i, s := range sentences {
		assert.Equal(t, i*constants.SentenceOrderStride, s.Order)
		assert.Nil(t, s.Disposition)
	}

	// every sentence got at least its scorer verdict
	mappings, err := f.client.Mapping.Query().
		Where(entmapping.ReportID(report.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, mappings, 3)

	positives := 0
	negatives := 0
	for _, m := range mappings {
		require.NotNil(t, m.SentenceID)
		if m.AttackObjectID == nil {
			negatives++
			assert.Zero(t, m.Confidence)
		} else {
			positives++
		}
	}
	assert.Equal(t, 2, positives)
	assert.Equal(t, 1, negatives)

	indicators, err := f.client.Indicator.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, indicators, 1)
	assert.Equal(t, "ipv4", indicators[0].IndicatorType)
	assert.Equal(t, "10.1.2.3", indicators[0].Value)
}

func TestProcessJob_EmptyDocumentFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, job := f.submit(t, "empty.txt", "   \n  ")

	err := f.processor.ProcessJob(ctx, job.ID)
	require.Error(t, err)

	got, err := f.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusError), got.Status)
	assert.Contains(t, got.Message, "could not extract any sentences")

	// atomic: no partial report survives a failed run
	n, err := f.client.Report.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProcessJob_UnresolvableAttackIDFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// keyword scorer proposes T1566 but the taxonomy was never loaded
	_, job := f.submit(t, "report.txt", "The actor sent a phishing email.")

	err := f.processor.ProcessJob(ctx, job.ID)
	require.Error(t, err)

	got, err := f.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusError), got.Status)
	assert.Contains(t, got.Message, "resolve attack id")
}

func TestProcessJob_SkipsNonQueuedJob(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, job := f.submit(t, "report.txt", "The actor launched PowerShell.")
	require.NoError(t, f.jobs.MarkDone(ctx, job.ID))

	require.NoError(t, f.processor.ProcessJob(ctx, job.ID))

	// nothing was re-processed
	n, err := f.client.Report.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProcessJob_ErrorMessageTruncated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	longName := strings.Repeat("x", constants.MaxJobMessageLen+100) + ".txt"
	_, job := f.submit(t, longName, "")

	err := f.processor.ProcessJob(ctx, job.ID)
	require.Error(t, err)

	got, err := f.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusError), got.Status)
	assert.LessOrEqual(t, len(got.Message), constants.MaxJobMessageLen)
}
