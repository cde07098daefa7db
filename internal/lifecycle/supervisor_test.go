package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
	"github.com/joseph-ayodele/threat-mapper/internal/storage"
)

type fixture struct {
	client     *ent.Client
	store      *storage.FSStore
	docs       repository.DocumentRepository
	supervisor *Supervisor
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
	return &fixture{
		client:     client,
		store:      store,
		docs:       docs,
		supervisor: NewSupervisor(docs, store, logger),
	}
}

// seedDocumentTree stores bytes and builds the whole dependent graph:
// document, job, report, sentence, mapping.
func (f *fixture) seedDocumentTree(t *testing.T) (*ent.Document, string) {
	t.Helper()
	ctx := context.Background()

	path, err := f.store.Save(ctx, "report.txt", strings.NewReader("The actor used PowerShell."))
	require.NoError(t, err)

	doc, err := f.docs.Create(ctx, "report.txt", path, "tester")
	require.NoError(t, err)

	_, err = f.client.IngestJob.Create().
		SetDocumentID(doc.ID).
		SetStatus(string(constants.JobStatusDone)).
		Save(ctx)
	require.NoError(t, err)

	rep, err := f.client.Report.Create().
		SetName("Report for report.txt").
		SetDocumentID(doc.ID).
		SetText("The actor used PowerShell.").
		Save(ctx)
	require.NoError(t, err)

	sentence, err := f.client.Sentence.Create().
		SetReportID(rep.ID).
		SetDocumentID(doc.ID).
		SetText("The actor used PowerShell.").
		Save(ctx)
	require.NoError(t, err)

	obj, err := f.client.AttackObject.Create().
		SetKind(string(constants.KindTechnique)).
		SetName("PowerShell").
		SetStixID("attack-pattern--" + uuid.NewString()).
		SetAttackID("T1059.001").
		SetAttackURL("https://attack.mitre.org/techniques/T1059/001").
		SetMatrix("enterprise-attack").
		Save(ctx)
	require.NoError(t, err)

	_, err = f.client.Mapping.Create().
		SetReportID(rep.ID).
		SetSentenceID(sentence.ID).
		SetAttackObjectID(obj.ID).
		SetConfidence(55).
		Save(ctx)
	require.NoError(t, err)

	return doc, path
}

func TestDestroyDocument_CascadesAndRemovesBytes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc, path := f.seedDocumentTree(t)

	require.NoError(t, f.supervisor.DestroyDocument(ctx, doc.ID))

	// every dependent row is gone
	for name, count := range map[string]func() (int, error){
		"documents": func() (int, error) { return f.client.Document.Query().Count(ctx) },
		"jobs":      func() (int, error) { return f.client.IngestJob.Query().Count(ctx) },
		"reports":   func() (int, error) { return f.client.Report.Query().Count(ctx) },
		"sentences": func() (int, error) { return f.client.Sentence.Query().Count(ctx) },
		"mappings":  func() (int, error) { return f.client.Mapping.Query().Count(ctx) },
	} {
		n, err := count()
		require.NoError(t, err)
		assert.Zero(t, n, "expected no %s left", name)
	}

	// the taxonomy is untouched
	n, err := f.client.AttackObject.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDestroyDocument_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.supervisor.DestroyDocument(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestCleanup_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	path, err := f.store.Save(ctx, "report.txt", strings.NewReader("body"))
	require.NoError(t, err)

	require.NoError(t, f.supervisor.Cleanup(ctx, path))
	// second removal of the same path is still success
	require.NoError(t, f.supervisor.Cleanup(ctx, path))
}

func TestDestroyDocument_MissingBytesStillSucceeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc, path := f.seedDocumentTree(t)
	require.NoError(t, os.Remove(path))

	require.NoError(t, f.supervisor.DestroyDocument(ctx, doc.ID))
}
