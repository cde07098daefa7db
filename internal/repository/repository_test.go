package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	client, err := OpenSQLite(context.Background(), dsn, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
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

func seedReport(t *testing.T, client *ent.Client) *ent.Report {
	t.Helper()
	rep, err := client.Report.Create().
		SetName("Report for report.txt").
		SetText("body").
		Save(context.Background())
	require.NoError(t, err)
	return rep
}

func TestAttackObjects_ImportSkipsExisting(t *testing.T) {
	client := newTestClient(t)
	repo := NewAttackObjectRepository(client, slog.Default())
	ctx := context.Background()

	entry := AttackObjectImport{
		Kind:      constants.KindTechnique,
		Name:      "Phishing",
		StixID:    "attack-pattern--00000000-0000-0000-0000-000000000001",
		AttackID:  "T1566",
		AttackURL: "https://attack.mitre.org/techniques/T1566",
		Matrix:    "enterprise-attack",
	}

	created, err := repo.Import(ctx, []AttackObjectImport{entry})
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	// same stix_id again is a no-op
	created, err = repo.Import(ctx, []AttackObjectImport{entry})
	require.NoError(t, err)
	assert.Zero(t, created)

	n, err := client.AttackObject.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAttackObjects_GetByAttackIDNotFound(t *testing.T) {
	client := newTestClient(t)
	repo := NewAttackObjectRepository(client, slog.Default())

	_, err := repo.GetByAttackID(context.Background(), "T9999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestAttackObjects_ListOrdersByAttackID(t *testing.T) {
	client := newTestClient(t)
	repo := NewAttackObjectRepository(client, slog.Default())
	ctx := context.Background()

	seedTechnique(t, client, "T1566", "Phishing")
	seedTechnique(t, client, "T1003", "OS Credential Dumping")

	rows, err := repo.List(ctx, constants.KindTechnique, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "T1003", rows[0].AttackID)
	assert.Equal(t, "T1566", rows[1].AttackID)
}

func TestSentences_InsertPreservesOrder(t *testing.T) {
	client := newTestClient(t)
	repo := NewSentenceRepository(client, slog.Default())
	ctx := context.Background()

	rep := seedReport(t, client)
	rows, err := repo.InsertSentences(ctx, rep.ID, nil, []string{"first", "second", "third"})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	listed, err := repo.ListByReport(ctx, rep.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "first", listed[0].Text)
	assert.Equal(t, 0, listed[0].Order)
	assert.Equal(t, "second", listed[1].Text)
	assert.Equal(t, constants.SentenceOrderStride, listed[1].Order)
	assert.Equal(t, "third", listed[2].Text)
	assert.Equal(t, 2*constants.SentenceOrderStride, listed[2].Order)
}

func TestSentences_SetAndClearDisposition(t *testing.T) {
	client := newTestClient(t)
	repo := NewSentenceRepository(client, slog.Default())
	ctx := context.Background()

	rep := seedReport(t, client)
	rows, err := repo.InsertSentences(ctx, rep.ID, nil, []string{"sentence"})
	require.NoError(t, err)
	id := rows[0].ID

	d := constants.DispositionAccept
	require.NoError(t, repo.SetDisposition(ctx, id, &d))
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.Disposition)
	assert.Equal(t, string(constants.DispositionAccept), *got.Disposition)

	// nil clears the verdict back to pending
	require.NoError(t, repo.SetDisposition(ctx, id, nil))
	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Disposition)
}

func TestSentences_SetDispositionNotFound(t *testing.T) {
	client := newTestClient(t)
	repo := NewSentenceRepository(client, slog.Default())

	d := constants.DispositionReject
	err := repo.SetDisposition(context.Background(), uuid.New(), &d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestMappings_ProposeValidation(t *testing.T) {
	client := newTestClient(t)
	repo := NewMappingRepository(client, slog.Default())
	ctx := context.Background()

	rep := seedReport(t, client)

	_, err := repo.Propose(ctx, ProposeInput{ReportID: rep.ID, Confidence: math.NaN()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))

	// report-level negative example is meaningless
	_, err = repo.Propose(ctx, ProposeInput{ReportID: rep.ID, Confidence: 50})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestMappings_PromoteFromReview(t *testing.T) {
	client := newTestClient(t)
	mappings := NewMappingRepository(client, slog.Default())
	sentences := NewSentenceRepository(client, slog.Default())
	ctx := context.Background()

	obj := seedTechnique(t, client, "T1059.001", "PowerShell")
	rep := seedReport(t, client)
	rows, err := sentences.InsertSentences(ctx, rep.ID, nil, []string{"sentence"})
	require.NoError(t, err)

	m, err := mappings.PromoteFromReview(ctx, rows[0].ID, "T1059.001", 99)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, m.ReportID)
	require.NotNil(t, m.SentenceID)
	assert.Equal(t, rows[0].ID, *m.SentenceID)
	require.NotNil(t, m.AttackObjectID)
	assert.Equal(t, obj.ID, *m.AttackObjectID)
}

func TestMappings_PromoteUnknownAttackIDWritesNothing(t *testing.T) {
	client := newTestClient(t)
	mappings := NewMappingRepository(client, slog.Default())
	sentences := NewSentenceRepository(client, slog.Default())
	ctx := context.Background()

	rep := seedReport(t, client)
	rows, err := sentences.InsertSentences(ctx, rep.ID, nil, []string{"sentence"})
	require.NoError(t, err)

	_, err = mappings.PromoteFromReview(ctx, rows[0].ID, "T9999", 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	n, err := client.Mapping.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMappings_ListByAttackObjectsGranularity(t *testing.T) {
	client := newTestClient(t)
	mappings := NewMappingRepository(client, slog.Default())
	sentences := NewSentenceRepository(client, slog.Default())
	ctx := context.Background()

	obj := seedTechnique(t, client, "T1566", "Phishing")
	rep := seedReport(t, client)
	rows, err := sentences.InsertSentences(ctx, rep.ID, nil, []string{"sentence"})
	require.NoError(t, err)

	sid := rows[0].ID
	_, err = mappings.Propose(ctx, ProposeInput{ReportID: rep.ID, SentenceID: &sid, AttackObjectID: &obj.ID, Confidence: 55})
	require.NoError(t, err)
	_, err = mappings.Propose(ctx, ProposeInput{ReportID: rep.ID, AttackObjectID: &obj.ID, Confidence: 55})
	require.NoError(t, err)

	sentenceLevel, err := mappings.ListByAttackObjects(ctx, []uuid.UUID{obj.ID}, SentenceLevel)
	require.NoError(t, err)
	require.Len(t, sentenceLevel, 1)
	assert.NotNil(t, sentenceLevel[0].SentenceID)

	reportLevel, err := mappings.ListByAttackObjects(ctx, []uuid.UUID{obj.ID}, ReportLevel)
	require.NoError(t, err)
	require.Len(t, reportLevel, 1)
	assert.Nil(t, reportLevel[0].SentenceID)

	none, err := mappings.ListByAttackObjects(ctx, nil, SentenceLevel)
	require.NoError(t, err)
	assert.Empty(t, none)
}
