package acceptance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	client, err := repository.OpenSQLite(context.Background(), dsn, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newEngine(t *testing.T, client *ent.Client, threshold common.ThresholdSource) *Engine {
	t.Helper()
	mappings := repository.NewMappingRepository(client, slog.Default())
	return NewEngine(client, mappings, threshold, slog.Default())
}

func seedObject(t *testing.T, client *ent.Client, kind constants.ObjectKind, attackID, name string) *ent.AttackObject {
	t.Helper()
	obj, err := client.AttackObject.Create().
		SetKind(string(kind)).
		SetName(name).
		SetStixID("attack-pattern--" + uuid.NewString()).
		SetAttackID(attackID).
		SetAttackURL("https://attack.mitre.org/techniques/" + attackID).
		SetMatrix("enterprise-attack").
		Save(context.Background())
	require.NoError(t, err)
	return obj
}

func seedReport(t *testing.T, client *ent.Client, name string) *ent.Report {
	t.Helper()
	rep, err := client.Report.Create().
		SetName(name).
		SetText("report body").
		Save(context.Background())
	require.NoError(t, err)
	return rep
}

func seedSentence(t *testing.T, client *ent.Client, reportID uuid.UUID, text string, disposition *constants.Disposition) *ent.Sentence {
	t.Helper()
	create := client.Sentence.Create().
		SetText(text).
		SetReportID(reportID)
	if disposition != nil {
		create.SetDisposition(string(*disposition))
	}
	s, err := create.Save(context.Background())
	require.NoError(t, err)
	return s
}

func seedSentenceMapping(t *testing.T, client *ent.Client, reportID, sentenceID, objectID uuid.UUID) *ent.Mapping {
	t.Helper()
	m, err := client.Mapping.Create().
		SetReportID(reportID).
		SetSentenceID(sentenceID).
		SetAttackObjectID(objectID).
		SetConfidence(90).
		Save(context.Background())
	require.NoError(t, err)
	return m
}

func seedReportMapping(t *testing.T, client *ent.Client, reportID, objectID uuid.UUID) *ent.Mapping {
	t.Helper()
	m, err := client.Mapping.Create().
		SetReportID(reportID).
		SetAttackObjectID(objectID).
		SetConfidence(90).
		Save(context.Background())
	require.NoError(t, err)
	return m
}

func accept() *constants.Disposition {
	d := constants.DispositionAccept
	return &d
}

func reject() *constants.Disposition {
	d := constants.DispositionReject
	return &d
}

func TestGetSentenceCounts_ThresholdAndOrdering(t *testing.T) {
	client := newTestClient(t)
	engine := newEngine(t, client, common.StaticThresholdSource(1))
	ctx := context.Background()

	powershell := seedObject(t, client, constants.KindTechnique, "T1059.001", "PowerShell")
	dumping := seedObject(t, client, constants.KindTechnique, "T1003", "OS Credential Dumping")
	rep := seedReport(t, client, "Report A")

	// T1059.001: two accepted, one pending
	for _, d := range []*constants.Disposition{accept(), accept(), nil} {
		s := seedSentence(t, client, rep.ID, "sentence", d)
		seedSentenceMapping(t, client, rep.ID, s.ID, powershell.ID)
	}
	// T1003: two accepted
	for i := 0; i < 2; i++ {
		s := seedSentence(t, client, rep.ID, "sentence", accept())
		seedSentenceMapping(t, client, rep.ID, s.ID, dumping.ID)
	}

	counts, err := engine.GetSentenceCounts(ctx, constants.KindTechnique, 2)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	// tie on accepted=2, attack_id breaks it
	assert.Equal(t, "T1003", counts[0].Object.AttackID)
	assert.Equal(t, 2, counts[0].Accepted)
	assert.Equal(t, 0, counts[0].Pending)
	assert.Equal(t, 2, counts[0].Total)

	assert.Equal(t, "T1059.001", counts[1].Object.AttackID)
	assert.Equal(t, 2, counts[1].Accepted)
	assert.Equal(t, 1, counts[1].Pending)
	assert.Equal(t, 3, counts[1].Total)

	counts, err = engine.GetSentenceCounts(ctx, constants.KindTechnique, 3)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestGetSentenceCounts_DistinctPairsCountedOnce(t *testing.T) {
	client := newTestClient(t)
	engine := newEngine(t, client, common.StaticThresholdSource(0))
	ctx := context.Background()

	obj := seedObject(t, client, constants.KindTechnique, "T1566", "Phishing")
	rep := seedReport(t, client, "Report A")
	s := seedSentence(t, client, rep.ID, "sentence", accept())

	// the same sentence proposed twice for the same entry
	seedSentenceMapping(t, client, rep.ID, s.ID, obj.ID)
	seedSentenceMapping(t, client, rep.ID, s.ID, obj.ID)

	counts, err := engine.GetSentenceCounts(ctx, constants.KindTechnique, 0)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, 1, counts[0].Accepted)
	assert.Equal(t, 1, counts[0].Total)
}

func TestGetSentenceCounts_RejectedInTotalOnly(t *testing.T) {
	client := newTestClient(t)
	engine := newEngine(t, client, common.StaticThresholdSource(0))
	ctx := context.Background()

	obj := seedObject(t, client, constants.KindTechnique, "T1566", "Phishing")
	rep := seedReport(t, client, "Report A")

	for _, d := range []*constants.Disposition{accept(), reject(), nil} {
		s := seedSentence(t, client, rep.ID, "sentence", d)
		seedSentenceMapping(t, client, rep.ID, s.ID, obj.ID)
	}

	counts, err := engine.GetSentenceCounts(ctx, constants.KindTechnique, 0)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, 1, counts[0].Accepted)
	assert.Equal(t, 1, counts[0].Pending)
	assert.Equal(t, 3, counts[0].Total)
}

func TestGetSentenceCounts_NegativeThreshold(t *testing.T) {
	client := newTestClient(t)
	engine := newEngine(t, client, common.StaticThresholdSource(1))

	_, err := engine.GetSentenceCounts(context.Background(), constants.KindTechnique, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestGetSentenceCounts_KindIsolation(t *testing.T) {
	client := newTestClient(t)
	engine := newEngine(t, client, common.StaticThresholdSource(0))
	ctx := context.Background()

	technique := seedObject(t, client, constants.KindTechnique, "T1059", "Command and Scripting Interpreter")
	group := seedObject(t, client, constants.KindGroup, "G0016", "APT29")
	rep := seedReport(t, client, "Report A")

	s1 := seedSentence(t, client, rep.ID, "sentence", accept())
	seedSentenceMapping(t, client, rep.ID, s1.ID, technique.ID)
	s2 := seedSentence(t, client, rep.ID, "sentence", accept())
	seedSentenceMapping(t, client, rep.ID, s2.ID, group.ID)

	counts, err := engine.GetSentenceCounts(ctx, constants.KindGroup, 0)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "G0016", counts[0].Object.AttackID)
}

func TestGetReportCounts_DerivedDisposition(t *testing.T) {
	client := newTestClient(t)
	engine := newEngine(t, client, common.StaticThresholdSource(0))
	ctx := context.Background()

	obj := seedObject(t, client, constants.KindTechnique, "T1059", "Command and Scripting Interpreter")
	other := seedObject(t, client, constants.KindTechnique, "T1003", "OS Credential Dumping")

	// accepted: one of its sentences for the entry is accepted
	repAccepted := seedReport(t, client, "accepted")
	s := seedSentence(t, client, repAccepted.ID, "sentence", accept())
	seedSentenceMapping(t, client, repAccepted.ID, s.ID, obj.ID)
	seedReportMapping(t, client, repAccepted.ID, obj.ID)

	// pending: only unreviewed sentence evidence
	repPending := seedReport(t, client, "pending")
	s2 := seedSentence(t, client, repPending.ID, "sentence", nil)
	seedSentenceMapping(t, client, repPending.ID, s2.ID, obj.ID)
	seedReportMapping(t, client, repPending.ID, obj.ID)

	// rejected: all reviewed evidence rejected, counted in total only
	repRejected := seedReport(t, client, "rejected")
	s3 := seedSentence(t, client, repRejected.ID, "sentence", reject())
	seedSentenceMapping(t, client, repRejected.ID, s3.ID, obj.ID)
	seedReportMapping(t, client, repRejected.ID, obj.ID)

	// evidence for another entry does not leak in
	seedReportMapping(t, client, repAccepted.ID, other.ID)

	counts, err := engine.GetReportCounts(ctx, constants.KindTechnique, 0)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byID := map[string]ObjectCounts{}
	for _, c := range counts {
		byID[c.Object.AttackID] = c
	}
	assert.Equal(t, 1, byID["T1059"].Accepted)
	assert.Equal(t, 1, byID["T1059"].Pending)
	assert.Equal(t, 3, byID["T1059"].Total)

	// no sentence evidence at all counts as pending
	assert.Equal(t, 0, byID["T1003"].Accepted)
	assert.Equal(t, 1, byID["T1003"].Pending)
	assert.Equal(t, 1, byID["T1003"].Total)
}

func TestGetAcceptedMappings_IncludesPendingRows(t *testing.T) {
	client := newTestClient(t)
	engine := newEngine(t, client, common.StaticThresholdSource(2))
	ctx := context.Background()

	obj := seedObject(t, client, constants.KindTechnique, "T1059", "Command and Scripting Interpreter")
	rep := seedReport(t, client, "Report A")

	// two accepted, one pending: the entry qualifies at threshold 2 and
	// every sentence-level row comes back, pending included
	for _, d := range []*constants.Disposition{accept(), accept(), nil} {
		s := seedSentence(t, client, rep.ID, "sentence", d)
		seedSentenceMapping(t, client, rep.ID, s.ID, obj.ID)
	}

	rows, err := engine.GetAcceptedMappings(ctx, constants.KindTechnique, repository.SentenceLevel)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestGetAcceptedMappings_BelowThreshold(t *testing.T) {
	client := newTestClient(t)
	engine := newEngine(t, client, common.StaticThresholdSource(2))
	ctx := context.Background()

	obj := seedObject(t, client, constants.KindTechnique, "T1059", "Command and Scripting Interpreter")
	rep := seedReport(t, client, "Report A")
	s := seedSentence(t, client, rep.ID, "sentence", accept())
	seedSentenceMapping(t, client, rep.ID, s.ID, obj.ID)

	rows, err := engine.GetAcceptedMappings(ctx, constants.KindTechnique, repository.SentenceLevel)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGetAcceptedMappings_ThresholdUnavailable(t *testing.T) {
	client := newTestClient(t)
	engine := newEngine(t, client, common.EnvThresholdSource{})
	t.Setenv("ML_ACCEPT_THRESHOLD", "")

	_, err := engine.GetAcceptedMappings(context.Background(), constants.KindTechnique, repository.SentenceLevel)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConfigUnavailable))
}

func TestGetSentenceCounts_IgnoresNegativeExamples(t *testing.T) {
	client := newTestClient(t)
	engine := newEngine(t, client, common.StaticThresholdSource(0))
	ctx := context.Background()

	rep := seedReport(t, client, "Report A")
	s := seedSentence(t, client, rep.ID, "sentence", accept())
	_, err := client.Mapping.Create().
		SetReportID(rep.ID).
		SetSentenceID(s.ID).
		SetConfidence(0).
		Save(ctx)
	require.NoError(t, err)

	counts, err := engine.GetSentenceCounts(ctx, constants.KindTechnique, 0)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
