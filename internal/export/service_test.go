package export_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	"github.com/joseph-ayodele/threat-mapper/internal/acceptance"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
	"github.com/joseph-ayodele/threat-mapper/internal/export"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
)

func newService(t *testing.T) (*export.Service, *ent.Client) {
	t.Helper()
	logger := slog.Default()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	client, err := repository.OpenSQLite(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	mappings := repository.NewMappingRepository(client, logger)
	engine := acceptance.NewEngine(client, mappings, common.StaticThresholdSource(1), logger)
	return export.NewService(engine, logger), client
}

func seedAcceptedMapping(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := context.Background()

	obj, err := client.AttackObject.Create().
		SetKind(string(constants.KindTechnique)).
		SetName("Phishing").
		SetStixID("attack-pattern--" + uuid.NewString()).
		SetAttackID("T1566").
		SetAttackURL("https://attack.mitre.org/techniques/T1566").
		SetMatrix("enterprise-attack").
		Save(ctx)
	require.NoError(t, err)

	rep, err := client.Report.Create().SetName("r").SetText("body").Save(ctx)
	require.NoError(t, err)

	sent, err := client.Sentence.Create().
		SetText("A phishing email was observed.").
		SetReportID(rep.ID).
		SetOrder(0).
		SetDisposition(string(constants.DispositionAccept)).
		Save(ctx)
	require.NoError(t, err)

	model := "keyword"
	_, err = client.Mapping.Create().
		SetReportID(rep.ID).
		SetSentenceID(sent.ID).
		SetAttackObjectID(obj.ID).
		SetConfidence(55).
		SetModelName(model).
		Save(ctx)
	require.NoError(t, err)
}

func TestExportCountsXLSX(t *testing.T) {
	svc, client := newService(t)
	seedAcceptedMapping(t, client)

	out, err := svc.ExportCountsXLSX(context.Background(), constants.KindTechnique, 1)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	assert.ElementsMatch(t, []string{"Sentence Counts", "Report Counts"}, wb.GetSheetList())

	id, err := wb.GetCellValue("Sentence Counts", "A2")
	require.NoError(t, err)
	assert.Equal(t, "T1566", id)
	accepted, err := wb.GetCellValue("Sentence Counts", "C2")
	require.NoError(t, err)
	assert.Equal(t, "1", accepted)
}

func TestExportAcceptedXLSX(t *testing.T) {
	svc, client := newService(t)
	seedAcceptedMapping(t, client)

	out, err := svc.ExportAcceptedXLSX(context.Background(), constants.KindTechnique, repository.SentenceLevel)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	id, err := wb.GetCellValue("Accepted Mappings", "A2")
	require.NoError(t, err)
	assert.Equal(t, "T1566", id)
	text, err := wb.GetCellValue("Accepted Mappings", "C2")
	require.NoError(t, err)
	assert.Equal(t, "A phishing email was observed.", text)
	disposition, err := wb.GetCellValue("Accepted Mappings", "D2")
	require.NoError(t, err)
	assert.Equal(t, string(constants.DispositionAccept), disposition)
}

func TestExportCountsXLSX_EmptyDatabase(t *testing.T) {
	svc, _ := newService(t)

	out, err := svc.ExportCountsXLSX(context.Background(), constants.KindGroup, 0)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	// header row only
	rows, err := wb.GetRows("Sentence Counts")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
