package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/internal/acceptance"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
)

// Service is a tiny façade over the acceptance engine that produces XLSX bytes for exports.
type Service struct {
	engine *acceptance.Engine
	logger *slog.Logger
}

func NewService(engine *acceptance.Engine, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{engine: engine, logger: logger}
}

// ExportCountsXLSX returns an XLSX workbook (as bytes) holding per-entry
// acceptance tallies for the given kind, sentence and report granularity
// on separate sheets.
func (s *Service) ExportCountsXLSX(ctx context.Context, kind constants.ObjectKind, threshold int) ([]byte, error) {
	start := time.Now()

	sentenceCounts, err := s.engine.GetSentenceCounts(ctx, kind, threshold)
	if err != nil {
		return nil, fmt.Errorf("query sentence counts: %w", err)
	}
	reportCounts, err := s.engine.GetReportCounts(ctx, kind, threshold)
	if err != nil {
		return nil, fmt.Errorf("query report counts: %w", err)
	}

	f := excelize.NewFile()
	if err := writeCountsSheet(f, "Sentence Counts", sentenceCounts); err != nil {
		return nil, err
	}
	if err := writeCountsSheet(f, "Report Counts", reportCounts); err != nil {
		return nil, err
	}
	// drop excelize's default sheet
	_ = f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex("Sentence Counts"); err == nil {
		f.SetActiveSheet(index)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.counts.ok",
		"kind", string(kind),
		"sentence_rows", len(sentenceCounts),
		"report_rows", len(reportCounts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportAcceptedXLSX returns an XLSX workbook listing every mapping that
// targets an entry currently meeting the acceptance threshold.
func (s *Service) ExportAcceptedXLSX(ctx context.Context, kind constants.ObjectKind, granularity repository.Granularity) ([]byte, error) {
	start := time.Now()

	rows, err := s.engine.GetAcceptedMappings(ctx, kind, granularity)
	if err != nil {
		return nil, fmt.Errorf("query accepted mappings: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Accepted Mappings"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	_ = f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex(sheet); err == nil {
		f.SetActiveSheet(index)
	}

	headers := []string{
		"Attack ID",
		"Name",
		"Sentence",
		"Disposition",
		"Confidence",
		"Model",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowN := 2
	for _, m := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowN)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if obj := m.Edges.AttackObject; obj != nil {
			write(1, obj.AttackID)
			write(2, obj.Name)
		}
		if sent := m.Edges.Sentence; sent != nil {
			write(3, truncate(sent.Text, 280))
			if sent.Disposition != nil {
				write(4, *sent.Disposition)
			} else {
				write(4, "pending")
			}
		}
		write(5, m.Confidence)
		if m.ModelName != nil {
			write(6, *m.ModelName)
		}

		rowN++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 32)
	_ = f.SetColWidth(sheet, "C", "C", 80)
	_ = f.SetColWidth(sheet, "D", "D", 12)
	_ = f.SetColWidth(sheet, "E", "F", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.accepted.ok",
		"kind", string(kind),
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeCountsSheet(f *excelize.File, sheet string, counts []acceptance.ObjectCounts) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Attack ID", "Name", "Accepted", "Pending", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range counts {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, c.Object.AttackID)
		write(2, c.Object.Name)
		write(3, c.Accepted)
		write(4, c.Pending)
		write(5, c.Total)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "E", 10)
	return nil
}

// truncate clips s to at most n runes, never splitting a multi-byte
// character.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}
