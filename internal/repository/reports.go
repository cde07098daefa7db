package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	entindicator "github.com/joseph-ayodele/threat-mapper/gen/ent/indicator"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
)

// ReportRepository stores analysis results. A report owns its sentences,
// indicators and mappings; deleting one cascades to all three.
type ReportRepository interface {
	Create(ctx context.Context, name string, documentID *uuid.UUID, text, createdBy string) (*ent.Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddIndicators(ctx context.Context, reportID uuid.UUID, indicators []IndicatorInput) error
	ListIndicators(ctx context.Context, reportID uuid.UUID) ([]*ent.Indicator, error)
}

// IndicatorInput is one extracted artifact for a report.
type IndicatorInput struct {
	Type  string
	Value string
}

type reportRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewReportRepository(entc *ent.Client, logger *slog.Logger) ReportRepository {
	return &reportRepo{ent: entc, logger: logger}
}

func (r *reportRepo) Create(ctx context.Context, name string, documentID *uuid.UUID, text, createdBy string) (*ent.Report, error) {
	create := r.ent.Report.Create().
		SetName(name).
		SetText(text)
	if documentID != nil {
		create = create.SetDocumentID(*documentID)
	}
	if createdBy != "" {
		create = create.SetCreatedBy(createdBy)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create report", "name", name, "error", err)
		return nil, err
	}
	r.logger.Info("report created", "report_id", row.ID, "name", name)
	return row, nil
}

func (r *reportRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Report, error) {
	row, err := r.ent.Report.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("REPORT_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return row, err
}

func (r *reportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.Report.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return common.NewAppError("REPORT_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to delete report", "report_id", id, "error", err)
		return err
	}
	r.logger.Info("report deleted", "report_id", id)
	return nil
}

func (r *reportRepo) AddIndicators(ctx context.Context, reportID uuid.UUID, indicators []IndicatorInput) error {
	if len(indicators) == 0 {
		return nil
	}
	bulk := make([]*ent.IndicatorCreate, 0, len(indicators))
	for _, in := range indicators {
		bulk = append(bulk, r.ent.Indicator.Create().
			SetReportID(reportID).
			SetIndicatorType(in.Type).
			SetValue(in.Value))
	}
	if _, err := r.ent.Indicator.CreateBulk(bulk...).Save(ctx); err != nil {
		r.logger.Error("failed to add indicators", "report_id", reportID, "error", err)
		return err
	}
	r.logger.Info("indicators added", "report_id", reportID, "count", len(indicators))
	return nil
}

func (r *reportRepo) ListIndicators(ctx context.Context, reportID uuid.UUID) ([]*ent.Indicator, error) {
	return r.ent.Indicator.Query().
		Where(entindicator.ReportID(reportID)).
		Order(ent.Asc(entindicator.FieldIndicatorType), ent.Asc(entindicator.FieldValue)).
		All(ctx)
}
