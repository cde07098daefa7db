package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	entsentence "github.com/joseph-ayodele/threat-mapper/gen/ent/sentence"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
)

// SentenceRepository stores the ordered evidence sentences of a report.
type SentenceRepository interface {
	InsertSentences(ctx context.Context, reportID uuid.UUID, documentID *uuid.UUID, orderedTexts []string) ([]*ent.Sentence, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Sentence, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]*ent.Sentence, error)
	SetDisposition(ctx context.Context, sentenceID uuid.UUID, disposition *constants.Disposition) error
}

type sentenceRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewSentenceRepository(entc *ent.Client, logger *slog.Logger) SentenceRepository {
	return &sentenceRepo{ent: entc, logger: logger}
}

// InsertSentences stores texts in their original order, spacing the order
// keys by the stride so later manual reordering does not renumber rows.
func (r *sentenceRepo) InsertSentences(ctx context.Context, reportID uuid.UUID, documentID *uuid.UUID, orderedTexts []string) ([]*ent.Sentence, error) {
	bulk := make([]*ent.SentenceCreate, 0, len(orderedTexts))
	for i, text := range orderedTexts {
		create := r.ent.Sentence.Create().
			SetReportID(reportID).
			SetText(text).
			SetOrder(i * constants.SentenceOrderStride)
		if documentID != nil {
			create = create.SetDocumentID(*documentID)
		}
		bulk = append(bulk, create)
	}
	rows, err := r.ent.Sentence.CreateBulk(bulk...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert sentences", "report_id", reportID, "count", len(orderedTexts), "error", err)
		return nil, err
	}
	r.logger.Info("sentences inserted", "report_id", reportID, "count", len(rows))
	return rows, nil
}

func (r *sentenceRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Sentence, error) {
	row, err := r.ent.Sentence.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("SENTENCE_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return row, err
}

// ListByReport returns sentences ordered for display: lower order first,
// primary key as the stable tie-break.
func (r *sentenceRepo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]*ent.Sentence, error) {
	return r.ent.Sentence.Query().
		Where(entsentence.ReportID(reportID)).
		Order(ent.Asc(entsentence.FieldOrder), ent.Asc(entsentence.FieldID)).
		All(ctx)
}

// SetDisposition records a reviewer verdict. A nil disposition returns
// the sentence to pending.
func (r *sentenceRepo) SetDisposition(ctx context.Context, sentenceID uuid.UUID, disposition *constants.Disposition) error {
	update := r.ent.Sentence.UpdateOneID(sentenceID)
	if disposition == nil {
		update = update.ClearDisposition()
	} else {
		update = update.SetDisposition(string(*disposition))
	}
	_, err := update.Save(ctx)
	if ent.IsNotFound(err) {
		return common.NewAppError("SENTENCE_NOT_FOUND", sentenceID.String(), common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to set disposition", "sentence_id", sentenceID, "error", err)
		return err
	}
	r.logger.Info("disposition set", "sentence_id", sentenceID, "disposition", disposition)
	return nil
}
