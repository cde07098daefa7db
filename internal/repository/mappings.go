package repository

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	entattack "github.com/joseph-ayodele/threat-mapper/gen/ent/attackobject"
	entmapping "github.com/joseph-ayodele/threat-mapper/gen/ent/mapping"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
)

// Granularity selects between sentence-level and report-level mappings.
type Granularity int

const (
	SentenceLevel Granularity = iota
	ReportLevel
)

// ProposeInput is one scored association to store. A nil SentenceID makes
// the mapping report-level. A nil AttackObjectID records an explicitly
// negative example and is valid only for sentence-level mappings.
type ProposeInput struct {
	ReportID       uuid.UUID
	SentenceID     *uuid.UUID
	AttackObjectID *uuid.UUID
	Confidence     float64
	ModelName      string
}

// MappingRepository is the ledger of candidate and reviewed associations.
type MappingRepository interface {
	Propose(ctx context.Context, in ProposeInput) (*ent.Mapping, error)
	PromoteFromReview(ctx context.Context, sentenceID uuid.UUID, attackID string, confidence float64) (*ent.Mapping, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]*ent.Mapping, error)
	ListByAttackObjects(ctx context.Context, attackObjectIDs []uuid.UUID, granularity Granularity) ([]*ent.Mapping, error)
}

type mappingRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewMappingRepository(entc *ent.Client, logger *slog.Logger) MappingRepository {
	return &mappingRepo{ent: entc, logger: logger}
}

// Propose inserts a new mapping. Re-proposals for the same pair are
// allowed; they are re-scoring history.
func (r *mappingRepo) Propose(ctx context.Context, in ProposeInput) (*ent.Mapping, error) {
	if math.IsNaN(in.Confidence) || math.IsInf(in.Confidence, 0) {
		return nil, common.NewAppError("INVALID_CONFIDENCE", "confidence must be finite", common.ErrInvalidInput)
	}
	if in.SentenceID == nil && in.AttackObjectID == nil {
		return nil, common.NewAppError("INVALID_MAPPING", "report-level mappings require a target", common.ErrInvalidInput)
	}

	create := r.ent.Mapping.Create().
		SetReportID(in.ReportID).
		SetConfidence(in.Confidence)
	if in.SentenceID != nil {
		create = create.SetSentenceID(*in.SentenceID)
	}
	if in.AttackObjectID != nil {
		create = create.SetAttackObjectID(*in.AttackObjectID)
	}
	if in.ModelName != "" {
		create = create.SetModelName(in.ModelName)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to propose mapping", "report_id", in.ReportID, "error", err)
		return nil, err
	}
	return row, nil
}

// PromoteFromReview turns a manually reviewed suggestion into a ledger
// entry: the attack ID is resolved against the registry (NotFound aborts,
// nothing is written) and the new mapping is linked to the sentence's
// report.
func (r *mappingRepo) PromoteFromReview(ctx context.Context, sentenceID uuid.UUID, attackID string, confidence float64) (*ent.Mapping, error) {
	if math.IsNaN(confidence) || math.IsInf(confidence, 0) {
		return nil, common.NewAppError("INVALID_CONFIDENCE", "confidence must be finite", common.ErrInvalidInput)
	}

	sentence, err := r.ent.Sentence.Get(ctx, sentenceID)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("SENTENCE_NOT_FOUND", sentenceID.String(), common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	target, err := r.ent.AttackObject.Query().
		Where(entattack.AttackID(attackID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		r.logger.Warn("promote failed: unknown attack id", "sentence_id", sentenceID, "attack_id", attackID)
		return nil, common.NewAppError("ATTACK_OBJECT_NOT_FOUND", attackID, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	row, err := r.ent.Mapping.Create().
		SetReportID(sentence.ReportID).
		SetSentenceID(sentence.ID).
		SetAttackObjectID(target.ID).
		SetConfidence(confidence).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to promote mapping", "sentence_id", sentenceID, "attack_id", attackID, "error", err)
		return nil, err
	}
	r.logger.Info("mapping promoted from review", "mapping_id", row.ID, "sentence_id", sentenceID, "attack_id", attackID)
	return row, nil
}

func (r *mappingRepo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]*ent.Mapping, error) {
	return r.ent.Mapping.Query().
		Where(entmapping.ReportID(reportID)).
		Order(ent.Asc(entmapping.FieldCreatedAt)).
		All(ctx)
}

// ListByAttackObjects returns every mapping of the given granularity whose
// target is in the set, regardless of the subject's disposition.
func (r *mappingRepo) ListByAttackObjects(ctx context.Context, attackObjectIDs []uuid.UUID, granularity Granularity) ([]*ent.Mapping, error) {
	if len(attackObjectIDs) == 0 {
		return nil, nil
	}
	q := r.ent.Mapping.Query().
		Where(entmapping.AttackObjectIDIn(attackObjectIDs...)).
		WithAttackObject().
		WithSentence()
	switch granularity {
	case SentenceLevel:
		q = q.Where(entmapping.SentenceIDNotNil())
	case ReportLevel:
		q = q.Where(entmapping.SentenceIDIsNil())
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list mappings by attack objects", "targets", len(attackObjectIDs), "error", err)
		return nil, err
	}
	return rows, nil
}
