package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	entattack "github.com/joseph-ayodele/threat-mapper/gen/ent/attackobject"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
	"github.com/joseph-ayodele/threat-mapper/internal/scorer"
	"github.com/joseph-ayodele/threat-mapper/internal/storage"
)

// Processor drives one ingest job from queued to a terminal state:
// extract text, tokenize sentences, score each sentence, and persist the
// report with its sentences, indicators and proposed mappings in one
// transaction. Failures are recorded on the job, not thrown past the
// worker.
type Processor struct {
	logger    *slog.Logger
	ent       *ent.Client
	store     storage.Store
	scorer    scorer.Scorer
	jobsRepo  repository.IngestJobRepository
	docsRepo  repository.DocumentRepository
	modelName string
}

func NewProcessor(
	logger *slog.Logger,
	entc *ent.Client,
	store storage.Store,
	sc scorer.Scorer,
	jobsRepo repository.IngestJobRepository,
	docsRepo repository.DocumentRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		ent:       entc,
		store:     store,
		scorer:    sc,
		jobsRepo:  jobsRepo,
		docsRepo:  docsRepo,
		modelName: sc.Name(),
	}
}

// ProcessJob runs one queued job to completion. The returned error is
// for worker logging only; the authoritative outcome lives on the job
// row (done, or error with a diagnostic message).
func (p *Processor) ProcessJob(ctx context.Context, jobID uuid.UUID) error {
	job, err := p.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.Status != string(constants.JobStatusQueued) {
		p.logger.Warn("skipping job not in queued state", "job_id", jobID, "status", job.Status)
		return nil
	}

	doc, err := p.docsRepo.GetByID(ctx, job.DocumentID)
	if err != nil {
		return p.fail(ctx, jobID, fmt.Errorf("load document: %w", err))
	}

	report, err := p.buildReport(ctx, doc)
	if err != nil {
		return p.fail(ctx, jobID, err)
	}

	if err := p.jobsRepo.MarkDone(ctx, jobID); err != nil {
		return err
	}
	p.logger.Info("ingest job processed", "job_id", jobID, "report_id", report.ID)
	return nil
}

// buildReport creates the report, its ordered sentences, indicators and
// scored mappings atomically. A document that yields zero sentences is a
// failure: an empty report is useless as evidence.
func (p *Processor) buildReport(ctx context.Context, doc *ent.Document) (*ent.Report, error) {
	rc, err := p.store.Open(ctx, doc.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open document bytes: %w", err)
	}
	text, err := ExtractText(rc, doc.Filename)
	closeErr := rc.Close()
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	if closeErr != nil {
		p.logger.Warn("close document bytes failed", "document_id", doc.ID, "error", closeErr)
	}

	sentences := TokenizeSentences(text)
	if len(sentences) == 0 {
		return nil, fmt.Errorf("could not extract any sentences from %s", doc.Filename)
	}

	tx, err := p.ent.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	report, err := p.buildReportTx(ctx, tx, doc, text, sentences)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			p.logger.Error("rollback failed", "document_id", doc.ID, "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return report, nil
}

func (p *Processor) buildReportTx(ctx context.Context, tx *ent.Tx, doc *ent.Document, text string, sentences []string) (*ent.Report, error) {
	reportCreate := tx.Report.Create().
		SetName(fmt.Sprintf("Report for %s", doc.Filename)).
		SetDocumentID(doc.ID).
		SetText(text)
	if doc.CreatedBy != nil {
		reportCreate = reportCreate.SetCreatedBy(*doc.CreatedBy)
	}
	report, err := reportCreate.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	bulk := make([]*ent.SentenceCreate, 0, len(sentences))
	for i, s := range sentences {
		bulk = append(bulk, tx.Sentence.Create().
			SetReportID(report.ID).
			SetDocumentID(doc.ID).
			SetText(s).
			SetOrder(i*constants.SentenceOrderStride))
	}
	rows, err := tx.Sentence.CreateBulk(bulk...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("insert sentences: %w", err)
	}

	for _, indicator := range ExtractIndicators(text) {
		_, err := tx.Indicator.Create().
			SetReportID(report.ID).
			SetIndicatorType(indicator.Type).
			SetValue(indicator.Value).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("insert indicator: %w", err)
		}
	}

	for _, row := range rows {
		proposals, err := p.scorer.Score(ctx, row.Text)
		if err != nil {
			return nil, fmt.Errorf("score sentence: %w", err)
		}
		for _, proposal := range proposals {
			create := tx.Mapping.Create().
				SetReportID(report.ID).
				SetSentenceID(row.ID).
				SetConfidence(proposal.Confidence).
				SetModelName(p.modelName)
			if proposal.AttackID != "" {
				target, err := tx.AttackObject.Query().
					Where(entattack.AttackID(proposal.AttackID)).
					Only(ctx)
				if err != nil {
					return nil, fmt.Errorf("resolve attack id %s: %w", proposal.AttackID, err)
				}
				create = create.SetAttackObjectID(target.ID)
			}
			if _, err := create.Save(ctx); err != nil {
				return nil, fmt.Errorf("propose mapping: %w", err)
			}
		}
	}
	return report, nil
}

// fail records the diagnostic on the job and hands the original error
// back for logging.
func (p *Processor) fail(ctx context.Context, jobID uuid.UUID, cause error) error {
	if err := p.jobsRepo.MarkError(ctx, jobID, cause.Error()); err != nil {
		p.logger.Error("recording job failure failed", "job_id", jobID, "error", err)
	}
	return cause
}
