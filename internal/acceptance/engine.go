// Package acceptance computes, per taxonomy entry, how much of its
// sentence evidence has been accepted by reviewers, and selects which
// mappings cross the configured bar to be trusted as training data.
package acceptance

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	entattack "github.com/joseph-ayodele/threat-mapper/gen/ent/attackobject"
	entmapping "github.com/joseph-ayodele/threat-mapper/gen/ent/mapping"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
)

// ObjectCounts annotates a taxonomy entry with its evidence tallies.
// Accepted + Pending + rejected-but-present == Total, where each distinct
// subject-to-entry association is counted once.
type ObjectCounts struct {
	Object   *ent.AttackObject
	Accepted int
	Pending  int
	Total    int
}

// Engine is the acceptance aggregation engine. The threshold source is
// injected at construction and read at call time, never cached.
type Engine struct {
	ent       *ent.Client
	mappings  repository.MappingRepository
	threshold common.ThresholdSource
	logger    *slog.Logger
}

func NewEngine(entc *ent.Client, mappings repository.MappingRepository, threshold common.ThresholdSource, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{ent: entc, mappings: mappings, threshold: threshold, logger: logger}
}

// GetSentenceCounts returns the entries of a kind whose accepted-sentence
// count is at least threshold, annotated with accepted/pending/total,
// ordered by accepted descending with attack_id as the tie-break. Pure
// read; the tallies come from one query so they cannot race against
// concurrent disposition writes.
func (e *Engine) GetSentenceCounts(ctx context.Context, kind constants.ObjectKind, threshold int) ([]ObjectCounts, error) {
	if threshold < 0 {
		return nil, common.NewAppError("INVALID_THRESHOLD", "threshold must be non-negative", common.ErrInvalidInput)
	}
	rows, err := e.loadKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	return qualify(tallySentences(rows), threshold), nil
}

// GetReportCounts is the report-granularity parallel of
// GetSentenceCounts. A report's contribution to an entry is derived from
// the dispositions of its sentences mapped to that same entry: accepted
// when at least one is accepted, rejected when all reviewed ones are
// rejected, pending otherwise.
func (e *Engine) GetReportCounts(ctx context.Context, kind constants.ObjectKind, threshold int) ([]ObjectCounts, error) {
	if threshold < 0 {
		return nil, common.NewAppError("INVALID_THRESHOLD", "threshold must be non-negative", common.ErrInvalidInput)
	}
	rows, err := e.loadKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	return qualify(tallyReports(rows), threshold), nil
}

// GetAcceptedMappings reads the live acceptance threshold, computes the
// qualifying entry set at the requested granularity, and returns every
// mapping of that granularity targeting a qualifying entry, including
// still-pending ones. Qualification is a property of the entry, not of
// each row. A threshold that cannot be read aborts the call.
func (e *Engine) GetAcceptedMappings(ctx context.Context, kind constants.ObjectKind, granularity repository.Granularity) ([]*ent.Mapping, error) {
	threshold, err := e.threshold.AcceptThreshold(ctx)
	if err != nil {
		e.logger.Error("acceptance threshold unavailable", "error", err)
		return nil, err
	}

	var counts []ObjectCounts
	switch granularity {
	case repository.ReportLevel:
		counts, err = e.GetReportCounts(ctx, kind, threshold)
	default:
		counts, err = e.GetSentenceCounts(ctx, kind, threshold)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(counts))
	for _, c := range counts {
		ids = append(ids, c.Object.ID)
	}
	mappings, err := e.mappings.ListByAttackObjects(ctx, ids, granularity)
	if err != nil {
		return nil, err
	}
	e.logger.Info("accepted mappings computed",
		"kind", kind, "threshold", threshold,
		"qualifying_objects", len(ids), "mappings", len(mappings))
	return mappings, nil
}

// loadKind fetches every mapping (both granularities) targeting an entry
// of the kind, with its sentence and target loaded, in a single query.
// Both tallies fold over the same snapshot.
func (e *Engine) loadKind(ctx context.Context, kind constants.ObjectKind) ([]*ent.Mapping, error) {
	rows, err := e.ent.Mapping.Query().
		Where(
			entmapping.AttackObjectIDNotNil(),
			entmapping.HasAttackObjectWith(entattack.Kind(string(kind))),
		).
		WithAttackObject().
		WithSentence().
		All(ctx)
	if err != nil {
		e.logger.Error("failed to load mappings for counting", "kind", kind, "error", err)
		return nil, err
	}
	for _, m := range rows {
		if m.Edges.AttackObject == nil || (m.SentenceID != nil && m.Edges.Sentence == nil) {
			e.logger.Error("mapping orphaned by cascade", "mapping_id", m.ID)
			return nil, common.NewAppError("ORPHANED_MAPPING", m.ID.String(), common.ErrStorageInconsistent)
		}
	}
	return rows, nil
}

// tallySentences counts each distinct sentence-to-entry association once,
// bucketed by the sentence's disposition.
func tallySentences(rows []*ent.Mapping) map[uuid.UUID]*ObjectCounts {
	counts := make(map[uuid.UUID]*ObjectCounts)
	seen := make(map[uuid.UUID]map[uuid.UUID]struct{})

	for _, m := range rows {
		if m.SentenceID == nil {
			continue // report-level row
		}
		sentence := m.Edges.Sentence
		target := m.Edges.AttackObject
		c := ensure(counts, seen, target)
		if _, dup := seen[target.ID][sentence.ID]; dup {
			continue
		}
		seen[target.ID][sentence.ID] = struct{}{}

		c.Total++
		switch disp(sentence) {
		case string(constants.DispositionAccept):
			c.Accepted++
		case "":
			c.Pending++
		}
	}
	return counts
}

// tallyReports counts each distinct report-to-entry association once.
// The derived disposition uses the report's sentence evidence for the
// same entry, folded from the same mapping snapshot.
func tallyReports(rows []*ent.Mapping) map[uuid.UUID]*ObjectCounts {
	type verdict struct{ accepted, pending, reviewed bool }
	// (entry, report) -> sentence evidence summary
	evidence := make(map[uuid.UUID]map[uuid.UUID]*verdict)
	for _, m := range rows {
		if m.SentenceID == nil {
			continue
		}
		sentence := m.Edges.Sentence
		target := m.Edges.AttackObject
		if evidence[target.ID] == nil {
			evidence[target.ID] = make(map[uuid.UUID]*verdict)
		}
		v := evidence[target.ID][m.ReportID]
		if v == nil {
			v = &verdict{}
			evidence[target.ID][m.ReportID] = v
		}
		switch disp(sentence) {
		case string(constants.DispositionAccept):
			v.accepted = true
			v.reviewed = true
		case string(constants.DispositionReject):
			v.reviewed = true
		default:
			v.pending = true
		}
	}

	counts := make(map[uuid.UUID]*ObjectCounts)
	seen := make(map[uuid.UUID]map[uuid.UUID]struct{})
	for _, m := range rows {
		if m.SentenceID != nil {
			continue // sentence-level row
		}
		target := m.Edges.AttackObject
		c := ensure(counts, seen, target)
		if _, dup := seen[target.ID][m.ReportID]; dup {
			continue
		}
		seen[target.ID][m.ReportID] = struct{}{}

		c.Total++
		v := evidence[target.ID][m.ReportID]
		switch {
		case v != nil && v.accepted:
			c.Accepted++
		case v == nil || v.pending || !v.reviewed:
			c.Pending++
		}
	}
	return counts
}

func ensure(counts map[uuid.UUID]*ObjectCounts, seen map[uuid.UUID]map[uuid.UUID]struct{}, target *ent.AttackObject) *ObjectCounts {
	c, ok := counts[target.ID]
	if !ok {
		c = &ObjectCounts{Object: target}
		counts[target.ID] = c
		seen[target.ID] = make(map[uuid.UUID]struct{})
	}
	return c
}

func disp(s *ent.Sentence) string {
	if s.Disposition == nil {
		return ""
	}
	return *s.Disposition
}

// qualify filters entries below the threshold and applies the output
// order: accepted descending, attack_id ascending on ties.
func qualify(counts map[uuid.UUID]*ObjectCounts, threshold int) []ObjectCounts {
	out := make([]ObjectCounts, 0, len(counts))
	for _, c := range counts {
		if c.Accepted >= threshold {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Accepted != out[j].Accepted {
			return out[i].Accepted > out[j].Accepted
		}
		return out[i].Object.AttackID < out[j].Object.AttackID
	})
	return out
}
