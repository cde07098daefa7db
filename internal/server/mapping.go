package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	v1 "github.com/joseph-ayodele/threat-mapper/gen/proto/threatmapper/v1"
	"github.com/joseph-ayodele/threat-mapper/internal/acceptance"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
)

type MappingService struct {
	v1.UnimplementedMappingServiceServer
	engine    *acceptance.Engine
	sentences repository.SentenceRepository
	mappings  repository.MappingRepository
	logger    *slog.Logger
}

func NewMappingService(engine *acceptance.Engine, sentences repository.SentenceRepository, mappings repository.MappingRepository, logger *slog.Logger) *MappingService {
	return &MappingService{
		engine:    engine,
		sentences: sentences,
		mappings:  mappings,
		logger:    logger,
	}
}

// GetSentenceCounts implements v1.MappingServiceServer
func (s *MappingService) GetSentenceCounts(ctx context.Context, req *v1.GetSentenceCountsRequest) (*v1.GetCountsResponse, error) {
	kind, err := parseKind(req.GetKind())
	if err != nil {
		return nil, err
	}

	counts, err := s.engine.GetSentenceCounts(ctx, kind, int(req.GetThreshold()))
	if err != nil {
		s.logger.Error("sentence counts failed", "kind", kind, "error", err)
		return nil, toStatus(err)
	}
	return &v1.GetCountsResponse{Counts: countsToProto(counts)}, nil
}

// GetReportCounts implements v1.MappingServiceServer
func (s *MappingService) GetReportCounts(ctx context.Context, req *v1.GetReportCountsRequest) (*v1.GetCountsResponse, error) {
	kind, err := parseKind(req.GetKind())
	if err != nil {
		return nil, err
	}

	counts, err := s.engine.GetReportCounts(ctx, kind, int(req.GetThreshold()))
	if err != nil {
		s.logger.Error("report counts failed", "kind", kind, "error", err)
		return nil, toStatus(err)
	}
	return &v1.GetCountsResponse{Counts: countsToProto(counts)}, nil
}

// GetAcceptedMappings implements v1.MappingServiceServer
func (s *MappingService) GetAcceptedMappings(ctx context.Context, req *v1.GetAcceptedMappingsRequest) (*v1.GetAcceptedMappingsResponse, error) {
	kind, err := parseKind(req.GetKind())
	if err != nil {
		return nil, err
	}
	granularity, err := parseGranularity(req.GetGranularity())
	if err != nil {
		return nil, err
	}

	rows, err := s.engine.GetAcceptedMappings(ctx, kind, granularity)
	if err != nil {
		s.logger.Error("accepted mappings failed", "kind", kind, "error", err)
		return nil, toStatus(err)
	}

	out := make([]*v1.Mapping, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappingToProto(m))
	}
	return &v1.GetAcceptedMappingsResponse{Mappings: out}, nil
}

// ListSentences implements v1.MappingServiceServer
func (s *MappingService) ListSentences(ctx context.Context, req *v1.ListSentencesRequest) (*v1.ListSentencesResponse, error) {
	reportID, err := parseUUID(req.GetReportId(), "report_id")
	if err != nil {
		return nil, err
	}

	rows, err := s.sentences.ListByReport(ctx, reportID)
	if err != nil {
		s.logger.Error("list sentences failed", "report_id", reportID, "error", err)
		return nil, toStatus(err)
	}

	out := make([]*v1.Sentence, 0, len(rows))
	for _, row := range rows {
		disposition := ""
		if row.Disposition != nil {
			disposition = *row.Disposition
		}
		out = append(out, &v1.Sentence{
			Id:          row.ID.String(),
			ReportId:    row.ReportID.String(),
			Text:        row.Text,
			Order:       int32(row.Order),
			Disposition: disposition,
		})
	}
	return &v1.ListSentencesResponse{Sentences: out}, nil
}

// SetDisposition implements v1.MappingServiceServer
func (s *MappingService) SetDisposition(ctx context.Context, req *v1.SetDispositionRequest) (*v1.SetDispositionResponse, error) {
	sentenceID, err := parseUUID(req.GetSentenceId(), "sentence_id")
	if err != nil {
		return nil, err
	}

	var disposition *constants.Disposition
	switch raw := strings.TrimSpace(req.GetDisposition()); raw {
	case "":
		// clears the verdict back to pending
	case string(constants.DispositionAccept), string(constants.DispositionReject):
		d := constants.Disposition(raw)
		disposition = &d
	default:
		return nil, status.Errorf(codes.InvalidArgument, "disposition must be one of %v or empty", constants.Dispositions)
	}

	if err := s.sentences.SetDisposition(ctx, sentenceID, disposition); err != nil {
		s.logger.Error("set disposition failed", "sentence_id", sentenceID, "error", err)
		return nil, toStatus(err)
	}
	return &v1.SetDispositionResponse{}, nil
}

// PromoteMapping implements v1.MappingServiceServer
func (s *MappingService) PromoteMapping(ctx context.Context, req *v1.PromoteMappingRequest) (*v1.PromoteMappingResponse, error) {
	attackID := strings.TrimSpace(req.GetAttackId())
	validator := common.NewValidator().
		Field("sentence_id", req.GetSentenceId(), common.Required, common.UUID).
		Field("attack_id", attackID, common.Required, common.AttackID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, toStatus(err)
	}
	sentenceID := uuid.MustParse(strings.TrimSpace(req.GetSentenceId()))

	m, err := s.mappings.PromoteFromReview(ctx, sentenceID, attackID, req.GetConfidence())
	if err != nil {
		s.logger.Error("promote mapping failed", "sentence_id", sentenceID, "attack_id", attackID, "error", err)
		return nil, toStatus(err)
	}

	s.logger.Info("mapping promoted", "sentence_id", sentenceID, "attack_id", attackID, "mapping_id", m.ID)
	out := mappingToProto(m)
	out.AttackId = attackID
	return &v1.PromoteMappingResponse{Mapping: out}, nil
}

func parseGranularity(raw string) (repository.Granularity, error) {
	switch strings.TrimSpace(raw) {
	case "sentence", "":
		return repository.SentenceLevel, nil
	case "report":
		return repository.ReportLevel, nil
	default:
		return 0, status.Error(codes.InvalidArgument, "granularity must be sentence or report")
	}
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func countsToProto(counts []acceptance.ObjectCounts) []*v1.ObjectCounts {
	out := make([]*v1.ObjectCounts, 0, len(counts))
	for _, c := range counts {
		out = append(out, &v1.ObjectCounts{
			Object:   attackObjectToProto(c.Object),
			Accepted: int32(c.Accepted),
			Pending:  int32(c.Pending),
			Total:    int32(c.Total),
		})
	}
	return out
}

func mappingToProto(m *ent.Mapping) *v1.Mapping {
	out := &v1.Mapping{
		Id:         m.ID.String(),
		ReportId:   m.ReportID.String(),
		Confidence: m.Confidence,
	}
	if m.SentenceID != nil {
		out.SentenceId = m.SentenceID.String()
	}
	if m.AttackObjectID != nil {
		out.AttackObjectId = m.AttackObjectID.String()
	}
	if m.ModelName != nil {
		out.ModelName = *m.ModelName
	}
	if obj := m.Edges.AttackObject; obj != nil {
		out.AttackId = obj.AttackID
	}
	return out
}
