package server

import (
	"context"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	v1 "github.com/joseph-ayodele/threat-mapper/gen/proto/threatmapper/v1"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
)

type TaxonomyService struct {
	v1.UnimplementedTaxonomyServiceServer
	repo   repository.AttackObjectRepository
	logger *slog.Logger
}

func NewTaxonomyService(repo repository.AttackObjectRepository, logger *slog.Logger) *TaxonomyService {
	return &TaxonomyService{repo: repo, logger: logger}
}

// ListAttackObjects implements v1.TaxonomyServiceServer
func (s *TaxonomyService) ListAttackObjects(ctx context.Context, req *v1.ListAttackObjectsRequest) (*v1.ListAttackObjectsResponse, error) {
	kind, err := parseKind(req.GetKind())
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.List(ctx, kind, strings.TrimSpace(req.GetMatrix()))
	if err != nil {
		s.logger.Error("list attack objects failed", "kind", kind, "error", err)
		return nil, toStatus(err)
	}

	out := make([]*v1.AttackObject, 0, len(rows))
	for _, row := range rows {
		out = append(out, attackObjectToProto(row))
	}
	return &v1.ListAttackObjectsResponse{Objects: out}, nil
}

// GetAttackObject implements v1.TaxonomyServiceServer
func (s *TaxonomyService) GetAttackObject(ctx context.Context, req *v1.GetAttackObjectRequest) (*v1.GetAttackObjectResponse, error) {
	attackID := strings.TrimSpace(req.GetAttackId())
	if attackID == "" {
		return nil, status.Error(codes.InvalidArgument, "attack_id is required")
	}

	row, err := s.repo.GetByAttackID(ctx, attackID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &v1.GetAttackObjectResponse{Object: attackObjectToProto(row)}, nil
}

func parseKind(raw string) (constants.ObjectKind, error) {
	kind := constants.ObjectKind(strings.TrimSpace(raw))
	switch kind {
	case constants.KindTechnique, constants.KindGroup:
		return kind, nil
	default:
		return "", status.Errorf(codes.InvalidArgument, "kind must be one of %v", constants.ObjectKinds)
	}
}

func attackObjectToProto(row *ent.AttackObject) *v1.AttackObject {
	return &v1.AttackObject{
		Id:        row.ID.String(),
		Kind:      row.Kind,
		Name:      row.Name,
		StixId:    row.StixID,
		AttackId:  row.AttackID,
		AttackUrl: row.AttackURL,
		Matrix:    row.Matrix,
	}
}
