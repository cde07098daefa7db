package server

import (
	"context"

	"log/slog"

	v1 "github.com/joseph-ayodele/threat-mapper/gen/proto/threatmapper/v1"
	"github.com/joseph-ayodele/threat-mapper/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportCounts(ctx context.Context, req *v1.ExportCountsRequest) (*v1.ExportCountsResponse, error) {
	kind, err := parseKind(req.GetKind())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportCountsXLSX(ctx, kind, int(req.GetThreshold()))
	if err != nil {
		s.logger.Error("export.counts.failed", "kind", kind, "err", err)
		return nil, toStatus(err)
	}
	return &v1.ExportCountsResponse{Xlsx: xlsx}, nil
}

func (s *ExportServer) ExportAccepted(ctx context.Context, req *v1.ExportAcceptedRequest) (*v1.ExportAcceptedResponse, error) {
	kind, err := parseKind(req.GetKind())
	if err != nil {
		return nil, err
	}
	granularity, err := parseGranularity(req.GetGranularity())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportAcceptedXLSX(ctx, kind, granularity)
	if err != nil {
		s.logger.Error("export.accepted.failed", "kind", kind, "err", err)
		return nil, toStatus(err)
	}
	return &v1.ExportAcceptedResponse{Xlsx: xlsx}, nil
}
