package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/joseph-ayodele/threat-mapper/gen/proto/threatmapper/v1"
	"github.com/joseph-ayodele/threat-mapper/internal/acceptance"
	"github.com/joseph-ayodele/threat-mapper/internal/async"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
	"github.com/joseph-ayodele/threat-mapper/internal/export"
	"github.com/joseph-ayodele/threat-mapper/internal/ingest"
	"github.com/joseph-ayodele/threat-mapper/internal/lifecycle"
	"github.com/joseph-ayodele/threat-mapper/internal/pipeline"
	repo "github.com/joseph-ayodele/threat-mapper/internal/repository"
	"github.com/joseph-ayodele/threat-mapper/internal/scorer"
	svc "github.com/joseph-ayodele/threat-mapper/internal/server"
	"github.com/joseph-ayodele/threat-mapper/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database.DSN, logger)
	if err != nil {
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		os.Exit(1)
	}

	store, err := storage.NewFSStore(cfg.Storage.RootDir, logger)
	if err != nil {
		logger.Error("failed to open document store", "dir", cfg.Storage.RootDir, "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	attackRepo := repo.NewAttackObjectRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewIngestJobRepository(entc, logger)
	sentencesRepo := repo.NewSentenceRepository(entc, logger)
	mappingsRepo := repo.NewMappingRepository(entc, logger)

	var sc scorer.Scorer
	if cfg.ML.ScorerURL != "" {
		sc = scorer.NewRESTScorer(scorer.RESTConfig{
			URL:                 cfg.ML.ScorerURL,
			Model:               cfg.ML.ModelName,
			ConfidenceThreshold: cfg.ML.ConfidenceThreshold,
			Timeout:             cfg.ML.Timeout,
		}, logger)
	} else {
		logger.Warn("ML_SCORER_URL unset, falling back to keyword scorer")
		sc = scorer.NewKeywordScorer()
	}

	processor := pipeline.NewProcessor(logger, entc, store, sc, jobsRepo, docsRepo)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	submitter := ingest.NewService(store, docsRepo, jobsRepo, queue, logger)
	supervisor := lifecycle.NewSupervisor(docsRepo, store, logger)

	threshold := common.EnvThresholdSource{}
	engine := acceptance.NewEngine(entc, mappingsRepo, threshold, logger)
	exporter := export.NewService(engine, logger)

	v1.RegisterTaxonomyServiceServer(grpcServer, svc.NewTaxonomyService(attackRepo, logger))
	v1.RegisterMappingServiceServer(grpcServer, svc.NewMappingService(engine, sentencesRepo, mappingsRepo, logger))
	v1.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(submitter, jobsRepo, supervisor, logger))
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("threatmapperd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
