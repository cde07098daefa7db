package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	"github.com/joseph-ayodele/threat-mapper/internal/async"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
	"github.com/joseph-ayodele/threat-mapper/internal/ingest"
	"github.com/joseph-ayodele/threat-mapper/internal/pipeline"
	repo "github.com/joseph-ayodele/threat-mapper/internal/repository"
	"github.com/joseph-ayodele/threat-mapper/internal/scorer"
	"github.com/joseph-ayodele/threat-mapper/internal/storage"
)

var (
	flagSubmitDir  bool
	flagCreatedBy  string
	flagSkipHidden bool
)

var submitCmd = &cobra.Command{
	Use:   "submit [path]",
	Short: "Submit a report file (or directory of files) for extraction",
	Long: `Stores the document, queues an extraction job, and processes it
inline. With --dir the path is walked and every matching file is submitted.`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a drop directory and submit new report files",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	submitCmd.Flags().BoolVar(&flagSubmitDir, "dir", false, "treat path as a directory and submit all matching files")
	submitCmd.Flags().StringVar(&flagCreatedBy, "created-by", "", "username recorded on the document")
	submitCmd.Flags().BoolVar(&flagSkipHidden, "skip-hidden", true, "skip hidden files and directories")
	watchCmd.Flags().StringVar(&flagCreatedBy, "created-by", "", "username recorded on the document")
}

// buildIngest wires the storage, repositories, scorer, worker queue, and
// submit service the CLI ingest commands share.
func buildIngest(entc *ent.Client, logger *slog.Logger) (*ingest.Service, *async.ProcessorQueue, error) {
	cfg := common.LoadConfig()

	store, err := storage.NewFSStore(cfg.Storage.RootDir, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open document store: %w", err)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewIngestJobRepository(entc, logger)

	var sc scorer.Scorer
	if cfg.ML.ScorerURL != "" {
		sc = scorer.NewRESTScorer(scorer.RESTConfig{
			URL:                 cfg.ML.ScorerURL,
			Model:               cfg.ML.ModelName,
			ConfidenceThreshold: cfg.ML.ConfidenceThreshold,
			Timeout:             cfg.ML.Timeout,
		}, logger)
	} else {
		sc = scorer.NewKeywordScorer()
	}

	processor := pipeline.NewProcessor(logger, entc, store, sc, jobsRepo, docsRepo)
	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(4),
		async.WithQueueSize(256),
	)

	return ingest.NewService(store, docsRepo, jobsRepo, queue, logger), queue, nil
}

func runSubmit(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	ctx := cmd.Context()

	entc, cleanup, err := openDB(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	svc, queue, err := buildIngest(entc, logger)
	if err != nil {
		return err
	}

	if flagSubmitDir {
		results, stats, err := svc.SubmitDirectory(ctx, args[0], flagCreatedBy, flagSkipHidden)
		queue.Shutdown(ctx)
		if err != nil {
			return err
		}
		if flagJSON {
			return json.NewEncoder(os.Stdout).Encode(results)
		}
		fmt.Printf("scanned=%d matched=%d succeeded=%d failed=%d\n",
			stats.Scanned, stats.Matched, stats.Succeeded, stats.Failed)
		return nil
	}

	r, err := svc.SubmitPath(ctx, args[0], flagCreatedBy)
	queue.Shutdown(ctx)
	if err != nil {
		return err
	}
	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(r)
	}
	fmt.Printf("document=%s job=%s\n", r.DocumentID, r.JobID)
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	ctx := cmd.Context()

	entc, cleanup, err := openDB(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	svc, queue, err := buildIngest(entc, logger)
	if err != nil {
		return err
	}
	defer queue.Shutdown(ctx)

	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    []string{args[0]},
		Debounce: 500 * time.Millisecond,
	})
	if err != nil {
		return err
	}

	fmt.Printf("watching %s\n", args[0])
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-events:
			if !ok {
				return nil
			}
			if r, err := svc.SubmitPath(ctx, path, flagCreatedBy); err != nil {
				logger.Error("submit failed", "path", path, "error", err)
			} else {
				fmt.Printf("submitted %s document=%s job=%s\n", path, r.DocumentID, r.JobID)
			}
		case err, ok := <-errs:
			if ok && err != nil {
				logger.Error("watcher error", "error", err)
			}
		}
	}
}
