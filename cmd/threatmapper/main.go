package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
	repo "github.com/joseph-ayodele/threat-mapper/internal/repository"
)

var (
	flagInmem bool
	flagJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "threatmapper",
	Short: "Map threat report sentences onto attack techniques and groups",
	Long: `threatmapper ingests threat reports, proposes technique and group
mappings for each sentence, and aggregates reviewer verdicts into
per-entry acceptance tallies.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&flagInmem, "inmem", false, "use an in-memory SQLite database")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit machine-readable JSON output")

	rootCmd.AddCommand(attackdataCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(countsCmd)
	rootCmd.AddCommand(acceptedCmd)
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// openDB opens either the configured Postgres database or, with --inmem,
// a throwaway SQLite database. The returned func closes everything.
func openDB(ctx context.Context, logger *slog.Logger) (*ent.Client, func(), error) {
	if flagInmem {
		entc, err := repo.OpenSQLite(ctx, "file:threatmapper?mode=memory&cache=shared&_pragma=foreign_keys(1)", logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open in-memory database: %w", err)
		}
		return entc, func() { repo.Close(entc, nil, logger) }, nil
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		return nil, nil, fmt.Errorf("DB_URL is required (or pass --inmem)")
	}
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return entc, func() { repo.Close(entc, pool, logger) }, nil
}
