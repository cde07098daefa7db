package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/internal/entity"
	repo "github.com/joseph-ayodele/threat-mapper/internal/repository"
)

var flagJobStatus string

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List extraction jobs",
	RunE:  runJobs,
}

func init() {
	jobsCmd.Flags().StringVar(&flagJobStatus, "status", "queued", "filter by status (queued | done | error)")
}

func runJobs(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	ctx := cmd.Context()

	status := constants.JobStatus(flagJobStatus)
	switch status {
	case constants.JobStatusQueued, constants.JobStatusDone, constants.JobStatusError:
	default:
		return fmt.Errorf("status must be one of %v", constants.JobStatuses)
	}

	entc, cleanup, err := openDB(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	rows, err := repo.NewIngestJobRepository(entc, logger).ListByStatus(ctx, status)
	if err != nil {
		return err
	}

	if flagJSON {
		out := make([]entity.IngestJob, 0, len(rows))
		for _, row := range rows {
			out = append(out, entity.IngestJobFromEnt(row))
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	for _, row := range rows {
		line := fmt.Sprintf("%s  %s  document=%s", row.ID, row.Status, row.DocumentID)
		if row.Message != "" {
			line += "  " + row.Message
		}
		fmt.Println(line)
	}
	fmt.Printf("%d job(s)\n", len(rows))
	return nil
}
