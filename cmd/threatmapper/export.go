package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/threat-mapper/internal/export"
	repo "github.com/joseph-ayodele/threat-mapper/internal/repository"
)

var (
	flagExportOut      string
	flagExportAccepted bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write acceptance tallies or accepted mappings to an XLSX workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagKind, "kind", "technique", "taxonomy kind (technique | group)")
	exportCmd.Flags().IntVar(&flagThreshold, "threshold", 1, "minimum accepted count for an entry to qualify")
	exportCmd.Flags().StringVar(&flagGranularity, "granularity", "sentence", "mapping granularity (sentence | report)")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "threatmapper.xlsx", "output XLSX file path")
	exportCmd.Flags().BoolVar(&flagExportAccepted, "accepted", false, "export accepted mappings instead of tallies")
}

func runExport(cmd *cobra.Command, _ []string) error {
	kind, err := parseKindFlag()
	if err != nil {
		return err
	}

	engine, cleanup, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	svc := export.NewService(engine, nil)

	var xlsx []byte
	if flagExportAccepted {
		var granularity repo.Granularity
		switch flagGranularity {
		case "sentence":
			granularity = repo.SentenceLevel
		case "report":
			granularity = repo.ReportLevel
		default:
			return fmt.Errorf("granularity must be sentence or report")
		}
		xlsx, err = svc.ExportAcceptedXLSX(cmd.Context(), kind, granularity)
	} else {
		xlsx, err = svc.ExportCountsXLSX(cmd.Context(), kind, flagThreshold)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(flagExportOut, xlsx, 0o644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", flagExportOut, len(xlsx))
	return nil
}
