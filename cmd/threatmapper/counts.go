package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/internal/acceptance"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
	"github.com/joseph-ayodele/threat-mapper/internal/entity"
	repo "github.com/joseph-ayodele/threat-mapper/internal/repository"
)

var (
	flagKind        string
	flagThreshold   int
	flagByReport    bool
	flagGranularity string
)

var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Show per-entry acceptance tallies",
	RunE:  runCounts,
}

var acceptedCmd = &cobra.Command{
	Use:   "accepted",
	Short: "List mappings onto entries meeting the acceptance threshold",
	RunE:  runAccepted,
}

func init() {
	countsCmd.Flags().StringVar(&flagKind, "kind", "technique", "taxonomy kind (technique | group)")
	countsCmd.Flags().IntVar(&flagThreshold, "threshold", 1, "minimum accepted count for an entry to qualify")
	countsCmd.Flags().BoolVar(&flagByReport, "by-report", false, "tally at report granularity")
	acceptedCmd.Flags().StringVar(&flagKind, "kind", "technique", "taxonomy kind (technique | group)")
	acceptedCmd.Flags().IntVar(&flagThreshold, "threshold", 1, "minimum accepted count for an entry to qualify")
	acceptedCmd.Flags().StringVar(&flagGranularity, "granularity", "sentence", "mapping granularity (sentence | report)")
}

func parseKindFlag() (constants.ObjectKind, error) {
	kind := constants.ObjectKind(flagKind)
	switch kind {
	case constants.KindTechnique, constants.KindGroup:
		return kind, nil
	default:
		return "", fmt.Errorf("kind must be one of %v", constants.ObjectKinds)
	}
}

func buildEngine(cmd *cobra.Command) (*acceptance.Engine, func(), error) {
	logger := newLogger()

	entc, cleanup, err := openDB(cmd.Context(), logger)
	if err != nil {
		return nil, nil, err
	}

	mappingsRepo := repo.NewMappingRepository(entc, logger)
	engine := acceptance.NewEngine(entc, mappingsRepo, common.StaticThresholdSource(flagThreshold), logger)
	return engine, cleanup, nil
}

func runCounts(cmd *cobra.Command, _ []string) error {
	kind, err := parseKindFlag()
	if err != nil {
		return err
	}

	engine, cleanup, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var counts []acceptance.ObjectCounts
	if flagByReport {
		counts, err = engine.GetReportCounts(cmd.Context(), kind, flagThreshold)
	} else {
		counts, err = engine.GetSentenceCounts(cmd.Context(), kind, flagThreshold)
	}
	if err != nil {
		return err
	}

	if flagJSON {
		out := make([]entity.ObjectCounts, 0, len(counts))
		for _, c := range counts {
			out = append(out, entity.ObjectCounts{
				AttackID: c.Object.AttackID,
				Name:     c.Object.Name,
				Accepted: c.Accepted,
				Pending:  c.Pending,
				Total:    c.Total,
			})
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	for _, c := range counts {
		fmt.Printf("%-12s accepted=%-4d pending=%-4d total=%-4d %s\n",
			c.Object.AttackID, c.Accepted, c.Pending, c.Total, c.Object.Name)
	}
	fmt.Printf("%d entr(ies) at threshold %d\n", len(counts), flagThreshold)
	return nil
}

func runAccepted(cmd *cobra.Command, _ []string) error {
	kind, err := parseKindFlag()
	if err != nil {
		return err
	}
	var granularity repo.Granularity
	switch flagGranularity {
	case "sentence":
		granularity = repo.SentenceLevel
	case "report":
		granularity = repo.ReportLevel
	default:
		return fmt.Errorf("granularity must be sentence or report")
	}

	engine, cleanup, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	rows, err := engine.GetAcceptedMappings(cmd.Context(), kind, granularity)
	if err != nil {
		return err
	}

	if flagJSON {
		out := make([]entity.Mapping, 0, len(rows))
		for _, m := range rows {
			out = append(out, entity.MappingFromEnt(m))
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	for _, m := range rows {
		attackID := ""
		if obj := m.Edges.AttackObject; obj != nil {
			attackID = obj.AttackID
		}
		fmt.Printf("%-12s confidence=%-6.1f report=%s\n", attackID, m.Confidence, m.ReportID)
	}
	fmt.Printf("%d mapping(s)\n", len(rows))
	return nil
}
