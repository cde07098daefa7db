package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/threat-mapper/internal/attackdata"
	repo "github.com/joseph-ayodele/threat-mapper/internal/repository"
)

var attackdataCmd = &cobra.Command{
	Use:   "attackdata",
	Short: "Manage the ATT&CK taxonomy tables",
}

var attackdataLoadCmd = &cobra.Command{
	Use:   "load [bundle.json]",
	Short: "Load a STIX bundle of techniques and groups",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttackdataLoad,
}

func init() {
	attackdataCmd.AddCommand(attackdataLoadCmd)
}

func runAttackdataLoad(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	ctx := cmd.Context()

	entc, cleanup, err := openDB(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	loader := attackdata.NewLoader(repo.NewAttackObjectRepository(entc, logger), logger)
	created, err := loader.LoadFile(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("imported %d taxonomy entries\n", created)
	return nil
}
