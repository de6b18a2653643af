package cmd

import (
	"fmt"

	"github.com/huangsam/logbook/core"
	"github.com/huangsam/logbook/internal/contract"
	"github.com/spf13/cobra"
)

// buildingsCmd lists the buildings found in an export.
var buildingsCmd = &cobra.Command{
	Use:   "buildings <input-file>",
	Short: "List the buildings in a discipline log export.",
	Long: `List every building found in a discipline log export with its record
count, in the order buildings first appear in the file. Records without a
school are grouped under "Unknown Building".`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeBuildings(); err != nil {
			contract.LogFatal("Cannot list buildings", err)
		}
	},
}

func executeBuildings() error {
	loader := contract.NewCSVLoader(cfg.InputFile)
	records, err := loader.Load(rootCtx)
	if err != nil {
		return err
	}

	order, partitions := core.GroupByBuilding(records)
	fmt.Printf("Buildings: %d (%d records)\n", len(order), len(records))
	for _, building := range order {
		fmt.Printf("  %s: %d\n", building, len(partitions[building]))
	}
	return nil
}
