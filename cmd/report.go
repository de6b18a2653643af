package cmd

import (
	"fmt"
	"time"

	"github.com/huangsam/logbook/core"
	"github.com/huangsam/logbook/internal/contract"
	"github.com/huangsam/logbook/internal/outwriter"
	"github.com/huangsam/logbook/internal/runstore"
	"github.com/huangsam/logbook/schema"
	"github.com/spf13/cobra"
)

// reportCmd generates the district-wide report plus one report per building.
var reportCmd = &cobra.Command{
	Use:   "report <input-file>",
	Short: "Generate the district-wide and per-building discipline reports.",
	Long: `Aggregate a discipline log export into ranked incident summaries.

Produces one district-wide report over every record, then one report per
building, each with the same metrics:
- Incidents by grade, location, hour and log subtype
- Incidents by date, with day-of-week averages
- Top students by incident count and top staff members by log count
- Incidents by location within each hour

Examples:
  # Text reports under ./output
  logbook report discipline_log.csv

  # CSV workbooks plus Parquet copies of the raw records
  logbook report discipline_log.csv --output parquet

  # Smaller rankings, more workers
  logbook report discipline_log.csv --top-students 5 --top-authors 5 --workers 8`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeReport(); err != nil {
			contract.LogFatal("Cannot generate reports", err)
		}
	},
}

// executeReport runs the full load, aggregate and write pipeline.
func executeReport() error {
	loader := contract.NewCSVLoader(cfg.InputFile)
	records, err := loader.Load(rootCtx)
	if err != nil {
		return err
	}
	fmt.Printf("🧾 Loaded %d records from %s\n", len(records), cfg.InputFile)

	stats := core.AuditQuality(records)
	if !stats.Clean() {
		contract.LogWarn(fmt.Sprintf(
			"Data quality: %d unparseable times, %d unparseable dates, %d missing dates",
			stats.UnparseableTimes, stats.UnparseableDates, stats.MissingDates), nil)
	}

	sink := outwriter.NewOutWriter(cfg)
	if err := core.Run(records, cfg, sink); err != nil {
		return err
	}

	recordHistory(records)
	return nil
}

// recordHistory stores one run history row per generated report.
// Failures are warnings; the reports on disk are already complete.
func recordHistory(records []schema.IncidentRecord) {
	store := runstore.Manager.History()
	if store == nil {
		return
	}

	now := time.Now()
	runs := []schema.ReportRun{{
		RunAt:       now,
		Label:       schema.DistrictLabel,
		RecordCount: len(records),
		OutputMode:  cfg.Output,
	}}

	order, partitions := core.GroupByBuilding(records)
	for _, building := range order {
		runs = append(runs, schema.ReportRun{
			RunAt:       now,
			Label:       building,
			RecordCount: len(partitions[building]),
			OutputMode:  cfg.Output,
		})
	}

	for _, run := range runs {
		if err := store.RecordRun(run); err != nil {
			contract.LogWarn("Could not record run history", err)
			return
		}
	}
}
