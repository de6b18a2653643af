package cmd

import (
	"os"

	"github.com/huangsam/logbook/core"
	"github.com/huangsam/logbook/internal/contract"
	"github.com/huangsam/logbook/internal/outwriter"
	"github.com/huangsam/logbook/schema"
	"github.com/spf13/cobra"
)

// summaryCmd prints the district-wide metrics without writing report files.
var summaryCmd = &cobra.Command{
	Use:   "summary <input-file>",
	Short: "Print the district-wide incident summary to stdout.",
	Long: `Aggregate a discipline log export and print the district-wide metrics.

Nothing is written to the output directory. Use --output-file to redirect
the rendered summary to a file instead of stdout.

Examples:
  # Quick look at the whole district
  logbook summary discipline_log.csv

  # Save the rendered summary
  logbook summary discipline_log.csv --output-file district.txt`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeSummary(); err != nil {
			contract.LogFatal("Cannot summarize log", err)
		}
	},
}

// executeSummary renders the district report to stdout or --output-file.
func executeSummary() error {
	loader := contract.NewCSVLoader(cfg.InputFile)
	records, err := loader.Load(rootCtx)
	if err != nil {
		return err
	}

	report := schema.Report{
		Label:   schema.DistrictLabel,
		Records: records,
		Metrics: core.CalculateSummaryMetrics(records, cfg.TopStudents, cfg.TopAuthors),
	}

	out := os.Stdout
	if cfg.OutputFile != "" {
		f, err := contract.SelectOutputFile(cfg.OutputFile)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	return outwriter.RenderReportText(out, &report, cfg)
}
