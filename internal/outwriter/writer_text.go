package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/logbook/internal/contract"
	"github.com/huangsam/logbook/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// rawListingColumns is the compact column subset used for the detailed log
// entries section of text output. The CSV, JSON, and Parquet renditions
// carry the full record.
var rawListingColumns = []string{"Student", "Grade", "Date", "Time", "Location", "Subtype", "School"}

// RenderReportText writes the whole report as human-readable tables: one
// section per metric in fixed key order, then the compact raw-records
// listing. Metrics with no rows render an explicit placeholder rather than
// being omitted.
func RenderReportText(w io.Writer, report *schema.Report, cfg *contract.Config) error {
	header := fmt.Sprintf("%s (%d records)", report.Label, len(report.Records))
	if cfg.UseEmojis {
		header = "📋 " + header
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", header, strings.Repeat("=", len(report.Label)+16)); err != nil {
		return err
	}

	for _, metric := range report.Metrics {
		if _, err := fmt.Fprintf(w, "%s\n", metric.Name); err != nil {
			return err
		}

		if metric.Result.Empty() {
			if _, err := fmt.Fprintf(w, "No Data Available\n\n"); err != nil {
				return err
			}
			continue
		}

		for _, table := range metric.Result.Tables() {
			// Paired results label each half; a single table's name repeats
			// its metric, so it is skipped.
			if table.Name != metric.Name {
				if _, err := fmt.Fprintf(w, "%s\n", table.Name); err != nil {
					return err
				}
			}
			if err := renderNamedTable(w, table, cfg); err != nil {
				return err
			}
		}
	}

	return renderRawListing(w, report.Records, cfg)
}

// renderNamedTable renders one metric table with right-aligned rows.
func renderNamedTable(w io.Writer, nt schema.NamedTable, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header(nt.Columns)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxCellWidth(cfg)
	data := make([][]string, 0, len(nt.Rows))
	for _, row := range nt.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = contract.ColorUnknown(contract.TruncateCell(cell, maxWidth), cfg.UseColors)
		}
		data = append(data, cells)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// renderRawListing appends the detailed log entries section.
func renderRawListing(w io.Writer, records []schema.IncidentRecord, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Detailed Log Entries (%d)\n", len(records)); err != nil {
		return err
	}
	if len(records) == 0 {
		_, err := fmt.Fprintf(w, "No Data Available\n")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header(rawListingColumns)

	maxWidth := GetMaxCellWidth(cfg)
	data := make([][]string, 0, len(records))
	for _, r := range records {
		data = append(data, []string{
			contract.TruncateCell(schema.OrUnknown(r.StudentName), maxWidth),
			schema.OrUnknown(r.GradeLevel),
			schema.OrUnknown(r.IncidentDate),
			schema.OrUnknown(r.IncidentTime),
			contract.TruncateCell(schema.OrUnknown(r.IncidentLocation), maxWidth),
			contract.TruncateCell(schema.OrUnknown(r.SubtypeName), maxWidth),
			contract.TruncateCell(schema.BuildingOrUnknown(r.StudentSchool), maxWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
