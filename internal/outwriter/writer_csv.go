package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/logbook/schema"
)

// rawSectionName titles the raw-records passthrough section of the workbook.
const rawSectionName = "Detailed Log Entries"

// RenderReportCSV writes the report as one consolidated CSV "workbook":
// every metric table in fixed key order as a section (name line, column
// header, rows) separated by blank lines, followed by the full raw-records
// listing. Empty metrics keep their section with an explicit placeholder.
func RenderReportCSV(w io.Writer, report *schema.Report) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	for _, metric := range report.Metrics {
		if err := writer.Write([]string{metric.Name}); err != nil {
			return fmt.Errorf("failed to write section name: %w", err)
		}

		if metric.Result.Empty() {
			if err := writer.Write([]string{"No Data Available"}); err != nil {
				return err
			}
			if err := writeBlankLine(writer); err != nil {
				return err
			}
			continue
		}

		for _, table := range metric.Result.Tables() {
			if table.Name != metric.Name {
				if err := writer.Write([]string{table.Name}); err != nil {
					return err
				}
			}
			if err := writer.Write(table.Columns); err != nil {
				return fmt.Errorf("failed to write CSV header: %w", err)
			}
			for _, row := range table.Rows {
				if err := writer.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
			if err := writeBlankLine(writer); err != nil {
				return err
			}
		}
	}

	// Raw passthrough listing
	if err := writer.Write([]string{rawSectionName}); err != nil {
		return err
	}
	if err := writer.Write(schema.RecordColumns); err != nil {
		return err
	}
	for _, record := range report.Records {
		if err := writer.Write(record.Values()); err != nil {
			return fmt.Errorf("failed to write raw record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeBlankLine emits a section separator. A single empty field renders as
// a bare newline, which spreadsheet tools read as a blank row.
func writeBlankLine(writer *csv.Writer) error {
	return writer.Write([]string{""})
}
