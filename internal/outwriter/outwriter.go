// Package outwriter has output and writer logic. It is the rendering sink:
// each report becomes one artifact (text tables, a consolidated CSV
// workbook, JSON, or CSV plus a Parquet record dump) laid out under the
// output folder, district-wide at the root and buildings in sanitized
// subfolders.
package outwriter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/logbook/internal/contract"
	"github.com/huangsam/logbook/internal/parquet"
	"github.com/huangsam/logbook/schema"
)

// OutWriter renders finished reports using the configured output format.
type OutWriter struct {
	cfg *contract.Config

	// now is swappable for tests so generated file names are stable.
	now func() time.Time
}

var _ contract.ReportSink = (*OutWriter)(nil) // Compile-time check

// NewOutWriter creates a sink bound to the validated config.
func NewOutWriter(cfg *contract.Config) *OutWriter {
	return &OutWriter{cfg: cfg, now: time.Now}
}

// WriteReport renders one report to its artifact path, dispatching on the
// configured output format.
func (ow *OutWriter) WriteReport(report *schema.Report) error {
	base, err := ow.reportBasePath(report.Label)
	if err != nil {
		return err
	}

	switch ow.cfg.Output {
	case schema.JSONOut:
		return writeWithFile(base+".json", func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(base+".csv", func(w io.Writer) error {
			return RenderReportCSV(w, report)
		}, "Wrote CSV")
	case schema.ParquetOut:
		// Metrics still land in the CSV workbook; the raw record subset
		// goes to Parquet for analytics tooling.
		if err := writeWithFile(base+".csv", func(w io.Writer) error {
			return RenderReportCSV(w, report)
		}, "Wrote CSV"); err != nil {
			return err
		}
		return parquet.WriteRecords(base+".parquet", report.Records)
	default:
		return writeWithFile(base+".txt", func(w io.Writer) error {
			return RenderReportText(w, report, ow.cfg)
		}, "Wrote table")
	}
}

// reportBasePath resolves the extension-less artifact path for a report and
// makes sure its folder exists. The district report lives at the output-dir
// root; each building gets a sanitized subfolder, matching the layout
// "<out>/<Building>/<Building>_Report_<date>".
func (ow *OutWriter) reportBasePath(label string) (string, error) {
	date := ow.now().Format("2006-01-02")

	var dir, base string
	if label == schema.DistrictLabel {
		dir = ow.cfg.OutputDir
		base = fmt.Sprintf("%s_%s", ow.cfg.ReportName, date)
	} else {
		safe := contract.SanitizeBuildingName(label)
		dir = filepath.Join(ow.cfg.OutputDir, safe)
		base = fmt.Sprintf("%s_Report_%s", strings.ReplaceAll(safe, " ", "_"), date)
	}

	if err := contract.EnsureOutputFolder(dir); err != nil {
		return "", err
	}
	return filepath.Join(dir, base), nil
}
