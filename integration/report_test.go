//go:build basic

// Package integration contains integration tests for logbook.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogbookReportText runs the full pipeline and checks the generated files.
func TestLogbookReportText(t *testing.T) {
	inputPath := writeSampleExport(t)
	outputDir := t.TempDir()

	_, err := runLogbookCommand(t, "report", inputPath, "--output-dir", outputDir)
	require.NoError(t, err)

	date := time.Now().Format("2006-01-02")

	// District report at the output root
	districtPath := filepath.Join(outputDir, "Discipline_Report_"+date+".txt")
	data, err := os.ReadFile(districtPath)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "District-Wide")
	assert.Contains(t, text, "incidents_by_grade")
	assert.Contains(t, text, "top_students")
	assert.Contains(t, text, "Unknown")

	// One subdirectory per building, plus one for unknown schools
	for _, building := range []string{"North High", "South Middle", "Unknown Building"} {
		entries, err := os.ReadDir(filepath.Join(outputDir, building))
		require.NoError(t, err, "missing report directory for %s", building)
		require.Len(t, entries, 1)
	}
}

// TestLogbookReportCSV checks the workbook layout of CSV output.
func TestLogbookReportCSV(t *testing.T) {
	inputPath := writeSampleExport(t)
	outputDir := t.TempDir()

	_, err := runLogbookCommand(t, "report", inputPath, "--output", "csv", "--output-dir", outputDir)
	require.NoError(t, err)

	date := time.Now().Format("2006-01-02")
	districtPath := filepath.Join(outputDir, "Discipline_Report_"+date+".csv")
	data, err := os.ReadFile(districtPath)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "incidents_by_loc_hour")
	assert.Contains(t, text, "Detailed Log Entries")
	assert.Contains(t, text, "student_number")
}

// TestLogbookSummary checks district metrics on stdout.
func TestLogbookSummary(t *testing.T) {
	inputPath := writeSampleExport(t)

	output, err := runLogbookCommand(t, "summary", inputPath)
	require.NoError(t, err)
	assert.Contains(t, output, "District-Wide")
	assert.Contains(t, output, "incidents_by_date")
}

// TestLogbookBuildings lists partitions with counts.
func TestLogbookBuildings(t *testing.T) {
	inputPath := writeSampleExport(t)

	output, err := runLogbookCommand(t, "buildings", inputPath)
	require.NoError(t, err)
	assert.Contains(t, output, "North High: 2")
	assert.Contains(t, output, "South Middle: 2")
	assert.Contains(t, output, "Unknown Building: 1")
}
