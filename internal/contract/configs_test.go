package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/logbook/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempInputFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.csv")
	require.NoError(t, os.WriteFile(path, []byte("student_name\n"), 0o644))
	return path
}

func TestProcessAndValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{InputFileStr: tempInputFile(t)}

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, DefaultTopStudents, cfg.TopStudents)
	assert.Equal(t, DefaultTopAuthors, cfg.TopAuthors)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, DefaultReportName, cfg.ReportName)
	assert.Equal(t, schema.NoneBackend, cfg.HistoryBackend)
	assert.True(t, cfg.UseEmojis)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidate_MissingInput(t *testing.T) {
	err := ProcessAndValidate(&Config{}, &ConfigRawInput{})
	assert.Error(t, err)

	err = ProcessAndValidate(&Config{}, &ConfigRawInput{InputFileStr: "/does/not/exist.csv"})
	assert.Error(t, err)
}

func TestProcessAndValidate_InvalidOutputMode(t *testing.T) {
	input := &ConfigRawInput{InputFileStr: tempInputFile(t), Output: "xml"}
	err := ProcessAndValidate(&Config{}, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output mode")
}

func TestProcessAndValidate_InvalidBackend(t *testing.T) {
	input := &ConfigRawInput{InputFileStr: tempInputFile(t), HistoryBackend: "oracle"}
	err := ProcessAndValidate(&Config{}, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid history backend")
}

func TestProcessAndValidate_Limits(t *testing.T) {
	input := &ConfigRawInput{InputFileStr: tempInputFile(t), TopStudents: 5, TopAuthors: 3, Workers: 2}
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, 5, cfg.TopStudents)
	assert.Equal(t, 3, cfg.TopAuthors)
	assert.Equal(t, 2, cfg.Workers)

	input.TopStudents = MaxTopLimit + 1
	assert.Error(t, ProcessAndValidate(&Config{}, input))
}

func TestProcessAndValidate_BackendNeedsConnString(t *testing.T) {
	input := &ConfigRawInput{InputFileStr: tempInputFile(t), HistoryBackend: "mysql"}
	err := ProcessAndValidate(&Config{}, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection string")

	// SQLite needs no connection string at all
	input = &ConfigRawInput{InputFileStr: tempInputFile(t), HistoryBackend: "sqlite"}
	assert.NoError(t, ProcessAndValidate(&Config{}, input))
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "root:pw@tcp(localhost:3306)/db"))
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{TopStudents: 7, Output: schema.CSVOut}
	clone := cfg.Clone()
	clone.TopStudents = 3
	assert.Equal(t, 7, cfg.TopStudents)
	assert.Equal(t, schema.CSVOut, clone.Output)
}
