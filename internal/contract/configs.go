package contract

import (
	"fmt"
	"os"
	"runtime"

	"github.com/huangsam/logbook/schema"
)

// Default values for configuration.
const (
	DefaultTopStudents = 15
	DefaultTopAuthors  = 10
	MaxTopLimit        = 1000
	DefaultOutputDir   = "./output"
	DefaultReportName  = "Discipline_Report"
)

// DefaultWorkers is the default number of concurrent report workers.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for report generation.
// This struct remains the "final, validated" config.
type Config struct {
	InputFile  string
	OutputDir  string
	Output     schema.OutputMode
	OutputFile string // single-file override used by summary-style commands

	TopStudents int
	TopAuthors  int
	Workers     int
	Width       int // Terminal width override (0 = auto-detect)

	ReportName string // base name for generated report files

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored Unknown highlighting in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputFileStr string

	OutputDir        string `mapstructure:"output-dir"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	TopStudents      int    `mapstructure:"top-students"`
	TopAuthors       int    `mapstructure:"top-authors"`
	Workers          int    `mapstructure:"workers"`
	Width            int    `mapstructure:"width"`
	ReportName       string `mapstructure:"report-name"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate turns the raw merged input into a validated Config.
// It verifies the input file exists, the output mode and history backend are
// supported, and clamps the ranking limits and worker count to sane values.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.InputFileStr == "" {
		return fmt.Errorf("no input file provided")
	}
	if _, err := os.Stat(input.InputFileStr); err != nil {
		return fmt.Errorf("input file %q is not readable: %w", input.InputFileStr, err)
	}
	cfg.InputFile = input.InputFileStr

	cfg.OutputDir = input.OutputDir
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	output := schema.OutputMode(input.Output)
	if output == "" {
		output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q. Must be text, csv, json, or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	cfg.TopStudents = input.TopStudents
	if cfg.TopStudents <= 0 {
		cfg.TopStudents = DefaultTopStudents
	}
	cfg.TopAuthors = input.TopAuthors
	if cfg.TopAuthors <= 0 {
		cfg.TopAuthors = DefaultTopAuthors
	}
	if cfg.TopStudents > MaxTopLimit || cfg.TopAuthors > MaxTopLimit {
		return fmt.Errorf("ranking limit exceeds maximum of %d", MaxTopLimit)
	}

	cfg.Workers = input.Workers
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	cfg.Width = input.Width

	cfg.ReportName = input.ReportName
	if cfg.ReportName == "" {
		cfg.ReportName = DefaultReportName
	}

	backend := schema.DatabaseBackend(input.HistoryBackend)
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend %q. Must be sqlite, mysql, postgresql, or none", input.HistoryBackend)
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(backend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	useEmojis, err := ParseBoolString(valueOrDefault(input.Emoji, "yes"))
	if err != nil {
		return fmt.Errorf("invalid emoji flag: %w", err)
	}
	cfg.UseEmojis = useEmojis

	useColors, err := ParseBoolString(valueOrDefault(input.Color, "yes"))
	if err != nil {
		return fmt.Errorf("invalid color flag: %w", err)
	}
	cfg.UseColors = useColors

	return nil
}

// ValidateDatabaseConnectionString checks that backends which need a
// connection string have one. SQLite falls back to a default file path and
// none needs nothing.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("mysql backend requires a connection string like user:password@tcp(host:port)/dbname")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("postgresql backend requires a connection string like host=localhost port=5432 user=postgres dbname=mydb")
		}
	}
	return nil
}

func valueOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
