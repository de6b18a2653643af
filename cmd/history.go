package cmd

import (
	"fmt"

	"github.com/huangsam/logbook/internal/contract"
	"github.com/huangsam/logbook/internal/runstore"
	"github.com/huangsam/logbook/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as SQLite so status works out of the box
	var backend schema.DatabaseBackend
	if backendStr == "" || backendStr == string(schema.NoneBackend) {
		backend = schema.SQLiteBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyCmd focused on run history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by report commands. This avoids input file
// validation for simple history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage run history for generated reports",
	Long: `Manage the run history recorded for generated reports.

When enabled, Logbook stores one row per generated report:
- Run timestamp
- Report label (district or building)
- Record count and output format

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status   - Show run history statistics
  clear    - Remove all run history
  migrate  - Run schema migrations on the history database`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// historyStatusCmd shows run history statistics.
var historyStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show run history statistics",
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := runstore.NewHistoryStore(cfg.HistoryBackend, cfg.HistoryDBConnect)
		if err != nil {
			contract.LogFatal("Cannot open history store", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.Status()
		if err != nil {
			contract.LogFatal("Cannot read history status", err)
		}
		runstore.PrintHistoryStatus(status)
	},
}

// historyClearCmd removes all run history.
var historyClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove all run history",
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ClearHistory(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Cannot clear run history", err)
		}
		fmt.Println("Run history cleared.")
	},
}

// historyMigrateCmd runs schema migrations on the history database.
// It deliberately skips store initialization so migrations can run on a
// fresh database.
var historyMigrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Run schema migrations on the history database",
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := runstore.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Cannot migrate history database", err)
		}
	},
}
