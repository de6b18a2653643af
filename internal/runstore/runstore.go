// Package runstore persists run history for generated reports across
// SQLite, MySQL and PostgreSQL backends.
package runstore

import (
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/logbook/internal/contract"
	"github.com/huangsam/logbook/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &HistoryManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// HistoryManager guards the process-wide history store.
type HistoryManager struct {
	sync.Mutex
	history contract.HistoryStore
}

// History returns the configured history store, or nil when history
// tracking was never initialized.
func (m *HistoryManager) History() contract.HistoryStore {
	m.Lock()
	defer m.Unlock()
	return m.history
}

// GetDBFilePath returns the path to the SQLite DB file for history storage.
func GetDBFilePath() string {
	return contract.GetHistoryDBFilePath()
}

// InitHistory initializes the global history manager. backend can be
// NoneBackend to accept writes as no-ops.
func InitHistory(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		store, err := NewHistoryStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize run history: %w", err)
			return
		}
		Manager.Lock()
		Manager.history = store
		Manager.Unlock()
	})

	return initErr
}

// CloseHistory should be called on application shutdown.
func CloseHistory() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.history != nil {
			_ = Manager.history.Close()
		}
	})
}

// ClearHistory clears run history for the specified backend.
// For SQLite, it deletes the database file when no connection string is given.
func ClearHistory(backend schema.DatabaseBackend, connStr string) error {
	if backend == schema.SQLiteBackend && connStr == "" {
		dbPath := GetDBFilePath()
		if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove history database %q: %w", dbPath, err)
		}
		return nil
	}

	store, err := NewHistoryStore(backend, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return store.Clear()
}
