package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &RunStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetRunDBFilePath returns the path to the SQLite DB file for run storage.
func GetRunDBFilePath() string {
	return contract.GetRunDBFilePath()
}

// InitRunStore initializes the global store manager.
// backend can be empty to disable run tracking entirely.
func InitRunStore(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var runStore contract.RunStore
		if backend != "" {
			var err error
			runStore, err = NewRunStore(backend, connStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize run store: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.Lock()
		Manager.runs = runStore
		Manager.Unlock()
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseRunStore should be called on application shutdown.
func CloseRunStore() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.runs != nil {
			_ = Manager.runs.Close()
		}
	})
}

// ClearRuns clears the stored scoring runs for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the run tables.
// For NoneBackend, it does nothing.
func ClearRuns(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		for _, table := range []string{playerScoresTable, scoringRunsTable} {
			if err := clearSQLTable("mysql", connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.PostgreSQLBackend:
		for _, table := range []string{playerScoresTable, scoringRunsTable} {
			if err := clearSQLTable("pgx", connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported run store backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
