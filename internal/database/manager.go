// Package database opens the gitmind SQLite database and keeps its schema current.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// pragmas are applied to every connection the pool opens.
var pragmas = []struct {
	name  string
	value string
}{
	{name: "journal_mode", value: "WAL"},
	{name: "busy_timeout", value: "5000"},
	{name: "synchronous", value: "NORMAL"},
	{name: "temp_store", value: "MEMORY"},
}

type Manager struct {
	db *sql.DB
}

func NewManager(ctx context.Context, dsn string) (*Manager, error) {
	if dsn != MemoryDSN {
		dsn = withPragmas(dsn)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dsn == MemoryDSN {
		// Every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
		for _, pragma := range pragmas {
			stmt := fmt.Sprintf("PRAGMA %s = %s", pragma.name, pragma.value)
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("failed to execute pragma %s: %w", pragma.name, err)
			}
		}
	} else {
		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(time.Hour)
	}

	manager := &Manager{db: db}

	if err := manager.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return manager, nil
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) Close() error {
	if m.db != nil {
		if err := m.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

// withPragmas adds the pragmas as _pragma DSN parameters so the driver runs
// them on each new connection.
func withPragmas(dsn string) string {
	var b strings.Builder
	b.WriteString(dsn)
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	for _, pragma := range pragmas {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(url.QueryEscape(pragma.name + "(" + pragma.value + ")"))
		sep = "&"
	}
	return b.String()
}
