package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/briefly/schemas"
)

// Dialect holds the engine-specific statements of a SQLMedium.
type Dialect interface {
	Name() string
	// MigrationsDir names the directory of schemas.Migrations holding the dialect's migrations.
	MigrationsDir() string
	UpsertQuery() string
}

// MySQLDialect targets MySQL 8.
type MySQLDialect struct{}

func (MySQLDialect) Name() string {
	return "mysql"
}

func (MySQLDialect) MigrationsDir() string {
	return "mysql"
}

func (MySQLDialect) UpsertQuery() string {
	return `INSERT INTO kv_entries (entry_key, entry_value) VALUES (?, ?)
	ON DUPLICATE KEY UPDATE entry_value = VALUES(entry_value)`
}

// SQLiteDialect targets SQLite 3.24 or later.
type SQLiteDialect struct{}

func (SQLiteDialect) Name() string {
	return "sqlite3"
}

func (SQLiteDialect) MigrationsDir() string {
	return "sqlite"
}

func (SQLiteDialect) UpsertQuery() string {
	return `INSERT INTO kv_entries (entry_key, entry_value) VALUES (?, ?)
	ON CONFLICT(entry_key) DO UPDATE SET entry_value = excluded.entry_value, updated_at = CURRENT_TIMESTAMP`
}

// SQLMedium stores keys as rows of the kv_entries table.
type SQLMedium struct {
	db      *sqlx.DB
	dialect Dialect
}

// NewSQLMedium creates a medium over db. Call Migrate before first use.
func NewSQLMedium(db *sqlx.DB, dialect Dialect) *SQLMedium {
	return &SQLMedium{db: db, dialect: dialect}
}

// Migrate runs the dialect's embedded migrations. Every migration is idempotent.
func (m *SQLMedium) Migrate(ctx context.Context) error {
	dir := path.Join("migrations", m.dialect.MigrationsDir())
	entries, err := fs.ReadDir(schemas.Migrations, dir)
	if err != nil {
		return fmt.Errorf("fs.ReadDir(%s) > %w", dir, err)
	}
	for _, entry := range entries {
		file := path.Join(dir, entry.Name())
		query, err := fs.ReadFile(schemas.Migrations, file)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", file, err)
		}
		if _, err := m.db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("db.ExecContext(%s) > %w", file, err)
		}
	}
	return nil
}

func (m *SQLMedium) Get(ctx context.Context, key Key) (string, bool, error) {
	var value string
	err := m.db.GetContext(ctx, &value, "SELECT entry_value FROM kv_entries WHERE entry_key = ?", string(key))
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("db.GetContext(kv_entries %s) > %w", key, err)
	}
	return value, true, nil
}

func (m *SQLMedium) Set(ctx context.Context, key Key, value string) error {
	if _, err := m.db.ExecContext(ctx, m.dialect.UpsertQuery(), string(key), value); err != nil {
		return fmt.Errorf("db.ExecContext(upsert kv_entries %s) > %w", key, err)
	}
	return nil
}

func (m *SQLMedium) Remove(ctx context.Context, key Key) error {
	if _, err := m.db.ExecContext(ctx, "DELETE FROM kv_entries WHERE entry_key = ?", string(key)); err != nil {
		return fmt.Errorf("db.ExecContext(delete kv_entries %s) > %w", key, err)
	}
	return nil
}

var _ Medium = (*SQLMedium)(nil)
