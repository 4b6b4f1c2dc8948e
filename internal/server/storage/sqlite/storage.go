// Package sqlite keeps the dev server's records in a single SQLite table,
// one row per record of any base and table.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// recordsPragmas: записи читаются страницами во время записи демо-клиентом,
// поэтому WAL и ожидание блокировки вместо SQLITE_BUSY
var recordsPragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA synchronous = NORMAL;",
	"PRAGMA busy_timeout = 5000;",
}

// Storage is the SQLite implementation of storage.RecordStorage
type Storage struct {
	db *sql.DB
}

// New opens the records database at dbPath and brings its schema up to date.
// ":memory:" gives a throwaway store for tests.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open records database %s: %w", dbPath, err)
	}

	// Одно соединение: in-memory база существует только в нем,
	// а писатель у SQLite все равно один
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Storage{db: db}
	if err := s.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Storage) init(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("records database unreachable: %w", err)
	}

	for _, pragma := range recordsPragmas {
		if _, err := s.db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to configure records database (%s): %w", pragma, err)
		}
	}

	return s.migrate(ctx)
}

// migrate применяет встроенные миграции таблицы records
func (s *Storage) migrate(ctx context.Context) error {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("records migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, migrations)
	if err != nil {
		return fmt.Errorf("records migrations: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to migrate records schema: %w", err)
	}

	return nil
}

// Ping reports whether the records database answers, for /health
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}
