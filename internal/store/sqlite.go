package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS corrections (
	lookup_key TEXT PRIMARY KEY,
	sector     TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS custom_sectors (
	name       TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadCorrections(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT lookup_key, sector FROM corrections`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: load corrections")
	}
	defer rows.Close()

	corrections := make(map[string]string)
	for rows.Next() {
		var key, sector string
		if err := rows.Scan(&key, &sector); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan correction")
		}
		corrections[key] = sector
	}
	return corrections, eris.Wrap(rows.Err(), "sqlite: load corrections iterate")
}

func (s *SQLiteStore) UpsertCorrection(ctx context.Context, key, sector string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO corrections (lookup_key, sector, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(lookup_key) DO UPDATE SET sector = excluded.sector, updated_at = excluded.updated_at`,
		key, sector, time.Now().UTC(),
	)
	return eris.Wrapf(err, "sqlite: upsert correction %s", key)
}

func (s *SQLiteStore) LoadCustomSectors(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM custom_sectors ORDER BY created_at, name`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: load custom sectors")
	}
	defer rows.Close()

	var sectors []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan custom sector")
		}
		sectors = append(sectors, name)
	}
	return sectors, eris.Wrap(rows.Err(), "sqlite: load custom sectors iterate")
}

func (s *SQLiteStore) AddCustomSector(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO custom_sectors (name, created_at) VALUES (?, ?)
		 ON CONFLICT(name) DO NOTHING`,
		name, time.Now().UTC(),
	)
	return eris.Wrapf(err, "sqlite: add custom sector %s", name)
}
