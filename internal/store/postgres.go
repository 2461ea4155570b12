package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
)

// Pool abstracts the subset of pgxpool.Pool the store uses, so tests can
// substitute pgxmock.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 5
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS corrections (
	lookup_key TEXT PRIMARY KEY,
	sector     TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS custom_sectors (
	name       TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) LoadCorrections(ctx context.Context) (map[string]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT lookup_key, sector FROM corrections`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: load corrections")
	}
	defer rows.Close()

	corrections := make(map[string]string)
	for rows.Next() {
		var key, sector string
		if err := rows.Scan(&key, &sector); err != nil {
			return nil, eris.Wrap(err, "postgres: scan correction")
		}
		corrections[key] = sector
	}
	return corrections, eris.Wrap(rows.Err(), "postgres: load corrections iterate")
}

func (s *PostgresStore) UpsertCorrection(ctx context.Context, key, sector string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO corrections (lookup_key, sector, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (lookup_key) DO UPDATE SET sector = EXCLUDED.sector, updated_at = now()`,
		key, sector,
	)
	return eris.Wrapf(err, "postgres: upsert correction %s", key)
}

func (s *PostgresStore) LoadCustomSectors(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT name FROM custom_sectors ORDER BY created_at, name`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: load custom sectors")
	}
	defer rows.Close()

	var sectors []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, eris.Wrap(err, "postgres: scan custom sector")
		}
		sectors = append(sectors, name)
	}
	return sectors, eris.Wrap(rows.Err(), "postgres: load custom sectors iterate")
}

func (s *PostgresStore) AddCustomSector(ctx context.Context, name string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO custom_sectors (name, created_at) VALUES ($1, now())
		 ON CONFLICT (name) DO NOTHING`,
		name,
	)
	return eris.Wrapf(err, "postgres: add custom sector %s", name)
}
