// Package store persists user corrections and custom sectors. Two drivers:
// SQLite for single-machine use and Postgres when several workers share a
// correction base.
package store

import (
	"context"

	"github.com/rotisserie/eris"
)

// Store defines the persistence interface for corrections and custom
// sectors. Both are last-write-wins on their key; durability is
// best-effort.
type Store interface {
	// Corrections: normalized lookup key -> forced sector.
	LoadCorrections(ctx context.Context) (map[string]string, error)
	UpsertCorrection(ctx context.Context, key, sector string) error

	// Custom sectors: user-defined sector names.
	LoadCustomSectors(ctx context.Context) ([]string, error)
	AddCustomSector(ctx context.Context, name string) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open creates a Store for the given driver ("sqlite" or "postgres").
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "sqlite", "":
		return NewSQLite(dsn)
	case "postgres":
		return NewPostgres(ctx, dsn)
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
}
