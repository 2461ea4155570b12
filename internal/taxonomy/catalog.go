package taxonomy

import (
	"context"
	"sync/atomic"
)

// Loader supplies the mutable half of the catalog from durable storage.
type Loader interface {
	LoadCorrections(ctx context.Context) (map[string]string, error)
	LoadCustomSectors(ctx context.Context) ([]string, error)
}

// Snapshot is an immutable view of the catalog's mutable state. Readers get
// a consistent snapshot; Reload swaps the whole thing atomically, which
// keeps concurrent classification reads safe against correction writes.
type Snapshot struct {
	// Corrections maps normalized lookup key to the user-forced sector.
	Corrections map[string]string
	// Custom lists user-added sector names (no code prefixes, no keywords).
	Custom []string
}

// ForcedSector returns the user-corrected sector for a lookup key, if any.
func (s *Snapshot) ForcedSector(key string) string {
	return s.Corrections[key]
}

// Catalog merges the static sector table with runtime state: user-added
// custom sectors and the correction map. It is shared across classification
// calls; Reload refreshes it from storage before each one.
type Catalog struct {
	sectors []Sector
	loader  Loader
	snap    atomic.Pointer[Snapshot]
}

// NewCatalog builds a catalog over the given sector table. loader may be
// nil, in which case Reload is a no-op and the catalog stays static.
func NewCatalog(sectors []Sector, loader Loader) *Catalog {
	c := &Catalog{sectors: sectors, loader: loader}
	c.snap.Store(&Snapshot{Corrections: map[string]string{}})
	return c
}

// Sectors returns the static sector table (builtin plus file overrides).
func (c *Catalog) Sectors() []Sector {
	return c.sectors
}

// Snapshot returns the current immutable snapshot. Never nil.
func (c *Catalog) Snapshot() *Snapshot {
	return c.snap.Load()
}

// Reload re-reads corrections and custom sectors from storage and swaps the
// snapshot. On error the previous snapshot stays in place.
func (c *Catalog) Reload(ctx context.Context) error {
	if c.loader == nil {
		return nil
	}

	corrections, err := c.loader.LoadCorrections(ctx)
	if err != nil {
		return err
	}
	custom, err := c.loader.LoadCustomSectors(ctx)
	if err != nil {
		return err
	}
	if corrections == nil {
		corrections = map[string]string{}
	}

	c.snap.Store(&Snapshot{Corrections: corrections, Custom: custom})
	return nil
}

// SectorNames returns the full allowed sector vocabulary: static sectors
// followed by custom ones, deduplicated, in stable order.
func (c *Catalog) SectorNames() []string {
	snap := c.Snapshot()
	names := Names(c.sectors)
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		seen[n] = struct{}{}
	}
	for _, n := range snap.Custom {
		if _, dup := seen[n]; !dup {
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}
	return names
}

// IsAllowed reports whether a sector belongs to the closed vocabulary:
// static sectors, custom sectors, or a sector introduced by a correction.
func (c *Catalog) IsAllowed(sector string) bool {
	for _, n := range c.SectorNames() {
		if n == sector {
			return true
		}
	}
	for _, s := range c.Snapshot().Corrections {
		if s == sector {
			return true
		}
	}
	return false
}
