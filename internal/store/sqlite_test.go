package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteStore_CorrectionsRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	corrections, err := s.LoadCorrections(ctx)
	require.NoError(t, err)
	assert.Empty(t, corrections)

	require.NoError(t, s.UpsertCorrection(ctx, "ACME", "Banking"))
	require.NoError(t, s.UpsertCorrection(ctx, "FOO", "Retail"))

	corrections, err = s.LoadCorrections(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ACME": "Banking", "FOO": "Retail"}, corrections)
}

func TestSQLiteStore_UpsertOverwrites(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertCorrection(ctx, "ACME", "Banking"))
	require.NoError(t, s.UpsertCorrection(ctx, "ACME", "Retail"))

	corrections, err := s.LoadCorrections(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ACME": "Retail"}, corrections)
}

func TestSQLiteStore_CustomSectors(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddCustomSector(ctx, "Space"))
	require.NoError(t, s.AddCustomSector(ctx, "Mining"))
	// Duplicate insert is a no-op.
	require.NoError(t, s.AddCustomSector(ctx, "Space"))

	sectors, err := s.LoadCustomSectors(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Space", "Mining"}, sectors)
}

func TestSQLiteStore_MigrateIdempotent(t *testing.T) {
	s := newTestSQLiteStore(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "dsn")
	assert.Error(t, err)
}
