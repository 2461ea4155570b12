package store

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_LoadCorrections(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT lookup_key, sector FROM corrections`).
		WillReturnRows(pgxmock.NewRows([]string{"lookup_key", "sector"}).
			AddRow("ACME", "Banking").
			AddRow("FOO", "Retail"))

	corrections, err := s.LoadCorrections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ACME": "Banking", "FOO": "Retail"}, corrections)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadCorrections_QueryError(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT lookup_key, sector FROM corrections`).
		WillReturnError(eris.New("connection refused"))

	_, err := s.LoadCorrections(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load corrections")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpsertCorrection(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO corrections`).
		WithArgs("ACME", "Banking").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.UpsertCorrection(context.Background(), "ACME", "Banking"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadCustomSectors(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT name FROM custom_sectors`).
		WillReturnRows(pgxmock.NewRows([]string{"name"}).
			AddRow("Space").
			AddRow("Mining"))

	sectors, err := s.LoadCustomSectors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Space", "Mining"}, sectors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AddCustomSector(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO custom_sectors`).
		WithArgs("Space").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.AddCustomSector(context.Background(), "Space"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS corrections`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
