package override

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Canonical(t *testing.T) {
	table := NewTable()

	rec := table.Lookup("APPLE")
	require.NotNil(t, rec)
	assert.Equal(t, "Tech / Software", rec.Sector)
	assert.Equal(t, "APPLE INC.", rec.OfficialName)
	assert.NotEmpty(t, rec.Address)
}

func TestLookup_NormalizedVariants(t *testing.T) {
	table := NewTable()

	// Case, spacing, periods and hyphens all collapse to the same key.
	for _, name := range []string{"apple", "A.P.P.L.E", "Ap-ple", " APPLE "} {
		assert.NotNil(t, table.Lookup(name), name)
	}
}

func TestLookup_Alias(t *testing.T) {
	table := NewTable()

	rec := table.Lookup("Facebook")
	require.NotNil(t, rec)
	assert.Equal(t, "META PLATFORMS", rec.OfficialName)

	rec = table.Lookup("Ernst & Young")
	require.NotNil(t, rec)
	assert.Equal(t, "ERNST & YOUNG", rec.OfficialName)
	assert.True(t, rec.IsCompetitor)

	rec = table.Lookup("air bnb")
	require.NotNil(t, rec)
	assert.Equal(t, "AIRBNB INC.", rec.OfficialName)
}

func TestLookup_EmailDomainLabel(t *testing.T) {
	// The normalizer reduces "jdupont@bnpparibas.com" to "bnpparibas";
	// its lookup key must collide with the "BNP PARIBAS" entry.
	rec := NewTable().Lookup("bnpparibas")
	require.NotNil(t, rec)
	assert.Equal(t, "Banking", rec.Sector)
}

func TestLookup_Miss(t *testing.T) {
	assert.Nil(t, NewTable().Lookup("Boulangerie Martin"))
}

func TestLookup_ReturnsCopy(t *testing.T) {
	table := NewTable()

	rec := table.Lookup("APPLE")
	require.NotNil(t, rec)
	rec.Sector = "mutated"

	again := table.Lookup("APPLE")
	assert.Equal(t, "Tech / Software", again.Sector)
}

func TestCompetitorFlags(t *testing.T) {
	table := NewTable()
	for _, name := range []string{"CAPGEMINI", "KPMG", "DELOITTE", "EY", "PWC", "ACCENTURE"} {
		rec := table.Lookup(name)
		require.NotNil(t, rec, name)
		assert.True(t, rec.IsCompetitor, name)
	}
}
