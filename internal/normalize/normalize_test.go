package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_PlainName(t *testing.T) {
	n := New()
	got, ok := n.Extract("  Airbus  ")
	require.True(t, ok)
	assert.Equal(t, "Airbus", got)
}

func TestExtract_CorporateEmail(t *testing.T) {
	n := New()
	got, ok := n.Extract("jean.dupont@acme-corp.com")
	require.True(t, ok)
	assert.Equal(t, "acme corp", got)
}

func TestExtract_PersonalEmailIneligible(t *testing.T) {
	n := New()
	for _, raw := range []string{
		"jean.dupont@gmail.com",
		"marie@WANADOO.fr",
		"x@laposte.net",
	} {
		got, ok := n.Extract(raw)
		assert.False(t, ok, raw)
		assert.Equal(t, raw, got, "ineligible input must be returned unchanged")
	}
}

func TestExtract_ExtraProvider(t *testing.T) {
	n := New("orange")
	_, ok := n.Extract("paul@orange.fr")
	assert.False(t, ok)

	// The same label stays eligible on the default set.
	got, ok := New().Extract("paul@orange.fr")
	require.True(t, ok)
	assert.Equal(t, "orange", got)
}

func TestExtract_TabRowEmailFirst(t *testing.T) {
	n := New()
	got, ok := n.Extract("contact@serfi.fr\tSERFI INTERNATIONAL\t75008")
	require.True(t, ok)
	assert.Equal(t, "SERFI INTERNATIONAL", got)
}

func TestExtract_TabRowNameFirst(t *testing.T) {
	n := New()
	got, ok := n.Extract("Dassault Systèmes\t78140 Vélizy")
	require.True(t, ok)
	assert.Equal(t, "Dassault Systèmes", got)
}

func TestExtract_MultiLineKeepsFirstLine(t *testing.T) {
	n := New()
	got, ok := n.Extract("Thales\r\n92400 Courbevoie\nFrance")
	require.True(t, ok)
	assert.Equal(t, "Thales", got)
}

func TestExtract_DirectoryProse(t *testing.T) {
	n := New()

	got, ok := n.Extract("ACME INDUSTRIE a été créée le 12/03/1998 à Lyon")
	require.True(t, ok)
	assert.Equal(t, "ACME INDUSTRIE", got)

	got, ok = n.Extract("Belou Tech est une société spécialisée dans le logiciel")
	require.True(t, ok)
	assert.Equal(t, "Belou Tech", got)
}

func TestExtract_GluedLegalSuffix(t *testing.T) {
	n := New()
	got, ok := n.Extract("serfigroup")
	require.True(t, ok)
	assert.Equal(t, "serfi group", got)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "COCACOLA", Key("Coca-Cola"))
	assert.Equal(t, "COCACOLA", Key("coca cola"))
	assert.Equal(t, "STMICROELECTRONICS", Key("  S.T. Microelectronics "))
	assert.Equal(t, Key("Coca-Cola"), Key("COCACOLA"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "peche", Fold("pêche"))
	assert.Equal(t, "Societe Generale", Fold("Société Générale"))
	assert.Equal(t, "plain", Fold("plain"))
}
