package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyNAF_DirectPrefix(t *testing.T) {
	sectors := Builtin()
	assert.Equal(t, "Construction", ClassifyNAF(sectors, "4120B"))
	assert.Equal(t, "Education", ClassifyNAF(sectors, "85.59A"))
	assert.Equal(t, "Pharmaceutics", ClassifyNAF(sectors, "21 20 Z"))
}

func TestClassifyNAF_LongestPrefixWins(t *testing.T) {
	sectors := Builtin()

	// "641" (Banking) is more specific than "64" (Finance / Real Estate).
	assert.Equal(t, "Banking", ClassifyNAF(sectors, "6411Z"))
	assert.Equal(t, "Finance / Real Estate", ClassifyNAF(sectors, "6630Z"))

	// "204" (CPG) beats "20" (Chemicals).
	assert.Equal(t, "CPG (Consumer Packaged Goods)", ClassifyNAF(sectors, "2041Z"))
	assert.Equal(t, "Chemicals", ClassifyNAF(sectors, "2011Z"))
}

func TestClassifyNAF_EqualLengthTieIsDeclarationOrder(t *testing.T) {
	// "582" belongs to both Consulting / IT Services and Tech / Software;
	// the earlier sector wins.
	assert.Equal(t, "Consulting / IT Services", ClassifyNAF(Builtin(), "5829C"))
}

func TestClassifyNAF_Blacklist(t *testing.T) {
	// Head-office and holding codes say nothing about the actual business.
	assert.Equal(t, "", ClassifyNAF(Builtin(), "7010Z"))
	assert.Equal(t, "", ClassifyNAF(Builtin(), "64.20Z"))
}

func TestClassifyNAF_Unknown(t *testing.T) {
	assert.Equal(t, "", ClassifyNAF(Builtin(), ""))
	assert.Equal(t, "", ClassifyNAF(Builtin(), "9999X"))
}

func TestRegionForPostalCode(t *testing.T) {
	assert.Equal(t, "Île-de-France", RegionForPostalCode("75008"))
	assert.Equal(t, "Auvergne-Rhône-Alpes", RegionForPostalCode("69001"))
	assert.Equal(t, "Guadeloupe", RegionForPostalCode("97110"))
	assert.Equal(t, "La Réunion", RegionForPostalCode("97400"))
	assert.Equal(t, "Autre", RegionForPostalCode(""))
	assert.Equal(t, "Autre", RegionForPostalCode("7"))
	assert.Equal(t, "France (00)", RegionForPostalCode("00100"))
}

func TestHeadcountLabel(t *testing.T) {
	assert.Equal(t, "0 salarié", HeadcountLabel("00"))
	assert.Equal(t, "100 à 199 salariés", HeadcountLabel("22"))
	assert.Equal(t, "10 000 salariés et plus", HeadcountLabel("53"))
	assert.Equal(t, "Non renseigné", HeadcountLabel(""))
	assert.Equal(t, "Non renseigné", HeadcountLabel("NN"))
	assert.Equal(t, "99", HeadcountLabel("99"))
}

func TestLoadFile_OverridesBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sectors:
  - name: Banking
    naf_prefixes: ["641", "649"]
    keywords: ["banque", "neobanque"]
  - name: Space
    naf_prefixes: ["303"]
    keywords: ["satellite"]
`), 0o644))

	sectors, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Banking", ClassifyNAF(sectors, "6491Z"))
	assert.Equal(t, "Space", ClassifyNAF(sectors, "3030Z"))
	// Untouched builtin entries survive the merge.
	assert.Equal(t, "Construction", ClassifyNAF(sectors, "4120B"))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
