package competitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_WordBoundary(t *testing.T) {
	assert.True(t, Match("EY Consulting"))
	assert.True(t, Match("Cabinet PWC France"))
	assert.True(t, Match("SOPRA STERIA GROUP"))

	// "KEYRUS" contains "EY" as a substring only.
	assert.False(t, Match("KEYRUS"))
	assert.False(t, Match("Boulangerie Martin"))
}

func TestMatch_CaseAndAccents(t *testing.T) {
	assert.True(t, Match("capgemini"))
	assert.True(t, Match("Wavestone Paris"))
	assert.True(t, Match("Mazars & Associés"))
}

func TestMatch_Empty(t *testing.T) {
	assert.False(t, Match(""))
}
