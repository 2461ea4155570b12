package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allowedSectors = []string{"Banking", "Tech / Software", "Retail"}

func TestParseClassification_Plain(t *testing.T) {
	cls, err := parseClassification(
		`{"sector": "Tech / Software", "confidence": "haute", "reasoning": "éditeur de logiciels"}`,
		allowedSectors,
	)
	require.NoError(t, err)
	assert.Equal(t, "Tech / Software", cls.Sector)
	assert.Equal(t, "haute", cls.Confidence)
	assert.Equal(t, "éditeur de logiciels", cls.Reasoning)
}

func TestParseClassification_FencedJSON(t *testing.T) {
	cls, err := parseClassification("```json\n{\"sector\": \"Banking\"}\n```", allowedSectors)
	require.NoError(t, err)
	assert.Equal(t, "Banking", cls.Sector)

	cls, err = parseClassification("```\n{\"sector\": \"Retail\"}\n```", allowedSectors)
	require.NoError(t, err)
	assert.Equal(t, "Retail", cls.Sector)
}

func TestParseClassification_Declined(t *testing.T) {
	_, err := parseClassification(`{"sector": "Unknown"}`, allowedSectors)
	assert.Error(t, err)

	_, err = parseClassification(`{"sector": ""}`, allowedSectors)
	assert.Error(t, err)
}

func TestParseClassification_OffList(t *testing.T) {
	_, err := parseClassification(`{"sector": "Cryptomining"}`, allowedSectors)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in allowed list")
}

func TestParseClassification_Garbage(t *testing.T) {
	_, err := parseClassification("je ne peux pas répondre", allowedSectors)
	assert.Error(t, err)
}

func TestUserPrompt_ContainsNameAndSectors(t *testing.T) {
	prompt := userPrompt("ACME", allowedSectors)
	assert.Contains(t, prompt, "ACME")
	for _, s := range allowedSectors {
		assert.Contains(t, prompt, s)
	}
}
