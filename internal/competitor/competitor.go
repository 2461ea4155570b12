// Package competitor flags companies belonging to the fixed competitor set.
package competitor

import (
	"regexp"
	"strings"

	"github.com/leadpilot/sector-cli/internal/normalize"
)

// names is the fixed competitor set. Matching is whole-word so the
// two-letter abbreviations never fire inside unrelated names.
var names = []string{
	"EY",
	"PWC",
	"KPMG",
	"DELOITTE",
	"ACCENTURE",
	"CAPGEMINI",
	"WAVESTONE",
	"SOPRA STERIA",
	"MAZARS",
	"ALTEN",
}

var patterns = compile(names)

func compile(names []string) []*regexp.Regexp {
	ps := make([]*regexp.Regexp, len(names))
	for i, n := range names {
		folded := normalize.Fold(strings.ToUpper(n))
		ps[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(folded) + `\b`)
	}
	return ps
}

// Match reports whether the display name contains a competitor name as a
// whole word, case- and accent-insensitively.
func Match(displayName string) bool {
	folded := normalize.Fold(strings.ToUpper(displayName))
	for _, p := range patterns {
		if p.MatchString(folded) {
			return true
		}
	}
	return false
}
