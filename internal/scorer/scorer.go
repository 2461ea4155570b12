// Package scorer scores free text against each sector's keyword list.
// Matching is whole-word (word-boundary delimited, never substring) on
// lowercased, diacritic-folded text.
package scorer

import (
	"regexp"
	"strings"

	"github.com/leadpilot/sector-cli/internal/normalize"
	"github.com/leadpilot/sector-cli/internal/taxonomy"
)

// SnippetWeight is the keyword weight applied to web snippets and registry
// activity labels.
const SnippetWeight = 5.0

type sectorMatcher struct {
	name     string
	patterns []*regexp.Regexp
}

// Scorer holds precompiled keyword patterns for a sector table.
type Scorer struct {
	matchers []sectorMatcher
}

// New compiles keyword patterns for the given sectors. Keywords are folded
// so "pêche" and "peche" hit the same pattern.
func New(sectors []taxonomy.Sector) *Scorer {
	s := &Scorer{matchers: make([]sectorMatcher, 0, len(sectors))}
	for _, sec := range sectors {
		m := sectorMatcher{name: sec.Name}
		for _, kw := range sec.Keywords {
			folded := normalize.Fold(strings.ToLower(kw))
			m.patterns = append(m.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(folded)+`\b`))
		}
		s.matchers = append(s.matchers, m)
	}
	return s
}

// Score counts whole-word keyword occurrences per sector, each multiplied
// by weight. Every sector appears in the result, zero or not.
func (s *Scorer) Score(text string, weight float64) map[string]float64 {
	folded := normalize.Fold(strings.ToLower(text))

	scores := make(map[string]float64, len(s.matchers))
	for _, m := range s.matchers {
		total := 0.0
		for _, p := range m.patterns {
			total += float64(len(p.FindAllStringIndex(folded, -1))) * weight
		}
		scores[m.name] = total
	}
	return scores
}

// Best returns the highest-scoring sector and its score. Ties resolve to
// the first sector in table order; an all-zero map yields ("", 0).
func (s *Scorer) Best(scores map[string]float64) (string, float64) {
	best := ""
	max := 0.0
	for _, m := range s.matchers {
		if sc := scores[m.name]; sc > max {
			max = sc
			best = m.name
		}
	}
	return best, max
}
