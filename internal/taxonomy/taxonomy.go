// Package taxonomy holds the sector definitions and the code-based
// classifier: each sector carries the NAF code prefixes that map to it and
// the keyword list used by the text scorer.
package taxonomy

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Sector defines one business sector. Order matters: ties (equal-length
// prefix matches, equal keyword scores) resolve to the first sector in
// declaration order.
type Sector struct {
	Name        string   `yaml:"name"`
	NAFPrefixes []string `yaml:"naf_prefixes"`
	Keywords    []string `yaml:"keywords"`
}

// nafBlacklist lists codes that never classify by code: holding-company
// activities (7010Z head offices, 6420Z holdings) say nothing about what
// the group actually does.
var nafBlacklist = map[string]struct{}{
	"7010Z": {},
	"6420Z": {},
}

var codeSeparators = strings.NewReplacer(".", "", "-", "", " ", "")

// ClassifyNAF maps a NAF/APE code to a sector name using the longest
// matching prefix across all sectors. Returns "" when no prefix matches or
// the code is blacklisted. Ties on prefix length go to the first sector in
// declaration order.
func ClassifyNAF(sectors []Sector, code string) string {
	clean := strings.ToUpper(codeSeparators.Replace(strings.TrimSpace(code)))
	if clean == "" {
		return ""
	}
	if _, banned := nafBlacklist[clean]; banned {
		return ""
	}

	best := ""
	bestLen := 0
	for _, s := range sectors {
		for _, prefix := range s.NAFPrefixes {
			if strings.HasPrefix(clean, prefix) && len(prefix) > bestLen {
				bestLen = len(prefix)
				best = s.Name
			}
		}
	}
	return best
}

// Names returns the sector names in declaration order.
func Names(sectors []Sector) []string {
	names := make([]string, len(sectors))
	for i, s := range sectors {
		names[i] = s.Name
	}
	return names
}

type taxonomyFile struct {
	Sectors []Sector `yaml:"sectors"`
}

// LoadFile reads a YAML taxonomy override file and merges it over the
// builtin table: entries with a known name replace that sector's prefix and
// keyword lists, unknown names are appended. An empty path returns the
// builtin table as-is.
func LoadFile(path string) ([]Sector, error) {
	if path == "" {
		return Builtin(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "taxonomy: read %s", path)
	}

	var tf taxonomyFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, eris.Wrapf(err, "taxonomy: parse %s", path)
	}

	merged := Builtin()
	index := make(map[string]int, len(merged))
	for i, s := range merged {
		index[s.Name] = i
	}
	for _, s := range tf.Sectors {
		if i, ok := index[s.Name]; ok {
			merged[i] = s
		} else {
			merged = append(merged, s)
		}
	}
	return merged, nil
}
