// Package normalize extracts a usable company name from raw free-form
// input: pasted emails, tab-delimited spreadsheet rows, text copied from
// company-directory pages, or plain names.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// defaultPersonalProviders are email providers whose addresses identify a
// person, not a company. Inputs resolving to one of these are ineligible.
var defaultPersonalProviders = []string{
	"gmail", "outlook", "hotmail", "yahoo", "wanadoo", "icloud", "laposte",
}

var (
	// Directory-page prose: "ACME a été créée le 12/03/1998 ..." or
	// "ACME est une société spécialisée dans ...".
	proseCreated = regexp.MustCompile(`(?i)^(.+?)\s+a été créée le\b`)
	proseIsA     = regexp.MustCompile(`(?i)^(.+?)\s+est une (?:société|entreprise|association)\b`)

	// Legal-entity suffix glued to the preceding word ("serfigroup").
	legalSuffix = regexp.MustCompile(`(?i)(group|france|partners|holdings|corp|inc|ltd)$`)

	multiSpace = regexp.MustCompile(`\s+`)
)

// Normalizer turns raw input into a candidate company name.
type Normalizer struct {
	personal map[string]struct{}
}

// New creates a Normalizer. extraProviders are appended to the default
// personal-email provider set (lowercased).
func New(extraProviders ...string) *Normalizer {
	n := &Normalizer{personal: make(map[string]struct{})}
	for _, p := range defaultPersonalProviders {
		n.personal[p] = struct{}{}
	}
	for _, p := range extraProviders {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			n.personal[p] = struct{}{}
		}
	}
	return n
}

// Extract returns the candidate company name and whether the input is
// eligible for classification. Personal email addresses return the raw
// input unchanged with eligible=false.
func (n *Normalizer) Extract(raw string) (string, bool) {
	s := strings.TrimSpace(raw)

	// Keep only the first line of multi-line pastes.
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}

	// Tab-delimited spreadsheet row: when the first column is an email the
	// name usually sits in the second one.
	if strings.Contains(s, "\t") {
		fields := strings.Split(s, "\t")
		if looksLikeEmail(fields[0]) && len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
			s = fields[1]
		} else {
			s = fields[0]
		}
	}
	s = strings.TrimSpace(s)

	if strings.Contains(s, "@") && !strings.HasPrefix(strings.ToLower(s), "http") {
		domain := s[strings.Index(s, "@")+1:]
		if dot := strings.Index(domain, "."); dot > 0 {
			label := domain[:dot]
			if _, found := n.personal[strings.ToLower(label)]; found {
				return raw, false
			}
			s = label
		}
	}

	if m := proseCreated.FindStringSubmatch(s); m != nil {
		s = m[1]
	} else if m := proseIsA.FindStringSubmatch(s); m != nil {
		s = m[1]
	}

	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, ".", " ")
	s = legalSuffix.ReplaceAllString(s, " $1")
	s = multiSpace.ReplaceAllString(s, " ")

	return strings.TrimSpace(s), true
}

func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && strings.Contains(s[at:], ".")
}

// Key normalizes a name to its lookup key: uppercased with spaces, periods
// and hyphens removed, so "Coca-Cola", "coca cola" and "COCACOLA" collide.
func Key(name string) string {
	k := strings.ToUpper(strings.TrimSpace(name))
	k = strings.NewReplacer(" ", "", ".", "", "-", "").Replace(k)
	return k
}

// Fold strips diacritics ("pêche" -> "peche") so accent variants match the
// same keywords. Returns the input unchanged on transform failure.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
