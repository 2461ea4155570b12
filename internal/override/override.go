// Package override holds the internal override table: curated companies
// whose identity and sector are known ahead of any lookup, plus an alias
// table folding common misspellings and domain variants onto canonical
// entries.
package override

import (
	"github.com/leadpilot/sector-cli/internal/model"
	"github.com/leadpilot/sector-cli/internal/normalize"
)

// Table resolves normalized company names to override records.
type Table struct {
	records map[string]model.OverrideRecord
	aliases map[string]string
}

// NewTable builds the override table from the bundled entries and aliases.
func NewTable() *Table {
	t := &Table{
		records: make(map[string]model.OverrideRecord, len(builtinOverrides)),
		aliases: make(map[string]string, len(builtinAliases)),
	}
	for name, rec := range builtinOverrides {
		t.records[normalize.Key(name)] = rec
	}
	for alias, canonical := range builtinAliases {
		t.aliases[normalize.Key(alias)] = normalize.Key(canonical)
	}
	return t
}

// Lookup returns the override record for a raw name, or nil. The name is
// normalized and resolved through the alias table first.
func (t *Table) Lookup(name string) *model.OverrideRecord {
	key := normalize.Key(name)
	if canonical, ok := t.aliases[key]; ok {
		key = canonical
	}
	if rec, ok := t.records[key]; ok {
		return &rec
	}
	return nil
}
