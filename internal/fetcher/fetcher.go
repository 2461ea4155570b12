// Package fetcher reads company inputs from CSV and XLSX files. Only the
// first column matters: one raw company name or email address per row.
package fetcher

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// ReadInputs reads the first column of a CSV or XLSX file, picking the
// parser from the file extension. Blank cells are dropped.
func ReadInputs(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, eris.Errorf("fetcher: unsupported input format %q", filepath.Ext(path))
	}
}

func firstColumn(rows [][]string) []string {
	inputs := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if cell := strings.TrimSpace(row[0]); cell != "" {
			inputs = append(inputs, cell)
		}
	}
	return inputs
}
