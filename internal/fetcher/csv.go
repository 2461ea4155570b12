package fetcher

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"
)

// ReadCSV reads a CSV file and returns the non-empty first-column values.
// Rows with uneven field counts are tolerated; semicolon-delimited files
// (the common French Excel export) are detected from the first line.
func ReadCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: open csv")
	}
	defer f.Close()

	rows, err := parseCSV(f)
	if err != nil {
		return nil, err
	}
	return firstColumn(rows), nil
}

// ReadCSVBytes parses in-memory CSV content, as received from an HTTP
// upload.
func ReadCSVBytes(data []byte) ([]string, error) {
	rows, err := parseCSV(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return firstColumn(rows), nil
}

func parseCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: read csv")
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: parse csv")
	}
	return rows, nil
}

func detectDelimiter(data []byte) rune {
	for _, b := range data {
		switch b {
		case '\n':
			return ','
		case ';':
			return ';'
		case ',':
			return ','
		}
	}
	return ','
}
