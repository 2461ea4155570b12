package fetcher

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func buildXLSX(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Feuille1")
	require.NoError(t, err)
	for _, r := range rows {
		row := sheet.AddRow()
		for _, v := range r {
			row.AddCell().SetString(v)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadCSV_CommaDelimited(t *testing.T) {
	path := writeTempFile(t, "in.csv", "APPLE,extra\nMETA,note\n\nTHALES,x\n")

	inputs, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "META", "THALES"}, inputs)
}

func TestReadCSV_SemicolonDelimited(t *testing.T) {
	path := writeTempFile(t, "in.csv", "APPLE;75008\nMETA;92100\n")

	inputs, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "META"}, inputs)
}

func TestReadCSV_TrimsAndSkipsBlankCells(t *testing.T) {
	path := writeTempFile(t, "in.csv", "  APPLE  \n,orphan\nMETA\n")

	inputs, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "META"}, inputs)
}

func TestReadXLSXBytes(t *testing.T) {
	data := buildXLSX(t, [][]string{
		{"APPLE", "ignored"},
		{"", "ignored"},
		{"META"},
	})

	inputs, err := ReadXLSXBytes(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "META"}, inputs)
}

func TestReadXLSX_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.xlsx")
	require.NoError(t, os.WriteFile(path, buildXLSX(t, [][]string{{"THALES"}}), 0o644))

	inputs, err := ReadXLSX(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"THALES"}, inputs)
}

func TestReadInputs_DispatchByExtension(t *testing.T) {
	csvPath := writeTempFile(t, "in.csv", "APPLE\n")
	inputs, err := ReadInputs(csvPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE"}, inputs)

	_, err = ReadInputs(writeTempFile(t, "in.pdf", "x"))
	assert.Error(t, err)
}

func TestReadCSVBytes(t *testing.T) {
	inputs, err := ReadCSVBytes([]byte("APPLE\nMETA\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "META"}, inputs)
}
