// Package export serializes classification results for download.
package export

import (
	"io"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/leadpilot/sector-cli/internal/model"
)

var headers = []string{
	"Entrée",
	"Nom Officiel",
	"Secteur",
	"Détail",
	"Source",
	"Score",
	"Adresse",
	"Région",
	"Effectif",
	"Lien",
	"Concurrent",
}

// WriteXLSX writes results as a single-sheet workbook with a French header
// row, one result per row, in input order.
func WriteXLSX(w io.Writer, results []model.ClassificationResult) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Résultats")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	head := sheet.AddRow()
	for _, h := range headers {
		head.AddCell().SetString(h)
	}

	for _, r := range results {
		row := sheet.AddRow()
		competitor := "Non"
		if r.IsCompetitor {
			competitor = "Oui"
		}
		for _, v := range []string{
			r.Input,
			r.OfficialName,
			r.Sector,
			r.Detail,
			string(r.Source),
			r.Confidence,
			r.Address,
			r.Region,
			r.Headcount,
			r.Permalink,
			competitor,
		} {
			row.AddCell().SetString(v)
		}
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "export: write workbook")
	}
	return nil
}

// FileName returns a collision-free download name for an export.
func FileName() string {
	return "resultats-" + uuid.NewString() + ".xlsx"
}
