// Package export writes transaction lists as CSV for use outside the app.
package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/dhanflow/dhanflow/internal/model"
)

// csvRow is the exported column layout. gocsv writes through encoding/csv,
// so fields containing delimiters or quotes are escaped properly.
type csvRow struct {
	Date     string `csv:"Date"`
	Title    string `csv:"Title"`
	Type     string `csv:"Type"`
	Category string `csv:"Category"`
	Amount   string `csv:"Amount"`
	Notes    string `csv:"Notes"`
}

// Filename returns the export filename stamped with the export date.
func Filename(now time.Time) string {
	return fmt.Sprintf("dhanflow_export_%s.csv", now.Format(model.DateLayout))
}

// WriteCSV writes one row per transaction, in the order given.
func WriteCSV(w io.Writer, txs []model.Transaction) error {
	rows := make([]csvRow, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, csvRow{
			Date:     t.Date,
			Title:    t.Title,
			Type:     string(t.Type),
			Category: string(t.Category),
			Amount:   t.Amount.String(),
			Notes:    t.Notes,
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// WriteFile writes the CSV export to path.
func WriteFile(path string, txs []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, txs); err != nil {
		return err
	}
	return f.Sync()
}
