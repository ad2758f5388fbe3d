package grid

import (
	"encoding/csv"
	"io"

	"github.com/geofield/borelog/internal/client/models"
)

// ExportCSV writes the given records in column order as RFC 4180 CSV: fields
// containing commas or quotes are quoted with embedded quotes doubled, so the
// output round-trips through any standard CSV parser. The caller passes the
// filtered-and-sorted view, not just the current page.
func ExportCSV(w io.Writer, columns []string, records []models.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return err
	}
	row := make([]string, len(columns))
	for _, r := range records {
		for i, col := range columns {
			row[i] = r.Get(col)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
