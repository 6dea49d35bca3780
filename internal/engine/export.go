package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// DefaultDateLayout renders dates the way a US-English browser shows them.
const DefaultDateLayout = "1/2/2006"

var exportHeader = []string{"Date", "Description", "Category", "Type", "Amount"}

// ExportFilename names an export produced on day.
func ExportFilename(day time.Time) string {
	return fmt.Sprintf("moneypal_export_%s.csv", day.Format(time.DateOnly))
}

// WriteCSV writes txs as a CSV document with a header row. Fields containing
// commas, quotes or newlines are quoted with embedded quotes doubled.
func WriteCSV(w io.Writer, txs []Transaction, dateLayout string) error {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, t := range txs {
		record := []string{
			t.Date.Format(dateLayout),
			t.Description,
			t.Category,
			string(t.Kind),
			t.Amount.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
