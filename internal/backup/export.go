// Package backup reads and writes the portable copies of the record list:
// the JSON backup used for export/import and the per-month CSV and XLSX
// sheets.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/manav03panchal/milkledger/internal/model"
)

// FileName returns the default backup file name for a day.
func FileName(now time.Time) string {
	return fmt.Sprintf("milk-records-backup-%s.json", model.FormatDate(now))
}

// Export writes the records as a JSON array indented with two spaces.
func Export(w io.Writer, records []model.DailyRecord) error {
	if records == nil {
		records = []model.DailyRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
