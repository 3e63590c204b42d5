// ABOUTME: CSV export for the measurement log.
// ABOUTME: Fixed header, rows written verbatim in (date, time) order.
package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the fixed column order of an export file.
var csvHeader = []string{"date", "time", "systolic", "diastolic", "comment"}

// ExportCSV writes every measurement to w as CSV, ordered by (date, time).
// Rows are written verbatim; no transformation is applied.
func (d *DB) ExportCSV(w io.Writer) error {
	records, err := d.ListAll()
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	for _, m := range records {
		row := []string{
			m.Date,
			m.Time,
			strconv.Itoa(m.Systolic),
			strconv.Itoa(m.Diastolic),
			m.Comment,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}
