package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ukaji3/permuta-go/pkg/permuta/models"
)

// Columns returns the union of keys across all records, in the order a
// key is first seen scanning records front to back. This is the column
// set for tabular export; records missing a key render an empty cell.
func Columns(records []*models.Record) []string {
	var cols []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, k := range rec.Keys() {
			if seen[k] {
				continue
			}
			seen[k] = true
			cols = append(cols, k)
		}
	}
	return cols
}

// ToCSV serializes records as a delimited table: a header row holding
// Columns(records), followed by one row per record with empty cells for
// missing keys.
func ToCSV(records []*models.Record) ([]byte, error) {
	cols := Columns(records)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(cols); err != nil {
		return nil, err
	}

	row := make([]string, len(cols))
	for _, rec := range records {
		for i, col := range cols {
			v, _ := rec.Get(col)
			row[i] = v
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
