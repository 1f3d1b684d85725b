package models

// Table is a rectangular named table: ordered column headers plus rows
// of cells aligned positionally with the headers. Rows shorter than the
// header list are treated as blank-padded on the right.
type Table struct {
	// Name is the source sheet name.
	Name string
	// Headers are the column headers in column order.
	Headers []string
	// Rows are the data rows, each aligned with Headers.
	Rows [][]Cell
}

// Cell returns the cell at the given row and column indexes (0-based).
// Out-of-range positions return a blank cell.
func (t Table) Cell(row, col int) Cell {
	if row < 0 || row >= len(t.Rows) {
		return Blank()
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return Blank()
	}
	return r[col]
}

// ColumnCount returns the number of columns.
func (t Table) ColumnCount() int {
	return len(t.Headers)
}

// RowCount returns the number of data rows.
func (t Table) RowCount() int {
	return len(t.Rows)
}
