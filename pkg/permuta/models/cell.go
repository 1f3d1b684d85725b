// Package models defines the tabular data structures shared by the
// permuta parser, engine, and output layers.
package models

// Cell is a single table cell. A blank cell (absent or empty in the
// source workbook) is distinct from any present string value; all
// blank-detection goes through IsBlank rather than comparing against "".
type Cell struct {
	// Value is the cell content as a string.
	Value string
	// Valid is false for blank cells.
	Valid bool
}

// String returns a present cell holding s.
func String(s string) Cell {
	return Cell{Value: s, Valid: true}
}

// Blank returns a blank cell.
func Blank() Cell {
	return Cell{}
}

// IsBlank reports whether the cell is blank.
func (c Cell) IsBlank() bool {
	return !c.Valid
}
