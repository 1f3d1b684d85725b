// Package engine implements the combination engine: classifying named
// tables into axes, shared defaults, and override tables, generating the
// cartesian product of axis values, and merging attributes onto each
// combination under a selectable precedence mode.
package engine

import (
	"fmt"

	"github.com/ukaji3/permuta-go/pkg/permuta/models"
)

const (
	// AxisTableName is the required table holding the option axes.
	AxisTableName = "ID"
	// DefaultsTableName is the optional table holding shared defaults.
	DefaultsTableName = "GENERAL"
)

// Axis is one option dimension: a name and its allowed values in
// declaration order.
type Axis struct {
	Name   string
	Values []string
}

// Field is one attribute name/value pair.
type Field struct {
	Name  string
	Value string
}

// OverrideRow maps one key-column value to the attributes it supplies.
// Fields keep column order; blank cells are already dropped.
type OverrideRow struct {
	Key    string
	Fields []Field
}

// OverrideTable supplies attributes conditional on one axis's value.
// KeyColumn is the header of the source table's first column.
type OverrideTable struct {
	KeyColumn string
	Rows      []OverrideRow
}

// ProductSpec is the classified form of one generation request: the
// ordered axes, the shared defaults, and the override tables in
// discovery order. It is immutable for the duration of a run.
type ProductSpec struct {
	Axes      []Axis
	Defaults  []Field
	Overrides []OverrideTable
}

// Classify partitions an ordered collection of named tables into a
// ProductSpec. The table named "ID" (exact, case-sensitive) supplies the
// axes and its absence is the single fatal failure. The table named
// "GENERAL", if present, supplies shared defaults from its first data
// row only. Every remaining table with at least one column becomes an
// override table keyed by its first column's header; zero-column tables
// are skipped. When two tables share a key-column header the later table
// replaces the earlier one wholly, keeping the earlier one's position in
// discovery order.
func Classify(tables []models.Table) (*ProductSpec, error) {
	spec := &ProductSpec{}
	seen := make(map[string]int) // key column -> index in spec.Overrides

	foundAxes := false
	for _, t := range tables {
		switch t.Name {
		case AxisTableName:
			spec.Axes = classifyAxes(t)
			foundAxes = true
		case DefaultsTableName:
			spec.Defaults = classifyDefaults(t)
		default:
			if t.ColumnCount() == 0 {
				continue
			}
			ot := classifyOverrides(t)
			if i, ok := seen[ot.KeyColumn]; ok {
				spec.Overrides[i] = ot
				continue
			}
			seen[ot.KeyColumn] = len(spec.Overrides)
			spec.Overrides = append(spec.Overrides, ot)
		}
	}

	if !foundAxes {
		return nil, fmt.Errorf("classify %d tables: %w", len(tables), ErrMissingAxisTable)
	}
	return spec, nil
}

func classifyAxes(t models.Table) []Axis {
	axes := make([]Axis, 0, len(t.Headers))
	for col, name := range t.Headers {
		ax := Axis{Name: name}
		for row := range t.Rows {
			c := t.Cell(row, col)
			if c.IsBlank() {
				continue
			}
			ax.Values = append(ax.Values, c.Value)
		}
		axes = append(axes, ax)
	}
	return axes
}

// classifyDefaults uses only the first data row; columns blank in that
// row contribute nothing rather than an empty string.
func classifyDefaults(t models.Table) []Field {
	if t.RowCount() == 0 {
		return nil
	}
	var defaults []Field
	for col, name := range t.Headers {
		c := t.Cell(0, col)
		if c.IsBlank() {
			continue
		}
		defaults = append(defaults, Field{Name: name, Value: c.Value})
	}
	return defaults
}

// classifyOverrides keeps every row, including rows with a blank key
// (they can only ever match an axis value equal to the empty string,
// which the axis table cannot produce) and rows sharing a key with an
// earlier row (the merge engine applies them in row order).
func classifyOverrides(t models.Table) OverrideTable {
	ot := OverrideTable{KeyColumn: t.Headers[0]}
	for row := range t.Rows {
		or := OverrideRow{Key: t.Cell(row, 0).Value}
		for col := 1; col < len(t.Headers); col++ {
			c := t.Cell(row, col)
			if c.IsBlank() {
				continue
			}
			or.Fields = append(or.Fields, Field{Name: t.Headers[col], Value: c.Value})
		}
		ot.Rows = append(ot.Rows, or)
	}
	return ot
}

// AxisIndex returns the position of the named axis, or -1.
func (s *ProductSpec) AxisIndex(name string) int {
	for i, ax := range s.Axes {
		if ax.Name == name {
			return i
		}
	}
	return -1
}

// OverrideFor returns the override table keyed by the given axis name,
// or nil if none was discovered.
func (s *ProductSpec) OverrideFor(name string) *OverrideTable {
	for i := range s.Overrides {
		if s.Overrides[i].KeyColumn == name {
			return &s.Overrides[i]
		}
	}
	return nil
}
