package engine

import (
	"fmt"

	"github.com/ukaji3/permuta-go/pkg/permuta/models"
)

// Precedence selects which override table wins when several set the
// same attribute for the same combination. Later application always
// overwrites earlier; the modes differ only in iteration order.
type Precedence string

const (
	// DesignatorOrder applies override tables in axis-declaration
	// order (the column order of the "ID" table).
	DesignatorOrder Precedence = "designator_order"
	// SheetPriority applies override tables in the order they were
	// discovered in the input.
	SheetPriority Precedence = "sheet_priority"
)

// ParsePrecedence converts a configuration string into a Precedence.
func ParsePrecedence(s string) (Precedence, error) {
	switch Precedence(s) {
	case DesignatorOrder, SheetPriority:
		return Precedence(s), nil
	}
	return "", fmt.Errorf("invalid precedence %q (must be %s or %s)", s, DesignatorOrder, SheetPriority)
}

// Merge builds the flat record for one combination. It seeds the record
// with the "ID" key, layers every shared default, then applies override
// fields under the given precedence mode. Applying is always
// insert-or-overwrite; attributes are never removed. A combination with
// no matching override rows simply lacks the attributes those rows would
// have supplied. An unrecognized mode, including the zero value, behaves
// as DesignatorOrder.
func (s *ProductSpec) Merge(c Combination, mode Precedence) *models.Record {
	rec := models.NewRecord()
	rec.Set("ID", c.ID)

	// Shared defaults do not shield the identifier: a default literally
	// named "ID" overwrites it.
	for _, f := range s.Defaults {
		rec.Set(f.Name, f.Value)
	}

	switch mode {
	case SheetPriority:
		s.applySheetPriority(rec, c)
	case DesignatorOrder:
		s.applyDesignatorOrder(rec, c)
	default:
		// The zero value and unrecognized strings get the default
		// mode, not an arbitrary subset of overrides. ParsePrecedence
		// rejects them before configuration reaches this point.
		s.applyDesignatorOrder(rec, c)
	}

	return rec
}

// applyDesignatorOrder applies override tables in axis-declaration
// order, looking each table up by its axis name.
func (s *ProductSpec) applyDesignatorOrder(rec *models.Record, c Combination) {
	for i, ax := range s.Axes {
		ot := s.OverrideFor(ax.Name)
		if ot == nil {
			continue
		}
		applyMatches(rec, ot, c.Values[i])
	}
}

// applySheetPriority applies override tables in discovery order,
// skipping tables whose key column names no declared axis.
func (s *ProductSpec) applySheetPriority(rec *models.Record, c Combination) {
	for i := range s.Overrides {
		ot := &s.Overrides[i]
		pos := s.AxisIndex(ot.KeyColumn)
		if pos < 0 {
			continue
		}
		applyMatches(rec, ot, c.Values[pos])
	}
}

// applyMatches applies every row whose key equals value (exact string
// comparison, no trimming or case folding), in row order. A later
// matching row overwrites an earlier one for fields both set.
func applyMatches(rec *models.Record, ot *OverrideTable, value string) {
	for _, row := range ot.Rows {
		if row.Key != value {
			continue
		}
		for _, f := range row.Fields {
			rec.Set(f.Name, f.Value)
		}
	}
}
