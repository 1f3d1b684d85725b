// Package permuta generates every valid combination of a product's
// configurable attributes from a workbook specification, merging shared
// defaults and per-axis overrides into one flat record per combination.
package permuta

import "github.com/ukaji3/permuta-go/pkg/permuta/engine"

// Options configures generation behavior.
type Options struct {
	// Separator is placed between axis values when building a
	// combination's identifier. Any string, including empty.
	Separator string
	// Precedence selects the override conflict-resolution mode.
	Precedence engine.Precedence
}

// DefaultOptions returns the default generation options: a "-"
// separator and designator-order precedence.
func DefaultOptions() Options {
	return Options{
		Separator:  "-",
		Precedence: engine.DesignatorOrder,
	}
}
