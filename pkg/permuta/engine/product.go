package engine

import (
	"iter"
	"math"
	"slices"
	"strings"
)

// Combination is one cartesian-product tuple: one value per axis in axis
// order, plus the identifier derived from them. Identifiers are not
// guaranteed unique; that is the caller's concern.
type Combination struct {
	ID     string
	Values []string
}

// Count returns the number of combinations the spec produces: the
// product of axis cardinalities, saturating at math.MaxInt64. Any axis
// with zero values makes the count zero.
func (s *ProductSpec) Count() int64 {
	n := int64(1)
	for _, ax := range s.Axes {
		m := int64(len(ax.Values))
		if m == 0 {
			return 0
		}
		if n > math.MaxInt64/m {
			return math.MaxInt64
		}
		n *= m
	}
	return n
}

// EmptyAxes returns the names of axes with no values. A non-empty result
// means Combinations yields nothing.
func (s *ProductSpec) EmptyAxes() []string {
	var names []string
	for _, ax := range s.Axes {
		if len(ax.Values) == 0 {
			names = append(names, ax.Name)
		}
	}
	return names
}

// Combinations returns the cartesian product of axis values as a lazy
// sequence, with the last axis varying fastest. Each combination's
// identifier joins its values with sep, in axis order. The sequence is
// deterministic: the same spec and separator always yield the same
// combinations in the same order.
func (s *ProductSpec) Combinations(sep string) iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		for _, ax := range s.Axes {
			if len(ax.Values) == 0 {
				return
			}
		}

		n := len(s.Axes)
		idx := make([]int, n)
		vals := make([]string, n)
		for {
			for i, ax := range s.Axes {
				vals[i] = ax.Values[idx[i]]
			}
			tuple := slices.Clone(vals)
			if !yield(Combination{ID: strings.Join(tuple, sep), Values: tuple}) {
				return
			}

			// Advance the odometer, last axis fastest.
			i := n - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(s.Axes[i].Values) {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
