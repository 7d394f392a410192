package sorter

import "github.com/katalvlaran/dynarray/cell"

// Comparator is a caller-supplied ordering function: negative if a
// sorts before b, zero if equal, positive if a sorts after b. When a
// Comparator is given to Sort, NUMERIC and CASEINSENSITIVE are ignored;
// DESCENDING still inverts the Comparator's result (spec.md §4.5).
type Comparator func(a, b cell.Box) int

// IndexBoxer boxes a raw u32 index as a cell.Box, so Sort/SortOn can
// build the RETURNINDEXEDARRAY result array. The boxed-value type is
// out of this module's scope (spec.md §1); the caller's Value system
// supplies the boxing.
type IndexBoxer func(i uint32) cell.Box

// Option configures a Sorter at construction.
type Option func(*Sorter)

// Sorter is the sort/sortOn engine of spec.md §4.5. The zero value is
// not ready for use; construct with New.
type Sorter struct {
	boxer IndexBoxer
}

// New constructs a Sorter. boxer is required whenever a caller might
// request RETURNINDEXEDARRAY; Sort/SortOn panic if that mode is
// requested with a nil boxer, since there would be no way to produce
// the result's index values.
func New(boxer IndexBoxer, opts ...Option) *Sorter {
	s := &Sorter{boxer: boxer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
