// File: methods_sort.go
// Role: effective-element materialization, partitioning, comparison,
// and the plain Sort/SortWithFlags/SortWithComparator entry points.
package sorter

import (
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/dynarray/array"
	"github.com/katalvlaran/dynarray/cell"
	"github.com/katalvlaran/dynarray/proto"
	"github.com/katalvlaran/dynarray/storage"
)

// sizeCutoff is spec.md §4.5's "when length > 2^31 the sort is a no-op".
const sizeCutoff = uint64(1) << 31

// Result is the outcome of a Sort/SortOn call.
type Result struct {
	// Array holds the result array: the same *array.Array, mutated in
	// place, for a plain in-place sort or a no-op; a freshly built
	// index array when RETURNINDEXEDARRAY was requested; the original,
	// untouched array when UniqueSortFailed is true.
	Array *array.Array

	// UniqueSortFailed is true iff UNIQUESORT found adjacent equal
	// effective values; the source array is left unchanged (spec.md's
	// "the return value is the numeric zero" — the numeric-zero value
	// itself is the caller's concern, since this module never
	// constructs a boxed zero of an opaque Value type).
	UniqueSortFailed bool
}

type element struct {
	index  uint32
	value  cell.Box
	isHole bool
}

// effectiveAt resolves the effective element at index i: this array's
// own stored value, else the prototype's contribution, else a hole.
func effectiveAt(a *array.Array, snap proto.Snapshot, i uint32) (cell.Box, bool) {
	if c := a.Storage().Get(i); !c.IsHole() {
		return c.Unwrap(), true
	}
	if v, ok := snap.Lookup(array.CanonicalIndexString(float64(i))); ok {
		return v, true
	}
	return nil, false
}

// materialize builds the full effective-element scratch buffer before
// any user comparator runs, so a comparator that mutates a mid-sort is
// isolated from the buffer already captured (spec.md §5).
func materialize(a *array.Array) []element {
	snap := a.Snapshot()
	length := a.Length()
	elems := make([]element, length)
	for i := uint32(0); i < length; i++ {
		if v, ok := effectiveAt(a, snap, i); ok {
			elems[i] = element{index: i, value: v}
		} else {
			elems[i] = element{index: i, isHole: true}
		}
	}
	return elems
}

// partition splits elems into the non-after-partition values and the
// after-partition (isAfter decides which, so plain Sort and SortOn can
// share this with different classification rules) — holes are always
// their own, third partition.
func partition(elems []element, isAfter func(cell.Box) bool) (values, after, holes []element) {
	for _, e := range elems {
		switch {
		case e.isHole:
			holes = append(holes, e)
		case isAfter(e.value):
			after = append(after, e)
		default:
			values = append(values, e)
		}
	}
	return values, after, holes
}

// compareNumeric implements spec.md's NaN rule: NaN compares greater
// than every non-NaN value and equal to NaN.
func compareNumeric(x, y float64) int {
	xNaN, yNaN := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return 1
	case yNaN:
		return -1
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// compareValues is the default/custom comparator dispatch of spec.md
// §4.5's "Comparator selection", with DESCENDING applied uniformly
// after either path.
func compareValues(flags Flags, cmp Comparator, x, y cell.Box) int {
	var c int
	switch {
	case cmp != nil:
		c = cmp(x, y)
	case flags.has(Numeric):
		c = compareNumeric(x.ToNumber(), y.ToNumber())
	default:
		xs, ys := x.ToString(), y.ToString()
		if flags.has(CaseInsensitive) {
			xs, ys = x.ToFoldedString(), y.ToFoldedString()
		}
		c = strings.Compare(xs, ys)
	}
	if flags.has(Descending) {
		c = -c
	}
	return c
}

func sortValues(values []element, flags Flags, cmp Comparator) {
	sort.SliceStable(values, func(i, j int) bool {
		return compareValues(flags, cmp, values[i].value, values[j].value) < 0
	})
}

func hasAdjacentDuplicate(values []element, flags Flags, cmp Comparator) bool {
	for i := 1; i < len(values); i++ {
		if compareValues(flags, cmp, values[i-1].value, values[i].value) == 0 {
			return true
		}
	}
	return false
}

// SortWithFlags sorts a using the built-in comparator selected by
// flags (NUMERIC, or ordinal/case-folded string comparison).
func (s *Sorter) SortWithFlags(a *array.Array, flags Flags) *Result {
	return s.sortCore(a, flags, nil, isUndefinedOnly)
}

// SortWithComparator sorts a using cmp; NUMERIC and CASEINSENSITIVE in
// flags are ignored, DESCENDING still inverts cmp's result.
func (s *Sorter) SortWithComparator(a *array.Array, cmp Comparator, flags Flags) *Result {
	return s.sortCore(a, flags, cmp, isUndefinedOnly)
}

func isUndefinedOnly(b cell.Box) bool { return b.IsUndefined() }

// Sort is the dynamic entry point mirroring the runtime's
// Array.prototype.sort(arg): arg may be absent (nil), a Comparator
// function, or a flags number. Any other type fails with
// ErrTypeCoercionFailed (spec.md's TYPE_COERCION_FAILED).
func (s *Sorter) Sort(a *array.Array, arg interface{}) (*Result, error) {
	switch v := arg.(type) {
	case nil:
		return s.SortWithFlags(a, 0), nil
	case Comparator:
		return s.SortWithComparator(a, v, 0), nil
	case Flags:
		return s.SortWithFlags(a, v), nil
	case int:
		return s.SortWithFlags(a, Flags(v)), nil
	case uint32:
		return s.SortWithFlags(a, Flags(v)), nil
	default:
		return nil, ErrTypeCoercionFailed
	}
}

func (s *Sorter) sortCore(a *array.Array, flags Flags, cmp Comparator, isAfter func(cell.Box) bool) *Result {
	if uint64(a.Length()) > sizeCutoff {
		return &Result{Array: a}
	}

	elems := materialize(a)
	values, after, holes := partition(elems, isAfter)
	sortValues(values, flags, cmp)

	if flags.has(UniqueSort) && hasAdjacentDuplicate(values, flags, cmp) {
		return &Result{Array: a, UniqueSortFailed: true}
	}

	if flags.has(ReturnIndexedArray) {
		ordered := make([]element, 0, len(elems))
		ordered = append(ordered, values...)
		ordered = append(ordered, after...)
		ordered = append(ordered, holes...)
		return &Result{Array: s.buildIndexArray(a, ordered)}
	}

	commit(a, values, after)
	return &Result{Array: a}
}

// commit builds a fresh Dense-friendly storage holding the
// value-partition followed by the after-partition (undefined, or
// undefined+null for sortOn), then swaps it into a with one pointer
// assignment — the array only ever observes either its pre-sort state
// or this fully-built post-sort state, never an intermediate one
// (spec.md §7).
func commit(a *array.Array, values, after []element) {
	vs := make([]cell.Box, 0, len(values)+len(after))
	for _, e := range values {
		vs = append(vs, e.value)
	}
	for _, e := range after {
		vs = append(vs, e.value)
	}
	newStorage := storage.New()
	if len(vs) > 0 {
		newStorage.SetMany(0, vs)
	}
	a.ReplaceStorage(newStorage)
}

// buildIndexArray constructs the RETURNINDEXEDARRAY result: a fresh
// dense array of the original indices in sorted order. The source
// array itself is left untouched.
func (s *Sorter) buildIndexArray(a *array.Array, ordered []element) *array.Array {
	if s.boxer == nil {
		panic("sorter: RETURNINDEXEDARRAY requested without an IndexBoxer")
	}
	boxed := make([]cell.Box, len(ordered))
	for i, e := range ordered {
		boxed[i] = s.boxer(e.index)
	}
	return array.NewWithValues(boxed, array.WithUndefined(a.Undefined()), array.WithPrototype(proto.None))
}
