// File: methods_sorton.go
// Role: SortOn, the property-path variant of Sort (spec.md §4.5's
// "sortOn"): lexicographic comparison over a tuple of named properties,
// each with its own Flags.
package sorter

import (
	"github.com/katalvlaran/dynarray/array"
	"github.com/katalvlaran/dynarray/cell"
)

// SortOn sorts a by the tuple of properties named in names, comparing
// lexicographically: names[0] decides, ties fall through to names[1],
// and so on. perFlags supplies each property's own Flags (NUMERIC,
// CASEINSENSITIVE, DESCENDING); when perFlags is shorter than names,
// the missing entries default to Flags(0). UNIQUESORT and
// RETURNINDEXEDARRAY are only honored from perFlags[0] — spec.md
// treats them as whole-operation modes, not per-property ones.
//
// Unlike plain Sort, an element is placed in the after-partition when
// its effective value is undefined OR null (GetProp has no meaningful
// tuple to compare for either). SortOn returns ErrPropertyNotFound if
// a name resolves on zero non-nullish effective elements — that name
// can never discriminate, so the whole call is rejected rather than
// silently comparing empty tuples.
func (s *Sorter) SortOn(a *array.Array, names []string, perFlags []Flags) (*Result, error) {
	if err := checkPropertyNamesResolve(a, names); err != nil {
		return nil, err
	}

	flagsFor := func(i int) Flags {
		if i < len(perFlags) {
			return perFlags[i]
		}
		return 0
	}
	// whole carries only the operation-wide bits (UNIQUESORT,
	// RETURNINDEXEDARRAY) through to sortCore. DESCENDING must NOT
	// survive here: cmp below already applies each property's own
	// DESCENDING bit via compareValues(flagsFor(i), ...), and sortCore's
	// compareValues(flags, cmp, ...) unconditionally re-applies
	// flags.Descending on top of cmp's result. Passing flagsFor(0)
	// through unstripped would double-invert whenever property 0 is
	// DESCENDING, corrupting every comparison regardless of which
	// property actually decided it.
	whole := flagsFor(0) &^ Descending

	cmp := Comparator(func(x, y cell.Box) int {
		for i, name := range names {
			xv := propOrUndefined(x, name)
			yv := propOrUndefined(y, name)
			if c := compareValues(flagsFor(i), nil, xv, yv); c != 0 {
				return c
			}
		}
		return 0
	})

	return s.sortCore(a, whole, cmp, isUndefinedOrNull), nil
}

func isUndefinedOrNull(b cell.Box) bool { return b.IsUndefined() || b.IsNull() }

func propOrUndefined(b cell.Box, name string) cell.Box {
	if v, ok := b.GetProp(name); ok {
		return v
	}
	return array.Undefined
}

// checkPropertyNamesResolve enforces ErrPropertyNotFound: every name
// must resolve on at least one non-nullish effective element of a.
func checkPropertyNamesResolve(a *array.Array, names []string) error {
	elems := materialize(a)
	for _, name := range names {
		found := false
		for _, e := range elems {
			if e.isHole || e.value.IsUndefined() || e.value.IsNull() {
				continue
			}
			if _, ok := e.value.GetProp(name); ok {
				found = true
				break
			}
		}
		if !found {
			return ErrPropertyNotFound
		}
	}
	return nil
}
