// File: methods_access.go
// Role: indexed read/write/delete and length assignment — spec.md §4.3.
package array

import "github.com/katalvlaran/dynarray/cell"

// Get returns the value at i: this array's own stored value if present,
// else the prototype's contribution at the decimal string form of i,
// else the array's distinguished undefined. Get never depends on
// whether i < Length() for the prototype-contribution step (spec.md
// §4.3: "a prototype-visible index with i >= length is still
// visible").
func (a *Array) Get(i uint32) cell.Box {
	if i < a.length {
		if c := a.st.Get(i); !c.IsHole() {
			return c.Unwrap()
		}
	}
	if v, ok := a.snapshot().Lookup(CanonicalIndexString(float64(i))); ok {
		return v
	}
	return a.undefined
}

// Has reports whether i resolves to a value, either in this array's own
// storage or via prototype contribution.
func (a *Array) Has(i uint32) bool {
	if a.st.Has(i) {
		return true
	}
	_, ok := a.snapshot().Lookup(CanonicalIndexString(float64(i)))
	return ok
}

// Set stores v at i and, if i >= Length(), grows Length() to i+1.
func (a *Array) Set(i uint32, v cell.Box) {
	a.st.Set(i, v)
	if i >= a.length {
		a.length = i + 1
	}
}

// Delete removes this array's own stored value at i, if any. It never
// touches the prototype: an index only visible via prototype
// contribution is untouched by Delete and returns false (spec.md §4.3
// "leaves visibility intact").
func (a *Array) Delete(i uint32) bool {
	return a.st.Delete(i)
}

// SetLength assigns a new length. Shrinking truncates storage at the
// new boundary; growing never materializes cells.
func (a *Array) SetLength(n uint32) {
	if n < a.length {
		a.st.Truncate(n)
	}
	a.length = n
}

// SetChecked is the signed-index "checked" entry point: it rejects a
// negative i with ErrArgumentOutOfRange instead of silently routing it
// elsewhere (spec.md §4.3). Unchecked callers should use CoerceSignedIndex
// themselves and call Set.
func (a *Array) SetChecked(i int64, v cell.Box) error {
	if i < 0 {
		return ErrArgumentOutOfRange
	}
	if i > int64(maxIndex) {
		// Not this array's concern: route-worthy, not an index.
		return nil
	}
	a.Set(uint32(i), v)
	return nil
}

// DeleteChecked mirrors SetChecked's negative-index rejection for
// Delete.
func (a *Array) DeleteChecked(i int64) (bool, error) {
	if i < 0 {
		return false, ErrArgumentOutOfRange
	}
	if i > int64(maxIndex) {
		return false, nil
	}
	return a.Delete(uint32(i)), nil
}
