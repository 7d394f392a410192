// File: methods_read.go
// Role: non-mutating storage access — Get, Has, iteration.
//
// Complexity: Get/Has are O(1) expected in all three shapes.
// ForEachPresent is O(live count); Hash iteration pays one O(k log k)
// sort of its live keys to honor the ascending-order contract.
package storage

import (
	"sort"

	"github.com/katalvlaran/dynarray/cell"
)

// Get returns the stored cell at i, or a hole if nothing is stored
// there. Get never consults a prototype — that is the caller's
// responsibility (spec.md §4.2).
func (s *Storage) Get(i uint32) cell.Cell {
	switch s.shape {
	case ShapeDense:
		if int(i) < len(s.cells) {
			return s.cells[i]
		}
		return cell.Hole()
	case ShapeHash:
		if v, ok := s.hash[i]; ok {
			return cell.Of(v)
		}
		return cell.Hole()
	default: // ShapeEmpty
		return cell.Hole()
	}
}

// Has reports whether this storage holds a value at i.
func (s *Storage) Has(i uint32) bool {
	return !s.Get(i).IsHole()
}

// ForEachPresent visits every stored (index, value) pair in ascending
// index order. Complexity: O(live count) for Dense/Empty, O(k log k)
// for Hash.
func (s *Storage) ForEachPresent(f func(i uint32, v cell.Box)) {
	switch s.shape {
	case ShapeDense:
		for i, c := range s.cells {
			if !c.IsHole() {
				f(uint32(i), c.Unwrap())
			}
		}
	case ShapeHash:
		keys := make([]uint32, 0, len(s.hash))
		for k := range s.hash {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, k := range keys {
			f(k, s.hash[k])
		}
	default: // ShapeEmpty
		return
	}
}

// denseLen returns the current dense prefix bound (len(cells)), or 0
// when the storage is not Dense. Nothing in this package or its tests
// calls it.
func (s *Storage) denseLen() int {
	if s.shape == ShapeDense {
		return len(s.cells)
	}
	return 0
}

// maxHashKey returns the largest key currently stored in the hash map
// and whether the map is non-empty.
func (s *Storage) maxHashKey() (uint32, bool) {
	var max uint32
	found := false
	for k := range s.hash {
		if !found || k > max {
			max = k
			found = true
		}
	}
	return max, found
}
