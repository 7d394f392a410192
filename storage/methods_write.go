// File: methods_write.go
// Role: mutation and the shape-transition policy (spec.md §4.2).
//
// Set/Delete/Truncate never change the logical length an ArrayObject
// reports; that bookkeeping belongs entirely to the array package. This
// file's only job is to keep get/has/iteration observably identical
// across shapes while choosing, internally, whichever shape is cheapest
// for the write pattern seen so far.
package storage

import "github.com/katalvlaran/dynarray/cell"

// Set stores v at index i, transitioning shape if the write pattern
// warrants it. Set never changes length.
func (s *Storage) Set(i uint32, v cell.Box) {
	switch s.shape {
	case ShapeEmpty:
		s.setEmpty(i, v)
	case ShapeDense:
		s.setDense(i, v)
	case ShapeHash:
		s.hash[i] = v
	}
}

// SetMany stores vs at contiguous indices starting at start. It is the
// bulk-write entry point used by Array.PushMany and Array.Unshift's
// fill step; unlike repeated Set calls, a Hash storage is eligible for
// a Hash→Dense rehash afterward (spec.md §4.2: "the reverse transition
// is never triggered by a single random write" — SetMany is the
// sanctioned bulk write that may trigger it).
func (s *Storage) SetMany(start uint32, vs []cell.Box) {
	for k, v := range vs {
		s.Set(start+uint32(k), v)
	}
	if s.shape == ShapeHash {
		s.maybeRehashToDense()
	}
}

func (s *Storage) setEmpty(i uint32, v cell.Box) {
	if i < s.thresholds.ThresholdSparseFirstWrite {
		s.cells = make([]cell.Cell, i+1)
		s.cells[i] = cell.Of(v)
		s.liveDense = 1
		old := s.shape
		s.shape = ShapeDense
		s.notify(old, ShapeDense)
		return
	}

	s.hash = map[uint32]cell.Box{i: v}
	old := s.shape
	s.shape = ShapeHash
	s.notify(old, ShapeHash)
}

func (s *Storage) setDense(i uint32, v cell.Box) {
	if int(i) < len(s.cells) {
		wasHole := s.cells[i].IsHole()
		s.cells[i] = cell.Of(v)
		if wasHole {
			s.liveDense++
		}
		s.maybeDenseHoleFractionTransition()
		return
	}

	growthHoles := i - uint32(len(s.cells))
	t := s.thresholds
	if growthHoles > t.MaxGrowHoles && growthHoles >= t.MaxGrowFactor*uint32(s.liveDense) {
		s.convertDenseToHashWith(i, v)
		return
	}

	newCells := make([]cell.Cell, i+1)
	copy(newCells, s.cells)
	newCells[i] = cell.Of(v)
	s.cells = newCells
	s.liveDense++
	s.maybeDenseHoleFractionTransition()
}

// maybeDenseHoleFractionTransition converts to Hash when the Dense
// cells vector has grown large and mostly-holey.
func (s *Storage) maybeDenseHoleFractionTransition() {
	if s.shape != ShapeDense {
		return
	}
	n := len(s.cells)
	if n < s.thresholds.MinDenseSizeForFractionCheck {
		return
	}
	holes := n - s.liveDense
	if float64(holes)/float64(n) > s.thresholds.DenseHoleFraction {
		s.convertDenseToHashPure()
	}
}

// convertDenseToHashPure migrates the current Dense contents to Hash
// with no additional entry.
func (s *Storage) convertDenseToHashPure() {
	h := make(map[uint32]cell.Box, s.liveDense)
	for idx, c := range s.cells {
		if !c.IsHole() {
			h[uint32(idx)] = c.Unwrap()
		}
	}
	old := s.shape
	s.cells = nil
	s.liveDense = 0
	s.hash = h
	s.shape = ShapeHash
	s.notify(old, ShapeHash)
}

// convertDenseToHashWith migrates the current Dense contents to Hash
// and additionally stores v at i — used when growing Dense to fit i
// would blow the growth-hole budget.
func (s *Storage) convertDenseToHashWith(i uint32, v cell.Box) {
	h := make(map[uint32]cell.Box, s.liveDense+1)
	for idx, c := range s.cells {
		if !c.IsHole() {
			h[uint32(idx)] = c.Unwrap()
		}
	}
	h[i] = v
	old := s.shape
	s.cells = nil
	s.liveDense = 0
	s.hash = h
	s.shape = ShapeHash
	s.notify(old, ShapeHash)
}

// maybeRehashToDense converts Hash to Dense when the live set is dense
// enough to be worth the contiguous representation. Only called from
// contexts spec.md §4.2 sanctions: Truncate and SetMany.
func (s *Storage) maybeRehashToDense() {
	if s.shape != ShapeHash {
		return
	}
	live := len(s.hash)
	if live < s.thresholds.RehashMinLiveCount {
		return
	}
	maxKey, ok := s.maxHashKey()
	if !ok {
		return
	}
	if uint64(maxKey) >= uint64(s.thresholds.RehashMaxKeyFactor)*uint64(live) {
		return
	}

	cells := make([]cell.Cell, maxKey+1)
	for k, v := range s.hash {
		cells[k] = cell.Of(v)
	}
	old := s.shape
	s.hash = nil
	s.cells = cells
	s.liveDense = live
	s.shape = ShapeDense
	s.notify(old, ShapeDense)
}

// Delete removes the stored value at i, if any, returning true iff a
// value was actually removed. Delete never changes length.
func (s *Storage) Delete(i uint32) bool {
	switch s.shape {
	case ShapeDense:
		if int(i) >= len(s.cells) || s.cells[i].IsHole() {
			return false
		}
		s.cells[i] = cell.Hole()
		s.liveDense--
		if int(i) == len(s.cells)-1 {
			s.trimTrailingHoles()
		}
		return true
	case ShapeHash:
		if _, ok := s.hash[i]; !ok {
			return false
		}
		delete(s.hash, i)
		return true
	default: // ShapeEmpty
		return false
	}
}

// trimTrailingHoles shrinks the Dense cells vector while its tail is a
// hole. Deleting the last element never grows the cells vector, and may
// shrink it arbitrarily far (spec.md §4.2: "never shrinks ... unless
// the hole is at the tail").
func (s *Storage) trimTrailingHoles() {
	n := len(s.cells)
	for n > 0 && s.cells[n-1].IsHole() {
		n--
	}
	s.cells = s.cells[:n]
}

// Truncate removes every stored index >= newLen.
func (s *Storage) Truncate(newLen uint32) {
	switch s.shape {
	case ShapeDense:
		if int(newLen) < len(s.cells) {
			s.cells = s.cells[:newLen]
			s.liveDense = 0
			for _, c := range s.cells {
				if !c.IsHole() {
					s.liveDense++
				}
			}
		}
	case ShapeHash:
		for k := range s.hash {
			if k >= newLen {
				delete(s.hash, k)
			}
		}
		s.maybeRehashToDense()
	default: // ShapeEmpty
		return
	}
}

// ShiftUp moves every present (index, value) pair to index+k, used by
// Array.Unshift. Entries that would land at or beyond Sentinel are
// discarded — they would leave the valid index range.
func (s *Storage) ShiftUp(k uint32) {
	if k == 0 {
		return
	}
	switch s.shape {
	case ShapeDense:
		newLen := uint64(len(s.cells)) + uint64(k)
		if newLen > uint64(Sentinel) {
			newLen = uint64(Sentinel)
		}
		newCells := make([]cell.Cell, newLen)
		for i, c := range s.cells {
			ni := uint64(i) + uint64(k)
			if ni >= uint64(Sentinel) {
				continue
			}
			newCells[ni] = c
		}
		s.cells = newCells
		s.liveDense = 0
		for _, c := range s.cells {
			if !c.IsHole() {
				s.liveDense++
			}
		}
	case ShapeHash:
		nh := make(map[uint32]cell.Box, len(s.hash))
		for idx, v := range s.hash {
			ni := uint64(idx) + uint64(k)
			if ni >= uint64(Sentinel) {
				continue
			}
			nh[uint32(ni)] = v
		}
		s.hash = nh
	default: // ShapeEmpty
		return
	}
}

// ShiftDown moves every present (index, value) pair to index-k, used by
// Array.Shift. Entries at index < k are discarded — they would leave
// the valid index range.
func (s *Storage) ShiftDown(k uint32) {
	if k == 0 {
		return
	}
	switch s.shape {
	case ShapeDense:
		if int(k) >= len(s.cells) {
			s.cells = nil
			s.liveDense = 0
			return
		}
		newCells := make([]cell.Cell, len(s.cells)-int(k))
		copy(newCells, s.cells[k:])
		s.cells = newCells
		s.liveDense = 0
		for _, c := range s.cells {
			if !c.IsHole() {
				s.liveDense++
			}
		}
	case ShapeHash:
		nh := make(map[uint32]cell.Box, len(s.hash))
		for idx, v := range s.hash {
			if idx < k {
				continue
			}
			nh[idx-k] = v
		}
		s.hash = nh
	default: // ShapeEmpty
		return
	}
}

// Clone returns an independent copy of s: same shape, same cell
// contents, no shared backing slice/map with the original. Used by
// Array.Clone (spec.md §5 "Clone independence").
func (s *Storage) Clone() *Storage {
	clone := &Storage{
		shape:      s.shape,
		thresholds: s.thresholds,
		liveDense:  s.liveDense,
	}
	if s.cells != nil {
		clone.cells = make([]cell.Cell, len(s.cells))
		copy(clone.cells, s.cells)
	}
	if s.hash != nil {
		clone.hash = make(map[uint32]cell.Box, len(s.hash))
		for k, v := range s.hash {
			clone.hash[k] = v
		}
	}
	return clone
}
