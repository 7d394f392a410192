// File: methods_stack.go
// Role: push/pop/shift/unshift — spec.md §4.4.
package array

import "github.com/katalvlaran/dynarray/cell"

// PushOne appends v at Length() and returns the new length. Pushing at
// the maximum length (2^32-1) is a silent no-op, not an error.
func (a *Array) PushOne(v cell.Box) uint32 {
	if a.length == maxLength {
		return a.length
	}
	a.st.Set(a.length, v)
	a.length++
	return a.length
}

// maxLength is 2^32-1, the largest value Length() may ever take.
const maxLength = 1<<32 - 1

// PushMany appends vs starting at Length(), stopping before the write
// that would exceed maxLength, and returns the resulting length.
func (a *Array) PushMany(vs []cell.Box) uint32 {
	room := maxLength - a.length
	if uint64(len(vs)) > uint64(room) {
		vs = vs[:room]
	}
	if len(vs) == 0 {
		return a.length
	}
	a.st.SetMany(a.length, vs)
	a.length += uint32(len(vs))
	return a.length
}

// Pop removes and returns the value at Length()-1, or Undefined if the
// array is already empty. The removed slot's prototype contribution (if
// the array had a hole there) is what Pop returns, exactly as Get would
// resolve it before the removal.
func (a *Array) Pop() cell.Box {
	if a.length == 0 {
		return a.undefined
	}
	i := a.length - 1
	v := a.Get(i)
	a.st.Delete(i)
	a.length = i
	return v
}

// Shift removes and returns the value at index 0, or Undefined if the
// array is already empty, shifting every remaining stored index down by
// one.
func (a *Array) Shift() cell.Box {
	if a.length == 0 {
		return a.undefined
	}
	v := a.Get(0)
	a.st.ShiftDown(1)
	a.length--
	return v
}

// Unshift inserts vs at the front, shifting every existing stored index
// up by len(vs). If Length()+len(vs) would exceed maxLength, the result
// is clamped to maxLength and the excess tail of the (post-shift) array
// is discarded — spec.md §4.4's explicit overflow policy.
func (a *Array) Unshift(vs []cell.Box) uint32 {
	if len(vs) == 0 {
		return a.length
	}
	k := uint32(len(vs))
	newLen := uint64(a.length) + uint64(k)
	if newLen > maxLength {
		newLen = maxLength
	}
	a.st.ShiftUp(k)
	a.st.SetMany(0, vs)
	a.length = uint32(newLen)
	return a.length
}
