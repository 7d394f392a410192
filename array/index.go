// File: index.go
// Role: the single index-coercion funnel spec.md §4.3/§6/§9 calls for —
// every public entry point that accepts an index in one of u32, i32,
// f64, or string form normalizes through the functions in this file, so
// that no call site needs its own semantic branch for the type it
// happened to receive.
package array

import (
	"math"
	"strconv"

	"github.com/katalvlaran/dynarray/storage"
)

// maxIndex is the largest valid element index: Sentinel-1 (spec.md §3:
// 2^32-1 is reserved for length and is never a valid element index).
const maxIndex = storage.Sentinel - 1 // 2^32 - 2

// CoerceFloatIndex coerces a float64 to a valid u32 array index. ok is
// false for any value that is not an array index under spec.md §4.3:
// non-finite, fractional, negative, or >= 2^32-1 (the length sentinel
// itself is explicitly not an index — spec.md §9 Open Question (a) is
// resolved in favor of routing it out, same as any other out-of-range
// value).
func CoerceFloatIndex(f float64) (uint32, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	if f < 0 || f > float64(maxIndex) {
		return 0, false
	}
	return uint32(f), true
}

// CoerceSignedIndex coerces an i32 to a valid u32 array index. Negative
// values are never indices.
func CoerceSignedIndex(i int32) (uint32, bool) {
	if i < 0 {
		return 0, false
	}
	return uint32(i), true
}

// CoerceUint32Index validates a u32 as an array index — it only fails
// for the reserved sentinel value.
func CoerceUint32Index(i uint32) (uint32, bool) {
	if i == storage.Sentinel {
		return 0, false
	}
	return i, true
}

// CoerceStringIndex coerces a string to a valid u32 array index. The
// string must be the *canonical* decimal form of that index (no sign,
// no leading zeros other than the literal "0", no leading/trailing
// whitespace) — "007" is not index 7, it is the dynamic-property string
// key "007" (spec.md §6 "index-string normalization").
func CoerceStringIndex(s string) (uint32, bool) {
	if s == "" {
		return 0, false
	}
	if s == "0" {
		return 0, true
	}
	if s[0] < '1' || s[0] > '9' {
		return 0, false // leading zero, sign, or non-digit
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	if v > uint64(maxIndex) {
		return 0, false
	}
	return uint32(v), true
}

// CanonicalIndexString renders f the way the language's standard
// number-to-string formatting would, for use as the dynamic-property
// key when f does not coerce to an array index (spec.md §6). -0 and 0
// collapse to the same string, matching CoerceFloatIndex treating them
// as the same index.
func CanonicalIndexString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
