package proto

import "github.com/katalvlaran/dynarray/cell"

// Source is the process-scoped, externally-owned object that may supply
// index-shaped dynamic properties to every array sharing it. The core
// never holds an ownership edge to a Source: it is a back-reference only
// (spec.md §3 "ArrayObject"), and the core never mutates it (spec.md §8
// "Prototype non-ownership").
type Source interface {
	// Snapshot returns an immutable view of the Source valid for the
	// duration of a single public operation. Embedders that mutate the
	// Source concurrently with reads are responsible for serializing
	// that mutation with an external advisory lock (spec.md §5); this
	// package only guarantees that one Snapshot, once obtained, never
	// changes underneath the caller that obtained it.
	Snapshot() Snapshot
}

// Snapshot is a read-only view of a Source's index-shaped entries, valid
// for one public operation. All prototype consultation within a single
// ArrayObject or Sorter operation must go through a single Snapshot —
// never re-snapshot mid-operation — so that a comparator or getter that
// reenters the Source sees a consistent picture (spec.md §5).
type Snapshot interface {
	// Lookup returns the value the prototype contributes for the given
	// canonical decimal index string, if any. Names that are not valid
	// index strings are never passed here — the array/sorter packages
	// only ever call Lookup with the decimal form of a u32 index.
	Lookup(indexString string) (cell.Box, bool)
}

// None is a Source with no entries; useful as the default when an
// ArrayObject is constructed without an explicit prototype.
var None Source = noneSource{}

type noneSource struct{}

func (noneSource) Snapshot() Snapshot { return noneSnapshot{} }

type noneSnapshot struct{}

func (noneSnapshot) Lookup(string) (cell.Box, bool) { return nil, false }
