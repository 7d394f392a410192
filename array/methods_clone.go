// File: methods_clone.go
// Role: cloning and the storage/prototype accessors the sorter package
// needs to materialize and commit sort results.
//
// Determinism: Clone carries over the undefined identity, the prototype
// reference and the storage thresholds so algorithms that branch on them
// behave identically on the clone. A storage TransitionObserver is not
// carried over: the clone's storage notifies no observer.
package array

import (
	"github.com/katalvlaran/dynarray/cell"
	"github.com/katalvlaran/dynarray/proto"
	"github.com/katalvlaran/dynarray/storage"
)

// Clone returns a new Array whose storage is an independent copy of the
// source's: mutating the clone's slots (Set, Delete, SetLength, Push*)
// never affects the source and vice versa. Value references stored in
// shared slots remain jointly owned (spec.md §5 "Clone independence").
func (a *Array) Clone() *Array {
	return &Array{
		length:      a.length,
		st:          a.st.Clone(),
		protoSource: a.protoSource,
		undefined:   a.undefined,
		storageOpts: a.storageOpts,
	}
}

// ForEachPresent visits every index this array itself stores a value
// at, in ascending order. It does not consult the prototype; use Get
// for prototype-aware reads.
func (a *Array) ForEachPresent(f func(i uint32, v cell.Box)) {
	a.st.ForEachPresent(f)
}

// Storage exposes the underlying storage engine so package sorter can
// read effective elements and, on a successful in-place sort, swap in a
// freshly built Dense storage via ReplaceStorage. No other package
// should depend on this accessor; it exists for the one collaborator
// spec.md §2 names as reading ArrayObject's storage directly.
func (a *Array) Storage() *storage.Storage {
	return a.st
}

// ReplaceStorage atomically swaps this array's storage engine. Used
// exclusively by the sort commit step, after the new storage has been
// built in full — spec.md §7's "allocation occurs first, then pointers
// are swapped".
func (a *Array) ReplaceStorage(s *storage.Storage) {
	a.st = s
}

// Snapshot returns the single proto.Snapshot a multi-step operation
// (like sort) should use for every prototype consultation it makes.
func (a *Array) Snapshot() proto.Snapshot {
	return a.snapshot()
}

// Undefined returns this array's distinguished undefined identity.
func (a *Array) Undefined() cell.Box {
	return a.undefined
}
