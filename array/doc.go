// Package array implements ArrayObject: the public, ECMAScript-3/AS3
// style dynamic indexed array value built on top of package storage.
//
// Array owns a length, a *storage.Storage, and a reference to a
// governing proto.Source. All observable invariants described in
// spec.md §8 (length bound, no-sentinel, storage-length agreement,
// shape transparency, prototype non-ownership, clone independence,
// hole/undefined distinction) are enforced here, at the boundary
// between the caller and the storage engine — storage itself enforces
// none of them beyond its own shape invariants.
package array
