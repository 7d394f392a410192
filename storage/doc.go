// Package storage implements the polymorphic index→value backing store
// for a dynamic array: a single tagged-variant type with three internal
// shapes (Empty, Dense, Hash) that transitions between them in response
// to mutation patterns, while keeping every read/has/iteration result
// identical regardless of which shape is currently in effect.
//
// There is no interface per shape and no virtual dispatch: each method
// is a single tag switch over an unexported shape enum, matching the
// teacher's single-struct-per-concern style (compare matrix.Dense, which
// is one concrete type rather than one interface implementation among
// several).
package storage
