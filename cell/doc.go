// Package cell defines the smallest unit the storage engine manipulates:
// a holder for a boxed runtime value that additionally encodes the hole
// state ("no value stored here").
//
// A hole is distinct from a Cell holding the boxed undefined value:
// iteration, Has, and sort all treat them differently. Cell itself never
// inspects the boxed value beyond the minimal Box contract it requires
// from callers (numeric/string coercion, property lookup) — everything
// else about the value is opaque to this package.
package cell
