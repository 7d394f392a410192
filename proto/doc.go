// Package proto defines the narrow interface through which the array and
// sorter packages consult the governing prototype chain. The prototype
// object itself — its class machinery, its full dynamic-property table —
// is out of this module's scope (spec.md §1); this package only states
// what the core needs to read from it, and the snapshot discipline that
// keeps one public operation's view of it consistent.
package proto
