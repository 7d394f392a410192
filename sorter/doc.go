// Package sorter implements the sort / sortOn engine described in
// spec.md §4.5: materialization of effective elements (merging an
// array's own storage with its prototype's contribution), a stable
// three-way partition of values / undefined / holes, and two result
// modes — in-place permutation, or a returned index permutation array.
//
// Sorter never mutates the array or the prototype before the whole
// operation has succeeded: it builds a scratch buffer, runs the
// ordering and any UNIQUESORT check against that buffer, and only then
// either commits a freshly built storage into the array (one pointer
// swap) or returns a freshly built index array — matching spec.md §7's
// "allocation occurs first, then pointers are swapped".
package sorter
