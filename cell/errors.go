package cell

import "errors"

// ErrUnwrapHole is the panic value used by Cell.Unwrap when called on a
// hole. Unwrap's precondition is "not a hole"; callers that cannot
// guarantee this must check IsHole first. Panicking (rather than
// returning an error) matches the teacher's treatment of programmer-error
// preconditions elsewhere in this module (e.g. storage bounds invariants
// enforced by its own callers, never by a public error return).
var ErrUnwrapHole = errors.New("cell: unwrap called on a hole")
