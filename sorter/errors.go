package sorter

import "errors"

var (
	// ErrTypeCoercionFailed is returned by Sort when its dynamic sort
	// argument is neither nil, a Flags-convertible number, nor a
	// Comparator function. Maps to spec.md's TYPE_COERCION_FAILED.
	ErrTypeCoercionFailed = errors.New("sorter: sort argument is neither a flags number nor a comparator function")

	// ErrPropertyNotFound is returned by SortOn when a requested
	// property name does not resolve on any non-nullish effective
	// element. Maps to spec.md's PROPERTY_NOT_FOUND.
	ErrPropertyNotFound = errors.New("sorter: sortOn property not found on any element")
)
