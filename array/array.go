package array

import (
	"math"

	"github.com/katalvlaran/dynarray/cell"
	"github.com/katalvlaran/dynarray/proto"
	"github.com/katalvlaran/dynarray/storage"
)

// Option configures an Array at construction, mirroring the teacher's
// functional-options convention (core.GraphOption, matrix.Option).
type Option func(*Array)

// WithPrototype attaches the governing prototype chain. Arrays
// constructed without this option use proto.None (no contributions).
func WithPrototype(p proto.Source) Option {
	return func(a *Array) { a.protoSource = p }
}

// WithUndefined overrides the distinguished undefined identity this
// Array manufactures on a read miss. See array.Undefined.
func WithUndefined(u cell.Box) Option {
	return func(a *Array) { a.undefined = u }
}

// WithStorageOptions forwards options to the underlying storage.New
// call, e.g. storage.WithThresholds for tests or storage.
// WithTransitionObserver for diagnostics.
func WithStorageOptions(opts ...storage.Option) Option {
	return func(a *Array) { a.storageOpts = append(a.storageOpts, opts...) }
}

// Array is the public dynamic indexed array value (spec.md §3
// "ArrayObject"): a length, a storage engine, and a back-reference to a
// shared prototype chain that is never owned or mutated by this type.
type Array struct {
	length      uint32
	st          *storage.Storage
	protoSource proto.Source
	undefined   cell.Box

	storageOpts []storage.Option
}

func newArray(opts ...Option) *Array {
	a := &Array{
		protoSource: proto.None,
		undefined:   Undefined,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.st = storage.New(a.storageOpts...)
	return a
}

// NewEmpty returns a length-0 array with no storage allocated.
func NewEmpty(opts ...Option) *Array {
	return newArray(opts...)
}

// NewWithLength returns a length-n array with no cells allocated
// (growing length never materializes cells — spec.md §4.3).
func NewWithLength(n uint32, opts ...Option) *Array {
	a := newArray(opts...)
	a.length = n
	return a
}

// NewWithValues returns a dense array holding exactly vs, in order.
func NewWithValues(vs []cell.Box, opts ...Option) *Array {
	a := newArray(opts...)
	for i, v := range vs {
		a.st.Set(uint32(i), v)
	}
	a.length = uint32(len(vs))
	return a
}

// FromArgs implements the runtime Array(...) constructor (spec.md
// §4.3): a single argument recognized as a number behaves like
// NewWithLength when its finite value is a representable length, fails
// with ErrLengthNotPositiveInteger when it is a finite but
// unrepresentable length (negative, fractional, or >= 2^32), and
// otherwise (zero, two-or-more, or a single non-numeric/non-finite-
// numeric argument) behaves like NewWithValues.
func FromArgs(args []cell.Box, opts ...Option) (*Array, error) {
	if len(args) == 1 {
		if nb, ok := args[0].(NumberBox); ok && nb.IsNumber() {
			f := args[0].ToNumber()
			if !math.IsNaN(f) && !math.IsInf(f, 0) {
				n, valid := coerceLength(f)
				if !valid {
					return nil, ErrLengthNotPositiveInteger
				}
				return NewWithLength(n, opts...), nil
			}
		}
	}
	return NewWithValues(args, opts...), nil
}

// coerceLength validates f as a representable array length: a finite
// non-negative integer <= 2^32-1. Note this range differs from
// CoerceFloatIndex's: length may legitimately equal 2^32-1 (the index
// sentinel value), it just can never be exceeded.
func coerceLength(f float64) (uint32, bool) {
	if f != math.Trunc(f) || f < 0 || f > float64(storage.Sentinel) {
		return 0, false
	}
	return uint32(f), true
}

// Length returns the array's current length attribute.
func (a *Array) Length() uint32 {
	return a.length
}

// snapshot obtains the single proto.Snapshot this public operation will
// use for every prototype consultation it makes (spec.md §5).
func (a *Array) snapshot() proto.Snapshot {
	return a.protoSource.Snapshot()
}
