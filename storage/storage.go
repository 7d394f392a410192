package storage

import "github.com/katalvlaran/dynarray/cell"

// Sentinel is the reserved u32 value 2^32-1: never a valid element
// index, used only to mark the length attribute's upper bound.
const Sentinel uint32 = 1<<32 - 1

// Shape tags Storage's current internal representation.
type Shape int

const (
	// ShapeEmpty holds no cells; every read is a hole.
	ShapeEmpty Shape = iota
	// ShapeDense holds a contiguous vector of cells indexed from zero.
	ShapeDense
	// ShapeHash holds a sparse map from index to value.
	ShapeHash
)

// String renders the shape's debug name. Used only by tests and the
// CLI's transition logger — no core logic branches on this string
// (shape transparency, spec.md §8).
func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapeDense:
		return "dense"
	case ShapeHash:
		return "hash"
	default:
		return "unknown"
	}
}

// Thresholds are the tunable constants of the shape-transition policy.
// Their qualitative behavior is fixed by spec.md §4.2; only the exact
// cutoffs are adjustable, e.g. for tests that want to exercise a
// transition without allocating the full-size default thresholds.
type Thresholds struct {
	// ThresholdSparseFirstWrite is the index at or above which a first
	// write into Empty storage goes straight to Hash; below it, Empty
	// goes Dense. spec.md §4.2 phrases the Dense case as "i < Δ +
	// current_dense_cap_equivalent" (Δ=16 at Empty, where the cap
	// equivalent is 0) and leaves the region between Δ and this
	// threshold to implementer discretion ("implementers may add
	// additional triggers"); a single cutover here is the simplest
	// trigger that is both consistent with the Δ case (Δ is always
	// well below the default threshold) and avoids an unclassified
	// index range.
	ThresholdSparseFirstWrite uint32
	// MaxGrowHoles bounds the absolute number of new trailing holes a
	// single Dense write may introduce before the engine prefers Hash.
	MaxGrowHoles uint32
	// MaxGrowFactor bounds new trailing holes as a multiple of the
	// currently occupied (non-hole) cell count.
	MaxGrowFactor uint32
	// DenseHoleFraction is the fraction of hole cells (of cells.len())
	// above which a Dense storage also prefers Hash, independent of
	// the growth-region check above.
	DenseHoleFraction float64
	// MinDenseSizeForFractionCheck is the minimum cells.len() at which
	// DenseHoleFraction is evaluated; small Dense vectors are cheap
	// enough to keep even when mostly holes.
	MinDenseSizeForFractionCheck int
	// RehashMinLiveCount is the minimum live key count a Hash storage
	// must have before a Hash→Dense rehash is considered.
	RehashMinLiveCount int
	// RehashMaxKeyFactor bounds the maximum key as a multiple of the
	// live count for a Hash→Dense rehash to trigger.
	RehashMaxKeyFactor uint32
}

// DefaultThresholds returns the shape-transition constants spec.md §4.2
// uses as its own worked examples.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ThresholdSparseFirstWrite:    1 << 16,
		MaxGrowHoles:                 1024,
		MaxGrowFactor:                4,
		DenseHoleFraction:            0.75,
		MinDenseSizeForFractionCheck: 64,
		RehashMinLiveCount:           16,
		RehashMaxKeyFactor:           2,
	}
}

// TransitionObserver is notified, synchronously and after the fact, of
// every completed shape transition. The core never requires an observer
// (the zero value of Storage uses none) and calling one never affects
// correctness — it exists purely for diagnostics (the CLI demo's shape
// transition log, see SPEC_FULL.md §8).
type TransitionObserver interface {
	OnTransition(from, to Shape, liveCount int)
}

// Option configures a Storage at construction.
type Option func(*Storage)

// WithThresholds overrides the default shape-transition constants.
func WithThresholds(t Thresholds) Option {
	return func(s *Storage) { s.thresholds = t }
}

// WithTransitionObserver attaches a TransitionObserver.
func WithTransitionObserver(o TransitionObserver) Option {
	return func(s *Storage) { s.observer = o }
}

// Storage is the polymorphic index→value backing store described in
// spec.md §3/§4.2. The zero value is not ready for use; construct with
// New.
type Storage struct {
	shape Shape

	// Dense representation: cells[i] is the value at index i for
	// i < len(cells); everything at or beyond len(cells) is a hole.
	cells     []cell.Cell
	liveDense int // count of non-hole entries in cells

	// Hash representation.
	hash map[uint32]cell.Box

	thresholds Thresholds
	observer   TransitionObserver
}

// New constructs an empty Storage.
func New(opts ...Option) *Storage {
	s := &Storage{
		shape:      ShapeEmpty,
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Shape reports the storage's current internal representation.
func (s *Storage) Shape() Shape {
	return s.shape
}

// LiveCount returns the number of indices currently holding a stored
// value (not counting holes). Complexity: O(1) for Dense/Hash.
func (s *Storage) LiveCount() int {
	switch s.shape {
	case ShapeDense:
		return s.liveDense
	case ShapeHash:
		return len(s.hash)
	default:
		return 0
	}
}

func (s *Storage) notify(from, to Shape) {
	if s.observer != nil && from != to {
		s.observer.OnTransition(from, to, s.LiveCount())
	}
}
