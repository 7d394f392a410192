package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynarray/cell"
	"github.com/katalvlaran/dynarray/storage"
)

type numBox float64

func (n numBox) IsUndefined() bool               { return false }
func (n numBox) IsNull() bool                    { return false }
func (n numBox) ToNumber() float64               { return float64(n) }
func (n numBox) ToString() string                { return "" }
func (n numBox) ToFoldedString() string          { return "" }
func (n numBox) GetProp(string) (cell.Box, bool) { return nil, false }

func box(f float64) cell.Box { return numBox(f) }

func TestStorage_EmptyReadsAreHoles(t *testing.T) {
	s := storage.New()
	assert.Equal(t, storage.ShapeEmpty, s.Shape())
	assert.True(t, s.Get(0).IsHole())
	assert.False(t, s.Has(0))
	assert.False(t, s.Has(storage.Sentinel))
}

func TestStorage_SmallFirstWriteGoesDense(t *testing.T) {
	s := storage.New()
	s.Set(3, box(1))
	assert.Equal(t, storage.ShapeDense, s.Shape())
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(0), "indices below the write are holes, not stored")
}

func TestStorage_LargeIsolatedFirstWriteGoesHash(t *testing.T) {
	s := storage.New()
	s.Set(1_000_000, box(1))
	assert.Equal(t, storage.ShapeHash, s.Shape())
	assert.True(t, s.Has(1_000_000))
	assert.False(t, s.Has(500))
}

func TestStorage_DenseToHashOnLargeSparseGrowth(t *testing.T) {
	s := storage.New(storage.WithThresholds(storage.Thresholds{
		ThresholdSparseFirstWrite:    1 << 16,
		MaxGrowHoles:                 8,
		MaxGrowFactor:                4,
		DenseHoleFraction:            0.75,
		MinDenseSizeForFractionCheck: 64,
		RehashMinLiveCount:           16,
		RehashMaxKeyFactor:           2,
	}))
	s.Set(0, box(1))
	require.Equal(t, storage.ShapeDense, s.Shape())
	// Growth region of 99 holes vastly exceeds MaxGrowHoles=8 and
	// 4x the single occupied cell.
	s.Set(100, box(2))
	assert.Equal(t, storage.ShapeHash, s.Shape())
	assert.True(t, s.Has(0))
	assert.True(t, s.Has(100))
}

func TestStorage_HashToDenseOnBulkWriteWhenCompact(t *testing.T) {
	s := storage.New()
	s.Set(1_000_000, box(0)) // forces Hash shape
	require.Equal(t, storage.ShapeHash, s.Shape())
	s.Delete(1_000_000)

	vs := make([]cell.Box, 20)
	for i := range vs {
		vs[i] = box(float64(i))
	}
	s.SetMany(0, vs)
	assert.Equal(t, storage.ShapeDense, s.Shape(), "a compact bulk write should rehash Hash back to Dense")
}

func TestStorage_SingleRandomWriteNeverRehashesHashToDense(t *testing.T) {
	s := storage.New()
	s.Set(1_000_000, box(0))
	require.Equal(t, storage.ShapeHash, s.Shape())
	s.Delete(1_000_000)
	s.Set(0, box(1)) // single write, not SetMany
	assert.Equal(t, storage.ShapeHash, s.Shape(), "a single write must never trigger Hash->Dense")
}

func TestStorage_DeleteCreatesHoleAndTrimsOnlyAtTail(t *testing.T) {
	s := storage.New()
	s.Set(0, box(1))
	s.Set(1, box(2))
	s.Set(2, box(3))

	ok := s.Delete(1)
	assert.True(t, ok)
	assert.False(t, s.Has(1))
	assert.True(t, s.Has(2), "delete in the middle leaves surrounding entries intact")

	ok = s.Delete(2)
	assert.True(t, ok)
	assert.False(t, s.Delete(2), "deleting an absent index returns false")
}

func TestStorage_Truncate(t *testing.T) {
	s := storage.New()
	s.Set(10, box(1))
	s.Set(1_000_000, box(2))
	require.Equal(t, storage.ShapeHash, s.Shape())

	s.Truncate(500)
	assert.False(t, s.Has(1_000_000))
	assert.False(t, s.Has(500))
	assert.True(t, s.Has(10))
}

func TestStorage_ShiftUpAndDownRoundTrip(t *testing.T) {
	s := storage.New()
	s.Set(0, box(1))
	s.Set(1, box(2))

	s.ShiftUp(1)
	assert.False(t, s.Has(0))
	assert.True(t, s.Has(1))
	assert.True(t, s.Has(2))

	s.ShiftDown(1)
	assert.True(t, s.Has(0))
	assert.True(t, s.Has(1))
}

func TestStorage_ShiftDownDiscardsBelowK(t *testing.T) {
	s := storage.New()
	s.Set(0, box(1))
	s.Set(1, box(2))
	s.Set(2, box(3))

	s.ShiftDown(2)
	assert.False(t, s.Has(1))
	assert.True(t, s.Has(0))
	v := s.Get(0).Unwrap()
	assert.Equal(t, float64(3), v.ToNumber())
}

func TestStorage_ForEachPresentAscending(t *testing.T) {
	s := storage.New()
	s.Set(5, box(5))
	s.Set(1_000_000, box(9))
	require.Equal(t, storage.ShapeHash, s.Shape())

	var seen []uint32
	s.ForEachPresent(func(i uint32, v cell.Box) {
		seen = append(seen, i)
	})
	require.Len(t, seen, 2)
	assert.Less(t, seen[0], seen[1])
}

func TestStorage_CloneIndependence(t *testing.T) {
	s := storage.New()
	s.Set(0, box(1))
	clone := s.Clone()

	s.Set(1, box(2))
	assert.False(t, clone.Has(1), "mutating the source after Clone must not affect the clone")

	clone.Set(2, box(3))
	assert.False(t, s.Has(2), "mutating the clone must not affect the source")
}

type observerSpy struct {
	transitions []storage.Shape
}

func (o *observerSpy) OnTransition(from, to storage.Shape, liveCount int) {
	o.transitions = append(o.transitions, to)
}

func TestStorage_TransitionObserverNotified(t *testing.T) {
	spy := &observerSpy{}
	s := storage.New(storage.WithTransitionObserver(spy))
	s.Set(0, box(1))
	require.Len(t, spy.transitions, 1)
	assert.Equal(t, storage.ShapeDense, spy.transitions[0])
}
