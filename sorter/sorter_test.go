package sorter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynarray/array"
	"github.com/katalvlaran/dynarray/cell"
	"github.com/katalvlaran/dynarray/proto"
	"github.com/katalvlaran/dynarray/sorter"
)

// numVal is a numeric cell.Box used across this package's tests.
type numVal float64

func (n numVal) IsUndefined() bool               { return false }
func (n numVal) IsNull() bool                    { return false }
func (n numVal) ToNumber() float64               { return float64(n) }
func (n numVal) ToString() string                { return "" }
func (n numVal) ToFoldedString() string          { return "" }
func (n numVal) GetProp(string) (cell.Box, bool) { return nil, false }

func nv(f float64) cell.Box { return numVal(f) }

// strVal is a string cell.Box used across this package's tests.
type strVal string

func (s strVal) IsUndefined() bool               { return false }
func (s strVal) IsNull() bool                    { return false }
func (s strVal) ToNumber() float64               { return math.NaN() }
func (s strVal) ToString() string                { return string(s) }
func (s strVal) ToFoldedString() string          { return string(s) }
func (s strVal) GetProp(string) (cell.Box, bool) { return nil, false }

// objVal is an object-shaped cell.Box exposing named properties, used to
// exercise SortOn.
type objVal map[string]cell.Box

func (o objVal) IsUndefined() bool { return false }
func (o objVal) IsNull() bool      { return false }
func (o objVal) ToNumber() float64 { return math.NaN() }
func (o objVal) ToString() string  { return "" }
func (o objVal) ToFoldedString() string { return "" }
func (o objVal) GetProp(name string) (cell.Box, bool) {
	v, ok := o[name]
	return v, ok
}

// mapPrototype is a trivial proto.Source backed by a fixed map.
type mapPrototype map[string]cell.Box

func (m mapPrototype) Snapshot() proto.Snapshot { return mapSnapshot(m) }

type mapSnapshot map[string]cell.Box

func (m mapSnapshot) Lookup(s string) (cell.Box, bool) {
	v, ok := m[s]
	return v, ok
}

func indexBoxer(i uint32) cell.Box { return numVal(float64(i)) }

func TestSorter_NumericDescending(t *testing.T) {
	a := array.NewWithValues([]cell.Box{nv(3), nv(1), nv(4), nv(1), nv(5)})
	s := sorter.New(indexBoxer)

	res := s.SortWithFlags(a, sorter.Numeric|sorter.Descending)
	require.NotNil(t, res)
	assert.False(t, res.UniqueSortFailed)

	got := make([]float64, a.Length())
	for i := range got {
		got[i] = a.Get(uint32(i)).ToNumber()
	}
	assert.Equal(t, []float64{5, 4, 3, 1, 1}, got)
}

func TestSorter_SizeCutoffIsNoOp(t *testing.T) {
	a := array.NewWithLength(1<<31 + 1)
	a.Set(0, nv(9))
	a.Set(1, nv(1))
	s := sorter.New(indexBoxer)

	res := s.SortWithFlags(a, sorter.Numeric)
	assert.Same(t, a, res.Array)
	assert.Equal(t, float64(9), a.Get(0).ToNumber())
	assert.Equal(t, float64(1), a.Get(1).ToNumber())
}

// Scenario 4: a length-5 array with no own storage, whose prototype
// contributes a value at index 2. Sorting must pull that value in,
// place it first (the only non-hole value), and commit it as the
// array's own storage — the prototype no longer needs to be consulted
// for that slot afterward.
func TestSorter_PullsInPrototypeContributionOnSort(t *testing.T) {
	p := mapPrototype{"2": strVal("p")}
	a := array.NewWithLength(5, array.WithPrototype(p))
	s := sorter.New(indexBoxer)

	res := s.SortWithFlags(a, 0)
	require.False(t, res.UniqueSortFailed)
	assert.Same(t, a, res.Array)

	assert.Equal(t, "p", a.Get(0).ToString())
	present := 0
	a.ForEachPresent(func(uint32, cell.Box) { present++ })
	assert.Equal(t, 1, present, "only index 0 is now its own stored value")
	assert.False(t, a.Storage().Has(2), "the prototype's contribution was pulled in, not left in place")
	// The prototype itself is untouched, so index 2 is still visible
	// through it — only this array's own storage moved the value to 0.
	assert.True(t, a.Has(2))
	for _, i := range []uint32{1, 3, 4} {
		assert.False(t, a.Has(i), "index %d must be a hole post-sort", i)
	}
}

// Scenario 5: UNIQUESORT must detect the adjacent duplicate (2, 2) and
// fail without mutating the array.
func TestSorter_UniqueSortFailsOnAdjacentDuplicate(t *testing.T) {
	a := array.NewWithValues([]cell.Box{nv(3), nv(1), nv(2), nv(2), nv(4)})
	s := sorter.New(indexBoxer)

	res := s.SortWithFlags(a, sorter.Numeric|sorter.UniqueSort)
	require.True(t, res.UniqueSortFailed)
	assert.Same(t, a, res.Array)

	got := make([]float64, a.Length())
	for i := range got {
		got[i] = a.Get(uint32(i)).ToNumber()
	}
	assert.Equal(t, []float64{3, 1, 2, 2, 4}, got, "array is untouched on UNIQUESORT failure")
}

// Scenario 6: sortOn with two descending properties across three
// objects.
func TestSorter_SortOnDescendingTwoProperties(t *testing.T) {
	o1 := objVal{"team": strVal("a"), "score": nv(10)}
	o2 := objVal{"team": strVal("a"), "score": nv(20)}
	o3 := objVal{"team": strVal("b"), "score": nv(5)}
	a := array.NewWithValues([]cell.Box{o1, o2, o3})
	s := sorter.New(indexBoxer)

	res, err := s.SortOn(a, []string{"team", "score"}, []sorter.Flags{sorter.Descending, sorter.Numeric | sorter.Descending})
	require.NoError(t, err)
	require.False(t, res.UniqueSortFailed)

	got := make([]objVal, a.Length())
	for i := range got {
		got[i] = a.Get(uint32(i)).(objVal)
	}
	assert.Equal(t, []objVal{o3, o2, o1}, got, "team b before team a; within team a, score 20 before 10")
}

func TestSorter_SortOn_PropertyNotFoundFails(t *testing.T) {
	a := array.NewWithValues([]cell.Box{objVal{"x": nv(1)}, objVal{"x": nv(2)}})
	s := sorter.New(indexBoxer)

	_, err := s.SortOn(a, []string{"missing"}, nil)
	assert.ErrorIs(t, err, sorter.ErrPropertyNotFound)
}

func TestSorter_ReturnIndexedArrayLeavesSourceUntouched(t *testing.T) {
	a := array.NewWithValues([]cell.Box{nv(3), nv(1), nv(2)})
	s := sorter.New(indexBoxer)

	res := s.SortWithFlags(a, sorter.Numeric|sorter.ReturnIndexedArray)
	require.NotSame(t, a, res.Array)

	got := make([]float64, res.Array.Length())
	for i := range got {
		got[i] = res.Array.Get(uint32(i)).ToNumber()
	}
	assert.Equal(t, []float64{1, 2, 0}, got, "original indices, reordered by value")

	// Source untouched.
	srcGot := make([]float64, a.Length())
	for i := range srcGot {
		srcGot[i] = a.Get(uint32(i)).ToNumber()
	}
	assert.Equal(t, []float64{3, 1, 2}, srcGot)
}

func TestSorter_Sort_TypeCoercionFailedOnUnrecognizedArg(t *testing.T) {
	a := array.NewWithValues([]cell.Box{nv(1)})
	s := sorter.New(indexBoxer)

	_, err := s.Sort(a, "garbage")
	assert.ErrorIs(t, err, sorter.ErrTypeCoercionFailed)
}

func TestSorter_Sort_NilArgUsesDefaultStringOrder(t *testing.T) {
	a := array.NewWithValues([]cell.Box{strVal("b"), strVal("a"), strVal("c")})
	s := sorter.New(indexBoxer)

	res, err := s.Sort(a, nil)
	require.NoError(t, err)
	assert.False(t, res.UniqueSortFailed)
	assert.Equal(t, "a", a.Get(0).ToString())
	assert.Equal(t, "b", a.Get(1).ToString())
	assert.Equal(t, "c", a.Get(2).ToString())
}

func TestSorter_Sort_ComparatorArgInvertedByDescending(t *testing.T) {
	a := array.NewWithValues([]cell.Box{nv(1), nv(3), nv(2)})
	s := sorter.New(indexBoxer)

	cmp := sorter.Comparator(func(x, y cell.Box) int {
		switch {
		case x.ToNumber() < y.ToNumber():
			return -1
		case x.ToNumber() > y.ToNumber():
			return 1
		default:
			return 0
		}
	})

	res := s.SortWithComparator(a, cmp, sorter.Descending)
	require.False(t, res.UniqueSortFailed)
	got := []float64{a.Get(0).ToNumber(), a.Get(1).ToNumber(), a.Get(2).ToNumber()}
	assert.Equal(t, []float64{3, 2, 1}, got)
}

func TestSorter_UndefinedValuesSortToTheEnd(t *testing.T) {
	a := array.NewWithValues([]cell.Box{nv(2), array.Undefined, nv(1)})
	s := sorter.New(indexBoxer)

	res := s.SortWithFlags(a, sorter.Numeric)
	require.False(t, res.UniqueSortFailed)
	assert.Equal(t, float64(1), a.Get(0).ToNumber())
	assert.Equal(t, float64(2), a.Get(1).ToNumber())
	assert.True(t, a.Get(2).IsUndefined())
}
