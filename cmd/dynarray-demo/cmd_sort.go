package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dynarray/array"
	"github.com/katalvlaran/dynarray/cell"
	"github.com/katalvlaran/dynarray/sorter"
	"github.com/katalvlaran/dynarray/storage"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Build a demo array and sort it, reporting the flags applied and the result",
	Args:  cobra.NoArgs,
	RunE:  runSort,
}

var (
	sortCount      int
	sortDescending bool
	sortUnique     bool
	sortIndexed    bool
	sortOnProperty string
)

func init() {
	sortCmd.Flags().IntVar(&sortCount, "count", 10, "number of values to sort")
	sortCmd.Flags().BoolVar(&sortDescending, "descending", false, "sort descending")
	sortCmd.Flags().BoolVar(&sortUnique, "unique", false, "fail the sort on any adjacent duplicate")
	sortCmd.Flags().BoolVar(&sortIndexed, "indexed", false, "return a permutation-index array instead of sorting in place")
	sortCmd.Flags().StringVar(&sortOnProperty, "on", "", "sort demoRecord values by this property instead of numeric order")
}

func indexBoxer(i uint32) cell.Box { return num(float64(i)) }

func runSort(cmd *cobra.Command, args []string) error {
	if sortCount <= 0 {
		return fmt.Errorf("dynarray-demo sort: --count must be positive")
	}

	obs := newObserver()
	a := buildSortInput(sortCount, sortOnProperty, obs)

	flags := sorter.Flags(0)
	if sortDescending {
		flags |= sorter.Descending
	}
	if sortUnique {
		flags |= sorter.UniqueSort
	}
	if sortIndexed {
		flags |= sorter.ReturnIndexedArray
	}
	if sortOnProperty == "" {
		flags |= sorter.Numeric
	}

	s := sorter.New(indexBoxer)

	start := time.Now()
	var res *sorter.Result
	if sortOnProperty != "" {
		var err error
		res, err = s.SortOn(a, []string{sortOnProperty}, []sorter.Flags{flags})
		if err != nil {
			return fmt.Errorf("dynarray-demo sort: %w", err)
		}
	} else {
		res = s.SortWithFlags(a, flags)
	}
	recorder.ObserveSortDuration("sort", time.Since(start).Seconds())

	if res.UniqueSortFailed {
		logger.Warn("unique sort found an adjacent duplicate", zap.Int("count", sortCount))
		fmt.Println("uniquesort failed: adjacent duplicate found, array unchanged")
		return nil
	}

	logger.Info("sort complete",
		zap.Int("count", sortCount),
		zap.Bool("indexed", sortIndexed),
		zap.Duration("took", time.Since(start)),
	)

	printArray(res.Array)
	return nil
}

// buildSortInput builds either a numeric demo array, or, when onProp is
// set, an array of demoRecord objects for --on sortOn demonstrations.
func buildSortInput(n int, onProp string, obs *zapMetricsObserver) *array.Array {
	opt := array.WithStorageOptions(storage.WithTransitionObserver(obs))
	if onProp == "" {
		vs := make([]cell.Box, n)
		for i := range vs {
			// A simple reversing, non-monotonic sequence so sort has
			// visible work to do.
			vs[i] = num(float64((i*7 + 3) % (n + 1)))
		}
		return array.NewWithValues(vs, opt)
	}

	vs := make([]cell.Box, n)
	for i := range vs {
		vs[i] = demoRecord{label: fmt.Sprintf("item-%02d", i), score: float64((i*5 + 1) % (n + 1))}
	}
	return array.NewWithValues(vs, opt)
}

func printArray(a *array.Array) {
	fmt.Printf("length=%d\n", a.Length())
	for i := uint32(0); i < a.Length(); i++ {
		if !a.Has(i) {
			fmt.Printf("  [%d] <hole>\n", i)
			continue
		}
		v := a.Get(i)
		if v.IsUndefined() {
			fmt.Printf("  [%d] undefined\n", i)
			continue
		}
		fmt.Printf("  [%d] %s\n", i, v.ToString())
	}
}
