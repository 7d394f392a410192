package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dynarray/array"
	"github.com/katalvlaran/dynarray/storage"
)

var sparseFillCmd = &cobra.Command{
	Use:   "sparse-fill",
	Short: "Write --count values spread across --max-index to force the Hash shape",
	Args:  cobra.NoArgs,
	RunE:  runSparseFill,
}

var (
	sparseCount    int
	sparseMaxIndex uint32
)

func init() {
	sparseFillCmd.Flags().IntVar(&sparseCount, "count", 16, "number of values to write")
	sparseFillCmd.Flags().Uint32Var(&sparseMaxIndex, "max-index", 1<<20, "highest index to spread writes across")
}

func runSparseFill(cmd *cobra.Command, args []string) error {
	if sparseCount <= 0 {
		return fmt.Errorf("dynarray-demo sparse-fill: --count must be positive")
	}
	if sparseMaxIndex == 0 {
		return fmt.Errorf("dynarray-demo sparse-fill: --max-index must be positive")
	}

	obs := newObserver()
	a := array.NewEmpty(array.WithStorageOptions(storage.WithTransitionObserver(obs)))

	step := sparseMaxIndex / uint32(sparseCount)
	if step == 0 {
		step = 1
	}
	for k := 0; k < sparseCount; k++ {
		idx := uint32(k) * step
		a.Set(idx, num(float64(k)))
	}

	logger.Info("sparse-fill complete",
		zap.Uint32("length", a.Length()),
		zap.String("shape", a.Storage().Shape().String()),
		zap.Int("writes", sparseCount),
	)
	recorder.SetLiveCount(countLive(a))

	fmt.Printf("length=%d shape=%s writes=%d\n", a.Length(), a.Storage().Shape().String(), sparseCount)
	return nil
}
