package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dynarray/array"
	"github.com/katalvlaran/dynarray/cell"
	"github.com/katalvlaran/dynarray/storage"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push a run of sequential values onto a fresh array and report its shape",
	Args:  cobra.NoArgs,
	RunE:  runPush,
}

var pushCount int

func init() {
	pushCmd.Flags().IntVar(&pushCount, "count", 10, "number of values to push")
}

func runPush(cmd *cobra.Command, args []string) error {
	if pushCount < 0 {
		return fmt.Errorf("dynarray-demo push: --count must be non-negative")
	}

	obs := newObserver()
	a := array.NewEmpty(array.WithStorageOptions(storage.WithTransitionObserver(obs)))

	vs := make([]cell.Box, pushCount)
	for i := range vs {
		vs[i] = num(float64(i))
	}
	a.PushMany(vs)

	logger.Info("push complete",
		zap.Uint32("length", a.Length()),
		zap.String("shape", a.Storage().Shape().String()),
	)
	recorder.SetLiveCount(countLive(a))

	fmt.Printf("length=%d shape=%s\n", a.Length(), a.Storage().Shape().String())
	return nil
}

func countLive(a *array.Array) int {
	n := 0
	a.ForEachPresent(func(uint32, cell.Box) { n++ })
	return n
}
