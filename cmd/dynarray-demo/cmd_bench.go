package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dynarray/array"
	"github.com/katalvlaran/dynarray/cell"
	"github.com/katalvlaran/dynarray/sorter"
	"github.com/katalvlaran/dynarray/storage"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a tagged push+sort benchmark and optionally serve its Prometheus metrics",
	Args:  cobra.NoArgs,
	RunE:  runBench,
}

var (
	benchCount int
	benchServe bool
	benchAddr  string
)

func init() {
	benchCmd.Flags().IntVar(&benchCount, "count", 100_000, "number of values to push and sort")
	benchCmd.Flags().BoolVar(&benchServe, "serve", false, "serve /metrics after the run until interrupted")
	benchCmd.Flags().StringVar(&benchAddr, "addr", ":9400", "address to serve /metrics on, with --serve")
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchCount <= 0 {
		return fmt.Errorf("dynarray-demo bench: --count must be positive")
	}

	runID := uuid.New().String()
	log := logger.With(zap.String("run_id", runID))

	obs := &zapMetricsObserver{log: log, rec: recorder}
	a := array.NewEmpty(array.WithStorageOptions(storage.WithTransitionObserver(obs)))

	pushStart := time.Now()
	vs := make([]cell.Box, benchCount)
	for i := range vs {
		vs[i] = num(float64(benchCount - i))
	}
	a.PushMany(vs)
	pushTook := time.Since(pushStart)

	s := sorter.New(indexBoxer)
	sortStart := time.Now()
	res := s.SortWithFlags(a, sorter.Numeric)
	sortTook := time.Since(sortStart)
	recorder.ObserveSortDuration("bench", sortTook.Seconds())
	recorder.SetLiveCount(countLive(res.Array))

	log.Info("bench complete",
		zap.Int("count", benchCount),
		zap.Duration("push_took", pushTook),
		zap.Duration("sort_took", sortTook),
	)
	fmt.Printf("run_id=%s count=%d push_took=%s sort_took=%s\n", runID, benchCount, pushTook, sortTook)

	if !benchServe {
		return nil
	}
	return serveMetrics(benchAddr, log)
}

// serveMetrics exposes /metrics until SIGINT/SIGTERM, following the
// same signal-driven shutdown shape as the rest of the pack's daemon
// entry points.
func serveMetrics(addr string, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("dynarray-demo bench: metrics server: %w", err)
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
