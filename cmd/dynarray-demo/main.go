// Command dynarray-demo drives the array/storage/sorter engine from
// the command line: pushing values, forcing sparse writes, sorting,
// and a small bench mode that serves the accumulated Prometheus
// metrics. It exists to exercise the module end-to-end, the way the
// teacher's examples/ directory exercises its graph algorithms.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dynarray/internal/metrics"
)

var (
	// Version is set via -ldflags at build time; "dev" otherwise.
	Version = "dev"

	logLevel string
	logger   *zap.Logger
	recorder *metrics.Recorder
)

var rootCmd = &cobra.Command{
	Use:   "dynarray-demo",
	Short: "Exercises the dynarray ValueCell/Storage/ArrayObject/Sorter engine",
	Long: `dynarray-demo is a small command-line harness around the
dynarray module: it pushes values onto an Array, forces the storage
engine through its Empty/Dense/Hash shapes, sorts with the flags
engine, and reports what happened.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := buildLogger(logLevel)
		if err != nil {
			return fmt.Errorf("dynarray-demo: building logger: %w", err)
		}
		logger = l
		if recorder == nil {
			recorder = metrics.NewRecorder()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func buildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return cfg.Build()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(sparseFillCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
