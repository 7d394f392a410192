package main

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/dynarray/internal/metrics"
	"github.com/katalvlaran/dynarray/storage"
)

// zapMetricsObserver implements storage.TransitionObserver: every shape
// transition is logged at info level and recorded as a metric. This is
// the only place in the whole module that couples storage's internals
// to an observability dependency — core packages remain silent.
type zapMetricsObserver struct {
	log *zap.Logger
	rec *metrics.Recorder
}

func newObserver() *zapMetricsObserver {
	return &zapMetricsObserver{log: logger, rec: recorder}
}

func (o *zapMetricsObserver) OnTransition(from, to storage.Shape, liveCount int) {
	o.log.Info("storage shape transition",
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Int("live_count", liveCount),
	)
	o.rec.RecordTransition(from.String(), to.String(), liveCount)
}
