package api

import (
	"go.uber.org/zap"

	"github.com/heysubinoy/notedb/internal/store"
)

// LogMetrics logs the metrics collected by instrumentedStore at debug level,
// one message per operation that was called.
func LogMetrics(logger *zap.Logger, instrumentedStore *store.InstrumentedStore) {
	for _, m := range instrumentedStore.GetMetrics() {
		logger.Debug("store operation",
			zap.Stringer("op", m.Op),
			zap.Uint64("count", m.Count),
			zap.Duration("avg_latency", m.AvgLatency),
		)
	}
}
