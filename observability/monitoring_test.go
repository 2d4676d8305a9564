package observability

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonitor_RecordAndSnapshot(t *testing.T) {
	req := require.New(t)
	monitor := NewMonitor(slog.New(slog.DiscardHandler))

	monitor.Record(2*time.Millisecond, true)
	monitor.Record(4*time.Millisecond, true)
	monitor.Record(6*time.Millisecond, false)

	stats := monitor.Snapshot()
	req.Equal(uint64(3), stats.Analyzed)
	req.Equal(uint64(1), stats.Failed)
	req.InDelta(4.0, stats.AvgLatencyMs, 0.01)
}

func TestMonitor_EmptySnapshot(t *testing.T) {
	req := require.New(t)
	monitor := NewMonitor(slog.New(slog.DiscardHandler))

	stats := monitor.Snapshot()
	req.Zero(stats.Analyzed)
	req.Zero(stats.Failed)
	req.Zero(stats.AvgLatencyMs)
}
