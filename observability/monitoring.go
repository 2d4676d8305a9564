package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// EngineStats aggregates the engine counters for reporting.
type EngineStats struct {
	Analyzed     uint64  `json:"analyzed"`
	Failed       uint64  `json:"failed"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
	AllocMemMb   uint64  `json:"alloc_mem_mb"`
	RssMemMb     uint64  `json:"rss_mem_mb"`
	NumGC        uint32  `json:"num_gc"`
}

// Monitor tracks analysis throughput and latency with atomic counters so
// concurrent analysis calls never contend on a lock.
type Monitor struct {
	log *slog.Logger

	analyzed     uint64
	failed       uint64
	latencyMicro uint64
}

func NewMonitor(log *slog.Logger) *Monitor {
	return &Monitor{log: log}
}

// Record accounts one finished analysis.
func (m *Monitor) Record(elapsed time.Duration, success bool) {
	atomic.AddUint64(&m.analyzed, 1)
	atomic.AddUint64(&m.latencyMicro, uint64(elapsed.Microseconds()))
	if !success {
		atomic.AddUint64(&m.failed, 1)
	}
}

// Snapshot captures the counters plus process memory usage.
func (m *Monitor) Snapshot() EngineStats {
	analyzed := atomic.LoadUint64(&m.analyzed)
	stats := EngineStats{
		Analyzed: analyzed,
		Failed:   atomic.LoadUint64(&m.failed),
	}
	if analyzed > 0 {
		totalMicro := atomic.LoadUint64(&m.latencyMicro)
		stats.AvgLatencyMs = float64(totalMicro) / float64(analyzed) / 1000.0
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	stats.AllocMemMb = mem.Alloc / 1024 / 1024
	stats.NumGC = mem.NumGC

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := proc.MemoryInfo(); err == nil {
			stats.RssMemMb = info.RSS / 1024 / 1024
		}
	} else {
		m.log.Debug("process stats unavailable", "error", err)
	}

	return stats
}
