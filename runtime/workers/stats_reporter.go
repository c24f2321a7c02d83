package workers

import (
	"context"
	"log/slog"
	"os"
	"room-sync/contract"
	"room-sync/observability"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*StatsReporter)(nil)

// StatsReporter periodically logs the engine gauges together with the
// resource usage of the process.
type StatsReporter struct {
	log      *slog.Logger
	stats    *observability.EngineStats
	interval time.Duration
}

func NewStatsReporter(log *slog.Logger, stats *observability.EngineStats, interval time.Duration) *StatsReporter {
	return &StatsReporter{log: log, stats: stats, interval: interval}
}

func (w *StatsReporter) Run(ctx context.Context) error {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		w.log.Warn("Process metrics unavailable", "error", err)
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping stats reporter")
			return nil
		case <-ticker.C:
			w.report(proc)
		}
	}
}

func (w *StatsReporter) report(proc *process.Process) {
	snapshot := w.stats.Snapshot()
	attrs := []any{
		"sessions", snapshot.Sessions,
		"connections", snapshot.Connections,
		"pending_repairs", snapshot.PendingRepairs,
		"recording", snapshot.Recording,
		"commands", snapshot.Commands,
		"dropped", snapshot.Dropped,
	}
	if proc != nil {
		if mem, err := proc.MemoryInfo(); err == nil {
			attrs = append(attrs, "rss_mb", mem.RSS/1024/1024)
		}
		if cpu, err := proc.CPUPercent(); err == nil {
			attrs = append(attrs, "cpu_percent", cpu)
		}
	}
	w.log.Info("Engine stats", attrs...)
}
