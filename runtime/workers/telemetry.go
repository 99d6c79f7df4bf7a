package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// TelemetryWorker periodically logs self stats (CPU, RSS, status) so an
// operator can spot a leaking or spinning assistant process without
// external tooling.
type TelemetryWorker struct {
	log      *slog.Logger
	interval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cpu, err := proc.CPUPercent()
			if err != nil {
				w.log.Debug("cpu sample failed", "err", err)
				continue
			}
			mem, err := proc.MemoryInfo()
			if err != nil {
				w.log.Debug("memory sample failed", "err", err)
				continue
			}
			status, err := proc.Status()
			if err != nil {
				w.log.Debug("status sample failed", "err", err)
				continue
			}
			w.log.Info("self stats",
				"cpu_percent", cpu,
				"rss_bytes", mem.RSS,
				"status", status,
			)
		}
	}
}
