package workers

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"
	"zenchat/domain"
	"zenchat/observability"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats is the resource usage of the running server.
type ProcessStats struct {
	PID        int32               `json:"pid"`
	Status     domain.ProcessState `json:"status"`
	CpuPercent float64             `json:"cpu_percent"`
	RamBytes   uint64              `json:"ram_bytes"`
}

// Report is what the telemetry worker publishes on each tick.
type Report struct {
	observability.Stats
	Process   ProcessStats `json:"process"`
	CreatedAt time.Time    `json:"created_at"`
}

// TelemetryWorker periodically samples the realtime counters and the
// process resources, logs them and keeps the latest report.
type TelemetryWorker struct {
	mu       sync.RWMutex
	log      *slog.Logger
	metrics  *observability.Metrics
	interval time.Duration
	latest   Report
}

func NewTelemetryWorker(log *slog.Logger, metrics *observability.Metrics, interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, metrics: metrics, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
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
			report := w.collect(p)
			w.mu.Lock()
			w.latest = report
			w.mu.Unlock()
			w.log.Debug("Telemetry",
				"sessions", report.Sessions,
				"online_users", report.OnlineUsers,
				"pending_tasks", report.PendingTasks,
				"delivered", report.Delivered,
				"dropped", report.Dropped,
				"cpu_percent", report.Process.CpuPercent,
				"ram_bytes", report.Process.RamBytes)
		}
	}
}

// Latest returns the last report, zero before the first tick.
func (w *TelemetryWorker) Latest() Report {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.latest
}

func (w *TelemetryWorker) collect(p *process.Process) Report {
	report := Report{Stats: w.metrics.Snapshot(), CreatedAt: time.Now().UTC()}
	stats, err := processStats(p)
	if err != nil {
		w.log.Warn("Failed to collect process stats", "error", err)
		return report
	}
	report.Process = stats
	return report
}

func processStats(p *process.Process) (ProcessStats, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	status, err := p.Status()
	if err != nil {
		return ProcessStats{}, err
	}
	return ProcessStats{PID: p.Pid, Status: domain.ParseProcessState(status), CpuPercent: cpuPercent, RamBytes: memInfo.RSS}, nil
}
