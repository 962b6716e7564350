package observability

import (
	"runtime"
	"sync/atomic"
	"time"
)

// Stats is a point in time view of the realtime layer.
type Stats struct {
	Sessions        int64   `json:"sessions"`
	OnlineUsers     int64   `json:"online_users"`
	InboundEvents   uint64  `json:"inbound_events"`
	MalformedEvents uint64  `json:"malformed_events"`
	Delivered       uint64  `json:"delivered"`
	Dropped         uint64  `json:"dropped"`
	PersistFailures uint64  `json:"persist_failures"`
	PendingTasks    int     `json:"pending_tasks"`
	AllocMemMb      uint64  `json:"alloc_mem_mb"`
	NumGC           uint32  `json:"num_gc"`
	Goroutines      int     `json:"goroutines"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
}

// Metrics holds atomic counters shared by the dispatcher, the sinks and
// the transport. A nil *Metrics is valid and records nothing.
type Metrics struct {
	sessions        atomic.Int64
	onlineUsers     atomic.Int64
	inbound         atomic.Uint64
	malformed       atomic.Uint64
	delivered       atomic.Uint64
	dropped         atomic.Uint64
	persistFailures atomic.Uint64
	pending         func() int
	startedAt       time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{startedAt: time.Now()}
}

// WithPending plugs the dispatcher queue length into snapshots.
func (m *Metrics) WithPending(pending func() int) *Metrics {
	if m != nil {
		m.pending = pending
	}
	return m
}

func (m *Metrics) SetPresence(sessions, onlineUsers int) {
	if m == nil {
		return
	}
	m.sessions.Store(int64(sessions))
	m.onlineUsers.Store(int64(onlineUsers))
}

func (m *Metrics) IncrInbound() {
	if m != nil {
		m.inbound.Add(1)
	}
}

func (m *Metrics) IncrMalformed() {
	if m != nil {
		m.malformed.Add(1)
	}
}

func (m *Metrics) IncrDelivered() {
	if m != nil {
		m.delivered.Add(1)
	}
}

func (m *Metrics) IncrDropped() {
	if m != nil {
		m.dropped.Add(1)
	}
}

func (m *Metrics) IncrPersistFailures() {
	if m != nil {
		m.persistFailures.Add(1)
	}
}

func (m *Metrics) Snapshot() Stats {
	if m == nil {
		return Stats{}
	}
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	stats := Stats{
		Sessions:        m.sessions.Load(),
		OnlineUsers:     m.onlineUsers.Load(),
		InboundEvents:   m.inbound.Load(),
		MalformedEvents: m.malformed.Load(),
		Delivered:       m.delivered.Load(),
		Dropped:         m.dropped.Load(),
		PersistFailures: m.persistFailures.Load(),
		AllocMemMb:      mem.Alloc / 1024 / 1024,
		NumGC:           mem.NumGC,
		Goroutines:      runtime.NumGoroutine(),
		UptimeSeconds:   time.Since(m.startedAt).Seconds(),
	}
	if m.pending != nil {
		stats.PendingTasks = m.pending()
	}
	return stats
}
