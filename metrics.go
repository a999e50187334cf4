package qcircuit

import (
	"slices"
	"sync"
	"time"
)

/*
Metrics accumulates counters across sampler runs. It is safe for concurrent
use, so one instance can be shared by several samplers.
*/
type Metrics struct {
	mu               sync.RWMutex
	Runs             int64
	Shots            int64
	GateApplications int64
	FailedRuns       int64
	TotalRunTime     time.Duration

	AverageRunLatency time.Duration
	P95RunLatency     time.Duration
	P99RunLatency     time.Duration

	latencies  []time.Duration
	windowSize int
}

func NewMetrics() *Metrics {
	return &Metrics{
		latencies:  make([]time.Duration, 0, 1000),
		windowSize: 1000,
	}
}

func (m *Metrics) recordRun(startTime time.Time, shots, gates int, success bool) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Runs++
	m.TotalRunTime += duration

	if !success {
		m.FailedRuns++
		return
	}

	m.Shots += int64(shots)
	m.GateApplications += int64(gates)
	m.updateLatencyPercentiles(duration)
}

/*
updateLatencyPercentiles folds one successful run into the running average and
recomputes p95/p99 over the most recent windowSize runs.
*/
func (m *Metrics) updateLatencyPercentiles(duration time.Duration) {
	completed := m.Runs - m.FailedRuns
	m.AverageRunLatency += (duration - m.AverageRunLatency) / time.Duration(completed)

	m.latencies = append(m.latencies, duration)
	if len(m.latencies) > m.windowSize {
		m.latencies = m.latencies[len(m.latencies)-m.windowSize:]
	}

	sorted := slices.Clone(m.latencies)
	slices.Sort(sorted)

	m.P95RunLatency = percentile(sorted, 0.95)
	m.P99RunLatency = percentile(sorted, 0.99)
}

// percentile picks the nearest-rank value from an ascending, non-empty slice.
func percentile(sorted []time.Duration, q float64) time.Duration {
	i := int(float64(len(sorted)) * q)
	if i >= len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i]
}

// ExportMetrics returns a snapshot of the counters keyed by name.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"runs":              m.Runs,
		"failed_runs":       m.FailedRuns,
		"shots":             m.Shots,
		"gate_applications": m.GateApplications,
		"avg_latency":       m.AverageRunLatency.Microseconds(),
		"p95_latency":       m.P95RunLatency.Microseconds(),
		"p99_latency":       m.P99RunLatency.Microseconds(),
	}
}
