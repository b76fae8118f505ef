package meter

import (
	"time"

	"github.com/joeydtaylor/wavetable/pkg/internal/types"
)

// IncrementCount adds one to the named counter.
func (m *Meter) IncrementCount(name string) {
	m.mu.Lock()
	m.counts[name]++
	m.mu.Unlock()
}

// SetMetricCount overwrites the named counter.
func (m *Meter) SetMetricCount(name string, count uint64) {
	m.mu.Lock()
	m.counts[name] = count
	m.mu.Unlock()
}

// GetMetricCount returns the named counter, zero if never touched.
func (m *Meter) GetMetricCount(name string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[name]
}

// ObserveDuration folds d into the named timer.
func (m *Meter) ObserveDuration(name string, d time.Duration) {
	m.mu.Lock()
	stat := m.durations[name]
	stat.Count++
	stat.Total += d
	stat.Last = d
	if d > stat.Max {
		stat.Max = d
	}
	m.durations[name] = stat
	m.mu.Unlock()
}

// GetDuration returns the named timer.
func (m *Meter) GetDuration(name string) types.DurationStat {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.durations[name]
}
