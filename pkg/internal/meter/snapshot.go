package meter

import (
	"sort"
	"time"

	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Snapshot copies every counter and timer and samples host CPU and memory.
func (m *Meter) Snapshot() types.MeterSnapshot {
	m.mu.Lock()
	snap := types.MeterSnapshot{
		Counts:    make(map[string]uint64, len(m.counts)),
		Durations: make(map[string]types.DurationStat, len(m.durations)),
		Uptime:    time.Since(m.startTime),
	}
	for k, v := range m.counts {
		snap.Counts[k] = v
	}
	for k, v := range m.durations {
		snap.Durations[k] = v
	}
	hostStats, interval := m.hostStats, m.sampleInterval
	m.mu.Unlock()

	if hostStats {
		if cpuPercentages, err := cpu.Percent(interval, false); err == nil && len(cpuPercentages) > 0 {
			snap.CPUPercent = cpuPercentages[0]
		}
		if memStats, err := mem.VirtualMemory(); err == nil {
			snap.MemoryPercent = memStats.UsedPercent
			snap.MemoryUsed = memStats.Used
		}
	}
	return snap
}

// ReportToLoggers writes the current snapshot to the attached loggers at Info level.
func (m *Meter) ReportToLoggers() {
	snap := m.Snapshot()
	meta := m.GetComponentMetadata()

	names := make([]string, 0, len(snap.Counts))
	for name := range snap.Counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m.NotifyLoggers(types.InfoLevel, "Meter count", "component", meta, "metric", name, "count", snap.Counts[name])
	}

	names = names[:0]
	for name := range snap.Durations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := snap.Durations[name]
		m.NotifyLoggers(types.InfoLevel, "Meter duration", "component", meta, "metric", name,
			"count", d.Count, "mean", d.Mean(), "max", d.Max, "last", d.Last)
	}

	m.NotifyLoggers(types.InfoLevel, "Meter host",
		"component", meta,
		"uptime", snap.Uptime,
		"cpu_percent", snap.CPUPercent,
		"memory_percent", snap.MemoryPercent,
		"memory_used", snap.MemoryUsed,
	)
}
