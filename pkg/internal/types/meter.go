package types

import "time"

// Metric names recorded by the editor components.
const (
	MetricPostUpdateCount       = "wave_post_update_count"
	MetricPostUpdateDuration    = "wave_post_update_duration"
	MetricBaseWaveGenerateCount = "basewave_generate_count"
	MetricBaseWaveDuration      = "basewave_generate_duration"
	MetricBankBroadcastCount    = "bank_broadcast_count"
	MetricBankShuffleCount      = "bank_shuffle_count"
	MetricCrossmodUpdateCount   = "bank_crossmod_update_count"
)

// DurationStat aggregates observed durations for one metric.
type DurationStat struct {
	Count uint64
	Total time.Duration
	Max   time.Duration
	Last  time.Duration
}

// Mean returns the average observed duration, or zero when nothing was observed.
func (d DurationStat) Mean() time.Duration {
	if d.Count == 0 {
		return 0
	}
	return d.Total / time.Duration(d.Count)
}

// MeterSnapshot is a point-in-time copy of a meter's counters, timers and host stats.
type MeterSnapshot struct {
	Counts        map[string]uint64
	Durations     map[string]DurationStat
	Uptime        time.Duration
	CPUPercent    float64
	MemoryPercent float64
	MemoryUsed    uint64
}

// Meter records operation counts and recompute latencies.
type Meter interface {
	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	IncrementCount(name string)
	SetMetricCount(name string, count uint64)
	GetMetricCount(name string) uint64
	ObserveDuration(name string, d time.Duration)
	GetDuration(name string) DurationStat
	Snapshot() MeterSnapshot
	ReportToLoggers()
}
