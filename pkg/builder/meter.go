package builder

import (
	"time"

	"github.com/joeydtaylor/wavetable/pkg/internal/meter"
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
)

// Meter counts edits and times recomputes.
type Meter = types.Meter

// MeterSnapshot is a point-in-time copy of a meter.
type MeterSnapshot = types.MeterSnapshot

// DurationStat aggregates the durations recorded for one metric.
type DurationStat = types.DurationStat

// Metric names recorded by meters attached through sensors.
const (
	MetricPostUpdateCount       = types.MetricPostUpdateCount
	MetricPostUpdateDuration    = types.MetricPostUpdateDuration
	MetricBaseWaveGenerateCount = types.MetricBaseWaveGenerateCount
	MetricBaseWaveDuration      = types.MetricBaseWaveDuration
	MetricBankBroadcastCount    = types.MetricBankBroadcastCount
	MetricBankShuffleCount      = types.MetricBankShuffleCount
	MetricCrossmodUpdateCount   = types.MetricCrossmodUpdateCount
)

// NewMeter creates a meter with the given options.
func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	return meter.NewMeter(options...)
}

// MeterWithLogger attaches loggers that receive ReportToLoggers output.
func MeterWithLogger(logger ...types.Logger) types.Option[types.Meter] {
	return meter.WithLogger(logger...)
}

// MeterWithComponentMetadata adds component metadata overrides.
func MeterWithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return meter.WithComponentMetadata(name, id)
}

// MeterWithInitialMetricCount seeds a counter.
func MeterWithInitialMetricCount(metricName string, count uint64) types.Option[types.Meter] {
	return meter.WithInitialMetricCount(metricName, count)
}

// MeterWithHostStats toggles cpu and memory sampling in snapshots.
func MeterWithHostStats(enabled bool) types.Option[types.Meter] {
	return meter.WithHostStats(enabled)
}

// MeterWithHostSampleInterval sets how long Snapshot samples cpu usage.
func MeterWithHostSampleInterval(d time.Duration) types.Option[types.Meter] {
	return meter.WithHostSampleInterval(d)
}
