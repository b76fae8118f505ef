package meter

import (
	"time"

	"github.com/joeydtaylor/wavetable/pkg/internal/types"
)

// WithInitialMetricCount sets an initial count for a specific metric.
func WithInitialMetricCount(metricName string, count uint64) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.SetMetricCount(metricName, count)
	}
}

// WithComponentMetadata sets the component metadata for the Meter.
func WithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.SetComponentMetadata(name, id)
	}
}

// WithLogger adds loggers to the Meter for outputting logs.
func WithLogger(loggers ...types.Logger) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.ConnectLogger(loggers...)
	}
}

// WithHostStats toggles CPU and memory sampling in Snapshot.
func WithHostStats(enabled bool) types.Option[types.Meter] {
	return func(m types.Meter) {
		if mm, ok := m.(*Meter); ok {
			mm.hostStats = enabled
		}
	}
}

// WithHostSampleInterval sets how long Snapshot averages CPU usage over.
// Zero compares against the previous call and does not block.
func WithHostSampleInterval(d time.Duration) types.Option[types.Meter] {
	return func(m types.Meter) {
		if mm, ok := m.(*Meter); ok {
			mm.sampleInterval = d
		}
	}
}
