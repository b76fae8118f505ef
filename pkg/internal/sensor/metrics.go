package sensor

import (
	"time"

	"github.com/joeydtaylor/wavetable/pkg/internal/types"
)

func (s *Sensor) snapshotMeters() []types.Meter {
	s.metersLock.Lock()
	meters := append([]types.Meter(nil), s.meters...)
	s.metersLock.Unlock()
	return meters
}

func (s *Sensor) incrementMeterCounters(metric string) {
	for _, m := range s.snapshotMeters() {
		m.IncrementCount(metric)
	}
}

func (s *Sensor) observeMeterDurations(metric string, d time.Duration) {
	for _, m := range s.snapshotMeters() {
		m.ObserveDuration(metric, d)
	}
}
