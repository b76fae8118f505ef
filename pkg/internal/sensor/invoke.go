package sensor

import (
	"time"

	"github.com/joeydtaylor/wavetable/pkg/internal/types"
)

func snapshotCallbacks[F any](s *Sensor, list []F) []F {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	return append([]F(nil), list...)
}

// InvokeOnPostUpdated records the update and runs OnPostUpdated callbacks.
func (s *Sensor) InvokeOnPostUpdated(c types.ComponentMetadata, post []float64, elapsed time.Duration) {
	s.incrementMeterCounters(types.MetricPostUpdateCount)
	s.observeMeterDurations(types.MetricPostUpdateDuration, elapsed)
	for _, callback := range snapshotCallbacks(s, s.OnPostUpdated) {
		callback(c, post)
	}
}

// InvokeOnBaseWaveGenerated records the regeneration and runs its callbacks.
func (s *Sensor) InvokeOnBaseWaveGenerated(c types.ComponentMetadata, samples []float64, elapsed time.Duration) {
	s.incrementMeterCounters(types.MetricBaseWaveGenerateCount)
	s.observeMeterDurations(types.MetricBaseWaveDuration, elapsed)
	for _, callback := range snapshotCallbacks(s, s.OnBaseWaveGenerated) {
		callback(c, samples)
	}
}

// InvokeOnBankBroadcast records a bank-wide write and runs its callbacks.
func (s *Sensor) InvokeOnBankBroadcast(c types.ComponentMetadata, waves int) {
	s.incrementMeterCounters(types.MetricBankBroadcastCount)
	for _, callback := range snapshotCallbacks(s, s.OnBankBroadcast) {
		callback(c, waves)
	}
}

// InvokeOnShuffle records a shuffle and runs its callbacks.
func (s *Sensor) InvokeOnShuffle(c types.ComponentMetadata, perm []int) {
	s.incrementMeterCounters(types.MetricBankShuffleCount)
	for _, callback := range snapshotCallbacks(s, s.OnShuffle) {
		callback(c, perm)
	}
}

// InvokeOnCrossmodUpdated records a cross-modulation pass and runs its callbacks.
func (s *Sensor) InvokeOnCrossmodUpdated(c types.ComponentMetadata, samples []float64) {
	s.incrementMeterCounters(types.MetricCrossmodUpdateCount)
	for _, callback := range snapshotCallbacks(s, s.OnCrossmodUpdated) {
		callback(c, samples)
	}
}
