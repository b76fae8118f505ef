// Package sensor provides options for configuring Sensor components.
//
// Options attach loggers and meters and register callbacks for the recompute
// events raised by waves, base waves and banks.
package sensor

import "github.com/joeydtaylor/wavetable/pkg/internal/types"

// WithLogger creates an option to add a logger to a Sensor.
func WithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.ConnectLogger(logger...)
	}
}

// WithMeter creates an option to forward sensor events to meters.
func WithMeter(meter ...types.Meter) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.ConnectMeter(meter...)
	}
}

// WithOnPostUpdatedFunc registers callbacks for the OnPostUpdated event.
func WithOnPostUpdatedFunc(callback ...func(c types.ComponentMetadata, post []float64)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnPostUpdated(callback...)
	}
}

// WithOnBaseWaveGeneratedFunc registers callbacks for the OnBaseWaveGenerated event.
func WithOnBaseWaveGeneratedFunc(callback ...func(c types.ComponentMetadata, samples []float64)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnBaseWaveGenerated(callback...)
	}
}

// WithOnBankBroadcastFunc registers callbacks for the OnBankBroadcast event.
func WithOnBankBroadcastFunc(callback ...func(c types.ComponentMetadata, waves int)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnBankBroadcast(callback...)
	}
}

// WithOnShuffleFunc registers callbacks for the OnShuffle event.
func WithOnShuffleFunc(callback ...func(c types.ComponentMetadata, perm []int)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnShuffle(callback...)
	}
}

// WithOnCrossmodUpdatedFunc registers callbacks for the OnCrossmodUpdated event.
func WithOnCrossmodUpdatedFunc(callback ...func(c types.ComponentMetadata, samples []float64)) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		m.RegisterOnCrossmodUpdated(callback...)
	}
}

// WithComponentMetadata sets the sensor's name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return func(m types.Sensor) {
		if s, ok := m.(*Sensor); ok {
			s.SetComponentMetadata(name, id)
		}
	}
}
