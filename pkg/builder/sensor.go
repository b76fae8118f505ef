package builder

import (
	"github.com/joeydtaylor/wavetable/pkg/internal/sensor"
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
)

// Sensor receives callbacks from waves, generators and banks.
type Sensor = types.Sensor

// NewSensor creates a sensor with the given options.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	return sensor.NewSensor(options...)
}

// SensorWithLogger adds a logger to the Sensor.
func SensorWithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return sensor.WithLogger(logger...)
}

// SensorWithMeter forwards sensor events to meters.
func SensorWithMeter(meter ...types.Meter) types.Option[types.Sensor] {
	return sensor.WithMeter(meter...)
}

// SensorWithComponentMetadata adds component metadata overrides.
func SensorWithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return sensor.WithComponentMetadata(name, id)
}

// SensorWithOnPostUpdatedFunc registers a callback for every wave post update.
func SensorWithOnPostUpdatedFunc(callback ...func(c ComponentMetadata, post []float64)) types.Option[types.Sensor] {
	return sensor.WithOnPostUpdatedFunc(callback...)
}

// SensorWithOnBaseWaveGeneratedFunc registers a callback for base wave regeneration.
func SensorWithOnBaseWaveGeneratedFunc(callback ...func(c ComponentMetadata, samples []float64)) types.Option[types.Sensor] {
	return sensor.WithOnBaseWaveGeneratedFunc(callback...)
}

// SensorWithOnBankBroadcastFunc registers a callback for bank-wide sample writes.
func SensorWithOnBankBroadcastFunc(callback ...func(c ComponentMetadata, waves int)) types.Option[types.Sensor] {
	return sensor.WithOnBankBroadcastFunc(callback...)
}

// SensorWithOnShuffleFunc registers a callback for bank shuffles.
func SensorWithOnShuffleFunc(callback ...func(c ComponentMetadata, perm []int)) types.Option[types.Sensor] {
	return sensor.WithOnShuffleFunc(callback...)
}

// SensorWithOnCrossmodUpdatedFunc registers a callback for cross-modulation updates.
func SensorWithOnCrossmodUpdatedFunc(callback ...func(c ComponentMetadata, samples []float64)) types.Option[types.Sensor] {
	return sensor.WithOnCrossmodUpdatedFunc(callback...)
}
