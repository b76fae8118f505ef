package bank

import "github.com/joeydtaylor/wavetable/pkg/internal/types"

// WithLogger attaches loggers to the bank and both generators.
func WithLogger(logger ...types.Logger) types.Option[*Bank] {
	return func(b *Bank) {
		b.ConnectLogger(logger...)
	}
}

// WithSensor attaches sensors to the bank and both generators.
func WithSensor(sensor ...types.Sensor) types.Option[*Bank] {
	return func(b *Bank) {
		b.ConnectSensor(sensor...)
	}
}

// WithWaveSensor attaches sensors to every slot, so each post update is reported.
func WithWaveSensor(sensor ...types.Sensor) types.Option[*Bank] {
	return func(b *Bank) {
		for i := range b.Waves {
			b.Waves[i].ConnectSensor(sensor...)
		}
	}
}

// WithComponentMetadata sets the bank's name and ID.
func WithComponentMetadata(name string, id string) types.Option[*Bank] {
	return func(b *Bank) {
		b.SetComponentMetadata(name, id)
	}
}
