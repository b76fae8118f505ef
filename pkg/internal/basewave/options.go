package basewave

import "github.com/joeydtaylor/wavetable/pkg/internal/types"

// WithLogger attaches loggers.
func WithLogger(logger ...types.Logger) types.Option[*BaseWave] {
	return func(b *BaseWave) {
		b.ConnectLogger(logger...)
	}
}

// WithSensor attaches sensors notified after every generation.
func WithSensor(sensor ...types.Sensor) types.Option[*BaseWave] {
	return func(b *BaseWave) {
		b.ConnectSensor(sensor...)
	}
}

// WithName sets the component name, keeping the generated ID.
func WithName(name string) types.Option[*BaseWave] {
	return func(b *BaseWave) {
		b.componentMetadata.Name = name
	}
}

// WithOnGenerated registers generation observers.
func WithOnGenerated(observer ...func(samples []float64)) types.Option[*BaseWave] {
	return func(b *BaseWave) {
		b.OnGenerated(observer...)
	}
}
