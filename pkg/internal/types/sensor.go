package types

import "time"

// Sensor provides callback hooks for recompute events. Components invoke it synchronously
// at the end of each operation, so callbacks run on the editing goroutine.
type Sensor interface {
	ConnectLogger(...Logger)
	ConnectMeter(...Meter)
	GetMeters() []Meter
	GetComponentMetadata() ComponentMetadata

	RegisterOnPostUpdated(...func(c ComponentMetadata, post []float64))
	RegisterOnBaseWaveGenerated(...func(c ComponentMetadata, samples []float64))
	RegisterOnBankBroadcast(...func(c ComponentMetadata, waves int))
	RegisterOnShuffle(...func(c ComponentMetadata, perm []int))
	RegisterOnCrossmodUpdated(...func(c ComponentMetadata, samples []float64))

	InvokeOnPostUpdated(c ComponentMetadata, post []float64, elapsed time.Duration)
	InvokeOnBaseWaveGenerated(c ComponentMetadata, samples []float64, elapsed time.Duration)
	InvokeOnBankBroadcast(c ComponentMetadata, waves int)
	InvokeOnShuffle(c ComponentMetadata, perm []int)
	InvokeOnCrossmodUpdated(c ComponentMetadata, samples []float64)

	// NotifyLoggers sends a log message to all attached loggers at the given level.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
