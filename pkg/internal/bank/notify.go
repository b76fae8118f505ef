package bank

import "github.com/joeydtaylor/wavetable/pkg/internal/types"

// ConnectLogger attaches loggers to the bank and both generators.
func (b *Bank) ConnectLogger(loggers ...types.Logger) {
	b.loggersLock.Lock()
	for _, l := range loggers {
		if l != nil {
			b.loggers = append(b.loggers, l)
		}
	}
	b.loggersLock.Unlock()
	b.Carrier.ConnectLogger(loggers...)
	b.Modulator.ConnectLogger(loggers...)
}

// ConnectSensor attaches sensors to the bank and both generators.
func (b *Bank) ConnectSensor(sensors ...types.Sensor) {
	for _, s := range sensors {
		if s != nil {
			b.sensors = append(b.sensors, s)
		}
	}
	b.Carrier.ConnectSensor(sensors...)
	b.Modulator.ConnectSensor(sensors...)
}

// GetComponentMetadata returns the bank metadata.
func (b *Bank) GetComponentMetadata() types.ComponentMetadata {
	return b.componentMetadata
}

// SetComponentMetadata updates the name and ID.
func (b *Bank) SetComponentMetadata(name string, id string) {
	b.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: b.componentMetadata.Type}
}

func (b *Bank) notifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	b.loggersLock.Lock()
	loggers := append([]types.Logger(nil), b.loggers...)
	b.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		}
	}
}
