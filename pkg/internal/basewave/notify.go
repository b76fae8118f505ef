package basewave

import "github.com/joeydtaylor/wavetable/pkg/internal/types"

// ConnectLogger attaches loggers to the base wave.
func (b *BaseWave) ConnectLogger(loggers ...types.Logger) {
	b.loggersLock.Lock()
	defer b.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			b.loggers = append(b.loggers, l)
		}
	}
}

// ConnectSensor attaches sensors to the base wave.
func (b *BaseWave) ConnectSensor(sensors ...types.Sensor) {
	for _, s := range sensors {
		if s != nil {
			b.sensors = append(b.sensors, s)
		}
	}
}

func (b *BaseWave) notifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
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
