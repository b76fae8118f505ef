package wave

import "github.com/joeydtaylor/wavetable/pkg/internal/types"

// WithLogger attaches loggers.
func WithLogger(logger ...types.Logger) types.Option[*Wave] {
	return func(w *Wave) {
		w.ConnectLogger(logger...)
	}
}

// WithSensor attaches sensors notified after every UpdatePost.
func WithSensor(sensor ...types.Sensor) types.Option[*Wave] {
	return func(w *Wave) {
		w.ConnectSensor(sensor...)
	}
}

// WithComponentMetadata sets the wave's name and ID.
func WithComponentMetadata(name string, id string) types.Option[*Wave] {
	return func(w *Wave) {
		w.SetComponentMetadata(name, id)
	}
}

// ConnectLogger attaches loggers to the wave.
func (w *Wave) ConnectLogger(loggers ...types.Logger) {
	h := w.ensureHooks()
	h.loggersLock.Lock()
	defer h.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			h.loggers = append(h.loggers, l)
		}
	}
}

// ConnectSensor attaches sensors to the wave.
func (w *Wave) ConnectSensor(sensors ...types.Sensor) {
	h := w.ensureHooks()
	for _, s := range sensors {
		if s != nil {
			h.sensors = append(h.sensors, s)
		}
	}
}

// GetComponentMetadata returns the wave metadata. Waves without hooks report an empty value.
func (w *Wave) GetComponentMetadata() types.ComponentMetadata {
	if w.hooks == nil {
		return types.ComponentMetadata{Type: "WAVE"}
	}
	return w.hooks.componentMetadata
}

// SetComponentMetadata updates the name and ID.
func (w *Wave) SetComponentMetadata(name string, id string) {
	h := w.ensureHooks()
	h.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: h.componentMetadata.Type}
}

func (w *Wave) notifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	if w.hooks == nil {
		return
	}
	w.hooks.loggersLock.Lock()
	loggers := append([]types.Logger(nil), w.hooks.loggers...)
	w.hooks.loggersLock.Unlock()

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
