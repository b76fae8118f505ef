package types

// LogLevel orders log severities from Debug up to Fatal.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	DPanicLevel // panics only in development builds
	PanicLevel
	FatalLevel
)

var logLevelNames = [...]string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

// String returns the lowercase level name used in WAVETABLE_LOG_LEVEL.
func (l LogLevel) String() string {
	if l < DebugLevel || int(l) >= len(logLevelNames) {
		return "info"
	}
	return logLevelNames[l]
}

// ParseLogLevel maps a level name to a LogLevel. Unknown names fall back to InfoLevel.
func ParseLogLevel(name string) LogLevel {
	for i, n := range logLevelNames {
		if n == name {
			return LogLevel(i)
		}
	}
	return InfoLevel
}

// SinkType names an extra log destination.
type SinkType string

const (
	FileSink   SinkType = "file"
	StdoutSink SinkType = "stdout"
)

// SinkConfig describes a sink. File sinks read "path" from Config.
type SinkConfig struct {
	Type   string
	Config map[string]interface{}
}

// Logger is the structured logger shared by waves, base waves, banks and meters.
// Sample buffers passed as values are summarized rather than written out in full.
type Logger interface {
	GetLevel() LogLevel
	SetLevel(LogLevel)
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	DPanic(msg string, keysAndValues ...interface{})
	Panic(msg string, keysAndValues ...interface{})
	Fatal(msg string, keysAndValues ...interface{})
	Flush() error
	AddSink(identifier string, config SinkConfig) error
	RemoveSink(identifier string) error
	ListSinks() ([]string, error)
}
