package builder

import (
	internalLogger "github.com/joeydtaylor/wavetable/pkg/internal/internallogger"
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/logschema"
)

// LoggerOption configures NewLogger.
type LoggerOption = internalLogger.LoggerOption

// SinkConfig describes an extra log destination for Logger.AddSink.
// File sinks read their destination from Config["path"].
type SinkConfig = types.SinkConfig

// SinkType names the kind of destination in SinkConfig.Type.
type SinkType = types.SinkType

// Sink types accepted by Logger.AddSink.
const (
	FileSink   SinkType = types.FileSink
	StdoutSink SinkType = types.StdoutSink
)

// NewLogger returns a JSON logger on stdout. Every line carries the log
// schema and the bank format (FormatName, WaveLen, BankLen); sample buffers
// passed as values are logged as len/peak/rms/dc summaries.
func NewLogger(options ...LoggerOption) Logger {
	return internalLogger.NewLogger(options...)
}

// LoggerWithLevel sets the minimum level by name; see LogLevel.String.
func LoggerWithLevel(name string) LoggerOption {
	return internalLogger.LoggerWithLevel(name)
}

// LoggerWithDevelopment capitalizes level names and makes DPanic panic.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return internalLogger.LoggerWithDevelopment(dev)
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return internalLogger.LoggerWithFields(fields)
}

// LoggerWithSchema replaces the LogSchemaID value on every line.
func LoggerWithSchema(schema string) LoggerOption {
	return internalLogger.LoggerWithSchema(schema)
}

// LoggerWithCallerSkip adjusts the reported caller depth.
func LoggerWithCallerSkip(skip int) LoggerOption {
	return internalLogger.ZapAdapterWithCallerSkip(skip)
}

// Log schema identifier and the field that carries it.
const (
	LogSchemaID    = logschema.SchemaID
	LogSchemaField = logschema.FieldSchema
)

// LogLevel orders log severities from DebugLevel up to FatalLevel.
type LogLevel = types.LogLevel

const (
	DebugLevel  = types.DebugLevel
	InfoLevel   = types.InfoLevel
	WarnLevel   = types.WarnLevel
	ErrorLevel  = types.ErrorLevel
	DPanicLevel = types.DPanicLevel
	PanicLevel  = types.PanicLevel
	FatalLevel  = types.FatalLevel
)

// ParseLogLevel maps a level name to a LogLevel, defaulting to InfoLevel.
func ParseLogLevel(name string) LogLevel {
	return types.ParseLogLevel(name)
}
