package internallogger

import (
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/logschema"
)

// LoggerWithLevel sets the minimum level by name ("debug", "info", ...).
func LoggerWithLevel(name string) LoggerOption {
	return func(s *settings) {
		s.level = ConvertLevel(types.ParseLogLevel(name))
	}
}

// LoggerWithDevelopment capitalizes level names and makes DPanic panic.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return func(s *settings) {
		s.development = dev
	}
}

// LoggerWithFields attaches fields to every log line. They may override the
// format geometry fields.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return func(s *settings) {
		for key, value := range fields {
			s.fields[key] = value
		}
	}
}

// LoggerWithSchema overrides the log schema identifier field.
func LoggerWithSchema(schema string) LoggerOption {
	return func(s *settings) {
		s.fields[logschema.FieldSchema] = schema
	}
}

// ZapAdapterWithCallerSkip adds frames to skip when reporting the caller.
func ZapAdapterWithCallerSkip(skip int) LoggerOption {
	return func(s *settings) {
		s.callerSkip += skip
	}
}
