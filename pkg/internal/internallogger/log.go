package internallogger

import (
	"math"
	"strings"

	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/floats"
)

// ConvertLevel maps a types.LogLevel onto zap. zap numbers its levels from
// Debug = -1, ours start at 0.
func ConvertLevel(level types.LogLevel) zapcore.Level {
	if level < types.DebugLevel || level > types.FatalLevel {
		return zapcore.InfoLevel
	}
	return zapcore.Level(level) + zapcore.DebugLevel
}

func convertZapLevel(level zapcore.Level) types.LogLevel {
	if level < zapcore.DebugLevel || level > zapcore.FatalLevel {
		return types.InfoLevel
	}
	return types.LogLevel(level - zapcore.DebugLevel)
}

// bufferSummary stands in for a sample buffer in a log line.
type bufferSummary []float64

func (b bufferSummary) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt(logschema.SummaryLen, len(b))
	if len(b) == 0 {
		return nil
	}
	n := float64(len(b))
	enc.AddFloat64(logschema.SummaryPeak, math.Max(math.Abs(floats.Max(b)), math.Abs(floats.Min(b))))
	enc.AddFloat64(logschema.SummaryRMS, floats.Norm(b, 2)/math.Sqrt(n))
	enc.AddFloat64(logschema.SummaryDC, floats.Sum(b)/n)
	return nil
}

func componentObject(meta types.ComponentMetadata) zapcore.ObjectMarshalerFunc {
	return func(enc zapcore.ObjectEncoder) error {
		enc.AddString("id", meta.ID)
		enc.AddString("type", meta.Type)
		enc.AddString("name", meta.Name)
		return nil
	}
}

func field(key string, value interface{}) zap.Field {
	switch v := value.(type) {
	case []float64:
		return zap.Object(key, bufferSummary(v))
	case types.ComponentMetadata:
		return zap.Object(key, componentObject(v))
	case *types.ComponentMetadata:
		if v == nil {
			return zap.Skip()
		}
		return zap.Object(key, componentObject(*v))
	case error:
		return zap.NamedError(key, v)
	}
	return zap.Any(key, value)
}

// Log writes msg at level. keysAndValues alternate string keys and values;
// pairs with a non-string key and a trailing odd value are dropped.
func (z *ZapLoggerAdapter) Log(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	z.mu.Lock()
	logger := z.logger
	z.mu.Unlock()
	if logger == nil {
		return
	}

	ce := logger.Check(ConvertLevel(level), msg)
	if ce == nil {
		return
	}
	fields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields = append(fields, field(key, keysAndValues[i+1]))
		}
	}
	ce.Write(fields...)
}

func (z *ZapLoggerAdapter) Debug(msg string, keysAndValues ...interface{}) {
	z.Log(types.DebugLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	z.Log(types.InfoLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Warn(msg string, keysAndValues ...interface{}) {
	z.Log(types.WarnLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	z.Log(types.ErrorLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) DPanic(msg string, keysAndValues ...interface{}) {
	z.Log(types.DPanicLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Panic(msg string, keysAndValues ...interface{}) {
	z.Log(types.PanicLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Fatal(msg string, keysAndValues ...interface{}) {
	z.Log(types.FatalLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) GetLevel() types.LogLevel {
	return convertZapLevel(z.atomicLevel.Level())
}

func (z *ZapLoggerAdapter) SetLevel(level types.LogLevel) {
	z.atomicLevel.SetLevel(ConvertLevel(level))
}

// Flush syncs every core. Sync errors from terminals and pipes are ignored.
func (z *ZapLoggerAdapter) Flush() error {
	z.mu.Lock()
	logger := z.logger
	z.mu.Unlock()
	if logger == nil {
		return nil
	}
	err := logger.Sync()
	if err == nil {
		return nil
	}
	for _, benign := range []string{"inappropriate ioctl for device", "bad file descriptor", "invalid argument"} {
		if strings.Contains(err.Error(), benign) {
			return nil
		}
	}
	return err
}
