package internallogger

import (
	"os"
	"sync"
	"time"

	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// settings collects what the options configure before the zap cores are built.
type settings struct {
	level       zapcore.Level
	development bool
	callerSkip  int
	fields      map[string]interface{}
}

// LoggerOption configures a ZapLoggerAdapter at construction.
type LoggerOption func(*settings)

// ZapLoggerAdapter implements types.Logger on zap. Every line carries the
// bank format geometry so logs from differently built editors can be told apart.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encoder     zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	callerSkip  int
	development bool
	sinks       map[string]sinkEntry
}

// NewLogger builds a JSON logger writing to stdout.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	s := settings{
		level:      zapcore.InfoLevel,
		callerSkip: 3,
		fields: map[string]interface{}{
			logschema.FieldSchema:  logschema.SchemaID,
			logschema.FieldFormat:  types.FormatName,
			logschema.FieldWaveLen: types.WaveLen,
			logschema.FieldBankLen: types.BankLen,
		},
	}
	for _, option := range options {
		option(&s)
	}

	enc := encoderConfig(s.development)
	atomicLevel := zap.NewAtomicLevelAt(s.level)

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		encoder:     enc,
		baseCore:    zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(os.Stdout), atomicLevel),
		callerSkip:  s.callerSkip,
		development: s.development,
		sinks:       make(map[string]sinkEntry),
	}
	for key, value := range s.fields {
		if key != "" {
			z.baseFields = append(z.baseFields, zap.Any(key, value))
		}
	}
	z.rebuildLocked()
	return z
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	levelEncoder := zapcore.LowercaseLevelEncoder
	if development {
		levelEncoder = zapcore.CapitalLevelEncoder
	}
	return zapcore.EncoderConfig{
		TimeKey:        logschema.FieldTimestamp,
		LevelKey:       logschema.FieldLevel,
		NameKey:        logschema.FieldLogger,
		CallerKey:      logschema.FieldCaller,
		MessageKey:     logschema.FieldMessage,
		StacktraceKey:  logschema.FieldStack,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.UTC().Format(time.RFC3339Nano))
		},
	}
}

// rebuildLocked tees the stdout core with every sink. Callers hold z.mu.
func (z *ZapLoggerAdapter) rebuildLocked() {
	cores := []zapcore.Core{z.baseCore}
	for _, entry := range z.sinks {
		cores = append(cores, entry.core)
	}
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(z.callerSkip)}
	if z.development {
		opts = append(opts, zap.Development())
	}
	z.logger = zap.New(zapcore.NewTee(cores...), opts...).With(z.baseFields...)
}
