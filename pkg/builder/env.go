package builder

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel    = "WAVETABLE_LOG_LEVEL"
	EnvSeed        = "WAVETABLE_SEED"
	EnvDevelopment = "WAVETABLE_DEV"
)

// EnvOr returns the trimmed env value or def when empty.
func EnvOr(key, def string) string {
	v := strings.TrimSpace(strings.Trim(os.Getenv(key), `"`))
	if v == "" {
		return def
	}
	return v
}

// EnvIntOr returns the parsed int env value or def on empty/parse failure.
func EnvIntOr(key string, def int) int {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvFloatOr returns the parsed float env value or def on empty/parse failure.
func EnvFloatOr(key string, def float64) float64 {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// EnvBoolOr returns the parsed bool env value or def on empty/parse failure.
func EnvBoolOr(key string, def bool) bool {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Config carries process-level settings for the editor core.
type Config struct {
	LogLevel    string
	Development bool
	Seed        uint64
}

// ConfigFromEnv reads Config from the WAVETABLE_* variables.
func ConfigFromEnv() Config {
	return Config{
		LogLevel:    EnvOr(EnvLogLevel, "info"),
		Development: EnvBoolOr(EnvDevelopment, false),
		Seed:        uint64(EnvIntOr(EnvSeed, 1)),
	}
}

// Logger builds a logger from the config.
func (c Config) Logger(options ...LoggerOption) Logger {
	opts := append([]LoggerOption{
		LoggerWithLevel(c.LogLevel),
		LoggerWithDevelopment(c.Development),
	}, options...)
	return NewLogger(opts...)
}

// Rand returns a deterministic random source seeded from the config.
func (c Config) Rand() RandSource {
	return NewRand(c.Seed)
}
