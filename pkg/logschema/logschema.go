package logschema

// Log schema constants for wavetable editor structured logs.
const (
	SchemaID    = "wavetable.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent = "component"
	FieldEvent     = "event"
	FieldResult    = "result"
	FieldError     = "error"
	FieldFormat    = "format"
	FieldWaveLen   = "wave_len"
	FieldBankLen   = "bank_len"
	FieldSamples   = "samples"
)

// Keys of the summary object written in place of a sample buffer.
const (
	SummaryLen  = "len"
	SummaryPeak = "peak"
	SummaryRMS  = "rms"
	SummaryDC   = "dc"
)

// Event names emitted by the editor components.
const (
	EventPostUpdated       = "wave.post_updated"
	EventBaseWaveGenerated = "basewave.generated"
	EventBankBroadcast     = "bank.broadcast"
	EventBankShuffle       = "bank.shuffle"
	EventBankCleared       = "bank.cleared"
	EventCrossmodUpdated   = "bank.crossmod_updated"
	EventDuplicate         = "bank.duplicate"
)
