package builder

import (
	"fmt"
	"math/rand/v2"

	"github.com/joeydtaylor/wavetable/pkg/internal/bank"
	"github.com/joeydtaylor/wavetable/pkg/internal/basewave"
	"github.com/joeydtaylor/wavetable/pkg/internal/dsp"
	"github.com/joeydtaylor/wavetable/pkg/internal/oscillator"
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/internal/wave"
)

// Logger is the structured logger accepted by every component option.
type Logger = types.Logger

// ComponentMetadata identifies a wave, generator or bank in logs and sensor callbacks.
type ComponentMetadata = types.ComponentMetadata

// RandSource is satisfied by *rand.Rand; see NewRand.
type RandSource = types.RandSource

type (
	// Wave is one editable cycle with its effect settings.
	Wave = wave.Wave
	// Clipboard holds one copied wave for Paste and the Apply operations.
	Clipboard = wave.Clipboard
	// Stage is one named step of the effect chain.
	Stage = wave.Stage
	// EffectID indexes Wave.Effects.
	EffectID = wave.EffectID
)

type (
	// BaseWave generates carrier and modulator cycles from two shapes.
	BaseWave = basewave.BaseWave
	// ResonanceAlgorithm selects how BaseWave applies resonance.
	ResonanceAlgorithm = basewave.ResonanceAlgorithm
	// Shape is a band-limited oscillator shape.
	Shape = oscillator.Shape
)

type (
	// Bank is the full set of waves plus its carrier and modulator.
	Bank = bank.Bank
	// CrossmodParams configures Bank.UpdateCrossmod.
	CrossmodParams = bank.CrossmodParams
)

// Geometry of the selected hardware format.
const (
	FormatName     = types.FormatName
	WaveLen        = types.WaveLen
	HarmonicsLen   = types.HarmonicsLen
	BankLen        = types.BankLen
	BankGridWidth  = types.BankGridWidth
	BankGridHeight = types.BankGridHeight
)

// ErrBufferSize is wrapped by bank operations given a flat buffer of the wrong length.
var ErrBufferSize = types.ErrBufferSize

// Effect slots, in Wave.Effects order.
const (
	EffectPhaseModulation     = wave.PhaseModulation
	EffectFrequencyModulation = wave.FrequencyModulation
	EffectRingModulation      = wave.RingModulation
	EffectAmplitudeModulation = wave.AmplitudeModulation
	EffectPreGain             = wave.PreGain
	EffectPhaseShift          = wave.PhaseShift
	EffectHarmonicShift       = wave.HarmonicShift
	EffectHarmonicAsymmetry   = wave.HarmonicAsymmetry
	EffectHarmonicBalance     = wave.HarmonicBalance
	EffectHarmonicStretch     = wave.HarmonicStretch
	EffectHarmonicFold        = wave.HarmonicFold
	EffectPhaseDistortion     = wave.PhaseDistortion
	EffectCubicDistortion     = wave.CubicDistortion
	EffectComb                = wave.Comb
	EffectChebyshev           = wave.Chebyshev
	EffectSampleAndHold       = wave.SampleAndHold
	EffectTrackAndHold        = wave.TrackAndHold
	EffectQuantization        = wave.Quantization
	EffectSlew                = wave.Slew
	EffectLowpass             = wave.Lowpass
	EffectHighpass            = wave.Highpass
	EffectPhaseFeedback       = wave.PhaseFeedback
	EffectFrequencyFeedback   = wave.FrequencyFeedback
	EffectRingFeedback        = wave.RingFeedback
	EffectAmplitudeFeedback   = wave.AmplitudeFeedback
	EffectModulationIndex     = wave.ModulationIndex
	EffectLowBoost            = wave.LowBoost
	EffectMidBoost            = wave.MidBoost
	EffectHighBoost           = wave.HighBoost
	EffectPostGain            = wave.PostGain
	EffectCount               = wave.EffectCount
)

// Resonance algorithms for BaseWave.Algorithm.
const (
	ResonanceResonant      = basewave.Resonant
	ResonanceDivisorModulo = basewave.DivisorModulo
	ResonanceHarmonic      = basewave.Harmonic
)

// NewWave creates a standalone wave outside any bank.
func NewWave(options ...types.Option[*wave.Wave]) *wave.Wave {
	return wave.New(options...)
}

// WaveWithLogger attaches loggers to a wave.
func WaveWithLogger(logger ...types.Logger) types.Option[*wave.Wave] {
	return wave.WithLogger(logger...)
}

// WaveWithSensor attaches sensors notified after every post update.
func WaveWithSensor(sensor ...types.Sensor) types.Option[*wave.Wave] {
	return wave.WithSensor(sensor...)
}

// WaveWithComponentMetadata sets the wave's name and ID.
func WaveWithComponentMetadata(name string, id string) types.Option[*wave.Wave] {
	return wave.WithComponentMetadata(name, id)
}

// Stages returns the post-processing chain in execution order.
func Stages() []wave.Stage {
	return wave.Stages()
}

// NewBaseWave creates a standalone generator.
func NewBaseWave(options ...types.Option[*basewave.BaseWave]) *basewave.BaseWave {
	return basewave.New(options...)
}

// BaseWaveWithLogger attaches loggers to a generator.
func BaseWaveWithLogger(logger ...types.Logger) types.Option[*basewave.BaseWave] {
	return basewave.WithLogger(logger...)
}

// BaseWaveWithSensor attaches sensors to a generator.
func BaseWaveWithSensor(sensor ...types.Sensor) types.Option[*basewave.BaseWave] {
	return basewave.WithSensor(sensor...)
}

// BaseWaveWithName names a generator.
func BaseWaveWithName(name string) types.Option[*basewave.BaseWave] {
	return basewave.WithName(name)
}

// BaseWaveWithOnGenerated registers broadcast observers.
func BaseWaveWithOnGenerated(observer ...func(samples []float64)) types.Option[*basewave.BaseWave] {
	return basewave.WithOnGenerated(observer...)
}

// NewBank creates a cleared bank with its own carrier and modulator.
func NewBank(options ...types.Option[*bank.Bank]) *bank.Bank {
	return bank.New(options...)
}

// BankWithLogger attaches loggers to a bank and its generators.
func BankWithLogger(logger ...types.Logger) types.Option[*bank.Bank] {
	return bank.WithLogger(logger...)
}

// BankWithSensor attaches sensors to a bank and its generators.
func BankWithSensor(sensor ...types.Sensor) types.Option[*bank.Bank] {
	return bank.WithSensor(sensor...)
}

// BankWithWaveSensor attaches sensors to every wave slot.
func BankWithWaveSensor(sensor ...types.Sensor) types.Option[*bank.Bank] {
	return bank.WithWaveSensor(sensor...)
}

// BankWithComponentMetadata sets the bank's name and ID.
func BankWithComponentMetadata(name string, id string) types.Option[*bank.Bank] {
	return bank.WithComponentMetadata(name, id)
}

// GridPosition returns the column and row of a slot in the bank grid.
func GridPosition(id int) (x, y int) {
	return bank.GridPosition(id)
}

// NewRand returns a deterministic random source for Shuffle and RandomizeEffects.
func NewRand(seed uint64) RandSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// LoadFlat loads 16-bit PCM holding BankLen consecutive waves into b.
func LoadFlat(b *bank.Bank, pcm []int16) error {
	if len(pcm) != types.BankLen*types.WaveLen {
		return fmt.Errorf("load flat: got %d samples, expected %d: %w",
			len(pcm), types.BankLen*types.WaveLen, types.ErrBufferSize)
	}
	flat := make([]float64, len(pcm))
	dsp.Int16ToFloat(pcm, flat)
	return b.SetSamples(flat)
}

// ExportFlat returns every wave's post samples as 16-bit PCM.
func ExportFlat(b *bank.Bank) ([]int16, error) {
	flat := make([]float64, types.BankLen*types.WaveLen)
	if err := b.GetPostSamples(flat); err != nil {
		return nil, err
	}
	pcm := make([]int16, len(flat))
	dsp.FloatToInt16(flat, pcm)
	return pcm, nil
}
