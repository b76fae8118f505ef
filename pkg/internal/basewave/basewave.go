// Package basewave synthesizes a single cycle from a pair of blended oscillator
// shapes read through a user-drawn phasor, optionally remapped by a resonance
// algorithm. A generated cycle can be broadcast to observers such as a bank.
package basewave

import (
	"sync"

	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/internal/utils"
)

const (
	// MaxResonance is the extra sync-rate multiple reached at resonance 1.
	MaxResonance = 4
	// BezierOversample is the number of curve evaluations per output sample.
	BezierOversample = 16
	// BezierMaxWeight is the weight added to the interior control points at bezier weight 1.
	BezierMaxWeight = 4
)

// BaseWave holds the generator parameters and the buffers derived from them.
// Parameter fields are written directly by the caller, who then runs
// UpdateShape, UpdatePhasor and GenerateSamples as needed.
type BaseWave struct {
	LowerShape float64
	UpperShape float64
	LockShapes bool
	PulseWidth float64
	Brightness float64

	BottomAngle     float64
	BottomMagnitude float64
	TopAngle        float64
	TopMagnitude    float64
	BezierRatio     float64
	BezierWeight    float64

	Resonance float64
	Algorithm ResonanceAlgorithm

	bottomX, bottomY float64
	topX, topY       float64

	shape     [types.WaveLen]float64
	phasor    [types.WaveLen]float64
	samples   [types.WaveLen]float64
	harmonics [types.HarmonicsLen]float64

	componentMetadata types.ComponentMetadata
	observers         []func(samples []float64)
	sensors           []types.Sensor
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// New returns a cleared BaseWave with the given options applied.
func New(options ...types.Option[*BaseWave]) *BaseWave {
	b := &BaseWave{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "BASE_WAVE",
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	b.Clear()
	return b
}

// Clear restores default parameters and regenerates every buffer without
// notifying observers.
func (b *BaseWave) Clear() {
	b.LowerShape = 0
	b.UpperShape = 0
	b.LockShapes = true
	b.PulseWidth = 0.5
	b.Brightness = 0
	b.BottomAngle, b.BottomMagnitude = 0, 0
	b.TopAngle, b.TopMagnitude = 0, 0
	b.BezierRatio, b.BezierWeight = 0, 0
	b.Resonance = 0
	b.Algorithm = Resonant

	b.UpdateShape()
	b.UpdatePhasor()
	b.GenerateSamples(false)
}

// OnGenerated registers an observer called by GenerateSamples(true) with the
// freshly generated samples. The slice aliases internal storage.
func (b *BaseWave) OnGenerated(observer ...func(samples []float64)) {
	for _, o := range observer {
		if o != nil {
			b.observers = append(b.observers, o)
		}
	}
}

// Shape returns the rendered oscillator cycle.
func (b *BaseWave) Shape() []float64 { return b.shape[:] }

// Phasor returns the lookup path sampled at N points.
func (b *BaseWave) Phasor() []float64 { return b.phasor[:] }

// Samples returns the generated cycle.
func (b *BaseWave) Samples() []float64 { return b.samples[:] }

// Harmonics returns the magnitude spectrum of Samples.
func (b *BaseWave) Harmonics() []float64 { return b.harmonics[:] }

// ControlPoints returns the four phasor control points from the last UpdatePhasor.
func (b *BaseWave) ControlPoints() [4][2]float64 {
	return [4][2]float64{
		{0, 0},
		{b.bottomX, b.bottomY},
		{b.topX, b.topY},
		{1, 1},
	}
}

// GetComponentMetadata returns the base wave metadata.
func (b *BaseWave) GetComponentMetadata() types.ComponentMetadata {
	return b.componentMetadata
}

// SetComponentMetadata updates the name and ID.
func (b *BaseWave) SetComponentMetadata(name string, id string) {
	b.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: b.componentMetadata.Type}
}
