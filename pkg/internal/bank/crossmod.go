package bank

import (
	"github.com/joeydtaylor/wavetable/pkg/internal/dsp"
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/logschema"
	"gonum.org/v1/gonum/floats"
)

// CrossmodParams sets how the modulator shapes the carrier before the result
// is written to the bank. Every field is nominally in [0, 1].
type CrossmodParams struct {
	Rotation         float64
	Phase            float64
	Frequency        float64
	Ring             float64
	Amplitude        float64
	SpectralTransfer float64
	ModulatorMix     float64
	Index            float64
}

// Active reports whether any cross-modulation stage has a nonzero strength.
// Index alone does not activate anything.
func (p CrossmodParams) Active() bool {
	return p.Rotation != 0 || p.Phase != 0 || p.Frequency != 0 || p.Ring != 0 ||
		p.Amplitude != 0 || p.SpectralTransfer != 0 || p.ModulatorMix != 0
}

// UpdateCrossmod combines the carrier and modulator outputs and broadcasts
// the normalized result to every slot. Stages run in a fixed order, each
// only when its strength is nonzero: modulator rotation, phase, frequency,
// ring and amplitude modulation, spectral transfer, then modulator mix.
func (b *Bank) UpdateCrossmod() {
	p := b.Crossmod
	out := append([]float64(nil), b.Carrier.Samples()...)
	mod := append([]float64(nil), b.Modulator.Samples()...)
	index := dsp.Clamp(p.Index, 0, 1)

	if p.Rotation != 0 {
		dsp.RotatePhase(mod, p.Rotation)
	}
	if p.Phase != 0 {
		dsp.PhaseModulation(out, mod, dsp.Rescale(index, 0, 1, 0, 4), dsp.Clamp(p.Phase, 0, 1))
	}
	if p.Frequency != 0 {
		dsp.FrequencyModulation(out, mod, dsp.Rescale(index, 0, 1, 0, 4), dsp.Clamp(p.Frequency, 0, 1))
	}
	if p.Ring != 0 {
		dsp.RingModulation(out, mod, dsp.Rescale(index, 0, 1, 1, 9), dsp.Clamp(p.Ring, 0, 1))
	}
	if p.Amplitude != 0 {
		dsp.AmplitudeModulation(out, mod, dsp.Rescale(index, 0, 1, 1, 9), dsp.Clamp(p.Amplitude, 0, 1))
	}
	if p.SpectralTransfer != 0 {
		dsp.SpectralConvolution(out, mod, dsp.Clamp(p.SpectralTransfer, 0, 1))
	}
	if p.ModulatorMix != 0 {
		floats.AddScaled(out, dsp.Clamp(p.ModulatorMix, 0, 1), mod)
	}
	dsp.Normalize(out, -1, 1, 0)

	for _, s := range b.sensors {
		s.InvokeOnCrossmodUpdated(b.componentMetadata, out)
	}
	b.notifyLoggers(types.DebugLevel, "Cross-modulation updated",
		logschema.FieldComponent, b.componentMetadata,
		logschema.FieldEvent, logschema.EventCrossmodUpdated,
		"params", p,
		logschema.FieldSamples, out,
	)
	b.BroadcastSamples(out)
}
