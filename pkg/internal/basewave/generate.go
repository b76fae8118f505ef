package basewave

import (
	"time"

	"github.com/joeydtaylor/wavetable/pkg/internal/dsp"
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/logschema"
)

// GenerateSamples reads Shape through the phasor, applies resonance when it is
// nonzero, normalizes the result into Samples and refreshes Harmonics. When
// updateWaves is true the observers receive the new samples.
func (b *BaseWave) GenerateSamples(updateWaves bool) {
	const n = types.WaveLen
	start := time.Now()

	final := make([]float64, n)
	var env []float64
	if b.Resonance > 0 {
		env = make([]float64, n)
		b.Algorithm.apply(b.phasor[:], b.Resonance, final, env)
	} else {
		copy(final, b.phasor[:])
	}

	shape := dsp.WithWrap(b.shape[:])
	out := make([]float64, n)
	for i := range out {
		out[i] = dsp.Linterp(shape, dsp.Clamp(final[i], 0, 1)*n)
	}
	if env != nil {
		for i := range out {
			out[i] = dsp.Rescale(dsp.Rescale(out[i], -1, 1, 0, 1)*env[i], 0, 1, -1, 1)
		}
	}
	dsp.Normalize(out, -1, 1, 0)

	spectrum := make([]float64, n)
	dsp.RFFT(out, spectrum)
	dsp.Harmonics(spectrum, b.harmonics[:])
	copy(b.samples[:], out)

	elapsed := time.Since(start)
	for _, s := range b.sensors {
		s.InvokeOnBaseWaveGenerated(b.componentMetadata, b.samples[:], elapsed)
	}
	b.notifyLoggers(types.DebugLevel, "Base wave generated",
		logschema.FieldComponent, b.componentMetadata,
		logschema.FieldEvent, logschema.EventBaseWaveGenerated,
		"resonance", b.Resonance,
		"algorithm", b.Algorithm.String(),
		"broadcast", updateWaves,
		logschema.FieldSamples, b.samples[:],
	)

	if !updateWaves {
		return
	}
	for _, o := range b.observers {
		o(b.samples[:])
	}
}
