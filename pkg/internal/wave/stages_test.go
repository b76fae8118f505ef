package wave

import (
	"math"
	"testing"

	"github.com/joeydtaylor/wavetable/pkg/internal/dsp"
)

func cosine(size, harmonic int, amp float64) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = amp * math.Cos(2*math.Pi*float64(harmonic)*float64(i)/float64(size))
	}
	return out
}

func sine(size, harmonic int, amp float64) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*float64(harmonic)*float64(i)/float64(size))
	}
	return out
}

func sum(bufs ...[]float64) []float64 {
	out := make([]float64, len(bufs[0]))
	for _, b := range bufs {
		for i, v := range b {
			out[i] += v
		}
	}
	return out
}

func ramp(size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func withEffects(effects map[EffectID]float64) *Wave {
	w := &Wave{}
	for id, v := range effects {
		w.Effects[id] = v
	}
	return w
}

func assertSamples(t *testing.T, got, expected []float64, tol float64) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("len = %d, expected %d", len(got), len(expected))
	}
	for i := range got {
		if math.Abs(got[i]-expected[i]) > tol {
			t.Fatalf("sample %d = %v, expected %v (got %v)", i, got[i], expected[i], got)
		}
	}
}

func TestApplyHarmonic_Fixtures(t *testing.T) {
	const size = 16
	cases := []struct {
		name     string
		effects  map[EffectID]float64
		in       []float64
		expected []float64
	}{
		{
			name:     "harmonic shift quarter turn",
			effects:  map[EffectID]float64{HarmonicShift: 0.25},
			in:       cosine(size, 1, 1),
			expected: sine(size, 1, 1),
		},
		{
			name:     "phase shift scales with harmonic number",
			effects:  map[EffectID]float64{PhaseShift: 0.25},
			in:       cosine(size, 2, 1),
			expected: cosine(size, 2, -1),
		},
		{
			name:     "balance equalizes pair",
			effects:  map[EffectID]float64{HarmonicBalance: 1},
			in:       sum(cosine(size, 2, 1), cosine(size, 3, 0.5)),
			expected: sum(cosine(size, 2, 0.5), cosine(size, 3, 0.5)),
		},
		{
			name:     "asymmetry subtracts scaled floor",
			effects:  map[EffectID]float64{HarmonicAsymmetry: 0.5},
			in:       sum(cosine(size, 2, 1), cosine(size, 3, 0.5)),
			expected: sum(cosine(size, 2, 0.75), cosine(size, 3, 0.25)),
		},
		{
			name:     "stretch moves harmonic 1 to 2",
			effects:  map[EffectID]float64{HarmonicStretch: 1.0 / stretchSteps},
			in:       cosine(size, 1, 1),
			expected: cosine(size, 2, 1),
		},
		{
			name:     "full fold mirrors odd harmonic onto 1",
			effects:  map[EffectID]float64{HarmonicFold: 1},
			in:       cosine(size, 3, 1),
			expected: cosine(size, 1, 1),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := append([]float64(nil), tc.in...)
			applyHarmonic(withEffects(tc.effects), out)
			assertSamples(t, out, tc.expected, 1e-9)
		})
	}
}

func TestApplyPhaseDistortion_Fixtures(t *testing.T) {
	cases := []struct {
		name     string
		effects  map[EffectID]float64
		expected []float64
	}{
		{
			name:     "full phase distortion reads at half speed",
			effects:  map[EffectID]float64{PhaseDistortion: 1},
			expected: []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5},
		},
		{
			name:     "cubic distortion bunches reads around the midpoint",
			effects:  map[EffectID]float64{CubicDistortion: 1},
			expected: []float64{0, 2.3125, 3.5, 3.9375, 4, 4.0625, 4.5, 5.6875},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := ramp(8)
			applyPhaseDistortion(withEffects(tc.effects), out)
			assertSamples(t, out, tc.expected, 1e-9)
		})
	}
}

func TestApplyHold_SampleVersusTrack(t *testing.T) {
	sh := ramp(8)
	applySampleAndHold(withEffects(map[EffectID]float64{SampleAndHold: 1}), sh)
	assertSamples(t, sh, []float64{0, 0, 4, 4, 4, 4, 7, 7}, 0)

	// Track & hold passes samples through until the held index is reached.
	th := ramp(8)
	applyTrackAndHold(withEffects(map[EffectID]float64{TrackAndHold: 1}), th)
	assertSamples(t, th, []float64{0, 0, 2, 3, 4, 4, 6, 7}, 0)
}

func TestApplySlew_Bound(t *testing.T) {
	cases := []struct {
		amount float64
		limit  float64
	}{
		{amount: 0, limit: 1},
		{amount: 0.5, limit: math.Sqrt(0.001)},
		{amount: 1, limit: 0.001},
	}
	for _, tc := range cases {
		out := []float64{0, 1, 1, 1}
		applySlew(withEffects(map[EffectID]float64{Slew: tc.amount}), out)
		expected := make([]float64, len(out))
		for i := range expected {
			expected[i] = math.Min(float64(i)*tc.limit, 1)
		}
		assertSamples(t, out, expected, 1e-12)
	}
}

func TestApplyChebyshev(t *testing.T) {
	out := []float64{0.5, -0.25, 2, -4}
	applyChebyshev(withEffects(nil), out)
	assertSamples(t, out, []float64{0.5, -0.25, 0.5, -0.25}, 1e-12)

	out = []float64{0, math.Sin(math.Pi / 100)}
	applyChebyshev(withEffects(map[EffectID]float64{Chebyshev: 1}), out)
	assertSamples(t, out, []float64{0, 1}, 1e-9)
}

func TestBoostCurve(t *testing.T) {
	cases := []struct {
		name           string
		low, mid, high float64
		expected       []float64
	}{
		{name: "flat", expected: []float64{1, 1, 1, 1, 1, 1, 1, 1}},
		{name: "low", low: 1, expected: []float64{5, 4, 3, 2, 1, 1, 1, 1}},
		{name: "high", high: 1, expected: []float64{1, 1, 1, 1, 2, 3, 4, 5}},
		{name: "mid", mid: 1, expected: []float64{2, 3, 4, 5, 5, 4, 3, 2}},
		{name: "mid multiplies low", low: 1, mid: 1, expected: []float64{10, 12, 12, 10, 5, 4, 3, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertSamples(t, boostCurve(16, tc.low, tc.mid, tc.high), tc.expected, 1e-12)
		})
	}
}

func TestApplyBoost_ScalesHarmonic(t *testing.T) {
	out := cosine(16, 1, 1)
	applyBoost(withEffects(map[EffectID]float64{LowBoost: 1}), out)
	assertSamples(t, out, cosine(16, 1, 4), 1e-9)
}

func TestApplyCycle(t *testing.T) {
	out := []float64{0, 0, 0, 3}
	applyCycle(withEffects(nil), out)
	assertSamples(t, out, []float64{2, 1, 0, 2}, 1e-12)
}

func TestApplyRingFeedback_SelfFixture(t *testing.T) {
	out := []float64{0, 1, 0, -1}
	applyRingFeedback(withEffects(map[EffectID]float64{RingFeedback: 1}), out)
	assertSamples(t, out, []float64{0, 0, 0, -0.25}, 1e-12)
}

func TestFeedbackStages_IndexMapping(t *testing.T) {
	in := sum(sine(64, 1, 0.7), sine(64, 3, 0.3))
	cases := []struct {
		name   string
		effect EffectID
		apply  func(*Wave, []float64)
		kernel func(carrier, modulator []float64, index, depth float64)
		index  float64
	}{
		{"phase", PhaseFeedback, applyPhaseFeedback, dsp.PhaseModulation, 2},
		{"frequency", FrequencyFeedback, applyFrequencyFeedback, dsp.FrequencyModulation, 2},
		{"ring", RingFeedback, applyRingFeedback, dsp.RingModulation, 5},
		{"amplitude", AmplitudeFeedback, applyAmplitudeFeedback, dsp.AmplitudeModulation, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := withEffects(map[EffectID]float64{ModulationIndex: 0.5, tc.effect: 0.6})
			out := append([]float64(nil), in...)
			tc.apply(w, out)

			expected := append([]float64(nil), in...)
			tc.kernel(expected, expected, tc.index, 0.6)
			assertSamples(t, out, expected, 1e-12)

			changed := false
			for i := range out {
				if math.Abs(out[i]-in[i]) > 1e-6 {
					changed = true
					break
				}
			}
			if !changed {
				t.Fatalf("%s feedback left the wave untouched", tc.name)
			}
		})
	}
}
