package wave_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/joeydtaylor/wavetable/pkg/internal/meter"
	"github.com/joeydtaylor/wavetable/pkg/internal/sensor"
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
	"github.com/joeydtaylor/wavetable/pkg/internal/wave"
)

const n = types.WaveLen

func sineWave(harmonic int, amp float64) *wave.Wave {
	w := wave.New()
	for i := range w.Samples {
		w.Samples[i] = amp * math.Sin(2*math.Pi*float64(harmonic)*float64(i)/n)
	}
	w.CommitSamples()
	return w
}

func TestUpdatePost_BypassClampsOnly(t *testing.T) {
	w := wave.New()
	for i := range w.Samples {
		w.Samples[i] = 1.5 * math.Sin(2*math.Pi*float64(i)/n)
	}
	w.CommitSamples()

	if got := w.ActiveStages(); len(got) != 1 || got[0] != "hard-clip" {
		t.Fatalf("expected only hard-clip to run, got %v", got)
	}
	for i, v := range w.PostSamples() {
		expected := math.Max(-1, math.Min(1, w.Samples[i]))
		if v != expected {
			t.Fatalf("post[%d] = %v, expected %v", i, v, expected)
		}
	}
}

func TestUpdatePost_Idempotent(t *testing.T) {
	w := sineWave(1, 0.8)
	w.Effects[wave.PreGain] = 0.3
	w.Effects[wave.Comb] = 0.2
	w.Effects[wave.Slew] = 0.4
	w.Effects[wave.MidBoost] = 0.5
	w.Normalize = true
	w.UpdatePost()
	first := append([]float64(nil), w.PostSamples()...)

	w.UpdatePost()
	for i, v := range w.PostSamples() {
		if v != first[i] {
			t.Fatalf("post[%d] changed between runs: %v != %v", i, v, first[i])
		}
	}
}

func TestUpdatePost_Quantization(t *testing.T) {
	w := sineWave(1, 1)
	w.Effects[wave.Quantization] = 0.5
	w.UpdatePost()

	levels := math.Pow(0.5, -1.5)
	distinct := map[float64]bool{}
	for i, v := range w.PostSamples() {
		if v < -1 || v > 1 {
			t.Fatalf("post[%d] = %v outside [-1, 1]", i, v)
		}
		step := v * levels
		if v != 1 && v != -1 && math.Abs(step-math.Round(step)) > 1e-9 {
			t.Fatalf("post[%d] = %v is not on a quantization step", i, v)
		}
		distinct[v] = true
	}
	if len(distinct) > 7 {
		t.Fatalf("expected at most 7 levels, got %d", len(distinct))
	}
}

func TestUpdatePost_QuantizationBelowThresholdSkipped(t *testing.T) {
	w := sineWave(1, 0.5)
	w.Effects[wave.Quantization] = 1e-4
	w.UpdatePost()
	for i, v := range w.PostSamples() {
		if v != w.Samples[i] {
			t.Fatalf("post[%d] = %v, expected untouched %v", i, v, w.Samples[i])
		}
	}
}

func TestUpdatePost_NormalizeFillsRange(t *testing.T) {
	w := sineWave(2, 0.25)
	w.Normalize = true
	w.UpdatePost()
	lo, hi := 1.0, -1.0
	for _, v := range w.PostSamples() {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if math.Abs(lo+1) > 1e-9 || math.Abs(hi-1) > 1e-9 {
		t.Fatalf("expected [-1, 1], got [%v, %v]", lo, hi)
	}
}

func TestUpdatePost_LowpassRemovesHighHarmonics(t *testing.T) {
	high := n/2 - 10
	w := wave.New()
	for i := range w.Samples {
		x := 2 * math.Pi * float64(i) / n
		w.Samples[i] = 0.4*math.Sin(x) + 0.4*math.Sin(float64(high)*x)
	}
	w.CommitSamples()
	w.Effects[wave.Lowpass] = 0.5
	w.UpdatePost()

	h := w.PostHarmonics()
	if math.Abs(h[1]-0.4) > 1e-6 {
		t.Fatalf("expected fundamental kept, got %v", h[1])
	}
	if h[high] > 1e-6 {
		t.Fatalf("expected harmonic %d removed, got %v", high, h[high])
	}
}

func TestCommitHarmonics_RoundTrip(t *testing.T) {
	w := wave.New()
	rng := rand.New(rand.NewPCG(3, 4))
	for i := range w.Samples {
		w.Samples[i] = rng.Float64()*2 - 1
	}
	w.CommitSamples()
	w.Harmonics[5] = 0.75
	edited := w.Harmonics

	w.CommitHarmonics()
	w.CommitSamples()
	for i, v := range w.Harmonics {
		if math.Abs(v-edited[i]) > 1e-3 {
			t.Fatalf("harmonic %d = %v, expected %v", i, v, edited[i])
		}
	}
}

func TestCommitHarmonics_SilentBinGetsSinePhase(t *testing.T) {
	w := wave.New()
	w.Harmonics[1] = 1
	w.CommitHarmonics()
	for i, v := range w.Samples {
		expected := math.Sin(2 * math.Pi * float64(i) / n)
		if math.Abs(v-expected) > 1e-9 {
			t.Fatalf("sample %d = %v, expected %v", i, v, expected)
		}
	}
}

func TestBakeEffects(t *testing.T) {
	w := sineWave(1, 1)
	w.Effects[wave.Chebyshev] = 0.3
	w.Cycle = true
	w.UpdatePost()
	post := append([]float64(nil), w.PostSamples()...)

	w.BakeEffects()
	for i, v := range w.Effects {
		if v != 0 {
			t.Fatalf("effect %v = %v after bake", wave.EffectID(i), v)
		}
	}
	if w.Cycle || !w.Normalize {
		t.Fatalf("expected cycle off and normalize on, got %v %v", w.Cycle, w.Normalize)
	}
	for i, v := range w.Samples {
		if v != post[i] {
			t.Fatalf("sample %d = %v, expected baked %v", i, v, post[i])
		}
	}
}

func TestMorphEffects(t *testing.T) {
	from, to := wave.New(), wave.New()
	from.Effects[wave.Slew] = 0.2
	to.Effects[wave.Slew] = 0.6
	to.Effects[wave.Comb] = 1

	w := wave.New()
	w.MorphEffect(from, to, wave.Slew, 0.5)
	if math.Abs(w.Effects[wave.Slew]-0.4) > 1e-12 || w.Effects[wave.Comb] != 0 {
		t.Fatalf("unexpected effects after MorphEffect: %v", w.Effects)
	}

	w.MorphEffect(from, to, wave.EffectCount, 0.5)

	w.MorphAllEffects(from, to, 0.25)
	if math.Abs(w.Effects[wave.Slew]-0.3) > 1e-12 || math.Abs(w.Effects[wave.Comb]-0.25) > 1e-12 {
		t.Fatalf("unexpected effects after MorphAllEffects: %v", w.Effects)
	}
}

func TestRandomizeEffects_Seeded(t *testing.T) {
	a, b := wave.New(), wave.New()
	a.RandomizeEffects(rand.New(rand.NewPCG(7, 7)))
	b.RandomizeEffects(rand.New(rand.NewPCG(7, 7)))
	if a.Effects != b.Effects {
		t.Fatalf("same seed produced different effects")
	}
	for i, v := range a.Effects {
		if v < 0 || v > 1 {
			t.Fatalf("effect %d = %v outside [0, 1]", i, v)
		}
	}
}

func TestClearAndCopyKeepHooks(t *testing.T) {
	posts := 0
	s := sensor.NewSensor(sensor.WithOnPostUpdatedFunc(func(types.ComponentMetadata, []float64) { posts++ }))
	w := wave.New(wave.WithSensor(s), wave.WithComponentMetadata("slot", "0"))

	w.Copy(sineWave(3, 0.5))
	w.UpdatePost()
	w.Clear()
	if w.Normalize || w.Samples[1] != 0 {
		t.Fatalf("expected a zeroed wave after Clear")
	}
	w.UpdatePost()

	if posts != 2 {
		t.Fatalf("expected 2 post updates, got %d", posts)
	}
	if w.GetComponentMetadata().Name != "slot" {
		t.Fatalf("metadata lost: %+v", w.GetComponentMetadata())
	}
}

func TestUpdatePost_Metered(t *testing.T) {
	m := meter.NewMeter()
	w := wave.New(wave.WithSensor(sensor.NewSensor(sensor.WithMeter(m))))
	w.CommitSamples()
	w.ClearEffects()
	if got := m.GetMetricCount(types.MetricPostUpdateCount); got != 2 {
		t.Fatalf("expected 2 post updates, got %d", got)
	}
}

func TestClipboard(t *testing.T) {
	var clip wave.Clipboard
	w := sineWave(1, 1)
	if w.ClipboardPaste(&clip) || w.ApplyRingModulation(&clip) {
		t.Fatalf("empty clipboard must not paste or modulate")
	}

	src := sineWave(2, 0.5)
	src.Effects[wave.Comb] = 0.4
	src.ClipboardCopy(&clip)
	src.Samples[0] = 0.9

	dst := wave.New()
	if !dst.ClipboardPaste(&clip) {
		t.Fatalf("expected paste")
	}
	if dst.Samples[0] != 0 || dst.Effects[wave.Comb] != 0.4 {
		t.Fatalf("paste did not restore the copied snapshot")
	}

	before := w.Samples
	if !w.ApplySpectralTransfer(&clip) {
		t.Fatalf("expected spectral transfer to run")
	}
	if w.Samples == before {
		t.Fatalf("spectral transfer left samples unchanged")
	}
}

func TestStagesOrder(t *testing.T) {
	expected := []string{
		"pre-gain", "harmonic", "phase-distortion", "comb", "chebyshev",
		"sample-and-hold", "track-and-hold", "quantization", "slew", "brickwall",
		"phase-feedback", "frequency-feedback", "ring-feedback", "amplitude-feedback",
		"boost", "post-gain", "cycle", "normalize", "hard-clip",
	}
	stages := wave.Stages()
	if len(stages) != len(expected) {
		t.Fatalf("expected %d stages, got %d", len(expected), len(stages))
	}
	for i, s := range stages {
		if s.Name != expected[i] {
			t.Fatalf("stage %d = %q, expected %q", i, s.Name, expected[i])
		}
	}

	w := wave.New()
	w.Effects[wave.Slew] = 0.1
	w.Effects[wave.PreGain] = 0.1
	w.Cycle = true
	got := w.ActiveStages()
	want := []string{"pre-gain", "slew", "cycle", "hard-clip"}
	if len(got) != len(want) {
		t.Fatalf("active stages = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("active stages = %v, expected %v", got, want)
		}
	}
}

func TestEffectIDString(t *testing.T) {
	if wave.Comb.String() != "Comb Filter" || wave.EffectID(99).String() != "Unknown" {
		t.Fatalf("unexpected names %q %q", wave.Comb.String(), wave.EffectID(99).String())
	}
}
