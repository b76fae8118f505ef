package wave

import "github.com/joeydtaylor/wavetable/pkg/internal/utils"

// Stage is one step of the post-processing chain. Apply transforms out in
// place and only runs when Enabled reports true for the wave.
type Stage struct {
	Name    string
	Enabled func(w *Wave) bool
	Apply   func(w *Wave, out []float64)
}

var chain = []Stage{
	{Name: "pre-gain", Enabled: effectNonZero(PreGain), Apply: applyPreGain},
	{Name: "harmonic", Enabled: harmonicEnabled, Apply: applyHarmonic},
	{Name: "phase-distortion", Enabled: phaseDistortionEnabled, Apply: applyPhaseDistortion},
	{Name: "comb", Enabled: effectPositive(Comb), Apply: applyComb},
	{Name: "chebyshev", Enabled: effectPositive(Chebyshev), Apply: applyChebyshev},
	{Name: "sample-and-hold", Enabled: effectPositive(SampleAndHold), Apply: applySampleAndHold},
	{Name: "track-and-hold", Enabled: effectPositive(TrackAndHold), Apply: applyTrackAndHold},
	{Name: "quantization", Enabled: quantizationEnabled, Apply: applyQuantization},
	{Name: "slew", Enabled: effectPositive(Slew), Apply: applySlew},
	{Name: "brickwall", Enabled: brickwallEnabled, Apply: applyBrickwall},
	{Name: "phase-feedback", Enabled: effectPositive(PhaseFeedback), Apply: applyPhaseFeedback},
	{Name: "frequency-feedback", Enabled: effectPositive(FrequencyFeedback), Apply: applyFrequencyFeedback},
	{Name: "ring-feedback", Enabled: effectPositive(RingFeedback), Apply: applyRingFeedback},
	{Name: "amplitude-feedback", Enabled: effectPositive(AmplitudeFeedback), Apply: applyAmplitudeFeedback},
	{Name: "boost", Enabled: boostEnabled, Apply: applyBoost},
	{Name: "post-gain", Enabled: effectNonZero(PostGain), Apply: applyPostGain},
	{Name: "cycle", Enabled: func(w *Wave) bool { return w.Cycle }, Apply: applyCycle},
	{Name: "normalize", Enabled: func(w *Wave) bool { return w.Normalize }, Apply: applyNormalize},
	{Name: "hard-clip", Enabled: always, Apply: applyHardClip},
}

// Stages returns a copy of the post-processing chain in execution order.
func Stages() []Stage {
	return append([]Stage(nil), chain...)
}

// ActiveStages returns the names of the stages that would run for w.
func (w *Wave) ActiveStages() []string {
	active := utils.Filter(chain, func(s Stage) bool { return s.Enabled(w) })
	return utils.Map(active, func(s Stage) string { return s.Name })
}

func always(*Wave) bool { return true }

func effectPositive(id EffectID) func(*Wave) bool {
	return func(w *Wave) bool { return w.Effects[id] > 0 }
}

func effectNonZero(id EffectID) func(*Wave) bool {
	return func(w *Wave) bool { return w.Effects[id] != 0 }
}

func harmonicEnabled(w *Wave) bool {
	return w.Effects[HarmonicStretch] > 0 || w.Effects[PhaseShift] > 0 ||
		w.Effects[HarmonicAsymmetry] > 0 || w.Effects[HarmonicBalance] > 0 ||
		w.Effects[HarmonicShift] > 0 || w.Effects[HarmonicFold] > 0
}

func phaseDistortionEnabled(w *Wave) bool {
	return w.Effects[PhaseDistortion] > 0 || w.Effects[CubicDistortion] > 0
}

func quantizationEnabled(w *Wave) bool {
	return w.Effects[Quantization] > 1e-3
}

func brickwallEnabled(w *Wave) bool {
	return w.Effects[Lowpass] > 0 || w.Effects[Highpass] != 0
}

func boostEnabled(w *Wave) bool {
	return w.Effects[LowBoost] > 0 || w.Effects[MidBoost] > 0 || w.Effects[HighBoost] > 0
}
