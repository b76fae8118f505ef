package wave

// EffectID indexes a wave's effect parameters.
type EffectID int

const (
	PhaseModulation EffectID = iota
	FrequencyModulation
	RingModulation
	AmplitudeModulation
	PreGain
	PhaseShift
	HarmonicShift
	HarmonicAsymmetry
	HarmonicBalance
	HarmonicStretch
	HarmonicFold
	PhaseDistortion
	CubicDistortion
	Comb
	Chebyshev
	SampleAndHold
	TrackAndHold
	Quantization
	Slew
	Lowpass
	Highpass
	PhaseFeedback
	FrequencyFeedback
	RingFeedback
	AmplitudeFeedback
	ModulationIndex
	LowBoost
	MidBoost
	HighBoost
	PostGain

	// EffectCount is the number of effect slots on every wave.
	EffectCount
)

var effectNames = [EffectCount]string{
	PhaseModulation:     "Phase Modulation",
	FrequencyModulation: "Frequency Modulation",
	RingModulation:      "Ring Modulation",
	AmplitudeModulation: "Amplitude Modulation",
	PreGain:             "Pre-Gain",
	PhaseShift:          "Phase Shift",
	HarmonicShift:       "Harmonic Shift",
	HarmonicAsymmetry:   "Harmonic Asymmetry",
	HarmonicBalance:     "Harmonic Balance",
	HarmonicStretch:     "Harmonic Stretch",
	HarmonicFold:        "Harmonic Fold",
	PhaseDistortion:     "Phase Distortion",
	CubicDistortion:     "Cubic Distortion",
	Comb:                "Comb Filter",
	Chebyshev:           "Chebyshev Wavefolding",
	SampleAndHold:       "Sample & Hold",
	TrackAndHold:        "Track & Hold",
	Quantization:        "Quantization",
	Slew:                "Slew Limiter",
	Lowpass:             "Lowpass Filter",
	Highpass:            "Highpass Filter",
	PhaseFeedback:       "Phase Modulation Feedback",
	FrequencyFeedback:   "Frequency Modulation Feedback",
	RingFeedback:        "Ring Modulation Feedback",
	AmplitudeFeedback:   "Amplitude Modulation Feedback",
	ModulationIndex:     "Modulation Index",
	LowBoost:            "Low Boost",
	MidBoost:            "Mid Boost",
	HighBoost:           "High Boost",
	PostGain:            "Post-Gain",
}

func (e EffectID) String() string {
	if e < 0 || e >= EffectCount {
		return "Unknown"
	}
	return effectNames[e]
}
