package wave

import (
	"math"

	"github.com/joeydtaylor/wavetable/pkg/internal/dsp"
)

const (
	combBase   = 0.75
	combTaps   = 40
	boostLevel = 4.0
	// stretchSteps is the maximum harmonic stretch factor.
	stretchSteps = 8
)

func softClipGain(out []float64, amount float64) {
	gain := math.Pow(20, amount)
	for i, dry := range out {
		x := dry * gain
		if math.Abs(x) >= 1 {
			x = dsp.Clamp(x, -2.0/3, 2.0/3)
		} else {
			x *= 1 - x*x/3
		}
		out[i] = dsp.Crossfade(dry, x*1.5, amount)
	}
}

func applyPreGain(w *Wave, out []float64) {
	softClipGain(out, w.Effects[PreGain])
}

func applyPostGain(w *Wave, out []float64) {
	softClipGain(out, w.Effects[PostGain])
}

// applyHarmonic rotates, rebalances, stretches and folds the spectrum in that order.
func applyHarmonic(w *Wave, out []float64) {
	n := len(out)
	half := n / 2
	shift := dsp.Clamp(w.Effects[HarmonicShift], 0, 1)
	phaseShift := dsp.Clamp(w.Effects[PhaseShift], 0, 1)
	asym := w.Effects[HarmonicAsymmetry]
	balance := w.Effects[HarmonicBalance]
	stretch := w.Effects[HarmonicStretch]

	spec := make([]float64, n)
	stretched := make([]float64, n)
	dsp.RFFT(out, spec)

	for k := 0; k < half; k++ {
		if k > 0 {
			s, c := math.Sincos(2 * math.Pi * (shift + phaseShift*float64(k)))
			spec[2*k], spec[2*k+1] = dsp.ComplexMultiply(spec[2*k], spec[2*k+1], c, -s)
		}

		if (asym > 0 || balance > 0) && k > 1 && k%2 == 0 {
			mag1 := math.Hypot(spec[2*k], spec[2*k+1])
			mag2 := math.Hypot(spec[2*k+2], spec[2*k+3])
			if balance > 0 {
				r1, r2 := 0.0, 0.0
				if mag1 != 0 {
					r1 = 1 - (mag1-mag2)*balance/mag1
				}
				if mag2 != 0 {
					r2 = 1 - (mag2-mag1)*balance/mag2
				}
				scalePair(spec, k, r1, r2)
			}
			if asym > 0 {
				floor := math.Min(mag1, mag2) * asym
				r1, r2 := 0.0, 0.0
				if mag1 != 0 {
					r1 = (mag1 - floor) / mag1
				}
				if mag2 != 0 {
					r2 = (mag2 - floor) / mag2
				}
				scalePair(spec, k, r1, r2)
			}
		}

		if stretch > 0 {
			scale := stretch * stretchSteps
			dstf := math.Mod(float64(k)+float64(k)*scale, float64(half))
			dst := int(dstf) * 2
			ratio := math.Mod(dstf, 1)
			stretched[dst%n] += dsp.Crossfade(spec[2*k], 0, ratio)
			stretched[(dst+1)%n] += dsp.Crossfade(spec[2*k+1], 0, ratio)
			stretched[(dst+2)%n] += dsp.Crossfade(0, spec[2*k], ratio)
			stretched[(dst+3)%n] += dsp.Crossfade(0, spec[2*k+1], ratio)
		}
	}

	src := spec
	if stretch > 0 {
		src = stretched
	}
	if w.Effects[HarmonicFold] > 0 {
		src = fold(src, w.Effects[HarmonicFold])
	}
	dsp.IRFFT(src, out)
}

func scalePair(spec []float64, k int, r1, r2 float64) {
	spec[2*k] *= r1
	spec[2*k+1] *= r1
	spec[2*k+2] *= r2
	spec[2*k+3] *= r2
}

// fold mirrors bins above a cutoff back below it. The cutoff moves from
// Nyquist down to bin 1 as amount goes to 1, and energy is split between the
// two bins around each mirrored position.
func fold(src []float64, amount float64) []float64 {
	n := len(src)
	half := n / 2
	limit := dsp.Rescale(dsp.Clamp(amount, 0, 1), 0, 1, float64(half), 1)
	ilimit := int(limit)
	ratio := 1 - math.Mod(limit, 1)

	out := make([]float64, n)
	copy(out, src[:min(ilimit*2, n)])
	add := func(idx int, v float64) {
		if idx < n {
			out[idx] += v
		}
	}
	for i := ilimit; i < half; i++ {
		dst := i
		if dst >= ilimit*2 {
			dst %= ilimit * 2
		}
		if dst > ilimit {
			dst = ilimit*2 - dst
		}
		add(dst*2, src[i*2]*ratio)
		add(dst*2+1, src[i*2+1]*ratio)
		add(dst*2+2, src[i*2]*(1-ratio))
		add(dst*2+3, src[i*2+1]*(1-ratio))
	}
	return out
}

func applyPhaseDistortion(w *Wave, out []float64) {
	n := len(out)
	tmp := dsp.WithWrap(out)
	midpoint := 0.5 + dsp.Clamp(w.Effects[PhaseDistortion], 0, 1)/2
	cubic := w.Effects[CubicDistortion]

	for i := range out {
		phase := float64(i) / float64(n)
		var dstPhase float64
		if phase < midpoint {
			dstPhase = dsp.Rescale(phase, 0, midpoint, 0, 0.5)
		} else {
			dstPhase = dsp.Rescale(phase, midpoint, 1, 0.5, 1)
		}
		c := dsp.Rescale(dstPhase, 0, 1, -1, 1)
		c = c * c * c
		final := dsp.Crossfade(dstPhase, dsp.Rescale(c, -1, 1, 0, 1), cubic)

		idx := int(final * float64(n))
		idx = max(0, min(idx, n-1))
		delta := (final - float64(idx)/float64(n)) * float64(n)
		out[i] = dsp.Crossfade(tmp[idx], tmp[idx+1], delta)
	}
}

// combKernel builds the spectrum of 40 taps spaced comb apart in time with
// amplitudes decaying by 0.75 and normalized by the geometric series.
func combKernel(n int, comb float64) []float64 {
	kernel := make([]float64, n)
	for j := 0; j < combTaps; j++ {
		amplitude := math.Pow(combBase, float64(j)) * (1 - combBase)
		for k := 0; k < n/2; k++ {
			s, c := math.Sincos(-2 * math.Pi * float64(k) * comb * float64(j))
			kernel[2*k] += amplitude * c
			if k > 0 {
				kernel[2*k+1] += amplitude * s
			}
		}
		kernel[1] += amplitude * math.Cos(-2*math.Pi*float64(n/2)*comb*float64(j))
	}
	return kernel
}

func applyComb(w *Wave, out []float64) {
	n := len(out)
	spec := make([]float64, n)
	dsp.RFFT(out, spec)
	dsp.MultiplySpectra(spec, spec, combKernel(n, w.Effects[Comb]))
	dsp.IRFFT(spec, out)
}

func applyChebyshev(w *Wave, out []float64) {
	order := math.Pow(50, w.Effects[Chebyshev])
	for i, x := range out {
		if -1 <= x && x <= 1 {
			out[i] = math.Sin(order * math.Asin(x))
		} else {
			out[i] = math.Sin(order * math.Asin(1/x))
		}
	}
}

func frameskip(n int, amount float64) float64 {
	return math.Pow(float64(n)/2, dsp.Clamp(amount, 0, 1))
}

func applySampleAndHold(w *Wave, out []float64) {
	n := len(out)
	skip := frameskip(n, w.Effects[SampleAndHold])
	tmp := dsp.WithWrap(out)
	for i := range out {
		index := math.Round(float64(i)/skip) * skip
		out[i] = dsp.Linterp(tmp, dsp.Clamp(index, 0, float64(n-1)))
	}
}

func applyTrackAndHold(w *Wave, out []float64) {
	n := len(out)
	skip := frameskip(n, w.Effects[TrackAndHold])
	tmp := dsp.WithWrap(out)
	for i := range out {
		index := math.Round(float64(i)/skip) * skip
		if float64(i) >= index {
			out[i] = dsp.Linterp(tmp, dsp.Clamp(index, 0, float64(n-1)))
		}
	}
}

func applyQuantization(w *Wave, out []float64) {
	levels := math.Pow(dsp.Clamp(w.Effects[Quantization], 0, 1), -1.5)
	for i, x := range out {
		out[i] = math.Round(x*levels) / levels
	}
}

func applySlew(w *Wave, out []float64) {
	limit := math.Pow(0.001, w.Effects[Slew])
	y := out[0]
	for i := 1; i < len(out); i++ {
		y += dsp.Clamp(out[i]-y, -limit, limit)
		out[i] = y
	}
}

func applyBrickwall(w *Wave, out []float64) {
	n := len(out)
	half := float64(n / 2)
	spec := make([]float64, n)
	dsp.RFFT(out, spec)
	lowpass := 1 - w.Effects[Lowpass]
	highpass := w.Effects[Highpass]
	for i := 1; i < n/2; i++ {
		fi := float64(i)
		v := dsp.Clamp(half*lowpass-fi, 0, 1) * dsp.Clamp(-half*highpass+fi, 0, 1)
		spec[2*i] *= v
		spec[2*i+1] *= v
	}
	dsp.IRFFT(spec, out)
}

// feedbackIndex maps the shared modulation index slider onto [lo, hi].
func feedbackIndex(w *Wave, lo, hi float64) float64 {
	return dsp.Rescale(dsp.Clamp(w.Effects[ModulationIndex], 0, 1), 0, 1, lo, hi)
}

func applyPhaseFeedback(w *Wave, out []float64) {
	dsp.PhaseModulation(out, out, feedbackIndex(w, 0, 4), dsp.Clamp(w.Effects[PhaseFeedback], 0, 1))
}

func applyFrequencyFeedback(w *Wave, out []float64) {
	dsp.FrequencyModulation(out, out, feedbackIndex(w, 0, 4), dsp.Clamp(w.Effects[FrequencyFeedback], 0, 1))
}

func applyRingFeedback(w *Wave, out []float64) {
	dsp.RingModulation(out, out, feedbackIndex(w, 1, 9), dsp.Clamp(w.Effects[RingFeedback], 0, 1))
}

func applyAmplitudeFeedback(w *Wave, out []float64) {
	dsp.AmplitudeModulation(out, out, feedbackIndex(w, 1, 9), dsp.Clamp(w.Effects[AmplitudeFeedback], 0, 1))
}

// boostCurve returns a gain per harmonic. Mid boost multiplies the low and
// high curves rather than adding to them.
func boostCurve(n int, low, mid, high float64) []float64 {
	fn := float64(n)
	quarter := n / 4
	boost := make([]float64, n/2)
	for i := range boost {
		boost[i] = 1
	}
	if low > 0 {
		for i := 0; i < quarter; i++ {
			boost[i] += boostLevel * low * float64(quarter-i) / fn * 4
		}
	}
	if high > 0 {
		for i := quarter; i < n/2; i++ {
			boost[i] += boostLevel * high * float64(1+i-quarter) / fn * 4
		}
	}
	if mid > 0 {
		for i := 0; i < quarter; i++ {
			boost[i] *= 1 + boostLevel*mid*float64(i+1)/fn*4
		}
		for i := quarter; i < n/2; i++ {
			boost[i] *= 1 + boostLevel*mid*float64(n/2-i)/fn*4
		}
	}
	return boost
}

func applyBoost(w *Wave, out []float64) {
	n := len(out)
	boost := boostCurve(n, w.Effects[LowBoost], w.Effects[MidBoost], w.Effects[HighBoost])
	spec := make([]float64, n)
	dsp.RFFT(out, spec)
	for i, b := range boost {
		spec[2*i] *= b
		spec[2*i+1] *= b
	}
	dsp.IRFFT(spec, out)
}

// applyCycle tilts the buffer so the loop point does not jump.
func applyCycle(w *Wave, out []float64) {
	n := float64(len(out))
	start := out[0]
	end := out[len(out)-1] / (n - 1) * n
	for i := range out {
		out[i] -= (end - start) * (float64(i) - n/2) / n
	}
}

func applyNormalize(w *Wave, out []float64) {
	dsp.Normalize(out, -1, 1, 0)
}

func applyHardClip(w *Wave, out []float64) {
	dsp.HardClip(out)
}
