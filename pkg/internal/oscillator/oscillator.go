package oscillator

import (
	"math"

	"github.com/joeydtaylor/wavetable/pkg/internal/dsp"
)

// Pulse width limits. The generators divide by pw, 1-pw and pw*(1-pw).
const (
	MinPulseWidth = 0.01
	MaxPulseWidth = 0.99
)

// Oscillator renders band-limited single cycles. PulseWidth is the phase at
// which the lower half of the cycle ends; Dt is the per-sample phase
// increment of the notional playback rate and sets the width of the
// blep/blamp corrections.
type Oscillator struct {
	PulseWidth float64
	Dt         float64
}

func (o Oscillator) pw() float64 {
	return dsp.Clamp(o.PulseWidth, MinPulseWidth, MaxPulseWidth)
}

// Render writes a crossfade of shapes a and b into out. The lower half of the
// cycle blends lowerA into lowerB by lowerRatio and the upper half blends
// upperA into upperB by upperRatio. When both halves ask for the same blend the
// full cycle is generated in one pass.
func (o Oscillator) Render(lowerA, lowerB Shape, lowerRatio float64, upperA, upperB Shape, upperRatio float64, out []float64) {
	n := len(out)
	samplesA := make([]float64, n)
	samplesB := make([]float64, n)
	compA := make([]float64, n)
	compB := make([]float64, n)

	if lowerA == upperA && lowerB == upperB && lowerRatio == upperRatio {
		o.Wave(lowerA, true, true, samplesA, compA)
		o.Wave(lowerB, true, true, samplesB, compB)
		for i := range out {
			out[i] = dsp.Crossfade(samplesA[i]+compA[i], samplesB[i]+compB[i], lowerRatio)
		}
		return
	}

	o.Wave(lowerA, true, false, samplesA, compA)
	o.Wave(lowerB, true, false, samplesB, compB)
	for i := range out {
		out[i] = dsp.Crossfade(samplesA[i]+compA[i], samplesB[i]+compB[i], lowerRatio)
	}

	clear(samplesA)
	clear(samplesB)
	clear(compA)
	clear(compB)

	o.Wave(upperA, false, true, samplesA, compA)
	o.Wave(upperB, false, true, samplesB, compB)
	for i := range out {
		out[i] += dsp.Crossfade(samplesA[i]+compA[i], samplesB[i]+compB[i], upperRatio)
	}
}

// Wave renders one shape. Samples are normalized to [-1, 1]; the
// compensation signal is left as generated so it can be added on top.
func (o Oscillator) Wave(shape Shape, lower, upper bool, samples, compensation []float64) {
	switch shape {
	case Sine:
		o.sine(lower, upper, samples)
	case HalfSine:
		o.halfSine(lower, upper, samples, compensation)
	case Triangle:
		o.triangle(lower, upper, samples, compensation)
	case TriPulse:
		o.triPulse(lower, upper, samples, compensation)
	case Square:
		o.square(lower, upper, samples, compensation)
	case Rectangle:
		o.rectangle(lower, upper, samples, compensation)
	case Trapezoid:
		o.trapezoid(lower, upper, samples, compensation)
	}
	dsp.Normalize(samples, -1, 1, 0)
}

func phaseAt(i, n int) float64 {
	return float64(i) / float64(n)
}

func (o Oscillator) sine(lower, upper bool, samples []float64) {
	pw := o.pw()
	for i := range samples {
		phase := phaseAt(i, len(samples))
		if phase < pw && lower {
			samples[i] = math.Sin(math.Pi * (phase/pw - 0.5))
		} else if phase >= pw && upper {
			samples[i] = math.Sin(math.Pi * ((phase-pw)/(1-pw) + 0.5))
		}
	}
}

func (o Oscillator) halfSine(lower, upper bool, samples, comp []float64) {
	pw, dt := o.pw(), o.Dt
	t1 := 0.5 * pw
	t2 := pw + (1-pw)*0.5
	for i := range samples {
		phase := phaseAt(i, len(samples))
		if lower {
			comp[i] += 2 * math.Pi * dt * dsp.Blamp(math.Mod(t1+1-phase, 1), dt)
			if phase < pw {
				if phase > t1 {
					samples[i] = 2*math.Sin(math.Pi*(phase/pw-0.5)) - 1
				} else {
					samples[i] = -1
				}
			}
		}
		if upper {
			comp[i] += 2 * math.Pi * dt * dsp.Blamp(math.Mod(t2+1-phase, 1), dt)
			if phase >= pw {
				if phase < t2 {
					samples[i] = 2*math.Sin(math.Pi*((phase-pw)/(1-pw)+0.5)) - 1
				} else {
					samples[i] = -1
				}
			}
		}
	}
}

func (o Oscillator) triangle(lower, upper bool, samples, comp []float64) {
	pw, dt := o.pw(), o.Dt
	t2 := pw
	for i := range samples {
		phase := phaseAt(i, len(samples))
		// Assigned, not accumulated: the triangle correction covers both corners.
		comp[i] = dt / (pw - pw*pw) * (dsp.Blamp(math.Mod(phase, 1), dt) - dsp.Blamp(math.Mod(t2+1-phase, 1), dt))

		if lower && phase < pw {
			samples[i] = 2*phase/pw - 1
		} else if upper && phase >= pw {
			samples[i] = 1 - 2*(phase-t2)/(1-pw)
		}
	}
}

func (o Oscillator) triPulse(lower, upper bool, samples, comp []float64) {
	pw, dt := o.pw(), o.Dt
	t1 := 0.5 * pw
	t2 := pw
	t3 := pw + 0.5*(1-pw)
	k := dt / (pw - pw*pw)
	for i := range samples {
		phase := phaseAt(i, len(samples))
		comp[i] = -k * dsp.Blamp(math.Mod(t2+1-phase, 1), dt)

		if lower {
			comp[i] += k * dsp.Blamp(math.Mod(1+t1-phase, 1), dt)
			if phase < t1 {
				samples[i] = -1
			} else if phase < t2 {
				samples[i] = dsp.Rescale(phase, t1, t2, -1, 1)
			}
		}
		if upper {
			comp[i] += k * dsp.Blamp(math.Mod(1+t3-phase, 1), dt)
			if t2 <= phase && phase < t3 {
				samples[i] = dsp.Rescale(phase, t2, t3, 1, -1)
			} else if phase >= t3 {
				samples[i] = -1
			}
		}
	}
}

func (o Oscillator) square(lower, upper bool, samples, comp []float64) {
	pw, dt := o.pw(), o.Dt
	t1 := 0.5 * pw
	t2 := pw + (1-pw)*0.5
	for i := range samples {
		phase := phaseAt(i, len(samples))
		if lower {
			comp[i] += dsp.Blep(math.Mod(1-t1+phase, 1), dt)
			if phase < pw {
				if phase < t1 {
					samples[i] = -1
				} else {
					samples[i] = 1
				}
			}
		}
		if upper {
			comp[i] -= dsp.Blep(math.Mod(1-t2+phase, 1), dt)
			if phase >= pw {
				if phase < t2 {
					samples[i] = 1
				} else {
					samples[i] = -1
				}
			}
		}
	}
}

func (o Oscillator) rectangle(lower, upper bool, samples, comp []float64) {
	pw, dt := o.pw(), o.Dt
	t1 := 0.25 * pw
	t2 := pw - 0.25*pw
	t3 := pw + (1-pw)*0.25
	t4 := 1 - (1-pw)*0.25
	for i := range samples {
		phase := phaseAt(i, len(samples))
		if lower {
			comp[i] += dsp.Blep(math.Mod(1-t1+phase, 1), dt) * 0.5
			comp[i] += dsp.Blep(math.Mod(1-t2+phase, 1), dt) * 0.5
			if phase < pw {
				switch {
				case phase < t1:
					samples[i] = -1
				case phase >= t2:
					samples[i] = 1
				default:
					samples[i] = 0
				}
			}
		}
		if upper {
			comp[i] -= dsp.Blep(math.Mod(1-t3+phase, 1), dt) * 0.5
			comp[i] -= dsp.Blep(math.Mod(1-t4+phase, 1), dt) * 0.5
			if phase >= pw {
				switch {
				case phase < t3:
					samples[i] = 1
				case phase >= t4:
					samples[i] = -1
				default:
					samples[i] = 0
				}
			}
		}
	}
}

func (o Oscillator) trapezoid(lower, upper bool, samples, comp []float64) {
	pw, dt := o.pw(), o.Dt
	t1 := 0.25 * pw
	t2 := 0.25 + 0.75*pw
	for i := range samples {
		phase := phaseAt(i, len(samples))
		if lower {
			comp[i] += 2 / pw * dt * (dsp.Blamp(math.Mod(1-t1+phase, 1), dt) -
				dsp.Blamp(math.Mod(1+pw-t1-phase, 1), dt))
			if phase < pw {
				samples[i] = dsp.Clamp(dsp.Rescale(phase, t1, pw-t1, -1, 1), -1, 1)
			}
		}
		if upper {
			comp[i] += 2 / (1 - pw) * dt * (dsp.Blamp(math.Mod(1-pw+t2+phase, 1), dt) -
				dsp.Blamp(math.Mod(1-t2+phase, 1), dt))
			if phase >= pw {
				samples[i] = dsp.Clamp(dsp.Rescale(phase, t2, 1+pw-t2, 1, -1), -1, 1)
			}
		}
	}
}
