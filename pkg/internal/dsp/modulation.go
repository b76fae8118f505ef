package dsp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Oversample is the rate multiplier the modulation kernels run at.
const Oversample = 4

// modulationBuffers holds the oversampled working set shared by the four
// modulation kernels. lookup and mod carry two guard elements because a
// position of fmod(x, L+1) may fall between L and L+1.
type modulationBuffers struct {
	length int
	out    []float64
	lookup []float64
	mod    []float64
	frac   float64
	lo, hi float64
}

func newModulationBuffers(carrier, modulator []float64, index float64) *modulationBuffers {
	n := len(carrier)
	l := n * Oversample
	b := &modulationBuffers{
		length: l,
		out:    make([]float64, l),
		lookup: make([]float64, l+2),
		mod:    make([]float64, l+2),
		lo:     math.Ceil(index),
		hi:     math.Ceil(index + 1),
	}
	CyclicOversample(modulator, b.mod[:l], Oversample)
	CyclicOversample(carrier, b.out, Oversample)
	copy(b.lookup, b.out)
	b.wrap()

	b.frac = math.Mod(index, 1)
	if b.frac == 0 {
		b.frac = 1
	}
	return b
}

func (b *modulationBuffers) wrap() {
	l := b.length
	b.mod[l], b.mod[l+1] = b.mod[0], b.mod[1%l]
	b.lookup[l], b.lookup[l+1] = b.lookup[0], b.lookup[1%l]
}

// modulators returns the two integer-harmonic modulator reads for sample i.
func (b *modulationBuffers) modulators(i int) (float64, float64) {
	period := float64(b.length + 1)
	m1 := Linterp(b.mod, math.Mod(float64(i)*b.lo, period))
	m2 := Linterp(b.mod, math.Mod(float64(i)*b.hi, period))
	return m1, m2
}

func (b *modulationBuffers) read(pos float64) float64 {
	return Linterp(b.lookup, Eucmod(pos, float64(b.length+1)))
}

func (b *modulationBuffers) finish(carrier []float64) {
	CyclicUndersample(b.out, carrier, Oversample)
}

// RingModulation multiplies carrier by modulator in place, read at the
// harmonics ceil(index) and ceil(index+1) and blended by the fractional index.
func RingModulation(carrier, modulator []float64, index, depth float64) {
	if len(carrier) == 0 {
		return
	}
	b := newModulationBuffers(carrier, modulator, index)
	for i := range b.out {
		m1, m2 := b.modulators(i)
		b.out[i] *= Crossfade(1, Crossfade(m1, m2, b.frac), depth)
	}
	b.finish(carrier)
}

// AmplitudeModulation scales carrier by 1 plus the unipolar modulator.
func AmplitudeModulation(carrier, modulator []float64, index, depth float64) {
	if len(carrier) == 0 {
		return
	}
	b := newModulationBuffers(carrier, modulator, index)
	for i := range b.out {
		m1, m2 := b.modulators(i)
		b.out[i] *= 1 + Crossfade(
			Rescale(m1, -1, 1, 0, depth),
			Rescale(m2, -1, 1, 0, depth),
			b.frac)
	}
	b.finish(carrier)
}

// PhaseModulation offsets the carrier read phase by modulator*depth.
func PhaseModulation(carrier, modulator []float64, index, depth float64) {
	if len(carrier) == 0 {
		return
	}
	b := newModulationBuffers(carrier, modulator, index)
	l := float64(b.length)
	for i := range b.out {
		m1, m2 := b.modulators(i)
		p1 := float64(i)/l + m1*depth
		p2 := float64(i)/l + m2*depth
		if p1 <= 0 {
			p1 = 1 - p1
		}
		if p2 <= 0 {
			p2 = 1 - p2
		}
		b.out[i] = Crossfade(b.read(p1*l), b.read(p2*l), b.frac)
	}
	b.finish(carrier)
}

// FrequencyModulation scales the carrier read rate by 1 +/- depth following
// the modulator. The modulator's DC offset is removed first.
func FrequencyModulation(carrier, modulator []float64, index, depth float64) {
	if len(carrier) == 0 {
		return
	}
	b := newModulationBuffers(carrier, modulator, index)
	RemoveDC(b.mod[:b.length])
	b.wrap()

	l := float64(b.length)
	for i := range b.out {
		m1, m2 := b.modulators(i)
		phase := float64(i) / l
		b.out[i] = Crossfade(
			b.read(phase*(1+Rescale(m1, -1, 1, -depth, depth))*l),
			b.read(phase*(1+Rescale(m2, -1, 1, -depth, depth))*l),
			b.frac)
	}
	b.finish(carrier)
}

// SpectralConvolution circularly convolves carrier with modulator in place
// and crossfades the result with the dry carrier when depth < 1.
func SpectralConvolution(carrier, modulator []float64, depth float64) {
	n := len(carrier)
	if n == 0 {
		return
	}
	fc := make([]float64, n)
	fm := make([]float64, n)
	RFFT(carrier, fc)
	RFFT(modulator, fm)
	MultiplySpectra(fc, fc, fm)

	wet := make([]float64, n)
	IRFFT(fc, wet)
	if depth >= 1 {
		copy(carrier, wet)
		return
	}
	floats.Scale(1-depth, carrier)
	floats.AddScaled(carrier, depth, wet)
}

// RotatePhase circularly delays buf by amount of a cycle, in the spectral domain.
func RotatePhase(buf []float64, amount float64) {
	n := len(buf)
	if n < 2 {
		return
	}
	spec := make([]float64, n)
	RFFT(buf, spec)
	for k := 1; k < n/2; k++ {
		s, c := math.Sincos(-2 * math.Pi * float64(k) * amount)
		spec[2*k], spec[2*k+1] = ComplexMultiply(spec[2*k], spec[2*k+1], c, s)
	}
	spec[1] *= math.Cos(math.Pi * float64(n) * amount)
	IRFFT(spec, buf)
}
