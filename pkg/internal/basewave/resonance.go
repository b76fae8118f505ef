package basewave

import (
	"math"
)

// ResonanceAlgorithm selects how resonance remaps the phasor.
type ResonanceAlgorithm int

const (
	// Resonant reads the phasor with a hard-synced counter running 1+4r times
	// faster and fades the cycle out linearly.
	Resonant ResonanceAlgorithm = iota
	// DivisorModulo splits the cycle into 1+4r segments, the last one
	// fractional, each replaying the full phasor with a stepped decay.
	DivisorModulo
	// Harmonic multiplies the phasor by 1+4r and wraps it.
	Harmonic

	resonanceAlgorithmCount
)

func (a ResonanceAlgorithm) String() string {
	switch a {
	case Resonant:
		return "Resonant"
	case DivisorModulo:
		return "Divisor Modulo"
	case Harmonic:
		return "Harmonic"
	default:
		return "Unknown"
	}
}

// resonanceFunc writes the remapped phasor into final and the amplitude
// envelope into env.
type resonanceFunc func(phasor []float64, resonance float64, final, env []float64)

var resonanceFuncs = [resonanceAlgorithmCount]resonanceFunc{
	Resonant:      resonant,
	DivisorModulo: divisorModulo,
	Harmonic:      harmonic,
}

func (a ResonanceAlgorithm) apply(phasor []float64, resonance float64, final, env []float64) {
	if a < 0 || a >= resonanceAlgorithmCount {
		a = Resonant
	}
	resonanceFuncs[a](phasor, resonance, final, env)
}

func resonant(phasor []float64, resonance float64, final, env []float64) {
	n := float64(len(phasor))
	rate := (1 + MaxResonance*resonance) / n
	sync := 0.0
	for i := range final {
		final[i] = phasor[int(sync*n)]
		env[i] = (n - float64(i)) / n
		sync += rate
		for sync >= 1 {
			sync--
		}
	}
}

func divisorModulo(phasor []float64, resonance float64, final, env []float64) {
	n := float64(len(phasor))
	m := 1 + MaxResonance*resonance
	whole := math.Floor(m)
	part := m - whole
	segments := math.Ceil(m)
	for i := range final {
		x := float64(i) / n * m
		seg := math.Floor(x)
		local := x - seg
		if seg >= whole && part > 0 {
			local = (x - whole) / part
		}
		idx := min(int(local*n), len(phasor)-1)
		final[i] = phasor[idx]
		env[i] = 1 - seg/segments
	}
}

func harmonic(phasor []float64, resonance float64, final, env []float64) {
	n := float64(len(phasor))
	m := 1 + MaxResonance*resonance
	for i := range final {
		final[i] = math.Mod(phasor[i]*m, 1)
		env[i] = 1 - resonance*float64(i)/n
	}
}
