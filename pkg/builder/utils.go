package builder

import (
	"math"

	"github.com/joeydtaylor/wavetable/pkg/internal/dsp"
	"github.com/joeydtaylor/wavetable/pkg/internal/utils"
	"gonum.org/v1/gonum/floats"
)

// Map applies a function to each element in the slice.
func Map[T, U any](elems []T, f func(T) U) []U {
	return utils.Map(elems, f)
}

// Filter returns a new slice holding only the elements of elems that satisfy f().
func Filter[T any](elems []T, f func(T) bool) []T {
	return utils.Filter(elems, f)
}

// WaveAnalysis summarizes the spectrum of one cycle.
type WaveAnalysis struct {
	Harmonics []float64
	// Dominant is the strongest harmonic above DC, 0 for silence.
	Dominant   int
	TotalPower float64
	Energy     float64
	// SNR is the dominant harmonic's power against all others, in dB.
	SNR float64
}

// AnalyzeWave computes the harmonic magnitudes of a cycle and a few summary
// figures. len(samples) must be even.
func AnalyzeWave(samples []float64) WaveAnalysis {
	n := len(samples)
	spec := make([]float64, n)
	harmonics := make([]float64, n/2)
	dsp.RFFT(samples, spec)
	dsp.Harmonics(spec, harmonics)

	power := make([]float64, len(harmonics))
	for i, h := range harmonics {
		power[i] = h * h
	}
	a := WaveAnalysis{
		Harmonics:  harmonics,
		TotalPower: floats.Sum(power),
		Energy:     floats.Dot(samples, samples),
	}
	if len(power) < 2 || a.TotalPower == 0 {
		return a
	}

	a.Dominant = floats.MaxIdx(power[1:]) + 1
	signal := power[a.Dominant]
	noise := a.TotalPower - signal
	if noise <= 0 {
		a.SNR = math.Inf(1)
	} else {
		a.SNR = 10 * math.Log10(signal/noise)
	}
	return a
}
