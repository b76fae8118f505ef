package dsp

import "math"

// Int16ToFloat converts PCM samples into [-1, 1).
func Int16ToFloat(in []int16, out []float64) {
	for i, v := range in {
		out[i] = float64(v) / 32768
	}
}

// FloatToInt16 converts samples to PCM, clipping to [-1, 1].
func FloatToInt16(in []float64, out []int16) {
	for i, v := range in {
		out[i] = int16(math.Round(Clamp(v, -1, 1) * 32767))
	}
}
