package dsp

import "gonum.org/v1/gonum/floats"

// Normalize rescales buf in place so its extremes map to [newMin, newMax].
// When the range is below 1e-6 every sample is set to empty instead.
func Normalize(buf []float64, newMin, newMax, empty float64) {
	if len(buf) == 0 {
		return
	}
	hi := floats.Max(buf)
	lo := floats.Min(buf)
	if hi-lo >= 1e-6 {
		for i, v := range buf {
			buf[i] = Rescale(v, lo, hi, newMin, newMax)
		}
		return
	}
	for i := range buf {
		buf[i] = empty
	}
}

// RemoveDC subtracts the mean from buf.
func RemoveDC(buf []float64) {
	if len(buf) == 0 {
		return
	}
	floats.AddConst(-floats.Sum(buf)/float64(len(buf)), buf)
}

// HardClip clamps every sample to [-1, 1].
func HardClip(buf []float64) {
	for i, v := range buf {
		buf[i] = Clamp(v, -1, 1)
	}
}
