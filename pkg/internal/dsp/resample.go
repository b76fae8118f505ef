package dsp

// Resample linearly resamples in into out, reading in at i/ratio for each
// output index. Reads past the end of in are clamped to the last sample.
// It returns the number of samples written.
func Resample(in, out []float64, ratio float64) int {
	if len(in) == 0 || ratio <= 0 {
		return 0
	}
	last := float64(len(in) - 1)
	written := 0
	for i := range out {
		x := float64(i) / ratio
		if x > last {
			break
		}
		out[i] = Linterp(in, x)
		written++
	}
	return written
}

// CyclicOversample fills out (len(in)*factor samples) by interpolating the
// periodic buffer in, where in[len(in)] is taken to equal in[0].
func CyclicOversample(in, out []float64, factor int) {
	wrapped := WithWrap(in)
	for i := range out {
		out[i] = Linterp(wrapped, float64(i)/float64(factor))
	}
}

// CyclicUndersample decimates in by factor into out.
func CyclicUndersample(in, out []float64, factor int) {
	for i := range out {
		out[i] = in[i*factor]
	}
}
