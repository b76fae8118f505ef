package dsp

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// RFFT writes the packed real spectrum of in to out, scaled by 1/N.
// out[0] holds DC, out[1] holds Nyquist, and out[2k], out[2k+1] hold the
// real and imaginary parts of bin k for 0 < k < N/2.
func RFFT(in, out []float64) {
	n := len(in)
	if n == 0 {
		return
	}
	spec := fft.FFTReal(in)
	scale := 1 / float64(n)
	out[0] = real(spec[0]) * scale
	if n > 1 {
		out[1] = real(spec[n/2]) * scale
	}
	for k := 1; k < n/2; k++ {
		out[2*k] = real(spec[k]) * scale
		out[2*k+1] = imag(spec[k]) * scale
	}
}

// IRFFT inverts RFFT.
func IRFFT(in, out []float64) {
	n := len(in)
	if n == 0 {
		return
	}
	if n == 1 {
		out[0] = in[0]
		return
	}
	fn := float64(n)
	spec := make([]complex128, n)
	spec[0] = complex(in[0]*fn, 0)
	spec[n/2] = complex(in[1]*fn, 0)
	for k := 1; k < n/2; k++ {
		c := complex(in[2*k]*fn, in[2*k+1]*fn)
		spec[k] = c
		spec[n-k] = complex(real(c), -imag(c))
	}
	for i, v := range fft.IFFT(spec) {
		out[i] = real(v)
	}
}

// Harmonics converts a packed spectrum into magnitudes, out[k] = 2*|bin k|.
func Harmonics(spectrum, out []float64) {
	for k := range out {
		out[k] = 2 * math.Hypot(spectrum[2*k], spectrum[2*k+1])
	}
}
