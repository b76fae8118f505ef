package dsp

import "math"

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x > hi {
		return hi
	}
	if x < lo {
		return lo
	}
	return x
}

// Chop returns 0 when |x| < eps.
func Chop(x, eps float64) float64 {
	if -eps < x && x < eps {
		return 0
	}
	return x
}

// Rescale maps x from [xMin, xMax] onto [yMin, yMax] without clamping.
func Rescale(x, xMin, xMax, yMin, yMax float64) float64 {
	return yMin + (x-xMin)/(xMax-xMin)*(yMax-yMin)
}

// Crossfade returns (1-frac)*a + frac*b.
func Crossfade(a, b, frac float64) float64 {
	return (1-frac)*a + frac*b
}

// Eucmod is the euclidean remainder of a by base, always in [0, base).
func Eucmod(a, base float64) float64 {
	m := math.Mod(a, base)
	if m < 0 {
		m += base
	}
	return m
}

// EucmodInt is the integer euclidean remainder.
func EucmodInt(a, base int) int {
	m := a % base
	if m < 0 {
		m += base
	}
	return m
}

// Linterp reads p at fractional index x. p must hold at least ceil(x)+1 elements.
func Linterp(p []float64, x float64) float64 {
	xi := int(x)
	xf := x - float64(xi)
	if xf > 0 {
		return Crossfade(p[xi], p[xi+1], xf)
	}
	return p[xi]
}

// WithWrap returns a copy of buf with buf[0] appended, so index len(buf) is readable.
func WithWrap(buf []float64) []float64 {
	out := make([]float64, len(buf)+1)
	copy(out, buf)
	if len(buf) > 0 {
		out[len(buf)] = buf[0]
	}
	return out
}
