package dsp

// ComplexMultiply returns (ar + i*ai) * (br + i*bi).
func ComplexMultiply(ar, ai, br, bi float64) (float64, float64) {
	return ar*br - ai*bi, ar*bi + ai*br
}

// MultiplySpectra multiplies two packed spectra bin by bin into dst.
// DC and Nyquist are multiplied as reals. dst may alias a or b.
func MultiplySpectra(dst, a, b []float64) {
	n := len(dst)
	if n == 0 {
		return
	}
	dst[0] = a[0] * b[0]
	if n > 1 {
		dst[1] = a[1] * b[1]
	}
	for k := 1; k < n/2; k++ {
		dst[2*k], dst[2*k+1] = ComplexMultiply(a[2*k], a[2*k+1], b[2*k], b[2*k+1])
	}
}
