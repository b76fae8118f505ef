package dsp

// Blep is the polynomial band-limited step residual for a discontinuity at
// phase 0, nonzero only within dt of it on either side.
func Blep(t, dt float64) float64 {
	switch {
	case t < dt:
		x := t/dt - 1
		return -x * x
	case t > 1-dt:
		x := (t-1)/dt + 1
		return x * x
	default:
		return 0
	}
}

// Blamp is the integrated form of Blep, used for slope discontinuities.
func Blamp(t, dt float64) float64 {
	switch {
	case t < dt:
		x := t/dt - 1
		return -1 / 3.0 * x * x * x
	case t > 1-dt:
		x := (t-1)/dt + 1
		return 1 / 3.0 * x * x * x
	default:
		return 0
	}
}
