package basewave

import (
	"math"

	"github.com/joeydtaylor/wavetable/pkg/internal/dsp"
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
)

// controlPoint projects an angle/magnitude pair onto x and y measured from a
// corner. Angles up to 0.5 hold y at the magnitude, larger angles hold x.
func controlPoint(angle, magnitude float64) (float64, float64) {
	a := angle * math.Pi / 2
	if angle <= 0.5 {
		l := magnitude / math.Cos(a)
		return l * math.Sin(a), magnitude
	}
	l := magnitude / math.Sin(a)
	return magnitude, l * math.Cos(a)
}

// UpdatePhasor rebuilds the phasor from the bottom and top control points and
// crossfades in the rational Bezier through them when BezierRatio > 0.
func (b *BaseWave) UpdatePhasor() {
	const n = types.WaveLen

	b.bottomX, b.bottomY = 0, 0
	if b.BottomMagnitude > 0 {
		b.bottomX, b.bottomY = controlPoint(b.BottomAngle, b.BottomMagnitude)
	}
	b.topX, b.topY = 1, 1
	if b.TopMagnitude > 0 {
		x, y := controlPoint(b.TopAngle, b.TopMagnitude)
		b.topX, b.topY = 1-x, 1-y
	}
	points := b.ControlPoints()

	linear := make([]float64, n+1)
	for p := 1; p < len(points); p++ {
		x1, y1 := points[p-1][0], points[p-1][1]
		x2, y2 := points[p][0], points[p][1]
		dx, dy := x2-x1, y2-y1
		for x := x1 * n; x <= x2*n; x++ {
			idx := int(x)
			if idx < 0 || idx > n {
				continue
			}
			if dx != 0 {
				linear[idx] = y1 + dy*(x/n-x1)/dx
			} else {
				linear[idx] = y2
			}
		}
	}
	copy(b.phasor[:], linear[:n])

	if b.BezierRatio <= 0 {
		return
	}

	bezier := make([]float64, n+1)
	w := 1 + b.BezierWeight*BezierMaxWeight
	step := 1.0 / n / BezierOversample
	for u := 0.0; u < 1; u += step {
		v := 1 - u
		c0 := v * v * v
		c1 := w * 3 * u * v * v
		c2 := w * 3 * u * u * v
		c3 := u * u * u
		bw := c0 + c1 + c2 + c3
		bx := (c0*points[0][0] + c1*points[1][0] + c2*points[2][0] + c3*points[3][0]) / bw
		by := (c0*points[0][1] + c1*points[1][1] + c2*points[2][1] + c3*points[3][1]) / bw
		bezier[int(dsp.Clamp(bx, 0, 1)*n)] = dsp.Clamp(by, -1, 1)
	}
	for i := range b.phasor {
		b.phasor[i] = dsp.Crossfade(b.phasor[i], bezier[i], b.BezierRatio)
	}
}
