package basewave

import (
	"math"

	"github.com/joeydtaylor/wavetable/pkg/internal/dsp"
	"github.com/joeydtaylor/wavetable/pkg/internal/oscillator"
	"github.com/joeydtaylor/wavetable/pkg/internal/types"
)

// shapePair maps a selector in [0, 1] onto two adjacent shapes and the blend between them.
func shapePair(selector float64) (oscillator.Shape, oscillator.Shape, float64) {
	f := dsp.Clamp(selector, 0, 1) * float64(oscillator.ShapeCount-1)
	base := math.Floor(f)
	a := oscillator.Shape(int(base))
	next := oscillator.Shape((int(base) + 1) % int(oscillator.ShapeCount))
	return a, next, f - base
}

// UpdateShape renders the blended oscillator cycle into Shape.
func (b *BaseWave) UpdateShape() {
	la, lb, lr := shapePair(b.LowerShape)
	ua, ub, ur := la, lb, lr
	if !b.LockShapes {
		ua, ub, ur = shapePair(b.UpperShape)
	}

	osc := oscillator.Oscillator{
		PulseWidth: b.PulseWidth,
		Dt:         1 / dsp.Rescale(dsp.Clamp(b.Brightness, 0, 1), 0, 1, types.WaveLen/4, types.WaveLen),
	}
	osc.Render(la, lb, lr, ua, ub, ur, b.shape[:])
}
