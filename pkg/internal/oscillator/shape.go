package oscillator

// Shape selects one of the elementary single-cycle generators.
type Shape int

const (
	Sine Shape = iota
	HalfSine
	Triangle
	TriPulse
	Square
	Rectangle
	Trapezoid

	// ShapeCount is the number of elementary shapes.
	ShapeCount
)

var shapeNames = [ShapeCount]string{
	Sine:      "Sine",
	HalfSine:  "Half Sine",
	Triangle:  "Triangle",
	TriPulse:  "Tri Pulse",
	Square:    "Square",
	Rectangle: "Rectangle",
	Trapezoid: "Trapezoid",
}

func (s Shape) String() string {
	if s < 0 || s >= ShapeCount {
		return "Unknown"
	}
	return shapeNames[s]
}
