package graphics

// Paint describes how to fill a shape on the canvas.
//
// A zero-value Paint draws nothing (transparent color, Alpha 0).
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color    Color
	Gradient *Gradient // If set, overrides Color for the fill
	Alpha    float64   // Overall opacity 0.0-1.0
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color: ColorWhite,
		Alpha: 1.0,
	}
}

// GradientPaint returns an opaque paint filled with the given gradient.
func GradientPaint(gradient *Gradient) Paint {
	return Paint{
		Color:    ColorWhite,
		Gradient: gradient,
		Alpha:    1.0,
	}
}

// IsVisible reports whether the paint can produce any coverage.
func (p Paint) IsVisible() bool {
	if p.Alpha <= 0 {
		return false
	}
	if p.Gradient != nil {
		return p.Gradient.IsValid()
	}
	return p.Color.Alpha8() != 0
}
