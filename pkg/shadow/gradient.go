package shadow

import "github.com/go-drift/shadow/pkg/graphics"

// LinearEdgeGradient returns the falloff for a straight edge in the
// canonical top frame: fully transparent on the outer boundary (y = 0) and
// the shadow color at y = size, next to the content. It returns nil when
// size is not positive.
func LinearEdgeGradient(size float64, color graphics.Color) *graphics.Gradient {
	if !(size > 0) {
		return nil
	}
	return graphics.NewLinearGradient(
		graphics.Offset{},
		graphics.Offset{Y: size},
		[]graphics.GradientStop{
			{Position: 0, Color: transparentOf(color)},
			{Position: 1, Color: color},
		},
	)
}

// RadialCornerGradient returns the falloff for a corner sector: transparent
// at the center, the shadow color on the inner radius and transparent again
// on the outer radius. It returns nil when outer is not positive, in which
// case the corner has nothing to draw.
func RadialCornerGradient(center graphics.Offset, outer, inner float64, color graphics.Color) *graphics.Gradient {
	if !(outer > 0) {
		return nil
	}
	ratio := inner / outer
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	return graphics.NewRadialGradient(center, outer, []graphics.GradientStop{
		{Position: 0, Color: transparentOf(color)},
		{Position: ratio, Color: color},
		{Position: 1, Color: transparentOf(color)},
	})
}

// transparentOf returns c with zero alpha and its color channels intact.
func transparentOf(c graphics.Color) graphics.Color {
	return c.WithAlpha8(0)
}
