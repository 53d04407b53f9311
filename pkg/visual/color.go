package visual

import "github.com/go-drift/shadow/pkg/graphics"

// ColorVisual fills its bounds with a single color.
type ColorVisual struct {
	Base
	color graphics.Color
}

// NewColorVisual returns a visual painting color over its bounds.
func NewColorVisual(color graphics.Color) *ColorVisual {
	v := &ColorVisual{color: color}
	v.SetSelf(v)
	return v
}

// Transparent returns a visual that draws nothing. Wrappers use it in place
// of a missing visual.
func Transparent() *ColorVisual {
	return NewColorVisual(graphics.ColorTransparent)
}

// Color returns the configured color.
func (v *ColorVisual) Color() graphics.Color {
	return v.color
}

// SetColor changes the fill color and requests a redraw.
func (v *ColorVisual) SetColor(color graphics.Color) {
	if v.color == color {
		return
	}
	v.color = color
	v.InvalidateSelf()
}

// effectiveColor applies tint and alpha to the configured color.
func (v *ColorVisual) effectiveColor() graphics.Color {
	c := v.color
	if tint, ok := v.Tint(); ok {
		c = tint.WithAlpha8(c.Alpha8())
	}
	return c.ScaleAlpha(v.AlphaFraction())
}

func (v *ColorVisual) Draw(canvas graphics.Canvas) {
	if !v.IsVisible() {
		return
	}
	c := v.effectiveColor()
	if c.Alpha8() == 0 {
		return
	}
	canvas.DrawRect(v.Bounds(), graphics.Paint{Color: c, Alpha: 1})
}

func (v *ColorVisual) Opacity() Opacity {
	switch v.effectiveColor().Alpha8() {
	case 0:
		return OpacityTransparent
	case 0xFF:
		return OpacityOpaque
	default:
		return OpacityTranslucent
	}
}
