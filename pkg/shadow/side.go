package shadow

import (
	"fmt"
	"math"

	"github.com/go-drift/shadow/pkg/graphics"
)

// Side identifies one edge of the bounds. Start is the leading edge.
type Side int

const (
	SideStart Side = iota
	SideTop
	SideEnd
	SideBottom
)

// Sides lists every side in clockwise order starting at the leading edge.
var Sides = [4]Side{SideStart, SideTop, SideEnd, SideBottom}

// String returns a human-readable representation of the side.
func (s Side) String() string {
	switch s {
	case SideStart:
		return "start"
	case SideTop:
		return "top"
	case SideEnd:
		return "end"
	case SideBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Before returns the side preceding s in clockwise order.
func (s Side) Before() Side {
	return (s + 3) % 4
}

// After returns the side following s in clockwise order.
func (s Side) After() Side {
	return (s + 1) % 4
}

// CornerBefore returns the corner where s meets the preceding side. Edges
// are drawn in the frame of this corner.
func (s Side) CornerBefore() Corner {
	return Corner(s.Before())
}

// CornerAfter returns the corner where s meets the following side.
func (s Side) CornerAfter() Corner {
	return Corner(s)
}

// Corner identifies a junction of two adjacent sides.
type Corner int

const (
	CornerTopStart Corner = iota
	CornerTopEnd
	CornerBottomEnd
	CornerBottomStart
)

// Corners lists every corner in clockwise order starting at the top-start.
var Corners = [4]Corner{CornerTopStart, CornerTopEnd, CornerBottomEnd, CornerBottomStart}

// String returns a human-readable representation of the corner.
func (c Corner) String() string {
	switch c {
	case CornerTopStart:
		return "top_start"
	case CornerTopEnd:
		return "top_end"
	case CornerBottomEnd:
		return "bottom_end"
	case CornerBottomStart:
		return "bottom_start"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// Sides returns the two sides meeting at c. In the corner's canonical frame
// the first runs along the local y axis and the second along the local x
// axis.
func (c Corner) Sides() (vertical, horizontal Side) {
	return Side(c), Side(c).After()
}

// Transform places canonical geometry at one of the four corners of the
// bounds: a clockwise rotation followed by a translation.
type Transform struct {
	Translation graphics.Offset
	Rotation    float64 // radians
}

// Quadrant returns the transform mapping the canonical top-start frame onto
// corner c of a box of the given size.
func Quadrant(c Corner, size graphics.Size) Transform {
	rotation := float64(c) * math.Pi / 2
	switch c {
	case CornerTopEnd:
		return Transform{Translation: graphics.Offset{X: size.Width}, Rotation: rotation}
	case CornerBottomEnd:
		return Transform{Translation: graphics.Offset{X: size.Width, Y: size.Height}, Rotation: rotation}
	case CornerBottomStart:
		return Transform{Translation: graphics.Offset{Y: size.Height}, Rotation: rotation}
	default:
		return Transform{}
	}
}

// IsIdentity reports whether the transform leaves points unchanged.
func (t Transform) IsIdentity() bool {
	return t == Transform{}
}

// Apply maps a canonical point into the box frame.
func (t Transform) Apply(p graphics.Offset) graphics.Offset {
	sin, cos := math.Sincos(t.Rotation)
	return graphics.Offset{
		X: p.X*cos - p.Y*sin + t.Translation.X,
		Y: p.X*sin + p.Y*cos + t.Translation.Y,
	}
}

// ApplyRect maps a canonical rectangle into the box frame. Rotations are
// multiples of 90 degrees, so the result stays axis aligned.
func (t Transform) ApplyRect(r graphics.Rect) graphics.Rect {
	a := t.Apply(graphics.Offset{X: r.Left, Y: r.Top})
	b := t.Apply(graphics.Offset{X: r.Right, Y: r.Bottom})
	return graphics.Rect{
		Left:   math.Round(math.Min(a.X, b.X)*1e9) / 1e9,
		Top:    math.Round(math.Min(a.Y, b.Y)*1e9) / 1e9,
		Right:  math.Round(math.Max(a.X, b.X)*1e9) / 1e9,
		Bottom: math.Round(math.Max(a.Y, b.Y)*1e9) / 1e9,
	}
}

// apply pushes the transform onto the canvas. The caller restores.
func (t Transform) apply(canvas graphics.Canvas) {
	canvas.Translate(t.Translation.X, t.Translation.Y)
	if t.Rotation != 0 {
		canvas.Rotate(t.Rotation)
	}
}
