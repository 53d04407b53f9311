package shadow

import (
	"math"

	"github.com/go-drift/shadow/pkg/graphics"
)

// Edge is one straight band of the ring in the canonical top frame: the
// band runs along the x axis from the before corner toward the after corner,
// with y = 0 on the outer boundary.
type Edge struct {
	Side Side
	// Rect is empty when the side is hidden or the corners leave no room.
	Rect graphics.Rect
	// Length is the extent of the side in the bounds: the height for start
	// and end, the width for top and bottom.
	Length float64
}

// IsEmpty reports whether the edge draws nothing.
func (e Edge) IsEmpty() bool {
	return e.Rect.IsEmpty()
}

// CornerShape is a quarter-annulus sector in the canonical top-start frame.
type CornerShape struct {
	Corner      Corner
	Active      bool
	Center      graphics.Offset
	OuterRadius float64
	InnerRadius float64
	Gradient    *graphics.Gradient
	Path        *graphics.Path
}

// Geometry is everything needed to draw the ring inside a set of bounds.
// Edge and corner shapes are bounds-local; Bounds and Content are in the
// caller's coordinate space. Padding is the configured padding, shrunk
// where a pair of opposite sides does not fit in the bounds.
type Geometry struct {
	Bounds  graphics.Rect
	Padding graphics.EdgeInsets
	Content graphics.Rect
	// Radii holds the effective radius of each corner after clamping.
	Radii   [4]float64
	Edges   [4]Edge
	Corners [4]CornerShape
	// EdgeGradient fills every edge; nil when the band has no thickness.
	EdgeGradient *graphics.Gradient
}

// Empty reports whether the geometry draws no shadow at all.
func (g Geometry) Empty() bool {
	for _, e := range g.Edges {
		if !e.IsEmpty() {
			return false
		}
	}
	for _, c := range g.Corners {
		if c.Active {
			return false
		}
	}
	return true
}

// Size returns the size of the bounds.
func (g Geometry) Size() graphics.Size {
	return g.Bounds.Size()
}

// Build derives the ring geometry for bounds from cfg. It has no side
// effects, so equal inputs always produce equal geometry.
func Build(bounds graphics.Rect, cfg Config) Geometry {
	cfg = cfg.Normalized()
	g := Geometry{
		Bounds:  bounds,
		Padding: fitPadding(cfg.Padding(), bounds.Size()),
	}
	g.Content = bounds.Deflate(g.Padding)
	for _, side := range Sides {
		g.Edges[side].Side = side
	}
	for _, corner := range Corners {
		g.Corners[corner].Corner = corner
	}
	size := bounds.Size()
	if size.IsEmpty() {
		return g
	}

	maxRadius := size.ShortestSide() / 2
	for _, corner := range Corners {
		g.Radii[corner] = math.Min(cfg.CornerRadius(corner), maxRadius)
	}

	s := cfg.ShadowSize
	g.EdgeGradient = LinearEdgeGradient(s, cfg.ShadowColor)
	for _, side := range Sides {
		g.Edges[side] = buildEdge(side, size, g.Radii, s, cfg)
	}
	for _, corner := range Corners {
		g.Corners[corner] = buildCorner(corner, g.Radii[corner], s, cfg)
	}
	return g
}

// fitPadding shrinks opposite insets that do not fit in size so that they
// add up to the extent, sharing it in proportion to each inset. Padding and
// content then always sum to the bounds.
func fitPadding(p graphics.EdgeInsets, size graphics.Size) graphics.EdgeInsets {
	p.Left, p.Right = fitInsets(p.Left, p.Right, size.Width)
	p.Top, p.Bottom = fitInsets(p.Top, p.Bottom, size.Height)
	return p
}

func fitInsets(a, b, extent float64) (float64, float64) {
	if a+b <= extent {
		return a, b
	}
	if !(extent > 0) {
		return 0, 0
	}
	a = extent * a / (a + b)
	return a, extent - a
}

// clone returns a copy sharing no paths or gradients with g.
func (g Geometry) clone() Geometry {
	out := g
	out.EdgeGradient = g.EdgeGradient.Clone()
	for i := range out.Corners {
		out.Corners[i].Gradient = g.Corners[i].Gradient.Clone()
		out.Corners[i].Path = g.Corners[i].Path.Clone()
	}
	return out
}

func buildEdge(side Side, size graphics.Size, radii [4]float64, s float64, cfg Config) Edge {
	length := size.Width
	if side == SideStart || side == SideEnd {
		length = size.Height
	}
	edge := Edge{Side: side, Length: length}
	if !cfg.Shows(side) || s <= 0 {
		return edge
	}
	start, end := 0.0, length
	if cfg.Shows(side.Before()) {
		start = radii[side.CornerBefore()] + s
	}
	if cfg.Shows(side.After()) {
		end = length - radii[side.CornerAfter()] - s
	}
	if end <= start {
		return edge
	}
	edge.Rect = graphics.Rect{Left: start, Top: 0, Right: end, Bottom: s}
	return edge
}

func buildCorner(corner Corner, radius, s float64, cfg Config) CornerShape {
	shape := CornerShape{Corner: corner}
	vertical, horizontal := corner.Sides()
	if s <= 0 || !cfg.Shows(vertical) || !cfg.Shows(horizontal) {
		return shape
	}
	outer := radius + s
	center := cornerCenter(outer, s, cfg.Shows(vertical), cfg.Shows(horizontal))
	shape.Active = true
	shape.Center = center
	shape.OuterRadius = outer
	shape.InnerRadius = radius
	shape.Gradient = RadialCornerGradient(center, outer, radius, cfg.ShadowColor)
	shape.Path = cornerPath(center, outer, radius, s)
	return shape
}

// cornerCenter places the arc center outer away from both adjacent sides,
// pulling it in by the band size on a side that is hidden.
func cornerCenter(outer, s float64, verticalShown, horizontalShown bool) graphics.Offset {
	center := graphics.Offset{X: outer, Y: outer}
	if !verticalShown {
		center.X -= s
	}
	if !horizontalShown {
		center.Y -= s
	}
	return center
}

// cornerPath traces the sector: the outer arc clockwise from the start side
// to the top side, a step of s toward the content, then the inner arc back.
func cornerPath(center graphics.Offset, outer, inner, s float64) *graphics.Path {
	p := graphics.NewPath()
	p.ArcTo(center, outer, math.Pi, math.Pi/2)
	p.RelLineTo(0, s)
	p.ArcTo(center, inner, -math.Pi/2, -math.Pi/2)
	p.Close()
	return p
}
