package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for filling arbitrary shapes.
//
// Build paths using MoveTo, LineTo, CubicTo, ArcTo and Close. Arcs are
// stored as cubic segments so every Canvas implementation only has to
// understand straight lines and cubics.
type Path struct {
	Commands []PathCommand

	start   Offset
	current Offset
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
	p.start = Offset{X: x, Y: y}
	p.current = p.start
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
	p.current = Offset{X: x, Y: y}
}

// RelLineTo adds a line segment from the current point by (dx, dy).
func (p *Path) RelLineTo(dx, dy float64) {
	p.LineTo(p.current.X+dx, p.current.Y+dy)
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
	p.current = Offset{X: x3, Y: y3}
}

// ArcTo appends a circular arc around center. Angles are in radians,
// measured clockwise from the positive x axis (y points down); a negative
// sweep runs counter-clockwise.
//
// If the path already has a current point a line is drawn to the arc start,
// otherwise the arc start begins a new subpath. A zero radius degenerates to
// the center point.
func (p *Path) ArcTo(center Offset, radius, startAngle, sweepAngle float64) {
	startX := center.X + radius*math.Cos(startAngle)
	startY := center.Y + radius*math.Sin(startAngle)
	if p.IsEmpty() {
		p.MoveTo(startX, startY)
	} else {
		p.LineTo(startX, startY)
	}
	if radius <= 0 || floatEqual(sweepAngle, 0) {
		return
	}

	segments := int(math.Ceil(math.Abs(sweepAngle) / (math.Pi / 2)))
	step := sweepAngle / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4)
	a1 := startAngle
	for i := 0; i < segments; i++ {
		a2 := a1 + step
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)
		x0 := center.X + radius*cos1
		y0 := center.Y + radius*sin1
		x3 := center.X + radius*cos2
		y3 := center.Y + radius*sin2
		p.CubicTo(
			x0-k*radius*sin1, y0+k*radius*cos1,
			x3+k*radius*sin2, y3-k*radius*cos2,
			x3, y3,
		)
		a1 = a2
	}
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
	p.current = p.start
}

// Clone returns a deep copy of p that can be extended independently.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{start: p.start, current: p.current}
	if len(p.Commands) > 0 {
		out.Commands = make([]PathCommand, len(p.Commands))
		for i, cmd := range p.Commands {
			out.Commands[i] = PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)}
		}
	}
	return out
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// CurrentPoint returns the end point of the last command.
func (p *Path) CurrentPoint() Offset {
	return p.current
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
	p.start = Offset{}
	p.current = Offset{}
}

// Bounds returns the bounding box of every point and control point in the
// path. Control points of cubic segments make this a conservative bound.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	bounds := Rect{
		Left:   math.Inf(1),
		Top:    math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(-1),
	}
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			bounds.Left = math.Min(bounds.Left, x)
			bounds.Top = math.Min(bounds.Top, y)
			bounds.Right = math.Max(bounds.Right, x)
			bounds.Bottom = math.Max(bounds.Bottom, y)
		}
	}
	if math.IsInf(bounds.Left, 1) {
		return Rect{}
	}
	return bounds
}
