package graphics

import (
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/go-drift/shadow/pkg/errors"
)

// RasterCanvas is a Canvas that rasterizes into an in-memory RGBA pixmap
// using the gg software renderer.
//
// gg transforms path points as they are added but samples brushes in device
// space, so gradient geometry is mapped through the current transform before
// each fill. This keeps gradients attached to the shape they paint.
type RasterCanvas struct {
	ctx  *gg.Context
	size Size
}

// NewRasterCanvas creates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &RasterCanvas{
		ctx:  gg.NewContext(width, height),
		size: Size{Width: float64(width), Height: float64(height)},
	}
}

func (c *RasterCanvas) Save() {
	c.ctx.Push()
}

func (c *RasterCanvas) Restore() {
	c.ctx.Pop()
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.ctx.Translate(dx, dy)
}

func (c *RasterCanvas) Rotate(radians float64) {
	c.ctx.Rotate(radians)
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	c.ctx.ClipRect(rect.Left, rect.Top, rect.Width(), rect.Height())
}

func (c *RasterCanvas) Clear(color Color) {
	c.ctx.ClearWithColor(toRGBA(color))
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	if rect.IsEmpty() || !paint.IsVisible() {
		return
	}
	c.ctx.ClearPath()
	c.ctx.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
	c.fill("graphics.RasterCanvas.DrawRect", paint)
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path.IsEmpty() || !paint.IsVisible() {
		return
	}
	c.ctx.ClearPath()
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			c.ctx.MoveTo(cmd.Args[0], cmd.Args[1])
		case PathOpLineTo:
			c.ctx.LineTo(cmd.Args[0], cmd.Args[1])
		case PathOpCubicTo:
			c.ctx.CubicTo(cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3], cmd.Args[4], cmd.Args[5])
		case PathOpClose:
			c.ctx.ClosePath()
		}
	}
	c.fill("graphics.RasterCanvas.DrawPath", paint)
}

func (c *RasterCanvas) DrawImage(img image.Image, position Offset) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	c.ctx.DrawImage(gg.ImageBufFromImage(img), position.X, position.Y)
}

func (c *RasterCanvas) Size() Size {
	return c.size
}

// Image returns a snapshot of the rasterized pixels.
func (c *RasterCanvas) Image() image.Image {
	return c.ctx.Image()
}

// EncodePNG writes the current pixels as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error {
	return c.ctx.EncodePNG(w)
}

// Close releases the underlying gg context.
func (c *RasterCanvas) Close() error {
	return c.ctx.Close()
}

func (c *RasterCanvas) fill(op string, paint Paint) {
	c.ctx.SetFillBrush(c.brush(paint))
	if err := c.ctx.Fill(); err != nil {
		errors.Report(&errors.ShadowError{
			Op:   op,
			Kind: errors.KindRaster,
			Err:  err,
		})
	}
}

// brush converts a paint into a device-space gg brush.
func (c *RasterCanvas) brush(paint Paint) gg.Brush {
	alpha := clamp01(paint.Alpha)
	g := paint.Gradient
	if !g.IsValid() {
		return gg.Solid(toRGBA(paint.Color.ScaleAlpha(alpha)))
	}
	m := c.ctx.GetTransform()
	switch g.Type {
	case GradientTypeLinear:
		start := m.TransformPoint(gg.Pt(g.Linear.Start.X, g.Linear.Start.Y))
		end := m.TransformPoint(gg.Pt(g.Linear.End.X, g.Linear.End.Y))
		brush := gg.NewLinearGradientBrush(start.X, start.Y, end.X, end.Y)
		for _, stop := range g.Linear.Stops {
			brush.AddColorStop(stop.Position, toRGBA(stop.Color.ScaleAlpha(alpha)))
		}
		return brush
	default:
		center := m.TransformPoint(gg.Pt(g.Radial.Center.X, g.Radial.Center.Y))
		// Uniform scale of the affine part; rotations leave radii untouched.
		scale := math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
		brush := gg.NewRadialGradientBrush(center.X, center.Y, 0, g.Radial.Radius*scale)
		for _, stop := range g.Radial.Stops {
			brush.AddColorStop(stop.Position, toRGBA(stop.Color.ScaleAlpha(alpha)))
		}
		return brush
	}
}

func toRGBA(c Color) gg.RGBA {
	r, g, b, a := c.RGBAF()
	return gg.RGBA2(r, g, b, a)
}
