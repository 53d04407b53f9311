package shadow

import (
	"github.com/go-drift/shadow/pkg/graphics"
	"github.com/go-drift/shadow/pkg/visual"
)

// Render draws wrapped inside the content rectangle and then the ring on
// top of it. alpha (0-1) scales every shadow paint.
//
// Edges and corners are placed with the quadrant transform of their corner,
// so the canvas sees each canonical shape rotated into position.
func Render(canvas graphics.Canvas, geom Geometry, wrapped visual.Visual, alpha float64) {
	drawWrapped(canvas, geom.Content, wrapped)
	renderRing(canvas, geom, alpha)
}

// drawWrapped draws wrapped clipped to content. The clip is popped even
// when wrapped panics.
func drawWrapped(canvas graphics.Canvas, content graphics.Rect, wrapped visual.Visual) {
	if wrapped == nil || content.IsEmpty() {
		return
	}
	canvas.Save()
	defer canvas.Restore()
	canvas.ClipRect(content)
	wrapped.Draw(canvas)
}

func renderRing(canvas graphics.Canvas, geom Geometry, alpha float64) {
	if geom.Empty() || alpha <= 0 {
		return
	}

	size := geom.Size()
	canvas.Save()
	canvas.Translate(geom.Bounds.Left, geom.Bounds.Top)
	if geom.EdgeGradient != nil {
		paint := shadowPaint(geom.EdgeGradient, alpha)
		for _, edge := range geom.Edges {
			if edge.IsEmpty() {
				continue
			}
			withQuadrant(canvas, Quadrant(edge.Side.CornerBefore(), size), func() {
				canvas.DrawRect(edge.Rect, paint)
			})
		}
	}
	for _, corner := range geom.Corners {
		if !corner.Active || corner.Gradient == nil {
			continue
		}
		paint := shadowPaint(corner.Gradient, alpha)
		withQuadrant(canvas, Quadrant(corner.Corner, size), func() {
			canvas.DrawPath(corner.Path, paint)
		})
	}
	canvas.Restore()
}

func withQuadrant(canvas graphics.Canvas, t Transform, draw func()) {
	if t.IsIdentity() {
		draw()
		return
	}
	canvas.Save()
	t.apply(canvas)
	draw()
	canvas.Restore()
}

func shadowPaint(gradient *graphics.Gradient, alpha float64) graphics.Paint {
	paint := graphics.GradientPaint(gradient)
	paint.Alpha = alpha
	return paint
}
