package shadow

import (
	"github.com/go-drift/shadow/pkg/errors"
	"github.com/go-drift/shadow/pkg/graphics"
	"github.com/go-drift/shadow/pkg/visual"
)

// Drawable wraps a visual and draws a shadow ring around it.
//
// The wrapped visual is laid out inside the bounds minus the ring padding.
// Geometry is cached and rebuilt on the next Draw after the bounds or the
// configuration change. The ring is recorded once per geometry and alpha
// into a display list that is replayed on every frame. Alpha set on the
// Drawable applies to both the wrapped visual and the ring.
type Drawable struct {
	visual.Wrapper

	config    Config
	geom      Geometry
	dirty     bool
	rebuilds  int
	ring      *graphics.DisplayList
	ringAlpha float64
}

// NewDrawable wraps v in a shadow ring described by cfg. A nil v is
// replaced by a transparent visual.
func NewDrawable(cfg Config, v visual.Visual) *Drawable {
	d := &Drawable{
		config: cfg.Normalized(),
		dirty:  true,
	}
	d.Init(d, v)
	return d
}

// Config returns a copy of the current configuration.
func (d *Drawable) Config() Config {
	return d.config
}

// SetConfig replaces the configuration. Geometry is rebuilt lazily on the
// next draw.
func (d *Drawable) SetConfig(cfg Config) {
	cfg = cfg.Normalized()
	if cfg == d.config {
		return
	}
	d.config = cfg
	d.dirty = true
	d.Wrapped().SetBounds(d.contentRect())
	d.InvalidateSelf()
}

// Geometry returns a copy of the current geometry, rebuilding it first if
// stale. Paths and gradients in the copy may be modified freely.
func (d *Drawable) Geometry() Geometry {
	d.ensureGeometry()
	return d.geom.clone()
}

// Ring returns the recorded ring for the current geometry and alpha. It is
// nil until the first draw and is re-recorded only when either changes.
func (d *Drawable) Ring() *graphics.DisplayList {
	return d.ring
}

// Rebuilds returns how many times the geometry has been derived.
func (d *Drawable) Rebuilds() int {
	return d.rebuilds
}

// SetWrapped replaces the wrapped visual and lays it out in the current
// content rectangle.
func (d *Drawable) SetWrapped(v visual.Visual) {
	d.Wrapper.SetWrapped(v)
	d.Wrapped().SetBounds(d.contentRect())
	d.InvalidateSelf()
}

func (d *Drawable) Draw(canvas graphics.Canvas) {
	defer errors.Recover("shadow.Drawable.Draw")
	d.ensureGeometry()
	drawWrapped(canvas, d.geom.Content, d.Wrapped())
	d.ensureRing(float64(d.Alpha()) / 0xFF).Paint(canvas)
}

// SetBounds stores the full bounds and hands the inset content rectangle to
// the wrapped visual.
func (d *Drawable) SetBounds(bounds graphics.Rect) {
	if bounds != d.Bounds() {
		d.dirty = true
	}
	d.Wrapper.Base.SetBounds(bounds)
	d.Wrapped().SetBounds(d.contentRect())
}

// Padding reports the ring inset on every side. Once bounds are set, sides
// that do not fit are shrunk so padding and content add up to the bounds.
func (d *Drawable) Padding() (graphics.EdgeInsets, bool) {
	return d.padding(), true
}

func (d *Drawable) padding() graphics.EdgeInsets {
	size := d.Bounds().Size()
	if size.IsEmpty() {
		return d.config.Padding()
	}
	return fitPadding(d.config.Padding(), size)
}

func (d *Drawable) contentRect() graphics.Rect {
	return d.Bounds().Deflate(d.padding())
}

// Opacity is always translucent since the ring fades to transparent.
func (d *Drawable) Opacity() visual.Opacity {
	return visual.OpacityTranslucent
}

func (d *Drawable) ensureGeometry() {
	if !d.dirty {
		return
	}
	d.geom = Build(d.Bounds(), d.config)
	d.dirty = false
	d.ring = nil
	d.rebuilds++
	errors.Logger().Debug("shadow: rebuilt geometry",
		"bounds", d.geom.Bounds,
		"rebuilds", d.rebuilds,
	)
}

func (d *Drawable) ensureRing(alpha float64) *graphics.DisplayList {
	if d.ring != nil && d.ringAlpha == alpha {
		return d.ring
	}
	var rec graphics.PictureRecorder
	renderRing(rec.BeginRecording(d.geom.Size()), d.geom, alpha)
	d.ring = rec.EndRecording()
	d.ringAlpha = alpha
	return d.ring
}
