// Package host provides a minimal element that owns a background visual and
// always presents it inside a shadow ring.
//
// An Element stands in for the view of a UI toolkit: it is laid out with
// SetBounds, asks its background for content padding, paints the background
// onto a canvas and counts redraw requests coming back from it.
package host

import (
	"fmt"
	"sync"
	"weak"

	"github.com/go-drift/shadow/pkg/errors"
	"github.com/go-drift/shadow/pkg/graphics"
	"github.com/go-drift/shadow/pkg/shadow"
	"github.com/go-drift/shadow/pkg/visual"
)

// Element owns a background visual wrapped in a shadow.Drawable.
//
// The background is swapped under a mutex so concurrent callers of
// EnsureShadow observe a single drawable. Calls into the background itself
// happen outside the lock and are expected on the render thread.
type Element struct {
	mu            sync.Mutex
	background    visual.Visual
	bounds        graphics.Rect
	invalidations int

	// OnInvalidate is called whenever the background asks to be redrawn.
	// It runs synchronously on the caller's goroutine.
	OnInvalidate func()
}

// NewElement creates an element whose background is bg inside a default
// shadow ring.
func NewElement(bg visual.Visual) *Element {
	e := &Element{background: bg}
	e.EnsureShadow()
	return e
}

// EnsureShadow wraps the current background in a shadow.Drawable unless it
// already is one, and returns the drawable.
func (e *Element) EnsureShadow() *shadow.Drawable {
	e.mu.Lock()
	bg := e.background
	if d, ok := bg.(*shadow.Drawable); ok {
		if d != nil {
			e.mu.Unlock()
			return d
		}
		bg = nil
	}
	d := shadow.NewDrawable(shadow.DefaultConfig(), bg)
	old, bounds := e.swapLocked(d)
	e.mu.Unlock()

	e.attach(old, d, bounds)
	return d
}

// Background returns the current background.
func (e *Element) Background() visual.Visual {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.background
}

// SetBackground replaces what the element draws.
//
// A shadow.Drawable is installed as is. Any other visual is placed inside
// the existing shadow, so shadows never nest; an element without a shadow
// gets a new one around v.
func (e *Element) SetBackground(v visual.Visual) {
	if d, ok := v.(*shadow.Drawable); ok && d != nil {
		e.install(d)
		return
	}
	if d, ok := v.(*shadow.Drawable); ok && d == nil {
		v = nil
	}
	e.mu.Lock()
	current, ok := e.background.(*shadow.Drawable)
	e.mu.Unlock()
	if ok && current != nil {
		errors.Logger().Debug("host: background swapped",
			"old", fmt.Sprintf("%T", current.Wrapped()),
			"new", fmt.Sprintf("%T", v),
		)
		current.SetWrapped(v)
		return
	}
	e.install(shadow.NewDrawable(shadow.DefaultConfig(), v))
}

// ShadowBuilder returns a builder bound to this element. The builder does
// not keep the element alive; building after the element is gone does
// nothing.
func (e *Element) ShadowBuilder() *shadow.Builder {
	ref := weak.Make(e)
	return shadow.NewBuilder(func() shadow.Host {
		if el := ref.Value(); el != nil {
			return el
		}
		return nil
	})
}

// ApplyAttributes replaces the shadow configuration with the one described
// by attrs.
func (e *Element) ApplyAttributes(attrs Attributes) error {
	cfg, err := attrs.Config()
	if err != nil {
		return err
	}
	e.EnsureShadow().SetConfig(cfg)
	return nil
}

// SetBounds lays the element out.
func (e *Element) SetBounds(bounds graphics.Rect) {
	e.mu.Lock()
	e.bounds = bounds
	bg := e.background
	e.mu.Unlock()
	if bg != nil {
		bg.SetBounds(bounds)
	}
}

// Bounds returns the last bounds set.
func (e *Element) Bounds() graphics.Rect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bounds
}

// Padding returns the inset the background asks content to keep.
func (e *Element) Padding() graphics.EdgeInsets {
	bg := e.Background()
	if bg == nil {
		return graphics.EdgeInsets{}
	}
	p, _ := bg.Padding()
	return p
}

// ContentRect returns where the element's children are laid out: the bounds
// minus the background padding.
func (e *Element) ContentRect() graphics.Rect {
	return e.Bounds().Deflate(e.Padding())
}

// Paint draws the background.
func (e *Element) Paint(canvas graphics.Canvas) {
	if bg := e.Background(); bg != nil && bg.IsVisible() {
		bg.Draw(canvas)
	}
}

// InvalidateVisual implements visual.Callback. Requests from a visual that
// is no longer the background are ignored.
func (e *Element) InvalidateVisual(who visual.Visual) {
	e.mu.Lock()
	if who != e.background {
		e.mu.Unlock()
		return
	}
	e.invalidations++
	cb := e.OnInvalidate
	e.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// Invalidations returns how many redraw requests the element received.
func (e *Element) Invalidations() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.invalidations
}

func (e *Element) install(d *shadow.Drawable) {
	e.mu.Lock()
	old, bounds := e.swapLocked(d)
	e.mu.Unlock()
	e.attach(old, d, bounds)
}

func (e *Element) swapLocked(d *shadow.Drawable) (old visual.Visual, bounds graphics.Rect) {
	old = e.background
	e.background = d
	return old, e.bounds
}

// attach wires d to the element after a swap and requests a redraw.
func (e *Element) attach(old visual.Visual, d *shadow.Drawable, bounds graphics.Rect) {
	if od, ok := old.(*shadow.Drawable); ok && od == nil {
		old = nil
	}
	if old != visual.Visual(d) {
		errors.Logger().Debug("host: background swapped",
			"old", fmt.Sprintf("%T", old),
			"new", fmt.Sprintf("%T", d.Wrapped()),
		)
	}
	if old != nil && old != visual.Visual(d) && old.Callback() == visual.Callback(e) {
		old.SetCallback(nil)
	}
	d.SetCallback(e)
	d.SetBounds(bounds)
	d.InvalidateSelf()
}
