package visual

import "github.com/go-drift/shadow/pkg/graphics"

// Wrapper owns exactly one visual and forwards every capability to it.
//
// Types that decorate a visual embed Wrapper, call Init with themselves as
// the outer value, and override only the methods whose behavior differs.
// The outer value is registered as the wrapped visual's callback, so a
// redraw requested by the wrapped visual becomes a redraw of the outer value.
type Wrapper struct {
	Base
	wrapped Visual
}

// NewWrapper returns a plain forwarding wrapper around v.
func NewWrapper(v Visual) *Wrapper {
	w := &Wrapper{}
	w.Init(w, v)
	return w
}

// Init binds the wrapper to its outer value and wraps v.
func (w *Wrapper) Init(self Visual, v Visual) {
	w.SetSelf(self)
	w.SetWrapped(v)
}

// Wrapped returns the visual currently owned by the wrapper.
func (w *Wrapper) Wrapped() Visual {
	return w.wrapped
}

// SetWrapped replaces the owned visual. The previous visual is detached
// from this wrapper's callback; a nil visual is replaced by a transparent one.
func (w *Wrapper) SetWrapped(v Visual) {
	if w.wrapped != nil && w.wrapped.Callback() == w.callback() {
		w.wrapped.SetCallback(nil)
	}
	if v == nil {
		v = Transparent()
	}
	w.wrapped = v
	v.SetCallback(w.callback())
}

// callback is the redraw target handed to the wrapped visual: the outer
// value recorded by Init, so the wrapped visual reports to the same value
// the host holds.
func (w *Wrapper) callback() Callback {
	if cb, ok := w.self.(Callback); ok {
		return cb
	}
	return w
}

// InvalidateVisual implements Callback: a redraw of the wrapped visual is a
// redraw of the whole wrapper.
func (w *Wrapper) InvalidateVisual(Visual) {
	w.InvalidateSelf()
}

func (w *Wrapper) Draw(canvas graphics.Canvas) {
	w.wrapped.Draw(canvas)
}

func (w *Wrapper) SetBounds(bounds graphics.Rect) {
	w.Base.SetBounds(bounds)
	w.wrapped.SetBounds(bounds)
}

func (w *Wrapper) Padding() (graphics.EdgeInsets, bool) {
	return w.wrapped.Padding()
}

func (w *Wrapper) Opacity() Opacity {
	return w.wrapped.Opacity()
}

func (w *Wrapper) SetAlpha(alpha uint8) {
	w.wrapped.SetAlpha(alpha)
}

func (w *Wrapper) Alpha() uint8 {
	return w.wrapped.Alpha()
}

func (w *Wrapper) SetTint(color graphics.Color) {
	w.wrapped.SetTint(color)
}

func (w *Wrapper) ClearTint() {
	w.wrapped.ClearTint()
}

func (w *Wrapper) SetState(states []State) bool {
	return w.wrapped.SetState(states)
}

func (w *Wrapper) State() []State {
	return w.wrapped.State()
}

func (w *Wrapper) IsStateful() bool {
	return w.wrapped.IsStateful()
}

func (w *Wrapper) JumpToCurrentState() {
	w.wrapped.JumpToCurrentState()
}

// SetVisible changes both the wrapper and the wrapped visual and reports
// whether either changed.
func (w *Wrapper) SetVisible(visible, restart bool) bool {
	own := w.Base.SetVisible(visible, restart)
	inner := w.wrapped.SetVisible(visible, restart)
	return own || inner
}

func (w *Wrapper) SetLevel(level int) bool {
	return w.wrapped.SetLevel(level)
}

func (w *Wrapper) Level() int {
	return w.wrapped.Level()
}

func (w *Wrapper) IntrinsicSize() graphics.Size {
	return w.wrapped.IntrinsicSize()
}

func (w *Wrapper) MinimumSize() graphics.Size {
	return w.wrapped.MinimumSize()
}

func (w *Wrapper) SetAutoMirrored(mirrored bool) {
	w.wrapped.SetAutoMirrored(mirrored)
}

func (w *Wrapper) IsAutoMirrored() bool {
	return w.wrapped.IsAutoMirrored()
}

func (w *Wrapper) SetHotspot(point graphics.Offset) {
	w.wrapped.SetHotspot(point)
}

func (w *Wrapper) Hotspot() graphics.Offset {
	return w.wrapped.Hotspot()
}
