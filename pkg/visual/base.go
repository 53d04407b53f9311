package visual

import (
	"slices"

	"github.com/go-drift/shadow/pkg/graphics"
)

// Base provides the bookkeeping shared by simple visuals.
//
// Embedders call SetSelf with the outer value so redraw requests name the
// visual the host actually holds, and implement Draw themselves. A zero Base
// is visible and fully opaque.
type Base struct {
	self     Visual
	bounds   graphics.Rect
	alpha    uint8
	alphaSet bool
	tint     graphics.Color
	tinted   bool
	states   []State
	hidden   bool
	level    int
	mirrored bool
	hotspot  graphics.Offset
	callback Callback
}

// SetSelf records the outer visual embedding this Base.
func (b *Base) SetSelf(self Visual) {
	b.self = self
}

func (b *Base) SetBounds(bounds graphics.Rect) {
	b.bounds = bounds
}

func (b *Base) Bounds() graphics.Rect {
	return b.bounds
}

func (b *Base) Padding() (graphics.EdgeInsets, bool) {
	return graphics.EdgeInsets{}, false
}

func (b *Base) Opacity() Opacity {
	return OpacityUnknown
}

func (b *Base) SetAlpha(alpha uint8) {
	if b.alphaSet && b.alpha == alpha {
		return
	}
	b.alpha = alpha
	b.alphaSet = true
	b.InvalidateSelf()
}

func (b *Base) Alpha() uint8 {
	if !b.alphaSet {
		return 0xFF
	}
	return b.alpha
}

// AlphaFraction returns the alpha as a value from 0 to 1.
func (b *Base) AlphaFraction() float64 {
	return float64(b.Alpha()) / 0xFF
}

func (b *Base) SetTint(color graphics.Color) {
	b.tint = color
	b.tinted = true
	b.InvalidateSelf()
}

func (b *Base) ClearTint() {
	if !b.tinted {
		return
	}
	b.tinted = false
	b.InvalidateSelf()
}

// Tint returns the active tint and whether one is set.
func (b *Base) Tint() (graphics.Color, bool) {
	return b.tint, b.tinted
}

func (b *Base) SetState(states []State) bool {
	if slices.Equal(b.states, states) {
		return false
	}
	b.states = slices.Clone(states)
	return false
}

func (b *Base) State() []State {
	return slices.Clone(b.states)
}

func (b *Base) IsStateful() bool {
	return false
}

func (b *Base) JumpToCurrentState() {}

func (b *Base) SetVisible(visible, restart bool) bool {
	changed := b.hidden == visible
	b.hidden = !visible
	if changed {
		b.InvalidateSelf()
	}
	return changed
}

func (b *Base) IsVisible() bool {
	return !b.hidden
}

func (b *Base) SetLevel(level int) bool {
	if b.level == level {
		return false
	}
	b.level = level
	return false
}

func (b *Base) Level() int {
	return b.level
}

func (b *Base) IntrinsicSize() graphics.Size {
	return graphics.Size{}
}

func (b *Base) MinimumSize() graphics.Size {
	return graphics.Size{}
}

func (b *Base) SetAutoMirrored(mirrored bool) {
	b.mirrored = mirrored
}

func (b *Base) IsAutoMirrored() bool {
	return b.mirrored
}

func (b *Base) SetHotspot(point graphics.Offset) {
	b.hotspot = point
}

// Hotspot returns the last hotspot set.
func (b *Base) Hotspot() graphics.Offset {
	return b.hotspot
}

func (b *Base) SetCallback(cb Callback) {
	b.callback = cb
}

func (b *Base) Callback() Callback {
	return b.callback
}

func (b *Base) InvalidateSelf() {
	if b.callback == nil || b.self == nil {
		return
	}
	b.callback.InvalidateVisual(b.self)
}
