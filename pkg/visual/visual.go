// Package visual defines the drawable capability surface shared by
// backgrounds and the wrappers that decorate them.
//
// A Visual draws itself into its bounds on a [graphics.Canvas] and carries the
// presentation state a host toggles at runtime (alpha, tint, state set,
// level, visibility, mirroring, hotspot). Visuals ask to be redrawn through
// their [Callback].
//
// All methods are expected to be called from the thread that renders the
// host; visuals are not safe for concurrent use.
package visual

import (
	"fmt"

	"github.com/go-drift/shadow/pkg/graphics"
)

// Opacity describes how a visual covers the pixels beneath it.
type Opacity int

const (
	// OpacityUnknown means the visual cannot tell.
	OpacityUnknown Opacity = iota
	// OpacityTransparent draws nothing.
	OpacityTransparent
	// OpacityTranslucent leaves some pixels partially visible beneath it.
	OpacityTranslucent
	// OpacityOpaque covers every pixel of its bounds.
	OpacityOpaque
)

// String returns a human-readable representation of the opacity.
func (o Opacity) String() string {
	switch o {
	case OpacityUnknown:
		return "unknown"
	case OpacityTransparent:
		return "transparent"
	case OpacityTranslucent:
		return "translucent"
	case OpacityOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("Opacity(%d)", int(o))
	}
}

// State is one entry of a visual's interaction state set.
type State int

const (
	StateEnabled  State = iota + 1 // Host accepts input
	StatePressed                   // Pointer is down
	StateFocused                   // Host has input focus
	StateSelected                  // Host is selected
	StateHovered                   // Pointer is over the host
)

// Callback receives redraw requests from a visual.
type Callback interface {
	// InvalidateVisual asks for who to be drawn again.
	InvalidateVisual(who Visual)
}

// Visual is anything that can be drawn as a background.
type Visual interface {
	// Draw paints the visual into its bounds.
	Draw(canvas graphics.Canvas)

	// SetBounds places the visual. Bounds are in the canvas coordinate space.
	SetBounds(bounds graphics.Rect)
	// Bounds returns the last bounds set.
	Bounds() graphics.Rect

	// Padding returns the insets content should keep from the bounds and
	// whether the visual defines any padding at all.
	Padding() (graphics.EdgeInsets, bool)

	// Opacity reports how the visual covers what is beneath it.
	Opacity() Opacity

	SetAlpha(alpha uint8)
	Alpha() uint8

	// SetTint replaces the visual's color while preserving its alpha.
	SetTint(color graphics.Color)
	// ClearTint removes a previously set tint.
	ClearTint()

	// SetState updates the state set and reports whether the appearance changed.
	SetState(states []State) bool
	State() []State
	IsStateful() bool
	// JumpToCurrentState finishes any state transition immediately.
	JumpToCurrentState()

	// SetVisible reports whether the visibility changed.
	SetVisible(visible, restart bool) bool
	IsVisible() bool

	// SetLevel reports whether the level changed the appearance.
	SetLevel(level int) bool
	Level() int

	// IntrinsicSize is the natural size, or zero when the visual has none.
	IntrinsicSize() graphics.Size
	MinimumSize() graphics.Size

	SetAutoMirrored(mirrored bool)
	IsAutoMirrored() bool

	// SetHotspot records the last interaction point within the bounds.
	SetHotspot(point graphics.Offset)
	Hotspot() graphics.Offset

	// SetCallback attaches the redraw target. Nil detaches.
	SetCallback(cb Callback)
	Callback() Callback
	// InvalidateSelf asks the callback, if any, to redraw this visual.
	InvalidateSelf()
}
