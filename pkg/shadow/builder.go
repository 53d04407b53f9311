package shadow

import (
	"weak"

	"github.com/go-drift/shadow/pkg/errors"
	"github.com/go-drift/shadow/pkg/graphics"
	"github.com/go-drift/shadow/pkg/visual"
)

// Host is an element whose background can carry a shadow ring.
type Host interface {
	Background() visual.Visual
	SetBackground(v visual.Visual)
}

// Builder collects a draft configuration and installs a new Drawable on its
// host in one step.
//
// The builder does not keep its host alive: it reaches the host through
// resolve, which returns nil once the host is gone. Building after that is a
// silent no-op.
type Builder struct {
	resolve   func() Host
	config    Config
	origin    visual.Visual
	originSet bool
	// drawable is weak since the drawable calls back into the host.
	drawable weak.Pointer[Drawable]
}

// NewBuilder returns a builder for the host returned by resolve. The draft
// starts from the host's current shadow configuration if it has one and
// from DefaultConfig otherwise.
func NewBuilder(resolve func() Host) *Builder {
	b := &Builder{resolve: resolve, config: DefaultConfig()}
	if h := b.host(); h != nil {
		if d, ok := h.Background().(*Drawable); ok {
			b.config = d.Config()
		}
	}
	return b
}

// OriginOf returns the visual a new shadow should wrap for a host whose
// background is bg: the wrapped visual of an existing shadow so shadows
// never nest, a transparent visual for nil, and bg itself otherwise.
func OriginOf(bg visual.Visual) visual.Visual {
	switch v := bg.(type) {
	case nil:
		return visual.Transparent()
	case *Drawable:
		if v == nil {
			return visual.Transparent()
		}
		return v.Wrapped()
	default:
		return bg
	}
}

// Origin overrides the visual drawn inside the ring. Without it the host's
// background at Build time is used.
func (b *Builder) Origin(v visual.Visual) *Builder {
	b.origin = OriginOf(v)
	b.originSet = true
	return b
}

func (b *Builder) ShowStart(show bool) *Builder {
	b.config.ShowStart = show
	return b
}

func (b *Builder) ShowTop(show bool) *Builder {
	b.config.ShowTop = show
	return b
}

func (b *Builder) ShowEnd(show bool) *Builder {
	b.config.ShowEnd = show
	return b
}

func (b *Builder) ShowBottom(show bool) *Builder {
	b.config.ShowBottom = show
	return b
}

// Radius sets the shared radius and resets every corner to use it.
func (b *Builder) Radius(radius float64) *Builder {
	b.config.Radius = radius
	for _, corner := range Corners {
		b.config.SetCornerRadius(corner, Unset)
	}
	return b
}

func (b *Builder) TopStartRadius(radius float64) *Builder {
	b.config.TopStartRadius = radius
	return b
}

func (b *Builder) TopEndRadius(radius float64) *Builder {
	b.config.TopEndRadius = radius
	return b
}

func (b *Builder) BottomEndRadius(radius float64) *Builder {
	b.config.BottomEndRadius = radius
	return b
}

func (b *Builder) BottomStartRadius(radius float64) *Builder {
	b.config.BottomStartRadius = radius
	return b
}

func (b *Builder) ShadowSize(size float64) *Builder {
	b.config.ShadowSize = size
	return b
}

func (b *Builder) ShadowColor(color graphics.Color) *Builder {
	b.config.ShadowColor = color
	return b
}

// Config returns a copy of the draft configuration.
func (b *Builder) Config() Config {
	return b.config
}

// Drawable returns the drawable installed by the last successful Build, or
// nil if there was none or it has since been collected.
func (b *Builder) Drawable() *Drawable {
	return b.drawable.Value()
}

// Build creates a Drawable from the draft and sets it as the host's
// background. It reports false without side effects when the host has been
// released.
func (b *Builder) Build() bool {
	h := b.host()
	if h == nil {
		errors.Logger().Debug("shadow: builder host released, skipping build")
		return false
	}
	origin := b.origin
	if !b.originSet {
		origin = OriginOf(h.Background())
	}
	d := NewDrawable(b.config, origin)
	h.SetBackground(d)
	b.drawable = weak.Make(d)
	return true
}

func (b *Builder) host() Host {
	if b.resolve == nil {
		return nil
	}
	return b.resolve()
}
