package shadow

import (
	"math"

	"github.com/go-drift/shadow/pkg/errors"
	"github.com/go-drift/shadow/pkg/graphics"
)

// Unset marks a per-corner radius that falls back to the shared Radius.
const Unset = -1

// Default configuration values.
const (
	DefaultRadius     = 20
	DefaultShadowSize = 20
)

// DefaultShadowColor is translucent black.
const DefaultShadowColor graphics.Color = 0x30000000

// Config describes the shadow ring. The zero value hides every side; start
// from DefaultConfig instead.
type Config struct {
	ShowStart  bool
	ShowTop    bool
	ShowEnd    bool
	ShowBottom bool

	// Radius is shared by every corner whose own radius is negative.
	Radius            float64
	TopStartRadius    float64
	TopEndRadius      float64
	BottomEndRadius   float64
	BottomStartRadius float64

	ShadowSize  float64
	ShadowColor graphics.Color
}

// DefaultConfig returns a ring shown on every side with 20px radii and a
// 20px band of translucent black.
func DefaultConfig() Config {
	return Config{
		ShowStart:         true,
		ShowTop:           true,
		ShowEnd:           true,
		ShowBottom:        true,
		Radius:            DefaultRadius,
		TopStartRadius:    Unset,
		TopEndRadius:      Unset,
		BottomEndRadius:   Unset,
		BottomStartRadius: Unset,
		ShadowSize:        DefaultShadowSize,
		ShadowColor:       DefaultShadowColor,
	}
}

// Normalized returns a copy with every size made drawable: a negative
// shared radius or shadow size becomes zero, an infinite shadow size becomes
// zero, and each corner radius is resolved against the shared one. Radii may
// stay arbitrarily large since they are clamped to the bounds when built.
func (c Config) Normalized() Config {
	out := c
	out.Radius = nonNegative("radius", c.Radius)
	out.ShadowSize = bandSize(c.ShadowSize)
	for _, corner := range Corners {
		*out.cornerField(corner) = out.CornerRadius(corner)
	}
	return out
}

// CornerRadius returns the configured radius of a corner before it is
// clamped to the bounds. Unset falls back to the shared radius; any other
// negative value is zero.
func (c Config) CornerRadius(corner Corner) float64 {
	r := *c.cornerField(corner)
	if r == Unset {
		return nonNegative("radius", c.Radius)
	}
	return nonNegative(corner.String()+"_radius", r)
}

// SetCornerRadius sets the radius of a single corner. Pass Unset to fall
// back to the shared radius.
func (c *Config) SetCornerRadius(corner Corner, radius float64) {
	*c.cornerField(corner) = radius
}

// Shows reports whether a side of the ring is drawn.
func (c Config) Shows(side Side) bool {
	switch side {
	case SideStart:
		return c.ShowStart
	case SideTop:
		return c.ShowTop
	case SideEnd:
		return c.ShowEnd
	case SideBottom:
		return c.ShowBottom
	default:
		return false
	}
}

// SetShows toggles a side of the ring.
func (c *Config) SetShows(side Side, show bool) {
	switch side {
	case SideStart:
		c.ShowStart = show
	case SideTop:
		c.ShowTop = show
	case SideEnd:
		c.ShowEnd = show
	case SideBottom:
		c.ShowBottom = show
	}
}

// Padding returns the inset the ring takes from each side of the bounds:
// the shadow size on shown sides and zero elsewhere. Start maps to Left and
// End to Right.
func (c Config) Padding() graphics.EdgeInsets {
	size := bandSize(c.ShadowSize)
	pad := func(side Side) float64 {
		if c.Shows(side) {
			return size
		}
		return 0
	}
	return graphics.EdgeInsets{
		Left:   pad(SideStart),
		Top:    pad(SideTop),
		Right:  pad(SideEnd),
		Bottom: pad(SideBottom),
	}
}

func (c *Config) cornerField(corner Corner) *float64 {
	switch corner {
	case CornerTopEnd:
		return &c.TopEndRadius
	case CornerBottomEnd:
		return &c.BottomEndRadius
	case CornerBottomStart:
		return &c.BottomStartRadius
	default:
		return &c.TopStartRadius
	}
}

// nonNegative clamps a negative or NaN size to zero.
func nonNegative(name string, v float64) float64 {
	if v >= 0 {
		return v
	}
	errors.Logger().Debug("shadow: clamping configuration value", "field", name, "value", v)
	return 0
}

// bandSize is nonNegative that also rejects an infinite band.
func bandSize(v float64) float64 {
	if math.IsInf(v, 1) {
		errors.Logger().Debug("shadow: clamping configuration value", "field", "shadow_size", "value", v)
		return 0
	}
	return nonNegative("shadow_size", v)
}
