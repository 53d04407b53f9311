package host

import (
	"time"

	"github.com/go-drift/shadow/pkg/errors"
	"github.com/go-drift/shadow/pkg/graphics"
	"github.com/go-drift/shadow/pkg/shadow"
)

// Attributes is the declarative form of a shadow configuration, as it
// appears in layout or YAML files. Colors are written as #RRGGBB or
// #AARRGGBB; a corner radius of -1 falls back to Radius.
type Attributes struct {
	ShowStart         bool    `yaml:"show_start"`
	ShowTop           bool    `yaml:"show_top"`
	ShowEnd           bool    `yaml:"show_end"`
	ShowBottom        bool    `yaml:"show_bottom"`
	Radius            float64 `yaml:"radius"`
	TopStartRadius    float64 `yaml:"top_start_radius"`
	TopEndRadius      float64 `yaml:"top_end_radius"`
	BottomEndRadius   float64 `yaml:"bottom_end_radius"`
	BottomStartRadius float64 `yaml:"bottom_start_radius"`
	Size              float64 `yaml:"size"`
	Color             string  `yaml:"color"`
}

// DefaultAttributes mirrors shadow.DefaultConfig. Decoding a partial
// document onto it keeps the defaults for every omitted key.
func DefaultAttributes() Attributes {
	return Attributes{
		ShowStart:         true,
		ShowTop:           true,
		ShowEnd:           true,
		ShowBottom:        true,
		Radius:            shadow.DefaultRadius,
		TopStartRadius:    shadow.Unset,
		TopEndRadius:      shadow.Unset,
		BottomEndRadius:   shadow.Unset,
		BottomStartRadius: shadow.Unset,
		Size:              shadow.DefaultShadowSize,
		Color:             shadow.DefaultShadowColor.String(),
	}
}

// Config converts the attributes into a normalized shadow.Config. Only a
// malformed color is an error; out of range numbers are clamped.
func (a Attributes) Config() (shadow.Config, error) {
	color := shadow.DefaultShadowColor
	if a.Color != "" {
		c, err := graphics.ParseColor(a.Color)
		if err != nil {
			return shadow.Config{}, &errors.ShadowError{
				Op:        "host.Attributes.Config",
				Kind:      errors.KindConfig,
				Err:       err,
				Timestamp: time.Now(),
			}
		}
		color = c
	}
	cfg := shadow.Config{
		ShowStart:         a.ShowStart,
		ShowTop:           a.ShowTop,
		ShowEnd:           a.ShowEnd,
		ShowBottom:        a.ShowBottom,
		Radius:            a.Radius,
		TopStartRadius:    a.TopStartRadius,
		TopEndRadius:      a.TopEndRadius,
		BottomEndRadius:   a.BottomEndRadius,
		BottomStartRadius: a.BottomStartRadius,
		ShadowSize:        a.Size,
		ShadowColor:       color,
	}
	return cfg.Normalized(), nil
}
