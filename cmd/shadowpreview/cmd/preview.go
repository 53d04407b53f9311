package cmd

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/shadow/cmd/shadowpreview/internal/config"
	"github.com/go-drift/shadow/pkg/errors"
	"github.com/go-drift/shadow/pkg/graphics"
	"github.com/go-drift/shadow/pkg/host"
	"github.com/go-drift/shadow/pkg/visual"
)

// maxDimension bounds the raster size accepted from flags and files.
const maxDimension = 8192

// previewOptions holds flags shared by render and inspect. Zero values mean
// the flag was not given.
type previewOptions struct {
	configPath string
	width      int
	height     int
	fill       string
	background string
	out        string
}

// preview is the fully resolved input of a render.
type preview struct {
	attrs      host.Attributes
	width      int
	height     int
	fill       string
	background string
	out        string
}

// parsePreviewArgs reads "--flag value" and "--flag=value" pairs. Flags not
// listed in allowed are rejected.
func parsePreviewArgs(args []string, allowed ...string) (previewOptions, error) {
	var opts previewOptions
	isAllowed := func(name string) bool {
		for _, a := range allowed {
			if a == name {
				return true
			}
		}
		return false
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			return opts, fmt.Errorf("unexpected argument %q", arg)
		}
		name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if !isAllowed(name) {
			return opts, fmt.Errorf("unknown flag --%s", name)
		}
		if !hasValue {
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--%s requires a value", name)
			}
			value = args[i+1]
			i++
		}

		switch name {
		case "config":
			opts.configPath = value
		case "width", "height":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 || n > maxDimension {
				return opts, fmt.Errorf("--%s must be an integer between 1 and %d (got %q)", name, maxDimension, value)
			}
			if name == "width" {
				opts.width = n
			} else {
				opts.height = n
			}
		case "fill":
			opts.fill = value
		case "background":
			opts.background = value
		case "out":
			opts.out = value
		}
	}
	return opts, nil
}

// resolvePreview merges flags over the configuration file. Without a go.mod
// above the working directory the working directory is used as root.
func resolvePreview(opts previewOptions) (*preview, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		errors.Logger().Debug("shadowpreview: no project root, using working directory", "err", err)
		if root, err = os.Getwd(); err != nil {
			return nil, err
		}
	}

	resolved, err := config.Resolve(root, opts.configPath)
	if err != nil {
		return nil, err
	}
	canvas := resolved.Config.Canvas

	p := &preview{
		attrs:      resolved.Config.Shadow,
		width:      firstPositive(opts.width, canvas.Width, config.DefaultWidth),
		height:     firstPositive(opts.height, canvas.Height, config.DefaultHeight),
		fill:       firstNonEmpty(opts.fill, canvas.Fill, config.DefaultFill),
		background: firstNonEmpty(opts.background, canvas.Background),
		out:        firstNonEmpty(opts.out, resolved.Output),
	}
	if p.width > maxDimension || p.height > maxDimension {
		return nil, fmt.Errorf("canvas %dx%d exceeds the %d pixel limit", p.width, p.height, maxDimension)
	}
	return p, nil
}

// element builds a laid out host element for p.
func (p *preview) element() (*host.Element, error) {
	bg, err := p.backgroundVisual()
	if err != nil {
		return nil, err
	}
	e := host.NewElement(bg)
	if err := e.ApplyAttributes(p.attrs); err != nil {
		return nil, err
	}
	e.SetBounds(graphics.RectFromLTWH(0, 0, float64(p.width), float64(p.height)))
	return e, nil
}

func (p *preview) backgroundVisual() (visual.Visual, error) {
	if p.background != "" {
		img, err := loadImage(p.background)
		if err != nil {
			return nil, err
		}
		return visual.NewImageVisual(img), nil
	}
	color, err := graphics.ParseColor(p.fill)
	if err != nil {
		return nil, fmt.Errorf("invalid fill: %w", err)
	}
	return visual.NewColorVisual(color), nil
}

// loadImage decodes PNG, JPEG, BMP or WebP.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open background: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode background %s: %w", path, err)
	}
	errors.Logger().Debug("shadowpreview: background decoded",
		"path", path,
		"format", format,
		"size", img.Bounds().Size(),
	)
	return img, nil
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
