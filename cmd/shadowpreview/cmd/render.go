package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/shadow/pkg/errors"
	"github.com/go-drift/shadow/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a shadow ring to PNG",
		Long: `Render the shadow ring described by shadow.yaml around a solid fill or
an image and write the result as PNG.

Flags override the canvas section of the configuration file:
  --config FILE       Configuration file (default: shadow.yaml in the project root)
  --width N           Canvas width in pixels (default: 200)
  --height N          Canvas height in pixels (default: 100)
  --fill COLOR        Fill inside the ring as #AARRGGBB or #RRGGBB (default: white)
  --background FILE   Draw a PNG, JPEG, BMP or WebP image inside the ring instead
  --out FILE          Output file (default: <module>-shadow.png)`,
		Usage: "shadowpreview render [--config FILE] [--width N] [--height N] [--fill COLOR] [--background FILE] [--out FILE]",
		Run:   runRender,
	})
}

func runRender(args []string) (err error) {
	defer errors.RecoverWithCallback("shadowpreview.render", func(r any) {
		err = fmt.Errorf("render failed: %v", r)
	})

	opts, err := parsePreviewArgs(args, "config", "width", "height", "fill", "background", "out")
	if err != nil {
		return err
	}
	p, err := resolvePreview(opts)
	if err != nil {
		return err
	}
	e, err := p.element()
	if err != nil {
		return err
	}

	canvas := graphics.NewRasterCanvas(p.width, p.height)
	defer canvas.Close()
	e.Paint(canvas)

	f, err := os.Create(p.out)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := canvas.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(stdout, "Wrote %s (%dx%d)\n", p.out, p.width, p.height)
	return nil
}
