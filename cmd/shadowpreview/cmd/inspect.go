package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-drift/shadow/pkg/graphics"
	"github.com/go-drift/shadow/pkg/shadow"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Print the derived shadow geometry",
		Long: `Print the geometry derived from shadow.yaml for a canvas size: padding,
content rectangle, clamped corner radii, and where every edge band and
corner sector lands in the bounds.

Flags:
  --config FILE   Configuration file (default: shadow.yaml in the project root)
  --width N       Canvas width in pixels (default: 200)
  --height N      Canvas height in pixels (default: 100)`,
		Usage: "shadowpreview inspect [--config FILE] [--width N] [--height N]",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	opts, err := parsePreviewArgs(args, "config", "width", "height")
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

	d := e.EnsureShadow()
	printGeometry(d.Config(), d.Geometry())
	return nil
}

func printGeometry(cfg shadow.Config, g shadow.Geometry) {
	size := g.Size()
	fmt.Fprintf(stdout, "Bounds:  %s\n", formatRect(g.Bounds))
	fmt.Fprintf(stdout, "Content: %s\n", formatRect(g.Content))
	fmt.Fprintf(stdout, "Padding: start=%g top=%g end=%g bottom=%g\n",
		g.Padding.Left, g.Padding.Top, g.Padding.Right, g.Padding.Bottom)
	fmt.Fprintf(stdout, "Band:    %g px of %s\n", cfg.ShadowSize, cfg.ShadowColor)
	fmt.Fprintln(stdout)

	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EDGE\tSHOWN\tRECT")
	for _, side := range shadow.Sides {
		edge := g.Edges[side]
		rect := "-"
		if !edge.IsEmpty() {
			placed := shadow.Quadrant(side.CornerBefore(), size).ApplyRect(edge.Rect)
			rect = formatRect(placed)
		}
		fmt.Fprintf(w, "%s\t%t\t%s\n", side, cfg.Shows(side), rect)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CORNER\tRADIUS\tACTIVE\tOUTER\tINNER\tRECT")
	for _, corner := range shadow.Corners {
		c := g.Corners[corner]
		rect := "-"
		if c.Active {
			placed := shadow.Quadrant(corner, size).ApplyRect(c.Path.Bounds())
			rect = formatRect(placed)
		}
		fmt.Fprintf(w, "%s\t%g\t%t\t%g\t%g\t%s\n",
			corner, g.Radii[corner], c.Active, c.OuterRadius, c.InnerRadius, rect)
	}
	w.Flush()
}

func formatRect(r graphics.Rect) string {
	// Adding zero turns a negative zero from rotation into zero.
	return fmt.Sprintf("[%g %g %g %g]", r.Left+0, r.Top+0, r.Right+0, r.Bottom+0)
}
