// Package shadow draws a configurable shadow ring around a wrapped visual.
//
// The ring is made of four straight edges filled with a linear falloff and
// four quarter-annulus corners filled with a radial falloff. Each side can be
// hidden independently; a corner is only drawn when both of its sides are
// shown, and an edge next to a hidden side runs flush to the bounds.
//
// Geometry is authored once in a canonical frame (the top edge and the
// top-start corner) and placed at the other three positions by rotating the
// canvas about the matching bounds corner, so the four positions are
// symmetric by construction.
//
// A [Drawable] caches the derived [Geometry] and rebuilds it only after its
// bounds or [Config] change:
//
//	d := shadow.NewDrawable(shadow.DefaultConfig(), visual.NewColorVisual(graphics.ColorWhite))
//	d.SetBounds(graphics.RectFromLTWH(0, 0, 200, 100))
//	d.Draw(canvas)
//
// Hosts usually go through a [Builder] instead, which reads the current
// background and installs the finished Drawable in a single step.
package shadow
