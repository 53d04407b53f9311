package testing

import (
	"fmt"
	"image"
	"math"
	"sort"
	"strings"

	"github.com/go-drift/shadow/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RecordingCanvas implements graphics.Canvas and records every call as a
// DisplayOp. It never rasterizes.
type RecordingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

// NewRecordingCanvas creates an empty recorder reporting the given size.
func NewRecordingCanvas(size graphics.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Ops returns the operations recorded so far.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// Count returns how many recorded operations have the given name.
func (c *RecordingCanvas) Count(op string) int {
	n := 0
	for _, o := range c.ops {
		if o.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded operations with the given name.
func (c *RecordingCanvas) Filter(op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range c.ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// Reset discards every recorded operation.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
}

func (c *RecordingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *RecordingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *RecordingCanvas) Rotate(radians float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "rotate",
		Params: sortedMap("radians", round2(radians)),
	})
}

func (c *RecordingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *RecordingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *RecordingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := serializePaint(paint)
	params["bounds"] = serializeRect(path.Bounds())
	if path != nil {
		params["commands"] = len(path.Commands)
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *RecordingCanvas) DrawImage(img image.Image, position graphics.Offset) {
	params := sortedMap("x", round2(position.X), "y", round2(position.Y))
	if img != nil {
		b := img.Bounds()
		params["width"] = b.Dx()
		params["height"] = b.Dy()
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawImage", Params: params})
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}

// SerializeDisplayList replays a DisplayList through a recording canvas.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := NewRecordingCanvas(dl.Size())
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeOffset(o graphics.Offset) map[string]any {
	return sortedMap("x", round2(o.X), "y", round2(o.Y))
}

func serializePaint(p graphics.Paint) map[string]any {
	params := sortedMap("alpha", round2(p.Alpha))
	if p.Gradient == nil {
		params["color"] = serializeColor(p.Color)
		return params
	}
	params["gradient"] = serializeGradient(p.Gradient)
	return params
}

func serializeGradient(g *graphics.Gradient) map[string]any {
	stops := make([]any, 0, len(g.Stops()))
	for _, s := range g.Stops() {
		stops = append(stops, sortedMap(
			"position", round2(s.Position),
			"color", serializeColor(s.Color),
		))
	}
	m := sortedMap("type", g.Type.String(), "stops", stops)
	switch g.Type {
	case graphics.GradientTypeLinear:
		m["start"] = serializeOffset(g.Linear.Start)
		m["end"] = serializeOffset(g.Linear.End)
	case graphics.GradientTypeRadial:
		m["center"] = serializeOffset(g.Radial.Center)
		m["radius"] = round2(g.Radial.Radius)
	}
	return m
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places. Negative zero becomes zero so
// rotation noise does not leak into snapshots.
func round2(f float64) float64 {
	r := math.Round(f*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

// sortedMap creates a map from alternating key-value pairs.
// Keys are sorted alphabetically in the resulting map (Go maps iterate
// in random order, but JSON marshaling sorts keys via our snapshot encoder).
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String formats the op on one line with parameters in key order.
func (o DisplayOp) String() string {
	var b strings.Builder
	b.WriteString(o.Op)
	for _, k := range sortedKeys(o.Params) {
		fmt.Fprintf(&b, " %s=%v", k, o.Params[k])
	}
	return b.String()
}
