package visual_test

import (
	"image"
	"slices"
	"testing"

	"golang.org/x/image/draw"

	"github.com/go-drift/shadow/pkg/graphics"
	shadowtest "github.com/go-drift/shadow/pkg/testing"
	"github.com/go-drift/shadow/pkg/visual"
)

func TestColorVisual_Draw(t *testing.T) {
	v := visual.NewColorVisual(graphics.RGB(10, 20, 30))
	v.SetBounds(graphics.RectFromLTWH(5, 5, 10, 10))
	canvas := shadowtest.NewRecordingCanvas(graphics.Size{Width: 20, Height: 20})
	v.Draw(canvas)

	ops := canvas.Filter("drawRect")
	if len(ops) != 1 {
		t.Fatalf("expected 1 drawRect, got %d", len(ops))
	}
	if got := ops[0].Params["color"]; got != "0xFF0A141E" {
		t.Errorf("unexpected color %v", got)
	}
}

func TestColorVisual_TransparentDrawsNothing(t *testing.T) {
	v := visual.Transparent()
	v.SetBounds(graphics.RectFromLTWH(0, 0, 10, 10))
	canvas := shadowtest.NewRecordingCanvas(graphics.Size{Width: 10, Height: 10})
	v.Draw(canvas)
	if len(canvas.Ops()) != 0 {
		t.Errorf("expected no ops, got %v", canvas.Ops())
	}
	if v.Opacity() != visual.OpacityTransparent {
		t.Errorf("expected transparent, got %v", v.Opacity())
	}
}

func TestColorVisual_TintAndAlpha(t *testing.T) {
	v := visual.NewColorVisual(graphics.Color(0x80FFFFFF))
	v.SetTint(graphics.ColorRed)
	if got := v.Opacity(); got != visual.OpacityTranslucent {
		t.Errorf("expected translucent, got %v", got)
	}

	v.SetBounds(graphics.RectFromLTWH(0, 0, 10, 10))
	canvas := shadowtest.NewRecordingCanvas(graphics.Size{Width: 10, Height: 10})
	v.Draw(canvas)
	if got := canvas.Ops()[0].Params["color"]; got != "0x80FF0000" {
		t.Errorf("expected tint to keep alpha, got %v", got)
	}

	v.ClearTint()
	v.SetAlpha(0)
	if got := v.Opacity(); got != visual.OpacityTransparent {
		t.Errorf("expected transparent at zero alpha, got %v", got)
	}
}

func TestColorVisual_Opaque(t *testing.T) {
	if got := visual.NewColorVisual(graphics.ColorBlack).Opacity(); got != visual.OpacityOpaque {
		t.Errorf("expected opaque, got %v", got)
	}
}

func TestBase_Defaults(t *testing.T) {
	v := visual.NewColorVisual(graphics.ColorWhite)
	if v.Alpha() != 0xFF {
		t.Errorf("expected default alpha 255, got %d", v.Alpha())
	}
	if !v.IsVisible() {
		t.Error("expected visible by default")
	}
	if _, ok := v.Padding(); ok {
		t.Error("expected no padding")
	}
	if v.IsStateful() {
		t.Error("color visual should not be stateful")
	}
}

func TestBase_StateAndLevel(t *testing.T) {
	v := visual.NewColorVisual(graphics.ColorWhite)
	states := []visual.State{visual.StateEnabled, visual.StatePressed}
	v.SetState(states)
	states[0] = visual.StateHovered

	if got := v.State(); len(got) != 2 || got[0] != visual.StateEnabled {
		t.Errorf("expected state to be copied, got %v", got)
	}
	if !slices.Contains(v.State(), visual.StatePressed) || slices.Contains(v.State(), visual.StateFocused) {
		t.Error("unexpected state set")
	}
	v.SetLevel(3)
	if v.Level() != 3 {
		t.Errorf("expected level 3, got %d", v.Level())
	}
}

func TestBase_SetVisibleInvalidatesOnChange(t *testing.T) {
	v := visual.NewColorVisual(graphics.ColorWhite)
	cb := &counter{}
	v.SetCallback(cb)

	if v.SetVisible(true, false) {
		t.Error("expected no change when already visible")
	}
	if !v.SetVisible(false, false) {
		t.Error("expected change when hiding")
	}
	if cb.n != 1 {
		t.Errorf("expected 1 invalidation, got %d", cb.n)
	}
	if v.IsVisible() {
		t.Error("expected hidden")
	}
}

func TestImageVisual_DrawScalesAndCaches(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	v := visual.NewImageVisual(src)
	v.SetScaler(draw.NearestNeighbor)
	if got := v.IntrinsicSize(); got != (graphics.Size{Width: 4, Height: 2}) {
		t.Errorf("unexpected intrinsic size %v", got)
	}
	if v.Opacity() != visual.OpacityUnknown {
		t.Errorf("expected unknown opacity, got %v", v.Opacity())
	}

	v.SetBounds(graphics.RectFromLTWH(3, 4, 8, 4))
	canvas := &imageCanvas{RecordingCanvas: shadowtest.NewRecordingCanvas(graphics.Size{Width: 20, Height: 20})}
	v.Draw(canvas)
	v.Draw(canvas)

	if len(canvas.images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(canvas.images))
	}
	first := canvas.images[0]
	if first.Bounds().Dx() != 8 || first.Bounds().Dy() != 4 {
		t.Errorf("expected image scaled to 8x4, got %v", first.Bounds())
	}
	if first != canvas.images[1] {
		t.Error("expected cached image on second draw")
	}
	op := canvas.Filter("drawImage")[0]
	if op.Params["x"] != 3.0 || op.Params["y"] != 4.0 {
		t.Errorf("expected image at (3, 4), got %v", op.Params)
	}

	v.SetAlpha(0x80)
	v.Draw(canvas)
	if canvas.images[2] == first {
		t.Error("expected alpha change to rescale")
	}
	_, _, _, a := canvas.images[2].At(0, 0).RGBA()
	if a == 0 || a == 0xFFFF {
		t.Errorf("expected partially transparent pixel, got alpha %d", a)
	}
}

func TestImageVisual_NilSource(t *testing.T) {
	v := visual.NewImageVisual(nil)
	v.SetBounds(graphics.RectFromLTWH(0, 0, 10, 10))
	canvas := shadowtest.NewRecordingCanvas(graphics.Size{Width: 10, Height: 10})
	v.Draw(canvas)
	if len(canvas.Ops()) != 0 {
		t.Error("expected nothing drawn without a source")
	}
	if v.Opacity() != visual.OpacityTransparent {
		t.Errorf("expected transparent, got %v", v.Opacity())
	}
}

func TestWrapper_Forwards(t *testing.T) {
	inner := visual.NewColorVisual(graphics.ColorWhite)
	w := visual.NewWrapper(inner)

	w.SetAlpha(40)
	w.SetLevel(2)
	w.SetState([]visual.State{visual.StateSelected})
	w.SetAutoMirrored(true)
	w.SetHotspot(graphics.Offset{X: 1, Y: 2})
	w.SetTint(graphics.ColorBlue)
	w.SetBounds(graphics.RectFromLTWH(0, 0, 5, 5))

	if inner.Alpha() != 40 || w.Alpha() != 40 {
		t.Errorf("expected alpha forwarded, got %d", inner.Alpha())
	}
	if inner.Level() != 2 || !slices.Contains(inner.State(), visual.StateSelected) {
		t.Error("expected level and state forwarded")
	}
	if !inner.IsAutoMirrored() || w.Hotspot() != (graphics.Offset{X: 1, Y: 2}) {
		t.Error("expected mirroring and hotspot forwarded")
	}
	if tint, ok := inner.Tint(); !ok || tint != graphics.ColorBlue {
		t.Error("expected tint forwarded")
	}
	if inner.Bounds() != w.Bounds() {
		t.Error("expected bounds forwarded")
	}
	if w.Opacity() != inner.Opacity() {
		t.Error("expected opacity forwarded")
	}

	canvas := shadowtest.NewRecordingCanvas(graphics.Size{Width: 5, Height: 5})
	w.Draw(canvas)
	if canvas.Count("drawRect") != 1 {
		t.Error("expected draw forwarded")
	}
}

func TestWrapper_SetVisibleReportsEitherChange(t *testing.T) {
	inner := visual.NewColorVisual(graphics.ColorWhite)
	w := visual.NewWrapper(inner)
	inner.SetVisible(false, false)

	if !w.SetVisible(false, false) {
		t.Error("expected change since the wrapper itself was visible")
	}
	if w.SetVisible(false, false) {
		t.Error("expected no change the second time")
	}
	if !w.SetVisible(true, false) || !inner.IsVisible() {
		t.Error("expected both to become visible")
	}
}

func TestWrapper_InvalidationAndDetach(t *testing.T) {
	first := visual.NewColorVisual(graphics.ColorWhite)
	w := visual.NewWrapper(first)
	cb := &counter{}
	w.SetCallback(cb)

	first.SetColor(graphics.ColorRed)
	if cb.n != 1 || cb.last != w {
		t.Errorf("expected invalidation naming the wrapper, got %d (%v)", cb.n, cb.last)
	}

	second := visual.NewColorVisual(graphics.ColorWhite)
	w.SetWrapped(second)
	if first.Callback() != nil {
		t.Error("expected previous visual detached")
	}
	if second.Callback() != visual.Callback(w) {
		t.Error("expected new visual attached to the wrapper")
	}
	first.SetColor(graphics.ColorGreen)
	if cb.n != 1 {
		t.Error("detached visual must not reach the callback")
	}
}

func TestWrapper_KeepsForeignCallback(t *testing.T) {
	shared := visual.NewColorVisual(graphics.ColorWhite)
	w := visual.NewWrapper(shared)
	other := &counter{}
	shared.SetCallback(other)

	w.SetWrapped(nil)
	if shared.Callback() != visual.Callback(other) {
		t.Error("wrapper must not detach a callback it does not own")
	}
	if _, ok := w.Wrapped().(*visual.ColorVisual); !ok {
		t.Errorf("expected transparent replacement, got %T", w.Wrapped())
	}
}

type framed struct {
	visual.Wrapper
}

func TestWrapper_EmbeddedRegistersOuterValue(t *testing.T) {
	inner := visual.NewColorVisual(graphics.ColorWhite)
	f := &framed{}
	f.Init(f, inner)
	cb := &counter{}
	f.SetCallback(cb)

	if inner.Callback() != visual.Callback(f) {
		t.Errorf("expected wrapped visual to call back the outer value, got %T", inner.Callback())
	}
	inner.SetColor(graphics.ColorRed)
	if cb.n != 1 || cb.last != visual.Visual(f) {
		t.Errorf("expected invalidation naming the outer value, got %d (%T)", cb.n, cb.last)
	}

	next := visual.NewColorVisual(graphics.ColorWhite)
	f.SetWrapped(next)
	if inner.Callback() != nil {
		t.Error("expected previous visual detached from the outer value")
	}
	if next.Callback() != visual.Callback(f) {
		t.Error("expected new visual attached to the outer value")
	}
}

func TestOpacityString(t *testing.T) {
	if got := visual.OpacityTranslucent.String(); got != "translucent" {
		t.Errorf("expected translucent, got %q", got)
	}
	if got := visual.Opacity(42).String(); got != "Opacity(42)" {
		t.Errorf("unexpected %q", got)
	}
}

type counter struct {
	n    int
	last visual.Visual
}

func (c *counter) InvalidateVisual(who visual.Visual) {
	c.n++
	c.last = who
}

type imageCanvas struct {
	*shadowtest.RecordingCanvas
	images []image.Image
}

func (c *imageCanvas) DrawImage(img image.Image, position graphics.Offset) {
	c.images = append(c.images, img)
	c.RecordingCanvas.DrawImage(img, position)
}
