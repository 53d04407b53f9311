package graphics

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"
)

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a >> 8
}

func TestRasterCanvasDrawRect(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	defer c.Close()

	c.DrawRect(RectFromLTWH(5, 5, 10, 10), Paint{Color: ColorRed, Alpha: 1})
	img := c.Image()
	if got := alphaAt(img, 10, 10); got != 255 {
		t.Errorf("expected opaque pixel inside the rect, got %d", got)
	}
	if got := alphaAt(img, 1, 1); got != 0 {
		t.Errorf("expected transparent pixel outside the rect, got %d", got)
	}
}

func TestRasterCanvasClipAndRestore(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	defer c.Close()

	c.Save()
	c.ClipRect(RectFromLTWH(0, 0, 10, 20))
	c.DrawRect(RectFromLTWH(0, 0, 20, 20), Paint{Color: ColorBlue, Alpha: 1})
	c.Restore()

	img := c.Image()
	if got := alphaAt(img, 5, 10); got != 255 {
		t.Errorf("expected pixel inside the clip, got alpha %d", got)
	}
	if got := alphaAt(img, 15, 10); got != 0 {
		t.Errorf("expected pixel outside the clip to stay empty, got alpha %d", got)
	}
}

func TestRasterCanvasRotatedGradientFollowsShape(t *testing.T) {
	// A band along the right edge drawn as a canonical top band rotated a
	// quarter turn: transparent on the outside, opaque toward the middle.
	c := NewRasterCanvas(40, 40)
	defer c.Close()

	g := NewLinearGradient(Offset{}, Offset{Y: 10}, []GradientStop{
		{Position: 0, Color: ColorBlack.WithAlpha8(0)},
		{Position: 1, Color: ColorBlack},
	})
	c.Save()
	c.Translate(40, 0)
	c.Rotate(math.Pi / 2)
	c.DrawRect(Rect{Left: 0, Top: 0, Right: 40, Bottom: 10}, GradientPaint(g))
	c.Restore()

	img := c.Image()
	outer := alphaAt(img, 39, 20)
	inner := alphaAt(img, 31, 20)
	if outer >= inner {
		t.Errorf("expected alpha to grow toward the middle, got outer %d inner %d", outer, inner)
	}
	if got := alphaAt(img, 20, 20); got != 0 {
		t.Errorf("expected nothing outside the band, got %d", got)
	}
}

func TestRasterCanvasEncodePNG(t *testing.T) {
	c := NewRasterCanvas(8, 4)
	defer c.Close()
	c.Clear(ColorWhite)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("unexpected size %v", b)
	}
}

func TestNewRasterCanvasClampsSize(t *testing.T) {
	c := NewRasterCanvas(0, -3)
	defer c.Close()
	if c.Size() != (Size{Width: 1, Height: 1}) {
		t.Errorf("expected 1x1, got %v", c.Size())
	}
}
