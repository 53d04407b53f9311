package visual

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/go-drift/shadow/pkg/graphics"
)

// ImageVisual stretches a source image over its bounds.
//
// The scaled pixels are cached and only recomputed when the bounds size,
// alpha, or scaler change.
type ImageVisual struct {
	Base
	src    image.Image
	scaler draw.Scaler

	scaled      *image.RGBA
	scaledSize  image.Point
	scaledAlpha uint8
}

// NewImageVisual returns a visual drawing src scaled to its bounds with
// bilinear filtering.
func NewImageVisual(src image.Image) *ImageVisual {
	v := &ImageVisual{src: src, scaler: draw.BiLinear}
	v.SetSelf(v)
	return v
}

// SetScaler selects the interpolator used to fit the image, for example
// draw.NearestNeighbor for pixel art or draw.CatmullRom for photos.
func (v *ImageVisual) SetScaler(scaler draw.Scaler) {
	if scaler == nil {
		scaler = draw.BiLinear
	}
	v.scaler = scaler
	v.scaled = nil
	v.InvalidateSelf()
}

// Image returns the source image.
func (v *ImageVisual) Image() image.Image {
	return v.src
}

func (v *ImageVisual) IntrinsicSize() graphics.Size {
	if v.src == nil {
		return graphics.Size{}
	}
	b := v.src.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (v *ImageVisual) Opacity() Opacity {
	if v.src == nil || v.Alpha() == 0 {
		return OpacityTransparent
	}
	return OpacityUnknown
}

func (v *ImageVisual) Draw(canvas graphics.Canvas) {
	if !v.IsVisible() || v.src == nil {
		return
	}
	bounds := v.Bounds()
	img := v.scaledImage(image.Pt(int(bounds.Width()), int(bounds.Height())))
	if img == nil {
		return
	}
	canvas.DrawImage(img, bounds.TopLeft())
}

// scaledImage returns the source fitted to size, reusing the cached result
// when nothing changed.
func (v *ImageVisual) scaledImage(size image.Point) *image.RGBA {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	alpha := v.Alpha()
	if v.scaled != nil && v.scaledSize == size && v.scaledAlpha == alpha {
		return v.scaled
	}
	dst := image.NewRGBA(image.Rectangle{Max: size})
	var opts *draw.Options
	if alpha != 0xFF {
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: alpha})}
	}
	v.scaler.Scale(dst, dst.Bounds(), v.src, v.src.Bounds(), draw.Over, opts)
	v.scaled = dst
	v.scaledSize = size
	v.scaledAlpha = alpha
	return dst
}
