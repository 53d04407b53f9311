package graphics

import "image"

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Rotate rotates the coordinate system by radians (clockwise, y down).
	Rotate(radians float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect fills a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawPath fills a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawImage draws an image with its top-left corner at the given position.
	DrawImage(image image.Image, position Offset)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
