package buffers

import "fmt"

type Viewport struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// Covers reports whether the viewport is exactly the full (0, 0, width, height) rectangle
func (v Viewport) Covers(width, height int32) bool {
	return v.X == 0 && v.Y == 0 && v.Width == width && v.Height == height
}

// unpackViewport turns a 2 or 4 value rectangle into a Viewport.
// With 2 values the size defaults to (width, height). Negative sizes are rejected.
func unpackViewport(rect []int32, width, height int32) (Viewport, error) {

	var vp Viewport
	switch len(rect) {
	case 2:
		vp = Viewport{X: rect[0], Y: rect[1], Width: width, Height: height}
	case 4:
		vp = Viewport{X: rect[0], Y: rect[1], Width: rect[2], Height: rect[3]}
	default:
		return Viewport{}, fmt.Errorf("%w: it must have 2 or 4 values, got %d", ErrInvalidViewport, len(rect))
	}

	if vp.Width < 0 || vp.Height < 0 {
		return Viewport{}, fmt.Errorf("%w: negative size %dx%d", ErrInvalidViewport, vp.Width, vp.Height)
	}

	return vp, nil
}
