// package common contains common types that are used throughout this library. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Viewport describes the pixel rectangle of a render target that a camera draws into.
// X and Y are the bottom-left corner; Width and Height are the extent in pixels.
type Viewport struct {
	// X is the left edge of the viewport in pixels.
	X int32
	// Y is the bottom edge of the viewport in pixels.
	Y int32
	// Width is the viewport width in pixels.
	Width int32
	// Height is the viewport height in pixels.
	Height int32
}

// Aspect returns the width/height ratio of the viewport.
// Returns 0 if the height is 0.
//
// Returns:
//   - float32: the aspect ratio, or 0 for a zero-height viewport
func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 0
	}
	return float32(v.Width) / float32(v.Height)
}

// Contains reports whether the given pixel coordinate lies inside the viewport rectangle.
//
// Parameters:
//   - x, y: pixel coordinate to test
//
// Returns:
//   - bool: true if the coordinate is inside the viewport
func (v Viewport) Contains(x, y float32) bool {
	return x >= float32(v.X) && x < float32(v.X+v.Width) &&
		y >= float32(v.Y) && y < float32(v.Y+v.Height)
}

// Rect is a pixel-space rectangle, used for scissor clipping regions.
// Unlike Viewport it carries no projection meaning; it only restricts rasterization.
type Rect struct {
	// X is the left edge of the rectangle in pixels.
	X int32
	// Y is the bottom edge of the rectangle in pixels.
	Y int32
	// Width is the rectangle width in pixels.
	Width int32
	// Height is the rectangle height in pixels.
	Height int32
}
