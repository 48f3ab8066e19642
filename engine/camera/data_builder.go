package camera

import (
	"github.com/Carmen-Shannon/optic-go/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ViewDataOption is a functional option for configuring a ViewData.
// Use the With* functions to create options.
type ViewDataOption func(v *ViewData)

// WithDataViewport sets the view's viewport rectangle.
//
// Parameters:
//   - viewport: the pixel rectangle the camera draws into
//
// Returns:
//   - ViewDataOption: option function to apply
func WithDataViewport(viewport common.Viewport) ViewDataOption {
	return func(v *ViewData) {
		v.Viewport = viewport
	}
}

// WithPosition sets the camera's world-space position.
//
// Parameters:
//   - position: the camera position
//
// Returns:
//   - ViewDataOption: option function to apply
func WithPosition(position mgl32.Vec3) ViewDataOption {
	return func(v *ViewData) {
		v.Position = position
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - up: the up direction (need not be unit length)
//
// Returns:
//   - ViewDataOption: option function to apply
func WithUp(up mgl32.Vec3) ViewDataOption {
	return func(v *ViewData) {
		v.Up = up
	}
}

// WithForward sets the camera's look direction.
//
// Parameters:
//   - forward: the look direction
//
// Returns:
//   - ViewDataOption: option function to apply
func WithForward(forward mgl32.Vec3) ViewDataOption {
	return func(v *ViewData) {
		v.Forward = forward
	}
}

// WithZoom sets the camera's zoom factor.
//
// Parameters:
//   - zoom: the zoom factor (1.0 = no zoom, must be at least MinZoom)
//
// Returns:
//   - ViewDataOption: option function to apply
func WithZoom(zoom float32) ViewDataOption {
	return func(v *ViewData) {
		v.Zoom = zoom
	}
}
