package camera

// CameraStackOption is a functional option for configuring a cameraStack.
// Use the With* functions to create options.
type CameraStackOption func(c *cameraStackConfig)

// cameraStackConfig collects the optional inputs to NewCameraStack.
type cameraStackConfig struct {
	baseProjector Projector
}

// WithBaseProjector sets the projector used for the stack's protected base
// entry instead of the default ViewportProjector.
//
// Parameters:
//   - p: the base projector
//
// Returns:
//   - CameraStackOption: option function to apply
func WithBaseProjector(p Projector) CameraStackOption {
	return func(c *cameraStackConfig) {
		c.baseProjector = p
	}
}
