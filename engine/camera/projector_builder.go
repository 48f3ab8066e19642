package camera

// ProjectorOption is a functional option shared by the projector
// constructors. Use the With* functions to create options.
type ProjectorOption func(c *projectorConfig)

// projectorConfig collects the optional inputs to a projector constructor.
// Anything left unset is derived from the rendering context's viewport.
type projectorConfig struct {
	windowWidth  int
	windowHeight int

	view         *ViewData
	perspective  *PerspectiveProjectionData
	orthographic *OrthographicProjectionData
}

// WithWindowSize supplies the window dimensions used to derive default view
// and projection data. Without this option the constructor falls back to the
// rendering context's viewport.
//
// Parameters:
//   - width, height: window client area size in pixels
//
// Returns:
//   - ProjectorOption: option function to apply
func WithWindowSize(width, height int) ProjectorOption {
	return func(c *projectorConfig) {
		c.windowWidth = width
		c.windowHeight = height
	}
}

// WithView supplies an explicit view data record. The projector takes
// exclusive ownership of it.
//
// Parameters:
//   - view: the view data
//
// Returns:
//   - ProjectorOption: option function to apply
func WithView(view *ViewData) ProjectorOption {
	return func(c *projectorConfig) {
		c.view = view
	}
}

// WithPerspective supplies explicit perspective projection data. Only
// meaningful for NewPerspectiveProjector.
//
// Parameters:
//   - projection: the perspective projection data
//
// Returns:
//   - ProjectorOption: option function to apply
func WithPerspective(projection *PerspectiveProjectionData) ProjectorOption {
	return func(c *projectorConfig) {
		c.perspective = projection
	}
}

// WithOrthographic supplies explicit orthographic projection data. Only
// meaningful for NewOrthographicProjector.
//
// Parameters:
//   - projection: the orthographic projection data
//
// Returns:
//   - ProjectorOption: option function to apply
func WithOrthographic(projection *OrthographicProjectionData) ProjectorOption {
	return func(c *projectorConfig) {
		c.orthographic = projection
	}
}
