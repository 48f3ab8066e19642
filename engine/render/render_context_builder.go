package render

import (
	"github.com/Carmen-Shannon/optic-go/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ContextBuilderOption is a functional option for configuring a renderContext.
// Use the With* functions to create options.
type ContextBuilderOption func(c *renderContext)

// WithViewport sets the context's initial viewport rectangle.
//
// Parameters:
//   - viewport: the viewport to install
//
// Returns:
//   - ContextBuilderOption: option function to apply
func WithViewport(viewport common.Viewport) ContextBuilderOption {
	return func(c *renderContext) {
		c.viewport = viewport
	}
}

// WithScissor sets the context's initial scissor rectangle.
//
// Parameters:
//   - scissor: the scissor rectangle, or nil for no clipping
//
// Returns:
//   - ContextBuilderOption: option function to apply
func WithScissor(scissor *common.Rect) ContextBuilderOption {
	return func(c *renderContext) {
		c.scissor = scissor
	}
}

// WithViewMatrix sets the context's initial view matrix.
//
// Parameters:
//   - m: the view matrix
//
// Returns:
//   - ContextBuilderOption: option function to apply
func WithViewMatrix(m mgl32.Mat4) ContextBuilderOption {
	return func(c *renderContext) {
		c.viewMatrix = m
	}
}

// WithProjectionMatrix sets the context's initial projection matrix.
//
// Parameters:
//   - m: the projection matrix
//
// Returns:
//   - ContextBuilderOption: option function to apply
func WithProjectionMatrix(m mgl32.Mat4) ContextBuilderOption {
	return func(c *renderContext) {
		c.projectionMatrix = m
	}
}
