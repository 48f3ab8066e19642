package render

import (
	"sync"

	"github.com/Carmen-Shannon/optic-go/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the minimal capability a camera needs to install itself on a
// Context. Projectors in engine/camera implement it; the Context only ever
// re-invokes Use when a previously active camera must be restored.
type Camera interface {
	// Use makes the camera current on its bound context and installs its
	// viewport and matrices.
	//
	// Returns:
	//   - error: error if the camera's configuration or geometry is invalid
	Use() error
}

// Context holds the per-render-target state a camera system drives: the
// active viewport, optional scissor rectangle, view and projection matrices,
// and a reference to the currently active camera. There is exactly one
// active camera per Context at any time.
//
// All camera operations against a Context are expected to run on the thread
// that owns the graphics context; the mutex only guards against accidental
// cross-goroutine reads, it does not make the camera protocol concurrent.
type Context interface {
	// Viewport returns the active viewport rectangle.
	//
	// Returns:
	//   - common.Viewport: the active viewport
	Viewport() common.Viewport

	// SetViewport sets the active viewport rectangle.
	//
	// Parameters:
	//   - viewport: the viewport to install
	SetViewport(viewport common.Viewport)

	// Scissor returns the active scissor rectangle, or nil when no scissor
	// clipping is applied.
	//
	// Returns:
	//   - *common.Rect: the scissor rectangle or nil
	Scissor() *common.Rect

	// SetScissor sets the active scissor rectangle. Pass nil to disable
	// scissor clipping.
	//
	// Parameters:
	//   - scissor: the scissor rectangle or nil
	SetScissor(scissor *common.Rect)

	// ViewMatrix returns the active view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// SetViewMatrix sets the active view matrix.
	//
	// Parameters:
	//   - m: the view matrix to install
	SetViewMatrix(m mgl32.Mat4)

	// ProjectionMatrix returns the active projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// SetProjectionMatrix sets the active projection matrix.
	//
	// Parameters:
	//   - m: the projection matrix to install
	SetProjectionMatrix(m mgl32.Mat4)

	// CurrentCamera returns the camera that most recently installed itself
	// on this context, or nil if none has.
	//
	// Returns:
	//   - Camera: the active camera or nil
	CurrentCamera() Camera

	// SetCurrentCamera records the camera as the active one. Called by a
	// camera's Use method; application code rarely calls this directly.
	//
	// Parameters:
	//   - c: the camera to record as active
	SetCurrentCamera(c Camera)

	// ApplyToRenderPass installs the context's viewport and scissor rectangle
	// onto a WebGPU render pass encoder. The matrices travel to the GPU
	// through uniform buffers and are not part of pass encoder state.
	//
	// Parameters:
	//   - pass: the render pass encoder to configure
	ApplyToRenderPass(pass *wgpu.RenderPassEncoder)
}

// renderContext is the implementation of the Context interface.
type renderContext struct {
	mu *sync.Mutex

	viewport common.Viewport
	scissor  *common.Rect

	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4

	currentCamera Camera
}

var _ Context = &renderContext{}

// NewContext creates a new rendering Context with identity matrices and a
// 1280x720 viewport, then applies the given options in order.
//
// Parameters:
//   - options: functional options to configure the context
//
// Returns:
//   - Context: the newly created context
func NewContext(options ...ContextBuilderOption) Context {
	c := &renderContext{
		mu:               &sync.Mutex{},
		viewport:         common.Viewport{X: 0, Y: 0, Width: 1280, Height: 720},
		viewMatrix:       mgl32.Ident4(),
		projectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *renderContext) Viewport() common.Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport
}

func (c *renderContext) SetViewport(viewport common.Viewport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = viewport
}

func (c *renderContext) Scissor() *common.Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scissor
}

func (c *renderContext) SetScissor(scissor *common.Rect) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scissor = scissor
}

func (c *renderContext) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *renderContext) SetViewMatrix(m mgl32.Mat4) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewMatrix = m
}

func (c *renderContext) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *renderContext) SetProjectionMatrix(m mgl32.Mat4) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projectionMatrix = m
}

func (c *renderContext) CurrentCamera() Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentCamera
}

func (c *renderContext) SetCurrentCamera(cam Camera) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentCamera = cam
}

func (c *renderContext) ApplyToRenderPass(pass *wgpu.RenderPassEncoder) {
	c.mu.Lock()
	vp := c.viewport
	sc := c.scissor
	c.mu.Unlock()

	pass.SetViewport(float32(vp.X), float32(vp.Y), float32(vp.Width), float32(vp.Height), 0, 1)
	if sc != nil {
		pass.SetScissorRect(uint32(sc.X), uint32(sc.Y), uint32(sc.Width), uint32(sc.Height))
	} else {
		pass.SetScissorRect(uint32(vp.X), uint32(vp.Y), uint32(vp.Width), uint32(vp.Height))
	}
}
