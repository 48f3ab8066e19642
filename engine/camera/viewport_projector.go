package camera

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/optic-go/common"
	"github.com/Carmen-Shannon/optic-go/engine/render"
	"github.com/go-gl/mathgl/mgl32"
)

// ViewportProjector is the minimal camera: an identity view matrix and a
// pixel-space orthographic projection spanning its viewport, with near/far
// fixed at -100/100. World units equal pixels, so MapCoordinate is the
// identity mapping. It exists mainly to seed a CameraStack with a fallback
// camera that can always be restored.
type ViewportProjector interface {
	Projector

	// SetViewport replaces the projector's viewport and rebuilds its
	// pixel-space projection to match.
	//
	// Parameters:
	//   - viewport: the new viewport rectangle
	SetViewport(viewport common.Viewport)
}

// viewportProjector is the implementation of ViewportProjector.
type viewportProjector struct {
	mu *sync.Mutex

	ctx  render.Context
	view *ViewData
}

var _ ViewportProjector = &viewportProjector{}

// NewViewportProjector creates a viewport projector bound to the given
// rendering context. The viewport defaults to the context's current viewport
// unless WithWindowSize or WithView supplies one.
//
// Parameters:
//   - ctx: the rendering context the projector installs itself on
//   - options: functional options to configure the projector
//
// Returns:
//   - ViewportProjector: the newly created projector
//   - error: ErrInvalidConfiguration if ctx is nil
func NewViewportProjector(ctx render.Context, options ...ProjectorOption) (ViewportProjector, error) {
	if ctx == nil {
		return nil, fmt.Errorf("%w: projector requires a rendering context", ErrInvalidConfiguration)
	}

	var cfg projectorConfig
	for _, option := range options {
		option(&cfg)
	}

	view := cfg.view
	if view == nil {
		viewport := ctx.Viewport()
		if cfg.windowWidth > 0 && cfg.windowHeight > 0 {
			viewport = common.Viewport{X: 0, Y: 0, Width: int32(cfg.windowWidth), Height: int32(cfg.windowHeight)}
		}
		view = NewViewData(WithDataViewport(viewport))
	}

	return &viewportProjector{
		mu:   &sync.Mutex{},
		ctx:  ctx,
		view: view,
	}, nil
}

func (v *viewportProjector) ViewData() *ViewData {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.view
}

func (v *viewportProjector) Viewport() common.Viewport {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.view.Viewport
}

func (v *viewportProjector) SetViewport(viewport common.Viewport) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view.Viewport = viewport
}

func (v *viewportProjector) Use() error {
	v.mu.Lock()
	viewport := v.view.Viewport
	v.mu.Unlock()

	v.ctx.SetCurrentCamera(v)
	v.ctx.SetViewport(viewport)
	v.ctx.SetProjectionMatrix(pixelProjection(viewport))
	v.ctx.SetViewMatrix(mgl32.Ident4())
	return nil
}

func (v *viewportProjector) Activate(fn func(Projector) error) error {
	return activateScoped(v.ctx, v, fn)
}

func (v *viewportProjector) MapCoordinate(screenX, screenY float32) (mgl32.Vec3, error) {
	return mgl32.Vec3{screenX, screenY, 0}, nil
}

func (v *viewportProjector) MapCoordinateAtDepth(screenX, screenY, depth float32) (mgl32.Vec3, error) {
	return mgl32.Vec3{screenX, screenY, 0}, nil
}

// pixelProjection maps the viewport's pixel extent onto clip space, bottom
// left at the origin.
func pixelProjection(viewport common.Viewport) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(viewport.Width), 0, float32(viewport.Height), -100, 100)
}
