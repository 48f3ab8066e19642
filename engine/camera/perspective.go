package camera

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/optic-go/common"
	"github.com/Carmen-Shannon/optic-go/engine/render"
	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveProjector derives view and projection matrices from a ViewData
// and PerspectiveProjectionData pair and installs them on its rendering
// context. It provides no methods for manipulating the data records; mutate
// them directly or through the motion controllers.
//
// Matrices are recomputed on every Use and MapCoordinate call, never cached.
// If a camera is used many times per frame this recomputation is a known
// cost; cache the matrices at the call site if it matters.
type PerspectiveProjector interface {
	Projector

	// Projection returns the projector's perspective projection data record.
	//
	// Returns:
	//   - *PerspectiveProjectionData: the projection data
	Projection() *PerspectiveProjectionData

	// ViewMatrix derives the current view matrix from the view data.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	//   - error: ErrDegenerateGeometry if forward and up are parallel or
	//     zero-length
	ViewMatrix() (mgl32.Mat4, error)

	// ProjectionMatrix derives the current projection matrix. The effective
	// field of view is fov divided by the view's zoom: zoom above 1 narrows
	// the fov and magnifies. Zoom is fov scaling, not a dolly.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	//   - error: ErrInvalidConfiguration if the projection data or effective
	//     fov is out of range
	ProjectionMatrix() (mgl32.Mat4, error)

	// ViewProjectionMatrix derives the combined projection * view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	//   - error: the first error from either derivation
	ViewProjectionMatrix() (mgl32.Mat4, error)

	// Frustum extracts the camera's viewing frustum from the combined
	// projection * view matrix, for culling.
	//
	// Returns:
	//   - common.Frustum: the six normalized frustum planes
	//   - error: the first error from either matrix derivation
	Frustum() (common.Frustum, error)

	// GPUUniform packs the combined matrix and camera position into the
	// GPU-aligned uniform layout for upload.
	//
	// Returns:
	//   - *GPUCameraUniform: the packed uniform
	//   - error: the first error from either matrix derivation
	GPUUniform() (*GPUCameraUniform, error)
}

// perspectiveProjector is the implementation of PerspectiveProjector.
type perspectiveProjector struct {
	mu *sync.Mutex

	ctx        render.Context
	view       *ViewData
	projection *PerspectiveProjectionData
}

var _ PerspectiveProjector = &perspectiveProjector{}

// NewPerspectiveProjector creates a perspective projector bound to the given
// rendering context. View and projection data omitted from the options are
// derived from the window dimensions (WithWindowSize) or, failing that, the
// context's viewport: full-window viewport, position at the window center,
// up +Y, forward -Z, zoom 1, fov 90 degrees, near 0.1, far 1000.
//
// Parameters:
//   - ctx: the rendering context the projector installs itself on
//   - options: functional options to configure the projector
//
// Returns:
//   - PerspectiveProjector: the newly created projector
//   - error: ErrInvalidConfiguration if ctx is nil or no window dimensions
//     are resolvable for defaulting
func NewPerspectiveProjector(ctx render.Context, options ...ProjectorOption) (PerspectiveProjector, error) {
	if ctx == nil {
		return nil, fmt.Errorf("%w: projector requires a rendering context", ErrInvalidConfiguration)
	}

	var cfg projectorConfig
	for _, option := range options {
		option(&cfg)
	}

	width, height := cfg.windowWidth, cfg.windowHeight
	if width == 0 || height == 0 {
		vp := ctx.Viewport()
		width, height = int(vp.Width), int(vp.Height)
	}
	if (cfg.view == nil || cfg.perspective == nil) && (width <= 0 || height <= 0) {
		return nil, fmt.Errorf("%w: no window dimensions resolvable for default view/projection data", ErrInvalidConfiguration)
	}

	view := cfg.view
	if view == nil {
		view = NewViewData(
			WithDataViewport(common.Viewport{X: 0, Y: 0, Width: int32(width), Height: int32(height)}),
			WithPosition(mgl32.Vec3{float32(width) / 2, float32(height) / 2, 0}),
		)
	}
	projection := cfg.perspective
	if projection == nil {
		projection = &PerspectiveProjectionData{
			Aspect: float32(width) / float32(height),
			Fov:    90,
			Near:   0.1,
			Far:    1000,
		}
	}

	return &perspectiveProjector{
		mu:         &sync.Mutex{},
		ctx:        ctx,
		view:       view,
		projection: projection,
	}, nil
}

func (p *perspectiveProjector) ViewData() *ViewData {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

func (p *perspectiveProjector) Projection() *PerspectiveProjectionData {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.projection
}

func (p *perspectiveProjector) Viewport() common.Viewport {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view.Viewport
}

func (p *perspectiveProjector) ViewMatrix() (mgl32.Mat4, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return deriveViewMatrix(p.view)
}

func (p *perspectiveProjector) ProjectionMatrix() (mgl32.Mat4, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.deriveProjectionMatrix()
}

func (p *perspectiveProjector) ViewProjectionMatrix() (mgl32.Mat4, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.deriveViewProjectionMatrix()
}

func (p *perspectiveProjector) Frustum() (common.Frustum, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	full, err := p.deriveViewProjectionMatrix()
	if err != nil {
		return common.Frustum{}, err
	}
	return common.ExtractFrustum(full), nil
}

func (p *perspectiveProjector) GPUUniform() (*GPUCameraUniform, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	full, err := p.deriveViewProjectionMatrix()
	if err != nil {
		return nil, err
	}
	return newGPUCameraUniform(full, p.view.Position), nil
}

func (p *perspectiveProjector) Use() error {
	p.mu.Lock()
	view, err := deriveViewMatrix(p.view)
	if err != nil {
		p.mu.Unlock()
		return err
	}
	projection, err := p.deriveProjectionMatrix()
	if err != nil {
		p.mu.Unlock()
		return err
	}
	viewport := p.view.Viewport
	p.mu.Unlock()

	p.ctx.SetCurrentCamera(p)
	p.ctx.SetViewport(viewport)
	p.ctx.SetProjectionMatrix(projection)
	p.ctx.SetViewMatrix(view)
	return nil
}

func (p *perspectiveProjector) Activate(fn func(Projector) error) error {
	return activateScoped(p.ctx, p, fn)
}

func (p *perspectiveProjector) MapCoordinate(screenX, screenY float32) (mgl32.Vec3, error) {
	return p.MapCoordinateAtDepth(screenX, screenY, 0)
}

func (p *perspectiveProjector) MapCoordinateAtDepth(screenX, screenY, depth float32) (mgl32.Vec3, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	view, err := deriveViewMatrix(p.view)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	projection, err := p.deriveProjectionMatrix()
	if err != nil {
		return mgl32.Vec3{}, err
	}

	// depth 0 lands exactly on the near clip plane (ndcZ = -1), so
	// MapCoordinate needs no special case.
	ndcZ := 2.0*depth/(p.projection.Far-p.projection.Near) - 1.0
	return unproject(view, projection, p.view.Viewport, screenX, screenY, ndcZ)
}

// deriveProjectionMatrix builds the perspective matrix with the zoom folded
// into the field of view. Caller must hold the mutex.
func (p *perspectiveProjector) deriveProjectionMatrix() (mgl32.Mat4, error) {
	if err := p.projection.Validate(); err != nil {
		return mgl32.Mat4{}, err
	}
	if p.view.Zoom < MinZoom {
		return mgl32.Mat4{}, fmt.Errorf("%w: zoom %g is below the minimum %g", ErrInvalidConfiguration, p.view.Zoom, float32(MinZoom))
	}
	effectiveFov := p.projection.Fov / p.view.Zoom
	if effectiveFov <= 0 || effectiveFov >= 180 {
		return mgl32.Mat4{}, fmt.Errorf("%w: effective field of view %g degrees (fov %g / zoom %g) must be inside (0, 180)",
			ErrInvalidConfiguration, effectiveFov, p.projection.Fov, p.view.Zoom)
	}
	return mgl32.Perspective(mgl32.DegToRad(effectiveFov), p.projection.Aspect, p.projection.Near, p.projection.Far), nil
}

// deriveViewProjectionMatrix builds projection * view. Caller must hold the
// mutex.
func (p *perspectiveProjector) deriveViewProjectionMatrix() (mgl32.Mat4, error) {
	view, err := deriveViewMatrix(p.view)
	if err != nil {
		return mgl32.Mat4{}, err
	}
	projection, err := p.deriveProjectionMatrix()
	if err != nil {
		return mgl32.Mat4{}, err
	}
	return projection.Mul4(view), nil
}
