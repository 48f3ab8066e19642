package camera

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/optic-go/common"
	"github.com/Carmen-Shannon/optic-go/engine/render"
	"github.com/go-gl/mathgl/mgl32"
)

// OrthographicProjector derives view and projection matrices from a ViewData
// and OrthographicProjectionData pair. Zoom divides the projection bounds, so
// a zoom of 2 shows half the world extent in each axis, scaled about the
// center of the bounds.
//
// Like the perspective variant, matrices are recomputed on every use.
type OrthographicProjector interface {
	Projector

	// Projection returns the projector's orthographic projection data record.
	//
	// Returns:
	//   - *OrthographicProjectionData: the projection data
	Projection() *OrthographicProjectionData

	// ViewMatrix derives the current view matrix from the view data.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	//   - error: ErrDegenerateGeometry if forward and up are parallel or
	//     zero-length
	ViewMatrix() (mgl32.Mat4, error)

	// ProjectionMatrix derives the current projection matrix with the zoom
	// folded into the bounds.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	//   - error: ErrInvalidConfiguration if the projection data is out of
	//     range
	ProjectionMatrix() (mgl32.Mat4, error)

	// GPUUniform packs the combined matrix and camera position into the
	// GPU-aligned uniform layout for upload.
	//
	// Returns:
	//   - *GPUCameraUniform: the packed uniform
	//   - error: the first error from either matrix derivation
	GPUUniform() (*GPUCameraUniform, error)
}

// orthographicProjector is the implementation of OrthographicProjector.
type orthographicProjector struct {
	mu *sync.Mutex

	ctx        render.Context
	view       *ViewData
	projection *OrthographicProjectionData
}

var _ OrthographicProjector = &orthographicProjector{}

// NewOrthographicProjector creates an orthographic projector bound to the
// given rendering context. View and projection data omitted from the options
// are derived from the window dimensions (WithWindowSize) or the context's
// viewport: full-window viewport, position at the window center, bounds
// symmetric about the position (-w/2..w/2, -h/2..h/2), near -100, far 100.
//
// Parameters:
//   - ctx: the rendering context the projector installs itself on
//   - options: functional options to configure the projector
//
// Returns:
//   - OrthographicProjector: the newly created projector
//   - error: ErrInvalidConfiguration if ctx is nil or no window dimensions
//     are resolvable for defaulting
func NewOrthographicProjector(ctx render.Context, options ...ProjectorOption) (OrthographicProjector, error) {
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
	if (cfg.view == nil || cfg.orthographic == nil) && (width <= 0 || height <= 0) {
		return nil, fmt.Errorf("%w: no window dimensions resolvable for default view/projection data", ErrInvalidConfiguration)
	}

	view := cfg.view
	if view == nil {
		view = NewViewData(
			WithDataViewport(common.Viewport{X: 0, Y: 0, Width: int32(width), Height: int32(height)}),
			WithPosition(mgl32.Vec3{float32(width) / 2, float32(height) / 2, 0}),
		)
	}
	projection := cfg.orthographic
	if projection == nil {
		projection = &OrthographicProjectionData{
			Left:   -float32(width) / 2,
			Right:  float32(width) / 2,
			Bottom: -float32(height) / 2,
			Top:    float32(height) / 2,
			Near:   -100,
			Far:    100,
		}
	}

	return &orthographicProjector{
		mu:         &sync.Mutex{},
		ctx:        ctx,
		view:       view,
		projection: projection,
	}, nil
}

func (o *orthographicProjector) ViewData() *ViewData {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view
}

func (o *orthographicProjector) Projection() *OrthographicProjectionData {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.projection
}

func (o *orthographicProjector) Viewport() common.Viewport {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view.Viewport
}

func (o *orthographicProjector) ViewMatrix() (mgl32.Mat4, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return deriveViewMatrix(o.view)
}

func (o *orthographicProjector) ProjectionMatrix() (mgl32.Mat4, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.deriveProjectionMatrix()
}

func (o *orthographicProjector) GPUUniform() (*GPUCameraUniform, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	view, err := deriveViewMatrix(o.view)
	if err != nil {
		return nil, err
	}
	projection, err := o.deriveProjectionMatrix()
	if err != nil {
		return nil, err
	}
	return newGPUCameraUniform(projection.Mul4(view), o.view.Position), nil
}

func (o *orthographicProjector) Use() error {
	o.mu.Lock()
	view, err := deriveViewMatrix(o.view)
	if err != nil {
		o.mu.Unlock()
		return err
	}
	projection, err := o.deriveProjectionMatrix()
	if err != nil {
		o.mu.Unlock()
		return err
	}
	viewport := o.view.Viewport
	o.mu.Unlock()

	o.ctx.SetCurrentCamera(o)
	o.ctx.SetViewport(viewport)
	o.ctx.SetProjectionMatrix(projection)
	o.ctx.SetViewMatrix(view)
	return nil
}

func (o *orthographicProjector) Activate(fn func(Projector) error) error {
	return activateScoped(o.ctx, o, fn)
}

func (o *orthographicProjector) MapCoordinate(screenX, screenY float32) (mgl32.Vec3, error) {
	return o.MapCoordinateAtDepth(screenX, screenY, 0)
}

func (o *orthographicProjector) MapCoordinateAtDepth(screenX, screenY, depth float32) (mgl32.Vec3, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	view, err := deriveViewMatrix(o.view)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	projection, err := o.deriveProjectionMatrix()
	if err != nil {
		return mgl32.Vec3{}, err
	}

	ndcZ := 2.0*depth/(o.projection.Far-o.projection.Near) - 1.0
	return unproject(view, projection, o.view.Viewport, screenX, screenY, ndcZ)
}

// deriveProjectionMatrix builds the orthographic matrix with the zoom divided
// into each bound. Caller must hold the mutex.
func (o *orthographicProjector) deriveProjectionMatrix() (mgl32.Mat4, error) {
	if err := o.projection.Validate(); err != nil {
		return mgl32.Mat4{}, err
	}
	if o.view.Zoom < MinZoom {
		return mgl32.Mat4{}, fmt.Errorf("%w: zoom %g is below the minimum %g", ErrInvalidConfiguration, o.view.Zoom, float32(MinZoom))
	}
	zoom := o.view.Zoom
	return mgl32.Ortho(
		o.projection.Left/zoom,
		o.projection.Right/zoom,
		o.projection.Bottom/zoom,
		o.projection.Top/zoom,
		o.projection.Near,
		o.projection.Far,
	), nil
}
