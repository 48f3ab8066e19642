package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/optic-go/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MinZoom is the smallest zoom a ViewData may carry. Zoom divides the
// effective field of view, so values at or below zero would produce a
// degenerate projection.
const MinZoom = 1e-6

// crossEpsilon is the tolerance below which a forward x up cross product is
// treated as zero-length, meaning the two vectors are parallel.
const crossEpsilon = 1e-6

// ViewData holds the data needed to derive a view matrix, excluding any
// projection parameters. It is a plain mutable record: motion controllers and
// application code write its fields directly every frame, and the owning
// projector reads them on demand.
//
// Up and forward must not be parallel; a degenerate cross product leaves the
// camera's right vector undefined. Projectors detect this when deriving the
// view matrix and report ErrDegenerateGeometry rather than producing NaNs.
type ViewData struct {
	// Viewport is the pixel rectangle this camera draws into.
	Viewport common.Viewport

	// Position is the camera location in world space.
	Position mgl32.Vec3

	// Up describes which direction is up for the camera. It does not need to
	// be unit length or perfectly perpendicular to Forward; the projector
	// re-orthogonalizes it when building the view basis.
	Up mgl32.Vec3

	// Forward is the camera look direction.
	Forward mgl32.Vec3

	// Zoom scales the effective field of view: values above 1 narrow the fov
	// and magnify. It is not a translation along the view axis.
	Zoom float32
}

// NewViewData creates a ViewData with the standard defaults (origin position,
// +Y up, -Z forward, zoom 1, zero viewport), then applies the given options
// in order.
//
// Parameters:
//   - options: functional options to configure the view data
//
// Returns:
//   - *ViewData: the newly created view data
func NewViewData(options ...ViewDataOption) *ViewData {
	v := &ViewData{
		Up:      mgl32.Vec3{0, 1, 0},
		Forward: mgl32.Vec3{0, 0, -1},
		Zoom:    1.0,
	}
	for _, option := range options {
		option(v)
	}
	return v
}

// Validate checks the view data invariants: zoom at least MinZoom, non-zero
// forward and up vectors, and forward not parallel to up.
//
// Returns:
//   - error: ErrInvalidConfiguration or ErrDegenerateGeometry describing the
//     first violated invariant, or nil
func (v *ViewData) Validate() error {
	if v.Zoom < MinZoom {
		return fmt.Errorf("%w: zoom %g is below the minimum %g", ErrInvalidConfiguration, v.Zoom, float32(MinZoom))
	}
	if v.Forward.Len() < crossEpsilon {
		return fmt.Errorf("%w: forward vector is zero-length", ErrDegenerateGeometry)
	}
	if v.Up.Len() < crossEpsilon {
		return fmt.Errorf("%w: up vector is zero-length", ErrDegenerateGeometry)
	}
	cross := v.Forward.Normalize().Cross(v.Up.Normalize())
	if cross.Len() < crossEpsilon {
		return fmt.Errorf("%w: forward and up vectors are parallel", ErrDegenerateGeometry)
	}
	return nil
}

// PerspectiveProjectionData holds the parameters of a perspective projection.
// Like ViewData it is a plain mutable record with no behavior beyond
// validation.
type PerspectiveProjectionData struct {
	// Aspect is the width over height ratio of the projection. Must be > 0.
	Aspect float32

	// Fov is the vertical field of view in degrees, exclusive of 0 and 180.
	// The owning projector divides it by the view's zoom before use.
	Fov float32

	// Near is the near clip plane distance. Must satisfy 0 < Near < Far.
	Near float32

	// Far is the far clip plane distance.
	Far float32
}

// Validate checks the perspective projection invariants.
//
// Returns:
//   - error: ErrInvalidConfiguration describing the first violated invariant,
//     or nil
func (p *PerspectiveProjectionData) Validate() error {
	if p.Aspect <= 0 {
		return fmt.Errorf("%w: aspect ratio %g must be positive", ErrInvalidConfiguration, p.Aspect)
	}
	if p.Fov <= 0 || p.Fov >= 180 {
		return fmt.Errorf("%w: field of view %g degrees must be inside (0, 180)", ErrInvalidConfiguration, p.Fov)
	}
	if p.Near <= 0 {
		return fmt.Errorf("%w: near plane %g must be positive", ErrInvalidConfiguration, p.Near)
	}
	if p.Near >= p.Far {
		return fmt.Errorf("%w: near plane %g must be strictly less than far plane %g", ErrInvalidConfiguration, p.Near, p.Far)
	}
	return nil
}

// OrthographicProjectionData holds the parameters of an orthographic
// projection: the world-space box mapped onto clip space.
type OrthographicProjectionData struct {
	// Left is mapped to x = -1.
	Left float32
	// Right is mapped to x = +1.
	Right float32
	// Bottom is mapped to y = -1.
	Bottom float32
	// Top is mapped to y = +1.
	Top float32
	// Near is the near clip plane. Must be strictly less than Far.
	Near float32
	// Far is the far clip plane.
	Far float32
}

// Validate checks the orthographic projection invariants.
//
// Returns:
//   - error: ErrInvalidConfiguration describing the first violated invariant,
//     or nil
func (o *OrthographicProjectionData) Validate() error {
	if math32.Abs(o.Right-o.Left) < MinZoom {
		return fmt.Errorf("%w: left %g and right %g bounds coincide", ErrInvalidConfiguration, o.Left, o.Right)
	}
	if math32.Abs(o.Top-o.Bottom) < MinZoom {
		return fmt.Errorf("%w: bottom %g and top %g bounds coincide", ErrInvalidConfiguration, o.Bottom, o.Top)
	}
	if o.Near >= o.Far {
		return fmt.Errorf("%w: near plane %g must be strictly less than far plane %g", ErrInvalidConfiguration, o.Near, o.Far)
	}
	return nil
}
