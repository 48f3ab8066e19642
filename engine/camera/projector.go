package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/optic-go/common"
	"github.com/Carmen-Shannon/optic-go/engine/render"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// detEpsilon is the tolerance below which a matrix determinant is treated as
// zero during unprojection.
const detEpsilon = 1e-8

// Projector is the capability set every camera variant implements: it can
// install itself on its rendering context, temporarily activate itself with a
// guaranteed restore of the previous camera, and map screen coordinates back
// into world space.
type Projector interface {
	render.Camera

	// Activate makes this projector current, runs fn, and restores the
	// previously active camera on every exit path, including when fn returns
	// an error. This is the scoped-activation construct renderers use for
	// nested render passes.
	//
	// Parameters:
	//   - fn: the block to run while this projector is current
	//
	// Returns:
	//   - error: ErrInvalidState if no previous camera exists to restore,
	//     the error from Use, fn's error, or a restore failure
	Activate(fn func(p Projector) error) error

	// MapCoordinate converts a pixel coordinate into world space at the near
	// clip plane by inverting the projection * view transform.
	//
	// Parameters:
	//   - screenX, screenY: pixel coordinate, measured from the bottom-left
	//     of the screen
	//
	// Returns:
	//   - mgl32.Vec3: the world-space position
	//   - error: ErrDegenerateGeometry if projection * view is not invertible
	MapCoordinate(screenX, screenY float32) (mgl32.Vec3, error)

	// MapCoordinateAtDepth converts a pixel coordinate into world space at
	// the given world-space distance from the camera. The depth is remapped
	// into clip space as 2*depth/(far-near) - 1 before unprojection.
	//
	// Parameters:
	//   - screenX, screenY: pixel coordinate, measured from the bottom-left
	//     of the screen
	//   - depth: world-space distance, expected between the near and far
	//     planes
	//
	// Returns:
	//   - mgl32.Vec3: the world-space position
	//   - error: ErrDegenerateGeometry if projection * view is not invertible
	MapCoordinateAtDepth(screenX, screenY, depth float32) (mgl32.Vec3, error)

	// ViewData returns the projector's view data record. The record is owned
	// exclusively by this projector; mutate it directly or through the motion
	// controllers.
	//
	// Returns:
	//   - *ViewData: the view data
	ViewData() *ViewData

	// Viewport returns the pixel rectangle this projector draws into.
	//
	// Returns:
	//   - common.Viewport: the viewport
	Viewport() common.Viewport
}

// activateScoped implements the shared scoped-activation discipline: capture
// the previously active camera, install p, run fn, and restore the previous
// camera on all exit paths. A restore failure is surfaced unless fn already
// failed.
func activateScoped(ctx render.Context, p Projector, fn func(Projector) error) (err error) {
	previous := ctx.CurrentCamera()
	if previous == nil {
		return fmt.Errorf("%w: no previously active camera to restore; activate a base camera first", ErrInvalidState)
	}
	if useErr := p.Use(); useErr != nil {
		return useErr
	}
	defer func() {
		if restoreErr := previous.Use(); restoreErr != nil && err == nil {
			err = fmt.Errorf("failed to restore previous camera: %w", restoreErr)
		}
	}()
	return fn(p)
}

// deriveViewMatrix constructs a right-handed view matrix from the view data's
// forward and up vectors:
//
//  1. normalize forward
//  2. normalize up
//  3. right = forward x up
//  4. re-orthogonalized up = right x forward
//
// The right vector is normalized after step 3 so the basis stays unit length
// even when the input up deviates from perpendicularity. The matrix layout is
// column-major with basis rows (right, up, -forward) and translation column
// (-right.pos, -up.pos, forward.pos), matching mgl32's LookAtV convention.
func deriveViewMatrix(v *ViewData) (mgl32.Mat4, error) {
	if v.Forward.Len() < crossEpsilon {
		return mgl32.Mat4{}, fmt.Errorf("%w: forward vector is zero-length", ErrDegenerateGeometry)
	}
	if v.Up.Len() < crossEpsilon {
		return mgl32.Mat4{}, fmt.Errorf("%w: up vector is zero-length", ErrDegenerateGeometry)
	}
	fo := v.Forward.Normalize()
	right := fo.Cross(v.Up.Normalize())
	if right.Len() < crossEpsilon {
		return mgl32.Mat4{}, fmt.Errorf("%w: forward and up vectors are parallel", ErrDegenerateGeometry)
	}
	right = right.Normalize()
	up := right.Cross(fo)
	pos := v.Position

	return mgl32.Mat4{
		right.X(), up.X(), -fo.X(), 0,
		right.Y(), up.Y(), -fo.Y(), 0,
		right.Z(), up.Z(), -fo.Z(), 0,
		-right.Dot(pos), -up.Dot(pos), fo.Dot(pos), 1,
	}, nil
}

// unproject maps a pixel coordinate plus a normalized clip-space depth through
// the inverse of projection * view, with explicit singularity detection and
// perspective divide.
func unproject(view, projection mgl32.Mat4, viewport common.Viewport, screenX, screenY, ndcZ float32) (mgl32.Vec3, error) {
	if viewport.Width == 0 || viewport.Height == 0 {
		return mgl32.Vec3{}, fmt.Errorf("%w: viewport %+v has zero extent", ErrInvalidConfiguration, viewport)
	}

	ndcX := 2.0*(screenX-float32(viewport.X))/float32(viewport.Width) - 1.0
	ndcY := 2.0*(screenY-float32(viewport.Y))/float32(viewport.Height) - 1.0

	full := projection.Mul4(view)
	if math32.Abs(full.Det()) < detEpsilon {
		return mgl32.Vec3{}, fmt.Errorf("%w: projection * view matrix is not invertible", ErrDegenerateGeometry)
	}

	mapped := full.Inv().Mul4x1(mgl32.Vec4{ndcX, ndcY, ndcZ, 1.0})
	w := mapped.W()
	if math32.Abs(w) < detEpsilon {
		return mgl32.Vec3{}, fmt.Errorf("%w: unprojected point has zero w component", ErrDegenerateGeometry)
	}
	return mapped.Vec3().Mul(1.0 / w), nil
}
