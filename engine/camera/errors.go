package camera

import "errors"

// Error kinds surfaced by the camera system. All failures are local
// precondition violations reported synchronously to the caller; nothing is
// retried or logged-and-ignored, because a corrupted camera state would
// silently propagate visual corruption into every subsequent frame.
var (
	// ErrInvalidState indicates a violated state-management invariant, such as
	// popping the protected base entry of a camera stack or scoped-activating
	// a camera when there is no previously active camera to restore.
	ErrInvalidState = errors.New("invalid camera state")

	// ErrDegenerateGeometry indicates camera geometry that cannot produce a
	// usable matrix: parallel forward and up vectors, or a non-invertible
	// projection * view matrix during unprojection.
	ErrDegenerateGeometry = errors.New("degenerate camera geometry")

	// ErrInvalidConfiguration indicates projection or view data outside its
	// legal range: near >= far, a non-positive aspect ratio, a field of view
	// outside (0, 180), or a zoom below the minimum epsilon.
	ErrInvalidConfiguration = errors.New("invalid camera configuration")
)
