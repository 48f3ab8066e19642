package camera

import (
	"github.com/Carmen-Shannon/optic-go/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Motion controllers: stateless functions that mutate a supplied ViewData in
// place. None of them are time-normalized; callers scale speed or percent by
// elapsed time themselves when frame-rate independence is needed.

// SimpleFollow moves the camera linearly toward the target point by the given
// fraction of the remaining distance.
//
// Parameters:
//   - speed: the fraction of the remaining distance to cover this call
//   - target: the 3D world-space position to move toward
//   - view: the view data to mutate
func SimpleFollow(speed float32, target mgl32.Vec3, view *ViewData) {
	view.Position = common.Interpolate3D(view.Position, target, speed)
}

// SimpleFollow2D is SimpleFollow restricted to the X and Y axes, with the
// target's Z fixed at 0.
//
// Parameters:
//   - speed: the fraction of the remaining distance to cover this call
//   - target: the 2D world-space position to move toward
//   - view: the view data to mutate
func SimpleFollow2D(speed float32, target mgl32.Vec2, view *ViewData) {
	SimpleFollow(speed, mgl32.Vec3{target.X(), target.Y(), 0}, view)
}

// SimpleEasing places the camera between two fixed points according to an
// easing function: position = interpolate(start, target, fn(percent)).
//
// Parameters:
//   - percent: progress through the motion, expected (not clamped) in [0, 1]
//   - start: the starting point of the motion
//   - target: the final destination of the motion
//   - view: the view data to mutate
//   - fn: the easing function; nil means common.Linear
func SimpleEasing(percent float32, start, target mgl32.Vec3, view *ViewData, fn common.EasingFunction) {
	if fn == nil {
		fn = common.Linear
	}
	view.Position = common.Interpolate3D(start, target, fn(percent))
}

// SimpleEasing2D is SimpleEasing restricted to the X and Y axes, with Z fixed
// at 0.
//
// Parameters:
//   - percent: progress through the motion, expected (not clamped) in [0, 1]
//   - start: the starting point of the motion
//   - target: the final destination of the motion
//   - view: the view data to mutate
//   - fn: the easing function; nil means common.Linear
func SimpleEasing2D(percent float32, start, target mgl32.Vec2, view *ViewData, fn common.EasingFunction) {
	SimpleEasing(percent,
		mgl32.Vec3{start.X(), start.Y(), 0},
		mgl32.Vec3{target.X(), target.Y(), 0},
		view, fn)
}

// RotateAroundForward rolls the camera: rotates the up vector about the
// forward axis.
//
// Parameters:
//   - view: the view data to mutate
//   - angleDegrees: the roll angle in degrees
func RotateAroundForward(view *ViewData, angleDegrees float32) {
	view.Up = common.QuaternionRotation(view.Forward, view.Up, angleDegrees)
}

// RotateAroundUp yaws the camera: rotates the forward vector about the up
// axis.
//
// Parameters:
//   - view: the view data to mutate
//   - angleDegrees: the yaw angle in degrees
func RotateAroundUp(view *ViewData, angleDegrees float32) {
	view.Forward = common.QuaternionRotation(view.Up, view.Forward, angleDegrees)
}

// RotateAroundRight pitches the camera: rotates both the forward and up
// vectors about the camera's right axis. Both rotations use the same
// pre-rotation right vector; recomputing it between the two would skew the
// basis.
//
// Parameters:
//   - view: the view data to mutate
//   - angleDegrees: the pitch angle in degrees
func RotateAroundRight(view *ViewData, angleDegrees float32) {
	right := view.Forward.Cross(view.Up)
	view.Forward = common.QuaternionRotation(right, view.Forward, angleDegrees)
	view.Up = common.QuaternionRotation(right, view.Up, angleDegrees)
}

// Strafe translates the camera within its own view plane: direction X moves
// along the camera's right vector and direction Y along its up vector, in
// world units.
//
// Parameters:
//   - view: the view data to mutate
//   - direction: the (right, up) distances to move
func Strafe(view *ViewData, direction mgl32.Vec2) {
	right := view.Forward.Cross(view.Up)
	offset := right.Mul(direction.X()).Add(view.Up.Mul(direction.Y()))
	view.Position = view.Position.Add(offset)
}
