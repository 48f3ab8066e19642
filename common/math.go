package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// EasingFunction remaps an interpolation parameter, normally in [0, 1], to
// shape the speed of a camera motion. The input is not clamped.
type EasingFunction func(t float32) float32

// Linear is the identity easing function. It is the default easing used by
// the camera motion controllers.
//
// Parameters:
//   - t: interpolation parameter
//
// Returns:
//   - float32: t unchanged
func Linear(t float32) float32 {
	return t
}

// Interpolate3D linearly interpolates between two points per axis:
// start + t*(end - start). The parameter t is not clamped; values outside
// [0, 1] extrapolate past the endpoints.
//
// Parameters:
//   - start: the point returned at t = 0
//   - end: the point returned at t = 1
//   - t: interpolation parameter
//
// Returns:
//   - mgl32.Vec3: the interpolated point
func Interpolate3D(start, end mgl32.Vec3, t float32) mgl32.Vec3 {
	return start.Add(end.Sub(start).Mul(t))
}

// QuaternionRotation rotates vector about axis by angleDegrees.
//
// The angle is negated before building the half-angle quaternion, so positive
// angles rotate in the opposite direction of the naive right-handed axis-angle
// formula. The rotate-around-forward/up/right camera controllers are calibrated
// to this convention; do not "fix" the sign.
//
// The axis is not normalized here. A non-unit axis yields a non-unit quaternion
// and the rotated vector comes back scaled and distorted; callers that need
// magnitude preservation must pass a unit axis.
//
// Parameters:
//   - axis: the rotation axis (should be unit length)
//   - vector: the vector to rotate
//   - angleDegrees: the rotation angle in degrees
//
// Returns:
//   - mgl32.Vec3: the rotated vector
func QuaternionRotation(axis, vector mgl32.Vec3, angleDegrees float32) mgl32.Vec3 {
	q := mgl32.QuatRotate(mgl32.DegToRad(-angleDegrees), axis)
	return q.Rotate(vector)
}
