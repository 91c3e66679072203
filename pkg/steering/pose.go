// Package steering turns and advances actors toward a target position.
//
// World coordinates are y-up with +Z pointing out of the screen, so a
// positive rotation about +Z is counter-clockwise.
package steering

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// Pose is the position and orientation of an actor at a given tick.
type Pose struct {
	Position mgl64.Vec3 // Z holds the draw layer and never changes
	Rotation mgl64.Quat // unit rotation about +Z
}

// Profile holds the constant movement parameters of an actor.
type Profile struct {
	AngularSpeed float64 // radians per second
	LinearSpeed  float64 // units per second
}

// NewPose returns a pose at (x, y) on the given layer facing +Y.
func NewPose(x, y, layer float64) Pose {
	return Pose{
		Position: mgl64.Vec3{x, y, layer},
		Rotation: mgl64.QuatIdent(),
	}
}

// Forward returns the unit vector the actor is facing, in the XY plane.
func (p Pose) Forward() mgl64.Vec2 {
	return p.Rotation.Rotate(axisY).Vec2()
}

// Right returns the unit vector to the actor's right, in the XY plane.
func (p Pose) Right() mgl64.Vec2 {
	return p.Rotation.Rotate(axisX).Vec2()
}

// Heading is the rotation about +Z in radians, in (-π, π].
func (p Pose) Heading() float64 {
	f := p.Forward()
	return math.Atan2(-f.X(), f.Y())
}

// RotateZ returns the pose rotated by angle radians about +Z.
func (p Pose) RotateZ(angle float64) Pose {
	p.Rotation = mgl64.QuatRotate(angle, axisZ).Mul(p.Rotation).Normalize()
	return p
}

// XY drops the layer component of the position.
func (p Pose) XY() mgl64.Vec2 {
	return p.Position.Vec2()
}
