package steering

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// FacingEpsilon is how close forward·to_target must be to 1 for the
	// actor to count as facing its target.
	FacingEpsilon = 1e-9

	// MinDistance below which the direction to the target is undefined.
	MinDistance = 1e-9
)

// TurnAngle returns the signed rotation an actor should apply this tick to
// turn toward target. The magnitude never exceeds the remaining angle to
// the target, so repeated calls converge without overshoot.
func TurnAngle(pose Pose, profile Profile, target mgl64.Vec2, dt float64) float64 {
	toTarget := target.Sub(pose.XY())
	dist := toTarget.Len()
	if dist < MinDistance {
		return 0
	}
	toTarget = toTarget.Mul(1 / dist)

	forwardDot := pose.Forward().Dot(toTarget)
	if math.Abs(forwardDot-1) < FacingEpsilon {
		return 0
	}

	// A target on the right (or straight behind) needs a clockwise turn,
	// which is negative about +Z.
	sign := -1.0
	if pose.Right().Dot(toTarget) < 0 {
		sign = 1.0
	}

	maxAngle := math.Acos(mgl64.Clamp(forwardDot, -1, 1))
	return sign * math.Min(profile.AngularSpeed*dt, maxAngle)
}

// Steer turns the actor toward target and advances it along the forward
// vector it had at the start of the tick.
func Steer(pose Pose, profile Profile, target mgl64.Vec2, dt float64) Pose {
	assertf(profile.AngularSpeed >= 0, "negative angular speed %v", profile.AngularSpeed)
	assertf(profile.LinearSpeed >= 0, "negative linear speed %v", profile.LinearSpeed)
	assertf(dt >= 0, "negative dt %v", dt)

	forward := pose.Forward()
	if angle := TurnAngle(pose, profile, target, dt); angle != 0 {
		pose = pose.RotateZ(angle)
	}

	step := forward.Mul(profile.LinearSpeed * dt)
	pose.Position = pose.Position.Add(step.Vec3(0))
	return pose
}
