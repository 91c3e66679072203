package steering

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// poseFacing returns a pose at (x, y) rotated by heading radians from +Y.
func poseFacing(x, y, layer, heading float64) Pose {
	return NewPose(x, y, layer).RotateZ(heading)
}

func TestPoseAxes(t *testing.T) {
	tests := []struct {
		heading     float64
		wantForward mgl64.Vec2
		wantRight   mgl64.Vec2
	}{
		{0, mgl64.Vec2{0, 1}, mgl64.Vec2{1, 0}},
		{math.Pi / 2, mgl64.Vec2{-1, 0}, mgl64.Vec2{0, 1}},
		{-math.Pi / 2, mgl64.Vec2{1, 0}, mgl64.Vec2{0, -1}},
		{math.Pi, mgl64.Vec2{0, -1}, mgl64.Vec2{-1, 0}},
	}

	for _, tt := range tests {
		p := poseFacing(0, 0, 0, tt.heading)
		if got := p.Forward(); got.Sub(tt.wantForward).Len() > 1e-12 {
			t.Errorf("heading %v: forward %v, want %v", tt.heading, got, tt.wantForward)
		}
		if got := p.Right(); got.Sub(tt.wantRight).Len() > 1e-12 {
			t.Errorf("heading %v: right %v, want %v", tt.heading, got, tt.wantRight)
		}
	}
}

func TestPoseHeading(t *testing.T) {
	for _, h := range []float64{0, 0.3, -1.2, 3, -3} {
		p := poseFacing(1, 2, 0, h)
		if got := p.Heading(); math.Abs(got-h) > 1e-12 {
			t.Errorf("heading %v, want %v", got, h)
		}
	}

	p := poseFacing(0, 0, 0, 3).RotateZ(1)
	if got, want := p.Heading(), 4-2*math.Pi; math.Abs(got-want) > 1e-12 {
		t.Errorf("wrapped heading %v, want %v", got, want)
	}
}

func TestNewPoseLayer(t *testing.T) {
	p := NewPose(3, 4, 7)
	if p.Position != (mgl64.Vec3{3, 4, 7}) {
		t.Errorf("position %v", p.Position)
	}
	if p.XY() != (mgl64.Vec2{3, 4}) {
		t.Errorf("xy %v", p.XY())
	}
}
