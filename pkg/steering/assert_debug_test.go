//go:build debug

package steering

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSteerPanicsOnBadInput(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		dt      float64
		want    string
	}{
		{"negative angular speed", Profile{AngularSpeed: -1, LinearSpeed: 1}, dt, "negative angular speed"},
		{"negative linear speed", Profile{AngularSpeed: 1, LinearSpeed: -1}, dt, "negative linear speed"},
		{"negative dt", Profile{AngularSpeed: 1, LinearSpeed: 1}, -dt, "negative dt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("no panic")
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, tt.want) {
					t.Errorf("panic %v, want it to mention %q", r, tt.want)
				}
			}()
			Steer(NewPose(0, 0, 0), tt.profile, mgl64.Vec2{10, 10}, tt.dt)
		})
	}
}

func TestSteerAcceptsZeroSpeedsAndDt(t *testing.T) {
	pose := NewPose(1, 2, 0)
	if got := Steer(pose, Profile{}, mgl64.Vec2{10, 10}, 0); got != pose {
		t.Errorf("pose changed: %v", got)
	}
}
