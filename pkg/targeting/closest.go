// Package targeting selects weapon targets from a candidate set.
package targeting

import (
	"iter"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"go-swarm-shooter/pkg/steering"
)

// Candidate is an actor that may be selected as a target.
type Candidate[K comparable] struct {
	ID   K
	Pose steering.Pose
}

// FindClosest returns the candidate nearest to origin whose distance is
// strictly less than maxDistance. Among equidistant candidates the first
// one yielded by candidates wins. It reports false when nothing qualifies.
func FindClosest[K comparable](candidates iter.Seq[Candidate[K]], origin mgl64.Vec3, maxDistance float64) (Candidate[K], bool) {
	var (
		closest Candidate[K]
		found   bool
	)
	best := math.Inf(1)
	for c := range candidates {
		distance := origin.Sub(c.Pose.Position).Len()
		if distance < best && distance < maxDistance {
			best = distance
			closest = c
			found = true
		}
	}
	return closest, found
}

// FindClosestIn is FindClosest over a slice.
func FindClosestIn[K comparable](candidates []Candidate[K], origin mgl64.Vec3, maxDistance float64) (Candidate[K], bool) {
	return FindClosest(slices.Values(candidates), origin, maxDistance)
}
