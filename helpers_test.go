package stdshapes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const float64EqualityThreshold = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold*math.Max(1, math.Abs(b))
}

// assertOnSphere checks every vertex is radius away from center.
func assertOnSphere(t *testing.T, positions []Vector3, center Vector3, radius float64) {
	t.Helper()
	for i, p := range positions {
		if d := p.DistanceTo(center); !almostEqual(d, radius) {
			t.Fatalf("vertex %d %v is %v from %v, want %v", i, p, d, center, radius)
		}
	}
}

// assertOutward checks that every triangle's front faces away from inside,
// a point strictly inside the (convex) shape.
func assertOutward(t *testing.T, positions []Vector3, inside Vector3) {
	t.Helper()
	assert.Zero(t, len(positions)%3, "not a whole number of triangles")
	for i, tri := range Triangles(positions) {
		if tri.Area() < 1e-12 {
			t.Fatalf("triangle %d is degenerate: %+v", i, tri)
		}
		if !tri.FacesAwayFrom(inside) {
			t.Fatalf("triangle %d faces inward: %+v", i, tri)
		}
	}
}
