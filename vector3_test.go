package stdshapes

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(-4, 0.5, 2)

	assert.Equal(t, NewVector3(-3, 2.5, 5), a.Add(b))
	assert.Equal(t, NewVector3(5, 1.5, 1), a.Sub(b))
	assert.Equal(t, NewVector3(2, 4, 6), a.Mul(2))
	assert.Equal(t, NewVector3(0.5, 1, 1.5), a.Div(2))
	assert.Equal(t, 3.0, a.Dot(b))
	assert.Equal(t, NewVector3(0, 0, 1), NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0)))
	assert.Equal(t, 5.0, NewVector3(3, 4, 0).Len())
	assert.Equal(t, 5.0, NewVector3(3, 4, 0).DistanceTo(Vector3{}))
}

func TestVector3Normalize(t *testing.T) {
	n := NewVector3(2, -3, 6).Normalize()
	assert.InDelta(t, 1, n.Len(), 1e-15)
	assert.InDelta(t, 2.0/7, n.X, 1e-15)

	// zero has no direction
	z := Vector3{}.Normalize()
	assert.True(t, math.IsNaN(z.X))
}

func TestVector3MathglRoundTrip(t *testing.T) {
	v := NewVector3(1.5, -2, 0.25)
	assert.Equal(t, mgl64.Vec3{1.5, -2, 0.25}, v.Vec3())
	assert.Equal(t, v, FromVec3(v.Vec3()))

	a, b := NewVector3(1, 2, 3), NewVector3(-2, 7, 0.5)
	assert.Equal(t, a.Cross(b), FromVec3(a.Vec3().Cross(b.Vec3())))
}
