package stdshapes

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// ringBasis returns two unit vectors spanning the plane perpendicular to
// axis, ordered so that u x w points along axis.
func ringBasis(axis Vector3) (u, w Vector3) {
	// Rotate from whichever of +Z and -Z is nearer; QuatBetweenVectors guesses
	// an approximate axis for nearly opposite vectors.
	from, u0, w0 := mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}
	if axis.Z < 0 {
		from, w0 = mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, -1, 0}
	}
	q := mgl64.QuatBetweenVectors(from, axis.Vec3())
	return FromVec3(q.Rotate(u0)).Normalize(), FromVec3(q.Rotate(w0)).Normalize()
}

// ring returns tess points on the circle of the given radius about center,
// counter-clockwise when seen from the tip of u x w.
func ring(center, u, w Vector3, radius float64, tess int) []Vector3 {
	pts := make([]Vector3, tess)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(tess)
		pts[i] = center.Add(u.Mul(math.Cos(theta) * radius)).Add(w.Mul(math.Sin(theta) * radius))
	}
	return pts
}

// MakeCone appends a truncated cone running from center1 (radius1) to center2
// (radius2), with tess segments around the axis. A zero radius turns that end
// into an apex. Unless opened is set, each end with a non-zero radius is
// closed by a cap. Nothing is emitted when tess < 3 or the two centers
// coincide.
func MakeCone(center1 Vector3, radius1 float64, center2 Vector3, radius2 float64,
	tess int, positions []Vector3, opened bool) []Vector3 {
	axis := center2.Sub(center1)
	if tess < 3 || axis.IsZero() {
		return positions
	}
	positions = slices.Grow(positions, 12*tess)

	u, w := ringBasis(axis)
	bottom := ring(center1, u, w, radius1, tess)
	top := ring(center2, u, w, radius2, tess)

	for i := 0; i < tess; i++ {
		j := (i + 1) % tess
		if radius1 != 0 {
			positions = addTriangle(positions, bottom[i], bottom[j], top[j])
		}
		if radius2 != 0 {
			positions = addTriangle(positions, bottom[i], top[j], top[i])
		}
	}

	if opened {
		return positions
	}
	if radius1 != 0 {
		for i := 0; i < tess; i++ {
			positions = addTriangle(positions, center1, bottom[(i+1)%tess], bottom[i])
		}
	}
	if radius2 != 0 {
		for i := 0; i < tess; i++ {
			positions = addTriangle(positions, center2, top[i], top[(i+1)%tess])
		}
	}
	return positions
}

// MakeCircle appends a filled disc of tess triangles around center, lying in
// the plane perpendicular to normal and wound to face along it. Nothing is
// emitted when tess < 3 or normal is zero.
func MakeCircle(center, normal Vector3, radius float64, tess int, positions []Vector3) []Vector3 {
	if tess < 3 || normal.IsZero() {
		return positions
	}
	positions = slices.Grow(positions, 3*tess)

	u, w := ringBasis(normal)
	rim := ring(center, u, w, radius, tess)
	for i := range rim {
		positions = addTriangle(positions, center, rim[i], rim[(i+1)%tess])
	}
	return positions
}
