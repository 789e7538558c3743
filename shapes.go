package stdshapes

import (
	"math"
	"slices"
)

// Every generator in this file appends a flat triangle list to positions and
// returns the extended slice, the same way append does. Three consecutive
// entries form one triangle, wound counter-clockwise when seen from outside.
// The center argument is accepted for symmetry with the other shapes but is
// not applied: all solids are generated about the origin so that Subdivide can
// infer their radius. Use Translate (or Shape.Build) to move them.

// golden ratio
var phi = (1 + math.Sqrt(5)) / 2

// icosahedronFaces indexes the vertices returned by icosahedronVertices.
var icosahedronFaces = [20][3]int{
	{0, 8, 4},
	{0, 5, 10},
	{2, 4, 9},
	{2, 11, 5},

	{1, 6, 8},
	{1, 10, 7},
	{3, 9, 6},
	{3, 7, 11},

	{0, 10, 8},
	{1, 8, 10},
	{2, 9, 11},
	{3, 11, 9},

	{4, 2, 0},
	{5, 0, 2},
	{6, 1, 3},
	{7, 3, 1},

	{8, 6, 4},
	{9, 4, 6},
	{10, 5, 7},
	{11, 7, 5},
}

// dodecahedronFaces lists, for each icosahedron vertex, the five incident
// icosahedron faces in counter-clockwise order seen from outside.
var dodecahedronFaces = icosahedronDual()

func addTriangle(positions []Vector3, a, b, c Vector3) []Vector3 {
	return append(positions, a, b, c)
}

func icosahedronVertices(length float64) [12]Vector3 {
	s := math.Sqrt(1+phi*phi) / length
	return [12]Vector3{
		NewVector3(phi, 1, 0).Div(s),
		NewVector3(-phi, 1, 0).Div(s),
		NewVector3(phi, -1, 0).Div(s),
		NewVector3(-phi, -1, 0).Div(s),
		NewVector3(1, 0, phi).Div(s),
		NewVector3(1, 0, -phi).Div(s),
		NewVector3(-1, 0, phi).Div(s),
		NewVector3(-1, 0, -phi).Div(s),
		NewVector3(0, phi, 1).Div(s),
		NewVector3(0, -phi, 1).Div(s),
		NewVector3(0, phi, -1).Div(s),
		NewVector3(0, -phi, -1).Div(s),
	}
}

func icosahedronDual() [12][5]int {
	var rings [12][5]int
	for v := 0; v < 12; v++ {
		// faces around v, rotated so that v comes first
		type incident struct {
			face       int
			next, prev int
		}
		around := make([]incident, 0, 5)
		for i, f := range icosahedronFaces {
			for k := 0; k < 3; k++ {
				if f[k] == v {
					around = append(around, incident{face: i, next: f[(k+1)%3], prev: f[(k+2)%3]})
				}
			}
		}

		cur := around[0]
		rings[v][0] = cur.face
		for n := 1; n < 5; n++ {
			for _, cand := range around {
				if cand.next == cur.prev {
					cur = cand
					break
				}
			}
			rings[v][n] = cur.face
		}
	}
	return rings
}

// MakeIcosahedron appends the 20 faces (60 vertices) of a regular icosahedron
// whose vertices lie at distance length from the origin. length must be
// positive; it is not checked.
func MakeIcosahedron(center Vector3, length float64, positions []Vector3) []Vector3 {
	positions = slices.Grow(positions, 60)

	v := icosahedronVertices(length)
	for _, f := range icosahedronFaces {
		positions = addTriangle(positions, v[f[0]], v[f[1]], v[f[2]])
	}
	return positions
}

// Subdivide splits every triangle in positions into four, pushing the new
// edge midpoints back out onto the sphere. The input must be a closed solid
// centred on the origin with all vertices at the same distance from it; that
// distance is taken from positions[0]. Each original triangle is overwritten
// in place by its centre piece and the three corner pieces are appended, so
// the result is four times as long. A trailing partial triangle is ignored.
func Subdivide(positions []Vector3) []Vector3 {
	return subdivideFrom(positions, 0)
}

// subdivideFrom subdivides only the triangles at positions[start:].
func subdivideFrom(positions []Vector3, start int) []Vector3 {
	if len(positions) <= start {
		return positions
	}

	r := positions[start].Len()
	end := len(positions) - (len(positions)-start)%3
	positions = slices.Grow(positions, 3*(end-start))

	for i := start; i < end; i += 3 {
		a, b, c := positions[i], positions[i+1], positions[i+2]

		v1 := a.Add(b).Normalize().Mul(r)
		v2 := a.Add(c).Normalize().Mul(r)
		v3 := b.Add(c).Normalize().Mul(r)

		positions[i], positions[i+1], positions[i+2] = v1, v3, v2
		positions = addTriangle(positions, a, v1, v2)
		positions = addTriangle(positions, c, v2, v3)
		positions = addTriangle(positions, b, v3, v1)
	}
	return positions
}

// MakeSphere appends an icosphere of the given radius: an icosahedron
// subdivided tess times, 20*4^tess triangles in all. Only the vertices added
// by this call are subdivided; earlier contents of positions are untouched.
func MakeSphere(center Vector3, radius float64, tess int, positions []Vector3) []Vector3 {
	start := len(positions)
	positions = MakeIcosahedron(center, radius, positions)

	for i := 0; i < tess; i++ {
		positions = subdivideFrom(positions, start)
	}
	return positions
}

// MakeOctahedron appends 8 faces (24 vertices) with corners on the axes at
// distance length.
func MakeOctahedron(center Vector3, length float64, positions []Vector3) []Vector3 {
	positions = slices.Grow(positions, 24)

	v0 := NewVector3(length, 0, 0)
	v1 := NewVector3(-length, 0, 0)
	v2 := NewVector3(0, length, 0)
	v3 := NewVector3(0, -length, 0)
	v4 := NewVector3(0, 0, length)
	v5 := NewVector3(0, 0, -length)

	positions = addTriangle(positions, v4, v0, v2)
	positions = addTriangle(positions, v4, v2, v1)
	positions = addTriangle(positions, v4, v1, v3)
	positions = addTriangle(positions, v4, v3, v0)

	positions = addTriangle(positions, v5, v2, v0)
	positions = addTriangle(positions, v5, v1, v2)
	positions = addTriangle(positions, v5, v3, v1)
	positions = addTriangle(positions, v5, v0, v3)
	return positions
}

// MakeDodecahedron appends a regular dodecahedron built as the dual of the
// icosahedron. Each pentagon is fanned into 3 triangles, giving 36 triangles
// (108 vertices), every vertex at distance length.
func MakeDodecahedron(center Vector3, length float64, positions []Vector3) []Vector3 {
	positions = slices.Grow(positions, 108)

	ico := icosahedronVertices(1)
	var corners [20]Vector3
	for i, f := range icosahedronFaces {
		corners[i] = ico[f[0]].Add(ico[f[1]]).Add(ico[f[2]]).Normalize().Mul(length)
	}

	for _, ring := range dodecahedronFaces {
		for k := 1; k < 4; k++ {
			positions = addTriangle(positions, corners[ring[0]], corners[ring[k]], corners[ring[k+1]])
		}
	}
	return positions
}

// MakeTetrahedron appends 4 faces (12 vertices), corners at distance length.
func MakeTetrahedron(center Vector3, length float64, positions []Vector3) []Vector3 {
	positions = slices.Grow(positions, 12)

	s := length / math.Sqrt(3)
	v0 := NewVector3(s, s, s)
	v1 := NewVector3(-s, -s, s)
	v2 := NewVector3(-s, s, -s)
	v3 := NewVector3(s, -s, -s)

	positions = addTriangle(positions, v0, v2, v1)
	positions = addTriangle(positions, v0, v1, v3)
	positions = addTriangle(positions, v0, v3, v2)
	positions = addTriangle(positions, v1, v2, v3)
	return positions
}

// MakeHexahedron appends a cube as 12 triangles (36 vertices), corners at
// distance length.
func MakeHexahedron(center Vector3, length float64, positions []Vector3) []Vector3 {
	positions = slices.Grow(positions, 36)

	s := length / math.Sqrt(3)
	v := [8]Vector3{
		NewVector3(-s, -s, -s),
		NewVector3(s, -s, -s),
		NewVector3(s, s, -s),
		NewVector3(-s, s, -s),
		NewVector3(-s, -s, s),
		NewVector3(s, -s, s),
		NewVector3(s, s, s),
		NewVector3(-s, s, s),
	}

	quads := [6][4]int{
		{4, 5, 6, 7}, // z+
		{3, 2, 1, 0}, // z-
		{0, 1, 5, 4}, // y-
		{7, 6, 2, 3}, // y+
		{1, 2, 6, 5}, // x+
		{0, 4, 7, 3}, // x-
	}
	for _, q := range quads {
		positions = addTriangle(positions, v[q[0]], v[q[1]], v[q[2]])
		positions = addTriangle(positions, v[q[0]], v[q[2]], v[q[3]])
	}
	return positions
}
