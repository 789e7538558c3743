package stdshapes

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = Vector3{}

func TestMakeIcosahedron(t *testing.T) {
	for _, length := range []float64{0.001, 0.5, 1, 2, 137.25} {
		t.Run(fmt.Sprint(length), func(t *testing.T) {
			positions := MakeIcosahedron(origin, length, nil)
			require.Len(t, positions, 60)
			assertOnSphere(t, positions, origin, length)
			assertOutward(t, positions, origin)
		})
	}
}

func TestMakeIcosahedronIsRegular(t *testing.T) {
	positions := MakeIcosahedron(origin, 1, nil)
	edge := positions[0].DistanceTo(positions[1])
	for _, tri := range Triangles(positions) {
		assert.InDelta(t, edge, tri.A.DistanceTo(tri.B), 1e-12)
		assert.InDelta(t, edge, tri.B.DistanceTo(tri.C), 1e-12)
		assert.InDelta(t, edge, tri.C.DistanceTo(tri.A), 1e-12)
	}
	// circumradius of a unit-edge icosahedron is sin(2π/5)
	assert.InDelta(t, 1/math.Sin(2*math.Pi/5), edge, 1e-12)
}

func TestMakeIcosahedronIgnoresCenter(t *testing.T) {
	assert.Equal(t,
		MakeIcosahedron(origin, 3, nil),
		MakeIcosahedron(NewVector3(10, -4, 2), 3, nil))
}

func TestMakeIcosahedronAppends(t *testing.T) {
	existing := []Vector3{NewVector3(1, 2, 3), NewVector3(4, 5, 6), NewVector3(7, 8, 9)}
	positions := MakeIcosahedron(origin, 1, append([]Vector3(nil), existing...))
	require.Len(t, positions, 63)
	assert.Equal(t, existing, positions[:3])
	assert.Equal(t, MakeIcosahedron(origin, 1, nil), positions[3:])
}

func TestSubdivide(t *testing.T) {
	for pass := 0; pass <= 4; pass++ {
		t.Run(fmt.Sprintf("passes=%d", pass), func(t *testing.T) {
			positions := MakeIcosahedron(origin, 2.5, nil)
			for i := 0; i < pass; i++ {
				positions = Subdivide(positions)
			}
			require.Len(t, positions, 60*int(math.Pow(4, float64(pass))))
			assertOnSphere(t, positions, origin, 2.5)
			assertOutward(t, positions, origin)
		})
	}
}

func TestSubdivideLayout(t *testing.T) {
	a, b, c := NewVector3(1, 0, 0), NewVector3(0, 1, 0), NewVector3(0, 0, 1)
	positions := Subdivide([]Vector3{a, b, c})
	require.Len(t, positions, 12)

	v1 := a.Add(b).Normalize()
	v2 := a.Add(c).Normalize()
	v3 := b.Add(c).Normalize()

	// centre piece overwrites the original slots, corners are appended
	assert.Equal(t, []Vector3{
		v1, v3, v2,
		a, v1, v2,
		c, v2, v3,
		b, v3, v1,
	}, positions)
}

func TestSubdivideTwiceIsSixteenfold(t *testing.T) {
	positions := MakeOctahedron(origin, 1, nil)
	positions = Subdivide(Subdivide(positions))
	assert.Len(t, positions, 24*16)
	assertOnSphere(t, positions, origin, 1)
	assertOutward(t, positions, origin)
}

func TestSubdivideEmpty(t *testing.T) {
	assert.Empty(t, Subdivide(nil))
	assert.Empty(t, Subdivide([]Vector3{}))
}

func TestSubdivideIgnoresPartialTriangle(t *testing.T) {
	a, b, c := NewVector3(1, 0, 0), NewVector3(0, 1, 0), NewVector3(0, 0, 1)
	extra := NewVector3(-1, 0, 0)
	positions := Subdivide([]Vector3{a, b, c, extra})
	require.Len(t, positions, 13)
	assert.Equal(t, extra, positions[3])
}

func TestMakeSphere(t *testing.T) {
	tests := []struct {
		radius float64
		tess   int
	}{
		{1, 0},
		{1, 1},
		{1, 2},
		{3.5, 3},
		{0.25, 4},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("r=%v/tess=%d", tc.radius, tc.tess), func(t *testing.T) {
			positions := MakeSphere(origin, tc.radius, tc.tess, nil)
			require.Len(t, positions, 3*20*(1<<(2*tc.tess)))
			assertOnSphere(t, positions, origin, tc.radius)
			assertOutward(t, positions, origin)
		})
	}
}

func TestMakeSphereUnitTess2(t *testing.T) {
	positions := MakeSphere(origin, 1, 2, nil)
	assert.Len(t, Triangles(positions), 320)
	assert.Len(t, positions, 960)
	for _, p := range positions {
		assert.InDelta(t, 1, p.Len(), 1e-12)
	}
}

func TestMakeSphereTess0IsIcosahedron(t *testing.T) {
	assert.Equal(t, MakeIcosahedron(origin, 2, nil), MakeSphere(origin, 2, 0, nil))
}

func TestMakeSphereLeavesExistingContents(t *testing.T) {
	positions := MakeOctahedron(origin, 5, nil)
	before := append([]Vector3(nil), positions...)

	positions = MakeSphere(origin, 1, 2, positions)
	require.Len(t, positions, 24+960)
	assert.Equal(t, before, positions[:24])
	assertOnSphere(t, positions[24:], origin, 1)
	assert.Equal(t, MakeSphere(origin, 1, 2, nil), positions[24:])
}

func TestMakeOctahedron(t *testing.T) {
	positions := MakeOctahedron(origin, 1, nil)
	require.Len(t, positions, 24)

	axes := []Vector3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	for _, p := range positions {
		assert.Contains(t, axes, p)
	}
	assertOutward(t, positions, origin)

	scaled := MakeOctahedron(origin, 4, nil)
	assertOnSphere(t, scaled, origin, 4)
}

func TestMakeDodecahedron(t *testing.T) {
	positions := MakeDodecahedron(origin, 2, nil)
	require.Len(t, positions, 108)
	assertOnSphere(t, positions, origin, 2)
	assertOutward(t, positions, origin)

	// 20 distinct corners
	assert.Len(t, NewMeshFromTriangles(positions).Vertices, 20)

	// each pentagon's fan lies in one plane
	tris := Triangles(positions)
	for f := 0; f < 12; f++ {
		n := tris[3*f].Normal()
		for k := 1; k < 3; k++ {
			assert.InDelta(t, 1, n.Dot(tris[3*f+k].Normal()), 1e-9, "pentagon %d", f)
		}
	}
}

func TestMakeDodecahedronIsRegular(t *testing.T) {
	m := NewMeshFromTriangles(MakeDodecahedron(origin, 1, nil))
	// pentagon edges are the fan's outer edges: (0,1) of the first triangle,
	// (1,2) of all three, (2,0) of the last
	var edges []float64
	for f := 0; f < 12; f++ {
		for k := 0; k < 3; k++ {
			tri := m.Triangle(3*f + k)
			edges = append(edges, tri.B.DistanceTo(tri.C))
			if k == 0 {
				edges = append(edges, tri.A.DistanceTo(tri.B))
			}
			if k == 2 {
				edges = append(edges, tri.C.DistanceTo(tri.A))
			}
		}
	}
	require.Len(t, edges, 60)
	for _, e := range edges {
		assert.InDelta(t, edges[0], e, 1e-12)
	}
	// circumradius of a unit-edge dodecahedron is √3·φ/2
	assert.InDelta(t, 2/(math.Sqrt(3)*phi), edges[0], 1e-12)
}

func TestMakeTetrahedronAndHexahedron(t *testing.T) {
	tests := []struct {
		name  string
		make  func(Vector3, float64, []Vector3) []Vector3
		count int
	}{
		{"tetrahedron", MakeTetrahedron, 12},
		{"hexahedron", MakeHexahedron, 36},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			positions := tc.make(origin, 3, nil)
			require.Len(t, positions, tc.count)
			assertOnSphere(t, positions, origin, 3)
			assertOutward(t, positions, origin)

			// both are valid subdivision bases
			positions = Subdivide(positions)
			assert.Len(t, positions, 4*tc.count)
			assertOnSphere(t, positions, origin, 3)
		})
	}
}
