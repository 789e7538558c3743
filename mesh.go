package stdshapes

// Mesh is an indexed form of a flat triangle list in which vertices with
// identical positions are shared.
type Mesh struct {
	Vertices   []Vector3
	Faces      [][3]int
	pointIndex map[Vector3]int
}

func NewMesh() *Mesh {
	return &Mesh{
		Vertices:   make([]Vector3, 0, 64),
		pointIndex: make(map[Vector3]int),
	}
}

// NewMeshFromTriangles builds an indexed mesh from positions, keeping the
// triangle order and winding.
func NewMeshFromTriangles(positions []Vector3) *Mesh {
	m := NewMesh()
	for _, t := range Triangles(positions) {
		m.AddTriangle(t)
	}
	return m
}

// AddPoint returns the index of p, adding it if it is not already present.
// Matching is exact; -0 and +0 compare equal.
func (m *Mesh) AddPoint(p Vector3) int {
	if index, found := m.pointIndex[p]; found {
		return index
	}

	m.Vertices = append(m.Vertices, p)
	newIndex := len(m.Vertices) - 1
	m.pointIndex[p] = newIndex
	return newIndex
}

func (m *Mesh) AddTriangle(t Triangle) [3]int {
	face := [3]int{m.AddPoint(t.A), m.AddPoint(t.B), m.AddPoint(t.C)}
	m.Faces = append(m.Faces, face)
	return face
}

// Triangle returns face i with its vertex positions resolved.
func (m *Mesh) Triangle(i int) Triangle {
	f := m.Faces[i]
	return Triangle{A: m.Vertices[f[0]], B: m.Vertices[f[1]], C: m.Vertices[f[2]]}
}

// Positions expands the mesh back into a flat triangle list.
func (m *Mesh) Positions() []Vector3 {
	positions := make([]Vector3, 0, 3*len(m.Faces))
	for i := range m.Faces {
		t := m.Triangle(i)
		positions = addTriangle(positions, t.A, t.B, t.C)
	}
	return positions
}

