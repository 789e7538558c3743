package stdshapes

// Triangle is one face of a flat triangle list.
type Triangle struct {
	A, B, C Vector3
}

// Triangles views positions as a list of triangles. Trailing entries that do
// not make up a full triangle are dropped.
func Triangles(positions []Vector3) []Triangle {
	tris := make([]Triangle, 0, len(positions)/3)
	for i := 0; i+2 < len(positions); i += 3 {
		tris = append(tris, Triangle{A: positions[i], B: positions[i+1], C: positions[i+2]})
	}
	return tris
}

// CrossNormal is (B-A) x (C-A), not normalized. Its length is twice the area.
func (t Triangle) CrossNormal() Vector3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// Normal returns the unit normal following the right-hand rule. A degenerate
// triangle gets (0, 0, 1).
func (t Triangle) Normal() Vector3 {
	n := t.CrossNormal()
	if n.IsZero() {
		return NewVector3(0, 0, 1)
	}
	return n.Normalize()
}

func (t Triangle) Area() float64 {
	return t.CrossNormal().Len() / 2
}

// get midpoint of the face
func (t Triangle) MidPoint() Vector3 {
	return t.A.Add(t.B).Add(t.C).Div(3)
}

// FacesAwayFrom reports whether the triangle's front side points away from p,
// i.e. p lies behind the plane of the triangle.
func (t Triangle) FacesAwayFrom(p Vector3) bool {
	return t.CrossNormal().Dot(t.MidPoint().Sub(p)) > 0
}
