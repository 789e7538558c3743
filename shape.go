package stdshapes

import (
	"fmt"
	"math"
	"strings"
)

type Kind int

const (
	KindTetrahedron Kind = iota
	KindHexahedron
	KindOctahedron
	KindIcosahedron
	KindDodecahedron
	KindSphere
	KindCone
	KindCircle
)

// MaxTessellation bounds sphere subdivision in Shape.Build; level 8 is
// already 1.3M triangles.
const MaxTessellation = 8

var kindNames = [...]string{
	KindTetrahedron:  "tetrahedron",
	KindHexahedron:   "hexahedron",
	KindOctahedron:   "octahedron",
	KindIcosahedron:  "icosahedron",
	KindDodecahedron: "dodecahedron",
	KindSphere:       "sphere",
	KindCone:         "cone",
	KindCircle:       "circle",
}

// Kinds lists every supported kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts a kind name, case-insensitively. "cube" is an alias for
// hexahedron.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "cube" {
		return KindHexahedron, nil
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// solid reports whether the kind is generated about the origin and needs
// translating to its center afterwards.
func (k Kind) solid() bool {
	switch k {
	case KindTetrahedron, KindHexahedron, KindOctahedron, KindIcosahedron, KindDodecahedron, KindSphere:
		return true
	}
	return false
}

// Shape describes one primitive together with its parameters. Which fields
// matter depends on Kind:
//
//	solids, sphere: Center, Radius (circumradius), Tess (sphere only)
//	cone:           Center, Radius, Center2, Radius2, Tess, Opened
//	circle:         Center, Normal, Radius, Tess
type Shape struct {
	Kind    Kind
	Center  Vector3
	Radius  float64
	Tess    int
	Center2 Vector3
	Radius2 float64
	Opened  bool
	Normal  Vector3
}

func validLength(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func finite(v Vector3) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// validDirection reports whether v can be normalized. Tiny vectors whose
// length underflows to zero are rejected along with non-finite ones.
func validDirection(v Vector3) bool {
	return validLength(v.Len())
}

// Validate checks the parameters Build relies on.
func (s Shape) Validate() error {
	if s.Kind < 0 || int(s.Kind) >= len(kindNames) {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(s.Kind))
	}
	if s.Tess < 0 {
		return fmt.Errorf("%s: %w: %d is negative", s.Kind, ErrInvalidTessellation, s.Tess)
	}
	if !finite(s.Center) {
		return fmt.Errorf("%s: %w: center %v", s.Kind, ErrInvalidLength, s.Center)
	}

	switch s.Kind {
	case KindCone:
		if s.Radius < 0 || s.Radius2 < 0 || math.IsNaN(s.Radius) || math.IsNaN(s.Radius2) ||
			math.IsInf(s.Radius, 0) || math.IsInf(s.Radius2, 0) {
			return fmt.Errorf("%s: %w: radii %v and %v", s.Kind, ErrInvalidLength, s.Radius, s.Radius2)
		}
		if s.Radius == 0 && s.Radius2 == 0 {
			return fmt.Errorf("%s: %w: both radii are zero", s.Kind, ErrDegenerate)
		}
		if !finite(s.Center2) {
			return fmt.Errorf("%s: %w: center2 %v", s.Kind, ErrInvalidLength, s.Center2)
		}
		if !validDirection(s.Center2.Sub(s.Center)) {
			return fmt.Errorf("%s: %w: ends coincide or are too far apart", s.Kind, ErrDegenerate)
		}
		if s.Tess < 3 {
			return fmt.Errorf("%s: %w: need at least 3 segments, got %d", s.Kind, ErrInvalidTessellation, s.Tess)
		}
		return nil
	case KindCircle:
		if !validDirection(s.Normal) {
			return fmt.Errorf("%s: %w: normal %v has no usable length", s.Kind, ErrDegenerate, s.Normal)
		}
		if s.Tess < 3 {
			return fmt.Errorf("%s: %w: need at least 3 segments, got %d", s.Kind, ErrInvalidTessellation, s.Tess)
		}
	case KindSphere:
		if s.Tess > MaxTessellation {
			return fmt.Errorf("%s: %w: %d exceeds %d", s.Kind, ErrInvalidTessellation, s.Tess, MaxTessellation)
		}
	}

	if !validLength(s.Radius) {
		return fmt.Errorf("%s: %w: %v", s.Kind, ErrInvalidLength, s.Radius)
	}
	return nil
}

// Build validates s and appends its triangles to positions. Solids are
// generated about the origin and then moved to Center; on error positions is
// returned unchanged.
func (s Shape) Build(positions []Vector3) ([]Vector3, error) {
	if err := s.Validate(); err != nil {
		return positions, err
	}

	start := len(positions)
	switch s.Kind {
	case KindTetrahedron:
		positions = MakeTetrahedron(s.Center, s.Radius, positions)
	case KindHexahedron:
		positions = MakeHexahedron(s.Center, s.Radius, positions)
	case KindOctahedron:
		positions = MakeOctahedron(s.Center, s.Radius, positions)
	case KindIcosahedron:
		positions = MakeIcosahedron(s.Center, s.Radius, positions)
	case KindDodecahedron:
		positions = MakeDodecahedron(s.Center, s.Radius, positions)
	case KindSphere:
		positions = MakeSphere(s.Center, s.Radius, s.Tess, positions)
	case KindCone:
		positions = MakeCone(s.Center, s.Radius, s.Center2, s.Radius2, s.Tess, positions, s.Opened)
	case KindCircle:
		positions = MakeCircle(s.Center, s.Normal, s.Radius, s.Tess, positions)
	}

	if s.Kind.solid() && !s.Center.IsZero() {
		Translate(positions[start:], s.Center)
	}
	return positions, nil
}

// TriangleCount predicts how many triangles Build appends for a valid s.
func (s Shape) TriangleCount() int {
	switch s.Kind {
	case KindTetrahedron:
		return 4
	case KindHexahedron:
		return 12
	case KindOctahedron:
		return 8
	case KindIcosahedron:
		return 20
	case KindDodecahedron:
		return 36
	case KindSphere:
		return 20 << (2 * s.Tess)
	case KindCone:
		n := 0
		for _, r := range []float64{s.Radius, s.Radius2} {
			if r != 0 {
				n += s.Tess
				if !s.Opened {
					n += s.Tess
				}
			}
		}
		return n
	case KindCircle:
		return s.Tess
	}
	return 0
}
