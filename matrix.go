package stdshapes

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Translate moves every vertex in positions by offset, in place.
func Translate(positions []Vector3, offset Vector3) {
	for i := range positions {
		positions[i] = positions[i].Add(offset)
	}
}

// Transform applies m to every vertex in positions, in place. m is treated as
// an affine transform of points (w = 1). A transform with a negative
// determinant mirrors the geometry and so flips the winding of every triangle.
func Transform(positions []Vector3, m mgl64.Mat4) {
	for i := range positions {
		positions[i] = FromVec3(mgl64.TransformCoordinate(positions[i].Vec3(), m))
	}
}

// ScaleAndTranslate is a convenience for the common placement transform:
// scale about the origin, then move to position.
func ScaleAndTranslate(scale float64, position Vector3) mgl64.Mat4 {
	return mgl64.Translate3D(position.X, position.Y, position.Z).Mul4(mgl64.Scale3D(scale, scale, scale))
}
