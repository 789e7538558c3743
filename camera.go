package stdshapes

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera orbits a target point and projects triangles onto a screen. It is
// used for previewing generated shapes.
type Camera struct {
	Target   Vector3
	Distance float64
	Yaw      float64 // around +Y, radians
	Pitch    float64 // above the XZ plane, radians
	FovY     float64 // radians
	Near     float64
	Far      float64
}

const maxPitch = math.Pi/2 - 0.01

func NewCamera(target Vector3, distance float64) *Camera {
	return &Camera{
		Target:   target,
		Distance: distance,
		FovY:     mgl64.DegToRad(45),
		Near:     0.1,
		Far:      1000,
	}
}

// Eye returns the camera position.
func (c *Camera) Eye() Vector3 {
	cp := math.Cos(c.Pitch)
	dir := NewVector3(cp*math.Sin(c.Yaw), math.Sin(c.Pitch), cp*math.Cos(c.Yaw))
	return c.Target.Add(dir.Mul(c.Distance))
}

// Orbit turns the camera around its target. Pitch is kept short of the poles
// so the view never flips.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw = math.Mod(c.Yaw+dYaw, 2*math.Pi)
	c.Pitch = mgl64.Clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

func (c *Camera) Zoom(factor float64) {
	c.Distance = mgl64.Clamp(c.Distance*factor, c.Near*2, c.Far/2)
}

func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye().Vec3(), c.Target.Vec3(), mgl64.Vec3{0, 1, 0})
}

func (c *Camera) ViewProjection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(c.FovY, aspect, c.Near, c.Far).Mul4(c.ViewMatrix())
}

// ProjectedTriangle is a front-facing triangle mapped to screen pixels.
type ProjectedTriangle struct {
	Triangle        // world space
	X, Y     [3]float64
	Depth    float64 // distance from the eye to the midpoint
}

// Project maps world positions to screen coordinates, dropping triangles that
// face away from the eye or have a corner nearer than the near plane. The result is ordered farthest
// first, ready for painting.
func (c *Camera) Project(positions []Vector3, width, height float64) []ProjectedTriangle {
	eye := c.Eye()
	vp := c.ViewProjection(width / height)

	out := make([]ProjectedTriangle, 0, len(positions)/3)
triangles:
	for _, t := range Triangles(positions) {
		if t.FacesAwayFrom(eye) {
			continue
		}

		pt := ProjectedTriangle{Triangle: t, Depth: t.MidPoint().DistanceTo(eye)}
		for i, p := range [3]Vector3{t.A, t.B, t.C} {
			clip := vp.Mul4x1(p.Vec3().Vec4(1))
			if clip.W() <= 0 || clip.Z() < -clip.W() {
				continue triangles
			}
			pt.X[i] = (clip.X()/clip.W() + 1) / 2 * width
			pt.Y[i] = (1 - clip.Y()/clip.W()) / 2 * height
		}
		out = append(out, pt)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth > out[j].Depth
	})
	return out
}
