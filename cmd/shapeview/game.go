package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/stdshapes"
)

const (
	screenWidth  = 800
	screenHeight = 600

	maxViewerSphereTess = 5
	maxViewerSegments   = 96
)

var (
	baseColor    = color.RGBA{R: 220, G: 60, B: 40, A: 255}
	outlineColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	lightDir     = stdshapes.NewVector3(0.5, 1, 0.75).Normalize()
)

const ambient = 0.25

var kindKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8,
}

type Game struct {
	shape     stdshapes.Shape
	positions []stdshapes.Vector3
	camera    *stdshapes.Camera

	spin         bool
	outlines     bool
	lastX, lastY int
	dragging     bool
}

// presetShape gives a viewable default for each kind.
func presetShape(kind stdshapes.Kind) stdshapes.Shape {
	s := stdshapes.Shape{Kind: kind, Radius: 1}
	switch kind {
	case stdshapes.KindSphere:
		s.Tess = 2
	case stdshapes.KindCone:
		s.Center = stdshapes.NewVector3(0, -1, 0)
		s.Center2 = stdshapes.NewVector3(0, 1, 0)
		s.Tess = 24
	case stdshapes.KindCircle:
		s.Normal = stdshapes.NewVector3(0, 0, 1)
		s.Tess = 24
	}
	return s
}

func NewGame(shape stdshapes.Shape) (*Game, error) {
	g := &Game{
		camera:   stdshapes.NewCamera(stdshapes.Vector3{}, 5),
		spin:     true,
		outlines: true,
	}
	g.camera.Pitch = 0.4
	if err := g.setShape(shape); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) setShape(s stdshapes.Shape) error {
	positions, err := s.Build(g.positions[:0])
	if err != nil {
		return err
	}
	g.shape = s
	g.positions = positions
	log.Printf("Showing %s: %d triangles", s.Kind, len(positions)/3)
	return nil
}

func (g *Game) changeTess(delta int) {
	s := g.shape
	s.Tess += delta
	switch s.Kind {
	case stdshapes.KindSphere:
		if s.Tess < 0 || s.Tess > maxViewerSphereTess {
			return
		}
	case stdshapes.KindCone, stdshapes.KindCircle:
		if s.Tess < 3 || s.Tess > maxViewerSegments {
			return
		}
	default:
		return
	}
	if err := g.setShape(s); err != nil {
		log.Println("Cannot change tessellation:", err)
	}
}

func (g *Game) Update() error {
	for i, kind := range stdshapes.Kinds() {
		if i < len(kindKeys) && inpututil.IsKeyJustPressed(kindKeys[i]) {
			if err := g.setShape(presetShape(kind)); err != nil {
				return err
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.changeTess(g.tessStep())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.changeTess(-g.tessStep())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.spin = !g.spin
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.outlines = !g.outlines
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		if dy > 0 {
			g.camera.Zoom(0.9)
		} else {
			g.camera.Zoom(1.1)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		g.camera.Orbit(-float64(x-g.lastX)/200.0, float64(y-g.lastY)/200.0)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	if g.spin && !g.dragging {
		g.camera.Orbit(0.01, 0)
	}
	return nil
}

// tessStep is 1 for sphere levels and a few segments for rings.
func (g *Game) tessStep() int {
	if g.shape.Kind == stdshapes.KindSphere {
		return 1
	}
	return 4
}

func shade(t stdshapes.Triangle) color.RGBA {
	d := t.Normal().Dot(lightDir)
	if d < 0 {
		d = 0
	}
	k := ambient + (1-ambient)*d
	return color.RGBA{
		R: uint8(float64(baseColor.R) * k),
		G: uint8(float64(baseColor.G) * k),
		B: uint8(float64(baseColor.B) * k),
		A: 255,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 30, G: 30, B: 40, A: 255})

	xp := make([]float32, 3)
	yp := make([]float32, 3)
	for _, pt := range g.camera.Project(g.positions, screenWidth, screenHeight) {
		for i := 0; i < 3; i++ {
			xp[i], yp[i] = float32(pt.X[i]), float32(pt.Y[i])
		}
		fillConvexPolygon(screen, xp, yp, shade(pt.Triangle))
		if g.outlines {
			drawPolygonOutline(screen, xp, yp, 1, outlineColor)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s  tess %d  triangles %d  FPS %0.1f\n1-8 kind  +/- tess  space spin  o outlines  drag orbit  wheel zoom",
		g.shape.Kind, g.shape.Tess, len(g.positions)/3, ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
