package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/stdshapes"
)

func main() {
	kindName := flag.String("kind", "sphere", "initial shape kind")
	tess := flag.Int("tess", -1, "initial tessellation; the kind's default when negative")
	flag.Parse()

	kind, err := stdshapes.ParseKind(*kindName)
	if err != nil {
		log.Fatal(err)
	}
	shape := presetShape(kind)
	if *tess >= 0 {
		shape.Tess = *tess
	}

	log.Println("Initializing viewer...")
	game, err := NewGame(shape)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("stdshapes viewer")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
