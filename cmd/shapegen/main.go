package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/smasonuk/stdshapes"
)

func main() {
	kindName := flag.String("kind", "sphere", "shape kind: tetrahedron, cube, octahedron, icosahedron, dodecahedron, sphere, cone, circle")
	radius := flag.Float64("radius", 1, "radius (circumradius for solids, first end for cones)")
	tess := flag.Int("tess", 2, "sphere subdivisions, or segments for cone and circle")
	center := flag.String("center", "0,0,0", "center as x,y,z")
	center2 := flag.String("center2", "0,1,0", "cone: second end as x,y,z")
	radius2 := flag.Float64("radius2", 0, "cone: radius at the second end")
	opened := flag.Bool("opened", false, "cone: leave the ends open")
	normal := flag.String("normal", "0,0,1", "circle: plane normal as x,y,z")
	configFile := flag.String("config", "", "TOML scene file with [[shape]] tables; overrides the shape flags")
	out := flag.String("out", "", "output file (.ply or .dxf); PLY on stdout when empty")
	flag.Parse()

	var shapes []stdshapes.Shape
	if *configFile != "" {
		var err error
		shapes, err = loadScene(*configFile)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		s, err := shapeFromFlags(*kindName, *radius, *tess, *center, *center2, *radius2, *opened, *normal)
		if err != nil {
			log.Fatal(err)
		}
		shapes = []stdshapes.Shape{s}
	}

	positions, err := buildAll(shapes)
	if err != nil {
		log.Fatal(err)
	}

	if err := writeOutput(*out, positions); err != nil {
		log.Fatal(err)
	}
}

func shapeFromFlags(kindName string, radius float64, tess int, center, center2 string,
	radius2 float64, opened bool, normal string) (stdshapes.Shape, error) {
	kind, err := stdshapes.ParseKind(kindName)
	if err != nil {
		return stdshapes.Shape{}, err
	}
	c, err := parseVector(center)
	if err != nil {
		return stdshapes.Shape{}, err
	}
	c2, err := parseVector(center2)
	if err != nil {
		return stdshapes.Shape{}, err
	}
	n, err := parseVector(normal)
	if err != nil {
		return stdshapes.Shape{}, err
	}

	return stdshapes.Shape{
		Kind:    kind,
		Center:  c,
		Radius:  radius,
		Tess:    tess,
		Center2: c2,
		Radius2: radius2,
		Opened:  opened,
		Normal:  n,
	}, nil
}

func buildAll(shapes []stdshapes.Shape) ([]stdshapes.Vector3, error) {
	var positions []stdshapes.Vector3
	for i, s := range shapes {
		before := len(positions)
		var err error
		positions, err = s.Build(positions)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		log.Printf("Built %s: %d triangles", s.Kind, (len(positions)-before)/3)
	}
	return positions, nil
}

func writeOutput(fileName string, positions []stdshapes.Vector3) error {
	if fileName == "" {
		return writeFormat(os.Stdout, "ply", positions)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if format != "ply" && format != "dxf" {
		return fmt.Errorf("unsupported output format %q", filepath.Ext(fileName))
	}

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", fileName, err)
	}
	defer file.Close()

	if err := writeFormat(file, format, positions); err != nil {
		return err
	}
	log.Println("Wrote", fileName)
	return file.Close()
}

func writeFormat(w io.Writer, format string, positions []stdshapes.Vector3) error {
	switch format {
	case "dxf":
		return stdshapes.WriteDXF(w, positions)
	default:
		return stdshapes.WritePLY(w, stdshapes.NewMeshFromTriangles(positions))
	}
}
