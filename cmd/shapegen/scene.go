package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/smasonuk/stdshapes"
)

// sceneShape is the TOML form of a stdshapes.Shape. Vectors are written as
// three-element arrays.
type sceneShape struct {
	Kind    *stdshapes.Kind `toml:"kind"`
	Center  [3]float64      `toml:"center"`
	Radius  float64         `toml:"radius"`
	Tess    int             `toml:"tess"`
	Center2 [3]float64      `toml:"center2"`
	Radius2 float64         `toml:"radius2"`
	Opened  bool            `toml:"opened"`
	Normal  [3]float64      `toml:"normal"`
}

type scene struct {
	Shapes []sceneShape `toml:"shape"`
}

func vec(a [3]float64) stdshapes.Vector3 {
	return stdshapes.NewVector3(a[0], a[1], a[2])
}

func (s sceneShape) shape() stdshapes.Shape {
	return stdshapes.Shape{
		Kind:    *s.Kind,
		Center:  vec(s.Center),
		Radius:  s.Radius,
		Tess:    s.Tess,
		Center2: vec(s.Center2),
		Radius2: s.Radius2,
		Opened:  s.Opened,
		Normal:  vec(s.Normal),
	}
}

func decodeScene(r io.Reader) ([]stdshapes.Shape, error) {
	var sc scene
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	if len(sc.Shapes) == 0 {
		return nil, fmt.Errorf("scene has no [[shape]] entries")
	}

	shapes := make([]stdshapes.Shape, len(sc.Shapes))
	for i, s := range sc.Shapes {
		if s.Kind == nil {
			return nil, fmt.Errorf("shape %d: missing kind", i)
		}
		shapes[i] = s.shape()
	}
	return shapes, nil
}

func loadScene(fileName string) ([]stdshapes.Shape, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open scene file %s: %w", fileName, err)
	}
	defer file.Close()

	return decodeScene(file)
}

// parseVector reads "x,y,z".
func parseVector(s string) (stdshapes.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return stdshapes.Vector3{}, fmt.Errorf("vector %q: want x,y,z", s)
	}
	var xyz [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return stdshapes.Vector3{}, fmt.Errorf("vector %q: %w", s, err)
		}
		xyz[i] = f
	}
	return vec(xyz), nil
}
