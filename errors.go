package stdshapes

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind         = errors.New("unknown shape kind")
	ErrInvalidLength       = errors.New("invalid length")
	ErrInvalidTessellation = errors.New("invalid tessellation")
	ErrInvalidTopology     = errors.New("invalid topology")
	ErrDegenerate          = errors.New("degenerate shape")
)

// CheckTriangles reports ErrInvalidTopology unless positions is a non-empty
// whole number of triangles.
func CheckTriangles(positions []Vector3) error {
	if len(positions) == 0 {
		return fmt.Errorf("%w: no triangles", ErrInvalidTopology)
	}
	if len(positions)%3 != 0 {
		return fmt.Errorf("%w: %d positions is not a multiple of 3", ErrInvalidTopology, len(positions))
	}
	return nil
}
