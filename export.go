package stdshapes

import (
	"bufio"
	"fmt"
	"io"
)

// WritePLY writes m as an ASCII PLY file with one triangle per face.
func WritePLY(w io.Writer, m *Mesh) error {
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintln(writer, "ply")
	_, _ = fmt.Fprintln(writer, "format ascii 1.0")
	_, _ = fmt.Fprintf(writer, "comment Generated by stdshapes with %d vertices and %d faces\n", len(m.Vertices), len(m.Faces))
	_, _ = fmt.Fprintf(writer, "element vertex %d\n", len(m.Vertices))
	_, _ = fmt.Fprintln(writer, "property float x")
	_, _ = fmt.Fprintln(writer, "property float y")
	_, _ = fmt.Fprintln(writer, "property float z")
	_, _ = fmt.Fprintf(writer, "element face %d\n", len(m.Faces))
	_, _ = fmt.Fprintln(writer, "property list uchar int vertex_indices")
	_, _ = fmt.Fprintln(writer, "end_header")

	// shortest exact form, so nearby vertices stay distinct
	for _, v := range m.Vertices {
		_, _ = fmt.Fprintf(writer, "%v %v %v\n", v.X, v.Y, v.Z)
	}
	for _, f := range m.Faces {
		_, _ = fmt.Fprintf(writer, "3 %d %d %d\n", f[0], f[1], f[2])
	}

	return writer.Flush()
}

// WriteDXF writes positions as a DXF drawing of 3DFACE entities, one per
// triangle.
func WriteDXF(w io.Writer, positions []Vector3) error {
	writer := bufio.NewWriter(w)

	writePair := func(code int, value interface{}) {
		// errors surface on the final flush
		_, _ = fmt.Fprintf(writer, "%d\n%v\n", code, value)
	}
	writeCorner := func(n int, p Vector3) {
		writePair(10+n, p.X)
		writePair(20+n, p.Y)
		writePair(30+n, p.Z)
	}

	writePair(0, "SECTION")
	writePair(2, "HEADER")
	writePair(0, "ENDSEC")

	writePair(0, "SECTION")
	writePair(2, "ENTITIES")

	for _, t := range Triangles(positions) {
		writePair(0, "3DFACE")
		writePair(8, "0") // layer

		// 3DFACE always has 4 corners; a triangle repeats the third.
		writeCorner(0, t.A)
		writeCorner(1, t.B)
		writeCorner(2, t.C)
		writeCorner(3, t.C)
	}

	writePair(0, "ENDSEC")
	writePair(0, "EOF")

	return writer.Flush()
}
