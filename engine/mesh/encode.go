package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"prism/engine/geom"
)

// Encode writes m in the vertex/face text format. Identical vertices are
// written once and shared between faces.
func Encode(w io.Writer, m Mesh) error {
	bw := bufio.NewWriter(w)

	index := make(map[geom.Vec3]int)
	var order []geom.Vec3
	faces := make([][3]int, 0, len(m))

	for _, t := range m {
		var f [3]int
		for i, v := range t.Vertices() {
			n, ok := index[v]
			if !ok {
				order = append(order, v)
				n = len(order)
				index[v] = n
			}
			f[i] = n
		}
		faces = append(faces, f)
	}

	for _, v := range order {
		if _, err := fmt.Fprintf(bw, "v %s %s %s\n", fmtFloat(v.X), fmtFloat(v.Y), fmtFloat(v.Z)); err != nil {
			return fmt.Errorf("write vertex: %w", err)
		}
	}
	for _, f := range faces {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", f[0], f[1], f[2]); err != nil {
			return fmt.Errorf("write face: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush mesh: %w", err)
	}
	return nil
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
