package cube

import (
	"bufio"
	"fmt"
	"io"
)

// OBJGroup is one named mesh in an OBJ export.
type OBJGroup struct {
	Name string
	Mesh *Mesh
}

// WriteOBJ writes the groups as a Wavefront OBJ with positions and
// normals. Nil or empty meshes are skipped.
func WriteOBJ(w io.Writer, groups []OBJGroup) error {
	bw := bufio.NewWriter(w)

	// OBJ indices are global and 1-based.
	offset := 1
	for _, g := range groups {
		m := g.Mesh
		if m == nil || len(m.Indices) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(bw, "o %s\n", g.Name); err != nil {
			return err
		}
		for _, v := range m.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v.Position.X, v.Position.Y, v.Position.Z)
		}
		for _, v := range m.Vertices {
			fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
		}
		for i := 0; i+2 < len(m.Indices); i += 3 {
			a := int(m.Indices[i]) + offset
			b := int(m.Indices[i+1]) + offset
			c := int(m.Indices[i+2]) + offset
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
		offset += len(m.Vertices)
	}

	return bw.Flush()
}
