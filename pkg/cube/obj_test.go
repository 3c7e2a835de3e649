package cube

import (
	"strings"
	"testing"
)

func TestWriteOBJ(t *testing.T) {
	st := DefaultStyle()
	st.RoundRadius = 0
	groups := []OBJGroup{
		{Name: "X+", Mesh: SideMesh(st, XPos)},
		{Name: "skip", Mesh: nil},
		{Name: "Y+", Mesh: SideMesh(st, YPos)},
	}

	var sb strings.Builder
	if err := WriteOBJ(&sb, groups); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "o X+\n") || !strings.Contains(out, "o Y+\n") {
		t.Error("group headers missing")
	}
	if strings.Contains(out, "o skip") {
		t.Error("nil mesh group emitted")
	}

	// Two sharp side quads: 8 vertices, 8 normals, 4 faces.
	var verts, normals, faces int
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			verts++
		case strings.HasPrefix(line, "vn "):
			normals++
		case strings.HasPrefix(line, "f "):
			faces++
		}
	}
	if verts != 8 || normals != 8 || faces != 4 {
		t.Errorf("got %d vertices, %d normals, %d faces, want 8/8/4", verts, normals, faces)
	}

	// Faces of the second group reference vertices past the first group.
	if !strings.Contains(out, "5//5") {
		t.Error("second group does not continue the global index space")
	}
}
