package cube

import "fmt"

// Style holds the geometry parameters of the view cube. A Style value is
// passed explicitly into the mesh builders; the widget tracks changes with
// a version counter instead of mutating shared state behind the builders'
// back.
type Style struct {
	// Size is the edge length of the cube body.
	Size float32
	// FacetExtension offsets sides, edges and corners outward from the
	// cube surface so the parts visually separate.
	FacetExtension float32
	// EdgeMinSize is the lower bound for the thickness of edge patches.
	EdgeMinSize float32
	// EdgeGap shrinks edge patches to leave a gap between neighbors.
	EdgeGap float32
	// CornerMinSize is the lower bound for the radius of rounded corner
	// disks.
	CornerMinSize float32
	// RoundRadius is the corner fillet radius of rectangular patches as a
	// fraction of Size, in [0, 0.5]. Zero produces sharp rectangles and
	// triangular corners.
	RoundRadius float32
	// AxesPadding is the gap between the cube body and the axes trihedron.
	AxesPadding float32

	// DrawAxes enables the axes trihedron and center marker geometry.
	DrawAxes bool
	// DrawEdges enables the 12 edge patches.
	DrawEdges bool
	// DrawVertices enables the 8 corner patches.
	DrawVertices bool

	// Yup selects the Y-up convention for view orientation and side
	// labels; the default is Z-up.
	Yup bool
}

// DefaultStyle returns the stock view cube style: a cube of size 70 with
// proportional facet extension and axes padding.
func DefaultStyle() Style {
	st := Style{
		Size:           70,
		EdgeMinSize:    2,
		CornerMinSize:  2,
		FacetExtension: 1,
		AxesPadding:    1,
		DrawAxes:       true,
		DrawEdges:      true,
		DrawVertices:   true,
	}
	st.SetSize(70, true)
	return st
}

// SetSize updates the cube size. With adapt set, facet extension and axes
// padding are rescaled proportionally (0.15 and 0.1 of the size) when they
// are currently positive.
func (st *Style) SetSize(size float32, adapt bool) {
	st.Size = size
	if !adapt {
		return
	}
	if st.FacetExtension > 0 {
		st.FacetExtension = size * 0.15
	}
	if st.AxesPadding > 0 {
		st.AxesPadding = size * 0.1
	}
}

// SetRoundRadius sets the fillet fraction, rejecting values outside
// [0, 0.5] before any state changes.
func (st *Style) SetRoundRadius(value float32) error {
	if value < 0 || value > 0.5 {
		return fmt.Errorf("round radius %v out of range [0, 0.5]", value)
	}
	st.RoundRadius = value
	return nil
}

// Validate checks the style invariants. It is called before geometry
// rebuilds so invalid parameters never reach the builders.
func (st Style) Validate() error {
	if st.Size <= 0 {
		return fmt.Errorf("cube size %v must be positive", st.Size)
	}
	if st.RoundRadius < 0 || st.RoundRadius > 0.5 {
		return fmt.Errorf("round radius %v out of range [0, 0.5]", st.RoundRadius)
	}
	if st.FacetExtension < 0 {
		return fmt.Errorf("facet extension %v must not be negative", st.FacetExtension)
	}
	if st.EdgeGap < 0 {
		return fmt.Errorf("edge gap %v must not be negative", st.EdgeGap)
	}
	if st.EdgeMinSize < 0 || st.CornerMinSize < 0 {
		return fmt.Errorf("minimum part sizes must not be negative")
	}
	if st.AxesPadding < 0 {
		return fmt.Errorf("axes padding %v must not be negative", st.AxesPadding)
	}
	return nil
}
