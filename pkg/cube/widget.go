package cube

import (
	"time"
)

// WidgetPart is one renderable piece of the widget. The host submits the
// mesh with an aspect of its choice; parts of the same kind are intended
// to share one aspect.
type WidgetPart struct {
	Orientation Orientation
	Kind        Part
	Mesh        *Mesh
}

// ViewCube is the widget facade: it owns the style, exposes geometry for
// rendering and regions for picking, and drives the camera transition on
// clicks. It is single-threaded; all methods must be called from the
// host's event loop.
type ViewCube struct {
	style      Style
	version    uint64
	transition *Transition

	// AutoStart runs the camera transition directly from HandleClick.
	AutoStart bool
	// FixedAnimation drives a started transition synchronously to
	// completion instead of leaving stepping to the render loop.
	FixedAnimation bool
	// Clock is the time source for animations, in seconds.
	Clock func() float64
}

// New creates a view cube widget attached to the given view with the
// default style.
func New(view View) *ViewCube {
	return &ViewCube{
		style:          DefaultStyle(),
		version:        1,
		transition:     NewTransition(view),
		AutoStart:      true,
		FixedAnimation: true,
		Clock:          monotonicSeconds(),
	}
}

func monotonicSeconds() func() float64 {
	epoch := time.Now()
	return func() float64 {
		return time.Since(epoch).Seconds()
	}
}

// Style returns a copy of the current style.
func (vc *ViewCube) Style() Style {
	return vc.style
}

// SetStyle replaces the whole style after validation. Invalid styles are
// rejected without partial application.
func (vc *ViewCube) SetStyle(st Style) error {
	if err := st.Validate(); err != nil {
		return err
	}
	vc.style = st
	vc.version++
	return nil
}

// Version returns the geometry version. It increments on every style
// mutation; hosts compare it to decide when to rebuild submitted meshes
// and registered regions.
func (vc *ViewCube) Version() uint64 {
	return vc.version
}

// SetSize updates the cube size, rescaling facet extension and axes
// padding proportionally.
func (vc *ViewCube) SetSize(size float32) {
	vc.style.SetSize(size, true)
	vc.version++
}

// SetRoundRadius sets the fillet fraction in [0, 0.5].
func (vc *ViewCube) SetRoundRadius(value float32) error {
	if err := vc.style.SetRoundRadius(value); err != nil {
		return err
	}
	vc.version++
	return nil
}

// SetYup switches between the Y-up and Z-up conventions.
func (vc *ViewCube) SetYup(yup bool) {
	if vc.style.Yup == yup {
		return
	}
	vc.style.Yup = yup
	vc.version++
}

// SetDrawEdges toggles the edge patches.
func (vc *ViewCube) SetDrawEdges(on bool) {
	vc.style.DrawEdges = on
	vc.version++
}

// SetDrawVertices toggles the corner patches.
func (vc *ViewCube) SetDrawVertices(on bool) {
	vc.style.DrawVertices = on
	vc.version++
}

// SetDrawAxes toggles the axes trihedron.
func (vc *ViewCube) SetDrawAxes(on bool) {
	vc.style.DrawAxes = on
	vc.version++
}

// ResetStyles restores the stock style.
func (vc *ViewCube) ResetStyles() {
	vc.style = DefaultStyle()
	vc.version++
}

// Transition exposes the camera transition controller for tuning duration
// and policies, and for stepped driving from a render loop.
func (vc *ViewCube) Transition() *Transition {
	return vc.transition
}

// SetView attaches the live view used for camera transitions.
func (vc *ViewCube) SetView(view View) {
	vc.transition.SetView(view)
}

// Parts builds the renderable cube patches for the current style: sides,
// then edges and corners as enabled.
func (vc *ViewCube) Parts() []WidgetPart {
	out := make([]WidgetPart, 0, orientationCount)
	for _, o := range All() {
		mesh := PartMesh(vc.style, o)
		if mesh == nil {
			continue
		}
		out = append(out, WidgetPart{Orientation: o, Kind: o.Kind(), Mesh: mesh})
	}
	return out
}

// AxesParts builds the trihedron arrows and center marker, or nothing
// when axes display is off.
func (vc *ViewCube) AxesParts() []*Mesh {
	if !vc.style.DrawAxes {
		return nil
	}
	out := make([]*Mesh, 0, 4)
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		out = append(out, AxisArrow(vc.style, axis))
	}
	out = append(out, CenterMarker(vc.style))
	return out
}

// Bounds returns the bounding box of the whole widget geometry, axes
// included.
func (vc *ViewCube) Bounds() Box {
	b := EmptyBox()
	for _, part := range vc.Parts() {
		b.Merge(part.Mesh.Bounds())
	}
	for _, mesh := range vc.AxesParts() {
		b.Merge(mesh.Bounds())
	}
	return b
}

// Regions builds the pickable regions for the current style.
func (vc *ViewCube) Regions() []Region {
	return Regions(vc.style)
}

// HandleClick reacts to a picked region: it starts the camera transition
// toward the region's orientation and, in fixed animation mode, blocks
// until the transition completes. Honors the AutoStart policy.
func (vc *ViewCube) HandleClick(region Region) {
	if !vc.AutoStart {
		return
	}
	if !vc.transition.Start(region.Orientation, vc.style.Yup, vc.Clock()) {
		return
	}
	if vc.FixedAnimation {
		vc.transition.Finish(vc.Clock)
	}
}
