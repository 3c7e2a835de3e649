// Package cube implements an interactive view cube widget: procedural
// geometry for the 26 canonical viewing directions, ray picking over the
// generated parts, and an animated camera transition toward a picked
// direction.
package cube

import (
	"github.com/Faultbox/viewcube/pkg/math"
)

// Orientation identifies one of the 26 canonical viewing directions of the
// cube: 6 sides, 12 edges and 8 corners.
type Orientation int

const (
	// Sides.
	XPos Orientation = iota
	YPos
	ZPos
	XNeg
	YNeg
	ZNeg

	// Edges.
	XPosYPos
	XPosZPos
	YPosZPos
	XNegYNeg
	XNegYPos
	XNegZNeg
	XNegZPos
	YNegZNeg
	YNegZPos
	XPosYNeg
	XPosZNeg
	YPosZNeg

	// Corners.
	XPosYPosZPos
	XPosYNegZPos
	XPosYPosZNeg
	XPosYNegZNeg
	XNegYPosZPos
	XNegYNegZPos
	XNegYPosZNeg
	XNegYNegZNeg

	orientationCount
)

// Part classifies an orientation by the number of non-zero axis components
// of its direction: 1 for a cube side, 2 for an edge, 3 for a corner.
type Part int

const (
	PartSide Part = iota + 1
	PartEdge
	PartCorner
)

func (p Part) String() string {
	switch p {
	case PartSide:
		return "side"
	case PartEdge:
		return "edge"
	case PartCorner:
		return "corner"
	}
	return "unknown"
}

// signs holds the axis signs of each orientation's projection axis.
var signs = [orientationCount][3]float32{
	XPos: {1, 0, 0}, YPos: {0, 1, 0}, ZPos: {0, 0, 1},
	XNeg: {-1, 0, 0}, YNeg: {0, -1, 0}, ZNeg: {0, 0, -1},

	XPosYPos: {1, 1, 0}, XPosZPos: {1, 0, 1}, YPosZPos: {0, 1, 1},
	XNegYNeg: {-1, -1, 0}, XNegYPos: {-1, 1, 0}, XNegZNeg: {-1, 0, -1},
	XNegZPos: {-1, 0, 1}, YNegZNeg: {0, -1, -1}, YNegZPos: {0, -1, 1},
	XPosYNeg: {1, -1, 0}, XPosZNeg: {1, 0, -1}, YPosZNeg: {0, 1, -1},

	XPosYPosZPos: {1, 1, 1}, XPosYNegZPos: {1, -1, 1},
	XPosYPosZNeg: {1, 1, -1}, XPosYNegZNeg: {1, -1, -1},
	XNegYPosZPos: {-1, 1, 1}, XNegYNegZPos: {-1, -1, 1},
	XNegYPosZNeg: {-1, 1, -1}, XNegYNegZNeg: {-1, -1, -1},
}

var names = [orientationCount]string{
	XPos: "X+", YPos: "Y+", ZPos: "Z+", XNeg: "X-", YNeg: "Y-", ZNeg: "Z-",
	XPosYPos: "X+Y+", XPosZPos: "X+Z+", YPosZPos: "Y+Z+",
	XNegYNeg: "X-Y-", XNegYPos: "X-Y+", XNegZNeg: "X-Z-",
	XNegZPos: "X-Z+", YNegZNeg: "Y-Z-", YNegZPos: "Y-Z+",
	XPosYNeg: "X+Y-", XPosZNeg: "X+Z-", YPosZNeg: "Y+Z-",
	XPosYPosZPos: "X+Y+Z+", XPosYNegZPos: "X+Y-Z+",
	XPosYPosZNeg: "X+Y+Z-", XPosYNegZNeg: "X+Y-Z-",
	XNegYPosZPos: "X-Y+Z+", XNegYNegZPos: "X-Y-Z+",
	XNegYPosZNeg: "X-Y+Z-", XNegYNegZNeg: "X-Y-Z-",
}

func (o Orientation) String() string {
	if o < 0 || o >= orientationCount {
		return "invalid"
	}
	return names[o]
}

// Dir returns the unit projection axis of the orientation, pointing from
// the cube center toward the viewer position for that view.
func (o Orientation) Dir() math.Vec3 {
	s := signs[o]
	return math.Vec3{X: s[0], Y: s[1], Z: s[2]}.Normalize()
}

// Axes returns the raw axis signs of the orientation (components in
// {-1, 0, 1}).
func (o Orientation) Axes() (x, y, z float32) {
	s := signs[o]
	return s[0], s[1], s[2]
}

// All returns all 26 orientations in declaration order.
func All() []Orientation {
	out := make([]Orientation, orientationCount)
	for i := range out {
		out[i] = Orientation(i)
	}
	return out
}

// dirTolerance is the smallest axis component magnitude treated as
// non-zero during classification.
const dirTolerance = 1e-7

// Classify categorizes a direction by counting non-zero axis components.
// Returns 0 for the zero vector.
func Classify(dir math.Vec3) Part {
	n := 0
	for _, c := range [3]float32{dir.X, dir.Y, dir.Z} {
		if c > dirTolerance || c < -dirTolerance {
			n++
		}
	}
	return Part(n)
}

// Side reports whether the orientation is one of the 6 cube sides.
func (o Orientation) Side() bool { return Classify(o.Dir()) == PartSide }

// Edge reports whether the orientation is one of the 12 cube edges.
func (o Orientation) Edge() bool { return Classify(o.Dir()) == PartEdge }

// Corner reports whether the orientation is one of the 8 cube corners.
func (o Orientation) Corner() bool { return Classify(o.Dir()) == PartCorner }

// Kind returns the classification of the orientation.
func (o Orientation) Kind() Part { return Classify(o.Dir()) }

// SideLabel returns the conventional label of a side orientation under the
// given up convention ("FRONT", "TOP", ...). Non-side orientations have no
// label.
func SideLabel(o Orientation, yup bool) string {
	if yup {
		switch o {
		case ZPos:
			return "FRONT"
		case ZNeg:
			return "BACK"
		case YPos:
			return "TOP"
		case YNeg:
			return "BOTTOM"
		case XNeg:
			return "LEFT"
		case XPos:
			return "RIGHT"
		}
		return ""
	}
	switch o {
	case YNeg:
		return "FRONT"
	case YPos:
		return "BACK"
	case ZPos:
		return "TOP"
	case ZNeg:
		return "BOTTOM"
	case XNeg:
		return "LEFT"
	case XPos:
		return "RIGHT"
	}
	return ""
}
