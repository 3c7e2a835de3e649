package cube

import (
	"testing"

	"github.com/Faultbox/viewcube/pkg/math"
)

func TestClassifyCounts(t *testing.T) {
	counts := map[Part]int{}
	for _, o := range All() {
		counts[Classify(o.Dir())]++
	}
	if counts[PartSide] != 6 {
		t.Errorf("side count = %d, want 6", counts[PartSide])
	}
	if counts[PartEdge] != 12 {
		t.Errorf("edge count = %d, want 12", counts[PartEdge])
	}
	if counts[PartCorner] != 8 {
		t.Errorf("corner count = %d, want 8", counts[PartCorner])
	}
}

func TestOrientationDirUnit(t *testing.T) {
	for _, o := range All() {
		l := o.Dir().Length()
		if l < 0.999 || l > 1.001 {
			t.Errorf("%v direction length = %v, want 1", o, l)
		}
	}
}

func TestClassifyZero(t *testing.T) {
	if got := Classify(math.Vec3{}); got == PartSide || got == PartEdge || got == PartCorner {
		t.Errorf("Classify(zero) = %v, want unclassified", got)
	}
}

func TestSideLabels(t *testing.T) {
	wantLabels := map[string]bool{
		"FRONT": true, "BACK": true, "TOP": true,
		"BOTTOM": true, "LEFT": true, "RIGHT": true,
	}
	for _, yup := range []bool{false, true} {
		seen := map[string]bool{}
		for _, o := range All() {
			label := SideLabel(o, yup)
			if label == "" {
				if o.Side() {
					t.Errorf("side %v has no label (yup=%v)", o, yup)
				}
				continue
			}
			if !o.Side() {
				t.Errorf("non-side %v has label %q (yup=%v)", o, label, yup)
			}
			if seen[label] {
				t.Errorf("label %q bound twice (yup=%v)", label, yup)
			}
			seen[label] = true
		}
		for label := range wantLabels {
			if !seen[label] {
				t.Errorf("label %q missing (yup=%v)", label, yup)
			}
		}
	}

	// The vertical axis differs between conventions.
	if SideLabel(ZPos, false) != "TOP" {
		t.Errorf("Z-up TOP = %q, want ZPos", SideLabel(ZPos, false))
	}
	if SideLabel(YPos, true) != "TOP" {
		t.Errorf("Y-up TOP = %q, want YPos", SideLabel(YPos, true))
	}
}
