package document

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func approxPoint(a, b gg.Point) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		name      string
		transform string
		in        gg.Point
		want      gg.Point
	}{
		{name: "empty", transform: "", in: gg.Pt(1, 2), want: gg.Pt(1, 2)},
		{name: "translate", transform: "translate(10,20)", in: gg.Pt(1, 2), want: gg.Pt(11, 22)},
		{name: "translate x only", transform: "translate(5)", in: gg.Pt(1, 2), want: gg.Pt(6, 2)},
		{name: "scale", transform: "scale(2)", in: gg.Pt(1, 2), want: gg.Pt(2, 4)},
		{name: "scale xy", transform: "scale(2 3)", in: gg.Pt(1, 2), want: gg.Pt(2, 6)},
		{name: "rotate", transform: "rotate(90)", in: gg.Pt(1, 0), want: gg.Pt(0, 1)},
		{name: "rotate about point", transform: "rotate(180, 5, 5)", in: gg.Pt(0, 0), want: gg.Pt(10, 10)},
		{name: "matrix", transform: "matrix(1,0,0,1,3,4)", in: gg.Pt(0, 0), want: gg.Pt(3, 4)},
		{name: "skewX", transform: "skewX(45)", in: gg.Pt(0, 1), want: gg.Pt(1, 1)},
		{name: "skewY", transform: "skewY(45)", in: gg.Pt(1, 0), want: gg.Pt(1, 1)},
		{name: "matrix shear", transform: "matrix(1,2,3,4,5,6)", in: gg.Pt(1, 1), want: gg.Pt(9, 12)},
		{name: "list applies right to left", transform: "translate(10,0) scale(2)", in: gg.Pt(1, 1), want: gg.Pt(12, 2)},
		{name: "comma separated list", transform: "scale(2),translate(1,1)", in: gg.Pt(0, 0), want: gg.Pt(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseTransform(tt.transform)
			if err != nil {
				t.Fatalf("ParseTransform(%q) error = %v", tt.transform, err)
			}
			if got := m.TransformPoint(tt.in); !approxPoint(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTransformRejects(t *testing.T) {
	for _, s := range []string{"translate(1", "spin(3)", "scale()", "matrix(1,2,3)", "rotate(a)"} {
		t.Run(s, func(t *testing.T) {
			if _, err := ParseTransform(s); err == nil {
				t.Errorf("ParseTransform(%q) error = nil, want error", s)
			}
		})
	}
}
