package document

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func box(x0, y0, x1, y1 float64) gg.Rect {
	return gg.Rect{Min: gg.Pt(x0, y0), Max: gg.Pt(x1, y1)}
}

func TestBoundingBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		id   string
		want gg.Rect
	}{
		{
			name: "rect",
			svg:  `<svg><rect id="a" x="1" y="2" width="3" height="4"/></svg>`,
			id:   "a",
			want: box(1, 2, 4, 6),
		},
		{
			name: "circle with units",
			svg:  `<svg><circle id="a" cx="1in" cy="0" r="1px"/></svg>`,
			id:   "a",
			want: box(95, -1, 97, 1),
		},
		{
			name: "ellipse",
			svg:  `<svg><ellipse id="a" cx="10" cy="10" rx="5" ry="2"/></svg>`,
			id:   "a",
			want: box(5, 8, 15, 12),
		},
		{
			name: "line",
			svg:  `<svg><line id="a" x1="5" y1="0" x2="0" y2="5"/></svg>`,
			id:   "a",
			want: box(0, 0, 5, 5),
		},
		{
			name: "polygon",
			svg:  `<svg><polygon id="a" points="0,0 10,0 5-5"/></svg>`,
			id:   "a",
			want: box(0, -5, 10, 0),
		},
		{
			name: "relative path",
			svg:  `<svg><path id="a" d="m10 10 l 5 5 h -20 v-30 z"/></svg>`,
			id:   "a",
			want: box(-5, -15, 15, 15),
		},
		{
			name: "implicit lineto after moveto",
			svg:  `<svg><path id="a" d="M0 0 10 10 20 0"/></svg>`,
			id:   "a",
			want: box(0, 0, 20, 10),
		},
		{
			name: "cubic extrema",
			svg:  `<svg><path id="a" d="M0,0 C0,-100 10,-100 10,0"/></svg>`,
			id:   "a",
			want: box(0, -75, 10, 0),
		},
		{
			name: "smooth cubic reflects control point",
			svg:  `<svg><path id="a" d="M0,0 C0,10 10,10 10,0 S20,-10 20,0"/></svg>`,
			id:   "a",
			want: box(0, -7.5, 20, 7.5),
		},
		{
			name: "smooth quadratic reflects control point",
			svg:  `<svg><path id="a" d="M0,0 Q5,10 10,0 T20,0"/></svg>`,
			id:   "a",
			want: box(0, -5, 20, 5),
		},
		{
			name: "smooth cubic after line uses current point",
			svg:  `<svg><path id="a" d="M0,0 L10,0 S20,10 20,0"/></svg>`,
			id:   "a",
			want: box(0, 0, 20, 40.0/9),
		},
		{
			name: "half circle arc",
			svg:  `<svg><path id="a" d="M-10,0 A10,10 0 0 1 10,0"/></svg>`,
			id:   "a",
			want: box(-10, -10, 10, 0),
		},
		{
			name: "compact arc flags",
			svg:  `<svg><path id="a" d="M0 0a5 5 0 1010 0"/></svg>`,
			id:   "a",
			want: box(0, 0, 10, 5),
		},
		{
			name: "arc radii scaled up to reach end point",
			svg:  `<svg><path id="a" d="M0,0 A1,1 0 0 1 20,0"/></svg>`,
			id:   "a",
			want: box(0, -10, 20, 0),
		},
		{
			name: "rotated ellipse arc",
			svg:  `<svg><path id="a" d="M0,0 A20,10 90 0 1 0,40"/></svg>`,
			id:   "a",
			want: box(0, 0, 10, 40),
		},
		{
			name: "rotated rect",
			svg:  `<svg><rect id="a" width="10" height="10" transform="rotate(45)"/></svg>`,
			id:   "a",
			want: box(-5*math.Sqrt2, 0, 5*math.Sqrt2, 10*math.Sqrt2),
		},
		{
			name: "group transform",
			svg:  `<svg><g transform="translate(100,0)"><g id="a" transform="scale(2)"><rect width="1" height="1"/><rect x="2" y="2" width="1" height="1"/></g></g></svg>`,
			id:   "a",
			want: box(100, 0, 106, 6),
		},
		{
			name: "use",
			svg:  `<svg xmlns:xlink="http://www.w3.org/1999/xlink"><defs><rect id="t" width="2" height="2"/></defs><use id="a" xlink:href="#t" x="10" y="10"/></svg>`,
			id:   "a",
			want: box(10, 10, 12, 12),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.svg))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			el, ok := doc.ElementByID(tt.id)
			if !ok {
				t.Fatalf("element %q not found", tt.id)
			}
			got, err := doc.BoundingBox(el)
			if err != nil {
				t.Fatalf("BoundingBox() error = %v", err)
			}
			if !approxPoint(got.Min, tt.want.Min) || !approxPoint(got.Max, tt.want.Max) {
				t.Errorf("BoundingBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundingBoxNoGeometry(t *testing.T) {
	doc, err := Parse([]byte(`<svg><g id="empty"/><use id="loop" href="#loop"/></svg>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	empty, _ := doc.ElementByID("empty")
	if _, err := doc.BoundingBox(empty); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("BoundingBox(empty group) error = %v, want ErrNoGeometry", err)
	}

	loop, _ := doc.ElementByID("loop")
	if _, err := doc.BoundingBox(loop); err == nil {
		t.Error("BoundingBox(self-referencing use) error = nil, want error")
	}
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{in: "", want: nil},
		{in: "1 2,3", want: []float64{1, 2, 3}},
		{in: "1-2", want: []float64{1, -2}},
		{in: "1.5.5", want: []float64{1.5, 0.5}},
		{in: "-1e2 +.5", want: []float64{-100, 0.5}},
		{in: "3e", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseNumbers(tt.in)
			if tt.in == "3e" {
				// "e" is not a number.
				if err == nil {
					t.Errorf("parseNumbers(%q) error = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseNumbers(%q) error = %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseNumbers(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("parseNumbers(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "10", want: 10},
		{in: "10px", want: 10},
		{in: "1in", want: 96},
		{in: "72pt", want: 96},
		{in: "25.4mm", want: 96},
		{in: "50%", want: 0},
		{in: "2em", want: 0},
		{in: "junk", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLength(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("parseLength(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
