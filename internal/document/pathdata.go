package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// parseNumbers parses a whitespace and/or comma separated list of numbers.
func parseNumbers(s string) ([]float64, error) {
	sc := &numberScanner{s: s}
	var nums []float64
	for {
		sc.skipSeparators()
		if sc.done() {
			return nums, nil
		}
		n, err := sc.number()
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
}

// numberScanner reads SVG numbers, which may run together ("1-2", "1.5.5").
type numberScanner struct {
	s   string
	pos int
}

func (sc *numberScanner) done() bool {
	return sc.pos >= len(sc.s)
}

func (sc *numberScanner) skipSeparators() {
	for sc.pos < len(sc.s) && strings.IndexByte(" \t\r\n,", sc.s[sc.pos]) >= 0 {
		sc.pos++
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (sc *numberScanner) number() (float64, error) {
	start := sc.pos
	i := sc.pos
	if i < len(sc.s) && (sc.s[i] == '+' || sc.s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(sc.s) && isDigit(sc.s[i]) {
		i++
		digits++
	}
	if i < len(sc.s) && sc.s[i] == '.' {
		i++
		for i < len(sc.s) && isDigit(sc.s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("expected number at offset %d in %q", start, sc.s)
	}
	if i < len(sc.s) && (sc.s[i] == 'e' || sc.s[i] == 'E') {
		j := i + 1
		if j < len(sc.s) && (sc.s[j] == '+' || sc.s[j] == '-') {
			j++
		}
		if j < len(sc.s) && isDigit(sc.s[j]) {
			for j < len(sc.s) && isDigit(sc.s[j]) {
				j++
			}
			i = j
		}
	}
	sc.pos = i
	return strconv.ParseFloat(sc.s[start:i], 64)
}

// flag reads an arc flag, which may be written without separators.
func (sc *numberScanner) flag() (bool, error) {
	sc.skipSeparators()
	if sc.done() || (sc.s[sc.pos] != '0' && sc.s[sc.pos] != '1') {
		return false, fmt.Errorf("expected arc flag at offset %d in %q", sc.pos, sc.s)
	}
	f := sc.s[sc.pos] == '1'
	sc.pos++
	return f, nil
}

// nextIsNumber reports whether another argument follows.
func (sc *numberScanner) nextIsNumber() bool {
	sc.skipSeparators()
	if sc.done() {
		return false
	}
	c := sc.s[sc.pos]
	return isDigit(c) || c == '+' || c == '-' || c == '.'
}

// parsePathData builds a path from SVG path data. Smooth curves get their
// reflected control points and elliptical arcs become cubic segments.
func parsePathData(d string) (*gg.Path, error) {
	sc := &numberScanner{s: d}
	p := gg.NewPath()

	var (
		cur, start gg.Point
		// ctrl is the last control point of the previous curve, for S and T.
		ctrl gg.Point
		cmd  byte
		prev byte
	)

	args := func(n int) ([]float64, error) {
		out := make([]float64, n)
		for i := range out {
			sc.skipSeparators()
			v, err := sc.number()
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	for {
		sc.skipSeparators()
		if sc.done() {
			return p, nil
		}

		c := sc.s[sc.pos]
		if strings.IndexByte("MmLlHhVvCcSsQqTtAaZz", c) >= 0 {
			cmd = c
			sc.pos++
		} else if cmd == 0 || cmd|0x20 == 'z' {
			return nil, fmt.Errorf("expected command at offset %d in %q", sc.pos, d)
		} else if !sc.nextIsNumber() {
			return nil, fmt.Errorf("unexpected %q at offset %d", c, sc.pos)
		}

		rel := cmd >= 'a' && cmd <= 'z'
		abs := func(x, y float64) gg.Point {
			if rel {
				return gg.Pt(cur.X+x, cur.Y+y)
			}
			return gg.Pt(x, y)
		}
		// reflect mirrors the previous control point through the current
		// point when the previous segment was of the same family.
		reflect := func(family string) gg.Point {
			if strings.IndexByte(family, prev|0x20) < 0 {
				return cur
			}
			return gg.Pt(2*cur.X-ctrl.X, 2*cur.Y-ctrl.Y)
		}

		op := cmd | 0x20
		switch op {
		case 'z':
			p.Close()
			cur = start
		case 'm':
			a, err := args(2)
			if err != nil {
				return nil, err
			}
			cur = abs(a[0], a[1])
			start = cur
			p.MoveTo(cur.X, cur.Y)
			// Further pairs after a moveto are implicit linetos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'l':
			a, err := args(2)
			if err != nil {
				return nil, err
			}
			cur = abs(a[0], a[1])
			p.LineTo(cur.X, cur.Y)
		case 'h':
			a, err := args(1)
			if err != nil {
				return nil, err
			}
			if rel {
				cur.X += a[0]
			} else {
				cur.X = a[0]
			}
			p.LineTo(cur.X, cur.Y)
		case 'v':
			a, err := args(1)
			if err != nil {
				return nil, err
			}
			if rel {
				cur.Y += a[0]
			} else {
				cur.Y = a[0]
			}
			p.LineTo(cur.X, cur.Y)
		case 'c':
			a, err := args(6)
			if err != nil {
				return nil, err
			}
			c1, c2, end := abs(a[0], a[1]), abs(a[2], a[3]), abs(a[4], a[5])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			ctrl, cur = c2, end
		case 's':
			a, err := args(4)
			if err != nil {
				return nil, err
			}
			c1 := reflect("cs")
			c2, end := abs(a[0], a[1]), abs(a[2], a[3])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			ctrl, cur = c2, end
		case 'q':
			a, err := args(4)
			if err != nil {
				return nil, err
			}
			q, end := abs(a[0], a[1]), abs(a[2], a[3])
			p.QuadraticTo(q.X, q.Y, end.X, end.Y)
			ctrl, cur = q, end
		case 't':
			a, err := args(2)
			if err != nil {
				return nil, err
			}
			q, end := reflect("qt"), abs(a[0], a[1])
			p.QuadraticTo(q.X, q.Y, end.X, end.Y)
			ctrl, cur = q, end
		case 'a':
			a, err := args(3)
			if err != nil {
				return nil, err
			}
			large, err := sc.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := sc.flag()
			if err != nil {
				return nil, err
			}
			e, err := args(2)
			if err != nil {
				return nil, err
			}
			end := abs(e[0], e[1])
			arcTo(p, cur, a[0], a[1], a[2], large, sweep, end)
			cur = end
		}
		prev = op
	}
}

// arcTo appends an SVG elliptical arc from 'from' to 'to' as cubic
// segments of at most 90 degrees, using the endpoint to centre conversion
// of SVG 1.1 appendix F.6.5.
func arcTo(p *gg.Path, from gg.Point, rx, ry, rotation float64, large, sweep bool, to gg.Point) {
	if from == to {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.LineTo(to.X, to.Y)
		return
	}

	phi := rotation * math.Pi / 180
	sin, cos := math.Sincos(phi)

	dx, dy := (from.X-to.X)/2, (from.Y-to.Y)/2
	x1 := cos*dx + sin*dy
	y1 := -sin*dx + cos*dy

	// Radii too small to reach the end point are scaled up.
	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx := cos*cx1 - sin*cy1 + (from.X+to.X)/2
	cy := sin*cx1 + cos*cy1 + (from.Y+to.Y)/2

	theta := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	delta := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx) - theta
	switch {
	case sweep && delta < 0:
		delta += 2 * math.Pi
	case !sweep && delta > 0:
		delta -= 2 * math.Pi
	}

	// Segments are built on the unit circle and mapped onto the ellipse.
	m := gg.Translate(cx, cy).Multiply(gg.Rotate(phi)).Multiply(gg.Scale(rx, ry))
	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	for i := range n {
		a1 := theta + float64(i)*step
		a2 := a1 + step
		s1, c1 := math.Sincos(a1)
		s2, c2 := math.Sincos(a2)

		ctrl1 := m.TransformPoint(gg.Pt(c1-k*s1, s1+k*c1))
		ctrl2 := m.TransformPoint(gg.Pt(c2+k*s2, s2-k*c2))
		end := m.TransformPoint(gg.Pt(c2, s2))
		if i == n-1 {
			end = to
		}
		p.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, end.X, end.Y)
	}
}
