package document

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// ParseTransform parses an SVG transform list such as
// "translate(10,20) rotate(45) scale(2)".
func ParseTransform(s string) (gg.Matrix, error) {
	m := gg.Identity()
	rest := strings.TrimSpace(s)

	for rest != "" {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			return gg.Identity(), fmt.Errorf("invalid transform %q", s)
		}
		closing := strings.IndexByte(rest, ')')
		if closing < open {
			return gg.Identity(), fmt.Errorf("invalid transform %q", s)
		}

		name := strings.TrimSpace(rest[:open])
		args, err := parseNumbers(rest[open+1 : closing])
		if err != nil {
			return gg.Identity(), fmt.Errorf("invalid transform %q: %w", s, err)
		}

		t, err := transformFunc(name, args)
		if err != nil {
			return gg.Identity(), fmt.Errorf("invalid transform %q: %w", s, err)
		}
		m = m.Multiply(t)

		rest = strings.TrimLeft(rest[closing+1:], " \t\r\n,")
	}

	return m, nil
}

func transformFunc(name string, args []float64) (gg.Matrix, error) {
	arity := func(valid ...int) error {
		for _, n := range valid {
			if len(args) == n {
				return nil
			}
		}
		return fmt.Errorf("%s() takes %v arguments, got %d", name, valid, len(args))
	}

	switch name {
	case "matrix":
		if err := arity(6); err != nil {
			return gg.Matrix{}, err
		}
		// SVG lists the column-major a b c d e f.
		return gg.Matrix{
			A: args[0], B: args[2], C: args[4],
			D: args[1], E: args[3], F: args[5],
		}, nil
	case "translate":
		if err := arity(1, 2); err != nil {
			return gg.Matrix{}, err
		}
		if len(args) == 1 {
			return gg.Translate(args[0], 0), nil
		}
		return gg.Translate(args[0], args[1]), nil
	case "scale":
		if err := arity(1, 2); err != nil {
			return gg.Matrix{}, err
		}
		sx, sy := args[0], args[0]
		if len(args) == 2 {
			sy = args[1]
		}
		return gg.Scale(sx, sy), nil
	case "rotate":
		if err := arity(1, 3); err != nil {
			return gg.Matrix{}, err
		}
		r := gg.Rotate(args[0] * math.Pi / 180)
		if len(args) == 3 {
			cx, cy := args[1], args[2]
			return gg.Translate(cx, cy).Multiply(r).Multiply(gg.Translate(-cx, -cy)), nil
		}
		return r, nil
	case "skewX":
		if err := arity(1); err != nil {
			return gg.Matrix{}, err
		}
		return gg.Shear(math.Tan(args[0]*math.Pi/180), 0), nil
	case "skewY":
		if err := arity(1); err != nil {
			return gg.Matrix{}, err
		}
		return gg.Shear(0, math.Tan(args[0]*math.Pi/180)), nil
	default:
		return gg.Matrix{}, fmt.Errorf("unknown transform %q", name)
	}
}
