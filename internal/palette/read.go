package palette

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jmylchreest/gplgen/internal/colour"
)

// Decode reads a GIMP palette. Every swatch is returned in Swatches; the
// Columns header and comment lines are skipped.
func Decode(r io.Reader) (*Palette, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read palette: %w", err)
		}
		return nil, fmt.Errorf("empty palette file")
	}
	if strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff")) != formatTag {
		return nil, fmt.Errorf("not a GIMP palette: missing %q header", formatTag)
	}

	p := &Palette{}
	lineNo := 1
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "" || strings.HasPrefix(text, "#"):
			continue
		case strings.HasPrefix(text, "Name:"):
			p.Name = strings.TrimSpace(strings.TrimPrefix(text, "Name:"))
			continue
		case strings.HasPrefix(text, "Columns:"):
			continue
		}

		line, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		p.Swatches = append(p.Swatches, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read palette: %w", err)
	}

	return p, nil
}

// parseLine parses "R G B  Label".
func parseLine(text string) (Line, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return Line{}, fmt.Errorf("invalid swatch %q", text)
	}

	var ch [3]uint8
	for i := range ch {
		n, err := strconv.ParseUint(fields[i], 10, 8)
		if err != nil {
			return Line{}, fmt.Errorf("invalid channel %q in swatch %q", fields[i], text)
		}
		ch[i] = uint8(n)
	}

	return Line{
		RGB:   colour.RGB{R: ch[0], G: ch[1], B: ch[2]},
		Label: strings.Join(fields[3:], " "),
	}, nil
}

// ReadFile reads a GIMP palette file.
func ReadFile(path string) (*Palette, error) {
	f, err := os.Open(path) // #nosec G304 - palette files listed from the palette directory
	if err != nil {
		return nil, fmt.Errorf("failed to open palette: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
