package compression

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/ulikunitz/xz"
)

const sample = `<svg xmlns="http://www.w3.org/2000/svg"><rect id="r" style="fill:#ff0000"/></svg>`

func gzipped(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(data)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func xzipped(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := w.Write([]byte(data)); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	return buf.Bytes()
}

func TestDecompress(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		filename string
	}{
		{name: "plain", data: []byte(sample), filename: "drawing.svg"},
		{name: "svgz", data: gzipped(t, sample), filename: "drawing.svgz"},
		{name: "gz", data: gzipped(t, sample), filename: "drawing.svg.gz"},
		{name: "gzip by magic", data: gzipped(t, sample), filename: "drawing"},
		{name: "xz", data: xzipped(t, sample), filename: "drawing.svg.xz"},
		{name: "xz by magic", data: xzipped(t, sample), filename: "drawing.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompress(tt.data, tt.filename)
			if err != nil {
				t.Fatalf("Decompress() error = %v", err)
			}
			if string(got) != sample {
				t.Errorf("Decompress() = %q, want %q", got, sample)
			}
		})
	}
}

func TestDecompressCorrupt(t *testing.T) {
	if _, err := Decompress([]byte("not gzip at all"), "drawing.svgz"); err == nil {
		t.Error("Decompress() expected error for corrupt gzip data")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		data     []byte
		want     Format
	}{
		{filename: "a.svg", data: []byte("<svg/>"), want: FormatNone},
		{filename: "a.SVGZ", want: FormatGzip},
		{filename: "a.svg.bz2", want: FormatBzip2},
		{filename: "a", data: []byte("BZh91AY"), want: FormatBzip2},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := DetectFormat(tt.data, tt.filename); got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}
