// Package compression provides transparent decompression of input documents.
package compression

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/gplgen/internal/security"
	"github.com/ulikunitz/xz"
)

// MaxDecompressedSize bounds the size of a decompressed document.
const MaxDecompressedSize = 64 * 1024 * 1024

// Format identifies a compression format.
type Format string

const (
	// FormatNone means the data is not compressed.
	FormatNone Format = "none"
	// FormatGzip covers .gz and .svgz files.
	FormatGzip Format = "gzip"
	// FormatXz covers .xz files.
	FormatXz Format = "xz"
	// FormatBzip2 covers .bz2 files.
	FormatBzip2 Format = "bzip2"
)

// DetectFormat determines the compression format from the file name,
// falling back to magic bytes for unknown extensions.
func DetectFormat(data []byte, filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz", ".svgz":
		return FormatGzip
	case ".xz":
		return FormatXz
	case ".bz2":
		return FormatBzip2
	}

	switch {
	case bytes.HasPrefix(data, []byte{0x1f, 0x8b}):
		return FormatGzip
	case bytes.HasPrefix(data, []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}):
		return FormatXz
	case bytes.HasPrefix(data, []byte("BZh")):
		return FormatBzip2
	}

	return FormatNone
}

// Decompress returns the decompressed content of data. Uncompressed data is
// returned unchanged.
func Decompress(data []byte, filename string) ([]byte, error) {
	switch DetectFormat(data, filename) {
	case FormatGzip:
		return decompressGz(data)
	case FormatXz:
		return decompressXz(data)
	case FormatBzip2:
		return decompressBz2(data)
	default:
		return data, nil
	}
}

// decompressGz decompresses gzipped data.
func decompressGz(data []byte) ([]byte, error) {
	gzr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzr.Close()

	return readLimited(gzr, "gzip")
}

// decompressXz decompresses xz-compressed data.
func decompressXz(data []byte) ([]byte, error) {
	xzr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}

	return readLimited(xzr, "xz")
}

// decompressBz2 decompresses bzip2-compressed data.
func decompressBz2(data []byte) ([]byte, error) {
	return readLimited(bzip2.NewReader(bytes.NewReader(data)), "bzip2")
}

func readLimited(r io.Reader, format string) ([]byte, error) {
	out, err := io.ReadAll(security.NewLimitedReader(r, MaxDecompressedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s document: %w", format, err)
	}
	return out, nil
}
