// Package security provides input validation and resource limits for gplgen.
package security

import (
	"fmt"
	"io"
	"strings"
)

// ValidatePaletteName validates a palette name before it is turned into a
// file name inside the palette directory.
func ValidatePaletteName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("empty palette name")
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("palette name cannot contain path separators: %q", name)
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("palette name contains directory traversal (..) - not allowed")
	}

	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("palette name contains a NUL byte")
	}

	return nil
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// This prevents decompression bomb attacks when loading compressed documents.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, fmt.Errorf("decompression size limit exceeded")
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
