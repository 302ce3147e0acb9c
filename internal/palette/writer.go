package palette

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Writer writes palettes into a palette directory.
type Writer struct {
	// Dir is the palette directory.
	Dir string
	// Replace allows existing palette files to be overwritten.
	Replace bool

	logger hclog.Logger
}

// NewWriter creates a Writer for dir. A nil logger discards log output.
func NewWriter(dir string, replace bool, logger hclog.Logger) *Writer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Writer{
		Dir:     dir,
		Replace: replace,
		logger:  logger.Named("writer"),
	}
}

// Path returns the file a palette with the given name is written to.
func (w *Writer) Path(name string) (string, error) {
	file, err := FileName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(w.Dir, file), nil
}

// Check returns the target path, or an abort when the target exists and
// replacing is not allowed.
func (w *Writer) Check(name string) (string, error) {
	path, err := w.Path(name)
	if err != nil {
		return "", err
	}

	if w.Replace {
		return path, nil
	}

	_, err = os.Stat(path)
	switch {
	case err == nil:
		w.logger.Debug("palette exists", "path", path)
		return "", abort(ErrPaletteExists, MsgPaletteExists)
	case errors.Is(err, fs.ErrNotExist):
		return path, nil
	default:
		return "", fmt.Errorf("failed to stat palette file: %w", err)
	}
}

// Write writes the palette and returns the path written. The file is either
// fully written or left untouched: content goes to a temporary file in the
// same directory which is then renamed over the target.
func (w *Writer) Write(p *Palette) (path string, err error) {
	path, err = w.Check(p.Name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.Dir, 0o755); err != nil { // #nosec G301 - palette directory is shared with Inkscape
		return "", fmt.Errorf("failed to create palette directory: %w", err)
	}

	tmp, err := os.CreateTemp(w.Dir, ".gplgen-*"+Extension)
	if err != nil {
		return "", fmt.Errorf("failed to create palette file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	n, writeErr := p.WriteTo(tmp)
	closeErr := tmp.Close()
	if writeErr != nil {
		return "", fmt.Errorf("failed to write palette file: %w", writeErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("failed to close palette file: %w", closeErr)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil { // #nosec G302 - palette files are world readable like Inkscape's own
		return "", fmt.Errorf("failed to set palette file permissions: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to write palette file: %w", err)
	}

	w.logger.Debug("palette written", "path", path, "bytes", n, "swatches", len(p.Lines()))
	return path, nil
}
