// Package source provides the selections palettes are generated from: SVG
// documents on disk and external selection plugins.
package source

import (
	"context"
	"fmt"

	"github.com/jmylchreest/gplgen/internal/document"
	"github.com/jmylchreest/gplgen/internal/palette"
)

// Source opens a selection and the host that answers questions about it.
type Source interface {
	Open(ctx context.Context) (palette.Host, palette.Selection, error)
	Close() error
}

// DocumentSource selects objects from an SVG file.
type DocumentSource struct {
	// Path is the SVG file, optionally compressed.
	Path string
	// IDs are the selected object ids in selection order.
	IDs []string
	// All selects every shape with an id, in document order, instead of IDs.
	All bool
}

// Open loads the document and resolves the selection. Without ids or All the
// selection is empty.
func (s *DocumentSource) Open(_ context.Context) (palette.Host, palette.Selection, error) {
	doc, err := document.Load(s.Path)
	if err != nil {
		return nil, palette.Selection{}, err
	}

	if s.All {
		return doc.Host(), doc.SelectAll(), nil
	}

	sel, err := doc.Select(s.IDs...)
	if err != nil {
		return nil, palette.Selection{}, fmt.Errorf("failed to select objects in %s: %w", s.Path, err)
	}
	return doc.Host(), sel, nil
}

// Close releases nothing; documents are held in memory.
func (s *DocumentSource) Close() error {
	return nil
}
