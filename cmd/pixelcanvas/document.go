package main

import (
	"fmt"

	"github.com/example/pixelcanvas/internal/document"
	"github.com/example/pixelcanvas/internal/grid"
)

// readDocument loads and decodes the document at path.
func readDocument(path string) (*grid.Grid, error) {
	if path == "" {
		return nil, fmt.Errorf("document path is required")
	}
	data, err := document.NewFileStore(path).Load()
	if err != nil {
		return nil, err
	}
	g, err := document.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// writeDocument encodes g to path atomically and raises a save notification.
func (r *root) writeDocument(path string, g *grid.Grid) error {
	if err := document.NewFileStore(path).Save(document.Encode(g)); err != nil {
		return err
	}
	r.notifySave(path)
	return nil
}

// validateDimensions mirrors the bounds the grid enforces so flag errors
// name the offending flag.
func validateDimensions(rows, cols int) error {
	if rows < 1 || rows > grid.MaxDimension {
		return fmt.Errorf("-rows must be between 1 and %d, got %d", grid.MaxDimension, rows)
	}
	if cols < 1 || cols > grid.MaxDimension {
		return fmt.Errorf("-cols must be between 1 and %d, got %d", grid.MaxDimension, cols)
	}
	return nil
}
