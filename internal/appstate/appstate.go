package appstate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/pixelcanvas/internal/grid"
)

var (
	// ErrNotMode is returned when an action tool is offered as the current mode.
	ErrNotMode = errors.New("tool is an action, not a mode")
	// ErrOutOfBounds is shared with the grid so callers test a single sentinel.
	ErrOutOfBounds = grid.ErrOutOfBounds
)

type Tool int

const (
	ToolDraw Tool = iota
	ToolErase
	ToolFill
	ToolClear
	ToolSave
	ToolLoad
)

var toolNames = []string{"Draw", "Erase", "Fill", "Clear", "Save", "Load"}

// Tools returns every tool in toolbar order.
func Tools() []Tool {
	return []Tool{ToolDraw, ToolErase, ToolFill, ToolClear, ToolSave, ToolLoad}
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return "Tool(" + strconv.Itoa(int(t)) + ")"
	}
	return toolNames[t]
}

// IsMode reports whether t stays selected after use. Clear, Save and Load
// are one-shot actions.
func (t Tool) IsMode() bool {
	return t == ToolDraw || t == ToolErase || t == ToolFill
}

// ParseTool looks a tool up by name, ignoring case.
func ParseTool(name string) (Tool, error) {
	for i, n := range toolNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

const defaultColorIndex = 0

// PaletteColor is a palette entry with its display name.
type PaletteColor struct {
	Name  string
	Color grid.Color
}

var palette = []PaletteColor{
	{"Black", grid.Color{R: 0, G: 0, B: 0}},
	{"White", grid.Color{R: 255, G: 255, B: 255}},
	{"Red", grid.Color{R: 255, G: 0, B: 0}},
	{"Green", grid.Color{R: 0, G: 255, B: 0}},
	{"Blue", grid.Color{R: 0, G: 0, B: 255}},
	{"Yellow", grid.Color{R: 255, G: 255, B: 0}},
	{"Orange", grid.Color{R: 255, G: 165, B: 0}},
}

// DefaultColorIndex returns the palette index selected at startup.
func DefaultColorIndex() int { return defaultColorIndex }

// Palette returns a copy of the drawing colors in display order.
func Palette() []grid.Color {
	out := make([]grid.Color, len(palette))
	for i, p := range palette {
		out[i] = p.Color
	}
	return out
}

// PaletteColors returns palette entries annotated with their display names.
func PaletteColors() []PaletteColor {
	out := make([]PaletteColor, len(palette))
	copy(out, palette)
	return out
}

// PaletteLen returns the number of palette entries.
func PaletteLen() int { return len(palette) }

// ParseColor resolves a palette entry by name or by index.
func ParseColor(name string) (int, error) {
	name = strings.TrimSpace(name)
	if idx, err := strconv.Atoi(name); err == nil {
		if idx < 0 || idx >= len(palette) {
			return 0, fmt.Errorf("palette index %d: %w", idx, ErrOutOfBounds)
		}
		return idx, nil
	}
	for i, p := range palette {
		if strings.EqualFold(p.Name, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q is not a palette color", name)
}

// ToolState holds the current mode tool and palette selection.
type ToolState struct {
	tool     Tool
	colorIdx int
}

// NewToolState returns the startup selection: Draw with black.
func NewToolState() *ToolState {
	return &ToolState{tool: ToolDraw, colorIdx: defaultColorIndex}
}

// SetTool makes t the current mode. Action tools are rejected and leave the
// current mode in place.
func (s *ToolState) SetTool(t Tool) error {
	if !t.IsMode() {
		return fmt.Errorf("%v: %w", t, ErrNotMode)
	}
	s.tool = t
	return nil
}

// CurrentTool returns the current mode.
func (s *ToolState) CurrentTool() Tool { return s.tool }

// SetColor selects palette entry idx.
func (s *ToolState) SetColor(idx int) error {
	if idx < 0 || idx >= len(palette) {
		return fmt.Errorf("palette index %d of %d: %w", idx, len(palette), ErrOutOfBounds)
	}
	s.colorIdx = idx
	return nil
}

// ColorIndex returns the selected palette index.
func (s *ToolState) ColorIndex() int { return s.colorIdx }

// CurrentColor returns the selected palette color.
func (s *ToolState) CurrentColor() grid.Color { return palette[s.colorIdx].Color }
