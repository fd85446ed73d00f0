package config

import (
	"fmt"
	"image/color"
	"reflect"
	"sort"
	"strings"

	"github.com/example/pixelcanvas/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save  bool
	Load  bool
	Error bool
}

// Config holds the application configuration.
type Config struct {
	Rows         int
	Cols         int
	ShowGrid     bool
	CanvasWidth  int
	CanvasHeight int
	Document     string
	Theme        string
	Notify       Notify
	Themes       map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Rows:         50,
		Cols:         50,
		ShowGrid:     true,
		CanvasWidth:  600,
		CanvasHeight: 600,
		Document:     "pixelcanvas.txt",
		Theme:        "", // empty so flag and environment can take over
		Notify: Notify{
			Save:  false,
			Load:  false,
			Error: true,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "rows = %d\n", c.Rows)
	fmt.Fprintf(&sb, "cols = %d\n", c.Cols)
	fmt.Fprintf(&sb, "show_grid = %v\n", c.ShowGrid)
	fmt.Fprintf(&sb, "canvas_width = %d\n", c.CanvasWidth)
	fmt.Fprintf(&sb, "canvas_height = %d\n", c.CanvasHeight)
	if c.Document != "" {
		fmt.Fprintf(&sb, "document = %s\n", c.Document)
	}
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "load = %v\n", c.Notify.Load)
	fmt.Fprintf(&sb, "error = %v\n", c.Notify.Error)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		val := reflect.ValueOf(t).Elem()
		typ := val.Type()
		for i := 0; i < typ.NumField(); i++ {
			if col, ok := val.Field(i).Interface().(color.RGBA); ok {
				fmt.Fprintf(&sb, "%s: %s\n", typ.Field(i).Name, theme.Hex(col))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
