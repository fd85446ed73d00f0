package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
rows = 32
cols = 16
show_grid = no
document = "/tmp/art.txt"
theme = paper

[notify]
save = true
load = true
error = false

[theme.paper]
Background = #111111
GridLine = silver
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Rows != 32 || cfg.Cols != 16 {
		t.Errorf("Expected 32x16, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.ShowGrid {
		t.Error("Expected show_grid to be false")
	}
	if cfg.Document != "/tmp/art.txt" {
		t.Errorf("Expected document '/tmp/art.txt', got '%s'", cfg.Document)
	}
	if cfg.CanvasWidth != 600 {
		t.Errorf("Expected default canvas width, got %d", cfg.CanvasWidth)
	}
	if !cfg.Notify.Save || !cfg.Notify.Load || cfg.Notify.Error {
		t.Errorf("Unexpected notify settings: %+v", cfg.Notify)
	}

	th, ok := cfg.Themes["paper"]
	if !ok {
		t.Fatal("Expected theme 'paper' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
	if th.GridLine.R != 192 {
		t.Errorf("Unexpected GridLine color: %+v", th.GridLine)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []string{
		"rows = 0\n",
		"cols = 101\n",
		"rows = many\n",
		"show_grid = maybe\n",
		"[notify]\nsave = perhaps\n",
		"[theme.x]\nGridLine = #12\n",
	}
	for _, input := range tests {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("Parse(%q): expected error", input)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `rows = 10
cols = 20
show_grid = true
document = art.txt
theme = custom

[notify]
save = true
load = false
error = true

[theme.custom]
Name = custom
Background = #000000
MessageBackground = #FFFFFF80
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, generated)
	}

	if cfg.Rows != cfg2.Rows || cfg.Cols != cfg2.Cols || cfg.ShowGrid != cfg2.ShowGrid {
		t.Errorf("grid settings mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Document != cfg2.Document || cfg.Theme != cfg2.Theme {
		t.Errorf("path mismatch: %q/%q vs %q/%q", cfg.Document, cfg.Theme, cfg2.Document, cfg2.Theme)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverridePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pc.rc")
	if err := os.WriteFile(path, []byte("rows = 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewLoader("1.0", path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Rows != 7 {
		t.Errorf("Expected rows 7, got %d", cfg.Rows)
	}
}
