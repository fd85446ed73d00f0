package appstate

import (
	"fmt"
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// shortcuts maps key combinations to window action names.
var shortcuts = func() map[KeyShortcut]string {
	m := map[KeyShortcut]string{
		{Rune: 'd'}:                            "tool-draw",
		{Rune: 'e'}:                            "tool-erase",
		{Rune: 'f'}:                            "tool-fill",
		{Rune: 'c'}:                            "clear",
		{Rune: 'g'}:                            "grid",
		{Rune: 'q'}:                            "quit",
		{Rune: 's', Modifiers: key.ModControl}: "save",
		{Rune: 'o', Modifiers: key.ModControl}: "load",
		{Rune: 'c', Modifiers: key.ModControl}: "copy",
		{Rune: 'v', Modifiers: key.ModControl}: "paste",
	}
	for i := range palette {
		m[KeyShortcut{Rune: rune('1' + i)}] = colorAction(i)
	}
	return m
}()

func colorAction(idx int) string { return fmt.Sprintf("color-%d", idx+1) }

// lookupShortcut returns the action bound to e. Shift and other modifiers
// besides Control are ignored.
func lookupShortcut(e key.Event) (string, bool) {
	ks := KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers & key.ModControl}
	if e.Rune <= 0 {
		ks = KeyShortcut{Code: e.Code, Modifiers: ks.Modifiers}
	}
	action, ok := shortcuts[ks]
	return action, ok
}

// ShortcutHelp lists the window shortcuts for the help text.
func ShortcutHelp() []string {
	return []string{
		"d/e/f    draw, erase, fill",
		"c        clear the grid",
		fmt.Sprintf("1-%d      pick palette color", len(palette)),
		"g        toggle grid lines",
		"Ctrl+S   save",
		"Ctrl+O   load",
		"Ctrl+C   copy document to clipboard",
		"Ctrl+V   paste document from clipboard",
		"q        quit",
	}
}
