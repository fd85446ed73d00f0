package appstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/mobile/event/key"
)

func TestLookupShortcut(t *testing.T) {
	tests := []struct {
		ev   key.Event
		want string
	}{
		{key.Event{Rune: 'd'}, "tool-draw"},
		{key.Event{Rune: 'E', Modifiers: key.ModShift}, "tool-erase"},
		{key.Event{Rune: 'f'}, "tool-fill"},
		{key.Event{Rune: 'c'}, "clear"},
		{key.Event{Rune: 'c', Modifiers: key.ModControl}, "copy"},
		{key.Event{Rune: 's', Modifiers: key.ModControl}, "save"},
		{key.Event{Rune: 'o', Modifiers: key.ModControl}, "load"},
		{key.Event{Rune: '3'}, "color-3"},
		{key.Event{Rune: '7'}, "color-7"},
		{key.Event{Rune: 'q'}, "quit"},
	}
	for _, tt := range tests {
		got, ok := lookupShortcut(tt.ev)
		assert.True(t, ok, "%+v", tt.ev)
		assert.Equal(t, tt.want, got)
	}
}

func TestLookupShortcutUnbound(t *testing.T) {
	for _, ev := range []key.Event{{Rune: '8'}, {Rune: 'z'}, {Rune: -1, Code: key.CodeEscape}} {
		_, ok := lookupShortcut(ev)
		assert.False(t, ok, "%+v", ev)
	}
}
