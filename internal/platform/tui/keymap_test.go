package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultKeyMapButtons(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Button
	}{
		{"a", runeKey("a"), core.ButtonLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ButtonLeft},
		{"d", runeKey("d"), core.ButtonRight},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ButtonRight},
		{"w", runeKey("w"), core.ButtonRotate},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ButtonRotate},
		{"s", runeKey("s"), core.ButtonDrop},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ButtonDrop},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := km.Button(tc.msg)
			if !ok || got != tc.want {
				t.Errorf("Button(%q) = %v, %v; want %v", tc.msg.String(), got, ok, tc.want)
			}
		})
	}
}

func TestKeyMapUnboundKeys(t *testing.T) {
	km := DefaultKeyMap()

	for _, msg := range []tea.KeyMsg{runeKey("x"), runeKey("q"), {Type: tea.KeyCtrlC}} {
		if b, ok := km.Button(msg); ok {
			t.Errorf("Button(%q) = %v, want unbound", msg.String(), b)
		}
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	km := NewKeyMap(config.KeysConfig{
		Left:   []string{"h"},
		Right:  []string{"l"},
		Rotate: []string{"k"},
		Drop:   []string{"j"},
		Quit:   []string{"x"},
	})

	if b, _ := km.Button(runeKey("h")); b != core.ButtonLeft {
		t.Errorf("h = %v, want Left", b)
	}
	if b, _ := km.Button(runeKey("j")); b != core.ButtonDrop {
		t.Errorf("j = %v, want Drop", b)
	}
	if _, ok := km.Button(runeKey("a")); ok {
		t.Error("a should be unbound after remapping")
	}
	if got := km.Left.Help().Key; got != "h" {
		t.Errorf("help key = %q, want h", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings, want 5", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 2 {
		t.Errorf("FullHelp() has %d groups, want 2", len(km.FullHelp()))
	}
}
