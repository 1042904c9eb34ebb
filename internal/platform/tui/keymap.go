package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyMap binds terminal keys to engine buttons.
// It implements help.KeyMap for the status line.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Rotate     key.Binding
	Drop       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:       binding(cfg.Left, "left"),
		Right:      binding(cfg.Right, "right/ok"),
		Rotate:     binding(cfg.Rotate, "rotate/up"),
		Drop:       binding(cfg.Drop, "drop/down"),
		Quit:       binding(cfg.Quit, "quit"),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("C-s", "screenshot")),
	}
}

// DefaultKeyMap returns the bindings of the built-in configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Button translates a key message to an engine button.
// Returns false for keys that are not bound to a button.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, true
	case key.Matches(msg, k.Right):
		return core.ButtonRight, true
	case key.Matches(msg, k.Rotate):
		return core.ButtonRotate, true
	case key.Matches(msg, k.Drop):
		return core.ButtonDrop, true
	}
	return core.ButtonNone, false
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Drop, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.Drop},
		{k.Screenshot, k.Quit},
	}
}
