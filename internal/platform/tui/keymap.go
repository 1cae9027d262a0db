package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Start key.Binding
	Stop  key.Binding
	Quit  key.Binding
}

// NewKeyMap builds the bindings from configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:  newBinding(cfg.Left, "left"),
		Right: newBinding(cfg.Right, "right"),
		Up:    newBinding(cfg.Up, "up"),
		Down:  newBinding(cfg.Down, "down"),
		Start: newBinding(cfg.Start, "start"),
		Stop:  newBinding(cfg.Stop, "stop"),
		Quit:  newBinding(cfg.Quit, "quit"),
	}
}

// DefaultKeyMap returns the bindings of the built-in configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func newBinding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keyLabel(keys), desc),
	)
}

// keyLabel joins key names for help text, spelling out the space bar.
func keyLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, "/")
}

// StartLabel returns the name of the first start key for on-screen prompts.
func (k KeyMap) StartLabel() string {
	keys := k.Start.Keys()
	if len(keys) == 0 {
		return ""
	}
	return strings.ToUpper(keyLabel(keys[:1]))
}

// Action returns the action bound to a key, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Stop):
		return core.ActionStop
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Start, k.Stop, k.Quit},
	}
}
