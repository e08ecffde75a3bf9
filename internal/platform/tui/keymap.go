package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// GameKeyMap holds the in-game key bindings.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Pause, k.Restart, k.Back, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Pause, k.Restart},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns WASD plus arrow bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "W", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "S", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "A", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("d/→", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f", "F", " "),
			key.WithHelp("f/space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game commands.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a command.
// A single unbound character becomes an unrecognized command carrying the
// raw text, so the game can report it; other unbound keys map to nothing.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Command, bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.Command{Action: core.ActionQuit}, true
	case key.Matches(msg, k.Up):
		return core.Command{Action: core.ActionUp, Raw: msg.String()}, true
	case key.Matches(msg, k.Down):
		return core.Command{Action: core.ActionDown, Raw: msg.String()}, true
	case key.Matches(msg, k.Left):
		return core.Command{Action: core.ActionLeft, Raw: msg.String()}, true
	case key.Matches(msg, k.Right):
		return core.Command{Action: core.ActionRight, Raw: msg.String()}, true
	case key.Matches(msg, k.Fire):
		return core.Command{Action: core.ActionFire, Raw: msg.String()}, true
	case key.Matches(msg, k.Pause):
		return core.Command{Action: core.ActionPause, Raw: msg.String()}, true
	case key.Matches(msg, k.Restart):
		return core.Command{Action: core.ActionRestart}, true
	case key.Matches(msg, k.Back):
		return core.Command{Action: core.ActionBack}, true
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return core.Command{Action: core.ActionNone, Raw: string(msg.Runes)}, true
	}
	return core.Command{}, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
