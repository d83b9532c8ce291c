package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/logic-gates/internal/game"
)

// KeyMap defines the key bindings of every screen. Which bindings are live
// depends on the current state; see helpKeys.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Back     key.Binding
	Restart  key.Binding
	Play     key.Binding
	Levels   key.Binding
	Lessons  key.Binding
	Number   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play"),
		),
		Levels: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "levels"),
		),
		Lessons: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "lessons"),
		),
		Number: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "pick"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// numberIndex returns the 0-based index of a digit key.
func numberIndex(k string) (int, bool) {
	n, err := strconv.Atoi(k)
	if err != nil || n < 1 || n > 9 {
		return 0, false
	}
	return n - 1, true
}

// helpKeys adapts KeyMap to help.KeyMap for one state.
type helpKeys struct {
	keys     KeyMap
	state    game.State
	answered bool // quiz only
}

// ShortHelp returns key bindings for the short help view.
func (h helpKeys) ShortHelp() []key.Binding {
	k := h.keys
	switch h.state {
	case game.StateMenu:
		return []key.Binding{k.Up, k.Down, k.Select, k.Play, k.Levels, k.Lessons, k.Quit}
	case game.StateLevelSelect, game.StateLessons:
		return []key.Binding{k.Up, k.Down, k.Select, k.Number, k.Back}
	case game.StateLessonView:
		return []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Back}
	case game.StatePlaying:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Back, k.Quit}
	case game.StateQuiz:
		if h.answered {
			return []key.Binding{withHelp(k.Select, "continue"), k.Quit}
		}
		return []key.Binding{k.Up, k.Down, withHelp(k.Select, "answer"), k.Number, k.Quit}
	case game.StateVictory:
		return []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("any key", "menu")), k.Quit}
	}
	return nil
}

// FullHelp returns key bindings for the full help view.
func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp(), {h.keys.Help, h.keys.Quit}}
}

func withHelp(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
