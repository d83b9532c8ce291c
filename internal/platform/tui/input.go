package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/logic-gates/internal/core"
	"github.com/vovakirdan/logic-gates/internal/game"
	"github.com/vovakirdan/logic-gates/internal/gates"
)

// menuItem is one entry of the main menu.
type menuItem struct {
	Title string
	Input core.Input
	Quit  bool
}

var menuItems = []menuItem{
	{Title: "Play", Input: core.Press(core.ActionPlay)},
	{Title: "Select Level", Input: core.Press(core.ActionSelectLevels)},
	{Title: "Lessons", Input: core.Press(core.ActionLessons)},
	{Title: "Quit", Quit: true},
}

// keyInput translates a key into a machine input for the current state,
// moving the list cursor on the way. quit reports a quit request from the
// menu's Quit entry.
func (m *Model) keyInput(msg tea.KeyMsg) (in core.Input, quit bool) {
	k := m.keys

	switch m.machine.State() {
	case game.StateMenu:
		switch {
		case key.Matches(msg, k.Up):
			m.moveCursor(-1, len(menuItems))
		case key.Matches(msg, k.Down):
			m.moveCursor(1, len(menuItems))
		case key.Matches(msg, k.Select):
			item := menuItems[m.cursor]
			return item.Input, item.Quit
		case key.Matches(msg, k.Play):
			return core.Press(core.ActionPlay), false
		case key.Matches(msg, k.Levels):
			return core.Press(core.ActionSelectLevels), false
		case key.Matches(msg, k.Lessons):
			return core.Press(core.ActionLessons), false
		}

	case game.StateLevelSelect:
		return m.listInput(msg, len(m.machine.Levels())), false

	case game.StateLessons:
		return m.listInput(msg, gates.Count()), false

	case game.StateLessonView:
		if key.Matches(msg, k.Back) {
			return core.Press(core.ActionBack), false
		}

	case game.StatePlaying:
		switch {
		case key.Matches(msg, k.Up):
			return core.Press(core.ActionUp), false
		case key.Matches(msg, k.Down):
			return core.Press(core.ActionDown), false
		case key.Matches(msg, k.Left):
			return core.Press(core.ActionLeft), false
		case key.Matches(msg, k.Right):
			return core.Press(core.ActionRight), false
		case key.Matches(msg, k.Restart):
			return core.Press(core.ActionRestart), false
		case key.Matches(msg, k.Back):
			return core.Press(core.ActionBack), false
		}

	case game.StateQuiz:
		q := m.machine.Quiz()
		if q.Answered() {
			if key.Matches(msg, k.Select) {
				return core.Press(core.ActionContinue), false
			}
			return core.Input{}, false
		}
		n := len(q.Question().Options)
		switch {
		case key.Matches(msg, k.Up):
			m.moveCursor(-1, n)
		case key.Matches(msg, k.Down):
			m.moveCursor(1, n)
		case key.Matches(msg, k.Select):
			return core.Pick(core.ActionAnswer, m.cursor), false
		case key.Matches(msg, k.Number):
			if i, ok := numberIndex(msg.String()); ok && i < n {
				m.cursor = i
				return core.Pick(core.ActionAnswer, i), false
			}
		}

	case game.StateVictory:
		return core.Press(core.ActionContinue), false
	}

	return core.Input{}, false
}

// listInput handles the level and lesson lists, which share their keys.
func (m *Model) listInput(msg tea.KeyMsg, n int) core.Input {
	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		m.moveCursor(-1, n)
	case key.Matches(msg, k.Down):
		m.moveCursor(1, n)
	case key.Matches(msg, k.Select):
		return core.Pick(core.ActionChoose, m.cursor)
	case key.Matches(msg, k.Number):
		if i, ok := numberIndex(msg.String()); ok {
			return core.Pick(core.ActionChoose, i)
		}
	case key.Matches(msg, k.Back):
		return core.Press(core.ActionBack)
	}
	return core.Input{}
}

func (m *Model) moveCursor(delta, n int) {
	m.cursor = core.Clamp(m.cursor+delta, 0, n-1)
}
