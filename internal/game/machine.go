package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/logic-gates/internal/core"
	"github.com/vovakirdan/logic-gates/internal/gates"
	"github.com/vovakirdan/logic-gates/internal/quiz"
	"github.com/vovakirdan/logic-gates/internal/sokoban"
)

// ErrNoLevels is returned by New when the level list is empty.
var ErrNoLevels = errors.New("game: no levels")

// Machine is the screen state machine for one player session. It is not safe
// for concurrent use; each session owns its own Machine.
type Machine struct {
	state    State
	levels   []sokoban.Level
	bank     quiz.Bank
	rng      *rand.Rand
	progress Progress

	grid   *sokoban.Grid // nil until a level is started
	quiz   *quiz.Quiz    // non-nil only in StateQuiz
	lesson gates.Gate    // gate shown in StateLessonView
}

// New creates a machine in the menu with no completed levels. The levels and
// bank must already be validated.
func New(levels []sokoban.Level, bank quiz.Bank, rng *rand.Rand) (*Machine, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if rng == nil {
		return nil, errors.New("game: nil rng")
	}
	for _, l := range levels {
		if len(bank[l.Gate]) == 0 {
			return nil, fmt.Errorf("game: level %q: %w %s", l.Name, quiz.ErrEmptyBank, l.Gate)
		}
	}

	ls := make([]sokoban.Level, len(levels))
	for i, l := range levels {
		ls[i] = l.Clone()
	}
	return &Machine{
		state:    StateMenu,
		levels:   ls,
		bank:     bank,
		rng:      rng,
		progress: NewProgress(len(ls)),
	}, nil
}

// NewDefault creates a machine over the built-in levels and question bank.
func NewDefault(seed int64) (*Machine, error) {
	levels, err := sokoban.LoadLevels()
	if err != nil {
		return nil, err
	}
	bank, err := quiz.LoadBank()
	if err != nil {
		return nil, err
	}
	return New(levels, bank, rand.New(rand.NewSource(seed)))
}

// SetCurrent selects the level Play starts. It does not change the screen.
func (m *Machine) SetCurrent(i int) error {
	if i < 0 || i >= len(m.levels) {
		return fmt.Errorf("game: level %d out of range 1-%d", i+1, len(m.levels))
	}
	m.progress.current = i
	return nil
}

// Handle applies one input to the current state and reports the result.
// Inputs that mean nothing in the current state are ignored.
func (m *Machine) Handle(in core.Input) Transition {
	t := Transition{From: m.state, To: m.state}
	if h, ok := handlers[m.state]; ok {
		h(m, in, &t)
	}
	t.To = m.state
	return t
}

// load parses a fresh grid for level i and makes it current.
func (m *Machine) load(i int, t *Transition) {
	m.progress.current = i
	m.grid = sokoban.MustParse(m.levels[i])
	t.LevelLoaded = true
}

// State returns the current screen.
func (m *Machine) State() State {
	return m.state
}

// Progress returns a copy of the session progress.
func (m *Machine) Progress() Progress {
	return m.progress.clone()
}

// Levels returns the level list.
func (m *Machine) Levels() []sokoban.Level {
	out := make([]sokoban.Level, len(m.levels))
	copy(out, m.levels)
	return out
}

// Level returns the current level definition.
func (m *Machine) Level() sokoban.Level {
	return m.levels[m.progress.current]
}

// Grid returns the grid being played, or nil before the first level starts.
// Callers must treat it as read-only; all moves go through Handle.
func (m *Machine) Grid() *sokoban.Grid {
	return m.grid
}

// Quiz returns the open quiz, or nil outside StateQuiz.
func (m *Machine) Quiz() *quiz.Quiz {
	return m.quiz
}

// Lesson returns the gate shown in the lesson view.
func (m *Machine) Lesson() gates.Gate {
	return m.lesson
}

// Snapshot is a plain copy of the machine state for rendering and logging.
type Snapshot struct {
	State     State
	Current   int
	Completed []int
	Level     string
	Gate      gates.Gate
	Moves     int
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	l := m.Level()
	s := Snapshot{
		State:     m.state,
		Current:   m.progress.current,
		Completed: m.progress.CompletedLevels(),
		Level:     l.Name,
		Gate:      l.Gate,
	}
	if m.grid != nil {
		s.Moves = m.grid.Moves()
	}
	return s
}
