package game

import (
	"github.com/vovakirdan/logic-gates/internal/core"
	"github.com/vovakirdan/logic-gates/internal/gates"
	"github.com/vovakirdan/logic-gates/internal/quiz"
)

// handler applies an input in one state. It updates m and fills t; Handle
// sets t.To afterwards.
type handler func(m *Machine, in core.Input, t *Transition)

var handlers = map[State]handler{
	StateMenu:        handleMenu,
	StateLevelSelect: handleLevelSelect,
	StateLessons:     handleLessons,
	StateLessonView:  handleLessonView,
	StatePlaying:     handlePlaying,
	StateQuiz:        handleQuiz,
	StateVictory:     handleVictory,
}

func handleMenu(m *Machine, in core.Input, t *Transition) {
	switch in.Action {
	case core.ActionPlay:
		m.load(m.progress.current, t)
		m.state = StatePlaying
	case core.ActionSelectLevels:
		m.state = StateLevelSelect
	case core.ActionLessons:
		m.state = StateLessons
	}
}

func handleLevelSelect(m *Machine, in core.Input, t *Transition) {
	switch in.Action {
	case core.ActionChoose:
		if in.Index < 0 || in.Index >= len(m.levels) {
			return
		}
		m.load(in.Index, t)
		m.state = StatePlaying
	case core.ActionBack:
		m.state = StateMenu
	}
}

func handleLessons(m *Machine, in core.Input, _ *Transition) {
	switch in.Action {
	case core.ActionChoose:
		g, ok := gates.At(in.Index)
		if !ok {
			return
		}
		m.lesson = g
		m.state = StateLessonView
	case core.ActionBack:
		m.state = StateMenu
	}
}

func handleLessonView(m *Machine, in core.Input, _ *Transition) {
	if in.Action == core.ActionBack {
		m.state = StateLessons
	}
}

func handlePlaying(m *Machine, in core.Input, t *Transition) {
	if d, ok := in.Action.Dir(); ok {
		if !m.grid.MovePlayer(d) {
			t.Cue = CueBump
			return
		}
		t.Moved = true
		t.Cue = CueStep
		if m.grid.CheckWin() {
			m.openQuiz(t)
		}
		return
	}

	switch in.Action {
	case core.ActionRestart:
		m.load(m.progress.current, t)
	case core.ActionBack:
		m.state = StateMenu
	}
}

func (m *Machine) openQuiz(t *Transition) {
	q, err := quiz.New(m.bank, m.Level().Gate, m.rng)
	if err != nil {
		// New rejects banks without a question for every level gate.
		panic(err)
	}
	m.quiz = q
	m.state = StateQuiz
	t.Solved = true
	t.Cue = CueSolved
}

func handleQuiz(m *Machine, in core.Input, t *Transition) {
	switch in.Action {
	case core.ActionAnswer:
		if correct, ok := m.quiz.Choose(in.Index); ok {
			t.Answered, t.Correct = true, correct
		}
	case core.ActionContinue:
		if !m.quiz.Answered() {
			return
		}
		m.resolveQuiz(t)
	}
}

// resolveQuiz advances on a correct answer and replays the level otherwise.
func (m *Machine) resolveQuiz(t *Transition) {
	cur := m.progress.current
	t.Attempt = &Attempt{
		Level:   cur,
		Gate:    m.quiz.Gate(),
		Moves:   m.grid.Moves(),
		Correct: m.quiz.Correct(),
	}
	m.quiz = nil

	if !t.Attempt.Correct {
		t.Cue = CueWrong
		m.load(cur, t)
		m.state = StatePlaying
		return
	}

	m.progress.complete(cur)
	if m.progress.Last() {
		t.Cue = CueVictory
		m.state = StateVictory
		return
	}
	t.Cue = CueCorrect
	m.load(cur+1, t)
	m.state = StatePlaying
}

func handleVictory(m *Machine, in core.Input, _ *Transition) {
	if in.Action != core.ActionNone {
		m.state = StateMenu
	}
}
