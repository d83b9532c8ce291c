package game

import "github.com/vovakirdan/logic-gates/internal/gates"

// Attempt is the outcome of one resolved quiz.
type Attempt struct {
	Level   int // 0-based level index
	Gate    gates.Gate
	Moves   int // moves used to solve the puzzle
	Correct bool
}

// Transition reports the effect of one input.
type Transition struct {
	From, To    State
	Moved       bool // an accepted move
	Solved      bool // the move covered the last target
	LevelLoaded bool // a fresh grid was parsed
	Answered    bool // the quiz took its answer; see Correct
	Correct     bool // the answer was right, valid with Answered
	Cue         Cue
	Attempt     *Attempt // set when a quiz resolved
}

// Changed reports whether the screen changed.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Ignored reports whether the input had no effect at all.
func (t Transition) Ignored() bool {
	return !t.Changed() && !t.Moved && !t.LevelLoaded && !t.Answered && t.Cue == CueNone && t.Attempt == nil
}
