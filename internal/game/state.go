// Package game sequences the screens of the puzzle: menu, level select,
// lessons, play, quiz and victory. It performs no I/O; every input returns a
// Transition describing what changed so the presentation layer can react.
package game

// State is the current screen.
type State int

const (
	StateMenu State = iota
	StateLevelSelect
	StateLessons
	StateLessonView
	StatePlaying
	StateQuiz
	StateVictory
)

var stateNames = [...]string{
	StateMenu:        "menu",
	StateLevelSelect: "level_select",
	StateLessons:     "lessons",
	StateLessonView:  "lesson_view",
	StatePlaying:     "playing",
	StateQuiz:        "quiz",
	StateVictory:     "victory",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Cue names the sound the presentation layer should play for a transition.
type Cue int

const (
	CueNone Cue = iota
	CueStep    // accepted move
	CueBump    // rejected move
	CueSolved  // every target covered
	CueCorrect // quiz passed, next level
	CueWrong   // quiz failed, level restarts
	CueVictory // quiz passed on the last level
)

func (c Cue) String() string {
	switch c {
	case CueStep:
		return "step"
	case CueBump:
		return "bump"
	case CueSolved:
		return "solved"
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	case CueVictory:
		return "victory"
	default:
		return "none"
	}
}
