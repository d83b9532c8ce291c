package core

// Action represents a semantic input, abstracted from physical key presses.
// The state machine consumes actions; the platform maps keys onto them.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // Arrow up / w - move up
	ActionDown                // Arrow down / s - move down
	ActionLeft                // Arrow left / a - move left
	ActionRight               // Arrow right / d - move right
	ActionRestart             // R - re-parse the current level
	ActionBack                // Esc / b - leave the current screen
	ActionPlay                // Menu: play the current level
	ActionSelectLevels        // Menu: open level select
	ActionLessons             // Menu: open lesson list
	ActionChoose              // Pick entry Index (level or gate)
	ActionAnswer              // Pick quiz option Index
	ActionContinue            // Resolve an answered quiz
	ActionQuit                // Q, Ctrl+C - exit (platform only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionPlay:
		return "Play"
	case ActionSelectLevels:
		return "SelectLevels"
	case ActionLessons:
		return "Lessons"
	case ActionChoose:
		return "Choose"
	case ActionAnswer:
		return "Answer"
	case ActionContinue:
		return "Continue"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Dir returns the movement direction for a directional action.
// ok is false for every non-directional action.
func (a Action) Dir() (d Dir, ok bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Input is one discrete input event delivered to the state machine.
// Index is only meaningful for ActionChoose and ActionAnswer.
type Input struct {
	Action Action
	Index  int
}

// Press builds an Input for an action without an index.
func Press(a Action) Input {
	return Input{Action: a}
}

// Pick builds an indexed Input.
func Pick(a Action, index int) Input {
	return Input{Action: a, Index: index}
}
