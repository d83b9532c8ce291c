package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/logic-gates/internal/game"
)

// SoundFor builds the streamer for a cue, or nil for CueNone.
func SoundFor(c game.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case game.CueStep:
		return note(noteA4, 25*time.Millisecond, WaveSine, rate)
	case game.CueBump:
		return note(90, 70*time.Millisecond, WaveSaw, rate)
	case game.CueSolved:
		return beep.Seq(
			note(noteG4, 80*time.Millisecond, WaveSine, rate),
			note(noteC5, 120*time.Millisecond, WaveSine, rate),
		)
	case game.CueCorrect:
		return beep.Seq(
			note(noteC5, 90*time.Millisecond, WaveSine, rate),
			note(noteE5, 90*time.Millisecond, WaveSine, rate),
			note(noteG5, 180*time.Millisecond, WaveSine, rate),
		)
	case game.CueWrong:
		return beep.Seq(
			note(140, 180*time.Millisecond, WaveSquare, rate),
			note(110, 300*time.Millisecond, WaveSquare, rate),
		)
	case game.CueVictory:
		return beep.Seq(
			note(noteC5, 120*time.Millisecond, WaveSquare, rate),
			note(noteE5, 120*time.Millisecond, WaveSquare, rate),
			note(noteG5, 120*time.Millisecond, WaveSquare, rate),
			note(noteC6, 400*time.Millisecond, WaveSine, rate),
		)
	}
	return nil
}

// IsMoveCue reports whether c is one of the per-move sounds that the
// move_sounds setting controls.
func IsMoveCue(c game.Cue) bool {
	return c == game.CueStep || c == game.CueBump
}

// menuTune is the looping menu melody.
func menuTune(rate beep.SampleRate) beep.Streamer {
	return beep.Loop(-1, newMelody([]float64{
		noteC4, noteE4, noteG4, noteC5,
		noteA4, noteG4, noteE4, noteG4,
		noteC4, noteE4, noteG4, noteE5,
		noteC5, noteG4, noteE4, noteC4,
	}, 220*time.Millisecond, rate))
}
