// Package audio plays the sound cues emitted by the game state machine and
// the menu music, synthesized with beep.
package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/logic-gates/internal/config"
	"github.com/vovakirdan/logic-gates/internal/game"
)

const sampleRate = beep.SampleRate(48000)

// Player turns cues into sound.
type Player interface {
	Play(c game.Cue)
	// SetMenuMusic starts or stops the looping menu tune.
	SetMenuMusic(on bool)
	Close()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Play(game.Cue)     {}
func (Nop) SetMenuMusic(bool) {}
func (Nop) Close()            {}

var _ Player = Nop{}

// ErrAlreadyOpen is returned when a second Speaker is opened in one process.
var ErrAlreadyOpen = errors.New("audio: speaker already open")

var (
	speakerMu   sync.Mutex
	speakerOpen bool
)

// Speaker plays through the local sound device. Only one can be open per
// process because the beep speaker is global.
type Speaker struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	mixer  *beep.Mixer
	music  *beep.Ctrl
	closed bool
}

var _ Player = (*Speaker)(nil)

// Open initializes the speaker. Callers fall back to Nop on error.
func Open(cfg config.AudioConfig) (*Speaker, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerOpen {
		return nil, ErrAlreadyOpen
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}

	s := &Speaker{cfg: cfg, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	speakerOpen = true
	return s, nil
}

// New returns a Speaker when audio is enabled and the device opens, and Nop
// otherwise. The error reports why audio is off, if it was meant to be on.
func New(cfg config.AudioConfig) (Player, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}
	s, err := Open(cfg)
	if err != nil {
		return Nop{}, err
	}
	return s, nil
}

// Play mixes in the sound for c.
func (s *Speaker) Play(c game.Cue) {
	if IsMoveCue(c) && !s.cfg.MoveSounds {
		return
	}
	snd := SoundFor(c, sampleRate)
	if snd == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	s.mixer.Add(withVolume(snd, s.cfg.Volume))
	speaker.Unlock()
}

// SetMenuMusic starts or pauses the menu loop. Starting while it plays is a
// no-op.
func (s *Speaker) SetMenuMusic(on bool) {
	if !s.cfg.MenuMusic {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if s.music == nil {
		if !on {
			return
		}
		s.music = &beep.Ctrl{Streamer: menuTune(sampleRate)}
		s.mixer.Add(withVolume(s.music, s.cfg.Volume*0.5))
		return
	}
	s.music.Paused = !on
}

// Close silences everything. The device itself stays initialized.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	if s.music != nil {
		s.music.Paused = true
	}
	s.mixer.Clear()
	speaker.Unlock()

	speakerMu.Lock()
	speakerOpen = false
	speakerMu.Unlock()
}
