package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/logic-gates/internal/audio"
	"github.com/vovakirdan/logic-gates/internal/config"
	"github.com/vovakirdan/logic-gates/internal/core"
	"github.com/vovakirdan/logic-gates/internal/game"
	"github.com/vovakirdan/logic-gates/internal/gates"
	"github.com/vovakirdan/logic-gates/internal/storage"
)

const lessonWrap = 72

// Options configures a Model. Zero values pick quiet defaults.
type Options struct {
	Machine   *game.Machine
	Store     *storage.Store // nil disables the attempt log
	Audio     audio.Player   // nil is silent
	Logger    *log.Logger    // nil discards
	SessionID string         // empty generates one
	Theme     config.ThemeConfig
	Renderer  *lipgloss.Renderer
	TickRate  int
	Width     int
	Height    int
}

// Model is the Bubble Tea model for one player session. It owns the input
// mapping, rendering and side effects; every game rule lives in game.Machine.
type Model struct {
	machine   *game.Machine
	store     *storage.Store
	audio     audio.Player
	logger    *log.Logger
	sessionID string

	theme    Theme
	keys     KeyMap
	help     help.Model
	lesson   viewport.Model
	markdown *glamour.TermRenderer

	spring    harmonica.Spring
	bannerPos float64
	bannerVel float64

	cursor   int
	tickRate int
	width    int
	height   int
	quitting bool
}

// NewModel creates a model around an existing state machine.
func NewModel(opts Options) Model {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(lessonWrap),
	)
	if err != nil {
		opts.Logger.Warn("markdown renderer unavailable", "error", err)
		renderer = nil
	}

	h := help.New()
	h.Width = opts.Width

	m := Model{
		machine:   opts.Machine,
		store:     opts.Store,
		audio:     opts.Audio,
		logger:    opts.Logger,
		sessionID: opts.SessionID,
		theme:     NewTheme(opts.Theme, opts.Renderer),
		keys:      DefaultKeyMap(),
		help:      h,
		markdown:  renderer,
		spring:    harmonica.NewSpring(harmonica.FPS(opts.TickRate), 6.0, 0.5),
		tickRate:  opts.TickRate,
	}
	m.resize(opts.Width, opts.Height)
	if m.machine.State() == game.StateLevelSelect {
		m.cursor = m.machine.Progress().Current()
	}
	return m
}

// Init starts the menu music and the frame tick.
func (m Model) Init() tea.Cmd {
	m.audio.SetMenuMusic(m.machine.State() == game.StateMenu)
	m.logger.Info("session started", "session", m.sessionID)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.animate()
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	vw, vh := min(w-4, lessonWrap+4), h-6
	if m.lesson.Width == 0 {
		m.lesson = viewport.New(max(vw, 10), max(vh, 3))
		return
	}
	m.lesson.Width = max(vw, 10)
	m.lesson.Height = max(vh, 3)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// The lesson viewport owns scrolling keys.
	if m.machine.State() == game.StateLessonView && !key.Matches(msg, m.keys.Back) {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.lesson.LineUp(1)
		case key.Matches(msg, m.keys.Down):
			m.lesson.LineDown(1)
		default:
			var cmd tea.Cmd
			m.lesson, cmd = m.lesson.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	in, quit := m.keyInput(msg)
	if quit {
		return m.quit()
	}
	if in.Action != core.ActionNone {
		m.apply(in)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.audio.SetMenuMusic(false)
	snap := m.machine.Snapshot()
	kv := []any{"session", m.sessionID, "state", snap.State, "completed", len(snap.Completed)}
	if m.store != nil {
		attempts, err := m.store.SessionAttempts(m.sessionID)
		if err != nil {
			m.logger.Warn("could not read session attempts", "error", err)
		} else {
			passed := 0
			for _, a := range attempts {
				if a.Correct {
					passed++
				}
			}
			kv = append(kv, "attempts", len(attempts), "passed", passed)
		}
	}
	m.logger.Info("session ended", kv...)
	return m, tea.Quit
}

// apply feeds one input to the machine and performs the side effects of the
// resulting transition.
func (m *Model) apply(in core.Input) game.Transition {
	tr := m.machine.Handle(in)
	if tr.Ignored() {
		return tr
	}

	if tr.Changed() {
		m.logger.Debug("transition", "action", in.Action, "from", tr.From, "to", tr.To)
	}
	if tr.Answered {
		m.logger.Debug("quiz answer", "gate", m.machine.Quiz().Gate(), "correct", tr.Correct)
	}
	if tr.Solved {
		g := m.machine.Grid()
		m.logger.Info("level solved", "level", g.Name(), "moves", g.Moves())
	}
	if tr.Cue != game.CueNone {
		m.audio.Play(tr.Cue)
	}
	if tr.Attempt != nil {
		m.record(*tr.Attempt)
	}
	if tr.Changed() {
		m.enter(tr.From, tr.To)
	}
	return tr
}

// enter resets per-screen presentation state.
func (m *Model) enter(from, to game.State) {
	m.cursor = 0
	switch to {
	case game.StateMenu:
		m.audio.SetMenuMusic(true)
	case game.StateLevelSelect:
		m.cursor = m.machine.Progress().Current()
	case game.StateLessonView:
		m.loadLesson(m.machine.Lesson())
	case game.StateVictory:
		m.bannerPos, m.bannerVel = 0, 0
	}
	if from == game.StateMenu && to != game.StateMenu {
		m.audio.SetMenuMusic(false)
	}
}

// record logs a resolved quiz and appends it to the attempt log.
func (m *Model) record(a game.Attempt) {
	m.logger.Info("quiz answered", "level", a.Level+1, "gate", a.Gate, "moves", a.Moves, "correct", a.Correct)
	if m.store == nil {
		return
	}
	_, err := m.store.SaveAttempt(storage.Attempt{
		SessionID: m.sessionID,
		Level:     a.Level,
		Gate:      a.Gate.String(),
		Moves:     a.Moves,
		Correct:   a.Correct,
	})
	if err != nil {
		m.logger.Warn("could not save attempt", "error", err)
	}
}

func (m *Model) loadLesson(g gates.Gate) {
	md := gates.LessonFor(g).Markdown()
	content := md
	if m.markdown != nil {
		out, err := m.markdown.Render(md)
		if err != nil {
			m.logger.Warn("could not render lesson", "gate", g, "error", err)
		} else {
			content = out
		}
	}
	m.lesson.SetContent(content)
	m.lesson.GotoTop()
}

// animate advances the victory banner spring by one frame.
func (m *Model) animate() {
	if m.machine.State() != game.StateVictory {
		return
	}
	m.bannerPos, m.bannerVel = m.spring.Update(m.bannerPos, m.bannerVel, m.bannerTarget())
}

func (m Model) bannerTarget() float64 {
	return float64(max(1, m.height/4))
}

// Machine returns the state machine driven by the model.
func (m Model) Machine() *game.Machine {
	return m.machine
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
