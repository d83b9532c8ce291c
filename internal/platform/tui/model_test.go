package tui

import (
	"bytes"
	"fmt"
	"math/rand"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/logic-gates/internal/config"
	"github.com/vovakirdan/logic-gates/internal/game"
	"github.com/vovakirdan/logic-gates/internal/gates"
	"github.com/vovakirdan/logic-gates/internal/quiz"
	"github.com/vovakirdan/logic-gates/internal/sokoban"
	"github.com/vovakirdan/logic-gates/internal/storage"
)

// recorder is an audio.Player that remembers the cues it was asked to play.
type recorder struct {
	cues []game.Cue
	menu bool
}

func (r *recorder) Play(c game.Cue)        { r.cues = append(r.cues, c) }
func (r *recorder) SetMenuMusic(on bool)   { r.menu = on }
func (r *recorder) Close()                 {}
func (r *recorder) played(c game.Cue) bool { return slices.Contains(r.cues, c) }

func (r *recorder) last() game.Cue {
	if len(r.cues) == 0 {
		return game.CueNone
	}
	return r.cues[len(r.cues)-1]
}

func newTestModel(t *testing.T, machine *game.Machine, store *storage.Store, rec *recorder) Model {
	t.Helper()
	if machine == nil {
		var err error
		machine, err = game.NewDefault(42)
		if err != nil {
			t.Fatalf("NewDefault: %v", err)
		}
	}
	opts := Options{
		Machine:   machine,
		Store:     store,
		SessionID: "test-session",
		Theme:     config.Default().Theme,
		TickRate:  30,
		Width:     100,
		Height:    40,
	}
	if rec != nil {
		opts.Audio = rec
	}
	return NewModel(opts)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

// send feeds messages through Update and returns the resulting model and
// the command of the last message.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m, cmd
}

// answerKey returns the digit key of the correct or a wrong option.
func answerKey(m Model, correct bool) tea.KeyMsg {
	q := m.machine.Quiz().Question()
	i := q.AnswerIndex()
	if !correct {
		i = (i + 1) % len(q.Options)
	}
	return runes(fmt.Sprint(i + 1))
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "attempts.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want game.State
	}{
		{"enter plays", []tea.Msg{enter}, game.StatePlaying},
		{"cursor to levels", []tea.Msg{down, enter}, game.StateLevelSelect},
		{"cursor to lessons", []tea.Msg{down, down, enter}, game.StateLessons},
		{"p shortcut", []tea.Msg{runes("p")}, game.StatePlaying},
		{"l shortcut", []tea.Msg{runes("l")}, game.StateLevelSelect},
		{"g shortcut", []tea.Msg{runes("g")}, game.StateLessons},
		{"back from levels", []tea.Msg{runes("l"), esc}, game.StateMenu},
		{"back from playing", []tea.Msg{runes("p"), esc}, game.StateMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := send(t, newTestModel(t, nil, nil, nil), tt.keys...)
			if got := m.machine.State(); got != tt.want {
				t.Errorf("state = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMenuCursorClamps(t *testing.T) {
	m := newTestModel(t, nil, nil, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}
	for range 10 {
		m, _ = send(t, m, down)
	}
	if m.cursor != len(menuItems)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(menuItems)-1)
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
	}{
		{"q", []tea.Msg{runes("q")}},
		{"ctrl+c while playing", []tea.Msg{enter, tea.KeyMsg{Type: tea.KeyCtrlC}}},
		{"menu entry", []tea.Msg{down, down, down, enter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := send(t, newTestModel(t, nil, nil, nil), tt.keys...)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("command returned %T, want tea.QuitMsg", cmd())
			}
			if m.View() != "" {
				t.Error("View() should be empty after quitting")
			}
		})
	}
}

func TestSolveAndAnswerCorrect(t *testing.T) {
	store := openStore(t)
	rec := &recorder{}
	m := newTestModel(t, nil, store, rec)

	m, _ = send(t, m, enter, runes("s"))
	if m.machine.State() != game.StateQuiz {
		t.Fatalf("state = %s, want quiz", m.machine.State())
	}
	if rec.last() != game.CueSolved {
		t.Errorf("cue = %s, want solved", rec.last())
	}
	if !strings.Contains(m.View(), "Quiz: AND gate") {
		t.Errorf("quiz view missing heading:\n%s", m.View())
	}

	m, _ = send(t, m, answerKey(m, true))
	if !m.machine.Quiz().Answered() {
		t.Fatal("quiz should be answered")
	}
	if !strings.Contains(m.View(), "Correct!") {
		t.Errorf("view missing verdict:\n%s", m.View())
	}

	m, _ = send(t, m, enter)
	if m.machine.State() != game.StatePlaying || m.machine.Progress().Current() != 1 {
		t.Fatalf("state = %s level = %d, want playing level 2", m.machine.State(), m.machine.Progress().Current())
	}
	if rec.last() != game.CueCorrect {
		t.Errorf("cue = %s, want correct", rec.last())
	}

	attempts, err := store.SessionAttempts("test-session")
	if err != nil {
		t.Fatalf("SessionAttempts: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("got %d attempts, want 1", len(attempts))
	}
	a := attempts[0]
	if a.Level != 0 || a.Gate != "AND" || a.Moves != 1 || !a.Correct {
		t.Errorf("attempt = %+v", a)
	}
}

func TestWrongAnswerReplaysLevel(t *testing.T) {
	store := openStore(t)
	rec := &recorder{}
	m := newTestModel(t, nil, store, rec)

	m, _ = send(t, m, enter, runes("s"))
	m, _ = send(t, m, answerKey(m, false))
	if !strings.Contains(m.View(), "The answer is") {
		t.Errorf("view missing correct answer:\n%s", m.View())
	}

	m, _ = send(t, m, enter)
	if m.machine.State() != game.StatePlaying || m.machine.Progress().Current() != 0 {
		t.Fatalf("state = %s level = %d, want playing level 1", m.machine.State(), m.machine.Progress().Current())
	}
	if m.machine.Grid().Moves() != 0 {
		t.Errorf("moves = %d after replay, want 0", m.machine.Grid().Moves())
	}
	if !rec.played(game.CueWrong) {
		t.Errorf("cues %v missing wrong", rec.cues)
	}

	attempts, err := store.SessionAttempts("test-session")
	if err != nil {
		t.Fatalf("SessionAttempts: %v", err)
	}
	if len(attempts) != 1 || attempts[0].Correct {
		t.Errorf("attempts = %+v, want one wrong attempt", attempts)
	}
}

func TestEnterBeforeAnswerPicksCursor(t *testing.T) {
	m := newTestModel(t, nil, nil, nil)
	m, _ = send(t, m, enter, runes("s"), down, enter)
	q := m.machine.Quiz()
	if !q.Answered() || q.Choice() != q.Question().Options[1] {
		t.Errorf("choice = %q, want option 2", q.Choice())
	}
}

func TestDigitBeyondOptionsKeepsCursor(t *testing.T) {
	m := newTestModel(t, nil, nil, nil)
	m, _ = send(t, m, enter, runes("s"), down)
	n := len(m.machine.Quiz().Question().Options)

	m, _ = send(t, m, runes(fmt.Sprint(n+1)))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
	if m.machine.Quiz().Answered() {
		t.Error("out of range digit should not answer")
	}
}

func TestQuitLogsSessionSummary(t *testing.T) {
	store := openStore(t)
	var buf bytes.Buffer

	machine, err := game.NewDefault(42)
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	m := NewModel(Options{
		Machine:   machine,
		Store:     store,
		Logger:    log.New(&buf),
		SessionID: "summary-session",
		Width:     100,
		Height:    40,
	})

	m, _ = send(t, m, enter, runes("s"))
	m, _ = send(t, m, answerKey(m, true), enter)
	send(t, m, runes("q"))

	out := buf.String()
	for _, want := range []string{"session ended", "attempts=1", "passed=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestPlayingView(t *testing.T) {
	m := newTestModel(t, nil, nil, nil)
	m, _ = send(t, m, enter)

	view := m.View()
	for _, want := range []string{m.machine.Level().Name, "Gate: AND", "Moves: 0", "Targets: 0/1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m, _ = send(t, m, runes("a"), runes("r"))
	if m.machine.Grid().Moves() != 0 {
		t.Errorf("moves = %d after restart, want 0", m.machine.Grid().Moves())
	}
}

func TestBumpCue(t *testing.T) {
	rec := &recorder{}
	m := newTestModel(t, nil, nil, rec)
	m, _ = send(t, m, enter)

	// One step up reaches the top row of floor; the next hits the wall.
	m, _ = send(t, m, runes("w"))
	if rec.last() != game.CueStep {
		t.Errorf("cue = %s, want step", rec.last())
	}
	m, _ = send(t, m, runes("w"))
	if m.machine.Grid().Moves() != 1 {
		t.Errorf("moves = %d, want 1", m.machine.Grid().Moves())
	}
	if rec.last() != game.CueBump {
		t.Errorf("cue = %s, want bump", rec.last())
	}
}

func TestLevelSelectCursorStartsAtCurrent(t *testing.T) {
	m := newTestModel(t, nil, nil, nil)
	if err := m.machine.SetCurrent(3); err != nil {
		t.Fatal(err)
	}
	m, _ = send(t, m, runes("l"))
	if m.cursor != 3 {
		t.Errorf("cursor = %d, want 3", m.cursor)
	}

	m, _ = send(t, m, runes("5"))
	if m.machine.State() != game.StatePlaying || m.machine.Progress().Current() != 4 {
		t.Errorf("state = %s level = %d, want playing level 5", m.machine.State(), m.machine.Progress().Current())
	}
}

func TestLessonView(t *testing.T) {
	m := newTestModel(t, nil, nil, nil)
	m, _ = send(t, m, runes("g"), down, enter)

	if m.machine.State() != game.StateLessonView {
		t.Fatalf("state = %s, want lesson view", m.machine.State())
	}
	want := gates.All()[1]
	if m.machine.Lesson() != want {
		t.Errorf("lesson = %s, want %s", m.machine.Lesson(), want)
	}
	if !strings.Contains(m.View(), gates.LessonFor(want).Name) {
		t.Errorf("view missing lesson name:\n%s", m.View())
	}

	// Scrolling stays in the lesson.
	m, _ = send(t, m, down, tea.KeyMsg{Type: tea.KeyPgDown})
	if m.machine.State() != game.StateLessonView {
		t.Errorf("state = %s after scrolling, want lesson view", m.machine.State())
	}

	m, _ = send(t, m, esc)
	if m.machine.State() != game.StateLessons {
		t.Errorf("state = %s, want lessons", m.machine.State())
	}
}

func TestVictory(t *testing.T) {
	levels := sokoban.MustLoadLevels()
	last := len(levels) - 1
	levels[last].Layout = []string{"#####", "#@$.#", "#####"}
	machine, err := game.New(levels, quiz.MustLoadBank(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	if err := machine.SetCurrent(last); err != nil {
		t.Fatal(err)
	}

	rec := &recorder{}
	m := newTestModel(t, machine, nil, rec)
	m, _ = send(t, m, runes("p"), runes("d"))
	m, _ = send(t, m, answerKey(m, true), enter)

	if m.machine.State() != game.StateVictory {
		t.Fatalf("state = %s, want victory", m.machine.State())
	}
	if rec.last() != game.CueVictory {
		t.Errorf("cue = %s, want victory", rec.last())
	}
	if !strings.Contains(m.View(), "ALL GATES MASTERED") {
		t.Errorf("victory view missing banner:\n%s", m.View())
	}

	tick := TickMsg(time.Now())
	m, cmd := send(t, m, tick, tick, tick)
	if cmd == nil {
		t.Error("tick should schedule the next frame")
	}
	if m.bannerPos <= 0 {
		t.Errorf("banner did not move: pos = %f", m.bannerPos)
	}

	m, _ = send(t, m, runes("x"))
	if m.machine.State() != game.StateMenu {
		t.Errorf("state = %s, want menu", m.machine.State())
	}
	if !rec.menu {
		t.Error("menu music should resume on the menu")
	}
}

func TestMenuMusicToggle(t *testing.T) {
	rec := &recorder{}
	m := newTestModel(t, nil, nil, rec)
	m.Init()
	if !rec.menu {
		t.Error("menu music should start on the menu")
	}

	m, _ = send(t, m, enter)
	if rec.menu {
		t.Error("menu music should stop when play starts")
	}
	send(t, m, esc)
	if !rec.menu {
		t.Error("menu music should resume after back")
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t, nil, nil, nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.width != 60 || m.height != 20 {
		t.Errorf("size = %dx%d, want 60x20", m.width, m.height)
	}
	if m.help.Width != 60 {
		t.Errorf("help width = %d, want 60", m.help.Width)
	}
}

func TestMenuView(t *testing.T) {
	m := newTestModel(t, nil, nil, nil)
	view := m.View()
	for _, want := range []string{"L O G I C   G A T E S", "Play", "Select Level", "Lessons", "Completed", "0/7"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}
