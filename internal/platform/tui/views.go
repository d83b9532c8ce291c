package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/logic-gates/internal/core"
	"github.com/vovakirdan/logic-gates/internal/game"
	"github.com/vovakirdan/logic-gates/internal/gates"
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.machine.State() {
	case game.StateMenu:
		body = m.viewMenu()
	case game.StateLevelSelect:
		body = m.viewLevelSelect()
	case game.StateLessons:
		body = m.viewLessons()
	case game.StateLessonView:
		body = m.viewLesson()
	case game.StatePlaying:
		body = m.viewPlaying()
	case game.StateQuiz:
		body = m.viewQuiz()
	case game.StateVictory:
		return m.viewVictory() + "\n" + m.viewHelp()
	}

	content := lipgloss.JoinVertical(lipgloss.Center, body, "", m.viewHelp())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewHelp() string {
	keys := helpKeys{keys: m.keys, state: m.machine.State()}
	if q := m.machine.Quiz(); q != nil {
		keys.answered = q.Answered()
	}
	return m.theme.Help.Render(m.help.View(keys))
}

// item renders one list row with the cursor marker.
func (m Model) item(active bool, text string) string {
	if active {
		return m.theme.ItemActive.Render("> " + text + " ")
	}
	return m.theme.ItemNormal.Render("  " + text + " ")
}

func (m Model) viewMenu() string {
	p := m.machine.Progress()

	lines := []string{
		m.theme.Title.Render("L O G I C   G A T E S"),
		m.theme.Subtitle.Render("Push the boxes, then prove you know the gate."),
		"",
	}
	for i, it := range menuItems {
		lines = append(lines, m.item(i == m.cursor, fmt.Sprintf("%-14s", it.Title)))
	}
	lines = append(lines, "",
		m.theme.HUDLabel.Render("Completed ")+
			m.theme.HUDValue.Render(fmt.Sprintf("%d/%d", len(p.CompletedLevels()), p.Levels()))+
			m.theme.HUDLabel.Render("   Next: ")+
			m.theme.HUDValue.Render(m.machine.Level().Name),
	)
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) viewLevelSelect() string {
	p := m.machine.Progress()

	var b strings.Builder
	for i, l := range m.machine.Levels() {
		mark := " "
		if p.Completed(i) {
			mark = "✓"
		}
		text := fmt.Sprintf("%s %d. %-26s %-4s", mark, i+1, l.Name, l.Gate)
		switch {
		case i == m.cursor:
			b.WriteString(m.item(true, text))
		case p.Completed(i):
			b.WriteString(m.theme.ItemDone.Render("  " + text + " "))
		default:
			b.WriteString(m.item(false, text))
		}
		b.WriteString("\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Select Level"),
		"",
		strings.TrimRight(b.String(), "\n"),
	)
}

func (m Model) viewLessons() string {
	var b strings.Builder
	for i, g := range gates.All() {
		l := gates.LessonFor(g)
		text := fmt.Sprintf("%d. %-5s %-10s %s", i+1, g, l.Name, l.Symbol)
		b.WriteString(m.item(i == m.cursor, text))
		b.WriteString("\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Logic Gate Lessons"),
		m.theme.Subtitle.Render("Pick a gate to read about it."),
		"",
		strings.TrimRight(b.String(), "\n"),
	)
}

func (m Model) viewLesson() string {
	l := gates.LessonFor(m.machine.Lesson())
	scroll := m.theme.HUDLabel.Render(fmt.Sprintf("%3.0f%%", m.lesson.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Right,
		m.theme.Frame.Render(m.lesson.View()),
		m.theme.GateLabel.Render(l.Name)+"  "+scroll,
	)
}

func (m Model) viewPlaying() string {
	g := m.machine.Grid()
	w, h := g.RenderSize()
	screen := core.NewScreen(w, h)
	g.Render(screen, 0, 0)

	header := m.theme.Title.Render(g.Name()) + "   " + m.theme.GateLabel.Render("Gate: "+g.Gate().String())
	hud := m.theme.HUDLabel.Render("Moves: ") + m.theme.HUDValue.Render(fmt.Sprint(g.Moves())) +
		m.theme.HUDLabel.Render("   Targets: ") + m.theme.HUDValue.Render(fmt.Sprintf("%d/%d", g.Solved(), len(g.Targets())))

	return lipgloss.JoinVertical(lipgloss.Center, header, "", RenderScreen(screen, m.theme), "", hud)
}

func (m Model) viewQuiz() string {
	q := m.machine.Quiz()
	question := q.Question()

	lines := []string{
		m.theme.Correct.Render("Level solved!"),
		m.theme.Title.Render(fmt.Sprintf("Quiz: %s gate", q.Gate())),
		"",
		m.theme.ItemNormal.Render(question.Text),
		"",
	}

	for i, opt := range question.Options {
		text := fmt.Sprintf("%d. %s", i+1, opt)
		switch {
		case !q.Answered():
			lines = append(lines, m.item(i == m.cursor, text))
		case opt == question.Answer:
			lines = append(lines, m.theme.Correct.Render("✓ "+text+" "))
		case opt == q.Choice():
			lines = append(lines, m.theme.Wrong.Render("✗ "+text+" "))
		default:
			lines = append(lines, m.theme.Placeholder.Render("  "+text+" "))
		}
	}

	if q.Answered() {
		lines = append(lines, "")
		switch {
		case q.Correct() && m.machine.Progress().Last():
			lines = append(lines, m.theme.Correct.Render("Correct! That was the last gate."))
		case q.Correct():
			lines = append(lines, m.theme.Correct.Render("Correct! On to the next level."))
		default:
			lines = append(lines,
				m.theme.Wrong.Render("Not quite. The answer is "+question.Answer+"."),
				m.theme.Subtitle.Render("The level starts over."),
			)
		}
		lines = append(lines, "", m.theme.Subtitle.Render("Press Enter to continue"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewVictory() string {
	var done []string
	for _, i := range m.machine.Progress().CompletedLevels() {
		done = append(done, m.machine.Levels()[i].Gate.String())
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Banner.Render("ALL GATES MASTERED"),
		"",
		m.theme.ItemNormal.Render("You solved every puzzle and answered every quiz."),
		m.theme.GateLabel.Render(strings.Join(done, " · ")),
		"",
		m.theme.Subtitle.Render("Press any key to return to the menu"),
	)

	top := core.Clamp(int(m.bannerPos), 0, max(0, m.height-lipgloss.Height(body)-2))
	return strings.Repeat("\n", top) + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}
