package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/logic-gates/internal/config"
	"github.com/vovakirdan/logic-gates/internal/core"
	"github.com/vovakirdan/logic-gates/internal/sokoban"
)

func TestRenderScreenText(t *testing.T) {
	theme := NewTheme(config.Default().Theme, nil)

	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)
	s.DrawText(0, 1, "xyz")

	got := RenderScreen(s, theme)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestRenderGrid(t *testing.T) {
	theme := NewTheme(config.Default().Theme, nil)
	g := sokoban.MustParse(sokoban.Level{
		Name:   "tiny",
		Gate:   "AND",
		Layout: []string{"#####", "#@$.#", "#####"},
	})

	w, h := g.RenderSize()
	s := core.NewScreen(w, h)
	g.Render(s, 0, 0)
	out := RenderScreen(s, theme)

	for _, glyph := range []sokoban.Glyph{sokoban.GlyphPlayer, sokoban.GlyphBox, sokoban.GlyphTarget} {
		if !strings.Contains(out, glyph.Text) {
			t.Errorf("rendered grid missing %q:\n%s", glyph.Text, out)
		}
	}
}

func TestThemeStyleFallback(t *testing.T) {
	theme := NewTheme(config.Default().Theme, nil)
	if got := theme.Style(core.Color(200)).Render("x"); !strings.Contains(got, "x") {
		t.Errorf("fallback style rendered %q", got)
	}
	for _, c := range []core.Color{core.ColorWall, core.ColorBox, core.ColorPlayer, core.ColorTarget} {
		if _, ok := theme.Colors[c]; !ok {
			t.Errorf("theme missing tile color %d", c)
		}
	}
}
