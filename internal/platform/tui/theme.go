package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/logic-gates/internal/config"
	"github.com/vovakirdan/logic-gates/internal/core"
)

// Theme contains all visual styles of the game screens.
type Theme struct {
	// Screen buffer colors, plain and tile
	Colors map[core.Color]lipgloss.Style

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	ItemDone    lipgloss.Style
	GateLabel   lipgloss.Style
	HUDLabel    lipgloss.Style
	HUDValue    lipgloss.Style
	Correct     lipgloss.Style
	Wrong       lipgloss.Style
	Help        lipgloss.Style
	Banner      lipgloss.Style
	Frame       lipgloss.Style
	Placeholder lipgloss.Style
}

// NewTheme builds the styles from the configured tile colors. A nil renderer
// uses the process default; SSH sessions pass their own so color detection
// follows the client terminal.
func NewTheme(cfg config.ThemeConfig, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	accent := lipgloss.Color(cfg.Accent)

	return Theme{
		Colors: map[core.Color]lipgloss.Style{
			core.ColorDefault: r.NewStyle(),
			core.ColorRed:     fg("1"),
			core.ColorGreen:   fg("2"),
			core.ColorYellow:  fg("3"),
			core.ColorBlue:    fg("4"),
			core.ColorMagenta: fg("5"),
			core.ColorCyan:    fg("6"),
			core.ColorWhite:   fg("7"),
			core.ColorGray:    fg("245"),

			core.ColorWall:        fg(cfg.Wall),
			core.ColorFloor:       fg(cfg.Floor),
			core.ColorBox:         fg(cfg.Box).Bold(true),
			core.ColorBoxOnTarget: fg(cfg.BoxOnTarget).Bold(true),
			core.ColorTarget:      fg(cfg.Target),
			core.ColorPlayer:      fg(cfg.Player).Bold(true),
			core.ColorAccent:      r.NewStyle().Foreground(accent),
		},

		Title:       r.NewStyle().Bold(true).Foreground(accent),
		Subtitle:    fg("245"),
		ItemNormal:  fg("252"),
		ItemActive:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		ItemDone:    fg(cfg.BoxOnTarget),
		GateLabel:   r.NewStyle().Foreground(accent).Italic(true),
		HUDLabel:    fg("245"),
		HUDValue:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Correct:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		Wrong:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Help:        fg("241"),
		Banner:      r.NewStyle().Bold(true).Foreground(accent).Border(lipgloss.DoubleBorder()).BorderForeground(accent).Padding(1, 4),
		Frame:       r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Placeholder: fg("241").Italic(true),
	}
}

// Style returns the style for a screen color, falling back to the default.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Colors[c]; ok {
		return s
	}
	return t.Colors[core.ColorDefault]
}
