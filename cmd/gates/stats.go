package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/logic-gates/internal/core"
	"github.com/vovakirdan/logic-gates/internal/platform/tui"
	"github.com/vovakirdan/logic-gates/internal/sokoban"
	"github.com/vovakirdan/logic-gates/internal/storage"
)

var (
	flagPlain  bool
	flagReset  bool
	flagRecent int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz attempts per level",
	Long: `Shows how often each level's quiz was attempted and passed, and the
fewest moves of a passing attempt. In a terminal the stats open as a
browsable screen; --plain (or a pipe) prints a table.

Examples:
  gates stats
  gates stats --plain
  gates stats --recent 20
  gates stats --reset`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a table instead of the interactive view")
	statsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete every recorded attempt")
	statsCmd.Flags().IntVar(&flagRecent, "recent", 0, "Print the N most recent attempts")
}

func runStats(_ *cobra.Command, _ []string) {
	if appCfg.Storage.Disabled {
		fmt.Fprintln(os.Stderr, "Error: the attempt log is disabled")
		os.Exit(1)
	}

	store, err := storage.Open(appCfg.DatabasePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening attempt log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearAttempts(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Attempt log cleared.")
		return
	}

	levels := sokoban.MustLoadLevels()

	if flagRecent > 0 {
		attempts, err := store.RecentAttempts(flagRecent)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving attempts: %v\n", err)
			os.Exit(1)
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet.")
			return
		}
		fmt.Print(recentTable(levels, attempts))
		fmt.Println()
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		theme := tui.NewTheme(appCfg.Theme, nil)
		if err := tui.RunStats(store, levels, theme, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	stats, err := store.AllLevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Println("Run 'gates play' and answer a quiz to start the log.")
		return
	}

	fmt.Print(statsTable(levels, stats))
	fmt.Println()
}

// statsTable renders one row per level, including levels never attempted.
func statsTable(levels []sokoban.Level, stats []storage.LevelStats) string {
	byLevel := make(map[int]storage.LevelStats, len(stats))
	for _, s := range stats {
		byLevel[s.Level] = s
	}

	rows := make([][]string, 0, len(levels))
	for i, l := range levels {
		s, ok := byLevel[i]
		if !ok {
			rows = append(rows, []string{fmt.Sprint(i + 1), string(l.Gate), "0", "0", "-", "-", "-"})
			continue
		}
		best, last := "-", "-"
		if s.BestMoves > 0 {
			best = fmt.Sprint(s.BestMoves)
		}
		if !s.LastPlayed.IsZero() {
			last = s.LastPlayed.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			string(l.Gate),
			fmt.Sprint(s.Attempts),
			fmt.Sprint(s.Passes),
			fmt.Sprintf("%.0f%%", s.PassRate()*100),
			best,
			last,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "Gate", "Attempts", "Passes", "Rate", "Best", "Last played").
		Rows(rows...).
		Render()
}

// recentTable renders attempts newest first, one row each.
func recentTable(levels []sokoban.Level, attempts []storage.Attempt) string {
	rows := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		name := "?"
		if a.Level >= 0 && a.Level < len(levels) {
			name = levels[a.Level].Name
		}
		result := "wrong"
		if a.Correct {
			result = "correct"
		}
		session := a.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		rows = append(rows, []string{
			a.CreatedAt.Format("2006-01-02 15:04"),
			session,
			name,
			a.Gate,
			fmt.Sprint(a.Moves),
			result,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("When", "Session", "Level", "Gate", "Moves", "Quiz").
		Rows(rows...).
		Render()
}
