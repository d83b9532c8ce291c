package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/logic-gates/internal/audio"
	"github.com/vovakirdan/logic-gates/internal/core"
	"github.com/vovakirdan/logic-gates/internal/game"
	"github.com/vovakirdan/logic-gates/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in this terminal.

Controls:
  Arrows/WASD  - Move (pushes boxes)
  R            - Restart the level
  Enter/Space  - Select / answer / continue
  1-9          - Pick a list entry or quiz option
  Esc/B        - Back
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Examples:
  gates play
  gates play --level 4
  gates play --seed 42 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
}

func runPlay(_ *cobra.Command, _ []string) {
	seed := appCfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	machine, err := game.NewDefault(seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := machine.SetCurrent(flagLevel - 1); err != nil {
		fmt.Fprintf(os.Stderr, "Error: --level must be between 1 and %d\n", len(machine.Levels()))
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(appCfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := openStore()
	if err != nil {
		// The game still works without the attempt log.
		fmt.Fprintf(os.Stderr, "Warning: could not open attempt log: %v\n", err)
		store = nil
	}

	player, err := audio.New(appCfg.Audio)
	if err != nil {
		logger.Warn("audio unavailable", "error", err)
	}

	runErr := tui.Run(tui.Options{
		Machine:  machine,
		Store:    store,
		Audio:    player,
		Logger:   logger,
		Theme:    appCfg.Theme,
		TickRate: appCfg.TickRate,
		Width:    width,
		Height:   height,
	})

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
