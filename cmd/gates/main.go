// gates is a Sokoban puzzle that teaches logic gates in the terminal.
//
// Usage:
//
//	gates                    - Play (same as gates play)
//	gates play [--level N]   - Play, starting at level N
//	gates serve              - Start SSH server for remote play
//	gates levels [--show N]  - List levels or print one layout
//	gates lesson [GATE]      - Read a gate lesson
//	gates stats              - Show quiz attempts per level
//
// Global flags:
//
//	--fps <rate>     - Animation tick rate (default: 30)
//	--seed <value>   - Quiz RNG seed (0 = random based on time)
//	--db <path>      - Attempt log database ("" disables it)
//	--config <path>  - Config file
//	--log <path>     - Log file
//	--mute           - Disable audio
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/logic-gates/internal/config"
	"github.com/vovakirdan/logic-gates/internal/gates"
	"github.com/vovakirdan/logic-gates/internal/quiz"
	"github.com/vovakirdan/logic-gates/internal/sokoban"
	"github.com/vovakirdan/logic-gates/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagMute    bool

	// appCfg is loaded before any command runs.
	appCfg config.AppConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gates",
	Short: "Logic Gates - push boxes, learn boolean logic",
	Long: `Logic Gates is a terminal Sokoban puzzle. Each of its seven levels
teaches one logic gate: solve the level, then answer a quiz about the gate
to move on.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  levels   - List the built-in levels
  lesson   - Read about a gate
  stats    - Show quiz attempts per level

Examples:
  gates
  gates play --level 3
  gates serve --ssh :2222
  gates lesson xor
  gates stats`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run:               runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Animation tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Quiz RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", `Attempt log database (default ~/.gates/attempts.db, "" disables)`)
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")

	rootCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(statsCmd)
}

// setup loads the config, applies flag overrides and validates the
// built-in levels, lessons and quiz bank.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	var o config.Overrides
	if flags.Changed("fps") {
		o.TickRate = &flagFPS
	}
	if flags.Changed("seed") {
		o.Seed = &flagSeed
	}
	if flags.Changed("db") {
		o.DBPath = &flagDBPath
	}
	if flags.Changed("log") {
		o.LogPath = &flagLogPath
	}
	o.Mute = flagMute

	appCfg, err = o.Apply(cfg)
	if err != nil {
		return err
	}

	if _, err := sokoban.LoadLevels(); err != nil {
		return fmt.Errorf("built-in levels: %w", err)
	}
	if _, err := gates.LoadLessons(); err != nil {
		return fmt.Errorf("built-in lessons: %w", err)
	}
	if _, err := quiz.LoadBank(); err != nil {
		return fmt.Errorf("built-in quiz bank: %w", err)
	}
	return nil
}

// newLogger returns a file logger when a log path is configured, otherwise
// a logger that discards everything. The terminal belongs to the TUI.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	if cfg.Path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           cfg.ParsedLevel(),
		Prefix:          "gates",
	})
	return logger, func() { f.Close() }, nil
}

// openStore opens the attempt log. A disabled log returns nil, nil.
func openStore() (*storage.Store, error) {
	if appCfg.Storage.Disabled {
		return nil, nil
	}
	return storage.Open(appCfg.DatabasePath())
}
