// Package config loads the application configuration from YAML, falling back
// to an embedded default.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// AppConfig is the complete application configuration.
type AppConfig struct {
	TickRate int           `yaml:"tick_rate"`
	Seed     int64         `yaml:"seed"`
	Audio    AudioConfig   `yaml:"audio"`
	Theme    ThemeConfig   `yaml:"theme"`
	SSH      SSHConfig     `yaml:"ssh"`
	Storage  StorageConfig `yaml:"storage"`
	Log      LogConfig     `yaml:"log"`
}

// AudioConfig controls sound cues and menu music.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full
	MenuMusic  bool    `yaml:"menu_music"`
	MoveSounds bool    `yaml:"move_sounds"`
}

// ThemeConfig holds ANSI 256 color codes for the grid tiles.
type ThemeConfig struct {
	Wall        string `yaml:"wall"`
	Floor       string `yaml:"floor"`
	Box         string `yaml:"box"`
	BoxOnTarget string `yaml:"box_on_target"`
	Target      string `yaml:"target"`
	Player      string `yaml:"player"`
	Accent      string `yaml:"accent"`
}

// SSHConfig configures the serve command.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleTimeout string `yaml:"idle_timeout"`
}

// Idle returns the parsed idle timeout, zero when unset.
func (c SSHConfig) Idle() time.Duration {
	d, _ := time.ParseDuration(c.IdleTimeout)
	return d
}

// StorageConfig locates the attempt log database.
type StorageConfig struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// ParsedLevel returns the configured log level.
func (c LogConfig) ParsedLevel() log.Level {
	lvl, err := log.ParseLevel(c.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Validate reports the first invalid field.
func (c AppConfig) Validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("config: tick_rate %d out of range 1-240", c.TickRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume %.2f out of range 0-1", c.Audio.Volume)
	}
	if c.SSH.IdleTimeout != "" {
		d, err := time.ParseDuration(c.SSH.IdleTimeout)
		if err != nil {
			return fmt.Errorf("config: ssh.idle_timeout: %w", err)
		}
		if d < 0 {
			return errors.New("config: ssh.idle_timeout is negative")
		}
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log.level: %w", err)
		}
	}
	return nil
}
