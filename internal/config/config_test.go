package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	got := embedded()
	want := Default()

	if got != want {
		t.Errorf("embedded YAML and Default() disagree:\n got  %+v\n want %+v", got, want)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeFile(t, "gates.yaml", `
tick_rate: 60
seed: 99
audio:
  volume: 0.25
theme:
  player: "33"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickRate != 60 || cfg.Seed != 99 {
		t.Errorf("tick_rate/seed = %d/%d, want 60/99", cfg.TickRate, cfg.Seed)
	}
	if cfg.Audio.Volume != 0.25 || !cfg.Audio.Enabled {
		t.Errorf("audio = %+v, want volume 0.25 and defaults kept", cfg.Audio)
	}
	if cfg.Theme.Player != "33" || cfg.Theme.Wall != Default().Theme.Wall {
		t.Errorf("theme = %+v", cfg.Theme)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "tick_rate: [", "parse"},
		{"bad tick rate", "tick_rate: 0", "tick_rate"},
		{"bad volume", "audio:\n  volume: 1.5", "volume"},
		{"bad timeout", "ssh:\n  idle_timeout: soon", "idle_timeout"},
		{"bad log level", "log:\n  level: loud", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "gates.yaml", tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "gates.yaml"), []byte("tick_rate: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickRate != 12 {
		t.Errorf("tick_rate = %d, want 12", cfg.TickRate)
	}
}

func TestLoadUserConfigWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := os.MkdirAll(filepath.Join(dir, ".gates"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".gates", "config.yaml"), []byte("tick_rate: 45\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "gates.yaml"), []byte("tick_rate: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickRate != 45 {
		t.Errorf("tick_rate = %d, want 45 from the user config", cfg.TickRate)
	}
}

func TestOverrides(t *testing.T) {
	fps := 50
	seed := int64(7)
	db := ""
	logPath := "/tmp/gates.log"

	cfg, err := Overrides{TickRate: &fps, Seed: &seed, DBPath: &db, LogPath: &logPath, Mute: true}.Apply(Default())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.TickRate != 50 || cfg.Seed != 7 || cfg.Log.Path != logPath {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Storage.Disabled {
		t.Error("empty --db should disable storage")
	}
	if cfg.Audio.Enabled {
		t.Error("mute should disable audio")
	}

	bad := 0
	if _, err := (Overrides{TickRate: &bad}).Apply(Default()); err == nil {
		t.Error("tick rate 0 accepted")
	}

	// No overrides leaves the config untouched.
	cfg, err = Overrides{}.Apply(Default())
	if err != nil || cfg != Default() {
		t.Errorf("empty overrides changed config: %+v, %v", cfg, err)
	}
}

func TestDatabasePath(t *testing.T) {
	cfg := Default()
	cfg.Storage.Path = "/data/a.db"
	if cfg.DatabasePath() != "/data/a.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath())
	}

	t.Setenv("HOME", "/home/player")
	cfg.Storage.Path = ""
	if got := cfg.DatabasePath(); got != filepath.Join("/home/player", ".gates", "attempts.db") {
		t.Errorf("DatabasePath = %q", got)
	}
}

func TestParsedLevel(t *testing.T) {
	if lvl := (LogConfig{Level: "debug"}).ParsedLevel(); lvl != log.DebugLevel {
		t.Errorf("level = %v, want debug", lvl)
	}
	if lvl := (LogConfig{Level: ""}).ParsedLevel(); lvl != log.InfoLevel {
		t.Errorf("level = %v, want info", lvl)
	}
}

func TestSSHIdle(t *testing.T) {
	if d := (SSHConfig{IdleTimeout: "90s"}).Idle(); d.Seconds() != 90 {
		t.Errorf("Idle = %v, want 90s", d)
	}
	if d := (SSHConfig{}).Idle(); d != 0 {
		t.Errorf("Idle = %v, want 0", d)
	}
}
