package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.gates/config.yaml -> ./configs/gates.yaml -> embedded default.
// Values missing from a file keep their default. Only an explicit customPath
// that cannot be read or parsed is an error; the result is always validated.
func Load(customPath string) (AppConfig, error) {
	cfg := embedded()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", "gates.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		next := cfg
		if err := yaml.Unmarshal(data, &next); err == nil {
			return next, next.Validate()
		}
	}

	return cfg, cfg.Validate()
}

// embedded returns the embedded default YAML decoded over Default.
func embedded() AppConfig {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Dir returns ~/.gates, or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gates")
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// DatabasePath returns the attempt log location: storage.path if set,
// otherwise ~/.gates/attempts.db.
func (c AppConfig) DatabasePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	dir := Dir()
	if dir == "" {
		return "attempts.db"
	}
	return filepath.Join(dir, "attempts.db")
}

// Overrides carries command-line values that win over the file. Nil fields
// leave the file value alone.
type Overrides struct {
	TickRate *int
	Seed     *int64
	DBPath   *string
	LogPath  *string
	Mute     bool
}

// Apply returns cfg with the overrides applied and validated.
func (o Overrides) Apply(cfg AppConfig) (AppConfig, error) {
	if o.TickRate != nil {
		cfg.TickRate = *o.TickRate
	}
	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	if o.DBPath != nil {
		// An explicit empty path turns the attempt log off.
		cfg.Storage.Path = *o.DBPath
		cfg.Storage.Disabled = *o.DBPath == ""
	}
	if o.LogPath != nil {
		cfg.Log.Path = *o.LogPath
	}
	if o.Mute {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}
