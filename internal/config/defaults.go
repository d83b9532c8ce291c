package config

import (
	_ "embed"
)

//go:embed defaults/gates.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when the embedded file
// cannot be parsed.
func Default() AppConfig {
	return AppConfig{
		TickRate: 30,
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			MenuMusic:  true,
			MoveSounds: true,
		},
		Theme: ThemeConfig{
			Wall:        "245",
			Floor:       "236",
			Box:         "214",
			BoxOnTarget: "46",
			Target:      "203",
			Player:      "51",
			Accent:      "212",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			HostKeyPath: ".ssh/gates_ed25519",
			IdleTimeout: "10m",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
