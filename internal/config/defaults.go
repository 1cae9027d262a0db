package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		Seed:     0,
		Keys: KeysConfig{
			Left:  []string{"left", "a", "h"},
			Right: []string{"right", "d", "l"},
			Up:    []string{"up", "w", "k"},
			Down:  []string{"down", "s", "j"},
			Start: []string{" ", "enter"},
			Stop:  []string{"esc", "p"},
			Quit:  []string{"q", "ctrl+c"},
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: Duration(30 * time.Minute),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
