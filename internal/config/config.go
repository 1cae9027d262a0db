// Package config provides YAML-based configuration loading for the snake
// frontends: frame rate, RNG seed, key bindings, the SSH server and logging.
// Board geometry and game rules are fixed and live in the snake package.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Config contains all user-tunable settings.
type Config struct {
	TickRate int          `yaml:"tick_rate"`
	Seed     int64        `yaml:"seed"` // 0 = seed from the clock
	Keys     KeysConfig   `yaml:"keys"`
	Server   ServerConfig `yaml:"server"`
	Log      LogConfig    `yaml:"log"`
}

// KeysConfig lists the terminal key names bound to each action.
// Names follow Bubble Tea's KeyMsg.String(), e.g. "left", "a", " ", "esc".
type KeysConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Start []string `yaml:"start"`
	Stop  []string `yaml:"stop"`
	Quit  []string `yaml:"quit"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string   `yaml:"address"`
	HostKeyPath string   `yaml:"host_key"` // empty = ~/.snake/host_key
	IdleTimeout Duration `yaml:"idle_timeout"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty = stderr, or discarded while the TUI owns the terminal
}

// Duration is a time.Duration that reads and writes as "30m"-style text.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	v, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", value.Line, value.Value, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}

	for _, binding := range c.Keys.byAction() {
		if len(binding.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s: at least one key is required", binding.name))
		}
	}

	if c.Server.Address == "" {
		errs = append(errs, errors.New("server.address is required"))
	}
	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout must not be negative, got %s", time.Duration(c.Server.IdleTimeout)))
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// actionKeys is one action's key list under its YAML name.
type actionKeys struct {
	name string
	keys []string
}

// byAction returns the key lists in declaration order.
func (k KeysConfig) byAction() []actionKeys {
	return []actionKeys{
		{"left", k.Left},
		{"right", k.Right},
		{"up", k.Up},
		{"down", k.Down},
		{"start", k.Start},
		{"stop", k.Stop},
		{"quit", k.Quit},
	}
}
