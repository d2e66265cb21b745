// Package config provides TOML-based configuration for weft programs.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration is a time.Duration that reads from TOML as a Go duration
// string ("16ms", "1s"). An empty string or a zero value falls back to
// the field's default at load time; negative durations are rejected
// outright.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// or returns d unless it is zero, in which case def applies.
func (d Duration) or(def time.Duration) Duration {
	if d.Duration <= 0 {
		return Duration{def}
	}
	return d
}

// Config is the full configuration tree for a weft program.
type Config struct {
	General GeneralConfig `toml:"general"`
	Render  RenderConfig  `toml:"render"`
	Watch   WatchConfig   `toml:"watch"`
}

// GeneralConfig covers the driver loop and logging.
type GeneralConfig struct {
	// TickInterval is the period of the driver's tick/render cycle.
	TickInterval Duration `toml:"tick_interval"`
	LogLevel     string   `toml:"log_level"`
	LogFile      string   `toml:"log_file"`
}

// RenderConfig covers the output surface.
type RenderConfig struct {
	// AltScreen switches to the terminal's alternate buffer while running.
	AltScreen bool `toml:"alt_screen"`
}

// WatchConfig covers the hot-reload file watcher.
type WatchConfig struct {
	Enabled  bool     `toml:"enabled"`
	Paths    []string `toml:"paths"`
	Debounce Duration `toml:"debounce"`
}

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/weft/config.toml
//  2. ~/.config/weft/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	return DefaultConfig(), nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	// A file may zero a duration out ("" parses to 0); the driver needs a
	// real tick period and the watcher a real quiet window.
	cfg.General.TickInterval = cfg.General.TickInterval.or(16 * time.Millisecond)
	cfg.Watch.Debounce = cfg.Watch.Debounce.or(100 * time.Millisecond)
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration: a 16ms tick (roughly
// 60 frames per second), warn-level file logging, alt screen on, watcher
// off.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			TickInterval: Duration{16 * time.Millisecond},
			LogLevel:     "warn",
			LogFile:      "",
		},
		Render: RenderConfig{
			AltScreen: true,
		},
		Watch: WatchConfig{
			Enabled:  false,
			Debounce: Duration{100 * time.Millisecond},
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config
// values. WEFT_LOG_FILE is the common one: pointing logs at a file is the
// only way to see them while the renderer owns the terminal.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WEFT_LOG_FILE"); v != "" {
		cfg.General.LogFile = v
	}
	if v := os.Getenv("WEFT_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
}

// configSearchPaths returns candidate config file locations in priority
// order.
func configSearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "weft", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "weft", "config.toml"))
	}
	return paths
}
