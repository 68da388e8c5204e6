package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/iVamsi/snapnotify/internal/duration"
	"github.com/iVamsi/snapnotify/internal/ui/styles"
)

const appName = "snapnotify"

type Config struct {
	// Default display duration in milliseconds for toasts that do not
	// specify one. 0 or negative falls back to the short standard.
	DefaultDurationMillis int64 `koanf:"default_duration_ms"`

	// Desktop routes toasts to the freedesktop notification server
	// instead of the in-app toast bar.
	Desktop bool `koanf:"desktop"`

	Theme ThemeConfig `koanf:"theme"`
}

// ThemeConfig overrides individual theme colors. Values are hex
// strings; empty means keep the default.
type ThemeConfig struct {
	Success string `koanf:"success"`
	Error   string `koanf:"error"`
	Warning string `koanf:"warning"`
	Info    string `koanf:"info"`
	Accent  string `koanf:"accent"`
	Border  string `koanf:"border"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/snapnotify/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// DefaultDuration returns the configured default display duration.
func (c *Config) DefaultDuration() duration.Duration {
	if c.DefaultDurationMillis <= 0 {
		return duration.FromStandard(duration.Short)
	}
	d, err := duration.FromMillis(c.DefaultDurationMillis)
	if err != nil {
		return duration.FromStandard(duration.Short)
	}
	return d
}

// BuildTheme returns the default theme with configured overrides
// applied.
func (c *Config) BuildTheme() *styles.Theme {
	t := styles.T().Clone()
	override(&t.Success, c.Theme.Success)
	override(&t.Error, c.Theme.Error)
	override(&t.Warning, c.Theme.Warning)
	override(&t.Info, c.Theme.Info)
	override(&t.Accent, c.Theme.Accent)
	override(&t.Border, c.Theme.Border)
	return t
}

func override(dst *lipgloss.Color, hex string) {
	if hex != "" {
		*dst = lipgloss.Color(hex)
	}
}
