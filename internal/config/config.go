package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DefaultFolder string `koanf:"default_folder"`
	ImageProtocol string `koanf:"image_protocol"` // "auto", "kitty", "sixel", or "none"
	LogLevel      string `koanf:"log_level"`      // "debug", "info", "warn", "error"
	Icons         string `koanf:"icons"`          // "nerd", "unicode", or "none"
	Notifications bool   `koanf:"notifications"`  // desktop notification when a slideshow ends

	Indicator   IndicatorConfig   `koanf:"indicator"`
	AutoAdvance AutoAdvanceConfig `koanf:"autoadvance"`
	Pager       PagerConfig       `koanf:"pager"`
}

// IndicatorConfig holds the segment geometry, in terminal cells.
type IndicatorConfig struct {
	CollapsedWidth float64  `koanf:"collapsed_width"` // default: 2
	Spacing        *float64 `koanf:"spacing"`         // default: 1
	MaxWidth       int      `koanf:"max_width"`       // 0 = full terminal width
}

// AutoAdvanceConfig holds the auto-advance clock settings.
type AutoAdvanceConfig struct {
	Enabled  *bool         `koanf:"enabled"`  // default: true
	Interval time.Duration `koanf:"interval"` // default: 50ms
	Step     float64       `koanf:"step"`     // progress per tick, (0, 1], default: 0.01
	End      string        `koanf:"end"`      // "stop" or "wrap" (default: "stop")
}

// PagerConfig holds scroll and settle animation settings.
type PagerConfig struct {
	FrameInterval time.Duration `koanf:"frame_interval"` // default: 16ms
	SettleFactor  float64       `koanf:"settle_factor"`  // (0, 1], default: 0.3
	Nudge         float64       `koanf:"nudge"`          // pages per wheel notch, default: 0.1
	ReleaseAfter  time.Duration `koanf:"release_after"`  // idle time ending a wheel drag, default: 400ms
}

// Load reads the configuration. With an explicit path only that file is
// read and it must exist; otherwise the default locations are merged.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(expandPath(path)), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	} else {
		// Try config files in order of priority (last wins)
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
					return nil, fmt.Errorf("load %s: %w", p, err)
				}
			}
		}
	}

	cfg := &Config{
		DefaultFolder: "", // empty means use cwd
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}
	cfg.ImageProtocol = strings.ToLower(strings.TrimSpace(cfg.ImageProtocol))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Icons = strings.ToLower(strings.TrimSpace(cfg.Icons))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/reel/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "reel", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetImageProtocol returns the configured image protocol, "auto" if unset or unknown.
func (c *Config) GetImageProtocol() string {
	switch c.ImageProtocol {
	case "kitty", "sixel", "none":
		return c.ImageProtocol
	default:
		return "auto"
	}
}

// GetIconStyle returns the configured icon style, "none" if unset or unknown.
func (c *Config) GetIconStyle() string {
	switch c.Icons {
	case "nerd", "unicode":
		return c.Icons
	default:
		return "none"
	}
}

// GetLogLevel returns the configured log level, "info" if unset.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

// GetIndicatorConfig returns the indicator configuration with defaults applied.
func (c *Config) GetIndicatorConfig() IndicatorConfig {
	cfg := c.Indicator

	if cfg.CollapsedWidth <= 0 {
		cfg.CollapsedWidth = 2
	}
	if cfg.Spacing == nil || *cfg.Spacing < 0 {
		spacing := 1.0
		cfg.Spacing = &spacing
	}
	if cfg.MaxWidth < 0 {
		cfg.MaxWidth = 0
	}

	return cfg
}

// GetAutoAdvanceConfig returns the auto-advance configuration with defaults applied.
func (c *Config) GetAutoAdvanceConfig() AutoAdvanceConfig {
	cfg := c.AutoAdvance

	if cfg.Enabled == nil {
		enabled := true
		cfg.Enabled = &enabled
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 50 * time.Millisecond
	}
	if cfg.Step <= 0 || cfg.Step > 1 {
		cfg.Step = 0.01
	}
	cfg.End = strings.ToLower(strings.TrimSpace(cfg.End))
	if cfg.End != "wrap" {
		cfg.End = "stop"
	}

	return cfg
}

// GetPagerConfig returns the pager configuration with defaults applied.
func (c *Config) GetPagerConfig() PagerConfig {
	cfg := c.Pager

	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = 16 * time.Millisecond
	}
	if cfg.SettleFactor <= 0 || cfg.SettleFactor > 1 {
		cfg.SettleFactor = 0.3
	}
	if cfg.Nudge <= 0 || cfg.Nudge > 1 {
		cfg.Nudge = 0.1
	}
	if cfg.ReleaseAfter <= 0 {
		cfg.ReleaseAfter = 400 * time.Millisecond
	}

	return cfg
}

// AutoAdvanceEnabled reports whether the slideshow clock is on.
func (c *Config) AutoAdvanceEnabled() bool {
	return *c.GetAutoAdvanceConfig().Enabled
}
