// Package config handles configuration loading and validation for flare.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/flare/internal/core/banner"
)

// Config holds the application configuration.
type Config struct {
	Banners BannerConfig `yaml:"banners"`
	TUI     TUIConfig    `yaml:"tui"`
}

// BannerConfig tunes the banner lifecycle policy. Durations are in
// milliseconds.
type BannerConfig struct {
	// VisibleCap is the maximum number of banners shown at once.
	VisibleCap int `yaml:"visible_cap"`
	// ExitMs is the exit-animation length; deletion fires after it.
	ExitMs int `yaml:"exit_ms"`
	// AutoDismissMs is the on-screen time for non-persistent banners.
	AutoDismissMs int `yaml:"auto_dismiss_ms"`
	// DragThreshold is the upward drag distance, in drag units, that
	// dismisses a banner on release.
	DragThreshold float64 `yaml:"drag_threshold"`
	// Mute lists glob patterns; banners whose message matches any
	// pattern are dropped before they are stored.
	Mute []string `yaml:"mute"`
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Banners: BannerConfig{
			VisibleCap:    banner.DefaultVisibleCap,
			ExitMs:        int(banner.DefaultExitDuration / time.Millisecond),
			AutoDismissMs: int(banner.DefaultAutoDismissAfter / time.Millisecond),
			DragThreshold: banner.DefaultDragThreshold,
		},
		TUI: TUIConfig{
			Theme: "tokyo-night",
		},
	}
}

// Load reads configuration from the given path. If the path is empty or
// the file doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Banners.VisibleCap == 0 {
		c.Banners.VisibleCap = defaults.Banners.VisibleCap
	}
	if c.Banners.ExitMs == 0 {
		c.Banners.ExitMs = defaults.Banners.ExitMs
	}
	if c.Banners.AutoDismissMs == 0 {
		c.Banners.AutoDismissMs = defaults.Banners.AutoDismissMs
	}
	if c.Banners.DragThreshold == 0 {
		c.Banners.DragThreshold = defaults.Banners.DragThreshold
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// StoreConfig converts the banner section into the store's policy.
func (b BannerConfig) StoreConfig() banner.Config {
	return banner.Config{
		VisibleCap:       b.VisibleCap,
		ExitDuration:     time.Duration(b.ExitMs) * time.Millisecond,
		AutoDismissAfter: time.Duration(b.AutoDismissMs) * time.Millisecond,
		DragThreshold:    b.DragThreshold,
	}
}
