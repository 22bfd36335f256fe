package config

import (
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/flare/internal/core/banner"
)

// MuteFunc returns a store filter that drops banners whose message
// matches any configured mute pattern. Returns nil when no patterns are
// configured so callers can skip installing a filter entirely.
func (b BannerConfig) MuteFunc() func(banner.Kind) bool {
	if len(b.Mute) == 0 {
		return nil
	}

	patterns := slices.Clone(b.Mute)
	return func(k banner.Kind) bool {
		for _, pattern := range patterns {
			// Patterns are validated at load time; a bad pattern here
			// simply never matches.
			if ok, _ := doublestar.Match(pattern, k.Message); ok {
				return true
			}
		}
		return false
	}
}
