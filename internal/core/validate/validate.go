// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/flare/internal/core/styles"
)

// Theme validates a theme name against the built-in palettes.
func Theme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

// ThemeField returns a criterio validator for theme names.
func ThemeField(field, name string) error {
	return criterio.Run(field, name, Theme)
}

// MutePattern validates a mute glob pattern.
func MutePattern(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid glob pattern %q", pattern)
	}
	return nil
}
