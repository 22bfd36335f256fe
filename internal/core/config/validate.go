package config

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/flare/internal/core/validate"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		validate.ThemeField("tui.theme", c.TUI.Theme),
		c.Banners.validate(),
	)
}

func (b BannerConfig) validate() error {
	var errs criterio.FieldErrorsBuilder

	if b.VisibleCap < 1 {
		errs = errs.Append("banners.visible_cap", fmt.Errorf("must be at least 1"))
	}
	if b.ExitMs < 0 {
		errs = errs.Append("banners.exit_ms", fmt.Errorf("cannot be negative"))
	}
	if b.AutoDismissMs < 0 {
		errs = errs.Append("banners.auto_dismiss_ms", fmt.Errorf("cannot be negative"))
	}
	if b.DragThreshold < 0 {
		errs = errs.Append("banners.drag_threshold", fmt.Errorf("cannot be negative"))
	}

	for i, pattern := range b.Mute {
		if err := validate.MutePattern(pattern); err != nil {
			errs = errs.Append(fmt.Sprintf("banners.mute[%d]", i), err)
		}
	}

	return errs.ToError()
}
