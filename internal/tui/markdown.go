package tui

import (
	"github.com/charmbracelet/glamour"

	"github.com/colonyops/flare/internal/core/styles"
)

func newMarkdownRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
}
