package tui

import (
	"strings"

	lipgloss "github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/flare/internal/core/banner"
	"github.com/colonyops/flare/internal/core/styles"
)

// BannerRenderer turns banner records into styled terminal boxes. The
// compact form is a single truncated message line; the expanded form
// runs the full message through the markdown renderer.
type BannerRenderer struct {
	markdown markdownRenderer
}

type markdownRenderer interface {
	Render(in string) (string, error)
}

func NewBannerRenderer() *BannerRenderer {
	return &BannerRenderer{}
}

// Render produces the banner box for a record at its current opacity.
func (br *BannerRenderer) Render(r *banner.Record, expanded bool) string {
	opacity := r.Opacity()
	accent := styles.Fade(styles.LevelColor(r.Kind.Level), opacity)
	text := styles.Fade(styles.ColorForeground, opacity)

	innerWidth := bannerWidth - 4 // border and padding

	title := r.Kind.Level.Icon() + " " + r.Kind.Title
	lines := []string{
		styles.BannerTitleStyle.Foreground(accent).Render(ansi.Truncate(title, innerWidth, "…")),
	}

	if expanded {
		lines = append(lines, br.renderMarkdown(r.Kind.Message, innerWidth))
	} else if r.Kind.Message != "" {
		body := ansi.Truncate(r.Kind.Message, innerWidth, "…")
		lines = append(lines, lipgloss.NewStyle().Foreground(text).Render(body))
	}

	return styles.BannerStyle(r.Kind.Level).
		BorderForeground(accent).
		Width(bannerWidth - 2).
		Render(strings.Join(lines, "\n"))
}

func (br *BannerRenderer) renderMarkdown(message string, width int) string {
	if br.markdown == nil {
		rdr, err := newMarkdownRenderer(width)
		if err != nil {
			log.Error().Err(err).Msg("failed to create markdown renderer")
			return message
		}
		br.markdown = rdr
	}

	out, err := br.markdown.Render(message)
	if err != nil {
		log.Error().Err(err).Msg("failed to render banner markdown")
		return message
	}
	return strings.Trim(out, "\n")
}

// BannerView composites the banner stack over the main view.
type BannerView struct {
	controller *BannerController
}

func NewBannerView(controller *BannerController) *BannerView {
	return &BannerView{controller: controller}
}

// Overlay stacks each laid-out banner as its own layer over background.
// Banners keep their hit-test rectangles: layer positions come straight
// from the controller's layout.
func (v *BannerView) Overlay(background string) string {
	layouts := v.controller.Layouts()
	if len(layouts) == 0 {
		return background
	}

	layers := make([]*lipgloss.Layer, 0, len(layouts)+1)
	layers = append(layers, lipgloss.NewLayer(background))

	// Newest first in the layout means highest z-order for the newest.
	for i := len(layouts) - 1; i >= 0; i-- {
		l := layouts[i]
		layer := lipgloss.NewLayer(l.Content)
		layer.X(l.X).Y(l.Y).Z(1 + len(layouts) - i)
		layers = append(layers, layer)
	}

	return lipgloss.NewCompositor(layers...).Render()
}

func contentHeight(content string) int {
	return lipgloss.Height(content)
}
