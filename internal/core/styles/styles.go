// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	lipgloss "github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/colonyops/flare/internal/core/banner"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	BannerSuccessStyle lipgloss.Style
	BannerWarningStyle lipgloss.Style
	BannerErrorStyle   lipgloss.Style

	BannerTitleStyle lipgloss.Style

	TextMutedStyle lipgloss.Style
	TextErrorStyle lipgloss.Style

	HeaderStyle  lipgloss.Style
	DividerStyle lipgloss.Style
	HelpStyle    lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	BannerSuccessStyle = bannerBaseStyle(ColorSuccess)
	BannerWarningStyle = bannerBaseStyle(ColorWarning)
	BannerErrorStyle = bannerBaseStyle(ColorError)

	BannerTitleStyle = lipgloss.NewStyle().
		Bold(true)

	TextMutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TextErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
}

func bannerBaseStyle(accent color.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Foreground(ColorForeground).
		Padding(0, 1)
}

// LevelColor returns the display color for a banner level.
func LevelColor(l banner.Level) color.Color {
	switch l {
	case banner.LevelSuccess:
		return ColorSuccess
	case banner.LevelWarning:
		return ColorWarning
	case banner.LevelError:
		return ColorError
	default:
		return ColorForeground
	}
}

// BannerStyle returns the base style for a banner level.
func BannerStyle(l banner.Level) lipgloss.Style {
	switch l {
	case banner.LevelSuccess:
		return BannerSuccessStyle
	case banner.LevelWarning:
		return BannerWarningStyle
	case banner.LevelError:
		return BannerErrorStyle
	default:
		return BannerSuccessStyle
	}
}

// Fade blends c toward the theme background by 1-opacity. Terminals have
// no alpha channel, so fade-out is approximated by interpolating the
// banner's colors into the background color.
func Fade(c color.Color, opacity float64) color.Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	fg, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	bg, ok := colorful.MakeColor(ColorBackground)
	if !ok {
		return c
	}
	return lipgloss.Color(fg.BlendRgb(bg, 1-opacity).Hex())
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)
	surface := colorHexPtr(ColorSurface)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	return cfg
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
