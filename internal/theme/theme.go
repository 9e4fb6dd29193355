package theme

import "github.com/charmbracelet/lipgloss"

// Kind selects one of the two palettes.
type Kind int

const (
	KindDark Kind = iota
	KindLight
)

// Toggle returns the other kind.
func (k Kind) Toggle() Kind {
	if k == KindDark {
		return KindLight
	}
	return KindDark
}

// Icon returns the toggle button glyph for the kind.
func (k Kind) Icon() string {
	if k == KindLight {
		return "☀️"
	}
	return "🌙"
}

func (k Kind) String() string {
	switch k {
	case KindDark:
		return "dark"
	case KindLight:
		return "light"
	default:
		return "unknown"
	}
}

// Theme holds all visual configuration for the landing screen.
type Theme struct {
	// Name of the theme
	Name string

	// Kind this palette renders
	Kind Kind

	// Color palette
	Colors ColorPalette
}

// ColorPalette holds all color definitions.
type ColorPalette struct {
	// Page
	BgPrimary   lipgloss.Color
	TextPrimary lipgloss.Color

	// Sidebar
	BgSidebar       lipgloss.Color
	BgSidebarFooter lipgloss.Color
	BgControl       lipgloss.Color
	TextControl     lipgloss.Color
	BgLink          lipgloss.Color
	TextLink        lipgloss.Color
	BgHover         lipgloss.Color

	// Main panel
	BgCard lipgloss.Color
	Border lipgloss.Color

	// Footer
	BgFooter lipgloss.Color

	// Accents
	TextMuted lipgloss.Color
	Focus     lipgloss.Color
	Lens      lipgloss.Color
}

// Dark returns the default palette.
func Dark() *Theme {
	return &Theme{
		Name: "Dark",
		Kind: KindDark,
		Colors: ColorPalette{
			BgPrimary:       Gray900,
			TextPrimary:     White,
			BgSidebar:       Gray800,
			BgSidebarFooter: Gray700,
			BgControl:       Gray700,
			TextControl:     White,
			BgLink:          Gray600,
			TextLink:        White,
			BgHover:         Gray600,
			BgCard:          Gray800,
			Border:          Gray600,
			BgFooter:        Gray800,
			TextMuted:       Gray500,
			Focus:           Brass,
			Lens:            Crimson,
		},
	}
}

// Light returns the light palette.
func Light() *Theme {
	return &Theme{
		Name: "Light",
		Kind: KindLight,
		Colors: ColorPalette{
			BgPrimary:       Gray100,
			TextPrimary:     Gray900,
			BgSidebar:       Gray200,
			BgSidebarFooter: Gray300,
			BgControl:       White,
			TextControl:     Gray800,
			BgLink:          Gray400,
			TextLink:        Gray800,
			BgHover:         Gray300,
			BgCard:          White,
			Border:          Gray300,
			BgFooter:        Gray200,
			TextMuted:       Gray500,
			Focus:           Brass,
			Lens:            Crimson,
		},
	}
}

// For returns the palette for k.
func For(k Kind) *Theme {
	if k == KindLight {
		return Light()
	}
	return Dark()
}
