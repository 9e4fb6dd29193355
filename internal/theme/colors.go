package theme

import "github.com/charmbracelet/lipgloss"

// Gray scale shared by both palettes
var (
	White   = lipgloss.Color("#FFFFFF")
	Gray100 = lipgloss.Color("#F3F4F6")
	Gray200 = lipgloss.Color("#E5E7EB")
	Gray300 = lipgloss.Color("#D1D5DB")
	Gray400 = lipgloss.Color("#9CA3AF")
	Gray500 = lipgloss.Color("#6B7280")
	Gray600 = lipgloss.Color("#4B5563")
	Gray700 = lipgloss.Color("#374151")
	Gray800 = lipgloss.Color("#1F2937")
	Gray900 = lipgloss.Color("#111827")
)

// Accent colors - the magnifying glass and focus ring
var (
	Brass   = lipgloss.Color("#D4A017") // Focus
	Crimson = lipgloss.Color("#B91C1C") // Logo lens
)
