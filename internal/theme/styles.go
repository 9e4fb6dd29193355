package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Border definitions
var (
	// FocusBorder marks the card under keyboard focus.
	FocusBorder = lipgloss.Border{
		Top:         "━",
		Bottom:      "━",
		Left:        "┃",
		Right:       "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}

	// CaseBorder frames an unfocused case card.
	CaseBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
)

// Styles is the full set of styles for one palette. Build it with NewStyles
// whenever the theme changes; nothing here is shared between themes.
type Styles struct {
	Theme *Theme

	App    lipgloss.Style
	Footer lipgloss.Style

	// Sidebar
	Sidebar        lipgloss.Style
	SidebarFooter  lipgloss.Style
	Logo           lipgloss.Style
	NewCase        lipgloss.Style
	Progress       lipgloss.Style
	Dropdown       lipgloss.Style
	DropdownItem   lipgloss.Style
	AdminLink      lipgloss.Style
	ThemeToggle    lipgloss.Style
	FocusedControl lipgloss.Style

	// Main panel
	Main        lipgloss.Style
	Hero        lipgloss.Style
	Description lipgloss.Style
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardTitle   lipgloss.Style
	CardBody    lipgloss.Style
	Heading     lipgloss.Style
	StepHeading lipgloss.Style
	StepBody    lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles builds the styles for t.
func NewStyles(t *Theme) Styles {
	c := t.Colors
	s := Styles{Theme: t}

	s.App = lipgloss.NewStyle().
		Background(c.BgPrimary).
		Foreground(c.TextPrimary)

	s.Footer = lipgloss.NewStyle().
		Background(c.BgFooter).
		Foreground(c.TextPrimary).
		Padding(0, 1)

	s.Sidebar = lipgloss.NewStyle().
		Background(c.BgSidebar).
		Foreground(c.TextPrimary).
		Padding(1, 1)

	s.SidebarFooter = lipgloss.NewStyle().
		Background(c.BgSidebarFooter).
		Foreground(c.TextPrimary).
		Padding(1, 1)

	s.Logo = lipgloss.NewStyle().
		Foreground(c.TextPrimary).
		Bold(true)

	s.NewCase = lipgloss.NewStyle().
		Background(c.BgControl).
		Foreground(c.TextControl).
		Padding(0, 1)

	s.Progress = lipgloss.NewStyle().
		Background(c.BgControl).
		Foreground(c.TextMuted)

	s.Dropdown = lipgloss.NewStyle().
		Background(c.BgControl).
		Foreground(c.TextControl).
		MarginTop(1)

	s.DropdownItem = lipgloss.NewStyle().
		Background(c.BgControl).
		Foreground(c.TextControl).
		Padding(0, 1)

	s.AdminLink = lipgloss.NewStyle().
		Background(c.BgLink).
		Foreground(c.TextLink).
		Align(lipgloss.Center)

	s.ThemeToggle = lipgloss.NewStyle().
		Align(lipgloss.Right)

	s.FocusedControl = lipgloss.NewStyle().
		Background(c.BgHover).
		Foreground(c.Focus).
		Bold(true)

	s.Main = lipgloss.NewStyle().
		Background(c.BgPrimary).
		Foreground(c.TextPrimary).
		Padding(0, 2)

	s.Hero = lipgloss.NewStyle().
		Foreground(c.Lens).
		Bold(true)

	s.Description = lipgloss.NewStyle().
		Foreground(c.TextPrimary).
		Align(lipgloss.Center).
		MarginTop(1).
		MarginBottom(1)

	s.Card = lipgloss.NewStyle().
		Background(c.BgCard).
		Foreground(c.TextPrimary).
		Border(CaseBorder).
		BorderForeground(c.Border).
		Padding(1, 2)

	s.CardFocused = s.Card.
		Border(FocusBorder).
		BorderForeground(c.Focus)

	s.CardTitle = lipgloss.NewStyle().
		Bold(true).
		MarginBottom(1)

	s.CardBody = lipgloss.NewStyle()

	s.Heading = lipgloss.NewStyle().
		Bold(true).
		MarginTop(2).
		MarginBottom(1)

	s.StepHeading = lipgloss.NewStyle().
		Bold(true)

	s.StepBody = lipgloss.NewStyle().
		Foreground(c.TextPrimary)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(c.TextPrimary).
		Bold(true)

	s.HelpDesc = lipgloss.NewStyle().
		Foreground(c.TextMuted)

	return s
}

// Control returns base, or the focused variant when focused is set.
func (s Styles) Control(base lipgloss.Style, focused bool) lipgloss.Style {
	if focused {
		return base.
			Background(s.FocusedControl.GetBackground()).
			Foreground(s.FocusedControl.GetForeground()).
			Bold(true)
	}
	return base
}

// CardStyle returns the card style for the focus state.
func (s Styles) CardStyle(focused bool) lipgloss.Style {
	if focused {
		return s.CardFocused
	}
	return s.Card
}

// RenderTitle renders a section heading between rule marks: ─[ title ]─
func (s Styles) RenderTitle(title string) string {
	rule := lipgloss.NewStyle().
		Foreground(s.Theme.Colors.Border).
		Render
	line := rule("─[ ") + s.Heading.UnsetMargins().Render(title) + rule(" ]─")

	return lipgloss.NewStyle().
		MarginTop(s.Heading.GetMarginTop()).
		MarginBottom(s.Heading.GetMarginBottom()).
		Render(line)
}

// Truncate cuts s to width cells, ANSI aware, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
