package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestKindToggle(t *testing.T) {
	assert.Equal(t, KindLight, KindDark.Toggle())
	assert.Equal(t, KindDark, KindLight.Toggle())
	assert.Equal(t, KindDark, KindDark.Toggle().Toggle())
}

func TestKindIcon(t *testing.T) {
	assert.Equal(t, "🌙", KindDark.Icon())
	assert.Equal(t, "☀️", KindLight.Icon())
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindDark, "dark"},
		{KindLight, "light"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestPalettes(t *testing.T) {
	t.Run("dark", func(t *testing.T) {
		th := Dark()
		assert.Equal(t, KindDark, th.Kind)
		assert.Equal(t, Gray900, th.Colors.BgPrimary)
		assert.Equal(t, White, th.Colors.TextPrimary)
		assert.Equal(t, Gray800, th.Colors.BgSidebar)
		assert.Equal(t, Gray700, th.Colors.BgControl)
	})

	t.Run("light", func(t *testing.T) {
		th := Light()
		assert.Equal(t, KindLight, th.Kind)
		assert.Equal(t, Gray100, th.Colors.BgPrimary)
		assert.Equal(t, Gray900, th.Colors.TextPrimary)
		assert.Equal(t, Gray200, th.Colors.BgSidebar)
		assert.Equal(t, White, th.Colors.BgControl)
	})

	t.Run("For picks by kind", func(t *testing.T) {
		assert.Equal(t, "Dark", For(KindDark).Name)
		assert.Equal(t, "Light", For(KindLight).Name)
	})
}

func TestNewStyles(t *testing.T) {
	dark := NewStyles(Dark())
	light := NewStyles(Light())

	assert.Equal(t, lipgloss.TerminalColor(Gray900), dark.App.GetBackground())
	assert.Equal(t, lipgloss.TerminalColor(Gray100), light.App.GetBackground())
	assert.Equal(t, lipgloss.TerminalColor(Gray800), dark.Sidebar.GetBackground())
	assert.Equal(t, lipgloss.TerminalColor(Gray200), light.Sidebar.GetBackground())
	assert.NotEqual(t, dark.Card.GetBackground(), light.Card.GetBackground())
}

func TestCardStyle(t *testing.T) {
	s := NewStyles(Dark())

	assert.Equal(t, CaseBorder, s.CardStyle(false).GetBorderStyle())
	assert.Equal(t, FocusBorder, s.CardStyle(true).GetBorderStyle())
}

func TestRenderTitle(t *testing.T) {
	title := NewStyles(Dark()).RenderTitle("How to Play")

	assert.Contains(t, ansi.Strip(title), "─[ How to Play ]─")
	assert.Equal(t, 4, lipgloss.Height(title), "heading margins surround the title line")
}

func TestLogoFor(t *testing.T) {
	assert.Equal(t, LogoLarge, LogoFor(200))
	assert.Equal(t, LogoSmall, LogoFor(20))
	assert.True(t, strings.Contains(LogoSmall, "DetectAive"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel…", Truncate("hello", 4))
}
