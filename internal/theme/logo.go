package theme

import "github.com/charmbracelet/lipgloss"

// LogoSmall is the sidebar rendition of the logo.
const LogoSmall = ` ╭───╮
 │ ◉ │
 ╰───╯╲
      ╲
DetectAive`

// LogoLarge is the main panel rendition of the logo.
const LogoLarge = ` ____       _            _        _    _
|  _ \  ___| |_ ___  ___| |_     / \  (_)_   _____
| | | |/ _ \ __/ _ \/ __| __|   / _ \ | \ \ / / _ \
| |_| |  __/ ||  __/ (__| |_   / ___ \| |\ V /  __/
|____/ \___|\__\___|\___|\__| /_/   \_\_| \_/ \___|`

// LogoFor returns the large logo when it fits in width, the small one otherwise.
func LogoFor(width int) string {
	if lipgloss.Width(LogoLarge) <= width {
		return LogoLarge
	}
	return LogoSmall
}
