package app

import "github.com/detectaive/detectaive/internal/game"

// MountedMsg is emitted once by Init, after the program has attached.
type MountedMsg struct{}

// ToggleThemeMsg flips the theme.
type ToggleThemeMsg struct{}

// ToggleCaseOptionsMsg opens or closes the "New Case" dropdown.
type ToggleCaseOptionsMsg struct{}

// StartGameMsg requests navigation to a new case of the given mode.
type StartGameMsg struct {
	Mode game.Mode
}

// OpenLinkMsg requests navigation to a static link target.
type OpenLinkMsg struct {
	Path string
}

// ProgressMsg replaces the label next to "New Case".
type ProgressMsg struct {
	Label string
}
