package app

import "github.com/detectaive/detectaive/internal/theme"

// State is the landing screen's UI state. The three fields are independent:
// no mutator touches more than one of them.
type State struct {
	Theme           theme.Kind
	Mounted         bool
	ShowCaseOptions bool
}

// NewState returns the state at construction: dark, unmounted, dropdown closed.
func NewState() State {
	return State{Theme: theme.KindDark}
}

// Mount marks the state mounted. It reports whether anything changed, so a
// repeated call is a no-op.
func (s *State) Mount() bool {
	if s.Mounted {
		return false
	}
	s.Mounted = true
	return true
}

// ToggleTheme flips between dark and light.
func (s *State) ToggleTheme() {
	s.Theme = s.Theme.Toggle()
}

// ToggleCaseOptions opens or closes the "New Case" dropdown.
func (s *State) ToggleCaseOptions() {
	s.ShowCaseOptions = !s.ShowCaseOptions
}

// ViewState projects s onto what the renderer needs.
func (s State) ViewState() ViewState {
	if !s.Mounted {
		return Unmounted{}
	}
	return Ready{Theme: s.Theme, DropdownOpen: s.ShowCaseOptions}
}

// ViewState is either Unmounted or Ready.
type ViewState interface {
	viewState()
}

// Unmounted renders nothing.
type Unmounted struct{}

// Ready renders the full screen.
type Ready struct {
	Theme        theme.Kind
	DropdownOpen bool
}

func (Unmounted) viewState() {}
func (Ready) viewState() {}
