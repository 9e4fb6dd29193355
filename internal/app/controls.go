package app

import "github.com/detectaive/detectaive/internal/game"

// Control identifies a clickable element on the landing screen.
type Control int

const (
	ControlNone Control = iota
	ControlLogo
	ControlNewCase
	ControlDropdownQuick
	ControlDropdownStandard
	ControlDropdownComplex
	ControlAdmin
	ControlThemeToggle
	ControlCardQuick
	ControlCardStandard
	ControlCardComplex
)

// String returns the control's name, also used as its mouse zone ID.
func (c Control) String() string {
	switch c {
	case ControlLogo:
		return "logo"
	case ControlNewCase:
		return "new-case"
	case ControlDropdownQuick:
		return "dropdown-quick"
	case ControlDropdownStandard:
		return "dropdown-standard"
	case ControlDropdownComplex:
		return "dropdown-complex"
	case ControlAdmin:
		return "admin"
	case ControlThemeToggle:
		return "theme-toggle"
	case ControlCardQuick:
		return "card-quick"
	case ControlCardStandard:
		return "card-standard"
	case ControlCardComplex:
		return "card-complex"
	default:
		return "none"
	}
}

// Mode returns the case mode a control starts, if it starts one.
func (c Control) Mode() (game.Mode, bool) {
	switch c {
	case ControlDropdownQuick, ControlCardQuick:
		return game.ModeQuick, true
	case ControlDropdownStandard, ControlCardStandard:
		return game.ModeStandard, true
	case ControlDropdownComplex, ControlCardComplex:
		return game.ModeComplex, true
	default:
		return "", false
	}
}

// InDropdown reports whether c only exists while the dropdown is open.
func (c Control) InDropdown() bool {
	return c == ControlDropdownQuick || c == ControlDropdownStandard || c == ControlDropdownComplex
}

var (
	dropdownControls = []Control{ControlDropdownQuick, ControlDropdownStandard, ControlDropdownComplex}
	cardControls     = []Control{ControlCardQuick, ControlCardStandard, ControlCardComplex}
)

// visibleControls returns the focus order for the current dropdown state.
func visibleControls(dropdownOpen bool) []Control {
	order := []Control{ControlLogo, ControlNewCase}
	if dropdownOpen {
		order = append(order, dropdownControls...)
	}
	order = append(order, ControlAdmin, ControlThemeToggle)
	return append(order, cardControls...)
}

// cycleFocus moves from current by delta steps through the visible controls.
func cycleFocus(current Control, dropdownOpen bool, delta int) Control {
	order := visibleControls(dropdownOpen)
	idx := -1
	for i, c := range order {
		if c == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return order[0]
	}
	n := len(order)
	return order[((idx+delta)%n+n)%n]
}
