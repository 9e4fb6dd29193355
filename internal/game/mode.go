package game

import (
	"errors"
	"fmt"
	"net/url"
)

// Route targets emitted by the landing screen. They are opaque to it.
const (
	HomePath  = "/"
	AdminPath = "/admin"
	GamePath  = "/game"
)

// ErrUnknownMode is returned when a string is not one of the three case modes.
var ErrUnknownMode = errors.New("unknown case mode")

// Mode selects the difficulty of the case the external engine generates.
type Mode string

const (
	ModeQuick    Mode = "quick"
	ModeStandard Mode = "standard"
	ModeComplex  Mode = "complex"
)

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{ModeQuick, ModeStandard, ModeComplex}
}

// Valid reports whether m is one of the three literal modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeQuick, ModeStandard, ModeComplex:
		return true
	default:
		return false
	}
}

// String returns the literal forwarded to the router.
func (m Mode) String() string {
	return string(m)
}

// ParseMode accepts only the literal mode strings.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

// Route returns the navigation target for starting a case, e.g. "/game?mode=quick".
func Route(m Mode) string {
	q := url.Values{}
	q.Set("mode", m.String())
	return GamePath + "?" + q.Encode()
}
