package app

import (
	"testing"

	"github.com/detectaive/detectaive/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestControlMode(t *testing.T) {
	tests := []struct {
		ctrl Control
		mode game.Mode
	}{
		{ControlDropdownQuick, game.ModeQuick},
		{ControlDropdownStandard, game.ModeStandard},
		{ControlDropdownComplex, game.ModeComplex},
		{ControlCardQuick, game.ModeQuick},
		{ControlCardStandard, game.ModeStandard},
		{ControlCardComplex, game.ModeComplex},
	}

	for _, tt := range tests {
		t.Run(tt.ctrl.String(), func(t *testing.T) {
			mode, ok := tt.ctrl.Mode()
			assert.True(t, ok)
			assert.Equal(t, tt.mode, mode)
		})
	}

	for _, ctrl := range []Control{ControlNone, ControlLogo, ControlNewCase, ControlAdmin, ControlThemeToggle} {
		_, ok := ctrl.Mode()
		assert.False(t, ok, ctrl.String())
	}
}

func TestVisibleControls(t *testing.T) {
	closed := visibleControls(false)
	open := visibleControls(true)

	assert.Len(t, closed, 7)
	assert.Len(t, open, 10)
	assert.NotContains(t, closed, ControlDropdownQuick)
	assert.Contains(t, open, ControlDropdownQuick)
}

func TestCycleFocus(t *testing.T) {
	t.Run("wraps forward", func(t *testing.T) {
		assert.Equal(t, ControlLogo, cycleFocus(ControlCardComplex, false, 1))
	})

	t.Run("wraps backward", func(t *testing.T) {
		assert.Equal(t, ControlCardComplex, cycleFocus(ControlLogo, false, -1))
	})

	t.Run("enters dropdown when open", func(t *testing.T) {
		assert.Equal(t, ControlDropdownQuick, cycleFocus(ControlNewCase, true, 1))
		assert.Equal(t, ControlAdmin, cycleFocus(ControlNewCase, false, 1))
	})

	t.Run("unknown focus resets to first", func(t *testing.T) {
		assert.Equal(t, ControlLogo, cycleFocus(ControlDropdownQuick, false, 1))
	})
}
