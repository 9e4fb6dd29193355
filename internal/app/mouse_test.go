package app

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/detectaive/detectaive/internal/game"
	"github.com/detectaive/detectaive/internal/router"
	"github.com/detectaive/detectaive/internal/theme"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedModel(t *testing.T, width, height int) (Model, *router.Recorder) {
	t.Helper()
	rec := &router.Recorder{}
	zones := zone.New()
	t.Cleanup(zones.Close)

	m := New(Options{Navigator: rec, Zones: zones})
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	newModel, _ = newModel.Update(MountedMsg{})
	return newModel.(Model), rec
}

// zoneOf renders m and waits for the zone manager to record ctrl.
func zoneOf(t *testing.T, m Model, ctrl Control) *zone.ZoneInfo {
	t.Helper()
	m.View()
	require.Eventually(t, func() bool {
		return !m.zones.Get(m.zoneID(ctrl)).IsZero()
	}, time.Second, 5*time.Millisecond, "zone %s", ctrl)
	return m.zones.Get(m.zoneID(ctrl))
}

func click(m Model, x, y int) (Model, tea.Cmd) {
	newModel, cmd := m.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	})
	return newModel.(Model), cmd
}

func TestClickEveryControl(t *testing.T) {
	route := func(ctrl Control) []string {
		mode, _ := ctrl.Mode()
		return []string{game.Route(mode)}
	}

	tests := []struct {
		ctrl      Control
		wantPaths []string
		wantState func(State) State
	}{
		{ctrl: ControlLogo, wantPaths: []string{"/"}},
		{ctrl: ControlNewCase, wantState: func(s State) State {
			s.ShowCaseOptions = false
			return s
		}},
		{ctrl: ControlDropdownQuick, wantPaths: route(ControlDropdownQuick)},
		{ctrl: ControlDropdownStandard, wantPaths: route(ControlDropdownStandard)},
		{ctrl: ControlDropdownComplex, wantPaths: route(ControlDropdownComplex)},
		{ctrl: ControlAdmin, wantPaths: []string{"/admin"}},
		{ctrl: ControlThemeToggle, wantState: func(s State) State {
			s.Theme = theme.KindLight
			return s
		}},
		{ctrl: ControlCardQuick, wantPaths: route(ControlCardQuick)},
		{ctrl: ControlCardStandard, wantPaths: route(ControlCardStandard)},
		{ctrl: ControlCardComplex, wantPaths: route(ControlCardComplex)},
	}

	for _, tt := range tests {
		t.Run(tt.ctrl.String(), func(t *testing.T) {
			m, rec := sizedModel(t, 160, 80)
			m.state.ShowCaseOptions = true
			before := m.State()

			z := zoneOf(t, m, tt.ctrl)
			m, cmd := click(m, z.StartX, z.StartY)

			assert.Empty(t, exec(cmd))
			assert.Equal(t, tt.ctrl, m.Focused())
			if tt.wantPaths == nil {
				assert.Empty(t, rec.Paths())
			} else {
				assert.Equal(t, tt.wantPaths, rec.Paths())
			}

			want := before
			if tt.wantState != nil {
				want = tt.wantState(before)
			}
			assert.Equal(t, want, m.State())
		})
	}
}

func TestClickPartlyScrolledCard(t *testing.T) {
	for _, hidden := range []int{1, 2, 3, 4} {
		t.Run(fmt.Sprintf("%d rows hidden", hidden), func(t *testing.T) {
			m, rec := sizedModel(t, 160, 12)
			p := buildMain(m.content(), theme.NewStyles(theme.For(m.state.Theme)))

			m.scroll = p.cardsFrom + hidden
			require.Less(t, m.scroll, p.cardsTo, "part of the card stays on screen")
			require.LessOrEqual(t, m.scroll, maxScroll(m.content(), theme.NewStyles(theme.For(m.state.Theme))))

			z := zoneOf(t, m, ControlCardQuick)
			assert.Zero(t, z.StartY, "zone starts at the first visible row")

			_, cmd := click(m, z.StartX, 0)
			exec(cmd)
			assert.Equal(t, []string{"/game?mode=quick"}, rec.Paths())
		})
	}

	t.Run("bottom rows cut off", func(t *testing.T) {
		full, _ := sizedModel(t, 160, 80)
		p := buildMain(full.content(), theme.NewStyles(theme.For(full.state.Theme)))

		// Body ends three rows into the card grid.
		m, rec := sizedModel(t, 160, p.cardsFrom+3+1)
		require.Less(t, m.layout.BodyHeight, p.cardsTo)

		z := zoneOf(t, m, ControlCardComplex)
		assert.Equal(t, p.cardsFrom, z.StartY)
		assert.Less(t, z.EndY, m.layout.BodyHeight)

		_, cmd := click(m, z.StartX, z.StartY)
		exec(cmd)
		assert.Equal(t, []string{"/game?mode=complex"}, rec.Paths())
	})
}

func TestClickOnScrolledOffCardDoesNothing(t *testing.T) {
	m, rec := sizedModel(t, 160, 8)
	p := buildMain(m.content(), theme.NewStyles(theme.For(m.state.Theme)))

	m.scroll = min(p.cardsTo, maxScroll(m.content(), theme.NewStyles(theme.For(m.state.Theme))))
	require.GreaterOrEqual(t, m.scroll, p.cardsTo, "cards are fully scrolled off")

	// The admin link is recorded in the same scan.
	zoneOf(t, m, ControlAdmin)
	assert.True(t, m.zones.Get(m.zoneID(ControlCardQuick)).IsZero())

	_, cmd := click(m, m.layout.SidebarWidth+4, 0)
	exec(cmd)
	assert.Empty(t, rec.Paths())
}
