package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/detectaive/detectaive/internal/game"
	"github.com/detectaive/detectaive/internal/layout"
	"github.com/detectaive/detectaive/internal/theme"
)

// Content is everything besides the ViewState that the renderer reads.
type Content struct {
	Layout        layout.Layout
	ProgressLabel string
	Focus         Control
	Scroll        int
	Keys          KeyMap
	ShowFullHelp  bool

	// Mark wraps a control's rendering so clicks can be hit-tested.
	// Nil leaves renderings untouched.
	Mark func(c Control, s string) string
}

func (c Content) mark(ctrl Control, s string) string {
	if c.Mark == nil {
		return s
	}
	return c.Mark(ctrl, s)
}

// Render is the pure view function: one branch per ViewState variant.
func Render(vs ViewState, c Content) string {
	switch v := vs.(type) {
	case Ready:
		return renderReady(v, c)
	default:
		return ""
	}
}

func renderReady(v Ready, c Content) string {
	s := theme.NewStyles(theme.For(v.Theme))
	l := c.Layout

	if !l.Fits() {
		msg := theme.Truncate("Terminal too small", l.TotalWidth)
		return s.App.Render(lipgloss.Place(l.TotalWidth, l.TotalHeight, lipgloss.Center, lipgloss.Center, msg))
	}

	sidebar := renderSidebar(v, c, s)
	main := renderMain(c, s)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)

	return s.App.Render(lipgloss.JoinVertical(lipgloss.Left, body, renderFooter(c, s)))
}

func renderSidebar(v Ready, c Content, s theme.Styles) string {
	l := c.Layout
	inner := max(l.SidebarWidth-2, 1)

	logo := c.mark(ControlLogo, s.Logo.Render(theme.LogoSmall))
	logo = lipgloss.PlaceHorizontal(inner, lipgloss.Center, logo)

	// "New Case" on the left, progress on the right.
	label := "New Case"
	progress := s.Progress.Render(c.ProgressLabel)
	gap := max(inner-2-lipgloss.Width(label)-lipgloss.Width(progress), 1)
	newCaseStyle := s.Control(s.NewCase, c.Focus == ControlNewCase).Width(inner)
	newCase := c.mark(ControlNewCase, newCaseStyle.Render(label+strings.Repeat(" ", gap)+progress))

	top := []string{logo, "", newCase}
	if v.DropdownOpen {
		top = append(top, s.Dropdown.Render(renderDropdown(c, s, inner)))
	}

	admin := s.Control(s.AdminLink, c.Focus == ControlAdmin).Width(inner).Render("Admin")
	admin = c.mark(ControlAdmin, admin)
	icon := s.Control(s.ThemeToggle, c.Focus == ControlThemeToggle).Render(v.Theme.Icon())
	toggle := lipgloss.PlaceHorizontal(inner, lipgloss.Right, c.mark(ControlThemeToggle, icon))

	bottom := s.SidebarFooter.
		Width(l.SidebarWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, admin, "", toggle))

	// The footer block keeps its place; the top block gets what is left.
	sidebar := bottom
	if h := l.BodyHeight - lipgloss.Height(bottom); h > 0 {
		topBlock := s.Sidebar.
			Width(l.SidebarWidth).
			Height(h).
			MaxHeight(h).
			Render(lipgloss.JoinVertical(lipgloss.Left, top...))
		sidebar = lipgloss.JoinVertical(lipgloss.Left, topBlock, bottom)
	}

	return lipgloss.NewStyle().
		MaxWidth(l.SidebarWidth).
		MaxHeight(l.BodyHeight).
		Render(sidebar)
}

func renderDropdown(c Content, s theme.Styles, width int) string {
	items := make([]string, 0, len(dropdownControls))
	for _, ctrl := range dropdownControls {
		mode, _ := ctrl.Mode()
		card, _ := game.CaseFor(mode)
		item := s.Control(s.DropdownItem, c.Focus == ctrl).Width(width).Render(card.Title)
		items = append(items, c.mark(ctrl, item))
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// mainPanel is the main panel content before scrolling. Cards are rendered
// unmarked; cardsFrom and cardsTo locate them so the visible rows can be
// marked after the scroll window is cut.
type mainPanel struct {
	lines     []string
	cardsFrom int
	cardsTo   int
}

func mainWidth(c Content) int {
	return max(c.Layout.MainWidth-4, 1)
}

func buildMain(c Content, s theme.Styles) mainPanel {
	width := mainWidth(c)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var head []string
	if c.ShowFullHelp {
		head = append(head, center(renderHelp(c, s, true)), "")
	}
	head = append(head,
		"",
		center(s.Hero.Render(theme.LogoFor(width))),
		s.Description.Width(width).Render(game.Description),
	)
	tail := []string{
		lipgloss.PlaceHorizontal(width, lipgloss.Center, s.RenderTitle("How to Play")),
		renderSteps(c, s, width),
	}

	var p mainPanel
	p.lines = strings.Split(lipgloss.JoinVertical(lipgloss.Left, head...), "\n")
	p.cardsFrom = len(p.lines)
	p.lines = append(p.lines, strings.Split(renderCards(c, s, width, 0, -1, false), "\n")...)
	p.cardsTo = len(p.lines)
	p.lines = append(p.lines, strings.Split(lipgloss.JoinVertical(lipgloss.Left, tail...), "\n")...)
	return p
}

// maxScroll returns the largest useful scroll offset for the main panel.
func maxScroll(c Content, s theme.Styles) int {
	return max(len(buildMain(c, s).lines)-c.Layout.BodyHeight, 0)
}

func renderMain(c Content, s theme.Styles) string {
	l := c.Layout
	p := buildMain(c, s)

	offset := min(max(c.Scroll, 0), max(len(p.lines)-l.BodyHeight, 0))
	end := min(offset+l.BodyHeight, len(p.lines))
	visible := append([]string(nil), p.lines[offset:end]...)

	// Re-render the visible card rows with their click zones.
	if from, to := max(p.cardsFrom, offset), min(p.cardsTo, end); from < to {
		rows := renderCards(c, s, mainWidth(c), from-p.cardsFrom, to-p.cardsFrom, true)
		copy(visible[from-offset:], strings.Split(rows, "\n"))
	}

	return s.Main.
		Width(l.MainWidth).
		Height(l.BodyHeight).
		MaxHeight(l.BodyHeight).
		MaxWidth(l.MainWidth).
		Render(strings.Join(visible, "\n"))
}

// renderCards renders rows [top, bottom) of the card grid; a negative bottom
// means every row. With marked set, each card's visible rows form its zone.
func renderCards(c Content, s theme.Styles, width, top, bottom int, marked bool) string {
	cols := c.Layout.CardColumns()
	cases := game.Cases()

	// Borders sit outside lipgloss widths.
	cardWidth := width - 2
	if cols == 3 {
		cardWidth = (width-4)/3 - 2
	}

	cards := make([][]string, 0, len(cases))
	height := 0
	for i, cs := range cases {
		body := lipgloss.JoinVertical(lipgloss.Center,
			s.CardTitle.Render(cs.Title),
			s.CardBody.Render(cs.Subtitle()),
		)
		card := s.CardStyle(c.Focus == cardControls[i]).
			Width(cardWidth).
			Align(lipgloss.Center).
			Render(body)
		lines := strings.Split(card, "\n")
		cards = append(cards, lines)
		height = max(height, len(lines))
	}

	// clip cuts rows [from, to) out of one card and marks what remains.
	clip := func(i int, lines []string, from, to int) string {
		from, to = max(from, 0), min(to, len(lines))
		if from >= to {
			return ""
		}
		part := strings.Join(lines[from:to], "\n")
		if marked {
			part = c.mark(cardControls[i], part)
		}
		return part
	}

	if cols == 1 {
		total := 0
		for _, lines := range cards {
			total += len(lines)
		}
		if bottom < 0 {
			bottom = total
		}

		var out []string
		y := 0
		for i, lines := range cards {
			if part := clip(i, lines, top-y, bottom-y); part != "" {
				out = append(out, part)
			}
			y += len(lines)
		}
		return lipgloss.JoinVertical(lipgloss.Left, out...)
	}

	if bottom < 0 {
		bottom = height
	}
	blank := strings.Repeat(" ", cardWidth+2)
	row := make([]string, 0, 2*len(cards)-1)
	for i, lines := range cards {
		part := clip(i, lines, top, bottom)
		if part == "" {
			// Keep the column when none of this card's rows are visible.
			part = blank
		}
		if i > 0 {
			row = append(row, "  ")
		}
		row = append(row, part)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}

func renderSteps(c Content, s theme.Styles, width int) string {
	steps := game.Instructions()
	cols := c.Layout.StepColumns()

	colWidth := width
	if cols == 2 {
		colWidth = (width - 2) / 2
	}
	wrap := lipgloss.NewStyle().Width(colWidth).MarginBottom(1)

	render := func(st game.Step) string {
		heading := s.StepHeading.Render(fmt.Sprintf("%d. %s:", st.Number, st.Heading))
		return wrap.Render(heading + " " + s.StepBody.Render(st.Body))
	}

	half := (len(steps) + 1) / 2
	var left, right []string
	for i, st := range steps {
		if cols == 2 && i >= half {
			right = append(right, render(st))
		} else {
			left = append(left, render(st))
		}
	}

	if cols == 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, left...),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, right...),
	)
}

func renderHelp(c Content, s theme.Styles, full bool) string {
	h := help.New()
	h.ShowAll = full
	h.Styles.ShortKey = s.HelpKey
	h.Styles.ShortDesc = s.HelpDesc
	h.Styles.ShortSeparator = s.HelpDesc
	h.Styles.FullKey = s.HelpKey
	h.Styles.FullDesc = s.HelpDesc
	h.Styles.FullSeparator = s.HelpDesc
	return h.View(c.Keys)
}

func renderFooter(c Content, s theme.Styles) string {
	width := c.Layout.TotalWidth
	left := game.Attribution

	room := width - 2 - lipgloss.Width(left) - 2
	right := theme.Truncate(renderHelp(c, s, false), max(room, 0))
	gap := max(width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return s.Footer.Width(width).MaxWidth(width).MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}
