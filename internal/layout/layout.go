package layout

// Layout constants
const (
	DefaultSidebarWidth = 24
	MinSidebarWidth     = 16
	MaxSidebarPercent   = 40
	FooterHeight        = 1
	MinMainWidth        = 20
	MinHeight           = 5

	// MinWidth and MinTotalHeight are the smallest terminal the screen is drawn in.
	MinWidth       = MinSidebarWidth + MinMainWidth
	MinTotalHeight = MinHeight + FooterHeight

	// CardGridMinWidth is the narrowest main panel that fits three cards side by side.
	CardGridMinWidth = 3 * 26
	// StepColumnsMinWidth is the narrowest main panel that fits two instruction columns.
	StepColumnsMinWidth = 2 * 36
)

// Layout holds calculated dimensions for the sidebar, main panel and footer.
type Layout struct {
	// Total terminal dimensions
	TotalWidth  int
	TotalHeight int

	SidebarWidth int
	MainWidth    int

	// Height shared by sidebar and main panel
	BodyHeight int

	FooterHeight int
}

// Calculate computes the layout for a terminal of the given size.
func Calculate(width, height int) Layout {
	l := Layout{
		TotalWidth:   width,
		TotalHeight:  height,
		FooterHeight: FooterHeight,
	}

	sidebar := DefaultSidebarWidth
	if limit := width * MaxSidebarPercent / 100; sidebar > limit {
		sidebar = limit
	}
	l.SidebarWidth = max(sidebar, MinSidebarWidth)
	l.MainWidth = max(width-l.SidebarWidth, MinMainWidth)

	// Ensure we don't exceed total width
	if l.SidebarWidth+l.MainWidth > width {
		l.MainWidth = max(width-l.SidebarWidth, 0)
	}

	l.BodyHeight = max(height-l.FooterHeight, MinHeight)
	return l
}

// Fits reports whether the terminal is large enough to draw the screen.
// Below that size the minimum panel widths would overflow it.
func (l Layout) Fits() bool {
	return l.TotalWidth >= MinWidth && l.TotalHeight >= MinTotalHeight
}

// CardColumns returns how many difficulty cards fit side by side.
func (l Layout) CardColumns() int {
	if l.MainWidth >= CardGridMinWidth {
		return 3
	}
	return 1
}

// StepColumns returns how many "How to Play" columns fit.
func (l Layout) StepColumns() int {
	if l.MainWidth >= StepColumnsMinWidth {
		return 2
	}
	return 1
}
