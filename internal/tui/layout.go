package tui

const (
	compactWidthBreakpoint  = 110
	compactHeightBreakpoint = 26

	collapsedSidebarWidth = 6
)

type uiLayout struct {
	Width  int
	Height int

	Compact bool

	HeaderHeight int
	FooterHeight int
	BodyHeight   int

	SidebarWidth   int
	MainWidth      int
	InspectorWidth int

	CompactSidebarHeight   int
	CompactMainHeight      int
	CompactInspectorHeight int
}

func computeLayout(width, height int, sidebarCollapsed bool) uiLayout {
	if width < 40 {
		width = 40
	}
	if height < 16 {
		height = 16
	}

	layout := uiLayout{
		Width:        width,
		Height:       height,
		HeaderHeight: 4,
		FooterHeight: 4,
	}

	layout.Compact = width < compactWidthBreakpoint || height < compactHeightBreakpoint
	if layout.Compact {
		layout.SidebarWidth = width
		layout.MainWidth = width
		layout.InspectorWidth = width
		remaining := maxInt(7, height-layout.HeaderHeight-layout.FooterHeight)
		layout.CompactSidebarHeight = 3
		if sidebarCollapsed {
			layout.CompactSidebarHeight = 1
		}
		remaining -= layout.CompactSidebarHeight
		if remaining < 6 {
			remaining = 6
		}
		layout.CompactInspectorHeight = maxInt(4, remaining/3)
		layout.CompactMainHeight = maxInt(5, remaining-layout.CompactInspectorHeight)
		layout.BodyHeight = layout.CompactMainHeight
		return layout
	}

	layout.BodyHeight = maxInt(6, height-layout.HeaderHeight-layout.FooterHeight)
	layout.SidebarWidth = clampInt(width*18/100, 22, 30)
	if sidebarCollapsed {
		layout.SidebarWidth = collapsedSidebarWidth
	}
	layout.InspectorWidth = clampInt(width*28/100, 30, 46)
	layout.MainWidth = maxInt(30, width-layout.SidebarWidth-layout.InspectorWidth-2)
	return layout
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
