package tui

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

const (
	headerHeight = 1
	footerHeight = 2
)

// layout is the cell geometry shared by View and mouse handling.
type layout struct {
	contentW int
	contentH int
	sidebarW int
	tableW   int
	mapX     int
	mapY     int
	mapW     int
	mapH     int
}

func (m Model) layout() layout {
	var lo layout
	lo.contentW = max(10, m.width)
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	if m.showSidebar {
		lo.sidebarW = m.opts.SidebarWidth
	}
	if m.showTable && len(m.polys) > 0 {
		lo.tableW = min(tableWidth(), lo.contentW/2)
	}
	lo.mapW = lo.contentW - lo.sidebarW - lo.tableW - 1
	if m.showSidebar {
		lo.mapW--
	}
	lo.mapW = max(10, lo.mapW)
	lo.mapH = lo.contentH
	lo.mapY = headerHeight
	if m.showSidebar {
		lo.mapX = lo.sidebarW + 1
	}
	return lo
}
