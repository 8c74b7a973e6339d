package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"polyscope/internal/geom"
	"polyscope/internal/polygon"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.layout()
		if m.showSidebar {
			m.l.SetSize(lo.sidebarW-2, lo.contentH-2)
		}
		// border and sort title take three rows
		m.tbl.SetHeight(max(3, lo.contentH-3))
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.cmdMode {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	case tea.MouseMsg:
		m.updateHover(msg)
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.zoomIn()
		case tea.MouseButtonWheelDown:
			m.zoomOut()
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "ctrl+d", "enter":
		if msg.String() == "enter" && !looksComplete(m.ta.Value()) {
			break
		}
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		m.loadPasted(w)
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// looksComplete lets Enter insert newlines while a multi-line text-form
// paste is in progress; WKT renders immediately.
func looksComplete(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	if geom.IsWKT(s) {
		return true
	}
	return !strings.Contains(s, "\n")
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.cmdMode = false
		m.ti.Blur()
		return m, nil
	case "enter":
		m.runCommand(m.ti.Value())
		m.cmdMode = false
		m.ti.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) zoomIn() {
	if m.zoom < 64 {
		m.zoom *= m.opts.ZoomStep
		m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
	}
}

func (m *Model) zoomOut() {
	if m.zoom > 0.05 {
		m.zoom /= m.opts.ZoomStep
		m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
	}
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1":
		m.showFill = !m.showFill
		m.status = fmt.Sprintf("fill: %v", m.showFill)
	case "2":
		m.showEdges = !m.showEdges
		m.status = fmt.Sprintf("edges: %v", m.showEdges)
	case "f":
		m.showFrame = !m.showFrame
		m.status = fmt.Sprintf("frame: %v", m.showFrame)
	case "l":
		all := m.showFill && m.showEdges && m.showFrame
		m.showFill, m.showEdges, m.showFrame = !all, !all, !all
		m.status = fmt.Sprintf("layers: fill=%v edges=%v frame=%v", m.showFill, m.showEdges, m.showFrame)
	case "+", "=":
		m.zoomIn()
	case "-", "_":
		m.zoomOut()
	case "0":
		m.zoom = 1.0
		m.offsetX, m.offsetY = 0, 0
		m.status = "view reset"
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
			lo := m.layout()
			m.l.SetSize(lo.sidebarW-2, lo.contentH-2)
		}
	case "p":
		m.pasteMode = true
		m.ta.SetValue("")
		m.status = "paste mode"
		return m, m.ta.Focus()
	case ":":
		m.cmdMode = true
		m.ti.SetValue("")
		return m, m.ti.Focus()
	case "h":
		m.helpVisible = !m.helpVisible
	case "t":
		m.showTable = !m.showTable
		m.status = fmt.Sprintf("table: %v", m.showTable)
	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(sortKeys)
		m.refreshTable()
		m.status = "sort: " + m.sortLabel()
	case "r":
		m.reversed = !m.reversed
		m.refreshTable()
		m.status = "sort: " + m.sortLabel()
	case "i":
		if m.inspectPopup != "" {
			m.inspectPopup = ""
			return m, nil
		}
		if text, ok := m.inspect(); ok {
			m.inspectPopup = text
			m.status = "inspect popup"
		} else {
			m.status = "nothing to inspect"
		}
	case "esc":
		m.inspectPopup = ""
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		}
	case "up", "down", "pgup", "pgdown", "home", "end":
		if m.showTable && len(m.order) > 0 && !m.showSidebar {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "up":
			m.offsetY--
		case "down":
			m.offsetY++
		}
	case "k":
		m.offsetY--
	case "j":
		m.offsetY++
	case "left", "a":
		m.offsetX -= 2
	case "right", "d":
		m.offsetX += 2
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) sortLabel() string {
	dir := "asc"
	if m.reversed {
		dir = "desc"
	}
	return sortKeys[m.sortIdx].name + " " + dir
}

// updateHover tracks the mouse over the map: the plane coordinates under
// the cursor, the polygons whose boxes contain them, and the nearest vertex.
func (m *Model) updateHover(msg tea.MouseMsg) {
	lo := m.layout()
	cx, cy := msg.X-lo.mapX, msg.Y-lo.mapY
	if cx < 0 || cx >= lo.mapW || cy < 0 || cy >= lo.mapH || len(m.polys) == 0 {
		m.hovering, m.hoverHasGeo, m.hoverIDs = false, false, nil
		return
	}
	m.hovering = true
	m.hoverX, m.hoverY, m.hoverHasGeo = m.cellToXY(cx, cy, lo.mapW, lo.mapH)
	m.hoverIDs = nil
	if m.hoverHasGeo {
		m.hoverIDs = m.index.At(polygon.Point{X: m.hoverX, Y: m.hoverY})
	}
	// nearest vertex on the microgrid
	hxMic, hyMic := cx*2, cy*4
	best := 1<<31 - 1
	bx, by := hxMic, hyMic
	for _, p := range m.polys {
		for _, pt := range p.Points {
			mx, my, ok := m.screenXYMicro(pt.X, pt.Y, lo.mapW, lo.mapH)
			if !ok {
				continue
			}
			dx := mx - hxMic
			dy := my - hyMic
			if d := dx*dx + dy*dy; d < best {
				best = d
				bx, by = mx, my
			}
		}
	}
	m.hoverMicX, m.hoverMicY = bx, by
}
