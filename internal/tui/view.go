package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	header := titleStyle.Render(" polyscope ─ polygon metrics viewer ")
	header = lipgloss.NewStyle().Width(lo.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View())
	}

	// Map viewport
	var canvas string
	if m.pasteMode {
		m.ta.SetWidth(lo.mapW)
		m.ta.SetHeight(min(lo.mapH, 12))
		canvas = m.ta.View()
	} else {
		canvas = m.renderMap(lo.mapW, lo.mapH)
	}
	mapView := lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(canvas)

	// Polygon table
	var tableView string
	if lo.tableW > 0 {
		title := dimStyle.Render(fmt.Sprintf("sort: %s", m.sortLabel()))
		// narrow terminals clip the right-hand columns instead of wrapping rows
		rows := lipgloss.NewStyle().MaxWidth(lo.tableW - 4).Render(m.tbl.View())
		tableView = boxStyle.Width(lo.tableW - 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, rows))
	}

	// Inspect popup overlays the body
	popup := ""
	if m.inspectPopup != "" {
		maxPopupW := max(20, min(48, lo.contentW/2))
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(lo.contentW, lipgloss.Height(box), lipgloss.Left, lipgloss.Center, box)
	}

	// Body row
	cols := []string{}
	if m.showSidebar {
		cols = append(cols, sidebar, " ")
	}
	cols = append(cols, mapView)
	if tableView != "" {
		cols = append(cols, " ", tableView)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	// Footer: prompt or status/help, hover coordinates at the right
	var left string
	if m.cmdMode {
		left = m.ti.View()
	} else {
		left = lipgloss.JoinHorizontal(lipgloss.Bottom, dimStyle.Render(" "+m.status+" "), m.renderHelp())
	}
	coords := ""
	if m.hoverHasGeo {
		coords = fmt.Sprintf("  x=%.5f y=%.5f", m.hoverX, m.hoverY)
		if len(m.hoverIDs) > 0 {
			ids := make([]string, len(m.hoverIDs))
			for i, id := range m.hoverIDs {
				ids[i] = fmt.Sprintf("#%d", id+1)
			}
			coords += " in " + strings.Join(ids, ",")
		}
		coords = dimStyle.Render(coords + "  ")
	}
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓ rows",
		"←→ pan",
		"+/- zoom",
		"s sort",
		"r reverse",
		": command",
		"Tab files",
		"p paste",
		"i inspect",
		"f frame",
		"t table",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
