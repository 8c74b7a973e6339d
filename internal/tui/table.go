package tui

import (
	"sort"
	"strconv"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"polyscope/internal/polygon"
)

type sortKey struct {
	name string
	less polygon.Less
}

var sortKeys = []sortKey{
	{"area", polygon.LessByArea},
	{"vertices", polygon.LessByVertexCount},
	{"minx", polygon.LessByMinX},
	{"maxx", polygon.LessByMaxX},
	{"miny", polygon.LessByMinY},
	{"maxy", polygon.LessByMaxY},
}

func sortIndex(name string) int {
	for i, k := range sortKeys {
		if strings.EqualFold(k.name, name) {
			return i
		}
	}
	return 0
}

// sortOrder returns polygon ids ordered by less; equal polygons keep their
// input order in both directions.
func sortOrder(polys []polygon.Polygon, less polygon.Less, reversed bool) []int {
	order := make([]int, len(polys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := polys[order[i]], polys[order[j]]
		if reversed {
			return less(b, a)
		}
		return less(a, b)
	})
	return order
}

var columnWidths = []int{4, 6, 10, 9, 9, 9, 9}

func tableColumns() []table.Column {
	titles := []string{"#", "verts", "area", "minX", "minY", "maxX", "maxY"}
	cols := make([]table.Column, len(titles))
	for i, t := range titles {
		cols[i] = table.Column{Title: t, Width: columnWidths[i]}
	}
	return cols
}

func tableWidth() int {
	w := 0
	for _, cw := range columnWidths {
		w += cw + 2
	}
	return w + 2
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func (m Model) tableRows() []table.Row {
	rows := make([]table.Row, 0, len(m.order))
	for _, id := range m.order {
		p := m.polys[id]
		box := polygon.BoundingBox(p)
		rows = append(rows, table.Row{
			strconv.Itoa(id + 1),
			strconv.Itoa(polygon.VertexCount(p)),
			strconv.FormatFloat(polygon.Area(p), 'f', m.opts.Precision, 64),
			formatCoord(box.MinX),
			formatCoord(box.MinY),
			formatCoord(box.MaxX),
			formatCoord(box.MaxY),
		})
	}
	return rows
}

// refreshTable re-sorts the polygons and rebuilds the rows, keeping the
// cursor on the same polygon when it is still present.
func (m *Model) refreshTable() {
	prev, hadPrev := m.selectedID()
	m.order = sortOrder(m.polys, sortKeys[m.sortIdx].less, m.reversed)
	m.tbl.SetRows(m.tableRows())
	cursor := 0
	if hadPrev {
		for i, id := range m.order {
			if id == prev {
				cursor = i
				break
			}
		}
	}
	m.tbl.SetCursor(cursor)
}

// selectedID is the polygon under the table cursor.
func (m Model) selectedID() (int, bool) {
	if !m.showTable || len(m.order) == 0 {
		return 0, false
	}
	c := m.tbl.Cursor()
	if c < 0 || c >= len(m.order) {
		return 0, false
	}
	return m.order[c], true
}
