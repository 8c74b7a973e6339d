package tui

import (
	"errors"
	"fmt"
	"strings"

	"polyscope/internal/geom"
	"polyscope/internal/polygon"
	"polyscope/internal/query"
)

// runCommand executes a prompt line against the loaded set. RMECHO may
// shrink the set, in which case the derived views are rebuilt.
func (m *Model) runCommand(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		m.status = "command: empty"
		return
	}
	if m.proc == nil {
		m.proc = query.New(nil, query.WithPrecision(m.opts.Precision), query.WithLogger(m.log))
	}
	before := len(m.proc.Polygons())
	out, err := m.proc.Exec(line)
	switch {
	case errors.Is(err, query.ErrInvalidCommand):
		m.status = line + " → " + query.InvalidCommand
		return
	case err != nil:
		m.status = "command error: " + err.Error()
		return
	}
	if len(m.proc.Polygons()) != before {
		m.applyPolygons(append([]polygon.Polygon(nil), m.proc.Polygons()...))
	}
	m.status = line + " → " + out
}

// inspect describes the polygon under the table cursor, or the first
// polygon under the mouse when the table is hidden.
func (m Model) inspect() (string, bool) {
	id, ok := m.selectedID()
	if !ok && len(m.hoverIDs) > 0 {
		id, ok = m.hoverIDs[0], true
	}
	if !ok || id < 0 || id >= len(m.polys) {
		return "", false
	}
	p := m.polys[id]
	box := polygon.BoundingBox(p)
	parity := "odd"
	if polygon.IsEven(p) {
		parity = "even"
	}
	text := geom.FormatPolygon(p)
	if len(text) > 120 {
		text = text[:117] + "..."
	}
	lines := []string{
		fmt.Sprintf("polygon: #%d", id+1),
		fmt.Sprintf("vertices: %d (%s)", polygon.VertexCount(p), parity),
		fmt.Sprintf("area: %.*f", m.opts.Precision, polygon.Area(p)),
		fmt.Sprintf("bbox: [%s, %s, %s, %s]", formatCoord(box.MinX), formatCoord(box.MinY), formatCoord(box.MaxX), formatCoord(box.MaxY)),
		fmt.Sprintf("nested boxes: %d", len(m.index.Within(box))-1),
		text,
	}
	return strings.Join(lines, "\n"), true
}
