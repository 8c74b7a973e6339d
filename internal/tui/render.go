package tui

import (
	"strings"

	"polyscope/internal/polygon"
)

// extent returns the projected box, false when nothing is loaded. Degenerate
// sets (all points on one line) are widened around their center.
func (m Model) extent() (polygon.Borders, bool) {
	if len(m.polys) == 0 {
		return polygon.Borders{}, false
	}
	b := m.box
	if b.Width() <= 0 {
		b.MinX -= 0.5
		b.MaxX += 0.5
	}
	if b.Height() <= 0 {
		b.MinY -= 0.5
		b.MaxY += 0.5
	}
	return b, true
}

// screenXYMicro maps plane coordinates into a 2x4 microgrid per cell,
// applying zoom around the center and the pan offset.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	b, ok := m.extent()
	if !ok {
		return 0, 0, false
	}
	nx := (x - b.MinX) / b.Width()
	ny := (y - b.MinY) / b.Height()
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// cellToXY converts a map cell coordinate back to plane coordinates.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	b, ok := m.extent()
	if !ok || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	return b.MinX + nx*b.Width(), b.MinY + ny*b.Height(), true
}

func (m Model) projectRing(p polygon.Polygon, w, h int) [][2]int {
	ring := make([][2]int, 0, len(p.Points))
	for _, pt := range p.Points {
		mx, my, ok := m.screenXYMicro(pt.X, pt.Y, w, h)
		if !ok {
			continue
		}
		ring = append(ring, [2]int{mx, my})
	}
	return ring
}

func (m Model) renderMap(w, h int) string {
	base := newBrailleBuf(w, h)
	for _, p := range m.polys {
		ring := m.projectRing(p, w, h)
		if len(ring) < 3 {
			continue
		}
		if m.showFill {
			base.fillRing(ring)
		}
		if m.showEdges {
			base.drawRing(ring)
		}
	}

	var layers []layer
	if m.showFrame {
		frame := newBrailleBuf(w, h)
		corners := polygon.Polygon{Points: []polygon.Point{
			{X: m.box.MinX, Y: m.box.MinY},
			{X: m.box.MaxX, Y: m.box.MinY},
			{X: m.box.MaxX, Y: m.box.MaxY},
			{X: m.box.MinX, Y: m.box.MaxY},
		}}
		frame.drawRing(m.projectRing(corners, w, h))
		layers = append(layers, layer{buf: frame, style: frameStyle})
	}
	if id, ok := m.selectedID(); ok {
		sel := newBrailleBuf(w, h)
		sel.drawRing(m.projectRing(m.polys[id], w, h))
		layers = append(layers, layer{buf: sel, style: selectedStyle})
	}
	if m.hovering {
		dot := newBrailleBuf(w, h)
		dot.setPixel(m.hoverMicX, m.hoverMicY)
		layers = append(layers, layer{buf: dot, style: hoverStyle})
	}
	return strings.Join(composite(base, layers...), "\n")
}
