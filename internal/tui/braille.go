package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a canvas of 2x4 micro-pixels per terminal cell.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bits indexed by [column][row] within a cell
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawRing outlines a closed ring of micro coords.
func (b *brailleBuf) drawRing(ring [][2]int) {
	for i := range ring {
		a := ring[i]
		c := ring[(i+1)%len(ring)]
		b.drawLineMicro(a[0], a[1], c[0], c[1])
	}
}

// fillRing fills a ring with the even-odd rule, one micro scanline at a time.
func (b *brailleBuf) fillRing(ring [][2]int) {
	if len(ring) < 3 {
		return
	}
	hMic := b.h * 4
	var xs []int
	for yMic := 0; yMic < hMic; yMic++ {
		xs = xs[:0]
		for i := range ring {
			a := ring[i]
			c := ring[(i+1)%len(ring)]
			if a[1] == c[1] {
				continue
			}
			y0, y1 := a[1], c[1]
			x0, x1 := a[0], c[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= min(xs[i+1], b.w*2-1); xMic++ {
				b.setPixel(xMic, yMic)
			}
		}
	}
}

func (b *brailleBuf) cell(x, y int) uint8 {
	return b.m[y][x]
}

func brailleRune(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = brailleRune(b.m[y][x])
		}
		out[y] = string(row)
	}
	return out
}

// layer is a canvas drawn in its own style on top of the base canvas.
type layer struct {
	buf   *brailleBuf
	style lipgloss.Style
}

// composite renders base with overlays; later layers win per cell and the
// masks of base and overlay are merged so dots are never lost.
func composite(base *brailleBuf, layers ...layer) []string {
	out := make([]string, base.h)
	for y := 0; y < base.h; y++ {
		var sb strings.Builder
		for x := 0; x < base.w; x++ {
			mask := base.cell(x, y)
			var style *lipgloss.Style
			for i := range layers {
				if over := layers[i].buf.cell(x, y); over != 0 {
					mask |= over
					style = &layers[i].style
				}
			}
			r := string(brailleRune(mask))
			if style != nil {
				r = style.Render(r)
			}
			sb.WriteString(r)
		}
		out[y] = sb.String()
	}
	return out
}
