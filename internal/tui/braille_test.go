package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPixel(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(3, 3)
	b.setPixel(-1, 0)
	b.setPixel(4, 0)
	b.setPixel(0, 4)
	assert.Equal(t, uint8(0x01), b.cell(0, 0))
	assert.Equal(t, uint8(0x80), b.cell(1, 0))
	assert.Equal(t, []string{"⠁⢀"}, b.toLines())
}

func TestDrawLineMicro(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.drawLineMicro(0, 3, 3, 3)
	assert.Equal(t, uint8(0xC0), b.cell(0, 0))
	assert.Equal(t, uint8(0xC0), b.cell(1, 0))
}

func TestFillRing(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.fillRing([][2]int{{0, 0}, {3, 0}, {3, 3}, {0, 3}})
	// the bottom scanline is half-open and stays empty
	assert.Equal(t, []string{"⠿⠿"}, b.toLines())

	empty := newBrailleBuf(2, 1)
	empty.fillRing([][2]int{{0, 0}, {3, 3}})
	assert.Equal(t, []string{"  "}, empty.toLines())
}

func TestCompositeWithoutLayers(t *testing.T) {
	b := newBrailleBuf(3, 2)
	b.drawRing([][2]int{{0, 0}, {5, 0}, {5, 7}, {0, 7}})
	assert.Equal(t, b.toLines(), composite(b))
}
