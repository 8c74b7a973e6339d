package spatial

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"polyscope/internal/polygon"
)

func rect(x0, y0, x1, y1 float64) polygon.Polygon {
	return polygon.Polygon{Points: []polygon.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}}
}

func TestIndexAt(t *testing.T) {
	polys := []polygon.Polygon{
		rect(0, 0, 2, 2),
		rect(1, 1, 3, 3),
		rect(10, 10, 11, 11),
		{},
		{Points: []polygon.Point{{X: 5, Y: 0}, {X: 5, Y: 4}, {X: 5, Y: 2}}},
	}
	ix := NewIndex(polys)
	assert.Equal(t, 4, ix.Len(), "empty polygons are not indexed")

	assert.Equal(t, []int{0, 1}, ix.At(polygon.Point{X: 1.5, Y: 1.5}))
	assert.Equal(t, []int{0}, ix.At(polygon.Point{X: 0, Y: 0}), "edges are inclusive")
	assert.Equal(t, []int{1}, ix.At(polygon.Point{X: 3, Y: 3}))
	assert.Equal(t, []int{4}, ix.At(polygon.Point{X: 5, Y: 1}), "degenerate box")
	assert.Empty(t, ix.At(polygon.Point{X: 5.0000001, Y: 1}))
	assert.Empty(t, ix.At(polygon.Point{X: 7, Y: 7}))
}

func TestIndexWithin(t *testing.T) {
	polys := []polygon.Polygon{
		rect(0, 0, 2, 2),
		rect(1, 1, 3, 3),
		rect(10, 10, 11, 11),
	}
	ix := NewIndex(polys)
	assert.Equal(t, []int{0, 1}, ix.Within(polygon.Borders{MinX: 0, MinY: 0, MaxX: 3, MaxY: 3}))
	assert.Equal(t, []int{0}, ix.Within(polygon.Borders{MinX: -1, MinY: -1, MaxX: 2.5, MaxY: 2.5}))
	assert.Equal(t, []int{0, 1, 2}, ix.Within(polygon.UnionBoundingBox(polys)))
	assert.Empty(t, ix.Within(polygon.Borders{MinX: 4, MinY: 4, MaxX: 5, MaxY: 5}))
}

func TestIndexMatchesLinearScan(t *testing.T) {
	var polys []polygon.Polygon
	for i := 0; i < 60; i++ {
		x := float64(i%8) * 1.5
		y := float64(i/8) * 1.25
		polys = append(polys, rect(x, y, x+2, y+1.75))
	}
	ix := NewIndex(polys)
	for _, pt := range []polygon.Point{{X: 0, Y: 0}, {X: 3.1, Y: 2.2}, {X: 7.5, Y: 5}, {X: 12, Y: 9.5}, {X: -1, Y: 3}} {
		t.Run(fmt.Sprintf("%v", pt), func(t *testing.T) {
			var want []int
			for i, p := range polys {
				if polygon.IsPointInside(pt, polygon.BoundingBox(p)) {
					want = append(want, i)
				}
			}
			assert.Equal(t, want, ix.At(pt))
		})
	}
}

func TestIndexLargeCoordinates(t *testing.T) {
	polys := []polygon.Polygon{
		rect(2e7, 2e7, 2e7+100, 2e7+100),
		{Points: []polygon.Point{{X: 1e9, Y: 0}, {X: 1e9, Y: 1}, {X: 1e9, Y: 2}}},
		rect(-3e8, -3e8, -3e8+0.5, -3e8+0.5),
	}
	ix := NewIndex(polys)
	assert.Equal(t, 3, ix.Len())

	assert.Equal(t, []int{0}, ix.At(polygon.Point{X: 2e7 + 100, Y: 2e7 + 50}), "right edge is inclusive")
	assert.Equal(t, []int{0}, ix.At(polygon.Point{X: 2e7, Y: 2e7}))
	assert.Empty(t, ix.At(polygon.Point{X: 2e7 + 100.001, Y: 2e7 + 50}))

	assert.Equal(t, []int{1}, ix.At(polygon.Point{X: 1e9, Y: 1}), "degenerate box")
	assert.Equal(t, []int{1}, ix.Within(polygon.BoundingBox(polys[1])))

	assert.Equal(t, []int{2}, ix.At(polygon.Point{X: -3e8 + 0.5, Y: -3e8}))
}

func TestIndexSkipsNonFiniteBoxes(t *testing.T) {
	polys := []polygon.Polygon{
		rect(0, 0, 1, 1),
		{Points: []polygon.Point{{X: math.NaN(), Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}},
		rect(0, 0, math.Inf(1), 1),
	}
	ix := NewIndex(polys)
	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, []int{0}, ix.At(polygon.Point{X: 0.5, Y: 0.5}))
	assert.Nil(t, ix.At(polygon.Point{X: math.NaN(), Y: 0}))
}
