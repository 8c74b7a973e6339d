package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBox(t *testing.T) {
	assert.Equal(t, Borders{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}, BoundingBox(square))
	assert.Equal(t, Borders{MinX: -1, MinY: 0, MaxX: 5, MaxY: 5}, BoundingBox(pentagon))
	assert.Equal(t, Borders{MinX: 3, MinY: -1, MaxX: 3, MaxY: -1}, BoundingBox(poly(3, -1)))
	assert.Equal(t, Borders{}, BoundingBox(Polygon{}))
}

func TestBoundingBoxCoversEveryPoint(t *testing.T) {
	for _, p := range []Polygon{
		square,
		triangle,
		pentagon,
		poly(-3.5, 1, 2, -4, 6.25, 2, 1, 7, -2, 5),
		poly(100, -100, -100, 100, 0, 0),
	} {
		box := BoundingBox(p)
		assert.LessOrEqual(t, box.MinX, box.MaxX)
		assert.LessOrEqual(t, box.MinY, box.MaxY)
		for _, pt := range p.Points {
			assert.True(t, IsPointInside(pt, box), "%v outside %v", pt, box)
		}
	}
}

func TestIsPointInside(t *testing.T) {
	box := Borders{MinX: 0, MinY: 0, MaxX: 2, MaxY: 3}
	for _, tc := range []struct {
		pt   Point
		want bool
	}{
		{Point{1, 1}, true},
		{Point{0, 0}, true},
		{Point{2, 3}, true},
		{Point{0, 3}, true},
		{Point{-0.1, 1}, false},
		{Point{1, 3.1}, false},
		{Point{2.5, 2.5}, false},
	} {
		assert.Equal(t, tc.want, IsPointInside(tc.pt, box), "%v", tc.pt)
	}
}

func TestEdgeComparators(t *testing.T) {
	a := poly(0, 0, 2, 0, 2, 2)
	b := poly(1, -1, 5, -1, 5, 1)
	assert.True(t, LessByMinX(a, b))
	assert.False(t, LessByMinX(b, a))
	assert.True(t, LessByMaxX(a, b))
	assert.True(t, LessByMinY(b, a))
	assert.True(t, LessByMaxY(b, a))
	assert.False(t, LessByMaxY(a, a))
}

func TestUnionBoundingBox(t *testing.T) {
	polys := []Polygon{
		poly(0, 0, 2, 0, 2, 2),
		poly(1, -1, 5, -1, 5, 1),
		poly(-3, 4, -2, 4, -2, 6),
	}
	want := Borders{MinX: -3, MinY: -1, MaxX: 5, MaxY: 6}
	assert.Equal(t, want, UnionBoundingBox(polys))

	var manual Borders
	for i, p := range polys {
		box := BoundingBox(p)
		if i == 0 {
			manual = box
			continue
		}
		manual.MinX = min(manual.MinX, box.MinX)
		manual.MinY = min(manual.MinY, box.MinY)
		manual.MaxX = max(manual.MaxX, box.MaxX)
		manual.MaxY = max(manual.MaxY, box.MaxY)
	}
	assert.Equal(t, manual, UnionBoundingBox(polys))

	assert.Equal(t, BoundingBox(square), UnionBoundingBox([]Polygon{square}))
	assert.Equal(t, Borders{}, UnionBoundingBox(nil))
}

func TestBordersUnion(t *testing.T) {
	a := Borders{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	b := Borders{MinX: -1, MinY: 0.5, MaxX: 0.5, MaxY: 4}
	u := a.Union(b)
	assert.Equal(t, Borders{MinX: -1, MinY: 0, MaxX: 1, MaxY: 4}, u)
	assert.Equal(t, 2.0, u.Width())
	assert.Equal(t, 4.0, u.Height())
}
