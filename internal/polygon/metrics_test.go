package polygon

import (
	"math"
	"sort"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poly(coords ...float64) Polygon {
	var p Polygon
	for i := 0; i+1 < len(coords); i += 2 {
		p.Points = append(p.Points, Point{X: coords[i], Y: coords[i+1]})
	}
	return p
}

var (
	square   = poly(0, 0, 2, 0, 2, 2, 0, 2)
	triangle = poly(0, 0, 3, 0, 0, 4)
	pentagon = poly(0, 0, 4, 0, 5, 3, 2, 5, -1, 3)
)

func TestVertexCountAndParity(t *testing.T) {
	for _, tc := range []struct {
		name  string
		p     Polygon
		count int
		even  bool
	}{
		{"triangle", triangle, 3, false},
		{"square", square, 4, true},
		{"pentagon", pentagon, 5, false},
		{"empty", Polygon{}, 0, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.count, VertexCount(tc.p))
			assert.Equal(t, tc.even, IsEven(tc.p))
			assert.Equal(t, !tc.even, IsOdd(tc.p))
			assert.True(t, HasVertexCount(tc.p, tc.count))
			assert.False(t, HasVertexCount(tc.p, tc.count+1))
		})
	}
}

func TestIsNumericString(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"123", true},
		{"0", true},
		{"", true},
		{"12a", false},
		{"-3", false},
		{"1.5", false},
		{" 7", false},
		{"٣", false},
	} {
		assert.Equal(t, tc.want, IsNumericString(tc.in), "%q", tc.in)
	}
}

func TestAreaTermWraps(t *testing.T) {
	// last edge runs from (0,2) back to (0,0)
	assert.Equal(t, 0.0, AreaTerm(square.Points, 3))
	// (0+0)*(0-2)
	assert.Equal(t, 0.0, AreaTerm(square.Points, 0))
	// (0+2)*(2-2)
	assert.Equal(t, 0.0, AreaTerm(square.Points, 1))
	// (2+2)*(2-0)
	assert.Equal(t, 8.0, AreaTerm(square.Points, 2))
}

func TestArea(t *testing.T) {
	assert.Equal(t, 4.0, Area(square))
	assert.Equal(t, 6.0, Area(triangle))
	assert.Equal(t, 0.0, Area(Polygon{}))

	reversed := Polygon{}
	for i := len(square.Points) - 1; i >= 0; i-- {
		reversed.Points = append(reversed.Points, square.Points[i])
	}
	assert.Equal(t, 4.0, Area(reversed), "orientation must not change the area")
}

func TestAreaMatchesPlanar(t *testing.T) {
	for _, p := range []Polygon{
		square,
		triangle,
		pentagon,
		poly(-3.5, 1, 2, -4, 6.25, 2, 1, 7, -2, 5),
		poly(0, 0, 10, 0, 10, 10, 5, 3, 0, 10),
	} {
		ring := orb.Ring{}
		for _, pt := range p.Points {
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}
		ring = append(ring, ring[0])
		assert.InDelta(t, math.Abs(planar.Area(ring)), Area(p), 1e-9)
	}
}

func TestLessByAreaIsStrictWeakOrder(t *testing.T) {
	polys := []Polygon{square, triangle, pentagon, poly(0, 0, 1, 0, 0, 1), poly(0, 0, 4, 0, 4, 1, 0, 1)}
	for _, a := range polys {
		assert.False(t, LessByArea(a, a), "irreflexive")
		for _, b := range polys {
			if LessByArea(a, b) {
				assert.False(t, LessByArea(b, a), "asymmetric")
			}
			for _, c := range polys {
				if LessByArea(a, b) && LessByArea(b, c) {
					assert.True(t, LessByArea(a, c), "transitive")
				}
			}
		}
	}

	sorted := append([]Polygon(nil), polys...)
	sort.SliceStable(sorted, func(i, j int) bool { return LessByArea(sorted[i], sorted[j]) })
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, Area(sorted[i-1]), Area(sorted[i]))
	}
}

func TestLessByVertexCount(t *testing.T) {
	assert.True(t, LessByVertexCount(triangle, square))
	assert.False(t, LessByVertexCount(square, triangle))
	assert.False(t, LessByVertexCount(square, square))
}

func TestMinMax(t *testing.T) {
	small := poly(0, 0, 1, 0, 1, 1, 0, 1)
	otherSmall := poly(5, 5, 6, 5, 6, 6, 5, 6)
	polys := []Polygon{square, small, pentagon, otherSmall, triangle}

	got, ok := Min(polys, LessByArea)
	require.True(t, ok)
	assert.True(t, got.Equal(small), "first minimal element wins")

	got, ok = Max(polys, LessByVertexCount)
	require.True(t, ok)
	assert.True(t, got.Equal(pentagon))

	got, ok = Max([]Polygon{small, otherSmall}, LessByArea)
	require.True(t, ok)
	assert.True(t, got.Equal(small), "first maximal element wins")

	_, ok = Min(nil, LessByArea)
	assert.False(t, ok)
	_, ok = Max(nil, LessByArea)
	assert.False(t, ok)
}

func TestEchoOf(t *testing.T) {
	echo := EchoOf(square)
	assert.True(t, echo(square, poly(0, 0, 2, 0, 2, 2, 0, 2)))
	assert.False(t, echo(square, triangle))
	assert.False(t, echo(triangle, triangle))
}

func TestEqual(t *testing.T) {
	assert.True(t, square.Equal(poly(0, 0, 2, 0, 2, 2, 0, 2)))
	assert.False(t, square.Equal(poly(0, 2, 0, 0, 2, 0, 2, 2)), "rotation is a different polygon")
	assert.False(t, square.Equal(triangle))
	assert.True(t, Polygon{}.Equal(Polygon{Points: []Point{}}))
}
