package polygon

import "math"

func VertexCount(p Polygon) int {
	return len(p.Points)
}

func IsEven(p Polygon) bool {
	return VertexCount(p)%2 == 0
}

func IsOdd(p Polygon) bool {
	return VertexCount(p)%2 != 0
}

func HasVertexCount(p Polygon, n int) bool {
	return VertexCount(p) == n
}

// IsNumericString reports whether every byte of s is an ASCII decimal digit.
// The empty string is numeric.
func IsNumericString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// AreaTerm returns the shoelace term for the edge starting at points[i].
// Indexing wraps, so the last point pairs with the first.
func AreaTerm(points []Point, i int) float64 {
	next := (i + 1) % len(points)
	ySum := points[i].Y + points[next].Y
	xDiff := points[i].X - points[next].X
	return ySum * xDiff
}

// Area computes the unsigned area with the shoelace formula.
// Polygons with fewer than three vertices give a meaningless result (0 when
// empty); validate the vertex count first.
func Area(p Polygon) float64 {
	var sum float64
	for i := range p.Points {
		sum += AreaTerm(p.Points, i)
	}
	return math.Abs(sum) / 2
}

func LessByArea(a, b Polygon) bool {
	return Area(a) < Area(b)
}

func LessByVertexCount(a, b Polygon) bool {
	return VertexCount(a) < VertexCount(b)
}

// Min returns the first polygon no other polygon is less than.
func Min(polys []Polygon, less Less) (Polygon, bool) {
	if len(polys) == 0 {
		return Polygon{}, false
	}
	best := polys[0]
	for _, p := range polys[1:] {
		if less(p, best) {
			best = p
		}
	}
	return best, true
}

// Max returns the first polygon that is not less than any other polygon.
func Max(polys []Polygon, less Less) (Polygon, bool) {
	if len(polys) == 0 {
		return Polygon{}, false
	}
	best := polys[0]
	for _, p := range polys[1:] {
		if less(best, p) {
			best = p
		}
	}
	return best, true
}

// EchoOf returns a predicate matching a pair of neighbours that are both
// equal to target.
func EchoOf(target Polygon) func(a, b Polygon) bool {
	return func(a, b Polygon) bool {
		return target.Equal(a) && target.Equal(b)
	}
}
