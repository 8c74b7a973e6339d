// Package polygon holds the metrics used to rank and filter planar
// polygons: vertex counts, shoelace area, and axis-aligned bounding boxes.
//
// All functions are pure and safe for concurrent use. Callers are expected
// to pass non-empty polygons; an empty polygon is a precondition violation
// and yields a zero area and a zero box rather than a panic.
package polygon

type Point struct {
	X float64
	Y float64
}

// Polygon is an ordered ring of points. The last point connects back to
// the first; the ring is not stored closed.
type Polygon struct {
	Points []Point
}

// Equal reports whether both polygons have the same points in the same order.
func (p Polygon) Equal(o Polygon) bool {
	if len(p.Points) != len(o.Points) {
		return false
	}
	for i := range p.Points {
		if p.Points[i] != o.Points[i] {
			return false
		}
	}
	return true
}

// Borders is an axis-aligned bounding box.
type Borders struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Union returns the smallest box covering both b and o.
func (b Borders) Union(o Borders) Borders {
	return Borders{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

func (b Borders) Width() float64  { return b.MaxX - b.MinX }
func (b Borders) Height() float64 { return b.MaxY - b.MinY }

// Less is a strict less-than ordering over polygons.
type Less func(a, b Polygon) bool
