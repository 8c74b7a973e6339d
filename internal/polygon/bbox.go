package polygon

// BoundingBox returns the min/max extents of the polygon's points.
// An empty polygon yields the zero box.
func BoundingBox(p Polygon) Borders {
	if len(p.Points) == 0 {
		return Borders{}
	}
	first := p.Points[0]
	b := Borders{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
	for _, pt := range p.Points[1:] {
		b.MinX = min(b.MinX, pt.X)
		b.MinY = min(b.MinY, pt.Y)
		b.MaxX = max(b.MaxX, pt.X)
		b.MaxY = max(b.MaxY, pt.Y)
	}
	return b
}

// IsPointInside reports whether pt lies in box, edges included.
func IsPointInside(pt Point, box Borders) bool {
	return pt.X >= box.MinX && pt.X <= box.MaxX && pt.Y >= box.MinY && pt.Y <= box.MaxY
}

func LessByMinX(a, b Polygon) bool {
	return BoundingBox(a).MinX < BoundingBox(b).MinX
}

func LessByMaxX(a, b Polygon) bool {
	return BoundingBox(a).MaxX < BoundingBox(b).MaxX
}

func LessByMinY(a, b Polygon) bool {
	return BoundingBox(a).MinY < BoundingBox(b).MinY
}

func LessByMaxY(a, b Polygon) bool {
	return BoundingBox(a).MaxY < BoundingBox(b).MaxY
}

// UnionBoundingBox covers every polygon in polys. An empty set yields the
// zero box.
func UnionBoundingBox(polys []Polygon) Borders {
	if len(polys) == 0 {
		return Borders{}
	}
	b := BoundingBox(polys[0])
	for _, p := range polys[1:] {
		b = b.Union(BoundingBox(p))
	}
	return b
}
