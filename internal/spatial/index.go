// Package spatial indexes polygon bounding boxes in an R-tree.
package spatial

import (
	"fmt"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"polyscope/internal/polygon"
)

// minPad widens degenerate boxes; rtreego rejects zero-length sides.
const minPad = 1e-9

// padFor keeps the padding above the float64 spacing at v, so large
// coordinates still get a box of non-zero width.
func padFor(v float64) float64 {
	return max(minPad, math.Abs(v)*1e-12)
}

type entry struct {
	id   int
	box  polygon.Borders
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// toRect pads b outward on every side. Hits are re-checked against the
// exact box, so the padding only ever adds candidates.
func toRect(b polygon.Borders) (rtreego.Rect, error) {
	minX, maxX := b.MinX-padFor(b.MinX), b.MaxX+padFor(b.MaxX)
	minY, maxY := b.MinY-padFor(b.MinY), b.MaxY+padFor(b.MaxY)
	for _, v := range []float64{minX, minY, maxX, maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return rtreego.Rect{}, fmt.Errorf("spatial: box %+v is not finite", b)
		}
	}
	rect, err := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{maxX - minX, maxY - minY})
	if err != nil {
		return rtreego.Rect{}, fmt.Errorf("spatial: box %+v: %w", b, err)
	}
	return rect, nil
}

// Index answers bounding-box queries over a fixed polygon set. Ids are the
// polygons' positions in the slice given to NewIndex.
type Index struct {
	tree    *rtreego.Rtree
	entries []*entry
}

func NewIndex(polys []polygon.Polygon) *Index {
	ix := &Index{entries: make([]*entry, 0, len(polys))}
	objs := make([]rtreego.Spatial, 0, len(polys))
	for i, p := range polys {
		if len(p.Points) == 0 {
			continue
		}
		box := polygon.BoundingBox(p)
		rect, err := toRect(box)
		if err != nil {
			// NaN or infinite coordinates cannot be indexed
			continue
		}
		e := &entry{id: i, box: box, rect: rect}
		ix.entries = append(ix.entries, e)
		objs = append(objs, e)
	}
	ix.tree = rtreego.NewTree(2, 4, 16, objs...)
	return ix
}

func (ix *Index) Len() int { return ix.tree.Size() }

// At returns the ids of polygons whose bounding box contains pt.
func (ix *Index) At(pt polygon.Point) []int {
	q, err := toRect(polygon.Borders{MinX: pt.X, MinY: pt.Y, MaxX: pt.X, MaxY: pt.Y})
	if err != nil {
		return nil
	}
	hits := ix.tree.SearchIntersect(q)
	var ids []int
	for _, h := range hits {
		e := h.(*entry)
		if polygon.IsPointInside(pt, e.box) {
			ids = append(ids, e.id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Within returns the ids of polygons whose bounding box lies inside box.
func (ix *Index) Within(box polygon.Borders) []int {
	q, err := toRect(box)
	if err != nil {
		return nil
	}
	hits := ix.tree.SearchIntersect(q)
	var ids []int
	for _, h := range hits {
		e := h.(*entry)
		if polygon.IsPointInside(polygon.Point{X: e.box.MinX, Y: e.box.MinY}, box) &&
			polygon.IsPointInside(polygon.Point{X: e.box.MaxX, Y: e.box.MaxY}, box) {
			ids = append(ids, e.id)
		}
	}
	sort.Ints(ids)
	return ids
}
