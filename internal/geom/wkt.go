package geom

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"polyscope/internal/polygon"
)

// ParseWKT parses POLYGON and MULTIPOLYGON text. Only outer rings are kept.
func ParseWKT(s string) (Data, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Data{}, fmt.Errorf("%w: empty wkt", ErrNoPolygons)
	}
	g, err := wkt.Unmarshal(strings.ToUpper(s))
	if err != nil {
		return Data{}, fmt.Errorf("wkt: %w", err)
	}
	polys, skipped := fromGeometry(g)
	return newData(polys, skipped)
}

// fromGeometry collects the outer rings of every polygon in g.
func fromGeometry(g orb.Geometry) (polys []polygon.Polygon, skipped int) {
	switch g := g.(type) {
	case orb.Polygon:
		if len(g) == 0 {
			return nil, 1
		}
		if p, ok := fromRing(g[0]); ok {
			return []polygon.Polygon{p}, 0
		}
		return nil, 1
	case orb.MultiPolygon:
		for _, pg := range g {
			got, s := fromGeometry(pg)
			polys = append(polys, got...)
			skipped += s
		}
		return polys, skipped
	case orb.Ring:
		if p, ok := fromRing(g); ok {
			return []polygon.Polygon{p}, 0
		}
		return nil, 1
	case orb.Collection:
		for _, sub := range g {
			got, s := fromGeometry(sub)
			polys = append(polys, got...)
			skipped += s
		}
		return polys, skipped
	}
	return nil, 1
}

// fromRing drops the closing vertex of a closed ring.
func fromRing(r orb.Ring) (polygon.Polygon, bool) {
	if len(r) > 1 && r[0] == r[len(r)-1] {
		r = r[:len(r)-1]
	}
	if len(r) < 3 {
		return polygon.Polygon{}, false
	}
	p := polygon.Polygon{Points: make([]polygon.Point, len(r))}
	for i, pt := range r {
		p.Points[i] = polygon.Point{X: pt[0], Y: pt[1]}
	}
	return p, true
}
