package geom

import (
	"errors"

	"polyscope/internal/polygon"
)

var (
	// ErrNoPolygons is returned when a source holds no usable polygon.
	ErrNoPolygons = errors.New("no polygons found")
	// ErrInvalidPolygon is returned for a polygon literal that does not parse.
	ErrInvalidPolygon = errors.New("invalid polygon")
)

// Data is the polygon set loaded from one source.
type Data struct {
	Polygons []polygon.Polygon
	Box      polygon.Borders
	// Skipped counts records that were dropped while loading.
	Skipped int
}

func newData(polys []polygon.Polygon, skipped int) (Data, error) {
	if len(polys) == 0 {
		return Data{}, ErrNoPolygons
	}
	return Data{
		Polygons: polys,
		Box:      polygon.UnionBoundingBox(polys),
		Skipped:  skipped,
	}, nil
}
