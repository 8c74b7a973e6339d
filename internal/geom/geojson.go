package geom

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"

	"polyscope/internal/polygon"
)

// LoadGeoJSON reads Polygon and MultiPolygon geometries from a
// FeatureCollection, a Feature, or a bare geometry.
func LoadGeoJSON(path string) (Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	return ParseGeoJSON(data)
}

func ParseGeoJSON(data []byte) (Data, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Data{}, fmt.Errorf("%w: empty geojson", ErrNoPolygons)
	}
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Data{}, fmt.Errorf("geojson: %w", err)
	}
	var (
		polys   []polygon.Polygon
		skipped int
	)
	switch head.Type {
	case "":
		return Data{}, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return Data{}, fmt.Errorf("geojson: %w", err)
		}
		for _, f := range fc.Features {
			if f.Geometry == nil {
				skipped++
				continue
			}
			got, s := fromGeometry(f.Geometry)
			polys = append(polys, got...)
			skipped += s
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return Data{}, fmt.Errorf("geojson: %w", err)
		}
		if f.Geometry != nil {
			polys, skipped = fromGeometry(f.Geometry)
		}
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return Data{}, fmt.Errorf("geojson: %w", err)
		}
		polys, skipped = fromGeometry(g.Geometry())
	}
	return newData(polys, skipped)
}
