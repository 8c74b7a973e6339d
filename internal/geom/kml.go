package geom

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"polyscope/internal/polygon"
)

// LoadKML extracts polygons from Placemark > Polygon > outerBoundaryIs.
// Placemarks holding a MultiGeometry contribute each of their polygons.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func LoadKML(path string) (Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	return ParseKML(data)
}

type kmlPolygon struct {
	Outer string `xml:"outerBoundaryIs>LinearRing>coordinates"`
}

type kmlPlacemark struct {
	Polygon *kmlPolygon  `xml:"Polygon"`
	Multi   []kmlPolygon `xml:"MultiGeometry>Polygon"`
}

type kmlDoc struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Document   []kmlPlacemark `xml:"Document>Placemark"`
	Folders    []kmlPlacemark `xml:"Document>Folder>Placemark"`
}

func ParseKML(data []byte) (Data, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Data{}, fmt.Errorf("%w: empty kml", ErrNoPolygons)
	}
	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Data{}, err
	}
	var rings []string
	for _, group := range [][]kmlPlacemark{doc.Placemarks, doc.Document, doc.Folders} {
		for _, pm := range group {
			if pm.Polygon != nil {
				rings = append(rings, pm.Polygon.Outer)
			}
			for _, mp := range pm.Multi {
				rings = append(rings, mp.Outer)
			}
		}
	}
	var (
		polys   []polygon.Polygon
		skipped int
	)
	for _, coords := range rings {
		if p, ok := fromRing(parseKMLCoords(coords)); ok {
			polys = append(polys, p)
		} else {
			skipped++
		}
	}
	return newData(polys, skipped)
}

// parseKMLCoords reads whitespace separated "lon,lat[,alt]" tuples.
func parseKMLCoords(s string) orb.Ring {
	var ring orb.Ring
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		ring = append(ring, orb.Point{lon, lat})
	}
	return ring
}
