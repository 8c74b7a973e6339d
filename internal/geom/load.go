package geom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".geojson", ".json", ".wkt", ".csv", ".kml", ".txt", ".poly"}

// Supported reports whether Load can read path.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads polygons from path, picking the decoder by extension.
func Load(path string) (Data, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return Data{}, err
		}
		return ParseWKT(string(data))
	case ".txt", ".poly":
		return LoadText(path)
	}
	return Data{}, fmt.Errorf("unsupported file: %q", ext)
}

// wktKeywords are the geometry tags that mark pasted input as WKT.
var wktKeywords = []string{"POLYGON", "MULTIPOLYGON", "GEOMETRYCOLLECTION"}

// IsWKT reports whether s starts with a WKT keyword that ParseWKT handles,
// ignoring case and leading space.
func IsWKT(s string) bool {
	up := strings.ToUpper(strings.TrimSpace(s))
	for _, k := range wktKeywords {
		if strings.HasPrefix(up, k) {
			return true
		}
	}
	return false
}

// ParseAny accepts pasted input: WKT when it starts with a geometry keyword,
// otherwise one text-form polygon per line.
func ParseAny(s string) (Data, error) {
	s = strings.TrimSpace(s)
	if IsWKT(s) {
		return ParseWKT(s)
	}
	polys, skipped, err := ReadPolygons(strings.NewReader(s))
	if err != nil {
		return Data{}, err
	}
	return newData(polys, skipped)
}
