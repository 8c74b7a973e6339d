package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"polyscope/internal/polygon"
)

// LoadCSV reads polygon vertices, one per row. Consecutive rows sharing an
// id form one polygon.
// Column detection: id|polygon|ring, x|lon|lng|long|longitude and
// y|lat|latitude (case-insensitive).
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return Data{}, err
	}
	if len(recs) == 0 {
		return Data{}, fmt.Errorf("%w: empty csv", ErrNoPolygons)
	}
	idxID, idxX, idxY := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "id", "polygon", "ring":
			if idxID == -1 {
				idxID = i
			}
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	if idxID == -1 || idxX == -1 || idxY == -1 {
		return Data{}, errors.New("csv: id/x/y columns not found")
	}

	var (
		polys   []polygon.Polygon
		skipped int
		cur     polygon.Polygon
		curID   string
	)
	flush := func() {
		if len(cur.Points) >= 3 {
			polys = append(polys, cur)
		} else if len(cur.Points) > 0 {
			skipped++
		}
		cur = polygon.Polygon{}
	}
	for _, row := range recs[1:] {
		if idxID >= len(row) || idxX >= len(row) || idxY >= len(row) {
			skipped++
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			skipped++
			continue
		}
		id := strings.TrimSpace(row[idxID])
		if id != curID {
			flush()
			curID = id
		}
		cur.Points = append(cur.Points, polygon.Point{X: x, Y: y})
	}
	flush()
	return newData(polys, skipped)
}
