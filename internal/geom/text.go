package geom

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"polyscope/internal/polygon"
)

// MaxLineSize bounds a single text-form line, and so the vertex count of
// one polygon.
const MaxLineSize = 16 * 1024 * 1024

// ParsePolygon parses the text form "N (x;y) (x;y) ...".
// N must be a plain decimal count of at least 3 that matches the number of
// points that follow.
func ParsePolygon(s string) (polygon.Polygon, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return polygon.Polygon{}, fmt.Errorf("%w: empty", ErrInvalidPolygon)
	}
	if fields[0] == "" || !polygon.IsNumericString(fields[0]) {
		return polygon.Polygon{}, fmt.Errorf("%w: bad vertex count %q", ErrInvalidPolygon, fields[0])
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 3 {
		return polygon.Polygon{}, fmt.Errorf("%w: bad vertex count %q", ErrInvalidPolygon, fields[0])
	}
	if len(fields)-1 != n {
		return polygon.Polygon{}, fmt.Errorf("%w: want %d points, got %d", ErrInvalidPolygon, n, len(fields)-1)
	}
	p := polygon.Polygon{Points: make([]polygon.Point, 0, n)}
	for _, tok := range fields[1:] {
		pt, err := parsePoint(tok)
		if err != nil {
			return polygon.Polygon{}, err
		}
		p.Points = append(p.Points, pt)
	}
	return p, nil
}

func parsePoint(tok string) (polygon.Point, error) {
	if !strings.HasPrefix(tok, "(") || !strings.HasSuffix(tok, ")") {
		return polygon.Point{}, fmt.Errorf("%w: bad point %q", ErrInvalidPolygon, tok)
	}
	parts := strings.Split(tok[1:len(tok)-1], ";")
	if len(parts) != 2 {
		return polygon.Point{}, fmt.Errorf("%w: bad point %q", ErrInvalidPolygon, tok)
	}
	x, err1 := strconv.ParseFloat(parts[0], 64)
	y, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return polygon.Point{}, fmt.Errorf("%w: bad point %q", ErrInvalidPolygon, tok)
	}
	return polygon.Point{X: x, Y: y}, nil
}

// FormatPolygon renders p in the text form accepted by ParsePolygon.
func FormatPolygon(p polygon.Polygon) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(p.Points)))
	for _, pt := range p.Points {
		b.WriteString(" (")
		b.WriteString(strconv.FormatFloat(pt.X, 'f', -1, 64))
		b.WriteByte(';')
		b.WriteString(strconv.FormatFloat(pt.Y, 'f', -1, 64))
		b.WriteByte(')')
	}
	return b.String()
}

// ReadPolygons reads one polygon per line. Blank lines are ignored and lines
// that do not parse are skipped and counted.
func ReadPolygons(r io.Reader) (polys []polygon.Polygon, skipped int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := ParsePolygon(line)
		if err != nil {
			skipped++
			continue
		}
		polys = append(polys, p)
	}
	if err := sc.Err(); err != nil {
		return nil, skipped, err
	}
	return polys, skipped, nil
}

// LoadText reads a file of text-form polygons.
func LoadText(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	polys, skipped, err := ReadPolygons(f)
	if err != nil {
		return Data{}, fmt.Errorf("read %s: %w", path, err)
	}
	return newData(polys, skipped)
}
