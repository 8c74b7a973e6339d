// Package query executes text commands over a polygon set:
//
//	AREA EVEN|ODD|MEAN|<n>
//	MAX AREA|VERTEXES
//	MIN AREA|VERTEXES
//	COUNT EVEN|ODD|<n>
//	RMECHO <polygon>
//	INFRAME <polygon>
//
// Polygon arguments use the text form "N (x;y) (x;y) ...".
package query

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"polyscope/internal/geom"
	"polyscope/internal/polygon"
)

// ErrInvalidCommand covers unknown commands, bad arguments, and commands
// that need a non-empty polygon set.
var ErrInvalidCommand = errors.New("invalid command")

// InvalidCommand is what Run prints for a failed command.
const InvalidCommand = "<INVALID COMMAND>"

type handler func(p *Processor, args []string, rest string) (string, error)

var handlers = map[string]handler{
	"AREA":    (*Processor).area,
	"MAX":     (*Processor).max,
	"MIN":     (*Processor).min,
	"COUNT":   (*Processor).count,
	"RMECHO":  (*Processor).rmEcho,
	"INFRAME": (*Processor).inFrame,
}

// Processor is not safe for concurrent use; RMECHO mutates the set.
type Processor struct {
	polys     []polygon.Polygon
	precision int
	log       *slog.Logger
}

type Option func(*Processor)

// WithPrecision sets the number of decimals printed for areas.
func WithPrecision(n int) Option {
	return func(p *Processor) { p.precision = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) { p.log = l }
}

func New(polys []polygon.Polygon, opts ...Option) *Processor {
	p := &Processor{
		polys:     append([]polygon.Polygon(nil), polys...),
		precision: 1,
		log:       slog.Default(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Polygons returns the current set.
func (p *Processor) Polygons() []polygon.Polygon {
	return p.polys
}

// Exec runs a single command line and returns its output.
func (p *Processor) Exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty line", ErrInvalidCommand)
	}
	h, ok := handlers[fields[0]]
	if !ok {
		return "", fmt.Errorf("%w: unknown command %q", ErrInvalidCommand, fields[0])
	}
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
	out, err := h(p, fields[1:], rest)
	if err != nil {
		p.log.Debug("command failed", "command", fields[0], "err", err)
		return "", err
	}
	p.log.Debug("command done", "command", fields[0], "result", out)
	return out, nil
}

// Run executes commands line by line until r is exhausted or ctx is done.
// Failed commands print InvalidCommand and do not stop the loop.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), geom.MaxLineSize)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out, err := p.Exec(line)
		switch {
		case errors.Is(err, ErrInvalidCommand):
			out = InvalidCommand
		case err != nil:
			return err
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (p *Processor) formatArea(a float64) string {
	return strconv.FormatFloat(a, 'f', p.precision, 64)
}

// vertexArg parses a vertex count argument; counts below 3 are rejected.
func vertexArg(s string) (int, error) {
	if s == "" || !polygon.IsNumericString(s) {
		return 0, fmt.Errorf("%w: %q is not a vertex count", ErrInvalidCommand, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 3 {
		return 0, fmt.Errorf("%w: %q is not a vertex count", ErrInvalidCommand, s)
	}
	return n, nil
}

func oneArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: want one argument, got %d", ErrInvalidCommand, len(args))
	}
	return args[0], nil
}

func polygonArg(rest string) (polygon.Polygon, error) {
	target, err := geom.ParsePolygon(rest)
	if err != nil {
		return polygon.Polygon{}, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}
	return target, nil
}

func (p *Processor) sumArea(keep func(polygon.Polygon) bool) float64 {
	var sum float64
	for _, pg := range p.polys {
		if keep(pg) {
			sum += polygon.Area(pg)
		}
	}
	return sum
}

func (p *Processor) countOf(keep func(polygon.Polygon) bool) int {
	n := 0
	for _, pg := range p.polys {
		if keep(pg) {
			n++
		}
	}
	return n
}

func (p *Processor) area(args []string, _ string) (string, error) {
	arg, err := oneArg(args)
	if err != nil {
		return "", err
	}
	switch arg {
	case "EVEN":
		return p.formatArea(p.sumArea(polygon.IsEven)), nil
	case "ODD":
		return p.formatArea(p.sumArea(polygon.IsOdd)), nil
	case "MEAN":
		if len(p.polys) == 0 {
			return "", fmt.Errorf("%w: mean of an empty set", ErrInvalidCommand)
		}
		all := func(polygon.Polygon) bool { return true }
		return p.formatArea(p.sumArea(all) / float64(len(p.polys))), nil
	}
	n, err := vertexArg(arg)
	if err != nil {
		return "", err
	}
	return p.formatArea(p.sumArea(withVertices(n))), nil
}

func withVertices(n int) func(polygon.Polygon) bool {
	return func(pg polygon.Polygon) bool { return polygon.HasVertexCount(pg, n) }
}

func (p *Processor) extreme(args []string, pick func([]polygon.Polygon, polygon.Less) (polygon.Polygon, bool)) (string, error) {
	arg, err := oneArg(args)
	if err != nil {
		return "", err
	}
	var less polygon.Less
	switch arg {
	case "AREA":
		less = polygon.LessByArea
	case "VERTEXES":
		less = polygon.LessByVertexCount
	default:
		return "", fmt.Errorf("%w: unknown key %q", ErrInvalidCommand, arg)
	}
	pg, ok := pick(p.polys, less)
	if !ok {
		return "", fmt.Errorf("%w: empty set", ErrInvalidCommand)
	}
	if arg == "AREA" {
		return p.formatArea(polygon.Area(pg)), nil
	}
	return strconv.Itoa(polygon.VertexCount(pg)), nil
}

func (p *Processor) max(args []string, _ string) (string, error) {
	return p.extreme(args, polygon.Max)
}

func (p *Processor) min(args []string, _ string) (string, error) {
	return p.extreme(args, polygon.Min)
}

func (p *Processor) count(args []string, _ string) (string, error) {
	arg, err := oneArg(args)
	if err != nil {
		return "", err
	}
	switch arg {
	case "EVEN":
		return strconv.Itoa(p.countOf(polygon.IsEven)), nil
	case "ODD":
		return strconv.Itoa(p.countOf(polygon.IsOdd)), nil
	}
	n, err := vertexArg(arg)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(p.countOf(withVertices(n))), nil
}

// rmEcho collapses every run of consecutive polygons equal to the target
// into a single polygon.
func (p *Processor) rmEcho(_ []string, rest string) (string, error) {
	target, err := polygonArg(rest)
	if err != nil {
		return "", err
	}
	echo := polygon.EchoOf(target)
	kept := p.polys[:0]
	removed := 0
	for _, pg := range p.polys {
		if len(kept) > 0 && echo(kept[len(kept)-1], pg) {
			removed++
			continue
		}
		kept = append(kept, pg)
	}
	p.polys = kept
	return strconv.Itoa(removed), nil
}

func (p *Processor) inFrame(_ []string, rest string) (string, error) {
	target, err := polygonArg(rest)
	if err != nil {
		return "", err
	}
	if len(p.polys) == 0 {
		return "", fmt.Errorf("%w: no frame for an empty set", ErrInvalidCommand)
	}
	frame := polygon.UnionBoundingBox(p.polys)
	for _, pt := range target.Points {
		if !polygon.IsPointInside(pt, frame) {
			return "<FALSE>", nil
		}
	}
	return "<TRUE>", nil
}
