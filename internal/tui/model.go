package tui

import (
	"io"
	"log/slog"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"polyscope/internal/geom"
	"polyscope/internal/polygon"
	"polyscope/internal/query"
	"polyscope/internal/spatial"
)

// Options tune the viewer; zero values fall back to defaults.
type Options struct {
	ZoomStep     float64
	SidebarWidth int
	Sort         string
	Precision    int
	Log          *slog.Logger
}

type Model struct {
	opts Options
	log  *slog.Logger

	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	polys []polygon.Polygon
	box   polygon.Borders
	index *spatial.Index
	proc  *query.Processor

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// command prompt
	cmdMode bool
	ti      textinput.Model

	// layer visibility
	showFill  bool
	showEdges bool
	showFrame bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverX      float64
	hoverY      float64
	hoverIDs    []int

	// polygon table
	showTable bool
	tbl       table.Model
	order     []int
	sortIdx   int
	reversed  bool
}

func New(opts Options) Model {
	if opts.ZoomStep <= 1 {
		opts.ZoomStep = 1.2
	}
	if opts.SidebarWidth < 10 {
		opts.SidebarWidth = 28
	}
	if opts.Precision <= 0 {
		opts.Precision = 1
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := Model{
		opts:        opts,
		log:         opts.Log,
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "polyscope ready",
		showFill:    true,
		showEdges:   true,
		showTable:   true,
		sortIdx:     sortIndex(opts.Sort),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT POLYGON/MULTIPOLYGON or lines like 3 (0;0) (1;1) (0;1). Enter renders, Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// command prompt setup
	m.ti = textinput.New()
	m.ti.Prompt = ": "
	m.ti.Placeholder = "AREA EVEN | MAX AREA | COUNT 4 | INFRAME 3 (0;0) (1;1) (0;1)"
	// polygon table setup
	m.tbl = table.New(table.WithColumns(tableColumns()), table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string, opts Options) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setData replaces the polygon set and resets the viewport and prompt state.
func (m *Model) setData(d geom.Data) {
	m.proc = query.New(d.Polygons, query.WithPrecision(m.opts.Precision), query.WithLogger(m.log))
	m.applyPolygons(d.Polygons)
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
}

// applyPolygons rebuilds everything derived from the polygon set. Hover ids
// point into the old set, so they are dropped until the mouse moves again.
func (m *Model) applyPolygons(polys []polygon.Polygon) {
	m.hovering, m.hoverHasGeo, m.hoverIDs = false, false, nil
	m.polys = polys
	m.box = polygon.UnionBoundingBox(polys)
	m.index = spatial.NewIndex(polys)
	m.refreshTable()
}
