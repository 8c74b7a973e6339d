package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"polyscope/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !geom.Supported(name) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads any supported format into the model.
func (m *Model) loadPath(p string) {
	d, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Warn("load failed", "path", p, "err", err)
		return
	}
	m.selPath = p
	m.setData(d)
	m.status = "loaded: " + filepath.Base(p) + "  " + m.summary(d.Skipped)
	m.log.Info("loaded", "path", p, "polygons", len(d.Polygons), "skipped", d.Skipped)
}

// loadPasted renders pasted WKT or text-form polygons.
func (m *Model) loadPasted(s string) {
	d, err := geom.ParseAny(s)
	if err != nil {
		m.status = "paste error: " + err.Error()
		return
	}
	m.selPath = ""
	m.setData(d)
	m.status = "rendered paste  " + m.summary(d.Skipped)
}

func (m Model) summary(skipped int) string {
	s := fmt.Sprintf("polygons=%d bbox=[%s, %s, %s, %s]", len(m.polys),
		formatCoord(m.box.MinX), formatCoord(m.box.MinY), formatCoord(m.box.MaxX), formatCoord(m.box.MaxY))
	if skipped > 0 {
		s += fmt.Sprintf(" skipped=%d", skipped)
	}
	return s
}
