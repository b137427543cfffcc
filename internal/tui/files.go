package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"chartdeck/internal/chart"
	"chartdeck/internal/dataset"
	"chartdeck/internal/logx"
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
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".csv" || ext == ".json" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no .csv or .json files in current directory"
	}
}

// loadPath feeds a file into the active demo. CSV goes in as a table,
// JSON as a value-weighted tree; demos reject shapes they cannot use.
func (m *Model) loadPath(p string) {
	m.selPath = p
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".csv":
		t, err := dataset.LoadCSV(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		if err := m.demo().LoadTable(t); err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		m.status = fmt.Sprintf("loaded: %s  rows=%d into %s", filepath.Base(p), len(t.Rows), m.demo().Title())
		logx.Log().Info("dataset loaded", "path", p, "rows", len(t.Rows), "demo", m.demo().Title())
	case ".json":
		root, err := dataset.LoadTree(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		if err := m.demo().LoadTree(root); err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		m.status = fmt.Sprintf("loaded: %s  nodes=%d into %s", filepath.Base(p), countNodes(root), m.demo().Title())
		logx.Log().Info("dataset loaded", "path", p, "nodes", countNodes(root), "demo", m.demo().Title())
	default:
		m.status = "unsupported file: " + ext
	}
	// keep the open inspector in step with the new dataset
	if m.showInspect {
		m.refreshInspect()
	}
}

func countNodes(n *chart.Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += countNodes(c)
	}
	return total
}
