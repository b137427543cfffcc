package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string
	theme  Theme

	// demo gallery
	demos      []Demo
	active     int
	mounted    bool
	clock      frameClock
	maxW, maxH int // cell caps on the demo area, 0 = unbounded

	// pointer tracking (whether the last mouse event was over the demo)
	pointerIn bool

	// dataset explorer
	cwd     string
	l       list.Model
	selPath string

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect table
	showInspect bool
	tbl         table.Model

	// about popup
	popup string
}

func New(opts Options) Model {
	m := Model{
		helpVisible: true,
		status:      "chartdeck ready",
		theme:       NamedTheme(opts.Theme),
		demos:       NewDemos(opts),
		maxW:        opts.MaxW,
		maxH:        opts.MaxH,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Datasets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste CSV here (header row first). Press Enter to load; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// inspect table setup (columns are inferred per demo)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// SelectDemo moves the gallery onto the named demo, if it exists.
func (m Model) SelectDemo(name string) Model {
	for i, d := range m.demos {
		if d.Title() == name {
			m.active = i
			break
		}
	}
	return m
}

// LoadData preloads a dataset into the starting demo.
func (m Model) LoadData(path string) Model {
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) demo() Demo { return m.demos[m.active] }
