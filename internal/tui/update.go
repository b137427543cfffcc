package tui

import (
	"strconv"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"chartdeck/internal/canvas"
	"chartdeck/internal/dataset"
	"chartdeck/internal/interact"
	"chartdeck/internal/logx"
)

// layout is the screen arithmetic shared by Update (pointer mapping)
// and View (rendering), so the drawn demo area and the hit area are the
// same rectangle by construction.
type layout struct {
	sidebarW int
	contentW int
	contentH int
	demoX    int
	demoY    int
	demoW    int
	demoH    int
}

func (m Model) layout() layout {
	var lo layout
	if m.showSidebar {
		lo.sidebarW = 28
	}
	headerHeight := 1
	footerHeight := 2
	lo.contentH = m.height - headerHeight - footerHeight
	if lo.contentH < 4 {
		lo.contentH = 4
	}
	lo.contentW = max(10, m.width)
	lo.demoW = lo.contentW - lo.sidebarW - 1
	if m.maxW > 0 && lo.demoW > m.maxW {
		lo.demoW = m.maxW
	}
	if lo.demoW < 10 {
		lo.demoW = 10
	}
	lo.demoH = lo.contentH
	if m.maxH > 0 && lo.demoH > m.maxH {
		lo.demoH = m.maxH
	}
	if lo.demoH < 4 {
		lo.demoH = 4
	}
	lo.demoX = lo.sidebarW
	if m.showSidebar {
		lo.demoX++
	}
	lo.demoY = headerHeight
	return lo
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.layout()
		if !m.mounted {
			m.demo().Mount(lo.demoW, lo.demoH)
			m.mounted = true
			if m.demo().Animating() {
				return m, m.clock.start()
			}
		} else {
			m.demo().Resize(lo.demoW, lo.demoH)
		}
		if m.showSidebar {
			m.l.SetSize(28-2, lo.contentH-2)
		}

	case frameMsg:
		if !m.clock.current(msg) {
			return m, nil
		}
		m.demo().Frame(msg.at)
		if m.demo().Animating() {
			return m, m.clock.tick()
		}
		m.clock.stop()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If list is visible and filtering, send keys to list and ignore
	// global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.pasteMode {
		return m.updatePaste(msg)
	}
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
			m.l.SetSize(28-2, m.layout().contentH-2)
		}
		return m.resizeDemo()
	case "p":
		m.pasteMode = !m.pasteMode
		if m.pasteMode {
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		} else {
			m.status = "view mode"
			m.ta.Blur()
		}
	case "h":
		m.helpVisible = !m.helpVisible
	case "i":
		m.showInspect = !m.showInspect
		if m.showInspect {
			m.refreshInspect()
		}
	case "o":
		if m.popup == "" {
			m.popup = m.demo().Title() + "\n\n" + m.demo().Blurb() +
				"\n\n" + dimStyle.Render("theme: "+m.theme.Name)
		} else {
			m.popup = ""
		}
	case "esc":
		switch {
		case m.popup != "":
			m.popup = ""
		case m.showInspect:
			m.showInspect = false
		}
	case "]":
		return m.switchTo((m.active + 1) % len(m.demos))
	case "[":
		return m.switchTo((m.active + len(m.demos) - 1) % len(m.demos))
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
				return m.kickClock()
			}
			return m, nil
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.demos) {
			return m.switchTo(n - 1)
		}
		// with the sidebar open the list has key focus; otherwise the
		// demo gets every key the gallery does not reserve
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		m.demo().Key(key)
		return m.kickClock()
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	case "enter":
		// textarea keeps multi-line input; enter submits, so rows come
		// in separated by the textarea's newlines already typed
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		t, err := dataset.ParseCSV(strings.NewReader(text))
		if err != nil {
			m.status = "csv error: " + err.Error()
			return m, nil
		}
		if err := m.demo().LoadTable(t); err != nil {
			m.status = "load error: " + err.Error()
			return m, nil
		}
		m.status = "pasted " + strconv.Itoa(len(t.Rows)) + " rows into " + m.demo().Title()
		logx.Log().Info("pasted dataset", "rows", len(t.Rows), "demo", m.demo().Title())
		m.pasteMode = false
		m.ta.Blur()
		return m.kickClock()
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	lo := m.layout()
	inside := msg.X >= lo.demoX && msg.X < lo.demoX+lo.demoW &&
		msg.Y >= lo.demoY && msg.Y < lo.demoY+lo.demoH
	if !inside {
		if m.pointerIn {
			m.pointerIn = false
			m.demo().Pointer(interact.Pointer{Kind: interact.Leave})
		}
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	m.pointerIn = true

	// pointer lands on the center of the hovered braille cell
	px := (msg.X-lo.demoX)*canvas.PixelsPerCellX + canvas.PixelsPerCellX/2
	py := (msg.Y-lo.demoY)*canvas.PixelsPerCellY + canvas.PixelsPerCellY/2
	ev := interact.Pointer{X: float64(px), Y: float64(py), PX: px, PY: py}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		ev.Kind = interact.WheelUp
	case msg.Button == tea.MouseButtonWheelDown:
		ev.Kind = interact.WheelDown
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		ev.Kind = interact.Press
	case msg.Action == tea.MouseActionRelease:
		ev.Kind = interact.Release
	case msg.Action == tea.MouseActionMotion:
		ev.Kind = interact.Motion
	default:
		return m, nil
	}
	m.demo().Pointer(ev)
	return m.kickClock()
}

// kickClock starts the frame clock when the active demo wants frames.
func (m Model) kickClock() (tea.Model, tea.Cmd) {
	if m.demo().Animating() {
		return m, m.clock.start()
	}
	return m, nil
}

func (m Model) switchTo(i int) (tea.Model, tea.Cmd) {
	if i == m.active {
		return m, nil
	}
	m.demo().Unmount()
	m.clock.stop()
	m.active = i
	lo := m.layout()
	m.demo().Mount(lo.demoW, lo.demoH)
	m.status = "demo: " + m.demo().Title()
	if m.showInspect {
		m.refreshInspect()
	}
	logx.Log().Debug("demo switched", "demo", m.demo().Title())
	return m.kickClock()
}

// resizeDemo re-mounts nothing but tells the demo its area changed
// (the sidebar toggling shifts the demo rectangle).
func (m Model) resizeDemo() (tea.Model, tea.Cmd) {
	if m.mounted {
		lo := m.layout()
		m.demo().Resize(lo.demoW, lo.demoH)
	}
	return m, nil
}
