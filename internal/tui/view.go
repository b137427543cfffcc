package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chartdeck/internal/canvas"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(28-2, lo.contentH-2)
	}

	// Header
	title := fmt.Sprintf(" chartdeck ─ %s  [%d/%d] ", m.demo().Title(), m.active+1, len(m.demos))
	header := titleStyle.Render(title)
	header = lipgloss.NewStyle().Width(lo.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View())
	}

	// Demo viewport
	var demoView string
	switch {
	case m.showInspect:
		// center the inspect table over the demo area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, lo.contentW-6)
		}
		maxW := min(lo.demoW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.demoH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		demoView = lipgloss.Place(lo.demoW, lo.demoH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(lo.demoW)
		m.ta.SetHeight(min(lo.demoH, 12))
		demoView = lipgloss.NewStyle().Width(lo.demoW).Height(lo.demoH).Render(m.ta.View())
	default:
		c := canvas.New(lo.demoW, lo.demoH)
		if m.mounted {
			m.demo().Render(c)
		}
		demoView = lipgloss.NewStyle().Width(lo.demoW).Height(lo.demoH).Render(c.Frame())
	}

	// About popup (left-center overlay, not in the demo column)
	popup := ""
	if m.popup != "" && !m.showInspect {
		maxPopupW := min(48, lo.contentW/2)
		if maxPopupW < 20 {
			maxPopupW = 20
		}
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.popup)
		popup = lipgloss.Place(lo.contentW, lo.contentH, lipgloss.Left, lipgloss.Center, box)
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", demoView)
	} else {
		body = demoView
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	readout := ""
	if f := m.demo().Footer(); f != "" {
		readout = dimStyle.Render("  " + f + "  ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(readout))
	right := lipgloss.Place(spacerW+lipgloss.Width(readout), 1, lipgloss.Right, lipgloss.Center, readout)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	// Compose UI with popup overlay between header and body
	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"[ ] demo",
		"1-7 pick",
		"↑↓←→ pan",
		"+/- zoom",
		"Tab data",
		"Enter open",
		"p paste",
		"i inspect",
		"o about",
		"r reset",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
