package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshInspect rebuilds the inspect table from the active demo's
// inspector rows.
func (m *Model) refreshInspect() {
	cols, rows := m.demo().Inspect()
	// no columns or rows: disable the view to avoid rendering panics
	if len(cols) == 0 || len(rows) == 0 {
		m.showInspect = false
		m.status = "no inspector data for this demo"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	maxColW := 24
	for j, c := range cols {
		// size each column to its widest cell, capped
		w := len(c)
		for _, r := range rows {
			if j < len(r) && len(r[j]) > w {
				w = len(r[j])
			}
		}
		w += 2
		if w > maxColW {
			w = maxColW
		}
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, fmt.Sprintf("%d", i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// Normalize each row to match the number of table columns
	colCount := len(tcols)
	for i := range trows {
		cells := []string(trows[i])
		if len(cells) < colCount {
			pad := make([]string, colCount-len(cells))
			cells = append(cells, pad...)
		} else if len(cells) > colCount {
			cells = cells[:colCount]
		}
		trows[i] = table.Row(cells)
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}
