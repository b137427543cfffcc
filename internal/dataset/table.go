// Package dataset loads caller-supplied data for the demos: numeric
// tables from CSV and value-weighted hierarchies from JSON. Loading is
// forgiving the way the demos are: rows that do not parse are skipped,
// and only a file with no usable rows at all is an error.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"chartdeck/internal/logx"
)

// Table is a rectangular numeric dataset with named columns.
type Table struct {
	Cols []string
	Rows [][]float64
}

// LoadCSV reads a table from a CSV file.
func LoadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, errors.Wrap(err, "opening csv")
	}
	defer f.Close()
	t, err := ParseCSV(f)
	return t, errors.Wrapf(err, "parsing %s", path)
}

// ParseCSV reads a table from CSV content. The first record names the
// columns; every later record must parse as one float per column or it
// is dropped. An input with a header but no usable rows is an error.
func ParseCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, errors.Wrap(err, "reading csv")
	}
	if len(records) == 0 {
		return Table{}, errors.New("empty csv")
	}
	t := Table{Cols: records[0]}
	for i, c := range t.Cols {
		t.Cols[i] = strings.TrimSpace(c)
	}
	dropped := 0
	for _, rec := range records[1:] {
		if len(rec) != len(t.Cols) {
			dropped++
			continue
		}
		row := make([]float64, len(rec))
		ok := true
		for i, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				ok = false
				break
			}
			row[i] = v
		}
		if !ok {
			dropped++
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	if dropped > 0 {
		logx.Log().Debug("csv rows dropped", "dropped", dropped, "kept", len(t.Rows))
	}
	if len(t.Rows) == 0 {
		return Table{}, errors.New("no numeric rows")
	}
	return t, nil
}

// Column returns the named column's values, nil when absent.
func (t Table) Column(name string) []float64 {
	for i, c := range t.Cols {
		if strings.EqualFold(c, name) {
			out := make([]float64, len(t.Rows))
			for j, row := range t.Rows {
				out[j] = row[i]
			}
			return out
		}
	}
	return nil
}

// ColumnAt returns column i, nil when out of range.
func (t Table) ColumnAt(i int) []float64 {
	if i < 0 || len(t.Cols) <= i {
		return nil
	}
	out := make([]float64, len(t.Rows))
	for j, row := range t.Rows {
		out[j] = row[i]
	}
	return out
}
