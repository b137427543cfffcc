package tui

import (
	"fmt"

	"github.com/pkg/errors"

	"chartdeck/internal/canvas"
	"chartdeck/internal/chart"
	"chartdeck/internal/dataset"
	"chartdeck/internal/interact"
)

// histDemo bins a sample into equal-width bars. +/- changes the bin
// count; hovering a column reads out its interval and count.
type histDemo struct {
	baseDemo
	th      Theme
	samples []float64
	bins    int
	hist    chart.Histogram
	sum     chart.Summary
	hover   int
}

func newHistDemo(th Theme) *histDemo {
	d := &histDemo{th: th, bins: 12, hover: interact.None}
	d.samples = sampleDurations()
	d.rebin()
	return d
}

// sampleDurations is a bimodal batch of request durations in ms.
func sampleDurations() []float64 {
	return []float64{
		12.1, 13.4, 11.8, 14.2, 12.9, 13.1, 15.0, 12.4, 13.8, 14.6,
		11.2, 12.7, 13.3, 16.1, 12.2, 14.9, 13.6, 12.8, 15.4, 13.0,
		14.1, 12.5, 38.2, 41.5, 39.8, 44.0, 40.3, 42.7, 38.9, 43.1,
		41.0, 39.5, 45.2, 40.8, 42.1, 38.5, 43.8, 41.9, 39.1, 44.6,
		40.0, 42.4, 17.3, 18.8, 21.5, 24.0, 27.2, 30.6, 33.9, 36.1,
		19.7, 22.4, 25.8, 28.3, 31.7, 34.5, 16.8, 20.2, 26.5, 35.3,
	}
}

func (d *histDemo) Title() string { return "histogram" }
func (d *histDemo) Blurb() string {
	return "Equal-width histogram over a duration sample. +/- changes the\nbin count, hover reads out a column, r restores the sample."
}

func (d *histDemo) rebin() {
	d.hist, _ = chart.Bin(d.samples, d.bins)
	d.sum, _ = chart.Summarize(d.samples)
	d.hover = interact.None
}

func (d *histDemo) Unmount() { d.hover = interact.None }

func (d *histDemo) Key(k string) {
	switch k {
	case "+", "=":
		if d.bins < 60 {
			d.bins++
			d.rebin()
		}
	case "-", "_":
		if d.bins > 2 {
			d.bins--
			d.rebin()
		}
	case "r":
		d.samples = sampleDurations()
		d.bins = 12
		d.rebin()
	}
}

// geometry shared by Render and Pointer so bars and hit columns cannot
// disagree.
func (d *histDemo) barWidth() int {
	wPix, _ := d.pixels()
	if len(d.hist.Counts) == 0 {
		return 0
	}
	bw := wPix / len(d.hist.Counts)
	if bw < 1 {
		bw = 1
	}
	return bw
}

func (d *histDemo) Pointer(ev interact.Pointer) {
	switch ev.Kind {
	case interact.Motion:
		bw := d.barWidth()
		if bw == 0 {
			d.hover = interact.None
			return
		}
		bin := ev.PX / bw
		if bin < 0 || bin >= len(d.hist.Counts) {
			bin = interact.None
		}
		d.hover = bin
	case interact.Leave:
		d.hover = interact.None
	}
}

func (d *histDemo) Render(c *canvas.Canvas) {
	wPix, hPix := c.PixelSize()
	maxCount := d.hist.MaxCount()
	if maxCount == 0 {
		return
	}
	bw := d.barWidth()
	baseline := hPix - 1
	plotH := hPix - canvas.PixelsPerCellY - 1
	for i, n := range d.hist.Counts {
		x0 := i * bw
		x1 := x0 + bw - 2
		if x1 < x0 {
			x1 = x0
		}
		if x0 >= wPix {
			break
		}
		barH := int(float64(n) / float64(maxCount) * float64(plotH))
		col := d.th.Color(0)
		if i == d.hover {
			col = d.th.Accent
		}
		if n > 0 {
			c.FillRect(x0, baseline-barH, x1, baseline, col)
		}
	}
	c.Line(0, baseline, wPix-1, baseline, d.th.Axis)
	c.Text(1, 0, fmt.Sprintf("max %d", maxCount), d.th.Label)
	if len(d.hist.Edges) > 0 {
		c.Text(0, d.h-1, fmt.Sprintf("%.0f", d.hist.Edges[0]), d.th.Label)
		c.TextRight(d.w-1, d.h-1, fmt.Sprintf("%.0f", d.hist.Edges[len(d.hist.Edges)-1]), d.th.Label)
	}
}

func (d *histDemo) Footer() string {
	if d.hover != interact.None && d.hover < len(d.hist.Counts) {
		lo := d.hist.Edges[d.hover]
		hi := d.hist.Edges[d.hover+1]
		return fmt.Sprintf("bin %d  [%.1f, %.1f)  count %d", d.hover+1, lo, hi, d.hist.Counts[d.hover])
	}
	return fmt.Sprintf("n=%d  mean=%.1f  med=%.1f  sd=%.1f  bins=%d", d.sum.N, d.sum.Mean, d.sum.Median, d.sum.Stddev, d.bins)
}

// LoadTable reads the "value" column, or the first column otherwise.
func (d *histDemo) LoadTable(t dataset.Table) error {
	vals := t.Column("value")
	if vals == nil {
		vals = t.ColumnAt(0)
	}
	if len(vals) == 0 {
		return errors.New("no numeric values")
	}
	d.samples = vals
	d.rebin()
	return nil
}

func (d *histDemo) Inspect() ([]string, [][]string) {
	rows := make([][]string, len(d.hist.Counts))
	for i, n := range d.hist.Counts {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", d.hist.Edges[i]),
			fmt.Sprintf("%.2f", d.hist.Edges[i+1]),
			fmt.Sprintf("%d", n),
		}
	}
	return []string{"bin", "from", "to", "count"}, rows
}
