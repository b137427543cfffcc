// Package cli wires the chartdeck commands: the interactive gallery at
// the root plus non-interactive helpers for scripts and CI.
package cli

import (
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chartdeck/internal/logx"
	"chartdeck/internal/tui"
)

// galleryConfig holds the root command's flag values.
type galleryConfig struct {
	Data   string
	Demo   string
	Theme  string
	Legend bool
	XRange string
	YRange string
	Width  int
	Height int
}

// NewRootCommand builds the chartdeck command tree. The root runs the
// TUI gallery; subcommands stay on plain stdout.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	gc := &galleryConfig{Theme: "dusk", Legend: true}
	rc := &cobra.Command{
		Use:   "chartdeck",
		Short: "chartdeck is an interactive chart gallery for the terminal.",
		Long: `chartdeck renders a gallery of interactive charts on a braille canvas:
draggable bubbles, zoomable lines, histogram, violin, radar, sunburst
and a stacked area chart. Charts react to the mouse; datasets load from
CSV or JSON files or straight from the clipboard.
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setAllConfig(viper.New(), cmd.Flags()); err != nil {
				return err
			}
			if path, _ := cmd.Flags().GetString("debug-log"); path != "" {
				if _, err := logx.ToFile(path); err != nil {
					return errors.Wrap(err, "opening debug log")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := gc.options()
			if err != nil {
				return err
			}
			m := tui.New(opts)
			if gc.Demo != "" {
				m = m.SelectDemo(gc.Demo)
			}
			if gc.Data != "" {
				m = m.LoadData(gc.Data)
			}
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
			_, err = p.Run()
			return errors.Wrap(err, "running gallery")
		},
	}
	rc.PersistentFlags().StringP("config", "c", "", "Configuration file to read from.")
	rc.PersistentFlags().String("debug-log", "", "Write diagnostic logs to this file.")

	flags := rc.Flags()
	flags.StringVar(&gc.Data, "data", "", "dataset to preload into the starting demo (.csv or .json)")
	flags.StringVar(&gc.Demo, "demo", "", "demo to start on")
	flags.StringVar(&gc.Theme, "theme", gc.Theme, "color theme: dusk, neon or mono")
	flags.BoolVar(&gc.Legend, "legend", gc.Legend, "show legends where a demo has one")
	flags.StringVar(&gc.XRange, "x-range", "", "fixed x range for the lines demo, as lo,hi")
	flags.StringVar(&gc.YRange, "y-range", "", "fixed y range for the lines demo, as lo,hi")
	flags.IntVar(&gc.Width, "width", 0, "cap the chart area width in cells (0 fits the terminal)")
	flags.IntVar(&gc.Height, "height", 0, "cap the chart area height in cells (0 fits the terminal)")

	rc.AddCommand(newDemosCommand(stdout))
	rc.AddCommand(newStatsCommand(stdout))
	rc.AddCommand(newRenderCommand(stdout))

	rc.SetOut(stdout)
	rc.SetErr(stderr)
	rc.SetIn(stdin)
	return rc
}

func (gc *galleryConfig) options() (tui.Options, error) {
	opts := tui.Options{Theme: gc.Theme, Legend: gc.Legend, MaxW: gc.Width, MaxH: gc.Height}
	if gc.Width < 0 || gc.Height < 0 {
		return opts, errors.New("--width and --height must not be negative")
	}
	var err error
	if opts.XRange, err = parseRange(gc.XRange); err != nil {
		return opts, errors.Wrap(err, "--x-range")
	}
	if opts.YRange, err = parseRange(gc.YRange); err != nil {
		return opts, errors.Wrap(err, "--y-range")
	}
	return opts, nil
}

// parseRange turns "lo,hi" into a bound pair; empty means unset.
func parseRange(s string) (*[2]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, errors.Errorf("%q: want lo,hi", s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "%q", s)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "%q", s)
	}
	if hi <= lo {
		return nil, errors.Errorf("%q: hi must exceed lo", s)
	}
	return &[2]float64{lo, hi}, nil
}
