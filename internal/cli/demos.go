package cli

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"chartdeck/internal/tui"
)

func newDemosCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "demos",
		Short: "List the demos in gallery order",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(stdout)
			// Don't uppercase the header values.
			t.Style().Format.Header = text.FormatDefault
			t.AppendHeader(table.Row{"#", "demo", "about"})
			for i, d := range tui.NewDemos(tui.Options{}) {
				t.AppendRow(table.Row{i + 1, d.Title(), strings.ReplaceAll(d.Blurb(), "\n", " ")})
			}
			t.Render()
			return nil
		},
	}
}
