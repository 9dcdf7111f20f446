// Package report renders the outcome of a run for the terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vvka-141/csvload/pkg/csvload"
)

// Write renders the run summary and, below it, one line per validation
// error in file order.
func Write(w io.Writer, r *csvload.RunReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Run", "Separator", "Rows Read", "Eligible", "Loaded", "Errors", "Duration"})
	t.AppendRow(table.Row{
		r.RunID.String(),
		fmt.Sprintf("%q", r.Separator),
		r.RowsRead,
		r.EligibleRows,
		loadedCell(r),
		len(r.Errors),
		r.Duration.Truncate(time.Millisecond),
	})
	t.Render()

	if len(r.Errors) > 0 {
		_, _ = fmt.Fprintln(w)
		for _, e := range r.Errors {
			_, _ = fmt.Fprintln(w, e.String())
		}
	}
}

func loadedCell(r *csvload.RunReport) string {
	if r.DryRun {
		return "0 (dry run)"
	}
	return fmt.Sprintf("%d", r.RowsLoaded)
}
