package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/harrison/prlint/internal/rules"
	"github.com/harrison/prlint/internal/runner"
)

// PrintSummary renders a one-row-per-document table for multi-file runs.
func PrintSummary(out io.Writer, reports []*runner.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Document", "Passed", "Failed", "Findings", "Status"})

	for _, r := range reports {
		passed, failed := r.Counts()
		status := "OK"
		if !r.Passed() {
			status = "FAIL"
		}
		t.AppendRow(table.Row{r.Path, passed, failed, r.FindingCount(), status})
	}

	t.Render()
}

// PrintRules renders the registered rule set for `prlint rules`.
func PrintRules(out io.Writer, ruleSet []rules.Rule) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Severity", "Description"})

	for _, r := range ruleSet {
		t.AppendRow(table.Row{r.ID, string(r.Severity), r.Description})
	}

	t.Render()
	fmt.Fprintf(out, "%d rules registered\n", len(ruleSet))
}
