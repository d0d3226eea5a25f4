// Package report renders check results for humans and CI: colored console
// output, a summary table, and JSON.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/prlint/internal/rules"
	"github.com/harrison/prlint/internal/runner"
)

// scheme defines consistent colors for rule outcomes.
// Green: passed rules. Red: error findings. Yellow: warnings.
type scheme struct {
	pass *color.Color
	fail *color.Color
	warn *color.Color
}

// Printer renders reports to a writer. Color is decided once at
// construction so tests can force it off.
type Printer struct {
	out    io.Writer
	scheme *scheme
}

// NewPrinter creates a Printer. When useColor is false all output is plain.
func NewPrinter(out io.Writer, useColor bool) *Printer {
	s := &scheme{
		pass: color.New(color.FgGreen),
		fail: color.New(color.FgRed),
		warn: color.New(color.FgYellow),
	}
	if !useColor {
		for _, c := range []*color.Color{s.pass, s.fail, s.warn} {
			c.DisableColor()
		}
	}
	return &Printer{out: out, scheme: s}
}

// ColorEnabled reports whether w is a terminal that can render color.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PrintReport writes the per-rule outcome of one document check.
func (p *Printer) PrintReport(report *runner.Report) {
	fmt.Fprintf(p.out, "Checking %s\n", report.Path)

	for _, res := range report.Results {
		if res.Passed() {
			fmt.Fprintf(p.out, "%s %s: %s\n", p.scheme.pass.Sprint("✓"), res.RuleID, res.Description)
			continue
		}

		mark := p.scheme.fail
		if res.Severity == rules.SeverityWarning {
			mark = p.scheme.warn
		}
		fmt.Fprintf(p.out, "%s %s: %s\n", mark.Sprint("✗"), res.RuleID, findingLabel(len(res.Findings), res.Severity))
		for _, f := range res.Findings {
			if f.Line > 0 {
				fmt.Fprintf(p.out, "    %s line %d: %s\n", mark.Sprint("✗"), f.Line, f.Message)
			} else {
				fmt.Fprintf(p.out, "    %s %s\n", mark.Sprint("✗"), f.Message)
			}
		}
	}

	passed, failed := report.Counts()
	if report.Passed() {
		fmt.Fprintf(p.out, "\n%s %s is clean (%d rules passed, %d failed)\n",
			p.scheme.pass.Sprint("✓"), report.Path, passed, failed)
		return
	}
	fmt.Fprintf(p.out, "\n%s %s failed with %d finding(s) across %d rule(s)\n",
		p.scheme.fail.Sprint("✗"), report.Path, report.FindingCount(), failed)
}

func findingLabel(count int, sev rules.Severity) string {
	label := fmt.Sprintf("%d finding(s)", count)
	if sev == rules.SeverityWarning {
		label += " (warning)"
	}
	return label
}
