package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/harrison/prlint/internal/runner"
)

// jsonFinding mirrors rules.Finding with stable JSON field names.
type jsonFinding struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

type jsonRule struct {
	ID       string        `json:"id"`
	Severity string        `json:"severity"`
	Passed   bool          `json:"passed"`
	Findings []jsonFinding `json:"findings,omitempty"`
}

type jsonReport struct {
	Path       string     `json:"path"`
	Passed     bool       `json:"passed"`
	DurationMS int64      `json:"duration_ms"`
	Rules      []jsonRule `json:"rules"`
}

// WriteJSON encodes the reports as an indented JSON array for CI consumers.
func WriteJSON(out io.Writer, reports []*runner.Report) error {
	payload := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		jr := jsonReport{
			Path:       r.Path,
			Passed:     r.Passed(),
			DurationMS: r.Duration.Milliseconds(),
		}
		for _, res := range r.Results {
			rule := jsonRule{
				ID:       res.RuleID,
				Severity: string(res.Severity),
				Passed:   res.Passed(),
			}
			for _, f := range res.Findings {
				rule.Findings = append(rule.Findings, jsonFinding{Message: f.Message, Line: f.Line})
			}
			jr.Rules = append(jr.Rules, rule)
		}
		payload = append(payload, jr)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}
	return nil
}
