// Package runner executes the configured rule set against a document and
// collects the outcome into a Report. Execution is synchronous: rules run
// one after another and a failing rule never aborts the run.
package runner

import (
	"time"

	"github.com/harrison/prlint/internal/config"
	"github.com/harrison/prlint/internal/document"
	"github.com/harrison/prlint/internal/rules"
)

// RuleResult is the outcome of one rule against one document.
type RuleResult struct {
	RuleID      string
	Description string
	Severity    rules.Severity
	Findings    []rules.Finding
}

// Passed reports whether the rule produced no findings.
func (r RuleResult) Passed() bool {
	return len(r.Findings) == 0
}

// Report is the outcome of a full check run over one document.
type Report struct {
	Path     string
	Results  []RuleResult
	Duration time.Duration
}

// Passed reports whether no error-severity rule failed. Warning findings do
// not affect the result.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() && res.Severity == rules.SeverityError {
			return false
		}
	}
	return true
}

// Counts returns the number of passed and failed rules.
func (r *Report) Counts() (passed, failed int) {
	for _, res := range r.Results {
		if res.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// FindingCount returns the total number of findings across all rules.
func (r *Report) FindingCount() int {
	total := 0
	for _, res := range r.Results {
		total += len(res.Findings)
	}
	return total
}

// ErrorCount returns the number of findings at error severity.
func (r *Report) ErrorCount() int {
	total := 0
	for _, res := range r.Results {
		if res.Severity == rules.SeverityError {
			total += len(res.Findings)
		}
	}
	return total
}

// Runner holds the active rule set for repeated check runs.
type Runner struct {
	cfg     *config.Config
	ruleSet []rules.Rule
}

// New builds a Runner from the registered rules, dropping disabled ones and
// applying configured severity overrides.
func New(cfg *config.Config) *Runner {
	var ruleSet []rules.Rule
	for _, rule := range rules.All() {
		if cfg.RuleDisabled(rule.ID) {
			continue
		}
		if sev, ok := cfg.Severity[rule.ID]; ok {
			rule.Severity = rules.Severity(sev)
		}
		ruleSet = append(ruleSet, rule)
	}
	return &Runner{cfg: cfg, ruleSet: ruleSet}
}

// Rules returns the active rule set in execution order.
func (r *Runner) Rules() []rules.Rule {
	return r.ruleSet
}

// Check runs every active rule against the document.
func (r *Runner) Check(doc *document.Document) *Report {
	start := time.Now()

	report := &Report{Path: doc.Path}
	for _, rule := range r.ruleSet {
		report.Results = append(report.Results, RuleResult{
			RuleID:      rule.ID,
			Description: rule.Description,
			Severity:    rule.Severity,
			Findings:    rule.Check(doc, r.cfg),
		})
	}

	report.Duration = time.Since(start)
	return report
}
