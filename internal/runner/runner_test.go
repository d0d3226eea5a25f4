package runner

import (
	"strings"
	"testing"

	"github.com/harrison/prlint/internal/config"
	"github.com/harrison/prlint/internal/document"
	"github.com/harrison/prlint/internal/rules"
)

const cleanDoc = `### Purpose/Motivation
> Customers on different plans need different limits, so we want to
> differentiate the tier we return for an organization by its plan.
> The shape of this feature will keep evolving.

### What does this PR do?
- Adds a tier service that resolves an organization's tier from its plan
- Wires GraphQL resolvers to expose the new tier fields
- Adds tests covering the tier service and the resolvers

### Legal Boilerplate
Look, I get it. The entity doing business as "Sentry" was incorporated in
the State of Delaware in 2015 as Functional Software, Inc. In return for my
contributions, Sentry and Codecov get all rights, title and interest in and
to those contributions, to use under their choice of terms.
`

func checkContent(t *testing.T, cfg *config.Config, content string) *Report {
	t.Helper()
	doc := document.FromBytes("README.md", []byte(content))
	return New(cfg).Check(doc)
}

func TestCleanDocumentPasses(t *testing.T) {
	report := checkContent(t, config.DefaultConfig(), cleanDoc)

	if !report.Passed() {
		t.Errorf("Passed() = false, findings: %d", report.FindingCount())
		for _, res := range report.Results {
			for _, f := range res.Findings {
				t.Logf("  %s: %s", res.RuleID, f.Message)
			}
		}
	}

	passed, failed := report.Counts()
	if failed != 0 {
		t.Errorf("Counts() failed = %d, want 0", failed)
	}
	if passed != len(rules.All()) {
		t.Errorf("Counts() passed = %d, want %d", passed, len(rules.All()))
	}
	if report.Path != "README.md" {
		t.Errorf("Path = %q", report.Path)
	}
}

func TestFailingDocumentReported(t *testing.T) {
	content := strings.ReplaceAll(cleanDoc, "resolver", "handler")
	report := checkContent(t, config.DefaultConfig(), content)

	if report.Passed() {
		t.Error("Passed() = true for a document missing a required term")
	}
	if report.ErrorCount() == 0 {
		t.Error("ErrorCount() = 0, want > 0")
	}
	_, failed := report.Counts()
	if failed == 0 {
		t.Error("Counts() failed = 0, want > 0")
	}
}

func TestDisabledRuleSkipped(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Disabled = []string{"required-terms", "section-terms"}

	content := strings.ReplaceAll(cleanDoc, "resolver", "handler")
	report := checkContent(t, cfg, content)

	for _, res := range report.Results {
		if res.RuleID == "required-terms" || res.RuleID == "section-terms" {
			t.Errorf("disabled rule %s was run", res.RuleID)
		}
	}
	if !report.Passed() {
		t.Error("Passed() = false with the failing rules disabled")
	}
}

func TestWarningsDoNotFailTheRun(t *testing.T) {
	content := cleanDoc + "\nA line with trailing spaces  \n"
	report := checkContent(t, config.DefaultConfig(), content)

	if !report.Passed() {
		t.Error("Passed() = false, warnings alone should not fail the run")
	}
	if report.FindingCount() == 0 {
		t.Error("FindingCount() = 0, the warning finding should be reported")
	}
	if report.ErrorCount() != 0 {
		t.Errorf("ErrorCount() = %d, want 0", report.ErrorCount())
	}
}

func TestSeverityOverride(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Severity = map[string]string{"trailing-whitespace": "error"}

	content := cleanDoc + "\nA line with trailing spaces  \n"
	report := checkContent(t, cfg, content)

	if report.Passed() {
		t.Error("Passed() = true, the override should promote the warning to an error")
	}
	if report.ErrorCount() == 0 {
		t.Error("ErrorCount() = 0, want > 0")
	}
}

func TestRulesAccessor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Disabled = []string{"line-endings"}

	active := New(cfg).Rules()
	if len(active) != len(rules.All())-1 {
		t.Errorf("Rules() returned %d rules, want %d", len(active), len(rules.All())-1)
	}
	for _, r := range active {
		if r.ID == "line-endings" {
			t.Error("disabled rule present in Rules()")
		}
	}
}
