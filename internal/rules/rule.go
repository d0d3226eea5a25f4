// Package rules defines the lint predicates run against a document. Each
// rule is an independent boolean check: it inspects the loaded document and
// the active configuration and returns zero or more findings. Rules share
// no state and have no ordering dependencies.
package rules

import (
	"strings"

	"github.com/harrison/prlint/internal/config"
	"github.com/harrison/prlint/internal/document"
)

// Severity classifies how a failed rule affects the exit status. Error
// findings fail the run; warnings are reported but do not.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single failed assertion. Line is 1-based and zero for
// whole-file findings.
type Finding struct {
	Message string
	Line    int
}

// Rule is one predicate over the document under test.
type Rule struct {
	// ID is the stable identifier used in config (disabled, severity).
	ID string

	// Description is the one-line summary shown by `prlint rules`.
	Description string

	// Severity is the default severity; config may override it.
	Severity Severity

	// Check runs the predicate and returns its findings. An empty result
	// means the rule passed.
	Check func(doc *document.Document, cfg *config.Config) []Finding
}

// All returns every registered rule in reporting order.
func All() []Rule {
	var all []Rule
	all = append(all, structureRules()...)
	all = append(all, contentRules()...)
	all = append(all, hygieneRules()...)
	all = append(all, safetyRules()...)
	all = append(all, markdownRules()...)
	return all
}

// ByID returns the rule with the given ID, or false if none is registered.
func ByID(id string) (Rule, bool) {
	for _, r := range All() {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

// fail is shorthand for a whole-file finding.
func fail(message string) Finding {
	return Finding{Message: message}
}

// failAt is shorthand for a line-scoped finding.
func failAt(line int, message string) Finding {
	return Finding{Message: message, Line: line}
}

// lineOfOffset converts a byte offset into doc.Text to a 1-based line number.
func lineOfOffset(doc *document.Document, offset int) int {
	if offset < 0 || offset > len(doc.Text) {
		return 0
	}
	return strings.Count(doc.Text[:offset], "\n") + 1
}
