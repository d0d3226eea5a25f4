package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/harrison/prlint/internal/config"
	"github.com/harrison/prlint/internal/document"
)

// safetyRules covers placeholder tokens, credential leaks, and absolute
// filesystem paths that should never appear in a published description.
func safetyRules() []Rule {
	return []Rule{
		{
			ID:          "placeholders",
			Description: "No placeholder tokens remain in the document",
			Severity:    SeverityError,
			Check:       checkPlaceholders,
		},
		{
			ID:          "credentials",
			Description: "No credential assignments appear in the document",
			Severity:    SeverityError,
			Check:       checkCredentials,
		},
		{
			ID:          "absolute-paths",
			Description: "No absolute filesystem paths appear in the document",
			Severity:    SeverityError,
			Check:       checkAbsolutePaths,
		},
	}
}

func checkPlaceholders(doc *document.Document, cfg *config.Config) []Finding {
	var findings []Finding
	for _, token := range cfg.Placeholders {
		idx := strings.Index(doc.Text, token)
		if idx < 0 {
			continue
		}
		findings = append(findings, failAt(lineOfOffset(doc, idx),
			fmt.Sprintf("placeholder text %q should be removed", token)))
	}
	return findings
}

func checkCredentials(doc *document.Document, cfg *config.Config) []Finding {
	// Findings report the pattern, never the matched text, so a leaked
	// value is not echoed into logs.
	return checkPatterns(doc, cfg.CredentialPatterns, "content matching credential pattern %q")
}

func checkAbsolutePaths(doc *document.Document, cfg *config.Config) []Finding {
	return checkPatterns(doc, cfg.PathPatterns, "content matching absolute path pattern %q")
}

// checkPatterns runs each pattern against the document and reports the
// first match per pattern. Patterns are pre-validated by config.Validate,
// so compile errors are skipped rather than surfaced here.
func checkPatterns(doc *document.Document, patterns []string, format string) []Finding {
	var findings []Finding
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		loc := re.FindStringIndex(doc.Text)
		if loc == nil {
			continue
		}
		findings = append(findings, failAt(lineOfOffset(doc, loc[0]),
			fmt.Sprintf(format, pattern)))
	}
	return findings
}
