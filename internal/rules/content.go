package rules

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/harrison/prlint/internal/config"
	"github.com/harrison/prlint/internal/document"
)

// contentRules covers business-term mentions and bullet grammar.
func contentRules() []Rule {
	return []Rule{
		{
			ID:          "required-terms",
			Description: "Required terms are mentioned somewhere in the document",
			Severity:    SeverityError,
			Check:       checkRequiredTerms,
		},
		{
			ID:          "term-pairs",
			Description: "Related terms are mentioned together",
			Severity:    SeverityError,
			Check:       checkTermPairs,
		},
		{
			ID:          "section-terms",
			Description: "Specific sections mention their required terms",
			Severity:    SeverityError,
			Check:       checkSectionTerms,
		},
		{
			ID:          "bullet-capitalization",
			Description: "Bullet points start with a capital letter or digit",
			Severity:    SeverityError,
			Check:       checkBulletCapitalization,
		},
	}
}

func checkRequiredTerms(doc *document.Document, cfg *config.Config) []Finding {
	var findings []Finding
	for _, term := range cfg.RequiredTerms {
		if !doc.ContainsFold(term) {
			findings = append(findings, fail(fmt.Sprintf("document should mention %q", term)))
		}
	}
	return findings
}

func checkTermPairs(doc *document.Document, cfg *config.Config) []Finding {
	var findings []Finding
	for _, pair := range cfg.TermPairs {
		var missing []string
		for _, term := range pair {
			if doc.CountFold(term) == 0 {
				missing = append(missing, term)
			}
		}
		if len(missing) > 0 {
			findings = append(findings, fail(fmt.Sprintf(
				"terms %s belong together but %s missing",
				quoteJoin(pair), quoteJoin(missing))))
		}
	}
	return findings
}

func checkSectionTerms(doc *document.Document, cfg *config.Config) []Finding {
	var findings []Finding
	for _, rule := range cfg.SectionTerms {
		sec := doc.Section(rule.Section)
		if sec == nil {
			// Presence is required-sections' job.
			continue
		}

		contains := func(term string) bool {
			if rule.CaseSensitive {
				return strings.Contains(sec.Body, term)
			}
			return sec.ContainsFold(term)
		}

		for _, term := range rule.AllOf {
			if !contains(term) {
				findings = append(findings, failAt(sec.Line,
					fmt.Sprintf("section %q should mention %q", rule.Section, term)))
			}
		}

		if len(rule.AnyOf) > 0 {
			matched := false
			for _, term := range rule.AnyOf {
				if contains(term) {
					matched = true
					break
				}
			}
			if !matched {
				findings = append(findings, failAt(sec.Line,
					fmt.Sprintf("section %q should mention one of %s", rule.Section, quoteJoin(rule.AnyOf))))
			}
		}
	}
	return findings
}

func checkBulletCapitalization(doc *document.Document, _ *config.Config) []Finding {
	var findings []Finding
	for _, bullet := range doc.Bullets() {
		runes := []rune(bullet.Text)
		if len(runes) == 0 {
			continue
		}
		first := runes[0]
		if !unicode.IsUpper(first) && !unicode.IsDigit(first) {
			findings = append(findings, failAt(bullet.Line,
				fmt.Sprintf("bullet point should start with a capital letter or digit: %q", truncate(bullet.Text, 60))))
		}
	}
	return findings
}

func quoteJoin(terms []string) string {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return strings.Join(quoted, ", ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
