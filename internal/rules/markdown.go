package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/harrison/prlint/internal/config"
	"github.com/harrison/prlint/internal/document"
)

// markdownRules covers basic markdown well-formedness: bracket balance,
// link syntax, and HTML comment closure.
func markdownRules() []Rule {
	return []Rule{
		{
			ID:          "bracket-balance",
			Description: "Square brackets are balanced",
			Severity:    SeverityError,
			Check:       checkBracketBalance,
		},
		{
			ID:          "link-syntax",
			Description: "Inline links have a destination",
			Severity:    SeverityError,
			Check:       checkLinkSyntax,
		},
		{
			ID:          "html-comments",
			Description: "HTML comments are properly closed",
			Severity:    SeverityError,
			Check:       checkHTMLComments,
		},
	}
}

func checkBracketBalance(doc *document.Document, _ *config.Config) []Finding {
	open := strings.Count(doc.Text, "[")
	closed := strings.Count(doc.Text, "]")
	if open != closed {
		return []Finding{fail(fmt.Sprintf("unbalanced square brackets: %d opening, %d closing", open, closed))}
	}
	return nil
}

var emptyLinkRegex = regexp.MustCompile(`\[[^\]]*\]\(\s*\)`)

func checkLinkSyntax(doc *document.Document, _ *config.Config) []Finding {
	var findings []Finding

	// The AST drops empty destinations, so catch the literal []() form
	// textually as well.
	if loc := emptyLinkRegex.FindStringIndex(doc.Text); loc != nil {
		findings = append(findings, failAt(lineOfOffset(doc, loc[0]), "link has an empty destination"))
	}

	for _, link := range doc.Links() {
		if strings.TrimSpace(link.Destination) == "" {
			findings = append(findings, fail(fmt.Sprintf("link %q has an empty destination", link.Text)))
		}
	}
	return findings
}

func checkHTMLComments(doc *document.Document, _ *config.Config) []Finding {
	var findings []Finding
	rest := doc.Text
	offset := 0
	for {
		idx := strings.Index(rest, "<!--")
		if idx < 0 {
			break
		}
		end := strings.Index(rest[idx:], "-->")
		if end < 0 {
			findings = append(findings, failAt(lineOfOffset(doc, offset+idx), "HTML comment is not closed"))
			break
		}
		advance := idx + end + len("-->")
		rest = rest[advance:]
		offset += advance
	}
	return findings
}
