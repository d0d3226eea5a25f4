package rules

import (
	"fmt"
	"strings"

	"github.com/harrison/prlint/internal/config"
	"github.com/harrison/prlint/internal/document"
)

// structureRules covers section presence, ordering, uniqueness, heading
// levels, minimum section content, and bullet requirements.
func structureRules() []Rule {
	return []Rule{
		{
			ID:          "required-sections",
			Description: "All required sections are present",
			Severity:    SeverityError,
			Check:       checkRequiredSections,
		},
		{
			ID:          "section-order",
			Description: "Required sections appear in the configured order",
			Severity:    SeverityError,
			Check:       checkSectionOrder,
		},
		{
			ID:          "unique-sections",
			Description: "Section titles are not duplicated",
			Severity:    SeverityError,
			Check:       checkUniqueSections,
		},
		{
			ID:          "heading-level",
			Description: "Headings use the configured level",
			Severity:    SeverityError,
			Check:       checkHeadingLevel,
		},
		{
			ID:          "section-content",
			Description: "Sections contain substantial content",
			Severity:    SeverityError,
			Check:       checkSectionContent,
		},
		{
			ID:          "section-bullets",
			Description: "Configured sections contain at least one bullet point",
			Severity:    SeverityError,
			Check:       checkSectionBullets,
		},
	}
}

func checkRequiredSections(doc *document.Document, cfg *config.Config) []Finding {
	var findings []Finding
	for _, title := range cfg.RequiredSections {
		if doc.Section(title) == nil {
			findings = append(findings, fail(fmt.Sprintf("missing required section %q", title)))
		}
	}
	return findings
}

func checkSectionOrder(doc *document.Document, cfg *config.Config) []Finding {
	var findings []Finding

	// Only sections that exist participate; missing ones are reported by
	// required-sections.
	prevTitle := ""
	prevLine := 0
	for _, title := range cfg.RequiredSections {
		sec := doc.Section(title)
		if sec == nil {
			continue
		}
		if prevTitle != "" && sec.Line < prevLine {
			findings = append(findings, failAt(sec.Line,
				fmt.Sprintf("section %q should come after %q", title, prevTitle)))
		}
		prevTitle = title
		prevLine = sec.Line
	}
	return findings
}

func checkUniqueSections(doc *document.Document, _ *config.Config) []Finding {
	var findings []Finding
	seen := make(map[string]int)
	for _, sec := range doc.Sections() {
		if firstLine, ok := seen[sec.Title]; ok {
			findings = append(findings, failAt(sec.Line,
				fmt.Sprintf("duplicate section %q (first defined on line %d)", sec.Title, firstLine)))
			continue
		}
		seen[sec.Title] = sec.Line
	}
	return findings
}

func checkHeadingLevel(doc *document.Document, cfg *config.Config) []Finding {
	var findings []Finding
	for _, sec := range doc.Sections() {
		if sec.Level != cfg.HeadingLevel {
			findings = append(findings, failAt(sec.Line,
				fmt.Sprintf("heading %q uses level %d, want %d", sec.Title, sec.Level, cfg.HeadingLevel)))
		}
	}
	return findings
}

func checkSectionContent(doc *document.Document, cfg *config.Config) []Finding {
	var findings []Finding
	for _, sec := range doc.Sections() {
		// Comment-only template sections are exempt.
		if strings.Contains(sec.Body, "<!--") {
			continue
		}
		if len(sec.PlainBody()) <= cfg.MinSectionLength {
			findings = append(findings, failAt(sec.Line,
				fmt.Sprintf("section %q has no substantial content", sec.Title)))
		}
	}
	return findings
}

func checkSectionBullets(doc *document.Document, cfg *config.Config) []Finding {
	var findings []Finding
	for _, title := range cfg.BulletSections {
		sec := doc.Section(title)
		if sec == nil {
			continue
		}
		if len(sec.Bullets()) == 0 {
			findings = append(findings, failAt(sec.Line,
				fmt.Sprintf("section %q should contain at least one bullet point", title)))
		}
	}
	return findings
}
