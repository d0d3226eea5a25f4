package rules

import (
	"strings"
	"testing"
)

func TestRequiredSectionsMissing(t *testing.T) {
	content := strings.ReplaceAll(goodDoc, "### Legal Boilerplate", "### Other")
	findings := assertFails(t, "required-sections", content)
	if !strings.Contains(findings[0].Message, "Legal Boilerplate") {
		t.Errorf("finding should name the missing section, got %q", findings[0].Message)
	}
}

func TestSectionOrder(t *testing.T) {
	// Move the legal section ahead of the PR section.
	parts := strings.SplitN(goodDoc, "### What does this PR do?", 2)
	rest := strings.SplitN(parts[1], "### Legal Boilerplate", 2)
	reordered := parts[0] + "### Legal Boilerplate" + rest[1] + "### What does this PR do?" + rest[0]

	assertFails(t, "section-order", reordered)
	assertPasses(t, "section-order", goodDoc)
}

func TestUniqueSections(t *testing.T) {
	content := goodDoc + "\n### Purpose/Motivation\nRepeated section body.\n"
	findings := assertFails(t, "unique-sections", content)
	if !strings.Contains(findings[0].Message, "Purpose/Motivation") {
		t.Errorf("finding should name the duplicate, got %q", findings[0].Message)
	}
}

func TestHeadingLevel(t *testing.T) {
	content := strings.Replace(goodDoc, "### Purpose/Motivation", "## Purpose/Motivation", 1)
	findings := assertFails(t, "heading-level", content)
	if !strings.Contains(findings[0].Message, "level 2") {
		t.Errorf("finding should report the actual level, got %q", findings[0].Message)
	}
	if findings[0].Line != 1 {
		t.Errorf("finding.Line = %d, want 1", findings[0].Line)
	}
}

func TestSectionContent(t *testing.T) {
	assertFails(t, "section-content", goodDoc+"\n### Notes\nok\n")

	// Comment-only template sections are exempt.
	assertPasses(t, "section-content", goodDoc+"\n### Notes\n<!-- optional -->\n")
}

func TestSectionBullets(t *testing.T) {
	content := strings.Replace(goodDoc,
		`- Adds a tier service that resolves an organization's tier from its plan
- Wires GraphQL resolvers to expose the new tier fields
- Adds tests covering the tier service and the resolvers`,
		"Adds a tier service, resolvers, and tests in prose form.", 1)

	findings := assertFails(t, "section-bullets", content)
	if !strings.Contains(findings[0].Message, "What does this PR do?") {
		t.Errorf("finding should name the section, got %q", findings[0].Message)
	}

	// A missing section is required-sections' problem, not this rule's.
	assertPasses(t, "section-bullets", "### Purpose/Motivation\nSome body text here.\n")
}
