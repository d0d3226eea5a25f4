package rules

import (
	"strings"
	"testing"
)

func TestBracketBalance(t *testing.T) {
	findings := assertFails(t, "bracket-balance", goodDoc+"\nSee [the issue for details.\n")
	if !strings.Contains(findings[0].Message, "unbalanced") {
		t.Errorf("finding = %q", findings[0].Message)
	}

	assertPasses(t, "bracket-balance", goodDoc+"\nSee [the issue](https://example.com/1) for details.\n")
}

func TestLinkSyntax(t *testing.T) {
	assertFails(t, "link-syntax", goodDoc+"\nSee [the docs]() for details.\n")
	assertPasses(t, "link-syntax", goodDoc+"\nSee [the docs](https://example.com/docs) for details.\n")
}

func TestHTMLComments(t *testing.T) {
	findings := assertFails(t, "html-comments", goodDoc+"\n<!-- reviewer notes\n")
	if !strings.Contains(findings[0].Message, "not closed") {
		t.Errorf("finding = %q", findings[0].Message)
	}

	assertPasses(t, "html-comments", goodDoc+"\n<!-- reviewer notes -->\n")
}
