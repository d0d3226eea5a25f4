package rules

import (
	"strings"
	"testing"
)

func TestPlaceholders(t *testing.T) {
	findings := assertFails(t, "placeholders", goodDoc+"\nTODO: write the rest\n")
	if !strings.Contains(findings[0].Message, "TODO") {
		t.Errorf("finding should name the token, got %q", findings[0].Message)
	}
	if findings[0].Line == 0 {
		t.Error("finding should carry a line number")
	}

	assertPasses(t, "placeholders", goodDoc)
}

func TestPlaceholdersExactCase(t *testing.T) {
	// Lowercase "todo" inside a word is not a placeholder.
	assertPasses(t, "placeholders", goodDoc+"\nThe autodoc tooling handles this.\n")
}

func TestCredentials(t *testing.T) {
	findings := assertFails(t, "credentials", goodDoc+"\npassword: hunter2\n")
	if strings.Contains(findings[0].Message, "hunter2") {
		t.Errorf("finding must not echo the matched value, got %q", findings[0].Message)
	}

	assertFails(t, "credentials", goodDoc+"\nAPI_KEY=abc123\n")
	assertPasses(t, "credentials", goodDoc)
}

func TestAbsolutePaths(t *testing.T) {
	assertFails(t, "absolute-paths", goodDoc+"\nSee /Users/alice/repo/notes.txt\n")
	assertFails(t, "absolute-paths", goodDoc+"\nBuilt at C:\\build\\out\n")
	assertPasses(t, "absolute-paths", goodDoc)
}
