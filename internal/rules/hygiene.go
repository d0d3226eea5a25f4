package rules

import (
	"fmt"
	"strings"

	"github.com/harrison/prlint/internal/config"
	"github.com/harrison/prlint/internal/document"
)

// hygieneRules covers whitespace, encoding, line length, and file size.
func hygieneRules() []Rule {
	return []Rule{
		{
			ID:          "not-empty",
			Description: "Document is not empty",
			Severity:    SeverityError,
			Check:       checkNotEmpty,
		},
		{
			ID:          "utf8-encoding",
			Description: "File content is valid UTF-8",
			Severity:    SeverityError,
			Check:       checkUTF8,
		},
		{
			ID:          "final-newline",
			Description: "File ends with a newline character",
			Severity:    SeverityError,
			Check:       checkFinalNewline,
		},
		{
			ID:          "trailing-whitespace",
			Description: "Lines have no trailing whitespace",
			Severity:    SeverityWarning,
			Check:       checkTrailingWhitespace,
		},
		{
			ID:          "line-endings",
			Description: "Lines use LF endings",
			Severity:    SeverityWarning,
			Check:       checkLineEndings,
		},
		{
			ID:          "line-length",
			Description: "Lines stay within the configured length bound",
			Severity:    SeverityError,
			Check:       checkLineLength,
		},
		{
			ID:          "file-size",
			Description: "File size is within the configured bounds",
			Severity:    SeverityError,
			Check:       checkFileSize,
		},
		{
			ID:          "min-lines",
			Description: "Document has enough non-empty lines",
			Severity:    SeverityError,
			Check:       checkMinLines,
		},
	}
}

func checkNotEmpty(doc *document.Document, _ *config.Config) []Finding {
	if doc.IsBlank() {
		return []Finding{fail("document is empty")}
	}
	return nil
}

func checkUTF8(doc *document.Document, _ *config.Config) []Finding {
	if !doc.ValidUTF8() {
		return []Finding{fail("file content is not valid UTF-8")}
	}
	return nil
}

func checkFinalNewline(doc *document.Document, _ *config.Config) []Finding {
	if doc.Size() > 0 && !doc.EndsWithNewline() {
		return []Finding{fail("file should end with a newline character")}
	}
	return nil
}

func checkTrailingWhitespace(doc *document.Document, _ *config.Config) []Finding {
	var findings []Finding
	for i, line := range doc.Lines {
		if line != "" && line != strings.TrimRight(line, " \t") {
			findings = append(findings, failAt(i+1, "line has trailing whitespace"))
		}
	}
	return findings
}

func checkLineEndings(doc *document.Document, _ *config.Config) []Finding {
	if doc.HasCRLF() {
		return []Finding{fail("file contains CRLF line endings")}
	}
	return nil
}

func checkLineLength(doc *document.Document, cfg *config.Config) []Finding {
	type longLine struct {
		number int
		length int
	}
	var long []longLine
	for i, line := range doc.Lines {
		if len(line) > cfg.MaxLineLength {
			long = append(long, longLine{number: i + 1, length: len(line)})
		}
	}
	// A few long lines are tolerated (links, tables); fail only past the
	// configured allowance.
	if len(long) <= cfg.MaxLongLines {
		return nil
	}
	findings := make([]Finding, 0, len(long))
	for _, l := range long {
		findings = append(findings, failAt(l.number,
			fmt.Sprintf("line is %d characters, limit is %d", l.length, cfg.MaxLineLength)))
	}
	return findings
}

func checkFileSize(doc *document.Document, cfg *config.Config) []Finding {
	size := doc.Size()
	if size <= cfg.MinBytes {
		return []Finding{fail(fmt.Sprintf("file is %d bytes, expected more than %d", size, cfg.MinBytes))}
	}
	if size >= cfg.MaxBytes {
		return []Finding{fail(fmt.Sprintf("file is %d bytes, expected fewer than %d", size, cfg.MaxBytes))}
	}
	return nil
}

func checkMinLines(doc *document.Document, cfg *config.Config) []Finding {
	count := doc.NonEmptyLineCount()
	if count <= cfg.MinContentLines {
		return []Finding{fail(fmt.Sprintf("document has %d non-empty lines, expected more than %d", count, cfg.MinContentLines))}
	}
	return nil
}
