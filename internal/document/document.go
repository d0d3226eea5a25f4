// Package document loads the file under test and exposes the line-level and
// whole-file properties the lint rules assert against. A Document is read
// once per run and treated as immutable.
package document

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// utf8BOM is the byte order mark some editors prepend to UTF-8 files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is an immutable snapshot of one file under test.
type Document struct {
	// Path is the path the document was loaded from.
	Path string

	// Raw holds the exact bytes on disk, BOM and carriage returns included.
	Raw []byte

	// Text is the decoded content with any leading BOM stripped. Carriage
	// returns are preserved so byte-accurate checks stay possible.
	Text string

	// Lines is Text split on newlines with a single trailing \r removed per
	// line, so line-level checks see the same content on LF and CRLF files.
	Lines []string

	sections []Section
	links    []Link
	headings []Heading
}

// Load reads the file at path and builds a Document from its contents.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return FromBytes(path, data), nil
}

// FromBytes builds a Document from in-memory content. Used by tests and by
// watch mode to avoid re-stat-ing the file.
func FromBytes(path string, data []byte) *Document {
	text := data
	if bytes.HasPrefix(text, utf8BOM) {
		text = text[len(utf8BOM):]
	}

	doc := &Document{
		Path: path,
		Raw:  data,
		Text: string(text),
	}

	rawLines := strings.Split(doc.Text, "\n")
	doc.Lines = make([]string, len(rawLines))
	for i, line := range rawLines {
		doc.Lines[i] = strings.TrimSuffix(line, "\r")
	}

	doc.parseMarkdown()
	doc.sections = splitSections(doc.Lines)
	return doc
}

// Size returns the document size in bytes as stored on disk.
func (d *Document) Size() int {
	return len(d.Raw)
}

// EndsWithNewline reports whether the last byte on disk is \n. An empty
// file is treated as not newline-terminated.
func (d *Document) EndsWithNewline() bool {
	return len(d.Raw) > 0 && d.Raw[len(d.Raw)-1] == '\n'
}

// ValidUTF8 reports whether the on-disk bytes decode as UTF-8.
func (d *Document) ValidUTF8() bool {
	return utf8.Valid(d.Raw)
}

// HasBOM reports whether the file starts with a UTF-8 byte order mark.
func (d *Document) HasBOM() bool {
	return bytes.HasPrefix(d.Raw, utf8BOM)
}

// HasCRLF reports whether any line on disk is CRLF-terminated.
func (d *Document) HasCRLF() bool {
	return bytes.Contains(d.Raw, []byte("\r\n"))
}

// IsBlank reports whether the document contains only whitespace.
func (d *Document) IsBlank() bool {
	return strings.TrimSpace(d.Text) == ""
}

// NonEmptyLineCount returns the number of lines with non-whitespace content.
func (d *Document) NonEmptyLineCount() int {
	count := 0
	for _, line := range d.Lines {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// ContainsFold reports whether the document mentions term, ignoring case.
func (d *Document) ContainsFold(term string) bool {
	return strings.Contains(strings.ToLower(d.Text), strings.ToLower(term))
}

// CountFold returns the number of case-insensitive occurrences of term.
func (d *Document) CountFold(term string) int {
	if term == "" {
		return 0
	}
	return strings.Count(strings.ToLower(d.Text), strings.ToLower(term))
}

// Sections returns the heading-delimited sections in document order.
func (d *Document) Sections() []Section {
	return d.sections
}

// Section returns the section with the given title (exact match) or nil.
func (d *Document) Section(title string) *Section {
	for i := range d.sections {
		if d.sections[i].Title == title {
			return &d.sections[i]
		}
	}
	return nil
}

// Links returns the inline links extracted from the markdown AST.
func (d *Document) Links() []Link {
	return d.links
}

// Headings returns the headings extracted from the markdown AST.
func (d *Document) Headings() []Heading {
	return d.headings
}
