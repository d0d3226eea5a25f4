package document

import (
	"regexp"
	"strings"
)

// Section is one heading-delimited region of the document. Body holds every
// line between this heading and the next one, joined with newlines.
type Section struct {
	Level int
	Title string
	Line  int // 1-based line number of the heading
	Body  string
}

var (
	// Headings may be blockquoted ("> ### Title"), so allow quote markers
	// and leading whitespace before the hashes.
	headingLineRegex = regexp.MustCompile(`^[>\s]*(#{1,6})\s+(.+?)\s*$`)
	bulletLineRegex  = regexp.MustCompile(`^[>\s]*[-*]\s+(.+)$`)
	fenceLineRegex   = regexp.MustCompile("^[>\\s]*```")
)

// splitSections scans the document line by line and groups content under the
// most recent heading. Fenced code blocks are skipped so a "# comment" line
// inside a shell snippet does not start a new section.
func splitSections(lines []string) []Section {
	var sections []Section
	var current *Section
	var body strings.Builder
	inFence := false

	flush := func() {
		if current != nil {
			current.Body = body.String()
			sections = append(sections, *current)
		}
		body.Reset()
	}

	for i, line := range lines {
		if fenceLineRegex.MatchString(line) {
			inFence = !inFence
			if current != nil {
				body.WriteString(line)
				body.WriteString("\n")
			}
			continue
		}
		if inFence {
			if current != nil {
				body.WriteString(line)
				body.WriteString("\n")
			}
			continue
		}

		if matches := headingLineRegex.FindStringSubmatch(line); matches != nil {
			flush()
			current = &Section{
				Level: len(matches[1]),
				Title: strings.TrimSpace(matches[2]),
				Line:  i + 1,
			}
			continue
		}

		if current != nil {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	flush()

	return sections
}

// Bullets returns the text of each top-level bullet item in the section,
// tolerating blockquote prefixes on the bullet lines.
func (s *Section) Bullets() []string {
	var bullets []string
	for _, line := range strings.Split(s.Body, "\n") {
		if matches := bulletLineRegex.FindStringSubmatch(line); matches != nil {
			bullets = append(bullets, strings.TrimSpace(matches[1]))
		}
	}
	return bullets
}

// PlainBody returns the section body with blockquote markers stripped and
// surrounding whitespace trimmed, for content-length checks.
func (s *Section) PlainBody() string {
	var b strings.Builder
	for _, line := range strings.Split(s.Body, "\n") {
		b.WriteString(strings.TrimLeft(line, "> \t"))
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// CommentOnly reports whether the section body consists solely of HTML
// comments and whitespace. Template sections like that are exempt from
// minimum-content checks.
func (s *Section) CommentOnly() bool {
	stripped := htmlCommentRegex.ReplaceAllString(s.Body, "")
	return strings.Contains(s.Body, "<!--") && strings.TrimSpace(stripped) == ""
}

// ContainsFold reports whether the section body mentions term, ignoring case.
func (s *Section) ContainsFold(term string) bool {
	return strings.Contains(strings.ToLower(s.Body), strings.ToLower(term))
}

var htmlCommentRegex = regexp.MustCompile(`(?s)<!--.*?-->`)

// Bullet is a top-level bullet item found anywhere in the document.
type Bullet struct {
	Line int // 1-based
	Text string
}

// Bullets returns every bullet item in the document, skipping fenced code.
func (d *Document) Bullets() []Bullet {
	var bullets []Bullet
	inFence := false
	for i, line := range d.Lines {
		if fenceLineRegex.MatchString(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if matches := bulletLineRegex.FindStringSubmatch(line); matches != nil {
			bullets = append(bullets, Bullet{Line: i + 1, Text: strings.TrimSpace(matches[1])})
		}
	}
	return bullets
}
