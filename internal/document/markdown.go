package document

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is a heading node extracted from the markdown AST. Unlike the
// line scanner in sections.go, goldmark sees through blockquotes and list
// nesting, so both views are kept and rules pick whichever fits.
type Heading struct {
	Level int
	Text  string
}

// Link is an inline link extracted from the markdown AST.
type Link struct {
	Text        string
	Destination string
}

// parseMarkdown walks the goldmark AST once and caches the headings and
// links the rules need.
func (d *Document) parseMarkdown() {
	md := goldmark.New()
	source := []byte(d.Text)
	root := md.Parser().Parse(text.NewReader(source))

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			d.headings = append(d.headings, Heading{
				Level: node.Level,
				Text:  nodeText(node, source),
			})
		case *ast.Link:
			d.links = append(d.links, Link{
				Text:        nodeText(node, source),
				Destination: string(node.Destination),
			})
		}

		return ast.WalkContinue, nil
	})
}

// nodeText collects the plain text beneath an AST node.
func nodeText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			continue
		}
		buf.WriteString(nodeText(c, source))
	}
	return buf.String()
}
