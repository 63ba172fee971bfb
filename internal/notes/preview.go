package notes

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const previewParagraphs = 2

// Preview returns the text of the first paragraphs of a note body on a
// single line, skipping headings, truncated to max runes.
func Preview(body string, max int) string {
	source := []byte(body)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var parts []string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindHeading:
			return ast.WalkSkipChildren, nil
		case ast.KindParagraph:
			if len(parts) >= previewParagraphs {
				return ast.WalkStop, nil
			}
			if t := strings.Join(strings.Fields(paragraphText(n, source)), " "); t != "" {
				parts = append(parts, t)
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return Truncate(strings.Join(parts, " "), max)
}

// paragraphText joins the raw source lines of a block, keeping soft breaks.
func paragraphText(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
		b.WriteByte(' ')
	}
	return b.String()
}

// Body returns everything after the separator line of a note's content, or
// the content after the title when the separator is missing.
func Body(content string) string {
	_, rest, found := strings.Cut(content, "\n")
	if !found {
		return ""
	}
	line, after, _ := strings.Cut(rest, "\n")
	if strings.TrimRight(line, "\r") == Separator {
		return after
	}
	return rest
}
