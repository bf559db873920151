package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const extensions = parser.CommonExtensions | parser.AutoHeadingIDs

// RenderHTML converts a Markdown document to HTML with tables enabled.
func RenderHTML(text string) string {
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(text))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return string(markdown.Render(doc, renderer))
}

// StripMarkdown removes all markdown formatting from text and returns plain text
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	doc := parser.NewWithExtensions(extensions).Parse([]byte(text))

	var buf bytes.Buffer
	extractText(doc, &buf)

	result := strings.TrimSpace(buf.String())
	for strings.Contains(result, "\n\n\n") {
		result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	}
	return result
}

// extractText walks the AST and extracts text content
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return
	case *ast.Code:
		buf.Write(n.Literal)
		return
	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return
	case *ast.Hardbreak:
		buf.WriteString("\n")
		return
	case *ast.Softbreak:
		buf.WriteString(" ")
		return
	case *ast.HTMLBlock, *ast.HTMLSpan, *ast.HorizontalRule:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	if _, ok := node.(*ast.ListItem); ok {
		buf.WriteString("• ")
	}

	for _, child := range container.Children {
		extractText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph, *ast.Heading:
		buf.WriteString("\n\n")
	case *ast.List, *ast.BlockQuote, *ast.TableRow:
		buf.WriteString("\n")
	case *ast.TableCell:
		buf.WriteString(" ")
	case *ast.Table:
		buf.WriteString("\n")
	}
}
