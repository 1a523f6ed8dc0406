package md2slides

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// blockParser turns preprocessed Markdown into the flat block stream the
// pagination engine consumes. Only top-level AST nodes become blocks; nested
// structure stays inside each block's raw span.
type blockParser struct {
	md goldmark.Markdown
}

// newBlockParser creates a parser with the GFM extensions enabled so tables
// and task lists classify correctly.
func newBlockParser() *blockParser {
	return &blockParser{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM, // Tables, strikethrough, autolinks, task lists
			),
		),
	}
}

// Parse converts Markdown content into an ordered block stream. The content
// must already be preprocessed (math protected, line endings normalized).
func (p *blockParser) Parse(content string) []Block {
	src := []byte(content)
	doc := p.md.Parser().Parse(text.NewReader(src))

	var blocks []Block
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if b, ok := classify(n, src); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// classify maps one top-level AST node to a Block.
func classify(n ast.Node, src []byte) (Block, bool) {
	switch node := n.(type) {
	case *ast.Heading:
		raw := rawSpan(n, src)
		if raw == "" {
			raw = strings.Repeat("#", node.Level) + " "
		}
		return newBlock(KindHeading, node.Level, raw), true

	case *ast.FencedCodeBlock:
		return newBlock(KindCode, 0, fencedCodeSpan(node, src)), true

	case *ast.CodeBlock:
		return newBlock(KindCode, 0, rawSpan(n, src)), true

	case *extast.Table:
		return newBlock(KindTable, 0, rawSpan(n, src)), true

	case *ast.Blockquote:
		return newBlock(KindBlockquote, 0, rawSpan(n, src)), true

	case *ast.List:
		return newBlock(KindList, 0, rawSpan(n, src)), true

	case *ast.ThematicBreak:
		return newBlock(KindRule, 0, "---"), true

	case *ast.HTMLBlock:
		return newBlock(KindRawHTML, 0, rawSpan(n, src)), true

	case *ast.Paragraph:
		raw := rawSpan(n, src)
		if containsDisplayMath(raw) {
			return newBlock(KindMathBlock, 0, raw), true
		}
		if isImageOnly(node, src) {
			return newBlock(KindImage, 0, raw), true
		}
		return newBlock(KindParagraph, 0, raw), true

	default:
		raw := rawSpan(n, src)
		if raw == "" {
			return Block{}, false
		}
		return newBlock(KindParagraph, 0, raw), true
	}
}

// fencedCodeSpan rebuilds a fenced code block with its fences, which sit
// outside the AST node's line segments.
func fencedCodeSpan(node *ast.FencedCodeBlock, src []byte) string {
	var sb strings.Builder
	sb.WriteString("```")
	if lang := node.Language(src); lang != nil {
		sb.Write(lang)
	}
	sb.WriteByte('\n')
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	sb.WriteString("```")
	return sb.String()
}

// rawSpan recovers the raw Markdown covered by a node. Segment offsets are
// widened to whole source lines so structural prefixes ("## ", "> ", list
// markers) the parser consumed are preserved.
func rawSpan(n ast.Node, src []byte) string {
	start, stop, ok := segmentBounds(n)
	if !ok {
		return ""
	}
	start, stop = expandToLines(src, start, stop)
	return strings.TrimRight(string(src[start:stop]), "\n")
}

// segmentBounds finds the min/max source offsets across a node and its
// descendants.
func segmentBounds(n ast.Node) (start, stop int, ok bool) {
	start, stop = -1, -1

	var visit func(ast.Node)
	visit = func(node ast.Node) {
		if node.Type() == ast.TypeBlock {
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				if start == -1 || seg.Start < start {
					start = seg.Start
				}
				if seg.Stop > stop {
					stop = seg.Stop
				}
			}
		}
		if t, isText := node.(*ast.Text); isText {
			if start == -1 || t.Segment.Start < start {
				start = t.Segment.Start
			}
			if t.Segment.Stop > stop {
				stop = t.Segment.Stop
			}
		}
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			visit(c)
		}
	}
	visit(n)

	return start, stop, start != -1
}

// expandToLines widens [start, stop) to full-line boundaries in src.
func expandToLines(src []byte, start, stop int) (int, int) {
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	for stop < len(src) && src[stop] != '\n' {
		stop++
	}
	return start, stop
}

// isImageOnly reports whether a paragraph consists solely of images and
// whitespace, in which case it renders as a standalone figure.
func isImageOnly(p *ast.Paragraph, src []byte) bool {
	hasImage := false
	for c := p.FirstChild(); c != nil; c = c.NextSibling() {
		switch child := c.(type) {
		case *ast.Image:
			hasImage = true
		case *ast.Text:
			if len(strings.TrimSpace(string(child.Segment.Value(src)))) > 0 {
				return false
			}
		default:
			return false
		}
	}
	return hasImage
}
