package md2slides

import "strings"

// BlockKind identifies the semantic type of a content block.
type BlockKind int

// Block kinds produced by the Markdown frontend.
const (
	KindHeading BlockKind = iota
	KindParagraph
	KindList
	KindCode
	KindTable
	KindBlockquote
	KindMathBlock
	KindImage
	KindRule
	KindRawHTML
)

// String returns the kind name for diagnostics.
func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	case KindCode:
		return "code"
	case KindTable:
		return "table"
	case KindBlockquote:
		return "blockquote"
	case KindMathBlock:
		return "math-block"
	case KindImage:
		return "image"
	case KindRule:
		return "rule"
	case KindRawHTML:
		return "raw-html"
	default:
		return "unknown"
	}
}

// Block is one semantic unit of document content. Blocks are immutable once
// constructed; the pagination engine moves them between pages but never
// rewrites Text.
type Block struct {
	Kind   BlockKind
	Level  int    // heading depth 1-6, only meaningful for KindHeading
	Text   string // raw markdown span, opaque beyond measurement
	Weight int    // estimated vertical cost in viewport pixels
	Atomic bool   // must never be split across pages
}

// Per-kind height estimates, mirroring the slide CSS proportions.
// Weights approximate rendered pixels so that the page weight budget can
// derive directly from viewport height.
const (
	headingH1Weight   = 120
	headingH2Weight   = 100
	headingH3Weight   = 80
	headingH4Weight   = 70
	headingMinWeight  = 60
	codeLineWeight    = 20
	codePadding       = 40
	tableRowWeight    = 40
	tableHeaderWeight = 50
	imageWeight       = 300
	listItemWeight    = 32
	textLineWeight    = 24
	paragraphMargin   = 12
	blockquotePadding = 36
	ruleWeight        = 36
	defaultWeight     = 40
	mathLineWeight    = 30

	paragraphLineChars  = 80
	blockquoteLineChars = 70
)

// newBlock constructs a Block with its weight and atomicity derived from kind
// and content. All frontend paths funnel through here so measurement stays
// consistent.
func newBlock(kind BlockKind, level int, text string) Block {
	return Block{
		Kind:   kind,
		Level:  level,
		Text:   text,
		Weight: estimateWeight(kind, level, text),
		Atomic: isAtomicKind(kind),
	}
}

// isAtomicKind reports whether blocks of this kind may never be fragmented.
func isAtomicKind(kind BlockKind) bool {
	switch kind {
	case KindCode, KindTable, KindBlockquote, KindMathBlock, KindImage:
		return true
	}
	return false
}

// estimateWeight estimates the rendered height of a block in pixels.
// Code, tables, and math count per line/row; prose counts wrapped lines.
func estimateWeight(kind BlockKind, level int, text string) int {
	switch kind {
	case KindHeading:
		return headingWeight(level)
	case KindCode:
		return lineCount(text)*codeLineWeight + codePadding
	case KindTable:
		return lineCount(text)*tableRowWeight + tableHeaderWeight
	case KindMathBlock:
		return lineCount(text)*mathLineWeight + codePadding
	case KindImage:
		return imageWeight
	case KindList:
		return listItemCount(text) * listItemWeight
	case KindParagraph:
		return wrappedLines(text, paragraphLineChars)*textLineWeight + paragraphMargin
	case KindBlockquote:
		return wrappedLines(text, blockquoteLineChars)*textLineWeight + blockquotePadding
	case KindRule:
		return ruleWeight
	default:
		return defaultWeight
	}
}

// headingWeight returns the estimated height of a heading by depth.
func headingWeight(level int) int {
	switch level {
	case 1:
		return headingH1Weight
	case 2:
		return headingH2Weight
	case 3:
		return headingH3Weight
	case 4:
		return headingH4Weight
	default:
		return headingMinWeight
	}
}

// lineCount counts physical lines in a block's raw text.
func lineCount(text string) int {
	if text == "" {
		return 1
	}
	return strings.Count(strings.TrimRight(text, "\n"), "\n") + 1
}

// wrappedLines estimates how many display lines a prose block occupies,
// assuming perChars characters fit on one line.
func wrappedLines(text string, perChars int) int {
	n := len(text) / perChars
	if n < 1 {
		n = 1
	}
	return n
}

// listItemCount counts item lines in a list block.
func listItemCount(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "- ") ||
			strings.HasPrefix(trimmed, "* ") ||
			strings.HasPrefix(trimmed, "+ ") ||
			startsWithOrderedMarker(trimmed) {
			count++
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}

// startsWithOrderedMarker reports whether a line begins with a "1." or "1)"
// style ordered-list marker.
func startsWithOrderedMarker(s string) bool {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')')
}
