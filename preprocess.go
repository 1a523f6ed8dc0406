package md2slides

import (
	"regexp"
	"strings"
)

// Math placeholders use Unicode Private Use Area characters. They pass
// through Goldmark untouched, so LaTeX notation survives HTML conversion
// without escaping and is restored afterwards for the math renderer.
const (
	mathDisplayStart = "" // U+E000: display math open
	mathDisplayEnd   = ""
	mathInlineStart  = ""
	mathInlineEnd    = ""
)

// Precompiled patterns, applied once per conversion.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress runs of blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Display math $$...$$, possibly spanning lines
	displayMathPattern = regexp.MustCompile(`(?s)\$\$(.*?)\$\$`)

	// Inline math $...$ with no $ or newline inside
	inlineMathPattern = regexp.MustCompile(`\$([^$\n]+?)\$`)
)

// preprocessMarkdown prepares raw Markdown for parsing: line normalization,
// blank-line compression, and math protection. Display math runs first so
// its inner $ pairs are not mistaken for inline math.
func preprocessMarkdown(content string) string {
	content = normalizeLineEndings(content)
	content = compressBlankLines(content)
	content = protectMath(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// protectMath replaces $$...$$ and $...$ notation with placeholder markers.
func protectMath(content string) string {
	content = displayMathPattern.ReplaceAllString(content, mathDisplayStart+"$1"+mathDisplayEnd)
	content = inlineMathPattern.ReplaceAllString(content, mathInlineStart+"$1"+mathInlineEnd)
	return content
}

// restoreMathDelimiters converts placeholder markers back to $ delimiters.
// Called after Goldmark HTML conversion so client-side KaTeX sees the
// original notation.
func restoreMathDelimiters(content string) string {
	r := strings.NewReplacer(
		mathDisplayStart, "$$",
		mathDisplayEnd, "$$",
		mathInlineStart, "$",
		mathInlineEnd, "$",
	)
	return r.Replace(content)
}

// containsDisplayMath reports whether a raw span is exactly one protected
// display math block, ignoring surrounding whitespace.
func containsDisplayMath(text string) bool {
	s := strings.TrimSpace(text)
	return strings.HasPrefix(s, mathDisplayStart) && strings.HasSuffix(s, mathDisplayEnd)
}
