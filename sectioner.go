package md2slides

import "strings"

// SlideGroup is the contiguous run of blocks between one heading at or above
// the split level and the next. Groups are the unit of pagination: each group
// becomes one or more pages, independent of every other group.
type SlideGroup struct {
	Title        string
	HeadingLevel int // 0 for the implicit leading group
	Blocks       []Block
	TitleSlide   bool // first H1 group when splitting below H1; never repacked
}

// splitSections partitions an ordered block stream into slide groups.
// Every heading with level <= splitLevel starts a new group; deeper headings
// stay in the current group's body. Blocks before the first qualifying
// heading form an implicit untitled group. An empty stream yields no groups.
// Single linear pass, no look-ahead.
func splitSections(blocks []Block, splitLevel int) []SlideGroup {
	var groups []SlideGroup
	var current *SlideGroup
	seenHeading := false

	for _, b := range blocks {
		if b.Kind == KindHeading && b.Level <= splitLevel {
			if current != nil {
				groups = append(groups, *current)
			}
			current = &SlideGroup{
				Title:        headingText(b.Text),
				HeadingLevel: b.Level,
				Blocks:       []Block{b},
			}
			// The document's opening H1 renders as a standalone title
			// slide unless H1 is itself the split boundary.
			if !seenHeading && b.Level == 1 && splitLevel > 1 {
				current.TitleSlide = true
			}
			seenHeading = true
			continue
		}
		if current == nil {
			current = &SlideGroup{}
		}
		current.Blocks = append(current.Blocks, b)
	}

	if current != nil {
		groups = append(groups, *current)
	}
	return groups
}

// headingText strips ATX markers from a raw heading span, leaving the
// display title.
func headingText(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimLeft(s, "#")
	s = strings.TrimSpace(s)
	// Closed ATX form: "## Title ##". The closing run only counts when
	// whitespace precedes it, so titles like "C#" keep their hash.
	trimmed := strings.TrimRight(s, "#")
	if trimmed != s && (trimmed == "" || strings.HasSuffix(trimmed, " ") || strings.HasSuffix(trimmed, "\t")) {
		s = trimmed
	}
	return strings.TrimSpace(s)
}
