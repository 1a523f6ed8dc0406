package md2slides

// Chapter is one coarse navigation entry for the progress-bar widget.
// A slide group that was split into several pages contributes exactly one
// chapter, anchored at its first page.
type Chapter struct {
	Title          string
	HeadingLevel   int
	FirstPageIndex int // absolute 0-based index into the page sequence
}

// OutlineNode is one entry of the full table of contents. Children nest by
// strict heading-level containment across the whole document.
type OutlineNode struct {
	Title     string
	Level     int
	PageIndex int // absolute 0-based index of the page holding the heading
	Children  []*OutlineNode
}

// outlineMaxLevel is the deepest heading level included in the full TOC.
// Wider than the chapter window so the panel can jump into sub-sections.
const outlineMaxLevel = 5

// buildChapters derives the chapter list from the final page sequence.
// Only first pages of each group are scanned, so split pages never duplicate
// entries, and a group without its own qualifying heading merges into the
// preceding chapter. Consecutive identical (title, level) pairs collapse to
// one entry.
func buildChapters(pages []Page, chapterLevel int) []Chapter {
	var chapters []Chapter

	for i, p := range pages {
		if p.PageIndex != 1 || p.TitleSlide {
			continue
		}
		for _, b := range p.Blocks {
			if b.Kind != KindHeading || b.Level > chapterLevel {
				continue
			}
			title := headingText(b.Text)
			if n := len(chapters); n > 0 &&
				chapters[n-1].Title == title &&
				chapters[n-1].HeadingLevel == b.Level {
				continue
			}
			chapters = append(chapters, Chapter{
				Title:          title,
				HeadingLevel:   b.Level,
				FirstPageIndex: i,
			})
		}
	}
	return chapters
}

// buildOutline derives the full TOC tree from the final page sequence.
// Every heading block up to outlineMaxLevel becomes a node; nesting follows
// the nearest preceding shallower heading. Headings on split sub-pages keep
// their precise page index so navigation can jump mid-group.
func buildOutline(pages []Page) []*OutlineNode {
	root := &OutlineNode{Level: 0}
	stack := []*OutlineNode{root}

	for i, p := range pages {
		if p.TitleSlide {
			continue
		}
		for _, b := range p.Blocks {
			if b.Kind != KindHeading || b.Level > outlineMaxLevel {
				continue
			}
			node := &OutlineNode{
				Title:     headingText(b.Text),
				Level:     b.Level,
				PageIndex: i,
			}
			for len(stack) > 1 && stack[len(stack)-1].Level >= b.Level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
			stack = append(stack, node)
		}
	}
	return root.Children
}

// flattenOutline walks the tree depth-first for renderers that need a flat,
// indented list.
func flattenOutline(nodes []*OutlineNode) []*OutlineNode {
	var flat []*OutlineNode
	for _, n := range nodes {
		flat = append(flat, n)
		flat = append(flat, flattenOutline(n.Children)...)
	}
	return flat
}
