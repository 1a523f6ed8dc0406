package md2slides

import "fmt"

// Page is one renderable unit after packing. A page is either a whole slide
// group or one ordered fragment of a split group.
type Page struct {
	Title             string
	OriginalTitle     string
	HeadingLevel      int
	Blocks            []Block
	GroupID           int // index of the originating SlideGroup
	PageIndex         int // 1-based position within the group
	TotalPagesInGroup int
	TitleSlide        bool
}

// Warning reports a tolerated bound violation: a single block whose weight
// alone exceeds the configured limit. The block is placed whole rather than
// fragmented.
type Warning struct {
	GroupID    int
	GroupTitle string
	Kind       BlockKind
	Weight     int
	MaxWeight  int
}

// String formats the warning for diagnostics output.
func (w Warning) String() string {
	title := w.GroupTitle
	if title == "" {
		title = "(untitled)"
	}
	return fmt.Sprintf("%s block in %q weighs %d, exceeds page budget %d",
		w.Kind, title, w.Weight, w.MaxWeight)
}

// packLimits bounds a single page.
type packLimits struct {
	maxWeight   int
	maxElements int
}

// packGroups runs the packer over every slide group in document order and
// returns the final page sequence. Limits must be validated by the caller;
// the packer itself is total over well-formed input.
func packGroups(groups []SlideGroup, limits packLimits) ([]Page, []Warning) {
	var pages []Page
	var warnings []Warning

	for id, g := range groups {
		split, warns := packGroup(g, id, limits)
		pages = append(pages, split...)
		warnings = append(warnings, warns...)
	}
	return pages, warnings
}

// packGroup partitions one group's blocks into pages using a greedy forward
// bin-fill. Atomic blocks are never fragmented: when a block does not fit on
// a non-empty page, the page closes and the block opens the next one. Pages
// are never reopened once closed.
func packGroup(g SlideGroup, id int, limits packLimits) ([]Page, []Warning) {
	// Title slides render standalone and are never repacked.
	if g.TitleSlide {
		return []Page{{
			Title:             g.Title,
			OriginalTitle:     g.Title,
			HeadingLevel:      g.HeadingLevel,
			Blocks:            g.Blocks,
			GroupID:           id,
			PageIndex:         1,
			TotalPagesInGroup: 1,
			TitleSlide:        true,
		}}, nil
	}

	var chunks [][]Block
	var current []Block
	var warnings []Warning
	weight, elements := 0, 0

	for _, b := range g.Blocks {
		overflows := weight+b.Weight > limits.maxWeight ||
			elements+1 > limits.maxElements
		if overflows && len(current) > 0 {
			chunks = append(chunks, current)
			current = nil
			weight, elements = 0, 0
		}
		if b.Weight > limits.maxWeight {
			// Tolerated overflow: the block is placed whole. Fragmenting
			// would corrupt code, tables, or math formatting.
			warnings = append(warnings, Warning{
				GroupID:    id,
				GroupTitle: g.Title,
				Kind:       b.Kind,
				Weight:     b.Weight,
				MaxWeight:  limits.maxWeight,
			})
		}
		current = append(current, b)
		weight += b.Weight
		elements++
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}

	// A group with no blocks still yields one page with an empty body.
	if len(chunks) == 0 {
		chunks = [][]Block{nil}
	}

	total := len(chunks)
	pages := make([]Page, 0, total)
	for i, blocks := range chunks {
		pages = append(pages, Page{
			Title:             g.Title,
			OriginalTitle:     g.Title,
			HeadingLevel:      g.HeadingLevel,
			Blocks:            blocks,
			GroupID:           id,
			PageIndex:         i + 1,
			TotalPagesInGroup: total,
		})
	}
	return pages, warnings
}
