package md2slides

import "fmt"

// applyPageNumbers decorates split pages with a "(i/n)" title suffix.
// Pure pass: when disabled nothing is touched, and OriginalTitle is never
// mutated either way.
func applyPageNumbers(pages []Page, enabled bool) []Page {
	if !enabled {
		return pages
	}
	out := make([]Page, len(pages))
	copy(out, pages)
	for i := range out {
		if out[i].TotalPagesInGroup > 1 && out[i].Title != "" {
			out[i].Title = fmt.Sprintf("%s (%d/%d)",
				out[i].OriginalTitle, out[i].PageIndex, out[i].TotalPagesInGroup)
		}
	}
	return out
}
