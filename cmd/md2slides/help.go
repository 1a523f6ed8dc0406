package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2slides <input.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown document into a paginated HTML presentation.")
	fmt.Fprintln(w, "Output goes to a timestamped directory next to the input file")
	fmt.Fprintln(w, "(or under --output) containing presentation.html and its assets.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>          Output base directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "      --pdf                   Also print the deck to PDF (needs Chrome)")
	fmt.Fprintln(w, "      --timeout <dur>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Appearance:")
	fmt.Fprintln(w, "  -t, --theme <name>          Theme: tech/cyberpunk, clean/fresh, corporate")
	fmt.Fprintln(w, "      --title <s>             Deck title (\"\" = auto from first H1)")
	fmt.Fprintln(w, "      --footer <s>            Footer text shown on every slide")
	fmt.Fprintln(w, "      --css <path>            Extra CSS file appended after the theme")
	fmt.Fprintln(w, "      --math <mode>           Math rendering: katex (default), mathml")
	fmt.Fprintln(w, "      --show-page-numbers     Add (i/n) to split slide titles")
	fmt.Fprintln(w, "      --no-chapter-nav        Disable chapter navigation bar and TOC")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pagination:")
	fmt.Fprintln(w, "      --split-level <n>       Heading level that starts a new slide (1-6, default: 2)")
	fmt.Fprintln(w, "      --chapter-level <n>     Max heading level in chapter nav (1-6, default: 2)")
	fmt.Fprintln(w, "      --max-elements <n>      Max blocks per slide (default: 15)")
	fmt.Fprintln(w, "      --viewport-height <n>   Assumed viewport height in px (default: 900)")
	fmt.Fprintln(w, "      --content-threshold <f> Usable viewport fraction (default: 0.8)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Images:")
	fmt.Fprintln(w, "      --preserve-image-paths  Keep image paths as written, never copy")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --asset-path <dir>      Custom asset directory for themes and templates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed progress")
	fmt.Fprintln(w, "      --version               Show version information")
}
