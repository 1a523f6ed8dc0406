package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across runs.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// deckFlags holds presentation appearance flags.
type deckFlags struct {
	theme           string
	title           string
	footer          string
	css             string
	math            string
	showPageNumbers bool
	noChapterNav    bool
}

// layoutFlags holds pagination tuning flags. Zero means "use default".
type layoutFlags struct {
	splitLevel       int
	chapterLevel     int
	maxElements      int
	viewportHeight   int
	contentThreshold float64
}

// imageFlags holds image handling flags.
type imageFlags struct {
	preservePaths bool
}

// outputFlags holds output destination flags.
type outputFlags struct {
	output    string
	pdf       bool
	timeout   string
	assetPath string
}

// convertFlags holds all CLI flags.
type convertFlags struct {
	common  commonFlags
	deck    deckFlags
	layout  layoutFlags
	images  imageFlags
	output  outputFlags
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addDeckFlags adds presentation appearance flags to a FlagSet.
func addDeckFlags(fs *flag.FlagSet, f *deckFlags) {
	fs.StringVarP(&f.theme, "theme", "t", "", "theme: tech/cyberpunk, clean/fresh, corporate")
	fs.StringVar(&f.title, "title", "", "deck title (\"\" = auto from first H1)")
	fs.StringVar(&f.footer, "footer", "", "footer text shown on every slide")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the theme")
	fs.StringVar(&f.math, "math", "", "math rendering: katex, mathml")
	fs.BoolVar(&f.showPageNumbers, "show-page-numbers", false, "add (i/n) to split slide titles")
	fs.BoolVar(&f.noChapterNav, "no-chapter-nav", false, "disable chapter navigation bar and TOC")
}

// addLayoutFlags adds pagination flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.IntVar(&f.splitLevel, "split-level", 0, "heading level that starts a new slide (1-6, default: 2)")
	fs.IntVar(&f.chapterLevel, "chapter-level", 0, "max heading level in chapter nav (1-6, default: 2)")
	fs.IntVar(&f.maxElements, "max-elements", 0, "max blocks per slide (default: 15)")
	fs.IntVar(&f.viewportHeight, "viewport-height", 0, "assumed viewport height in px (default: 900)")
	fs.Float64Var(&f.contentThreshold, "content-threshold", 0, "usable viewport fraction (default: 0.8)")
}

// addImageFlags adds image handling flags to a FlagSet.
func addImageFlags(fs *flag.FlagSet, f *imageFlags) {
	fs.BoolVar(&f.preservePaths, "preserve-image-paths", false, "keep image paths as written, never copy")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output base directory (default: markdown file's directory)")
	fs.BoolVar(&f.pdf, "pdf", false, "also print the deck to PDF (needs Chrome)")
	fs.StringVar(&f.timeout, "timeout", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory for themes and templates")
}

// parseFlags parses CLI flags and returns the positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("md2slides", flag.ContinueOnError)
	f := &convertFlags{}

	fs.BoolVar(&f.version, "version", false, "show version information")

	addCommonFlags(fs, &f.common)
	addDeckFlags(fs, &f.deck)
	addLayoutFlags(fs, &f.layout)
	addImageFlags(fs, &f.images)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
