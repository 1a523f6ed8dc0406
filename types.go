package md2slides

import (
	"fmt"
	"time"
)

// Math rendering mode constants.
const (
	MathKaTeX  = "katex"  // client-side KaTeX via CDN (default)
	MathMathML = "mathml" // server-side MathML, no external scripts
)

// Pagination defaults matching a 900px viewport filled to 80%.
const (
	DefaultSplitLevel       = 2
	DefaultChapterLevel     = 2
	DefaultViewportHeight   = 900
	DefaultContentThreshold = 0.8
	DefaultMaxElements      = 15
)

// Options configures the pagination engine.
type Options struct {
	SplitLevel       int     // heading level that starts a new slide (1-6)
	ChapterLevel     int     // heading level window for chapter navigation (1-6)
	ViewportHeight   int     // slide viewport height in pixels
	ContentThreshold float64 // usable fraction of the viewport, (0, 1]
	MaxElements      int     // element-count ceiling per slide
	ShowPageNumbers  bool    // "(i/n)" suffixes on split slide titles
}

// DefaultOptions returns pagination options with default values.
func DefaultOptions() *Options {
	return &Options{
		SplitLevel:       DefaultSplitLevel,
		ChapterLevel:     DefaultChapterLevel,
		ViewportHeight:   DefaultViewportHeight,
		ContentThreshold: DefaultContentThreshold,
		MaxElements:      DefaultMaxElements,
	}
}

// Validate checks that pagination options are well-formed. Out-of-range
// values are rejected, never clamped. Returns nil if o is nil (nil means
// use defaults).
func (o *Options) Validate() error {
	if o == nil {
		return nil
	}
	if o.SplitLevel < 1 || o.SplitLevel > 6 {
		return fmt.Errorf("%w: %d (must be 1-6)", ErrInvalidSplitLevel, o.SplitLevel)
	}
	if o.ChapterLevel < 1 || o.ChapterLevel > 6 {
		return fmt.Errorf("%w: %d (must be 1-6)", ErrInvalidChapterLevel, o.ChapterLevel)
	}
	if o.ViewportHeight <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidViewportHeight, o.ViewportHeight)
	}
	if o.ContentThreshold <= 0 || o.ContentThreshold > 1 {
		return fmt.Errorf("%w: %.2f (must be in (0, 1])", ErrInvalidContentThreshold, o.ContentThreshold)
	}
	if o.MaxElements <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidMaxElements, o.MaxElements)
	}
	return nil
}

// maxWeight derives the per-page weight budget from the viewport.
func (o *Options) maxWeight() int {
	return int(float64(o.ViewportHeight) * o.ContentThreshold)
}

// limits returns the packer bounds for these options.
func (o *Options) limits() packLimits {
	return packLimits{maxWeight: o.maxWeight(), maxElements: o.MaxElements}
}

// Input contains conversion parameters for one deck.
type Input struct {
	Markdown           string   // Markdown content (required)
	Title              string   // deck title (optional, auto from first H1)
	Theme              string   // theme name (optional, default "tech")
	Footer             string   // footer text on every slide (optional)
	CSS                string   // extra CSS appended after the theme (optional)
	MathMode           string   // "katex" or "mathml" (optional, default katex)
	DisableChapterNav  bool     // omit progress-bar chapter navigation
	Options            *Options // pagination options (nil = defaults)
	SourceDir          string   // directory for resolving relative image paths
	AssetsDir          string   // destination for copied images (empty = no copy)
	OutputDir          string   // directory the HTML document is written to; copied image srcs are rewritten relative to it
	PreserveImagePaths bool     // keep image paths as written, never copy
	RenderPDF          bool     // also print the deck to PDF (needs Chrome)
}

// validate checks required fields and value ranges.
func (in Input) validate() error {
	if in.Markdown == "" {
		return ErrEmptyMarkdown
	}
	switch in.MathMode {
	case "", MathKaTeX, MathMathML:
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidMathMode, in.MathMode, MathKaTeX, MathMathML)
	}
	return in.Options.Validate()
}

// Result is the output of one conversion.
type Result struct {
	HTML     string         // self-contained presentation document
	PDF      []byte         // nil unless Input.RenderPDF
	Title    string         // resolved deck title
	Pages    []Page         // final page sequence
	Chapters []Chapter      // coarse navigation entries
	Outline  []*OutlineNode // full TOC tree
	Warnings []Warning      // tolerated pagination overflows
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout bounds PDF export; HTML rendering needs no browser.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF export timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2slides: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}
