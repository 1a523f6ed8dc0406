package md2slides

import (
	"context"
	"fmt"

	"github.com/halden/go-md2slides/internal/assets"
	"github.com/halden/go-md2slides/internal/hints"
)

// FallbackTitle is used when neither the input nor the document provide one.
const FallbackTitle = "Presentation"

// Service orchestrates the markdown-to-presentation pipeline:
// preprocessing, block parsing, sectioning, packing, numbering, outline
// construction and final HTML rendering, with optional PDF export.
type Service struct {
	cfg      serviceConfig
	parser   *blockParser
	renderer *deckRenderer
	loader   assets.AssetLoader
	pdf      pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:    serviceConfig{timeout: defaultTimeout},
		parser: newBlockParser(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdf == nil {
		s.pdf = newRodConverter(s.cfg.timeout)
	}

	return s
}

// WithAssetLoader overrides where themes and templates come from.
// Used to serve custom asset directories; nil keeps the embedded set.
func WithAssetLoader(l assets.AssetLoader) Option {
	return func(s *Service) {
		s.loader = l
	}
}

// Convert runs the full pipeline and returns the rendered deck.
// The context is used for cancellation and timeout.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	opts := input.Options
	if opts == nil {
		opts = DefaultOptions()
	}

	md := preprocessMarkdown(input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	blocks := s.parser.Parse(md)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	groups := splitSections(blocks, opts.SplitLevel)
	pages, warnings := packGroups(groups, opts.limits())
	pages = applyPageNumbers(pages, opts.ShowPageNumbers)

	chapters := buildChapters(pages, opts.ChapterLevel)
	outline := buildOutline(pages)

	title := resolveTitle(input.Title, blocks)

	theme, themeCSS, err := s.loadTheme(input.Theme)
	if err != nil {
		return nil, err
	}

	if err := s.ensureRenderer(); err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(ctx, deckSpec{
		Title:      title,
		Theme:      theme,
		ThemeCSS:   themeCSS,
		ExtraCSS:   input.CSS,
		Footer:     input.Footer,
		MathMode:   input.MathMode,
		ChapterNav: !input.DisableChapterNav,
		Pages:      pages,
		Chapters:   chapters,
		Outline:    outline,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering deck: %w", err)
	}

	rm := newResourceManager(input.SourceDir, input.AssetsDir, input.OutputDir, input.PreserveImagePaths)
	html = rm.ProcessHTML(html)

	result := &Result{
		HTML:     html,
		Title:    title,
		Pages:    pages,
		Chapters: chapters,
		Outline:  outline,
		Warnings: warnings,
	}

	if input.RenderPDF {
		pdf, err := s.pdf.ToPDF(ctx, html)
		if err != nil {
			return nil, fmt.Errorf("printing deck to PDF: %w", err)
		}
		result.PDF = pdf
	}

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}

// ensureRenderer lazily builds the deck renderer so template loading errors
// surface per conversion instead of at construction.
func (s *Service) ensureRenderer() error {
	if s.renderer != nil {
		return nil
	}
	r, err := newDeckRenderer(s.loader)
	if err != nil {
		return err
	}
	s.renderer = r
	return nil
}

// loadTheme resolves the requested theme name and loads its stylesheet.
// Unknown names reach the loader as-is, so a custom loader can serve themes
// beyond the built-in set.
func (s *Service) loadTheme(name string) (string, string, error) {
	theme := resolveTheme(name)

	var css string
	var err error
	if s.loader != nil {
		css, err = s.loader.LoadTheme(theme)
	} else {
		css, err = assets.LoadTheme(theme)
	}
	if err != nil {
		return "", "", fmt.Errorf("loading theme: %w%s", err, hints.ForThemeNotFound(s.themes()))
	}
	return theme, css, nil
}

// themes lists available theme names for error hints.
func (s *Service) themes() []string {
	if s.loader != nil {
		return s.loader.Themes()
	}
	return assets.Themes()
}

// resolveTitle picks the deck title: explicit input wins, then the first H1
// in the document, then the fallback.
func resolveTitle(explicit string, blocks []Block) string {
	if explicit != "" {
		return explicit
	}
	for _, b := range blocks {
		if b.Kind == KindHeading && b.Level == 1 {
			return headingText(b.Text)
		}
	}
	return FallbackTitle
}
