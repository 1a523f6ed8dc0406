package md2slides

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	treeblood "github.com/wyatt915/goldmark-treeblood"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/halden/go-md2slides/internal/assets"
)

// themeAliases maps accepted theme names to canonical stylesheet names.
var themeAliases = map[string]string{
	"tech":      "tech",
	"cyberpunk": "tech",
	"clean":     "clean",
	"fresh":     "clean",
	"corporate": "corporate",
}

// DefaultTheme is used when no theme is requested.
const DefaultTheme = "tech"

// resolveTheme maps a requested theme name through the alias table. Names
// outside the table pass through unchanged so custom asset loaders can serve
// their own stylesheets. Empty input resolves to the default theme.
func resolveTheme(name string) string {
	if name == "" {
		return DefaultTheme
	}
	if actual, ok := themeAliases[strings.ToLower(name)]; ok {
		return actual
	}
	return name
}

// deckSpec carries everything the renderer needs to produce one document.
// The theme CSS arrives already loaded so the renderer stays independent of
// asset resolution.
type deckSpec struct {
	Title      string
	Theme      string // canonical theme name
	ThemeCSS   string
	ExtraCSS   string
	Footer     string
	MathMode   string
	ChapterNav bool
	Pages      []Page
	Chapters   []Chapter
	Outline    []*OutlineNode
}

// Template view models, one per region of deck.html.
type deckView struct {
	Title       string
	KaTeX       bool
	TechEffects bool
	ThemeCSS    template.CSS
	ExtraCSS    template.CSS
	Footer      string
	TotalSlides int
	Slides      []slideView
	Chapters    []chapterView
	Outline     []outlineView
}

type slideView struct {
	Number  int
	Classes string
	Chapter string
	Content template.HTML
}

type chapterView struct {
	Display string
	Level   int
	Slide   int
}

type outlineView struct {
	Title string
	Level int
	Slide int
}

// deckRenderer converts packed pages into a self-contained HTML presentation.
// It holds two goldmark instances: the default one leaves math placeholders
// for client-side KaTeX, the other renders LaTeX to MathML server-side.
type deckRenderer struct {
	md     goldmark.Markdown
	mathMD goldmark.Markdown
	tmpl   *template.Template
}

// newDeckRenderer builds a renderer with GFM extensions and syntax
// highlighting via CSS classes (styles ship in the theme stylesheets).
// A nil loader falls back to the embedded assets.
func newDeckRenderer(loader assets.AssetLoader) (*deckRenderer, error) {
	baseOpts := []goldmark.Option{
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	}

	md := goldmark.New(append(baseOpts,
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
	)...)

	mathMD := goldmark.New(append(baseOpts,
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
			treeblood.MathML(),
		),
	)...)

	var text string
	var err error
	if loader != nil {
		text, err = loader.LoadTemplate("deck")
	} else {
		text, err = assets.LoadTemplate("deck")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	tmpl, err := template.New("deck").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	return &deckRenderer{md: md, mathMD: mathMD, tmpl: tmpl}, nil
}

// Render produces the final HTML document. Supports context cancellation via
// goroutine + select since goldmark and html/template don't take contexts.
func (r *deckRenderer) Render(ctx context.Context, spec deckSpec) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		html, err := r.render(spec)
		done <- result{html: html, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

func (r *deckRenderer) render(spec deckSpec) (string, error) {
	view := deckView{
		Title:       spec.Title,
		KaTeX:       spec.MathMode != MathMathML,
		TechEffects: spec.Theme == "tech",
		ThemeCSS:    template.CSS(spec.ThemeCSS),
		ExtraCSS:    template.CSS(spec.ExtraCSS),
		Footer:      spec.Footer,
		TotalSlides: len(spec.Pages),
	}

	for i, p := range spec.Pages {
		content, err := r.pageHTML(p, spec.MathMode)
		if err != nil {
			return "", err
		}
		classes := "slide"
		if p.TitleSlide {
			classes += " title-slide"
		}
		if i == 0 {
			classes += " active"
		}
		view.Slides = append(view.Slides, slideView{
			Number:  i + 1,
			Classes: classes,
			Chapter: p.OriginalTitle,
			Content: content,
		})
	}

	if spec.ChapterNav {
		for _, c := range spec.Chapters {
			view.Chapters = append(view.Chapters, chapterView{
				Display: truncateTitle(c.Title),
				Level:   c.HeadingLevel,
				Slide:   c.FirstPageIndex + 1,
			})
		}
		for _, n := range flattenOutline(spec.Outline) {
			view.Outline = append(view.Outline, outlineView{
				Title: n.Title,
				Level: n.Level,
				Slide: n.PageIndex + 1,
			})
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return buf.String(), nil
}

// pageHTML renders one page's blocks to an HTML fragment. Split pages get
// their numbered title re-emitted as a heading so every fragment stays
// self-describing.
func (r *deckRenderer) pageHTML(p Page, mathMode string) (template.HTML, error) {
	var parts []string

	blocks := p.Blocks
	if !p.TitleSlide && p.HeadingLevel > 0 && p.Title != "" {
		parts = append(parts, strings.Repeat("#", p.HeadingLevel)+" "+p.Title)
		// The group heading block already rendered via the line above.
		if p.PageIndex == 1 && len(blocks) > 0 &&
			blocks[0].Kind == KindHeading && blocks[0].Level == p.HeadingLevel {
			blocks = blocks[1:]
		}
	}
	for _, b := range blocks {
		parts = append(parts, b.Text)
	}
	source := strings.Join(parts, "\n\n")

	md := r.md
	if mathMode == MathMathML {
		// MathML mode renders LaTeX during conversion, so the delimiters
		// must be back in place before goldmark sees the source.
		source = restoreMathDelimiters(source)
		md = r.mathMD
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	out := buf.String()
	if mathMode != MathMathML {
		out = restoreMathDelimiters(out)
	}
	return template.HTML(out), nil // #nosec G203 -- output of markdown rendering
}

// truncateTitle shortens long chapter titles for the progress bar.
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) > 20 {
		return string(runes[:17]) + "..."
	}
	return title
}
