// Package md2slides converts Markdown documents into paginated HTML
// presentations.
//
// # Quick Start
//
// Create a service, convert markdown, and close when done:
//
//	svc := md2slides.New()
//	defer svc.Close()
//
//	result, err := svc.Convert(ctx, md2slides.Input{
//	    Markdown: "# My Talk\n\n## Agenda\n\n- intro\n- demo",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("presentation.html", []byte(result.HTML), 0644)
//
// The result contains the self-contained HTML deck (result.HTML) together
// with the computed page sequence, chapter list and outline tree for callers
// that need navigation metadata. Set Input.RenderPDF to also print the deck
// to PDF via headless Chrome.
//
// # Pagination Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line normalization, math protection)
//  2. Block parsing via Goldmark (flat stream of weighted blocks)
//  3. Sectioning (headings at or above the split level start slide groups)
//  4. Packing (greedy bin-fill under weight and element budgets;
//     code, tables, blockquotes, math and images are never fragmented)
//  5. Page numbering ("Title (i/n)" on split groups) and outline building
//  6. HTML rendering (themes, chapter navigation, TOC panel, KaTeX or MathML)
//
// A block heavier than a whole page is placed intact and reported through
// Result.Warnings rather than split.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2slides.New(
//	    md2slides.WithTimeout(2 * time.Minute),
//	)
//
// Pagination tuning lives on Input.Options: the split level, chapter level,
// viewport height, content threshold and per-slide element budget. A nil
// Options uses the defaults (900px viewport filled to 80%, split at H2).
package md2slides
