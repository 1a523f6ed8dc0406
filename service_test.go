package md2slides

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/halden/go-md2slides/internal/assets"
)

// fakePDF records calls without touching a browser.
type fakePDF struct {
	output []byte
	err    error
	calls  int
	closed bool
}

func (f *fakePDF) ToPDF(ctx context.Context, html string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func (f *fakePDF) Close() error {
	f.closed = true
	return nil
}

// newTestService builds a Service that never launches Chrome.
func newTestService(opts ...Option) (*Service, *fakePDF) {
	pdf := &fakePDF{output: []byte("%PDF-1.7 fake")}
	s := &Service{
		cfg:    serviceConfig{timeout: defaultTimeout},
		parser: newBlockParser(),
		pdf:    pdf,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, pdf
}

const sampleDeck = `# My Deck

Opening words.

## First Section

Some content here.

### Detail

More content.

## Second Section

Closing content.
`

func TestNew(t *testing.T) {
	t.Parallel()

	s := New()
	defer func() { _ = s.Close() }()

	if s.parser == nil {
		t.Error("parser not initialized")
	}
	if s.pdf == nil {
		t.Error("pdf converter not initialized")
	}
	if s.cfg.timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", s.cfg.timeout, defaultTimeout)
	}
}

func TestService_Convert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("full pipeline", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService()
		result, err := s.Convert(ctx, Input{Markdown: sampleDeck})
		if err != nil {
			t.Fatalf("Convert() error: %v", err)
		}

		if result.Title != "My Deck" {
			t.Errorf("Title = %q, want My Deck", result.Title)
		}
		// Title slide (with the opening paragraph) plus two sections.
		if len(result.Pages) != 3 {
			t.Errorf("got %d pages, want 3", len(result.Pages))
		}
		if !result.Pages[0].TitleSlide {
			t.Error("first page should be the title slide")
		}
		if len(result.Chapters) != 2 {
			t.Errorf("got %d chapters, want 2", len(result.Chapters))
		}
		if result.PDF != nil {
			t.Error("PDF produced without RenderPDF")
		}

		for _, want := range []string{
			"<!DOCTYPE html>",
			"<title>My Deck</title>",
			"First Section",
			"Second Section",
			"Closing content",
		} {
			if !strings.Contains(result.HTML, want) {
				t.Errorf("HTML missing %q", want)
			}
		}
	})

	t.Run("explicit title wins over heading", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService()
		result, err := s.Convert(ctx, Input{Markdown: sampleDeck, Title: "Override"})
		if err != nil {
			t.Fatalf("Convert() error: %v", err)
		}
		if result.Title != "Override" {
			t.Errorf("Title = %q, want Override", result.Title)
		}
	})

	t.Run("fallback title without h1", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService()
		result, err := s.Convert(ctx, Input{Markdown: "plain paragraph only"})
		if err != nil {
			t.Fatalf("Convert() error: %v", err)
		}
		if result.Title != FallbackTitle {
			t.Errorf("Title = %q, want %q", result.Title, FallbackTitle)
		}
	})

	t.Run("empty markdown rejected", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService()
		_, err := s.Convert(ctx, Input{})
		if !errors.Is(err, ErrEmptyMarkdown) {
			t.Errorf("error = %v, want ErrEmptyMarkdown", err)
		}
	})

	t.Run("invalid math mode rejected", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService()
		_, err := s.Convert(ctx, Input{Markdown: "x", MathMode: "asciimath"})
		if !errors.Is(err, ErrInvalidMathMode) {
			t.Errorf("error = %v, want ErrInvalidMathMode", err)
		}
	})

	t.Run("unknown theme rejected with hint", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService()
		_, err := s.Convert(ctx, Input{Markdown: "x", Theme: "vaporwave"})
		if !errors.Is(err, assets.ErrThemeNotFound) {
			t.Errorf("error = %v, want ErrThemeNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint") {
			t.Errorf("error should carry a hint: %v", err)
		}
	})

	t.Run("theme alias accepted", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService()
		result, err := s.Convert(ctx, Input{Markdown: "# X", Theme: "cyberpunk"})
		if err != nil {
			t.Fatalf("Convert() error: %v", err)
		}
		if !strings.Contains(result.HTML, "matrix-bg") {
			t.Error("cyberpunk alias should resolve to the tech theme effects")
		}
	})

	t.Run("custom loader serves extra theme", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "themes"), 0o750); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		css := ".slide { background: #0ff; }"
		if err := os.WriteFile(filepath.Join(dir, "themes", "neon.css"), []byte(css), 0o644); err != nil {
			t.Fatalf("write theme: %v", err)
		}
		resolver, err := assets.NewAssetResolver(dir)
		if err != nil {
			t.Fatalf("NewAssetResolver() error: %v", err)
		}

		s, _ := newTestService(WithAssetLoader(resolver))
		result, err := s.Convert(ctx, Input{Markdown: "# X", Theme: "neon"})
		if err != nil {
			t.Fatalf("Convert() error: %v", err)
		}
		if !strings.Contains(result.HTML, css) {
			t.Error("custom theme stylesheet not injected")
		}
	})

	t.Run("footer and extra css injected", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService()
		result, err := s.Convert(ctx, Input{
			Markdown: "# X",
			Footer:   "ACME Corp",
			CSS:      ".slide { border: 1px solid lime }",
		})
		if err != nil {
			t.Fatalf("Convert() error: %v", err)
		}
		if !strings.Contains(result.HTML, "ACME Corp") {
			t.Error("footer missing from HTML")
		}
		if !strings.Contains(result.HTML, "border: 1px solid lime") {
			t.Error("extra CSS missing from HTML")
		}
	})

	t.Run("page numbers applied when enabled", func(t *testing.T) {
		t.Parallel()

		var md strings.Builder
		md.WriteString("## Dense\n")
		for i := 0; i < 30; i++ {
			md.WriteString("\n```\ncode\ncode\ncode\ncode\ncode\n```\n")
		}

		opts := DefaultOptions()
		opts.ShowPageNumbers = true

		s, _ := newTestService()
		result, err := s.Convert(ctx, Input{Markdown: md.String(), Options: opts})
		if err != nil {
			t.Fatalf("Convert() error: %v", err)
		}
		if len(result.Pages) < 2 {
			t.Fatalf("expected a split group, got %d pages", len(result.Pages))
		}
		if !strings.Contains(result.HTML, "Dense (1/") {
			t.Error("numbered split title missing from HTML")
		}
	})

	t.Run("pdf rendered on request", func(t *testing.T) {
		t.Parallel()

		s, pdf := newTestService()
		result, err := s.Convert(ctx, Input{Markdown: "# X", RenderPDF: true})
		if err != nil {
			t.Fatalf("Convert() error: %v", err)
		}
		if pdf.calls != 1 {
			t.Errorf("converter called %d times, want 1", pdf.calls)
		}
		if string(result.PDF) != "%PDF-1.7 fake" {
			t.Errorf("PDF = %q", result.PDF)
		}
	})

	t.Run("pdf failure surfaces", func(t *testing.T) {
		t.Parallel()

		s, pdf := newTestService()
		pdf.err = ErrBrowserConnect

		_, err := s.Convert(ctx, Input{Markdown: "# X", RenderPDF: true})
		if !errors.Is(err, ErrBrowserConnect) {
			t.Errorf("error = %v, want ErrBrowserConnect", err)
		}
	})

	t.Run("conversion is deterministic", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService()
		first, err := s.Convert(ctx, Input{Markdown: sampleDeck})
		if err != nil {
			t.Fatalf("Convert() error: %v", err)
		}
		second, err := s.Convert(ctx, Input{Markdown: sampleDeck})
		if err != nil {
			t.Fatalf("Convert() error: %v", err)
		}
		if first.HTML != second.HTML {
			t.Error("repeated conversion produced different HTML")
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		t.Parallel()

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		s, _ := newTestService()
		_, err := s.Convert(cancelled, Input{Markdown: sampleDeck})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestService_Close(t *testing.T) {
	t.Parallel()

	s, pdf := newTestService()
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if !pdf.closed {
		t.Error("Close() did not reach the PDF converter")
	}
}

func TestResolveTitle(t *testing.T) {
	t.Parallel()

	h1 := newBlock(KindHeading, 1, "# Doc Title")
	h2 := newBlock(KindHeading, 2, "## Section")

	tests := []struct {
		name     string
		explicit string
		blocks   []Block
		want     string
	}{
		{"explicit wins", "Given", []Block{h1}, "Given"},
		{"first h1", "", []Block{h2, h1}, "Doc Title"},
		{"fallback", "", []Block{h2}, FallbackTitle},
		{"fallback on empty", "", nil, FallbackTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveTitle(tt.explicit, tt.blocks); got != tt.want {
				t.Errorf("resolveTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
