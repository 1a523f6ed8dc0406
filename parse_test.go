package md2slides

import (
	"strings"
	"testing"
)

func TestNewBlockParser(t *testing.T) {
	t.Parallel()

	p := newBlockParser()
	if p == nil {
		t.Fatal("newBlockParser() returned nil")
	}
	if p.md == nil {
		t.Error("parser.md is nil")
	}
}

func TestBlockParser_Parse_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantKinds []BlockKind
	}{
		{
			name:      "empty input",
			input:     "",
			wantKinds: nil,
		},
		{
			name:      "heading levels",
			input:     "# One\n\n### Three",
			wantKinds: []BlockKind{KindHeading, KindHeading},
		},
		{
			name:      "paragraph",
			input:     "Just some text.",
			wantKinds: []BlockKind{KindParagraph},
		},
		{
			name:      "fenced code",
			input:     "```go\nfunc main() {}\n```",
			wantKinds: []BlockKind{KindCode},
		},
		{
			name:      "gfm table",
			input:     "| A | B |\n|---|---|\n| 1 | 2 |",
			wantKinds: []BlockKind{KindTable},
		},
		{
			name:      "blockquote",
			input:     "> quoted",
			wantKinds: []BlockKind{KindBlockquote},
		},
		{
			name:      "unordered list",
			input:     "- a\n- b",
			wantKinds: []BlockKind{KindList},
		},
		{
			name:      "thematic break",
			input:     "above\n\n---\n\nbelow",
			wantKinds: []BlockKind{KindParagraph, KindRule, KindParagraph},
		},
		{
			name:      "html block",
			input:     "<div>\nraw\n</div>",
			wantKinds: []BlockKind{KindRawHTML},
		},
		{
			name:      "image-only paragraph",
			input:     "![diagram](arch.png)",
			wantKinds: []BlockKind{KindImage},
		},
		{
			name:      "paragraph with image and text stays paragraph",
			input:     "See ![icon](i.png) here",
			wantKinds: []BlockKind{KindParagraph},
		},
		{
			name:      "mixed document",
			input:     "## Title\n\nIntro text.\n\n```sh\nls\n```\n\n- one\n- two",
			wantKinds: []BlockKind{KindHeading, KindParagraph, KindCode, KindList},
		},
	}

	p := newBlockParser()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks := p.Parse(tt.input)

			if len(blocks) != len(tt.wantKinds) {
				t.Fatalf("got %d blocks, want %d: %+v", len(blocks), len(tt.wantKinds), blocks)
			}
			for i, want := range tt.wantKinds {
				if blocks[i].Kind != want {
					t.Errorf("block %d kind = %v, want %v", i, blocks[i].Kind, want)
				}
			}
		})
	}
}

func TestBlockParser_Parse_HeadingLevels(t *testing.T) {
	t.Parallel()

	p := newBlockParser()
	blocks := p.Parse("# A\n\n## B\n\n#### D")

	wantLevels := []int{1, 2, 4}
	if len(blocks) != len(wantLevels) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(wantLevels))
	}
	for i, want := range wantLevels {
		if blocks[i].Level != want {
			t.Errorf("block %d level = %d, want %d", i, blocks[i].Level, want)
		}
	}
}

func TestBlockParser_Parse_RawSpansKeepMarkers(t *testing.T) {
	t.Parallel()

	p := newBlockParser()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"heading keeps hashes", "## Section Title", "## Section Title"},
		{"blockquote keeps angle", "> wisdom", "> wisdom"},
		{"list keeps dashes", "- alpha\n- beta", "- alpha\n- beta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks := p.Parse(tt.input)
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(blocks))
			}
			if blocks[0].Text != tt.want {
				t.Errorf("Text = %q, want %q", blocks[0].Text, tt.want)
			}
		})
	}
}

func TestBlockParser_Parse_FencedCodeKeepsFences(t *testing.T) {
	t.Parallel()

	p := newBlockParser()
	blocks := p.Parse("```python\nprint('hi')\n```")

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	text := blocks[0].Text
	if !strings.HasPrefix(text, "```python\n") {
		t.Errorf("opening fence with language lost: %q", text)
	}
	if !strings.HasSuffix(text, "```") {
		t.Errorf("closing fence lost: %q", text)
	}
	if !strings.Contains(text, "print('hi')") {
		t.Errorf("code body lost: %q", text)
	}
}

func TestBlockParser_Parse_FencedCodeMultiLineBody(t *testing.T) {
	t.Parallel()

	p := newBlockParser()
	blocks := p.Parse("```go\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n```")

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	want := "```go\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n```"
	if blocks[0].Text != want {
		t.Errorf("multi-line code body mangled:\ngot  %q\nwant %q", blocks[0].Text, want)
	}
}

func TestBlockParser_Parse_ProtectedDisplayMath(t *testing.T) {
	t.Parallel()

	p := newBlockParser()
	input := preprocessMarkdown("$$\\sum_{i=0}^n i$$")
	blocks := p.Parse(input)

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Kind != KindMathBlock {
		t.Errorf("kind = %v, want %v", blocks[0].Kind, KindMathBlock)
	}
	if !blocks[0].Atomic {
		t.Error("math block should be atomic")
	}
}

func TestBlockParser_Parse_InlineMathStaysParagraph(t *testing.T) {
	t.Parallel()

	p := newBlockParser()
	input := preprocessMarkdown("Euler: $e^{i\\pi} = -1$ famously.")
	blocks := p.Parse(input)

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Kind != KindParagraph {
		t.Errorf("kind = %v, want %v", blocks[0].Kind, KindParagraph)
	}
}
