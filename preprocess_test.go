package md2slides

import (
	"strings"
	"testing"
)

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "crlf normalized",
			in:   "a\r\nb",
			want: "a\nb",
		},
		{
			name: "bare cr normalized",
			in:   "a\rb",
			want: "a\nb",
		},
		{
			name: "blank runs compressed",
			in:   "a\n\n\n\n\nb",
			want: "a\n\nb",
		},
		{
			name: "double blank kept",
			in:   "a\n\nb",
			want: "a\n\nb",
		},
		{
			name: "inline math protected",
			in:   "value $x+1$ here",
			want: "value " + mathInlineStart + "x+1" + mathInlineEnd + " here",
		},
		{
			name: "display math protected",
			in:   "$$e = mc^2$$",
			want: mathDisplayStart + "e = mc^2" + mathDisplayEnd,
		},
		{
			name: "display math wins over inline",
			in:   "$$a$b$$",
			want: mathDisplayStart + "a$b" + mathDisplayEnd,
		},
		{
			name: "dollar without pair untouched",
			in:   "price is $5",
			want: "price is $5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := preprocessMarkdown(tt.in); got != tt.want {
				t.Errorf("preprocessMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRestoreMathDelimiters_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"inline $a^2 + b^2$ math",
		"$$\\int_0^1 x\\,dx$$",
		"mixed $x$ and $$y$$ together",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			if got := restoreMathDelimiters(protectMath(in)); got != in {
				t.Errorf("round trip changed content: %q -> %q", in, got)
			}
		})
	}
}

func TestRestoreMathDelimiters_NoPlaceholders(t *testing.T) {
	t.Parallel()

	in := "plain markdown with no math"
	if got := restoreMathDelimiters(in); got != in {
		t.Errorf("restoreMathDelimiters(%q) = %q, want unchanged", in, got)
	}
}

func TestContainsDisplayMath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "protected display block",
			text: protectMath("$$x = 1$$"),
			want: true,
		},
		{
			name: "surrounding whitespace ignored",
			text: "  " + protectMath("$$x$$") + "\n",
			want: true,
		},
		{
			name: "inline math does not qualify",
			text: protectMath("$x$"),
			want: false,
		},
		{
			name: "plain text",
			text: "no math here",
			want: false,
		},
		{
			name: "display math with trailing prose",
			text: protectMath("$$x$$") + " and more",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := containsDisplayMath(tt.text); got != tt.want {
				t.Errorf("containsDisplayMath(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestProtectMath_MultilineDisplay(t *testing.T) {
	t.Parallel()

	in := "$$\na = b\nc = d\n$$"
	got := protectMath(in)

	if !strings.HasPrefix(got, mathDisplayStart) || !strings.HasSuffix(got, mathDisplayEnd) {
		t.Errorf("multiline display math not protected: %q", got)
	}
	if strings.Contains(got, "$") {
		t.Errorf("dollar signs survived protection: %q", got)
	}
}
