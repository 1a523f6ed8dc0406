package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		f, args, err := parseFlags([]string{"deck.md"})
		if err != nil {
			t.Fatalf("parseFlags() error: %v", err)
		}
		if len(args) != 1 || args[0] != "deck.md" {
			t.Errorf("args = %v, want [deck.md]", args)
		}
		if f.deck.theme != "" || f.output.output != "" || f.output.pdf {
			t.Errorf("unexpected non-default flags: %+v", f)
		}
		if f.layout.splitLevel != 0 {
			t.Errorf("splitLevel = %d, want 0 (use default)", f.layout.splitLevel)
		}
	})

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		f, args, err := parseFlags([]string{
			"deck.md",
			"--theme", "clean",
			"--title", "Quarterly",
			"--footer", "ACME",
			"--css", "extra.css",
			"--math", "mathml",
			"--show-page-numbers",
			"--no-chapter-nav",
			"--split-level", "3",
			"--chapter-level", "1",
			"--max-elements", "10",
			"--viewport-height", "1080",
			"--content-threshold", "0.7",
			"--preserve-image-paths",
			"--output", "out",
			"--pdf",
			"--timeout", "2m",
			"--asset-path", "assets",
			"--config", "team",
			"--quiet",
		})
		if err != nil {
			t.Fatalf("parseFlags() error: %v", err)
		}
		if len(args) != 1 || args[0] != "deck.md" {
			t.Errorf("args = %v", args)
		}
		if f.deck.theme != "clean" || f.deck.title != "Quarterly" || f.deck.footer != "ACME" {
			t.Errorf("deck flags = %+v", f.deck)
		}
		if f.deck.math != "mathml" || !f.deck.showPageNumbers || !f.deck.noChapterNav {
			t.Errorf("deck flags = %+v", f.deck)
		}
		if f.layout.splitLevel != 3 || f.layout.chapterLevel != 1 ||
			f.layout.maxElements != 10 || f.layout.viewportHeight != 1080 ||
			f.layout.contentThreshold != 0.7 {
			t.Errorf("layout flags = %+v", f.layout)
		}
		if !f.images.preservePaths {
			t.Error("preservePaths not set")
		}
		if f.output.output != "out" || !f.output.pdf ||
			f.output.timeout != "2m" || f.output.assetPath != "assets" {
			t.Errorf("output flags = %+v", f.output)
		}
		if f.common.config != "team" || !f.common.quiet {
			t.Errorf("common flags = %+v", f.common)
		}
	})

	t.Run("shorthand flags", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseFlags([]string{"-t", "corporate", "-o", "dist", "-q", "-v", "-c", "cfg", "deck.md"})
		if err != nil {
			t.Fatalf("parseFlags() error: %v", err)
		}
		if f.deck.theme != "corporate" || f.output.output != "dist" {
			t.Errorf("shorthands not applied: %+v", f)
		}
		if !f.common.quiet || !f.common.verbose || f.common.config != "cfg" {
			t.Errorf("common shorthands not applied: %+v", f.common)
		}
	})

	t.Run("version flag", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseFlags([]string{"--version"})
		if err != nil {
			t.Fatalf("parseFlags() error: %v", err)
		}
		if !f.version {
			t.Error("version flag not set")
		}
	})

	t.Run("unknown flag errors", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseFlags([]string{"--does-not-exist"}); err == nil {
			t.Error("expected error for unknown flag")
		}
	})
}

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	for _, want := range []string{
		"Usage: md2slides",
		"--theme",
		"--split-level",
		"--pdf",
		"--asset-path",
		"--show-page-numbers",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
