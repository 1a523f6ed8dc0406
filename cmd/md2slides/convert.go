package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2slides "github.com/halden/go-md2slides"
	"github.com/halden/go-md2slides/internal/assets"
	"github.com/halden/go-md2slides/internal/config"
	"github.com/halden/go-md2slides/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrReadCSS          = errors.New("failed to read CSS file")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrInvalidTimeout   = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Output file names inside the generated directory.
const (
	htmlFileName   = "presentation.html"
	pdfFileName    = "presentation.pdf"
	readmeFileName = "README.txt"
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input md2slides.Input) (*md2slides.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Converter = (*md2slides.Service)(nil)

// runConvert orchestrates one conversion: config + flags merge, service
// construction, output directory layout and result writing.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				err = fmt.Errorf("%w%s", err, hints.ForConfigNotFound(nil))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Resolve input file
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	mdContent, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided input path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	cssContent, err := readExtraCSS(flags.deck.css)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Converting: %s\n", inputPath)
	}

	// Output directory: <base>/<stem>_<timestamp>/
	baseDir := flags.output.output
	if baseDir == "" {
		baseDir = cfg.Output.DefaultDir
	}
	if baseDir == "" {
		baseDir = filepath.Dir(inputPath)
	}
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outputDir := filepath.Join(baseDir, stem+"_"+env.Now().Format("20060102150405"))
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "  Output directory: %s\n", outputDir)
	}

	svc, err := buildService(flags, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	input := buildInput(string(mdContent), cssContent, inputPath, outputDir, flags, cfg)

	start := env.Now()
	result, err := svc.Convert(ctx, input)
	if err != nil {
		if errors.Is(err, md2slides.ErrBrowserConnect) {
			return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("conversion timed out: %w%s", err, hints.ForTimeout())
		}
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(env.Stderr, "Warning: %s\n", w)
	}

	if err := writeOutputs(outputDir, result, flags); err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "  Parsed %d slides\n", len(result.Pages))
		fmt.Fprintf(env.Stdout, "  HTML: %s\n", filepath.Join(outputDir, htmlFileName))
		if flags.output.pdf {
			fmt.Fprintf(env.Stdout, "  PDF: %s\n", filepath.Join(outputDir, pdfFileName))
		}
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "  Done in %s\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	return nil
}

// resolveInputPath picks the markdown file from args or the configured
// default directory.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return "", fmt.Errorf("%w: input.defaultDir is set but no file was given", ErrNoInput)
	}
	return "", ErrNoInput
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// readExtraCSS loads the optional --css file.
func readExtraCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided CSS path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(data), nil
}

// buildService assembles the conversion service from flags and config.
func buildService(flags *convertFlags, cfg *config.Config) (*md2slides.Service, error) {
	var opts []md2slides.Option

	if flags.output.timeout != "" {
		d, err := time.ParseDuration(flags.output.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.output.timeout)
		}
		opts = append(opts, md2slides.WithTimeout(d))
	}

	assetPath := flags.output.assetPath
	if assetPath == "" {
		assetPath = cfg.Assets.BasePath
	}
	if assetPath != "" {
		resolver, err := assets.NewAssetResolver(assetPath)
		if err != nil {
			return nil, fmt.Errorf("loading assets: %w", err)
		}
		opts = append(opts, md2slides.WithAssetLoader(resolver))
	}

	return md2slides.New(opts...), nil
}

// buildInput merges config and flags into the library input. Flags win.
func buildInput(markdown, css, inputPath, outputDir string, flags *convertFlags, cfg *config.Config) md2slides.Input {
	pick := func(flagVal, cfgVal string) string {
		if flagVal != "" {
			return flagVal
		}
		return cfgVal
	}

	options := md2slides.DefaultOptions()
	applyLayoutConfig(options, cfg)
	applyLayoutFlags(options, &flags.layout)

	options.ShowPageNumbers = flags.deck.showPageNumbers
	if !flags.deck.showPageNumbers && cfg.Deck.ShowPageNumbers != nil {
		options.ShowPageNumbers = *cfg.Deck.ShowPageNumbers
	}

	disableNav := flags.deck.noChapterNav
	if !disableNav && cfg.Deck.ChapterNav != nil {
		disableNav = !*cfg.Deck.ChapterNav
	}

	return md2slides.Input{
		Markdown:           markdown,
		Title:              pick(flags.deck.title, cfg.Deck.Title),
		Theme:              pick(flags.deck.theme, cfg.Deck.Theme),
		Footer:             pick(flags.deck.footer, cfg.Deck.Footer),
		CSS:                css,
		MathMode:           pick(flags.deck.math, cfg.Deck.MathMode),
		DisableChapterNav:  disableNav,
		Options:            options,
		SourceDir:          filepath.Dir(inputPath),
		AssetsDir:          filepath.Join(outputDir, "assets", "images"),
		OutputDir:          outputDir,
		PreserveImagePaths: flags.images.preservePaths || cfg.Images.PreservePaths,
		RenderPDF:          flags.output.pdf || cfg.PDF.Enabled,
	}
}

// applyLayoutConfig overrides defaults with non-zero config values.
func applyLayoutConfig(o *md2slides.Options, cfg *config.Config) {
	if cfg.Layout.SplitLevel != 0 {
		o.SplitLevel = cfg.Layout.SplitLevel
	}
	if cfg.Layout.ChapterLevel != 0 {
		o.ChapterLevel = cfg.Layout.ChapterLevel
	}
	if cfg.Layout.MaxElements != 0 {
		o.MaxElements = cfg.Layout.MaxElements
	}
	if cfg.Layout.ViewportHeight != 0 {
		o.ViewportHeight = cfg.Layout.ViewportHeight
	}
	if cfg.Layout.ContentThreshold != 0 {
		o.ContentThreshold = cfg.Layout.ContentThreshold
	}
}

// applyLayoutFlags overrides config with explicitly set flag values.
func applyLayoutFlags(o *md2slides.Options, f *layoutFlags) {
	if f.splitLevel != 0 {
		o.SplitLevel = f.splitLevel
	}
	if f.chapterLevel != 0 {
		o.ChapterLevel = f.chapterLevel
	}
	if f.maxElements != 0 {
		o.MaxElements = f.maxElements
	}
	if f.viewportHeight != 0 {
		o.ViewportHeight = f.viewportHeight
	}
	if f.contentThreshold != 0 {
		o.ContentThreshold = f.contentThreshold
	}
}

// writeOutputs writes the HTML deck, the README and the optional PDF.
func writeOutputs(outputDir string, result *md2slides.Result, flags *convertFlags) error {
	htmlPath := filepath.Join(outputDir, htmlFileName)
	if err := os.WriteFile(htmlPath, []byte(result.HTML), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if err := os.WriteFile(filepath.Join(outputDir, readmeFileName), []byte(readmeContent), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if flags.output.pdf && result.PDF != nil {
		if err := os.WriteFile(filepath.Join(outputDir, pdfFileName), result.PDF, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	return nil
}

// readmeContent ships with every generated presentation directory.
const readmeContent = `HTML Presentation
==================

This presentation was generated from Markdown using md2slides.

Usage:
------
1. Open presentation.html in a web browser
2. Use arrow keys or spacebar to navigate
3. Press F11 for fullscreen mode

Navigation:
-----------
- Right arrow or Space: Next slide
- Left arrow: Previous slide
- Home: First slide
- End: Last slide

Files:
------
- presentation.html: Main presentation file
- assets/images/: Image resources

Tips:
-----
- Works best in modern browsers (Chrome, Firefox, Safari, Edge)
- Can be hosted on a web server or used locally
- All resources are self-contained in this directory
`
