package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/halden/go-md2slides/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxTitleLength    = 200  // Presentation title
	MaxThemeLength    = 100  // Theme name or path
	MaxFooterLength   = 500  // Footer free-form text
	MaxURLLength      = 2048 // Browser limit
	MaxMathModeLength = 10   // "katex", "mathml"
)

// Config holds all configuration for presentation generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Deck   DeckConfig   `yaml:"deck"`
	Layout LayoutConfig `yaml:"layout"`
	Assets AssetsConfig `yaml:"assets"`
	Images ImagesConfig `yaml:"images"`
	PDF    PDFConfig    `yaml:"pdf"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// DeckConfig defines presentation-level options.
type DeckConfig struct {
	Theme           string `yaml:"theme"`           // Theme name (default: "tech")
	Title           string `yaml:"title"`           // Override presentation title
	Footer          string `yaml:"footer"`          // Footer text shown on every slide
	MathMode        string `yaml:"mathMode"`        // "katex" or "mathml" (default: "katex")
	ShowPageNumbers *bool  `yaml:"showPageNumbers"` // nil = disabled
	ChapterNav      *bool  `yaml:"chapterNav"`      // nil = enabled
}

// LayoutConfig defines pagination tuning. Zero values mean "use defaults".
type LayoutConfig struct {
	SplitLevel       int     `yaml:"splitLevel"`       // Heading level that starts a new slide group (1-6)
	ChapterLevel     int     `yaml:"chapterLevel"`     // Max heading level shown in chapter nav (1-6)
	MaxElements      int     `yaml:"maxElements"`      // Max blocks per slide
	ViewportHeight   int     `yaml:"viewportHeight"`   // Assumed viewport height in pixels
	ContentThreshold float64 `yaml:"contentThreshold"` // Usable fraction of viewport (0-1]
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// ImagesConfig defines image handling options.
type ImagesConfig struct {
	PreservePaths bool `yaml:"preservePaths"` // Keep original src paths instead of copying
}

// PDFConfig defines optional PDF export settings.
type PDFConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("deck.theme", c.Deck.Theme, MaxThemeLength); err != nil {
		return err
	}
	if err := validateFieldLength("deck.title", c.Deck.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("deck.footer", c.Deck.Footer, MaxFooterLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxURLLength); err != nil {
		return err
	}

	if c.Deck.MathMode != "" {
		switch strings.ToLower(c.Deck.MathMode) {
		case "katex", "mathml":
			// valid
		default:
			return fmt.Errorf("deck.mathMode: invalid value %q (must be katex or mathml)", c.Deck.MathMode)
		}
	}

	if c.Layout.SplitLevel != 0 && (c.Layout.SplitLevel < 1 || c.Layout.SplitLevel > 6) {
		return fmt.Errorf("layout.splitLevel: must be between 1 and 6, got %d", c.Layout.SplitLevel)
	}
	if c.Layout.ChapterLevel != 0 && (c.Layout.ChapterLevel < 1 || c.Layout.ChapterLevel > 6) {
		return fmt.Errorf("layout.chapterLevel: must be between 1 and 6, got %d", c.Layout.ChapterLevel)
	}
	if c.Layout.MaxElements < 0 {
		return fmt.Errorf("layout.maxElements: must be positive, got %d", c.Layout.MaxElements)
	}
	if c.Layout.ViewportHeight < 0 {
		return fmt.Errorf("layout.viewportHeight: must be positive, got %d", c.Layout.ViewportHeight)
	}
	if c.Layout.ContentThreshold != 0 && (c.Layout.ContentThreshold <= 0 || c.Layout.ContentThreshold > 1) {
		return fmt.Errorf("layout.contentThreshold: must be in (0, 1], got %.2f", c.Layout.ContentThreshold)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration relying on built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: ""},
		Output: OutputConfig{DefaultDir: ""},
		Deck:   DeckConfig{Theme: "", MathMode: ""},
		Assets: AssetsConfig{BasePath: ""},
		PDF:    PDFConfig{Enabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2slides/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2slides", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
