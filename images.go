package md2slides

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/halden/go-md2slides/internal/fileutil"
)

// imgTagPattern matches img tags and captures the src attribute value.
var imgTagPattern = regexp.MustCompile(`<img\s+([^>]*?)src=["']([^"']+)["']([^>]*?)>`)

// resourceManager copies local images referenced by the rendered deck into an
// assets directory and rewrites their src attributes, so the output directory
// is self-contained. URLs, data URIs and missing files pass through untouched.
type resourceManager struct {
	sourceDir string            // directory for resolving relative image paths
	assetsDir string            // destination, e.g. <out>/assets/images
	outputDir string            // directory holding the rendered document
	preserve  bool              // keep original paths, never copy
	copied    map[string]string // source path -> rewritten relative path
}

func newResourceManager(sourceDir, assetsDir, outputDir string, preserve bool) *resourceManager {
	return &resourceManager{
		sourceDir: sourceDir,
		assetsDir: assetsDir,
		outputDir: outputDir,
		preserve:  preserve,
		copied:    make(map[string]string),
	}
}

// active reports whether any rewriting will happen at all.
func (rm *resourceManager) active() bool {
	return !rm.preserve && rm.assetsDir != ""
}

// ProcessHTML rewrites img tags in the rendered document and copies the
// referenced local files. Failures are tolerated: a tag whose image cannot
// be copied keeps its original src.
func (rm *resourceManager) ProcessHTML(html string) string {
	if !rm.active() {
		return html
	}

	return imgTagPattern.ReplaceAllStringFunc(html, func(tag string) string {
		m := imgTagPattern.FindStringSubmatch(tag)
		if m == nil {
			return tag
		}
		src := m[2]

		if fileutil.IsURL(src) || strings.HasPrefix(src, "data:") {
			return tag
		}

		srcPath := src
		if !filepath.IsAbs(srcPath) {
			srcPath = filepath.Join(rm.sourceDir, src)
		}
		if !fileutil.FileExists(srcPath) {
			return tag
		}

		newPath, err := rm.copyImage(srcPath)
		if err != nil {
			return tag
		}
		return fmt.Sprintf(`<img %ssrc="%s"%s>`, m[1], newPath, m[3])
	})
}

// copyImage copies one file into the assets directory, deduplicating repeat
// references and disambiguating name collisions with a numeric suffix.
func (rm *resourceManager) copyImage(srcPath string) (string, error) {
	if rel, ok := rm.copied[srcPath]; ok {
		return rel, nil
	}

	if err := fileutil.EnsureDir(rm.assetsDir); err != nil {
		return "", err
	}

	name := filepath.Base(srcPath)
	destPath := filepath.Join(rm.assetsDir, name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for counter := 1; fileutil.FileExists(destPath); counter++ {
		name = fmt.Sprintf("%s_%d%s", stem, counter, ext)
		destPath = filepath.Join(rm.assetsDir, name)
	}

	if err := copyFile(srcPath, destPath); err != nil {
		return "", err
	}

	rel := rm.rewrittenSrc(name)
	rm.copied[srcPath] = rel
	return rel, nil
}

// rewrittenSrc builds the src attribute for a copied image, relative to the
// directory the document is written to. Without a known output directory the
// assets path is used as given.
func (rm *resourceManager) rewrittenSrc(name string) string {
	dest := filepath.Join(rm.assetsDir, name)
	if rm.outputDir != "" {
		if rel, err := filepath.Rel(rm.outputDir, dest); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(dest)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src) // #nosec G304 -- path comes from user markdown
	if err != nil {
		return fmt.Errorf("opening image: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dest) // #nosec G304 -- destination under assets dir
	if err != nil {
		return fmt.Errorf("creating image copy: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying image: %w", err)
	}
	return out.Close()
}
