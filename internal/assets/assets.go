// Package assets provides theme stylesheets and deck templates for
// presentation rendering. Assets can be loaded from embedded files or a
// custom filesystem path.
package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTheme loads a theme stylesheet by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrThemeNotFound if the theme does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTheme(name string) (string, error) {
	return defaultLoader.LoadTheme(name)
}

// LoadTemplate loads an HTML template by name using the default embedded loader.
// The name should not include the .html extension or path components.
// Returns ErrTemplateNotFound if the template does not exist.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// Themes lists the embedded theme names.
func Themes() []string {
	return defaultLoader.Themes()
}
