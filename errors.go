package md2slides

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrHTMLRender    = errors.New("HTML rendering failed")

	// Pagination option validation errors.
	ErrInvalidSplitLevel       = errors.New("invalid split level")
	ErrInvalidChapterLevel     = errors.New("invalid chapter level")
	ErrInvalidViewportHeight   = errors.New("invalid viewport height")
	ErrInvalidContentThreshold = errors.New("invalid content threshold")
	ErrInvalidMaxElements      = errors.New("invalid max elements")

	// Input validation errors.
	ErrInvalidMathMode = errors.New("invalid math mode")

	// PDF export errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
