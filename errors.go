package mdsnap

import (
	"errors"

	"github.com/alnah/go-mdsnap/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	// ErrHTMLConversion surfaces the converter's sentinel so callers can
	// match it without reaching into internal packages.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrScreenshot     = errors.New("screenshot capture failed")
	ErrWriteImage     = errors.New("failed to write image file")
	ErrEmptyOutputDir = errors.New("output directory cannot be empty")
)
