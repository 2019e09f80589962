package main

import (
	"errors"
	"os"

	mdsnap "github.com/alnah/go-mdsnap"
	"github.com/alnah/go-mdsnap/internal/config"
)

// Exit codes for the mdsnap CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdsnap.ErrBrowserConnect) ||
		errors.Is(err, mdsnap.ErrPageCreate) ||
		errors.Is(err, mdsnap.ErrPageLoad) ||
		errors.Is(err, mdsnap.ErrScreenshot) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNotAFile) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteCleaned) ||
		errors.Is(err, mdsnap.ErrWriteImage) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdsnap.ErrEmptyMarkdown) ||
		errors.Is(err, mdsnap.ErrEmptyOutputDir) {
		return ExitUsage
	}

	return ExitGeneral
}
