package main

import (
	"errors"
	"os"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
)

// Exit codes for md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2site.ErrTemplateRead) ||
		errors.Is(err, md2site.ErrReadMarkdown) ||
		errors.Is(err, md2site.ErrWriteHTML) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrAlreadyExists) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrNoManifest) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, md2site.ErrEmptyTemplate) ||
		errors.Is(err, md2site.ErrEmptyManifest) ||
		errors.Is(err, md2site.ErrInvalidSetName) ||
		errors.Is(err, md2site.ErrDuplicateSetName) ||
		errors.Is(err, md2site.ErrMissingSourceDir) ||
		errors.Is(err, md2site.ErrMissingOutputDir) ||
		errors.Is(err, md2site.ErrInvalidExtension) ||
		errors.Is(err, md2site.ErrFileNameTraversal) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) {
		return ExitUsage
	}

	return ExitGeneral
}
