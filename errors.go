package md2site

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyTemplate  = errors.New("template content cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// File conversion errors.
	ErrTemplateRead = errors.New("failed to read template")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")

	// Manifest validation errors.
	ErrEmptyManifest     = errors.New("manifest has no document sets")
	ErrInvalidSetName    = errors.New("invalid document set name")
	ErrDuplicateSetName  = errors.New("duplicate document set name")
	ErrMissingSourceDir  = errors.New("document set has no source directory")
	ErrMissingOutputDir  = errors.New("document set has no output directory")
	ErrInvalidExtension  = errors.New("file must have .md or .markdown extension")
	ErrFileNameTraversal = errors.New("file name contains path separator or traversal")
)
