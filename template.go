package md2site

import (
	"fmt"
	"os"
)

// TemplateSource supplies the page template for a conversion.
// Template is called once per conversion so edits to a file-backed
// template take effect on the next run without restart.
type TemplateSource interface {
	Template() (string, error)
}

// FileTemplate is a TemplateSource that re-reads a file on every call.
type FileTemplate string

// Template reads the template file fresh from disk.
// Returns ErrTemplateRead if the file is missing or unreadable.
func (f FileTemplate) Template() (string, error) {
	content, err := os.ReadFile(string(f)) // #nosec G304 -- configured template path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	return string(content), nil
}

// StaticTemplate is a TemplateSource backed by an in-memory string,
// used for embedded defaults and tests.
type StaticTemplate string

// Template returns the template content.
func (s StaticTemplate) Template() (string, error) {
	if s == "" {
		return "", ErrEmptyTemplate
	}
	return string(s), nil
}
