package md2site

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// filePermissions is applied to written pages: rw-r--r--.
const filePermissions = 0o644

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input Input) (string, error)
}

// Compile-time interface implementation check.
var _ Converter = (*Service)(nil)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithProgress sets the writer receiving one line per converted document.
func WithProgress(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.progress = w
	}
}

// WithStyle sets an inline stylesheet injected into every page.
func WithStyle(css string) RunnerOption {
	return func(r *Runner) {
		r.css = css
	}
}

// Runner converts the documents named by a Manifest, one at a time.
type Runner struct {
	conv      Converter
	templates TemplateSource
	css       string
	progress  io.Writer
}

// NewRunner creates a Runner. The template source is consulted fresh for
// every document, so file-backed templates pick up edits between runs.
func NewRunner(conv Converter, templates TemplateSource, opts ...RunnerOption) *Runner {
	r := &Runner{
		conv:      conv,
		templates: templates,
		progress:  os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run converts every existing source named by the manifest, in manifest
// order, and emits one progress line per converted document.
//
// A source file that does not exist is skipped silently: guideline
// documents may be listed before they are written. Any other failure
// aborts the remainder of the run; pages already written stay on disk.
func (r *Runner) Run(ctx context.Context, m Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}

	for _, set := range m.Sets {
		for _, name := range set.Files {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			sourcePath := filepath.Join(set.SourceDir, name)
			if !fileutil.FileExists(sourcePath) {
				continue
			}

			targetPath := filepath.Join(set.OutputDir, OutputName(name))
			if err := r.ConvertDocument(ctx, sourcePath, targetPath); err != nil {
				return fmt.Errorf("converting %s: %w", sourcePath, err)
			}

			fmt.Fprintf(r.progress, "Converted %s to %s\n", sourcePath, targetPath)
		}
	}

	return nil
}

// ConvertDocument reads one Markdown source, renders it into the page
// template, and writes the result to targetPath, overwriting any existing
// file. The target's parent directory is created on demand.
func (r *Runner) ConvertDocument(ctx context.Context, sourcePath, targetPath string) error {
	content, err := os.ReadFile(sourcePath) // #nosec G304 -- manifest-resolved path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	if !utf8.Valid(content) {
		return fmt.Errorf("%w: %s is not valid UTF-8", ErrReadMarkdown, sourcePath)
	}

	tmpl, err := r.templates.Template()
	if err != nil {
		return err
	}

	page, err := r.conv.Convert(ctx, Input{
		Markdown: string(content),
		Template: tmpl,
		CSS:      r.css,
	})
	if err != nil {
		return err
	}

	if err := fileutil.EnsureDir(filepath.Dir(targetPath)); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// #nosec G306 -- HTML pages are meant to be readable
	if err := os.WriteFile(targetPath, []byte(page), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	return nil
}
