package md2site

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DocumentSet names an ordered list of Markdown files under a source root,
// each converted to a mirrored path under the output root.
type DocumentSet struct {
	Name      string   // Set name, for diagnostics ("guidelines", "process")
	SourceDir string   // Root containing the Markdown sources
	OutputDir string   // Root receiving the HTML outputs
	Files     []string // Relative file names, in conversion order
}

// Manifest is the fixed, ordered list of document sets to convert.
// Order affects console output only; conversions are independent.
type Manifest struct {
	Sets []DocumentSet
}

// Validate checks that the manifest describes a usable conversion plan.
func (m Manifest) Validate() error {
	if len(m.Sets) == 0 {
		return ErrEmptyManifest
	}

	seen := make(map[string]bool, len(m.Sets))
	for _, set := range m.Sets {
		if strings.TrimSpace(set.Name) == "" {
			return fmt.Errorf("%w: empty name", ErrInvalidSetName)
		}
		if seen[set.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateSetName, set.Name)
		}
		seen[set.Name] = true

		if set.SourceDir == "" {
			return fmt.Errorf("%w: set %q", ErrMissingSourceDir, set.Name)
		}
		if set.OutputDir == "" {
			return fmt.Errorf("%w: set %q", ErrMissingOutputDir, set.Name)
		}

		for _, name := range set.Files {
			if err := validateFileName(name); err != nil {
				return fmt.Errorf("set %q: %w", set.Name, err)
			}
		}
	}

	return nil
}

// validateFileName checks that a manifest entry is a safe relative
// Markdown path. Subdirectories are allowed; traversal is not.
func validateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrFileNameTraversal)
	}
	if filepath.IsAbs(name) || strings.Contains(name, "\\") {
		return fmt.Errorf("%w: %q", ErrFileNameTraversal, name)
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return fmt.Errorf("%w: %q", ErrFileNameTraversal, name)
		}
	}
	ext := filepath.Ext(name)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// OutputName returns the mirrored output file name for a Markdown source,
// with the extension changed to .html.
func OutputName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + ".html"
}
