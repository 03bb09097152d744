package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"file not found", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"template read", md2site.ErrTemplateRead, ExitIO},
		{"markdown read", md2site.ErrReadMarkdown, ExitIO},
		{"html write", md2site.ErrWriteHTML, ExitIO},
		{"css read", ErrReadCSS, ExitIO},
		{"scaffold exists", ErrAlreadyExists, ExitIO},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"no manifest", ErrNoManifest, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"empty manifest", md2site.ErrEmptyManifest, ExitUsage},
		{"duplicate set name", md2site.ErrDuplicateSetName, ExitUsage},
		{"bad extension", md2site.ErrInvalidExtension, ExitUsage},
		{"traversal", md2site.ErrFileNameTraversal, ExitUsage},
		{"style not found", assets.ErrStyleNotFound, ExitUsage},
		{"asset base path", assets.ErrInvalidBasePath, ExitUsage},
		{"empty template", md2site.ErrEmptyTemplate, ExitUsage},
		{"conversion failure", md2site.ErrHTMLConversion, ExitGeneral},
		{"unclassified error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("converting docs/guidelines/naming.md: %w",
		fmt.Errorf("%w: no such file", md2site.ErrTemplateRead))

	if got := exitCodeFor(wrapped); got != ExitIO {
		t.Errorf("exitCodeFor(wrapped) = %d, want %d", got, ExitIO)
	}
}
