package md2site

import (
	"context"
	"fmt"
)

// Service orchestrates the markdown-to-page pipeline.
type Service struct {
	cfg             serviceConfig
	preprocessor    markdownPreprocessor
	htmlConverter   htmlConverter
	contentInjector contentInjector
	cssInjector     cssInjector
}

// New creates a Service with default configuration.
// Use options to customize rendering (e.g., WithRawHTML).
func New(opts ...Option) *Service {
	s := &Service{
		preprocessor:    &normalizePreprocessor{},
		contentInjector: contentInjection{},
		cssInjector:     cssInjection{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// The converter depends on cfg, so it is created after options run.
	if s.htmlConverter == nil {
		s.htmlConverter = newGoldmarkConverter(s.cfg)
	}

	return s
}

// Convert runs the full pipeline and returns the finished HTML page.
// The context is used for cancellation.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	if err := s.validateInput(input); err != nil {
		return "", err
	}

	// Preprocess markdown
	mdContent := s.preprocessor.Preprocess(input.Markdown)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	// Convert to an HTML fragment
	fragment, err := s.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	// Place the fragment into the page template
	page := s.contentInjector.Inject(input.Template, fragment)

	// Inject CSS (if provided)
	page = s.cssInjector.InjectCSS(page, input.CSS)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	return page, nil
}

// validateInput checks that required fields are present. Empty Markdown
// is allowed: it renders an empty fragment into the template.
func (s *Service) validateInput(input Input) error {
	if input.Template == "" {
		return ErrEmptyTemplate
	}
	return nil
}
