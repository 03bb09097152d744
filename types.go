package md2site

// Input contains conversion parameters for a single document.
type Input struct {
	Markdown string // Markdown content; empty renders an empty fragment
	Template string // HTML page template with a {{content}} placeholder (required)
	CSS      string // Inline stylesheet injected into <head> (optional)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	hardWraps bool
	rawHTML   bool
}

// WithHardWraps renders single newlines as <br> elements.
// Off by default: documentation sources wrap prose at fixed columns.
func WithHardWraps() Option {
	return func(s *Service) {
		s.cfg.hardWraps = true
	}
}

// WithRawHTML passes raw HTML blocks in the source through to the output.
// Off by default; enable only for trusted document corpora.
func WithRawHTML() Option {
	return func(s *Service) {
		s.cfg.rawHTML = true
	}
}
