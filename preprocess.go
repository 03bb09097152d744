package md2site

import "regexp"

// Precompiled regex patterns for preprocessing.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// markdownPreprocessor defines the contract for markdown preprocessing.
type markdownPreprocessor interface {
	Preprocess(content string) string
}

// normalizePreprocessor makes source text deterministic across checkouts:
// editors and git line-ending settings must not change the rendered output.
type normalizePreprocessor struct{}

// Preprocess normalizes line endings first, then compresses blank lines.
func (p *normalizePreprocessor) Preprocess(content string) string {
	content = NormalizeLineEndings(content)
	content = CompressBlankLines(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CompressBlankLines limits consecutive blank lines to 2 maximum.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
