package md2site

import "strings"

// ContentToken is the placeholder a page template must contain exactly once.
const ContentToken = "{{content}}"

// contentInjector defines the contract for placing rendered HTML into a template.
type contentInjector interface {
	Inject(templateContent, fragment string) string
}

// contentInjection substitutes the rendered fragment into the template.
type contentInjection struct{}

// Inject replaces the first occurrence of {{content}} with the fragment.
// A template without the token is passed through unchanged: treated as a
// no-op substitution, not a failure.
func (contentInjection) Inject(templateContent, fragment string) string {
	return strings.Replace(templateContent, ContentToken, fragment, 1)
}

// cssInjector defines the contract for CSS injection into a page.
type cssInjector interface {
	InjectCSS(pageContent, cssContent string) string
}

// cssInjection injects CSS as a <style> block into page content.
type cssInjection struct{}

// InjectCSS inserts a <style> block into the page.
// Tries </head> first, then <body>, then prepends to the page.
// CSS content is sanitized to prevent breaking out of the <style> block.
func (cssInjection) InjectCSS(pageContent, cssContent string) string {
	if cssContent == "" {
		return pageContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerPage := strings.ToLower(pageContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerPage, "</head>"); idx != -1 {
		return pageContent[:idx] + styleBlock + pageContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerPage, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(pageContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return pageContent[:insertPos] + styleBlock + pageContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + pageContent
}

// sanitizeCSS escapes sequences that could close the <style> block prematurely.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
