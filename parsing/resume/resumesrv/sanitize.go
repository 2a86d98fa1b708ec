package resumesrv

import "strings"

// sanitizeResponse strips the non-JSON wrapping models tend to add around
// a JSON payload: fenced code-block markers and leading/trailing prose.
// When no brace pair exists the text passes through unchanged so the
// decoder produces a well-defined error instead of a silent empty result.
func sanitizeResponse(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	text = strings.TrimSpace(text)

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start >= 0 && end > start {
		text = text[start : end+1]
	}
	return text
}
