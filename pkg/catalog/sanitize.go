package catalog

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Sanitizer cleans user-facing strings read from catalog files.
type Sanitizer func(string) string

// StrictText strips every HTML element from s and returns plain text. The
// entities bluemonday emits are decoded again since the result is never
// rendered as markup.
func StrictText(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(trimmed)))
}

// textKeys are the schema keywords rendered as text by the properties panel.
var textKeys = map[string]struct{}{
	"title":       {},
	"description": {},
	"label":       {},
	"text":        {},
}

// sanitizeTree returns a copy of node with every text keyword cleaned.
func sanitizeTree(node any, clean Sanitizer) any {
	switch value := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, child := range value {
			if text, ok := child.(string); ok {
				if _, isText := textKeys[key]; isText {
					out[key] = clean(text)
					continue
				}
			}
			out[key] = sanitizeTree(child, clean)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for idx, child := range value {
			out[idx] = sanitizeTree(child, clean)
		}
		return out
	default:
		return value
	}
}
