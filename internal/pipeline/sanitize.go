package pipeline

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizePolicy     *bluemonday.Policy
	sanitizePolicyOnce sync.Once
)

// policy extends the bluemonday UGC policy with the markup the converter
// emits itself: heading anchors, chroma classes, task list checkboxes,
// figures and alerts.
func policy() *bluemonday.Policy {
	sanitizePolicyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").Globally()
		p.AllowAttrs("aria-hidden", "role").Globally()
		p.AllowAttrs("data-wikilink").OnElements("a")
		p.AllowElements("mark", "figure", "figcaption", "sup", "section", "div")
		p.AllowAttrs("type", "checked", "disabled").OnElements("input")
		p.AllowElements("input")
		p.RequireNoFollowOnLinks(false)
		sanitizePolicy = p
	})
	return sanitizePolicy
}

// Sanitize strips scripts, event handlers and other unsafe markup from
// rendered HTML.
func Sanitize(htmlContent string) string {
	return policy().Sanitize(htmlContent)
}
