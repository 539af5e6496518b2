package pipeline

import "regexp"

// disallowedTag matches opening and closing tags of the raw HTML elements
// GitHub Flavored Markdown filters.
var disallowedTag = regexp.MustCompile(`(?i)<(/?(?:title|textarea|style|xmp|iframe|noembed|noframes|script|plaintext)(?:[\s/>]|$))`)

// FilterTags escapes the leading "<" of disallowed raw HTML tags so the
// browser shows them as text.
func FilterTags(htmlContent string) string {
	return disallowedTag.ReplaceAllString(htmlContent, "&lt;$1")
}
