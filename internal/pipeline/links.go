package pipeline

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	// anchorPattern captures the href and the text of every <a> element.
	anchorPattern = regexp.MustCompile(`<a[^>]*href="([^"]+)"[^>]*>(.*?)</a>`)

	// htmlTargetPattern captures links to generated pages.
	htmlTargetPattern = regexp.MustCompile(`href="([^"]+)\.html(#[^"]+)?"`)
)

// mediaExtensions lists targets that are served as files, never as pages.
var mediaExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".avif", ".bmp", ".tiff", ".tif", ".ico",
	".pdf",
	".mp4", ".mov", ".avi", ".mkv", ".webm",
	".mp3", ".wav", ".ogg", ".flac",
	".zip", ".tar", ".gz", ".7z", ".rar",
	".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
	".txt", ".csv", ".json", ".xml", ".yaml", ".yml", ".toml",
}

// FixInternalLinks rewrites links between pages of the site to the slugified
// .html file they are generated as. A link to "Getting Started.md#Install"
// becomes "getting-started.html#install" and its text loses the extension.
// External URLs, explicit relative or absolute paths, media files, heading
// anchors and footnote references are left untouched.
func FixInternalLinks(htmlContent string) string {
	return anchorPattern.ReplaceAllStringFunc(htmlContent, func(element string) string {
		m := anchorPattern.FindStringSubmatch(element)
		if m == nil {
			return element
		}
		href, text := m[1], m[2]

		if !isInternalLink(element, href) {
			return element
		}

		head := element[:len(element)-len(text)-len("</a>")]
		head = strings.Replace(head, `href="`+href+`"`, `href="`+rewriteHref(href)+`"`, 1)
		return head + rewriteLinkText(text) + "</a>"
	})
}

// footnoteMarkers identify footnote links: goldmark's classes and the
// data-footnote-ref attribute other renderers emit.
var footnoteMarkers = []string{
	`class="footnote-ref"`,
	`class="footnote-backref"`,
	"data-footnote-ref",
	"data-footnote-backref",
}

// isInternalLink reports whether the anchor element points to another page.
func isInternalLink(element, href string) bool {
	if strings.Contains(element, `class="anchor"`) {
		return false
	}
	for _, marker := range footnoteMarkers {
		if strings.Contains(element, marker) {
			return false
		}
	}
	if strings.HasPrefix(href, ".") || strings.HasPrefix(href, "/") {
		return false
	}
	if isMediaFile(href) {
		return false
	}
	if u, err := url.Parse(href); err == nil && u.Scheme != "" {
		return false
	}
	return true
}

// isMediaFile checks the extension of the href's path, ignoring any query
// or fragment.
func isMediaFile(href string) bool {
	path, _, _ := strings.Cut(href, "#")
	path, _, _ = strings.Cut(path, "?")
	lower := strings.ToLower(path)
	for _, ext := range mediaExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// rewriteHref maps "path.md?query#fragment" to
// "slug(path).html#slug(fragment)". The query is dropped.
func rewriteHref(href string) string {
	path, fragment, _ := strings.Cut(href, "#")
	path, _, _ = strings.Cut(path, "?")

	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	if decoded, err := url.PathUnescape(fragment); err == nil {
		fragment = decoded
	}

	path = strings.TrimSuffix(path, ".md")
	path = strings.TrimSuffix(path, ".html")

	var b strings.Builder
	if slug := Slugify(path); slug != "" {
		b.WriteString(slug)
		b.WriteString(".html")
	}
	if slug := Slugify(fragment); slug != "" {
		b.WriteByte('#')
		b.WriteString(slug)
	}
	return b.String()
}

// rewriteLinkText drops the extension and shows fragments as breadcrumbs:
// "page.md#Section" reads "page > Section".
func rewriteLinkText(text string) string {
	text = strings.TrimLeft(text, "#")
	text = strings.TrimSuffix(text, ".md")
	text = strings.TrimSuffix(text, ".html")
	return strings.ReplaceAll(text, "#", " > ")
}

// LinksTo returns the pages an HTML fragment links to, in order of
// appearance, as "page" or "page#fragment". External links are skipped.
// Returns nil when the fragment has no page links.
func LinksTo(htmlContent string) []string {
	var links []string
	for _, m := range htmlTargetPattern.FindAllStringSubmatch(htmlContent, -1) {
		target := m[1]
		if strings.HasPrefix(target, "http") {
			continue
		}
		links = append(links, strings.TrimPrefix(target, "./")+m[2])
	}
	return links
}
