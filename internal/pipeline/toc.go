package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// tocHeadingPattern captures the level, the optional anchor href and the
// inner HTML of every heading.
var tocHeadingPattern = regexp.MustCompile(`<h([1-6])[^>]*>(?:<a[^>]*href="([^"]+)"[^>]*></a>)?(.*?)</h[1-6]>`)

// TableOfContents builds a nested <ul> list from the headings of an HTML
// fragment. Headings rendered with an anchor link reuse its href; other
// headings link to the slug of their text. Levels may skip: going from h1
// to h3 opens two lists. Returns "" when there are no headings.
func TableOfContents(htmlContent string) string {
	matches := tocHeadingPattern.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return ""
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		title := m[3]
		anchor := m[2]
		if anchor == "" {
			anchor = "#" + Slugify(title)
		}

		for ; last < level; last++ {
			b.WriteString("<ul>\n")
		}
		for ; last > level; last-- {
			b.WriteString("</ul>\n")
		}

		b.WriteString(`<li><a href="`)
		b.WriteString(anchor)
		b.WriteString(`">`)
		b.WriteString(title)
		b.WriteString("</a></li>\n")
	}
	for ; last > 0; last-- {
		b.WriteString("</ul>\n")
	}
	return b.String()
}
