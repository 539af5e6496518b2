package md2html

import (
	"github.com/alnah/go-md2html/internal/frontmatter"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// ParseFrontmatter splits content into its metadata block and body.
// Content without a block yields an empty Frontmatter and the content with
// leading newlines trimmed. Returns ErrInvalidFrontmatter when the block
// cannot be decoded or is never closed.
func ParseFrontmatter(content string) (Frontmatter, string, error) {
	return frontmatter.Parse(content)
}

// FixInternalLinks rewrites hrefs of links to other pages of the site into
// slugged "page.html#fragment" form.
func FixInternalLinks(html string) string {
	return pipeline.FixInternalLinks(html)
}

// LinksTo lists the .html pages referenced by the anchors in html.
// Returns nil when there are none.
func LinksTo(html string) []string {
	return pipeline.LinksTo(html)
}

// TableOfContents builds a nested <ul> list from the headings in html.
func TableOfContents(html string) string {
	return pipeline.TableOfContents(html)
}

// Slugify lowercases s, strips accents and joins the remaining
// alphanumeric runs with '-'.
func Slugify(s string) string {
	return pipeline.Slugify(s)
}

// AppendReferences appends the reference definitions found in
// referencesPath to content. A missing file leaves content unchanged.
func AppendReferences(content, referencesPath string) (string, error) {
	return pipeline.AppendReferences(content, referencesPath)
}
