package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultDescriptionLength is the rune limit of a derived description.
const DefaultDescriptionLength = 160

// Summary is page metadata derived from rendered HTML.
type Summary struct {
	// Title is the text of the first <h1>.
	Title string
	// Description is the text of the first <p>, truncated.
	Description string
}

// Summarize extracts a title and a description from an HTML fragment for
// pages whose frontmatter provides neither. Descriptions longer than
// maxRunes are cut on a word boundary and end with an ellipsis; maxRunes
// <= 0 disables truncation.
func Summarize(htmlContent string, maxRunes int) (Summary, error) {
	doc, err := parseFragment(htmlContent)
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.H1:
				if s.Title == "" {
					s.Title = textContent(n)
				}
			case atom.P:
				if s.Description == "" {
					s.Description = textContent(n)
				}
			}
			if s.Title != "" && s.Description != "" {
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(doc)

	s.Description = truncateWords(s.Description, maxRunes)
	return s, nil
}

// parseFragment parses HTML with body context to avoid the implicit
// <html><head><body> wrapper, and returns a container of the nodes.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// textContent returns the whitespace-normalized text below n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func truncateWords(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	runes := []rune(s)[:maxRunes]
	cut := len(runes)
	for i := len(runes) - 1; i > 0; i-- {
		if unicode.IsSpace(runes[i]) {
			cut = i
			break
		}
	}
	return strings.TrimRightFunc(string(runes[:cut]), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	}) + "…"
}
