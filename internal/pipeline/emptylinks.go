package pipeline

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// emptyLinks renders links without a destination, such as [draft](), as
// their plain content.
type emptyLinks struct{}

func (emptyLinks) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&emptyLinkTransformer{}, 600),
	))
}

type emptyLinkTransformer struct{}

func (t *emptyLinkTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	var empty []*ast.Link
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if l, ok := n.(*ast.Link); ok && entering && len(l.Destination) == 0 {
			empty = append(empty, l)
		}
		return ast.WalkContinue, nil
	})

	for _, l := range empty {
		parent := l.Parent()
		for c := l.FirstChild(); c != nil; {
			next := c.NextSibling()
			parent.InsertBefore(parent, l, c)
			c = next
		}
		parent.RemoveChild(parent, l)
	}
}
