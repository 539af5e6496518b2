package pipeline

import (
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// fallbackHeadingID names headings whose text has no slug-able character.
const fallbackHeadingID = "section"

// slugIDs generates heading IDs with Slugify. Repeated headings get a
// numeric suffix: "intro", "intro-1", "intro-2".
// A new instance is needed per document.
type slugIDs struct {
	seen map[string]bool
}

func newSlugIDs() *slugIDs {
	return &slugIDs{seen: make(map[string]bool)}
}

// Generate implements parser.IDs.
func (s *slugIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	base := Slugify(string(value))
	if base == "" {
		base = fallbackHeadingID
	}
	id := base
	for i := 1; s.seen[id]; i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	s.seen[id] = true
	return []byte(id)
}

// Put implements parser.IDs.
func (s *slugIDs) Put(value []byte) {
	s.seen[string(value)] = true
}

// headingAnchors gives every heading an ID and renders it with an empty
// self-link carrying that ID, which the table of contents and link
// rewriting rely on:
//
//	<h2><a href="#usage" aria-hidden="true" class="anchor" id="usage"></a>Usage</h2>
type headingAnchors struct{}

func (headingAnchors) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(headingIDs{}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&headingAnchorRenderer{}, 100),
	))
}

// headingIDs sets the id attribute of each heading from its text as
// rendered: "## See [docs](docs.md)" gets "see-docs". IDs come from the
// context's parser.IDs so they are unique per document.
type headingIDs struct{}

func (headingIDs) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	ids := pc.IDs()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		h.SetAttributeString("id", ids.Generate(plainText(h, source), ast.KindHeading))
		return ast.WalkSkipChildren, nil
	})
}

type headingAnchorRenderer struct{}

func (r *headingAnchorRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
}

func (r *headingAnchorRenderer) renderHeading(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if !entering {
		_, _ = w.WriteString("</h")
		_ = w.WriteByte("0123456"[n.Level])
		_, _ = w.WriteString(">\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<h")
	_ = w.WriteByte("0123456"[n.Level])
	_ = w.WriteByte('>')

	if v, ok := n.AttributeString("id"); ok {
		var id []byte
		switch typed := v.(type) {
		case []byte:
			id = typed
		case string:
			id = []byte(typed)
		}
		id = util.EscapeHTML(id)
		_, _ = w.WriteString(`<a href="#`)
		_, _ = w.Write(id)
		_, _ = w.WriteString(`" aria-hidden="true" class="anchor" id="`)
		_, _ = w.Write(id)
		_, _ = w.WriteString(`"></a>`)
	}
	return ast.WalkContinue, nil
}
