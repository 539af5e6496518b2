package pipeline

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// figures wraps images in <figure>, turning the image title into a
// <figcaption>:
//
//	![Diagram](arch.png "Overall architecture")
type figures struct{}

func (figures) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&figureRenderer{Config: html.NewConfig()}, 100),
	))
}

// figureRenderer embeds html.Config to receive the XHTML and Unsafe options.
type figureRenderer struct {
	html.Config
}

func (r *figureRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindImage, r.renderImage)
}

func (r *figureRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)

	_, _ = w.WriteString(`<figure><img src="`)
	if r.Unsafe || !html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(util.EscapeHTML(plainText(n, source)))
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		r.Writer.Write(w, n.Title)
		_ = w.WriteByte('"')
	}
	if n.Attributes() != nil {
		html.RenderAttributes(w, n, html.ImageAttributeFilter)
	}
	if r.XHTML {
		_, _ = w.WriteString(" />")
	} else {
		_ = w.WriteByte('>')
	}
	if len(n.Title) > 0 {
		_, _ = w.WriteString("<figcaption>")
		r.Writer.Write(w, n.Title)
		_, _ = w.WriteString("</figcaption>")
	}
	_, _ = w.WriteString("</figure>")
	return ast.WalkSkipChildren, nil
}

// plainText concatenates the text of all descendants of n.
func plainText(n ast.Node, source []byte) []byte {
	var buf []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf = append(buf, t.Segment.Value(source)...)
		case *ast.String:
			buf = append(buf, t.Value...)
		default:
			buf = append(buf, plainText(c, source)...)
		}
	}
	return buf
}
