package md2html_test

import (
	"context"
	"fmt"
	"strings"

	md2html "github.com/alnah/go-md2html"
)

// Example demonstrates converting a page with frontmatter.
func Example() {
	conv, err := md2html.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2html.Input{
		Markdown: "---\ntitle: Hello\n---\n# Hello World\n\nThis is a test.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Title)
	fmt.Println(strings.Contains(result.HTML, `id="hello-world"`))
	// Output:
	// Hello
	// true
}

// Example_tableOfContents shows the TOC derived from headings.
func Example_tableOfContents() {
	conv, err := md2html.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2html.Input{
		Markdown: "# Guide\n\n## Install\n\n## Usage\n",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(result.TOC)
	// Output:
	// <ul>
	// <li><a href="#guide">Guide</a></li>
	// <ul>
	// <li><a href="#install">Install</a></li>
	// <li><a href="#usage">Usage</a></li>
	// </ul>
	// </ul>
}

// ExampleFixInternalLinks shows how links between pages are rewritten.
func ExampleFixInternalLinks() {
	html := `<a href="Getting%20Started.md#First%20Steps">Getting Started#First Steps</a>`
	fmt.Println(md2html.FixInternalLinks(html))
	// Output: <a href="getting-started.html#first-steps">Getting Started > First Steps</a>
}

// ExampleLinksTo lists the pages a fragment links to.
func ExampleLinksTo() {
	html := `<a href="./intro.html">Intro</a> <a href="setup.html#linux">Linux</a> <a href="https://go.dev/x.html">Go</a>`
	fmt.Println(md2html.LinksTo(html))
	// Output: [intro setup#linux]
}

// ExampleSlugify shows the slug used for page names and heading IDs.
func ExampleSlugify() {
	fmt.Println(md2html.Slugify("Café Déjà Vu!"))
	// Output: cafe-deja-vu
}

// ExampleParseFrontmatter splits TOML frontmatter from the body.
func ExampleParseFrontmatter() {
	fm, body, err := md2html.ParseFrontmatter("+++\ntitle = \"Notes\"\ndraft = true\n+++\nBody")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(fm.String("title"), fm.Bool("draft"), body)
	// Output: Notes true Body
}
