// Package md2html converts markdown pages into HTML fragments for a static
// site generator.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: "---\ntitle: Hello\n---\n# Hello\n\nSee [[Other Page]].",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.HTML) // fragment, not a full document
//	fmt.Println(result.TOC)  // nested <ul> built from the headings
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Frontmatter split (YAML ---, TOML +++ or JSON {)
//  2. Shared reference definitions appended from SourceDir/_references.md
//  3. Line ending normalization
//  4. Markdown to HTML conversion via Goldmark (GFM, alerts, wikilinks,
//     ==highlight== marks, emoji, syntax highlighting, heading anchors)
//  5. Internal link rewriting to site-relative slug paths
//  6. Optional sanitizing with a bluemonday UGC policy
//  7. TOC, outbound links, missing references and page summary
//
// # Internal Links
//
// Links between pages are written against markdown file names and rewritten
// to the generated page names:
//
//	[Setup](Getting Started.md#First Steps)
//	<a href="getting-started.html#first-steps">Setup</a>
//
// Links starting with "." or "/", links with a URL scheme and links to media
// files are left untouched.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	opts := md2html.DefaultOptions()
//	opts.Render.Unsafe = true
//	conv, err := md2html.NewConverter(
//	    md2html.WithOptions(opts),
//	    md2html.WithLogger(logger),
//	    md2html.WithTimeout(10 * time.Second),
//	)
//
// # Missing References
//
// Reference links without a definition ([label] or [text][label]) do not fail
// the conversion. They are listed in Result.MissingReferences and logged as
// warnings with a hint on where to define them.
package md2html
