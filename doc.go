// Package md2html converts Markdown documents to standalone HTML pages.
//
// # Quick Start
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", []byte(result.HTML), 0o644)
//
// # Conversion Pipeline
//
//  1. Optional YAML front matter is split off the document
//  2. Lines are normalized and segmented into typed blocks
//  3. Blocks are rendered concurrently, each from its HTML template
//  4. Fragments are joined and wrapped in the page prologue and epilogue
//  5. An optional stylesheet is injected and links to .md files rewritten
//
// Malformed blocks do not fail a conversion: they render as an error
// fragment and are reported in Result.Diagnostics.
//
// # Templates
//
// Every construct is rendered from a template with {text}, {src},
// {caption}, {lang}, {id} or {title} placeholders. Override any of them
// with WithTemplates:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithTemplates(md2html.LookupFunc(func(table, key string) (string, bool) {
//	        if table == "tags" && key == "bold" {
//	            return "<strong>{text}</strong>", true
//	        }
//	        return "", false
//	    })),
//	)
//
// # Styles
//
// No stylesheet is injected unless WithStyle names an embedded style
// ("default", "plain"), a style under WithAssetPath, or a CSS file.
// Code blocks then also get a palette derived from a chroma style,
// chosen with WithCodeStyle.
//
// A Converter is safe for concurrent use by multiple goroutines.
package md2html
