package pipeline

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteMarkdownLinks points relative links to Markdown files at their
// converted HTML pages. With an empty outputName "guide.md#setup" becomes
// "guide.html#setup"; otherwise the file name is replaced by outputName, so
// "docs/guide.md" becomes "docs/index.html" for outputName "index.html".
//
// Absolute URLs, absolute paths and anchors are left alone. The document is
// re-serialized, which normalizes its markup.
func RewriteMarkdownLinks(htmlContent, outputName string) (string, error) {
	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteLinks(doc, outputName)
	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the tree back to a string. Fragments render their
// children only, without an <html><body> wrapper.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func rewriteLinks(n *html.Node, outputName string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key == "href" {
				n.Attr[i].Val = markdownTarget(attr.Val, outputName)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteLinks(c, outputName)
	}
}

// markdownTarget returns the rewritten href, or href unchanged when it does
// not name a relative Markdown file.
func markdownTarget(href, outputName string) string {
	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" || strings.HasPrefix(u.Path, "/") {
		return href
	}
	if !strings.EqualFold(path.Ext(u.Path), ".md") {
		return href
	}

	if outputName == "" {
		u.Path = strings.TrimSuffix(u.Path, path.Ext(u.Path)) + ".html"
	} else {
		u.Path = path.Join(path.Dir(u.Path), outputName)
	}
	return u.String()
}
