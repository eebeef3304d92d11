package pipeline

import (
	"strings"
	"testing"
)

func TestMarkdownTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		href       string
		outputName string
		want       string
	}{
		{"sibling page", "guide.md", "", "guide.html"},
		{"keeps fragment", "guide.md#setup", "", "guide.html#setup"},
		{"nested page", "docs/api.md", "", "docs/api.html"},
		{"upper case extension", "README.MD", "", "README.html"},
		{"fixed output name", "docs/guide.md", "index.html", "docs/index.html"},
		{"fixed output name sibling", "guide.md", "index.html", "index.html"},
		{"absolute url", "https://example.com/a.md", "", "https://example.com/a.md"},
		{"protocol relative", "//example.com/a.md", "", "//example.com/a.md"},
		{"absolute path", "/a.md", "", "/a.md"},
		{"anchor", "#top", "", "#top"},
		{"other extension", "notes.txt", "", "notes.txt"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := markdownTarget(tt.href, tt.outputName); got != tt.want {
				t.Errorf("markdownTarget(%q, %q) = %q, want %q", tt.href, tt.outputName, got, tt.want)
			}
		})
	}
}

func TestRewriteMarkdownLinks_Fragment(t *testing.T) {
	t.Parallel()

	got, err := RewriteMarkdownLinks(`<p><a href="next.md">next</a> <img src="pic.md"></p>`, "")
	if err != nil {
		t.Fatalf("RewriteMarkdownLinks() error = %v", err)
	}
	want := `<p><a href="next.html">next</a> <img src="pic.md"/></p>`
	if got != want {
		t.Errorf("RewriteMarkdownLinks() = %q, want %q", got, want)
	}
}

func TestRewriteMarkdownLinks_FullDocument(t *testing.T) {
	t.Parallel()

	page := "<!DOCTYPE html>\n<html>\n<head>\n<title>T</title>\n</head>\n<body>\n" +
		`<p><a href="b.md#x">b</a></p>` + "\n</body>\n</html>"

	got, err := RewriteMarkdownLinks(page, "index.html")
	if err != nil {
		t.Fatalf("RewriteMarkdownLinks() error = %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>T</title>", `<a href="index.html#x">b</a>`} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
