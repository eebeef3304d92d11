package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/templates"
)

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain rule", "h1 { color: navy; }", "h1 { color: navy; }"},
		{"style close", "</style>", `<\/style>`},
		{"repeated", "</a></b>", `<\/a><\/b>`},
		{"upper case", "</STYLE>", `<\/STYLE>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sanitizeCSS(tt.input); got != tt.expected {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	const css = "p { margin: 0; }"

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "no stylesheet",
			html:     "<html><head></head><body></body></html>",
			expected: "<html><head></head><body></body></html>",
		},
		{
			name:     "before head close",
			html:     "<html><head><title>T</title></head><body></body></html>",
			css:      css,
			expected: "<html><head><title>T</title><style>p { margin: 0; }</style></head><body></body></html>",
		},
		{
			name:     "mixed case head",
			html:     "<HEAD></HEAD>",
			css:      css,
			expected: "<HEAD><style>p { margin: 0; }</style></HEAD>",
		},
		{
			name:     "after body with attributes",
			html:     `<body class="doc"><p>x</p></body>`,
			css:      css,
			expected: `<body class="doc"><style>p { margin: 0; }</style><p>x</p></body>`,
		},
		{
			name:     "bare fragment",
			html:     "<p>x</p>",
			css:      css,
			expected: "<style>p { margin: 0; }</style><p>x</p>",
		},
		{
			name:     "hostile stylesheet",
			html:     "<head></head>",
			css:      "</style><script>x()</script>",
			expected: `<head><style><\/style><script>x()<\/script></style></head>`,
		},
	}

	injector := &CSSInjection{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := injector.InjectCSS(context.Background(), tt.html, tt.css); got != tt.expected {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectCSS_DefaultPage(t *testing.T) {
	t.Parallel()

	page := AssemblePage([]string{"<p>x</p>"}, "T", templates.Default())
	got := (&CSSInjection{}).InjectCSS(context.Background(), page, "b{}")

	want := "<title>T</title>\n<style>b{}</style></head>"
	if !strings.Contains(got, want) {
		t.Errorf("InjectCSS() = %q, want it to contain %q", got, want)
	}
}

func TestInjectCSS_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<html><head></head><body></body></html>"
	if got := (&CSSInjection{}).InjectCSS(ctx, html, "p{}"); got != html {
		t.Errorf("InjectCSS() with cancelled context = %q, want unchanged", got)
	}
}
