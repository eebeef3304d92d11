package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/templates"
)

func TestRenderUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		unit ParseUnit
		typ  UnitType
		want string
	}{
		{
			name: "header",
			unit: ParseUnit{"# Hello *World*"},
			typ:  Header(1),
			want: "<h1>Hello <i>World</i></h1>",
		},
		{
			name: "demoted header",
			unit: ParseUnit{"# Again"},
			typ:  Header(2),
			want: "<h2>Again</h2>",
		},
		{
			name: "text trimmed",
			unit: ParseUnit{"   Some **bold** text."},
			typ:  UnitType{Kind: KindText},
			want: "<p>Some <b>bold</b> text.</p>",
		},
		{
			name: "list",
			unit: ParseUnit{"- a", "  - *b*"},
			typ:  UnitType{Kind: KindList},
			want: "<ul>\n\t<li>a</li>\n\t<li><i>b</i></li>\n</ul>",
		},
		{
			name: "blockquote",
			unit: ParseUnit{"> first", ">second **line**"},
			typ:  UnitType{Kind: KindBlockquote},
			want: "<blockquote>first\nsecond <b>line</b></blockquote>",
		},
		{
			name: "image",
			unit: ParseUnit{"![cap](src.png)"},
			typ:  UnitType{Kind: KindImage},
			want: `<img src="src.png" alt="cap">`,
		},
		{
			name: "image with spaces in src",
			unit: ParseUnit{"![a *b*](my image.png)"},
			typ:  UnitType{Kind: KindImage},
			want: `<img src="my%20image.png" alt="a <i>b</i>">`,
		},
		{
			name: "non-ascii src is percent-encoded",
			unit: ParseUnit{"![photo](café.png)"},
			typ:  UnitType{Kind: KindImage},
			want: `<img src="caf%C3%A9.png" alt="photo">`,
		},
		{
			name: "local link",
			unit: ParseUnit{"![[Some <note>]]"},
			typ:  UnitType{Kind: KindLocalLink},
			want: `<div class="parse-error">![[Some &lt;note&gt;]]</div>`,
		},
		{
			name: "latex passes through raw",
			unit: ParseUnit{"$$", `x < y \cdot *z*`, "$$"},
			typ:  UnitType{Kind: KindLatex},
			want: "<p class=\"latex\">$$\nx < y \\cdot *z*\n$$</p>",
		},
		{
			name: "code without language",
			unit: ParseUnit{"```", "a < b", "```"},
			typ:  UnitType{Kind: KindCode},
			want: `<pre><code class="language-">a &lt; b</code></pre>`,
		},
		{
			name: "code closed at end of input",
			unit: ParseUnit{"```", "a", "b"},
			typ:  UnitType{Kind: KindCode},
			want: "<pre><code class=\"language-\">a\nb</code></pre>",
		},
		{
			name: "code fence only",
			unit: ParseUnit{"```"},
			typ:  UnitType{Kind: KindCode},
			want: `<pre><code class="language-"></code></pre>`,
		},
		{
			name: "horizontal line",
			unit: ParseUnit{"-----"},
			typ:  UnitType{Kind: KindHorizontalLine},
			want: "<hr>",
		},
		{
			name: "raw text verbatim",
			unit: ParseUnit{`<div class="x">*kept*</div>`},
			typ:  UnitType{Kind: KindRawText},
			want: `<div class="x">*kept*</div>`,
		},
	}

	s := templates.Default()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RenderUnit(tt.unit, tt.typ, s)
			if err != nil {
				t.Fatalf("RenderUnit() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderUnit() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderUnit_Code(t *testing.T) {
	t.Parallel()

	got, err := RenderUnit(ParseUnit{"```python", "print(1)", "```"}, UnitType{Kind: KindCode}, templates.Default())
	if err != nil {
		t.Fatalf("RenderUnit() error = %v", err)
	}
	if !strings.HasPrefix(got, `<pre><code class="language-python">`) {
		t.Errorf("language not normalized: %q", got)
	}
	if !strings.Contains(got, ">print</span>") {
		t.Errorf("print is not highlighted: %q", got)
	}
}

func TestRenderUnit_HeaderID(t *testing.T) {
	t.Parallel()

	s := templates.New(templates.LookupFunc(func(table, key string) (string, bool) {
		if key == templates.KeyHeader {
			return `<h{level} id="{id}">{text}</h{level}>`, true
		}
		return "", false
	}))

	got, err := RenderUnit(ParseUnit{"## Getting Started"}, Header(2), s)
	if err != nil {
		t.Fatalf("RenderUnit() error = %v", err)
	}
	if want := `<h2 id="getting-started">Getting Started</h2>`; got != want {
		t.Errorf("RenderUnit() = %q, want %q", got, want)
	}
}

func TestRenderUnit_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		unit ParseUnit
		typ  UnitType
	}{
		{"empty unit", ParseUnit{}, UnitType{Kind: KindText}},
		{"two-line text", ParseUnit{"a", "b"}, UnitType{Kind: KindText}},
		{"two-line header", ParseUnit{"# a", "b"}, Header(1)},
		{"header level zero", ParseUnit{"a"}, UnitType{Kind: KindHeader}},
		{"header level seven", ParseUnit{"a"}, Header(7)},
		{"image without target", ParseUnit{"![cap]"}, UnitType{Kind: KindImage}},
		{"image with trailing text", ParseUnit{"![cap](a.png) more"}, UnitType{Kind: KindImage}},
		{"code without fence", ParseUnit{"x", "```"}, UnitType{Kind: KindCode}},
		{"two-line rule", ParseUnit{"---", "---"}, UnitType{Kind: KindHorizontalLine}},
		{"two-line raw", ParseUnit{"<a>", "<b>"}, UnitType{Kind: KindRawText}},
		{"two-line local link", ParseUnit{"![[a]]", "![[b]]"}, UnitType{Kind: KindLocalLink}},
		{"unknown kind", ParseUnit{"x"}, UnitType{Kind: Kind(99)}},
	}

	s := templates.Default()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := RenderUnit(tt.unit, tt.typ, s)
			if !errors.Is(err, ErrMalformedUnit) {
				t.Errorf("RenderUnit() error = %v, want ErrMalformedUnit", err)
			}
		})
	}
}
