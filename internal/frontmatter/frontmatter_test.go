package frontmatter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doc       string
		wantBlock string
		wantBody  string
		wantOK    bool
	}{
		{
			name:      "block and body",
			doc:       "---\ntitle: Hi\n---\n# Body\n",
			wantBlock: "title: Hi",
			wantBody:  "# Body\n",
			wantOK:    true,
		},
		{
			name:      "leading blank lines",
			doc:       "\n\n---\na: b\n---\n\ntext",
			wantBlock: "a: b",
			wantBody:  "text",
			wantOK:    true,
		},
		{
			name:      "crlf delimiters",
			doc:       "---\r\na: b\r\n---\r\ntext",
			wantBlock: "a: b\r",
			wantBody:  "text",
			wantOK:    true,
		},
		{
			name:     "content before delimiter",
			doc:      "# Title\n---\na: b\n---\n",
			wantBody: "# Title\n---\na: b\n---\n",
		},
		{
			name:     "unclosed",
			doc:      "---\na: b\n",
			wantBody: "---\na: b\n",
		},
		{
			name:     "delimiter must be exact",
			doc:      "---\na: b\n----\n",
			wantBody: "---\na: b\n----\n",
		},
		{
			name:     "empty document",
			doc:      "",
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			block, body, ok := Split(tt.doc)
			if ok != tt.wantOK || block != tt.wantBlock || body != tt.wantBody {
				t.Errorf("Split() = (%q, %q, %v), want (%q, %q, %v)",
					block, body, ok, tt.wantBlock, tt.wantBody, tt.wantOK)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	doc := "---\n\ntitle: Kanban\nkanban-plugin: basic\nareas:\n  - projects\n  - career\n\n---\n\n## In Work"

	meta, body, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if body != "## In Work" {
		t.Errorf("body = %q", body)
	}
	if got := meta.Title(); got != "Kanban" {
		t.Errorf("Title() = %q", got)
	}
	if got, _ := meta.String("kanban-plugin"); got != "basic" {
		t.Errorf("String(kanban-plugin) = %q", got)
	}
	if diff := cmp.Diff([]string{"projects", "career"}, meta.Strings("areas")); diff != "" {
		t.Errorf("Strings(areas) mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NoBlock(t *testing.T) {
	t.Parallel()

	meta, body, err := Parse("# Title\n")
	if err != nil || meta != nil || body != "# Title\n" {
		t.Errorf("Parse() = (%v, %q, %v)", meta, body, err)
	}
}

func TestParse_EmptyBlock(t *testing.T) {
	t.Parallel()

	meta, body, err := Parse("---\n---\ntext")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if meta == nil || len(meta) != 0 || body != "text" {
		t.Errorf("Parse() = (%v, %q)", meta, body)
	}
}

func TestParse_CommentOnlyBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"heading between rules", "---\n# Chapter\n---\nBody text"},
		{"several comments", "---\n# one\n\n# two\n---\ntext"},
		{"explicit null", "---\n~\n---\ntext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, body, err := Parse(tt.doc)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if meta != nil || body != tt.doc {
				t.Errorf("Parse() = (%v, %q), want document unchanged", meta, body)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	doc := "---\nkey: [unclosed\n---\ntext"
	meta, body, err := Parse(doc)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Parse() error = %v, want ErrInvalid", err)
	}
	if meta != nil || body != doc {
		t.Errorf("Parse() = (%v, %q), want document unchanged", meta, body)
	}
}

func TestMeta_Accessors(t *testing.T) {
	t.Parallel()

	meta := Meta{
		"id":     uint64(2),
		"title":  "  Padded  ",
		"single": "one",
		"nested": map[string]any{"a": "b"},
		"empty":  nil,
	}

	if got, ok := meta.String("id"); !ok || got != "2" {
		t.Errorf("String(id) = %q, %v", got, ok)
	}
	if _, ok := meta.String("nested"); ok {
		t.Error("String(nested) should not format a mapping")
	}
	if _, ok := meta.String("empty"); ok {
		t.Error("String(empty) should report a missing value")
	}
	if got := meta.Title(); got != "Padded" {
		t.Errorf("Title() = %q", got)
	}
	if diff := cmp.Diff([]string{"one"}, meta.Strings("single")); diff != "" {
		t.Errorf("Strings(single) mismatch:\n%s", diff)
	}
	if got := meta.Strings("missing"); got != nil {
		t.Errorf("Strings(missing) = %v, want nil", got)
	}
}
