// Package highlight annotates source code with highlight spans.
//
// Highlight takes a language tag and HTML-escaped code and returns the
// normalized language name with the code wrapped in <span class="code-…">
// markup. Languages known to chroma are tokenised by chroma's lexers; any
// other tag falls back to a small scanner driven by the union of the C/C++,
// Rust, JavaScript and Python keyword sets.
//
// A tag ending in " diff" additionally wraps lines starting with '+' or '-'
// in diff spans.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Span classes emitted by Highlight.
const (
	ClassKeyword    = "code-keyword"
	ClassLiteral    = "code-literal"
	ClassComment    = "code-comment"
	ClassCall       = "code-call"
	ClassDiffAdd    = "code-diff-add"
	ClassDiffRemove = "code-diff-remove"
)

// Classes lists every span class Highlight can emit.
func Classes() []string {
	return []string{ClassKeyword, ClassLiteral, ClassComment, ClassCall, ClassDiffAdd, ClassDiffRemove}
}

const diffSuffix = " diff"

const endTag = "</span>"

// aliases maps short language tags to their normalized names.
var aliases = map[string]string{
	"js":     "javascript",
	"py":     "python",
	"rs":     "rust",
	"c++":    "cpp",
	"golang": "go",
	"ts":     "typescript",
	"sh":     "bash",
}

// span marks raw[start:end] with a class.
type span struct {
	class      string
	start, end int
}

// Highlight returns the normalized language and the annotated code.
// The code is expected to be HTML-escaped (only < and >); the output keeps
// it escaped and never places a span boundary inside an entity.
func Highlight(lang, code string) (string, string) {
	name, diff := Normalize(lang)

	raw := unescape(code)
	spans, ok := chromaSpans(name, raw)
	if !ok {
		spans = scanSpans(name, raw)
	}

	out := apply(raw, mergeAdjacent(spans))
	if diff {
		out = annotateDiff(out)
	}
	return name, out
}

// Normalize strips the diff modifier, lowercases the tag and resolves aliases.
func Normalize(lang string) (name string, diff bool) {
	name = strings.TrimSpace(lang)
	if strings.HasSuffix(name, diffSuffix) {
		name = strings.TrimSpace(strings.TrimSuffix(name, diffSuffix))
		diff = true
	}
	name = strings.ToLower(name)
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	return name, diff
}

// chromaSpans tokenises raw with the chroma lexer registered for name.
// It reports false when no lexer matches or the token stream does not
// reproduce the input.
func chromaSpans(name, raw string) ([]span, bool) {
	if name == "" {
		return nil, false
	}
	lexer := lexers.Get(name)
	if lexer == nil {
		return nil, false
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, raw)
	if err != nil {
		return nil, false
	}
	tokens := it.Tokens()

	var spans []span
	pos := 0
	for i, tok := range tokens {
		if pos >= len(raw) {
			break
		}
		v := tok.Value
		// Lexers may append a trailing newline.
		if pos+len(v) > len(raw) {
			v = v[:len(raw)-pos]
		}
		if !strings.HasPrefix(raw[pos:], v) {
			return nil, false
		}

		if class := classify(tok.Type, tokens, i); class != "" && v != "" {
			spans = append(spans, span{class: class, start: pos, end: pos + len(v)})
		}
		pos += len(v)
	}
	if pos != len(raw) {
		return nil, false
	}
	return spans, true
}

// classify maps a chroma token type onto a span class.
func classify(tt chroma.TokenType, tokens []chroma.Token, i int) string {
	switch {
	case tt.InCategory(chroma.Comment):
		return ClassComment
	case tt.InCategory(chroma.Keyword):
		return ClassKeyword
	case tt.InSubCategory(chroma.LiteralString), tt.InSubCategory(chroma.LiteralNumber):
		return ClassLiteral
	case tt.InCategory(chroma.Name):
		if i+1 < len(tokens) && strings.HasPrefix(tokens[i+1].Value, "(") {
			return ClassCall
		}
	}
	return ""
}

// mergeAdjacent joins touching spans of the same class.
func mergeAdjacent(spans []span) []span {
	if len(spans) < 2 {
		return spans
	}
	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if last.class == s.class && last.end == s.start {
			last.end = s.end
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// apply escapes raw and wraps the given ordered, non-overlapping spans.
func apply(raw string, spans []span) string {
	var b strings.Builder
	b.Grow(len(raw) + len(spans)*32)

	pos := 0
	for _, s := range spans {
		b.WriteString(escape(raw[pos:s.start]))
		b.WriteString(startTag(s.class))
		b.WriteString(escape(raw[s.start:s.end]))
		b.WriteString(endTag)
		pos = s.end
	}
	b.WriteString(escape(raw[pos:]))
	return b.String()
}

// annotateDiff wraps added and removed lines of already-annotated code.
func annotateDiff(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = startTag(ClassDiffAdd) + line + endTag
		case strings.HasPrefix(line, "-"):
			lines[i] = startTag(ClassDiffRemove) + line + endTag
		}
	}
	return strings.Join(lines, "\n")
}

func startTag(class string) string {
	return `<span class="` + class + `">`
}

var (
	escaper   = strings.NewReplacer("<", "&lt;", ">", "&gt;")
	unescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">")
)

func escape(s string) string   { return escaper.Replace(s) }
func unescape(s string) string { return unescaper.Replace(s) }
