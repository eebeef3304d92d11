// Package frontmatter extracts a leading YAML block delimited by "---" lines.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Delimiter opens and closes a front matter block.
const Delimiter = "---"

// ErrInvalid indicates a delimited block that is not a YAML mapping.
var ErrInvalid = errors.New("invalid front matter")

// Meta holds the decoded front matter variables.
type Meta map[string]any

// String returns a scalar variable formatted as text.
func (m Meta) String(key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}
	switch v := v.(type) {
	case string:
		return v, true
	case []any, map[string]any:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}

// Strings returns a list variable. A scalar is returned as a one-element list.
func (m Meta) Strings(key string) []string {
	switch v := m[key].(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		if s, ok := m.String(key); ok {
			return []string{s}
		}
		return nil
	}
}

// Title returns the "title" variable, or "" when absent.
func (m Meta) Title() string {
	s, _ := m.String("title")
	return strings.TrimSpace(s)
}

// Split separates a front matter block from the body. The first non-blank
// line must be the delimiter and a later line must be exactly the
// delimiter; otherwise ok is false and body is doc unchanged.
func Split(doc string) (block, body string, ok bool) {
	lines := strings.Split(doc, "\n")

	open := -1
	for i, line := range lines {
		trimmed := strings.TrimRight(line, " \t\r")
		if trimmed == "" {
			continue
		}
		if trimmed != Delimiter {
			return "", doc, false
		}
		open = i
		break
	}
	if open < 0 {
		return "", doc, false
	}

	for i := open + 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t\r") == Delimiter {
			block = strings.Join(lines[open+1:i], "\n")
			body = strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\r\n")
			return block, body, true
		}
	}
	return "", doc, false
}

// Parse splits doc and decodes its front matter. Without a block, or with a
// non-blank block that holds no keys, it returns a nil Meta and doc unchanged. A block that fails to decode returns
// ErrInvalid together with doc unchanged, so callers may carry on with it.
func Parse(doc string) (Meta, string, error) {
	block, body, ok := Split(doc)
	if !ok {
		return nil, doc, nil
	}
	if strings.TrimSpace(block) == "" {
		return Meta{}, body, nil
	}

	var meta Meta
	if err := yamlutil.Unmarshal([]byte(block), &meta); err != nil {
		return nil, doc, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(meta) == 0 {
		// only comments, such as a "# Heading" between two rules
		return nil, doc, nil
	}
	return meta, body, nil
}
