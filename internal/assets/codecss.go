package assets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2html/internal/highlight"
)

// codeTokens maps highlight classes to the chroma token whose style they take.
var codeTokens = map[string]chroma.TokenType{
	highlight.ClassKeyword:    chroma.Keyword,
	highlight.ClassLiteral:    chroma.LiteralString,
	highlight.ClassComment:    chroma.Comment,
	highlight.ClassCall:       chroma.NameFunction,
	highlight.ClassDiffAdd:    chroma.GenericInserted,
	highlight.ClassDiffRemove: chroma.GenericDeleted,
}

// CodeStyles lists the chroma style names accepted by CodeCSS, sorted.
func CodeStyles() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}

// CodeCSS returns CSS rules for the code block and every highlight class,
// using the colours of the named chroma style.
func CodeCSS(name string) (string, error) {
	style, ok := styles.Registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrCodeStyleNotFound, name)
	}

	var b strings.Builder
	writeRule(&b, "pre code", style.Get(chroma.Background), true)
	for _, class := range highlight.Classes() {
		writeRule(&b, "."+class, style.Get(codeTokens[class]), false)
	}
	return b.String(), nil
}

func writeRule(b *strings.Builder, selector string, entry chroma.StyleEntry, background bool) {
	var decls []string
	if entry.Colour.IsSet() {
		decls = append(decls, "color: "+entry.Colour.String())
	}
	if background && entry.Background.IsSet() {
		decls = append(decls, "background-color: "+entry.Background.String())
	}
	if entry.Bold == chroma.Yes {
		decls = append(decls, "font-weight: bold")
	}
	if entry.Italic == chroma.Yes {
		decls = append(decls, "font-style: italic")
	}
	if len(decls) == 0 {
		return
	}
	fmt.Fprintf(b, "%s { %s; }\n", selector, strings.Join(decls, "; "))
}
