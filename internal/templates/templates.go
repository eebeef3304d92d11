// Package templates holds the HTML templates used to render each Markdown
// construct. A Store is built once from built-in defaults overlaid with
// configured values and is read-only afterwards, so a single *Store can be
// shared by every rendering goroutine.
package templates

import (
	"strconv"
	"strings"
)

// Configuration tables.
const (
	TablePage = "page"
	TableTags = "tags"
)

// Template keys.
const (
	KeyPrologue       = "prologue"
	KeyEpilogue       = "epilogue"
	KeyImage          = "image"
	KeyLink           = "link"
	KeyLatex          = "latex"
	KeyCode           = "code"
	KeyCodeInline     = "code-inline"
	KeyBlockquote     = "blockquote"
	KeyHorizontalLine = "horizontal-line"
	KeyParagraph      = "paragraph"
	KeyBold           = "bold"
	KeyItalic         = "italic"
	KeyItalicBold     = "italic-bold"
	KeyBoldItalic     = "bold-italic" // alias of KeyItalicBold
	KeyStrikethrough  = "strikethrough"
	KeyHeader         = "header"
	KeyError          = "error"
	KeyList           = "list"
	KeyListItem       = "list-item"
)

// Lookup resolves a configured template by table and key.
// The boolean is false when the key is absent.
type Lookup interface {
	Lookup(table, key string) (string, bool)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(table, key string) (string, bool)

// Lookup calls f(table, key).
func (f LookupFunc) Lookup(table, key string) (string, bool) {
	return f(table, key)
}

// Store is an immutable set of templates, one per semantic element.
type Store struct {
	prologue       string
	epilogue       string
	image          string
	link           string
	latex          string
	code           string
	codeInline     string
	blockquote     string
	horizontalLine string
	paragraph      string
	bold           string
	italic         string
	italicBold     string
	strikethrough  string
	header         string
	headerLevels   [MaxHeaderLevel]string // "" = use header
	errorTmpl      string
	list           string
	listItem       string
}

// MaxHeaderLevel is the deepest header level with its own template key.
const MaxHeaderLevel = 6

// Default returns a Store holding only the built-in templates.
func Default() *Store {
	return New(nil)
}

// New builds a Store from the defaults overlaid with values from lookup.
// A nil lookup yields the defaults.
func New(lookup Lookup) *Store {
	get := func(table, key, def string) string {
		if lookup == nil {
			return def
		}
		if v, ok := lookup.Lookup(table, key); ok {
			return v
		}
		return def
	}

	s := &Store{
		prologue:       get(TablePage, KeyPrologue, DefaultPrologue),
		epilogue:       get(TablePage, KeyEpilogue, DefaultEpilogue),
		image:          get(TableTags, KeyImage, DefaultImage),
		link:           get(TableTags, KeyLink, DefaultLink),
		latex:          get(TableTags, KeyLatex, DefaultLatex),
		code:           get(TableTags, KeyCode, DefaultCode),
		codeInline:     get(TableTags, KeyCodeInline, DefaultCodeInline),
		blockquote:     get(TableTags, KeyBlockquote, DefaultBlockquote),
		horizontalLine: get(TableTags, KeyHorizontalLine, DefaultHorizontalLine),
		paragraph:      get(TableTags, KeyParagraph, DefaultParagraph),
		bold:           get(TableTags, KeyBold, DefaultBold),
		italic:         get(TableTags, KeyItalic, DefaultItalic),
		strikethrough:  get(TableTags, KeyStrikethrough, DefaultStrikethrough),
		header:         get(TableTags, KeyHeader, DefaultHeader),
		errorTmpl:      get(TableTags, KeyError, DefaultError),
		list:           get(TableTags, KeyList, DefaultList),
		listItem:       get(TableTags, KeyListItem, DefaultListItem),
	}

	// italic-bold wins over its alias when both are configured.
	s.italicBold = get(TableTags, KeyBoldItalic, DefaultItalicBold)
	s.italicBold = get(TableTags, KeyItalicBold, s.italicBold)

	for level := 1; level <= MaxHeaderLevel; level++ {
		s.headerLevels[level-1] = get(TableTags, HeaderKey(level), "")
	}

	return s
}

// HeaderKey returns the level-specific header key ("header1".."header6").
func HeaderKey(level int) string {
	return KeyHeader + strconv.Itoa(level)
}

// Keys lists every key accepted in the tags table.
func Keys() []string {
	keys := []string{
		KeyImage, KeyLink, KeyLatex, KeyCode, KeyCodeInline, KeyBlockquote,
		KeyHorizontalLine, KeyParagraph, KeyBold, KeyItalic, KeyItalicBold,
		KeyBoldItalic, KeyStrikethrough, KeyHeader, KeyError, KeyList, KeyListItem,
	}
	for level := 1; level <= MaxHeaderLevel; level++ {
		keys = append(keys, HeaderKey(level))
	}
	return keys
}

// PageKeys lists every key accepted in the page table.
func PageKeys() []string {
	return []string{KeyPrologue, KeyEpilogue}
}

// fill substitutes placeholders in one pass, so placeholder-looking text
// inside a substituted value is never expanded again.
func fill(tmpl string, oldnew ...string) string {
	return strings.NewReplacer(oldnew...).Replace(tmpl)
}

// Page wraps a rendered body with the prologue and epilogue.
func (s *Store) Page(title, body string) string {
	return fill(s.prologue, "{title}", title) + body + fill(s.epilogue, "{title}", title)
}

// Paragraph renders a paragraph.
func (s *Store) Paragraph(text string) string {
	return fill(s.paragraph, "{text}", text)
}

// Header renders a header. The level-specific template is used when one is
// configured, the generic header template otherwise.
func (s *Store) Header(level int, id, text string) string {
	tmpl := s.header
	if level >= 1 && level <= MaxHeaderLevel && s.headerLevels[level-1] != "" {
		tmpl = s.headerLevels[level-1]
	}
	return fill(tmpl, "{text}", text, "{level}", strconv.Itoa(level), "{id}", id)
}

// Blockquote renders a block quote.
func (s *Store) Blockquote(text string) string {
	return fill(s.blockquote, "{text}", text)
}

// HorizontalLine renders a horizontal rule.
func (s *Store) HorizontalLine() string {
	return s.horizontalLine
}

// Image renders an image.
func (s *Store) Image(src, caption string) string {
	return fill(s.image, "{src}", src, "{caption}", caption)
}

// Link renders a hyperlink.
func (s *Store) Link(src, caption string) string {
	return fill(s.link, "{src}", src, "{caption}", caption)
}

// Latex renders a LaTeX block.
func (s *Store) Latex(text string) string {
	return fill(s.latex, "{text}", text)
}

// Code renders a highlighted code block.
func (s *Store) Code(lang, text string) string {
	return fill(s.code, "{lang}", lang, "{text}", text)
}

// CodeInline renders an inline code span.
func (s *Store) CodeInline(text string) string {
	return fill(s.codeInline, "{text}", text)
}

// Bold renders bold text.
func (s *Store) Bold(text string) string {
	return fill(s.bold, "{text}", text)
}

// Italic renders italic text.
func (s *Store) Italic(text string) string {
	return fill(s.italic, "{text}", text)
}

// ItalicBold renders bold italic text.
func (s *Store) ItalicBold(text string) string {
	return fill(s.italicBold, "{text}", text)
}

// Strikethrough renders struck-through text.
func (s *Store) Strikethrough(text string) string {
	return fill(s.strikethrough, "{text}", text)
}

// Error renders a visible parse-error fragment.
func (s *Store) Error(text string) string {
	return fill(s.errorTmpl, "{text}", text)
}

// List wraps already-rendered list items.
func (s *Store) List(items string) string {
	return fill(s.list, "{text}", items)
}

// ListItem renders one list item.
func (s *Store) ListItem(text string) string {
	return fill(s.listItem, "{text}", text)
}
