package pipeline

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-md2html/internal/templates"
)

var htmlEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// escapeHTML escapes angle brackets. Ampersands are left alone so entities
// already present in the source pass through unchanged.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// escapeURL percent-encodes characters that are not valid in a URL.
func escapeURL(s string) string {
	return string(util.URLEscape([]byte(s), false))
}

// delimiter is a symmetric inline marker such as ** or `.
type delimiter struct {
	marker string
	// identifier-boundary rule: ignore markers touching a word character
	// on their outer side.
	boundary bool
	render   func(*templates.Store, string) string
}

// Inline passes in the order they run. Longer markers come first so that
// *** is not read as ** followed by *.
var delimiters = []delimiter{
	{marker: "***", render: (*templates.Store).ItalicBold},
	{marker: "___", boundary: true, render: (*templates.Store).ItalicBold},
	{marker: "**", render: (*templates.Store).Bold},
	{marker: "__", boundary: true, render: (*templates.Store).Bold},
	{marker: "*", render: (*templates.Store).Italic},
	{marker: "_", boundary: true, render: (*templates.Store).Italic},
	{marker: "`", render: (*templates.Store).CodeInline},
	{marker: "~~", render: (*templates.Store).Strikethrough},
}

// FormatInline converts the inline markup of a single line to HTML.
//
// Angle brackets are escaped first. Delimiter pairs are then resolved one
// marker at a time, pairing accepted occurrences left to right; an odd
// trailing occurrence stays literal. Links of the form [caption](target)
// are resolved last.
func FormatInline(text string, s *templates.Store) string {
	text = escapeHTML(text)
	for _, d := range delimiters {
		text = d.apply(text, s)
	}
	return formatLinks(text, s)
}

func (d delimiter) apply(text string, s *templates.Store) string {
	found := d.occurrences(text)
	if len(found) < 2 {
		return text
	}

	n := len(d.marker)
	edits := make([]edit, 0, len(found)/2)
	for i := 0; i+1 < len(found); i += 2 {
		open, closing := found[i], found[i+1]
		edits = append(edits, edit{
			start: open,
			end:   closing + n,
			repl:  d.render(s, text[open+n:closing]),
		})
	}
	return applyEdits(text, edits)
}

// occurrences returns the byte offsets of the accepted, non-overlapping
// occurrences of the marker in text.
func (d delimiter) occurrences(text string) []int {
	var (
		found  []int
		ri     *runeIndex
		opener = true
	)
	for from := 0; from < len(text); {
		j := strings.Index(text[from:], d.marker)
		if j < 0 {
			break
		}
		pos := from + j
		from = pos + len(d.marker)

		if d.boundary {
			if ri == nil {
				ri = newRuneIndex(text)
			}
			if !delimits(ri, pos, len(d.marker), opener) {
				continue
			}
		}
		found = append(found, pos)
		opener = !opener
	}
	return found
}

// delimits applies the identifier-boundary rule to the marker at byte
// offset off. An opener is checked against the character before it, a
// closer against the character after it. Markers are ASCII, so their
// length in bytes is also their length in characters.
func delimits(ri *runeIndex, off, markerLen int, opener bool) bool {
	pos := ri.charIndex(off)
	adjacent := pos + markerLen
	if opener {
		adjacent = pos - 1
	}
	r, ok := ri.at(adjacent)
	return !ok || !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

type linkState int

const (
	linkNone linkState = iota
	linkCaption
	linkCaptionEnd
	linkTarget
)

// formatLinks replaces [caption](target) with the link template.
func formatLinks(text string, s *templates.Store) string {
	var (
		state     = linkNone
		captionAt int
		targetAt  int
		edits     []edit
	)
	for i, ch := range text {
		switch state {
		case linkNone:
			if ch == '[' {
				state, captionAt = linkCaption, i
			}
		case linkCaption:
			if ch == ']' {
				state = linkCaptionEnd
			}
		case linkCaptionEnd:
			switch ch {
			case '(':
				state, targetAt = linkTarget, i
			case '[':
				state, captionAt = linkCaption, i
			default:
				state = linkNone
			}
		case linkTarget:
			if ch == ')' {
				caption := text[captionAt+1 : targetAt-1]
				target := text[targetAt+1 : i]
				edits = append(edits, edit{
					start: captionAt,
					end:   i + 1,
					repl:  s.Link(escapeURL(target), caption),
				})
				state = linkNone
			}
		}
	}
	return applyEdits(text, edits)
}
