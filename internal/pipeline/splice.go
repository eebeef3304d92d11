package pipeline

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// edit replaces s[start:end] with repl. Offsets are byte offsets into the
// string the edit was planned against.
type edit struct {
	start, end int
	repl       string
}

// applyEdits rewrites s in one left-to-right pass. Edits must be sorted by
// start and must not overlap.
func applyEdits(s string, edits []edit) string {
	if len(edits) == 0 {
		return s
	}

	size := len(s)
	for _, e := range edits {
		size += len(e.repl) - (e.end - e.start)
	}

	var b strings.Builder
	b.Grow(size)
	pos := 0
	for _, e := range edits {
		b.WriteString(s[pos:e.start])
		b.WriteString(e.repl)
		pos = e.end
	}
	b.WriteString(s[pos:])
	return b.String()
}

// runeIndex maps byte offsets of a UTF-8 string to character positions.
type runeIndex struct {
	runes   []rune
	offsets []int // byte offset of runes[i]
}

func newRuneIndex(s string) *runeIndex {
	n := utf8.RuneCountInString(s)
	ri := &runeIndex{
		runes:   make([]rune, 0, n),
		offsets: make([]int, 0, n),
	}
	for off, r := range s {
		ri.runes = append(ri.runes, r)
		ri.offsets = append(ri.offsets, off)
	}
	return ri
}

// charIndex returns the character position of the rune starting at byte
// offset off. An offset equal to the string length maps to the rune count.
func (ri *runeIndex) charIndex(off int) int {
	return sort.SearchInts(ri.offsets, off)
}

// at returns the rune at character position i.
func (ri *runeIndex) at(i int) (rune, bool) {
	if i < 0 || i >= len(ri.runes) {
		return 0, false
	}
	return ri.runes[i], true
}
