package pipeline

import (
	"regexp"
	"strings"
	"unicode"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitLines breaks a document into the lines Segment consumes: line
// endings are normalized, trailing whitespace is trimmed and blank lines
// are dropped.
func SplitLines(doc string) []string {
	raw := strings.Split(normalizeLineEndings(doc), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimRightFunc(line, unicode.IsSpace))
	}
	return lines
}

type scanMode int

const (
	modeIdle scanMode = iota
	modeList
	modeBlockquote
	modeLatex
	modeCode
)

// scanState is the segmenter state between two lines. start is the index
// of the line that opened the current multi-line unit.
type scanState struct {
	mode  scanMode
	start int
}

func (s scanState) unitType() UnitType {
	switch s.mode {
	case modeList:
		return UnitType{Kind: KindList}
	case modeBlockquote:
		return UnitType{Kind: KindBlockquote}
	case modeLatex:
		return UnitType{Kind: KindLatex}
	default:
		return UnitType{Kind: KindCode}
	}
}

// fenced reports whether the open unit only ends at a closing delimiter.
func (s scanState) fenced() bool {
	return s.mode == modeLatex || s.mode == modeCode
}

// continues reports whether line extends an open list or block quote.
func (s scanState) continues(line string) bool {
	switch s.mode {
	case modeList:
		return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "- ")
	case modeBlockquote:
		return strings.HasPrefix(line, ">")
	default:
		return false
	}
}

// closes reports whether line is the closing delimiter of an open fence.
func (s scanState) closes(line string) bool {
	switch s.mode {
	case modeLatex:
		return strings.HasPrefix(line, "$$")
	case modeCode:
		return strings.HasPrefix(line, "```")
	default:
		return false
	}
}

// Multi-line openers in priority order.
var openers = []struct {
	prefix string
	mode   scanMode
}{
	{"- ", modeList},
	{"$$", modeLatex},
	{"```", modeCode},
	{">", modeBlockquote},
}

func openMode(line string) scanMode {
	for _, o := range openers {
		if strings.HasPrefix(line, o.prefix) {
			return o.mode
		}
	}
	return modeIdle
}

// classifyLine returns the type of a line that opens no multi-line unit.
func classifyLine(line string) UnitType {
	if level := headerLevel(line); level > 0 {
		return Header(level)
	}
	switch {
	case strings.HasPrefix(line, "![["):
		return UnitType{Kind: KindLocalLink}
	case strings.HasPrefix(line, "!["):
		return UnitType{Kind: KindImage}
	case strings.HasPrefix(line, "---"):
		return UnitType{Kind: KindHorizontalLine}
	case strings.HasPrefix(line, "<"):
		return UnitType{Kind: KindRawText}
	default:
		return UnitType{Kind: KindText}
	}
}

// headerLevel returns 1..6 when line starts with that many '#' followed by
// a space, and 0 otherwise.
func headerLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}

// headerText strips the leading '#' markers and surrounding whitespace.
func headerText(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}

// Segment partitions lines into parse units in a single left-to-right scan.
//
// Lists and block quotes run while their continuation prefix matches; the
// first non-matching line is then classified afresh. LaTeX and code blocks
// run up to and including their closing delimiter. Blocks still open at the
// end of input are closed there; for LaTeX and code blocks this also
// records a diagnostic.
//
// Every level-1 header after the first is demoted to level 2. The text of
// the first level-1 header becomes the context title.
func Segment(lines []string) *ParseContext {
	pc := &ParseContext{
		Units: make([]ParseUnit, 0, len(lines)),
		Types: make([]UnitType, 0, len(lines)),
	}

	var st scanState
	for i, line := range lines {
		if st.mode != modeIdle {
			if st.fenced() {
				if st.closes(line) {
					pc.emit(ParseUnit(lines[st.start:i+1]), st.unitType())
					st = scanState{}
				}
				continue
			}
			if st.continues(line) {
				continue
			}
			pc.emit(ParseUnit(lines[st.start:i]), st.unitType())
			st = scanState{}
		}

		if mode := openMode(line); mode != modeIdle {
			st = scanState{mode: mode, start: i}
			continue
		}

		typ := classifyLine(line)
		if typ.Kind == KindHeader && typ.Level == 1 && pc.Title == "" {
			pc.Title = headerText(line)
		}
		pc.emit(ParseUnit(lines[i:i+1]), typ)
	}

	if st.mode != modeIdle {
		pc.emit(ParseUnit(lines[st.start:]), st.unitType())
		if st.fenced() {
			pc.diagnose(pc.Len()-1, "unterminated %s block opened by %q", st.unitType(), lines[st.start])
		}
	}

	demoteHeaders(pc)
	return pc
}

// demoteHeaders keeps the first level-1 header and turns every later one
// into a level-2 header.
func demoteHeaders(pc *ParseContext) {
	seen := false
	for i, typ := range pc.Types {
		if typ.Kind != KindHeader || typ.Level != 1 {
			continue
		}
		if seen {
			pc.Types[i].Level = 2
		}
		seen = true
	}
}
