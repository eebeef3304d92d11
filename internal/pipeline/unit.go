package pipeline

import (
	"fmt"
	"strconv"
)

// Kind identifies the Markdown construct a parse unit holds.
type Kind int

// Unit kinds.
const (
	KindText Kind = iota
	KindHeader
	KindList
	KindImage
	KindLatex
	KindCode
	KindBlockquote
	KindHorizontalLine
	KindLocalLink
	KindRawText
)

var kindNames = [...]string{
	KindText:           "text",
	KindHeader:         "header",
	KindList:           "list",
	KindImage:          "image",
	KindLatex:          "latex",
	KindCode:           "code",
	KindBlockquote:     "blockquote",
	KindHorizontalLine: "horizontal-line",
	KindLocalLink:      "local-link",
	KindRawText:        "raw-text",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Multiline reports whether units of this kind may span several lines.
func (k Kind) Multiline() bool {
	switch k {
	case KindList, KindLatex, KindCode, KindBlockquote:
		return true
	default:
		return false
	}
}

// UnitType is the type of a parse unit. Level is 1..6 for headers and
// zero for every other kind.
type UnitType struct {
	Kind  Kind
	Level int
}

// Header returns the header unit type for the given level.
func Header(level int) UnitType {
	return UnitType{Kind: KindHeader, Level: level}
}

func (t UnitType) String() string {
	if t.Kind == KindHeader {
		return fmt.Sprintf("header(%d)", t.Level)
	}
	return t.Kind.String()
}

// ParseUnit is a contiguous run of document lines. It shares the backing
// array of the line slice passed to Segment and must not be modified.
type ParseUnit []string

// Diagnostic is a non-fatal problem found while segmenting or rendering.
// Unit is the index of the affected parse unit.
type Diagnostic struct {
	Unit    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("unit %d: %s", d.Unit, d.Message)
}

// ParseContext is the result of segmenting a document. Units and Types
// are parallel slices of equal length.
type ParseContext struct {
	Units       []ParseUnit
	Types       []UnitType
	Title       string
	Diagnostics []Diagnostic
}

// Len returns the number of parse units.
func (pc *ParseContext) Len() int {
	return len(pc.Units)
}

func (pc *ParseContext) emit(unit ParseUnit, typ UnitType) {
	pc.Units = append(pc.Units, unit)
	pc.Types = append(pc.Types, typ)
}

func (pc *ParseContext) diagnose(unit int, format string, args ...any) {
	pc.Diagnostics = append(pc.Diagnostics, Diagnostic{Unit: unit, Message: fmt.Sprintf(format, args...)})
}
