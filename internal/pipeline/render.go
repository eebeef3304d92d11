package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shurcooL/sanitized_anchor_name"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-md2html/internal/highlight"
	"github.com/alnah/go-md2html/internal/templates"
)

// ErrMalformedUnit indicates a parse unit whose shape does not match its type.
var ErrMalformedUnit = errors.New("malformed parse unit")

const codeFence = "```"

// RenderUnit renders one parse unit to an HTML fragment.
// It returns ErrMalformedUnit when the unit breaks the shape its type
// requires (line count, image syntax, code fence).
func RenderUnit(u ParseUnit, t UnitType, s *templates.Store) (string, error) {
	if len(u) == 0 {
		return "", fmt.Errorf("%w: empty %s unit", ErrMalformedUnit, t)
	}

	switch t.Kind {
	case KindHeader:
		return renderHeader(u, t, s)
	case KindText:
		line, err := singleLine(u, t)
		if err != nil {
			return "", err
		}
		return s.Paragraph(FormatInline(strings.TrimSpace(line), s)), nil
	case KindList:
		return renderList(u, s), nil
	case KindBlockquote:
		return renderBlockquote(u, s), nil
	case KindImage:
		return renderImage(u, t, s)
	case KindLocalLink:
		line, err := singleLine(u, t)
		if err != nil {
			return "", err
		}
		return errorFragment(s, strings.TrimSpace(line)), nil
	case KindLatex:
		return s.Latex(strings.Join(u, "\n")), nil
	case KindCode:
		return renderCode(u, s)
	case KindHorizontalLine:
		if _, err := singleLine(u, t); err != nil {
			return "", err
		}
		return s.HorizontalLine(), nil
	case KindRawText:
		line, err := singleLine(u, t)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	default:
		return "", fmt.Errorf("%w: unknown unit type %s", ErrMalformedUnit, t)
	}
}

func singleLine(u ParseUnit, t UnitType) (string, error) {
	if len(u) != 1 {
		return "", fmt.Errorf("%w: %s unit has %d lines, want 1", ErrMalformedUnit, t, len(u))
	}
	return u[0], nil
}

// errorFragment renders text, HTML-escaped, with the error template.
func errorFragment(s *templates.Store, text string) string {
	return s.Error(string(util.EscapeHTML([]byte(text))))
}

func renderHeader(u ParseUnit, t UnitType, s *templates.Store) (string, error) {
	line, err := singleLine(u, t)
	if err != nil {
		return "", err
	}
	if t.Level < 1 || t.Level > templates.MaxHeaderLevel {
		return "", fmt.Errorf("%w: header level %d", ErrMalformedUnit, t.Level)
	}

	text := headerText(line)
	id := sanitized_anchor_name.Create(text)
	return s.Header(t.Level, id, FormatInline(text, s)), nil
}

func renderList(u ParseUnit, s *templates.Store) string {
	var items strings.Builder
	for _, line := range u {
		text := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-"))
		items.WriteString(s.ListItem(FormatInline(text, s)))
	}
	return s.List(items.String())
}

func renderBlockquote(u ParseUnit, s *templates.Store) string {
	lines := make([]string, len(u))
	for i, line := range u {
		text := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), ">"))
		lines[i] = FormatInline(text, s)
	}
	return s.Blockquote(strings.Join(lines, "\n"))
}

// renderImage renders a line of the form ![caption](src).
func renderImage(u ParseUnit, t UnitType, s *templates.Store) (string, error) {
	line, err := singleLine(u, t)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(line)
	sep := strings.Index(text, "](")
	if !strings.HasPrefix(text, "![") || sep < 0 || !strings.HasSuffix(text, ")") {
		return "", fmt.Errorf("%w: image %q is not of the form ![caption](src)", ErrMalformedUnit, text)
	}

	caption := FormatInline(text[2:sep], s)
	src := escapeURL(text[sep+2 : len(text)-1])
	return s.Image(src, caption), nil
}

// renderCode renders a fenced code block. The opening fence carries the
// language tag. A block closed at end of input has no closing fence, and
// every line after the opening one is code.
func renderCode(u ParseUnit, s *templates.Store) (string, error) {
	if !strings.HasPrefix(u[0], codeFence) {
		return "", fmt.Errorf("%w: code unit does not start with a fence", ErrMalformedUnit)
	}

	body := u[1:]
	if len(u) >= 2 && strings.HasPrefix(u[len(u)-1], codeFence) {
		body = u[1 : len(u)-1]
	}

	tag := strings.TrimSpace(strings.TrimLeft(u[0], "`"))
	lang, code := highlight.Highlight(tag, escapeHTML(strings.Join(body, "\n")))
	return s.Code(lang, code), nil
}
