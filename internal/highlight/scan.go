package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanSpans is the keyword-table scanner used when chroma has no lexer for
// the language. It recognises comments, string and number literals,
// keywords, and identifiers immediately followed by '('.
func scanSpans(lang, code string) []span {
	keywords := keywordsFor(lang)
	comments := commentsFor(lang)

	var spans []span
	i := 0
	for i < len(code) {
		rest := code[i:]

		if hasAnyPrefix(rest, comments.line) {
			end := strings.IndexByte(rest, '\n')
			if end < 0 {
				spans = append(spans, span{ClassComment, i, len(code)})
				break
			}
			spans = append(spans, span{ClassComment, i, i + end})
			i += end
			continue
		}

		if comments.blockStart != "" && strings.HasPrefix(rest, comments.blockStart) {
			after := rest[len(comments.blockStart):]
			end := strings.Index(after, comments.blockEnd)
			if end < 0 {
				spans = append(spans, span{ClassComment, i, len(code)})
				break
			}
			n := len(comments.blockStart) + end + len(comments.blockEnd)
			spans = append(spans, span{ClassComment, i, i + n})
			i += n
			continue
		}

		if c := rest[0]; c == '"' || c == '\'' {
			end := strings.IndexByte(rest[1:], c)
			if end < 0 {
				spans = append(spans, span{ClassLiteral, i, len(code)})
				break
			}
			spans = append(spans, span{ClassLiteral, i, i + end + 2})
			i += end + 2
			continue
		}

		if isDigit(rest[0]) {
			n := 0
			for n < len(rest) && (isDigit(rest[n]) || rest[n] == '.') {
				n++
			}
			spans = append(spans, span{ClassLiteral, i, i + n})
			i += n
			continue
		}

		if r, _ := utf8.DecodeRuneInString(rest); isWordRune(r) {
			n := wordLen(rest)
			word := rest[:n]
			switch {
			case keywords.has(word):
				spans = append(spans, span{ClassKeyword, i, i + n})
			case strings.HasPrefix(rest[n:], "("):
				spans = append(spans, span{ClassCall, i, i + n})
			}
			i += n
			continue
		}

		_, size := utf8.DecodeRuneInString(rest)
		i += size
	}
	return spans
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wordLen returns the byte length of the identifier at the start of s.
func wordLen(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isWordRune(r) {
			break
		}
		n += size
	}
	return n
}
