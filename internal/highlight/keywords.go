package highlight

import "strings"

type keywordSet map[string]struct{}

func newKeywordSet(lists ...string) keywordSet {
	set := make(keywordSet)
	for _, list := range lists {
		for _, w := range strings.Fields(list) {
			set[w] = struct{}{}
		}
	}
	return set
}

func (k keywordSet) has(word string) bool {
	_, ok := k[word]
	return ok
}

const (
	cppKeywords = `alignas alignof and and_eq asm atomic_cancel atomic_commit
atomic_noexcept auto bitand bitor bool break case catch char char8_t char16_t
char32_t class compl concept const consteval constexpr const_cast continue
co_await co_return co_yield decltype default delete do double dynamic_cast
else enum explicit export extern false float for friend goto if inline int
long mutable namespace new noexcept not not_eq nullptr operator or or_eq
private protected public register reinterpret_cast requires return short
signed sizeof static static_assert static_cast struct switch template this
thread_local throw true try typedef typeid typename union unsigned using
virtual void volatile wchar_t while xor xor_eq
define undef include ifdef ifndef elif endif error pragma line warning
region endregion`

	rustKeywords = `as break const continue crate else enum extern false fn for
if impl in let loop match mod move mut pub ref return self Self static struct
super trait true type unsafe use where while async await dyn`

	javascriptKeywords = `await break case catch class const continue debugger
default delete do else enum export extends false finally for function if
import in instanceof let new null return super switch this throw true try
typeof var void while with yield`

	pythonKeywords = `False None True and as assert async await break class
continue def del elif else except finally for from global if import in is
lambda nonlocal not or pass raise return try while with yield`
)

var (
	cppSet        = newKeywordSet(cppKeywords)
	rustSet       = newKeywordSet(rustKeywords)
	javascriptSet = newKeywordSet(javascriptKeywords)
	pythonSet     = newKeywordSet(pythonKeywords)
	unionSet      = newKeywordSet(cppKeywords, rustKeywords, javascriptKeywords, pythonKeywords)
)

// keywordsFor returns the keyword set for a normalized language name.
func keywordsFor(lang string) keywordSet {
	switch lang {
	case "c", "cpp":
		return cppSet
	case "rust":
		return rustSet
	case "javascript":
		return javascriptSet
	case "python":
		return pythonSet
	default:
		return unionSet
	}
}

// commentSyntax describes line and block comment markers.
type commentSyntax struct {
	line       []string
	blockStart string
	blockEnd   string
}

func commentsFor(lang string) commentSyntax {
	if lang == "python" {
		return commentSyntax{line: []string{"#"}, blockStart: "'''", blockEnd: "'''"}
	}
	return commentSyntax{line: []string{"//"}, blockStart: "/*", blockEnd: "*/"}
}
