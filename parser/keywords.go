package parser

// This file centralizes the language's canonical opener / closer alias
// table, the way the teacher centralizes its keyword table in
// lexer/token.go's KEYWORDS_MAP. Every statement handler below consults
// only these sets rather than re-deriving its own list of synonyms, so
// the alias surface lives in exactly one place.

// openerWords is the full leading-word corpus (canonical spellings and
// every alias) used for the fuzzy "did you mean" suggestion when a
// line's leading word matches no known opener.
var openerWords = []string{
	"set", "let", "put",
	"say", "print", "show",
	"ask",
	"add", "increase",
	"subtract", "decrease",
	"multiply", "divide",
	"create", "make",
	"remove", "take",
	"if", "when",
	"otherwise",
	"repeat", "do", "while",
	"for",
	"define", "function",
	"return", "give",
	"call", "run",
	"stop", "break",
	"skip", "next",
}

// closerSet holds fixed, variable-free closer lines; each is matched by
// exact text equality against the trimmed statement.
type closerSet map[string]bool

func newCloserSet(phrases ...string) closerSet {
	s := make(closerSet, len(phrases))
	for _, p := range phrases {
		s[p] = true
	}
	return s
}

func (c closerSet) has(line string) bool { return c[line] }

var (
	ifTrailingCloser     = newCloserSet("end if", "finish if")
	repeatTrailingCloser = newCloserSet("end repeat", "finish repeat")
	forTrailingCloser    = newCloserSet("end for", "finish for")
	defineTrailingCloser = newCloserSet("end define", "end function", "finish function")
)

// otherwiseExact matches a bare `otherwise`/`else` branch opener (no
// trailing condition).
var otherwiseExact = newCloserSet("otherwise", "else")

// otherwiseIfPrefixes are the two phrasings of an `otherwise if`
// continuation; both require a trailing " then" and a condition in
// between, so they are matched by prefix rather than exact text.
var otherwiseIfPrefixes = []string{"otherwise if ", "or if "}

// ifTerminators reports whether line (already trimmed) closes or
// continues an if-chain: `otherwise if ... then`, `otherwise`/`else`,
// or `end if`/`finish if`.
func ifTerminators(line string) bool {
	if ifTrailingCloser.has(line) || otherwiseExact.has(line) {
		return true
	}
	for _, p := range otherwiseIfPrefixes {
		if hasPrefixWord(line, p) {
			return true
		}
	}
	return false
}
