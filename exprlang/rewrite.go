package exprlang

import "strings"

// phraseRewrite pairs a plain-English condition phrase with the
// symbolic operator text the tokenizer already understands.
// Longer, more specific phrases are listed before their prefixes (e.g.
// "is greater than or equal to" before "is greater than") so the
// longest match always wins.
type phraseRewrite struct {
	phrase string
	symbol string
}

var phraseRewrites = []phraseRewrite{
	{"is greater than or equal to", ">="},
	{"is less than or equal to", "<="},
	{"is not equal to", "!="},
	{"is equal to", "=="},
	{"is at least", ">="},
	{"is at most", "<="},
	{"is greater than", ">"},
	{"is less than", "<"},
	{"is bigger than", ">"},
	{"is smaller than", "<"},
	{"is not", "!="},
	{"equals", "=="},
	{"does not contain", "notcontains"},
}

// rewritePhrases rewrites every top-level (outside quoted strings)
// occurrence of a plain-English condition phrase to its symbolic
// operator, longest phrase first, so `score is at least 90` becomes
// `score >= 90` before tokenizing.
func rewritePhrases(s string) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '"' {
			j := i + 1
			for j < len(s) && s[j] != '"' {
				if s[j] == '\\' {
					j++
				}
				j++
			}
			if j < len(s) {
				j++
			}
			out.WriteString(s[i:j])
			i = j
			continue
		}
		if matched, symbol, n := matchPhraseAt(s, i); matched {
			out.WriteString(symbol)
			i += n
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}

func matchPhraseAt(s string, i int) (bool, string, int) {
	if i > 0 && !isWordBoundary(s[i-1]) {
		return false, "", 0
	}
	for _, pr := range phraseRewrites {
		n := len(pr.phrase)
		if i+n > len(s) {
			continue
		}
		if !strings.EqualFold(s[i:i+n], pr.phrase) {
			continue
		}
		if i+n < len(s) && !isWordBoundary(s[i+n]) {
			continue
		}
		return true, pr.symbol, n
	}
	return false, "", 0
}

func isWordBoundary(b byte) bool {
	return b == ' ' || b == '\t' || b == '(' || b == ')' || b == ',' || b == '['
}
