package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLex_ClassifiesLines(t *testing.T) {
	src := "set x to 10\n# a comment\n\nsay x\n"
	toks, err := Lex(src)
	assert.NoError(t, err)
	assert.Equal(t, []Token{
		{Line: 1, Kind: STATEMENT, Text: "set x to 10"},
		{Line: 2, Kind: COMMENT, Text: "# a comment"},
		{Line: 3, Kind: BLANK},
		{Line: 4, Kind: STATEMENT, Text: "say x"},
	}, toks)
}

func TestLex_TrimsWhitespace(t *testing.T) {
	toks, err := Lex("   say   x   \n")
	assert.NoError(t, err)
	assert.Equal(t, "say   x", toks[0].Text)
}

func TestLex_StripsLeadingBOM(t *testing.T) {
	toks, err := Lex(bom + "say 1\n")
	assert.NoError(t, err)
	assert.Equal(t, STATEMENT, toks[0].Kind)
	assert.Equal(t, "say 1", toks[0].Text)
}

func TestLex_RejectsEmbeddedNull(t *testing.T) {
	_, err := Lex("say 1\nsay\x002\n")
	assert.Error(t, err)
	var lexErr *LexicalError
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 2, lexErr.Line)
}

func TestLex_EmptySource(t *testing.T) {
	toks, err := Lex("")
	assert.NoError(t, err)
	assert.Empty(t, toks)
}

func TestLex_NoTrailingSyntheticLine(t *testing.T) {
	toks, err := Lex("say 1\n")
	assert.NoError(t, err)
	assert.Len(t, toks, 1)
}

func TestLex_TolerantOfCRLF(t *testing.T) {
	toks, err := Lex("say 1\r\nsay 2\r\n")
	assert.NoError(t, err)
	assert.Equal(t, "say 1", toks[0].Text)
	assert.Equal(t, "say 2", toks[1].Text)
}
