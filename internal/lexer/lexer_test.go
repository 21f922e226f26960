package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenize returns all tokens except the trailing EOF.
func tokenize(input string) []Token {
	toks := New(input).Tokenize()
	return toks[:len(toks)-1]
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"x", IDENTIFIER},
		{"my_var", IDENTIFIER},
		{"_private", IDENTIFIER},
		{"value2", IDENTIFIER},
		{"let", KEYWORD},
		{"foreach", KEYWORD},
		{"class", KEYWORD},
		{"True", BOOLEAN},
		{"False", BOOLEAN},
		{"Truely", IDENTIFIER},
		{"letter", IDENTIFIER},
	}
	for _, tt := range tests {
		toks := tokenize(tt.input)
		require.Len(t, toks, 1, "input %q", tt.input)
		assert.Equal(t, tt.expected, toks[0].Type, "input %q", tt.input)
		assert.Equal(t, tt.input, toks[0].Literal, "input %q", tt.input)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"0", "0"},
		{"42", "42"},
		{"3.14", "3.14"},
		{"10.0", "10.0"},
	}
	for _, tt := range tests {
		toks := tokenize(tt.input)
		require.Len(t, toks, 1)
		assert.Equal(t, NUMBER, toks[0].Type)
		assert.Equal(t, tt.literal, toks[0].Literal)
	}
}

func TestNegativeNumbers(t *testing.T) {
	// a '-' directly before digits starts a negative literal unless the
	// previous token could end an expression
	toks := tokenize("let x = -5")
	require.Len(t, toks, 4)
	assert.Equal(t, NUMBER, toks[3].Type)
	assert.Equal(t, "-5", toks[3].Literal)

	// after an identifier the '-' is not a sign; the stray minus is
	// skipped like any other unmatched character
	toks = tokenize("x -5")
	require.Len(t, toks, 2)
	assert.Equal(t, IDENTIFIER, toks[0].Type)
	assert.Equal(t, NUMBER, toks[1].Type)
	assert.Equal(t, "5", toks[1].Literal)

	toks = tokenize("repeat -3")
	require.Len(t, toks, 2)
	assert.Equal(t, "-3", toks[1].Literal)
}

func TestMalformedNumber(t *testing.T) {
	toks := tokenize("1.2.3")
	require.Len(t, toks, 1)
	assert.Equal(t, ILLEGAL, toks[0].Type)
	assert.Contains(t, toks[0].Literal, "malformed number")
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"a b c"`, "a b c"},
		{`"tab\there"`, `tab\there`},       // raw content is preserved
		{`"say \"hi\""`, `say "hi"`},       // escaped quotes do not terminate
		{`"emoji 🚀"`, "emoji 🚀"},
	}
	for _, tt := range tests {
		toks := tokenize(tt.input)
		require.Len(t, toks, 1, "input %q", tt.input)
		assert.Equal(t, STRING, toks[0].Type)
		assert.Equal(t, tt.expected, toks[0].Literal, "input %q", tt.input)
	}
}

func TestUnterminatedString(t *testing.T) {
	toks := tokenize(`"oops`)
	require.Len(t, toks, 1)
	assert.Equal(t, ILLEGAL, toks[0].Type)
	assert.Contains(t, toks[0].Literal, "unterminated string")
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"==", LOGIC},
		{"!=", LOGIC},
		{"<=", LOGIC},
		{">=", LOGIC},
		{"<", LOGIC},
		{">", LOGIC},
		{"=", ASSIGNMENT},
		{"+=", ARITHMETIC_ASSIGNMENT},
		{"-=", ARITHMETIC_ASSIGNMENT},
		{"*=", ARITHMETIC_ASSIGNMENT},
		{"/=", ARITHMETIC_ASSIGNMENT},
		{"//=", ARITHMETIC_ASSIGNMENT},
		{"%=", ARITHMETIC_ASSIGNMENT},
		{"^=", ARITHMETIC_ASSIGNMENT},
		{"++", CREMENTATION},
		{"--", CREMENTATION},
		{"->", RETURN_OPERATOR},
		{",", COMMA},
		{".", PERIOD},
		{";", SEMICOLON},
		{":", COLON},
		{"$", DOLLAR},
	}
	for _, tt := range tests {
		toks := tokenize(tt.input)
		require.Len(t, toks, 1, "input %q", tt.input)
		assert.Equal(t, tt.expected, toks[0].Type, "input %q", tt.input)
		assert.Equal(t, tt.input, toks[0].Literal, "input %q", tt.input)
	}
}

func TestLongestMatch(t *testing.T) {
	toks := tokenize("x //= 2")
	require.Len(t, toks, 3)
	assert.Equal(t, "//=", toks[1].Literal)

	toks = tokenize("a <= b")
	require.Len(t, toks, 3)
	assert.Equal(t, "<=", toks[1].Literal)
}

func TestBrackets(t *testing.T) {
	toks := tokenize("()[]{}")
	require.Len(t, toks, 6)
	expected := []struct {
		tt  TokenType
		lit string
	}{
		{PARENTHESIS, "("}, {PARENTHESIS, ")"},
		{SQUARE, "["}, {SQUARE, "]"},
		{CURLY, "{"}, {CURLY, "}"},
	}
	for i, e := range expected {
		assert.Equal(t, e.tt, toks[i].Type)
		assert.Equal(t, e.lit, toks[i].Literal)
	}
}

func TestModifiers(t *testing.T) {
	toks := tokenize("@class(Point)")
	require.Len(t, toks, 4)
	assert.Equal(t, MODIFIER, toks[0].Type)
	assert.Equal(t, "class", toks[0].Literal)

	toks = tokenize("@ x")
	require.Len(t, toks, 2)
	assert.Equal(t, MONKEY, toks[0].Type)
}

func TestNewlinesPreserved(t *testing.T) {
	toks := tokenize("let x = 1\nlet y = 2\n")
	newlines := 0
	for _, tok := range toks {
		if tok.Type == NEWLINE {
			newlines++
		}
	}
	assert.Equal(t, 2, newlines)
}

func TestCRLFNormalized(t *testing.T) {
	toks := tokenize("let x = 1\r\nx++\r\n")
	for _, tok := range toks {
		assert.NotEqual(t, ILLEGAL, tok.Type)
		if tok.Type == NEWLINE {
			assert.Equal(t, "\n", tok.Literal)
		}
	}
}

func TestPositions(t *testing.T) {
	toks := tokenize("let x = 1\nx++")
	require.GreaterOrEqual(t, len(toks), 6)
	assert.Equal(t, 1, toks[0].Pos.Line) // let
	// after the newline, tokens report line 2
	last := toks[len(toks)-1]
	assert.Equal(t, 2, last.Pos.Line)
}

func TestUnknownCharactersSkipped(t *testing.T) {
	toks := tokenize("let ? x = ~ 1")
	for _, tok := range toks {
		assert.NotEqual(t, ILLEGAL, tok.Type)
	}
	require.Len(t, toks, 4)
	assert.Equal(t, KEYWORD, toks[0].Type)
	assert.Equal(t, IDENTIFIER, toks[1].Type)
}

func TestStatementSequence(t *testing.T) {
	input := `let mut total = 0
total += 10`
	toks := tokenize(input)
	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{
		KEYWORD, KEYWORD, IDENTIFIER, ASSIGNMENT, NUMBER, NEWLINE,
		IDENTIFIER, ARITHMETIC_ASSIGNMENT, NUMBER,
	}, types)
}
