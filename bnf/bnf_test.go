package bnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leftrec/leftrec"
	"github.com/leftrec/leftrec/grammar"
)

func requireErrCode(t *testing.T, code int, e error) {
	t.Helper()
	require.Error(t, e)
	le, ok := e.(*leftrec.Error)
	require.True(t, ok, "expected *leftrec.Error, got %T", e)
	require.Equal(t, code, le.Code, "unexpected error code for %q", le.Message)
}

func derivationTexts(r grammar.Rule) [][]string {
	result := make([][]string, 0, len(r.Derivations()))
	for _, p := range r.Derivations() {
		texts := make([]string, 0, len(p.Symbols()))
		for _, s := range p.Symbols() {
			texts = append(texts, s.Text())
		}
		result = append(result, texts)
	}
	return result
}

func TestParse(t *testing.T) {
	g, e := ParseString("test", "<A> := <B> x | y\n<B> := z\n")
	require.NoError(t, e)

	rules := g.Rules()
	require.Len(t, rules, 2)

	assert.Equal(t, "<A>", rules[0].Symbol().Text())
	assert.Equal(t, [][]string{{"<B>", "x"}, {"y"}}, derivationTexts(rules[0]))

	assert.Equal(t, "<B>", rules[1].Symbol().Text())
	assert.Equal(t, [][]string{{"z"}}, derivationTexts(rules[1]))
}

func TestParseQuotedSymbol(t *testing.T) {
	g, e := ParseString("test", `<ALTERNAT> := "|" <LOW> | EmptyString`+"\n<LOW> := x\n")
	require.NoError(t, e)

	rules := g.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, [][]string{{"|", "<LOW>"}, {"EmptyString"}}, derivationTexts(rules[0]))
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	content := "# heading comment\n\n<A> := x\n   \n# trailing comment\n"
	g, e := ParseString("test", content)
	require.NoError(t, e)
	require.Len(t, g.Rules(), 1)
}

func TestParseErrors(t *testing.T) {
	samples := []struct {
		name    string
		content string
		code    int
	}{
		{"no definition op", "<A> x y", MissingDefinitionError},
		{"definition only", "<A> :=", MissingDefinitionError},
		{"wrong op", "<A> = x", MissingDefinitionError},
		{"trailing separator", "<A> := x |", EmptyAlternativeError},
		{"leading separator", "<A> := | x", EmptyAlternativeError},
		{"double separator", "<A> := x | | y", EmptyAlternativeError},
		{"unterminated string", `<A> := "x`, UnterminatedStringError},
		{"lone quote", `<A> := "`, UnterminatedStringError},
		{"redefined non-terminal", "<A> := x\n<A> := y", NonTerminalDefinedError},
		{"empty input", "\n# only a comment\n", NoRulesError},
		{"terminal LHS", "x := y", grammar.InvalidRuleError},
		{"empty quoted symbol", `<A> := ""`, grammar.InvalidSymbolError},
	}

	for _, sample := range samples {
		t.Run(sample.name, func(t *testing.T) {
			_, e := ParseString("test", sample.content)
			requireErrCode(t, sample.code, e)
		})
	}
}

func TestParseErrorLine(t *testing.T) {
	_, e := ParseString("rules.bnf", "<A> := x\n\n<B> y\n")
	require.Error(t, e)
	le, ok := e.(*leftrec.Error)
	require.True(t, ok)
	assert.Equal(t, "rules.bnf", le.SourceName)
	assert.Equal(t, 3, le.Line)
}

func TestParsedGrammarAnalysis(t *testing.T) {
	g, e := ParseString("indirect", "<A> := <B> x\n<B> := <A> y\n")
	require.NoError(t, e)

	recursive, e := g.HasLeftRecursion()
	require.NoError(t, e)
	assert.True(t, recursive)

	g, e = ParseString("regex", regexContent)
	require.NoError(t, e)

	recursive, e = g.HasLeftRecursion()
	require.NoError(t, e)
	assert.False(t, recursive)
}

const regexContent = `
# Regular expression grammar with explicit precedence levels.
<REGEX>           := <LOW_PRECEDENCE>
<LOW_PRECEDENCE>  := <MED_PRECEDENCE> <ALTERNAT>
<ALTERNAT>        := "|" <LOW_PRECEDENCE> | EmptyString
<MED_PRECEDENCE>  := <HIGH_PRECEDENCE> <CONCAT>
<CONCAT>          := <MED_PRECEDENCE> | EmptyString
<HIGH_PRECEDENCE> := <GIGA_PRECEDENCE> <KLEENE>
<KLEENE>          := * | EmptyString
<GIGA_PRECEDENCE> := ( <LOW_PRECEDENCE> ) | <TERMINAL>
<TERMINAL>        := EmptySet | EmptyString | C
`
