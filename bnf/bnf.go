package bnf

import (
	"strings"

	"github.com/leftrec/leftrec/grammar"
	"github.com/leftrec/leftrec/internal/strset"
)

const (
	defOp         = ":="
	altOp         = "|"
	commentPrefix = "#"
	quote         = `"`
)

// ParseString parses grammar description and returns a grammar on success.
// Returns nil and leftrec.Error on error.
func ParseString(name, content string) (*grammar.Grammar, error) {
	return Parse(name, []byte(content))
}

// Parse parses grammar description and returns a grammar on success.
// name is used in error messages only.
// Returns nil and leftrec.Error on error.
func Parse(name string, content []byte) (*grammar.Grammar, error) {
	rules := make([]grammar.Rule, 0)
	defined := strset.New()

	for i, line := range strings.Split(string(content), "\n") {
		lineNo := i + 1
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		rule, e := parseRule(name, lineNo, line)
		if e != nil {
			return nil, e
		}

		lhs := rule.Symbol().Text()
		if defined.Contains(lhs) {
			return nil, defNonTermError(name, lineNo, lhs)
		}
		defined.Add(lhs)
		rules = append(rules, rule)
	}

	if len(rules) == 0 {
		return nil, noRulesError(name)
	}
	return grammar.New(rules), nil
}

func parseRule(name string, line int, text string) (grammar.Rule, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 || fields[1] != defOp {
		return grammar.Rule{}, missingDefError(name, line)
	}

	derivations := make([]grammar.Production, 0, 1)
	symbols := make([]grammar.Symbol, 0, len(fields)-2)
	for _, field := range fields[2:] {
		if field == altOp {
			p, e := production(name, line, symbols)
			if e != nil {
				return grammar.Rule{}, e
			}
			derivations = append(derivations, p)
			symbols = symbols[:0]
			continue
		}

		s, e := parseSymbol(name, line, field)
		if e != nil {
			return grammar.Rule{}, e
		}
		symbols = append(symbols, s)
	}

	p, e := production(name, line, symbols)
	if e != nil {
		return grammar.Rule{}, e
	}
	derivations = append(derivations, p)

	return grammar.NewRule(fields[0], derivations)
}

func production(name string, line int, symbols []grammar.Symbol) (grammar.Production, error) {
	if len(symbols) == 0 {
		return grammar.Production{}, emptyAlternativeError(name, line)
	}
	return grammar.NewProduction(symbols)
}

func parseSymbol(name string, line int, field string) (grammar.Symbol, error) {
	if strings.HasPrefix(field, quote) {
		if len(field) < 2 || !strings.HasSuffix(field[1:], quote) {
			return grammar.Symbol{}, unterminatedStringError(name, line, field)
		}
		field = field[1 : len(field)-1]
	}
	return grammar.NewSymbol(field)
}
