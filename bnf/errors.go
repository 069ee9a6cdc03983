package bnf

import (
	err "github.com/leftrec/leftrec"
)

const (
	MissingDefinitionError = iota + err.SyntaxErrors
	EmptyAlternativeError
	UnterminatedStringError
	NonTerminalDefinedError
	NoRulesError
)

func missingDefError(name string, line int) *err.Error {
	return err.FormatErrorAt(name, line, MissingDefinitionError, "rule must have form <NAME> := symbols")
}

func emptyAlternativeError(name string, line int) *err.Error {
	return err.FormatErrorAt(name, line, EmptyAlternativeError, "alternative must contain at least one symbol")
}

func unterminatedStringError(name string, line int, text string) *err.Error {
	return err.FormatErrorAt(name, line, UnterminatedStringError, "unterminated string %s", text)
}

func defNonTermError(name string, line int, text string) *err.Error {
	return err.FormatErrorAt(name, line, NonTerminalDefinedError, "non-terminal %q already defined", text)
}

func noRulesError(name string) *err.Error {
	return err.FormatError(NoRulesError, "no rules defined in %s", name)
}
