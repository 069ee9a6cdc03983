package grammar

import (
	err "github.com/leftrec/leftrec"
)

const (
	InvalidSymbolError = iota + err.GrammarErrors
	InvalidProductionError
	InvalidRuleError
	UndefinedNonTermError
)

func emptySymbolError() *err.Error {
	return err.FormatError(InvalidSymbolError, "symbol text must be non-empty")
}

func emptyProductionError() *err.Error {
	return err.FormatError(InvalidProductionError, "production must contain at least one symbol")
}

func terminalLhsError(text string) *err.Error {
	return err.FormatError(InvalidRuleError, "LHS symbol %q of rule must be non-terminal", text)
}

func noDerivationsError(text string) *err.Error {
	return err.FormatError(InvalidRuleError, "rule %q must have at least one production", text)
}

func undefinedNonTermError(text string) *err.Error {
	return err.FormatError(UndefinedNonTermError, "non-terminal %q mentioned but not defined", text)
}
