// Package grammar defines the context-free grammar structure (symbols,
// productions, rules) and the left-recursion checks.
package grammar

// Symbol is an atomic grammar vocabulary element. Symbols are compared
// by text: two symbols with equal text denote the same element.
type Symbol struct {
	text string
}

// NewSymbol creates a Symbol.
// Returns InvalidSymbolError if text is empty.
func NewSymbol(text string) (Symbol, error) {
	if text == "" {
		return Symbol{}, emptySymbolError()
	}
	return Symbol{text}, nil
}

// Text returns the symbol text.
func (s Symbol) Text() string {
	return s.text
}

// IsTerminal reports whether the symbol is terminal. Non-terminal names
// start with '<', any other symbol is a terminal.
func (s Symbol) IsTerminal() bool {
	return s.text[0] != '<'
}

// Production is one ordered right-hand side alternative of a rule.
type Production struct {
	symbols []Symbol
}

// NewProduction creates a Production holding a copy of symbols.
// Returns InvalidProductionError if symbols is empty.
func NewProduction(symbols []Symbol) (Production, error) {
	if len(symbols) == 0 {
		return Production{}, emptyProductionError()
	}
	owned := make([]Symbol, len(symbols))
	copy(owned, symbols)
	return Production{owned}, nil
}

// Symbols returns a copy of the production symbols in order.
func (p Production) Symbols() []Symbol {
	symbols := make([]Symbol, len(p.symbols))
	copy(symbols, p.symbols)
	return symbols
}

// First returns the leftmost symbol of the production.
func (p Production) First() Symbol {
	return p.symbols[0]
}

// Rule pairs a non-terminal left-hand symbol with its alternatives.
type Rule struct {
	symbol      Symbol
	derivations []Production
}

// NewRule builds the left-hand symbol from lhs and attaches the given
// alternatives. Returns InvalidSymbolError if lhs is empty and
// InvalidRuleError if lhs names a terminal or derivations is empty.
func NewRule(lhs string, derivations []Production) (Rule, error) {
	symbol, e := NewSymbol(lhs)
	if e != nil {
		return Rule{}, e
	}
	if symbol.IsTerminal() {
		return Rule{}, terminalLhsError(lhs)
	}
	if len(derivations) == 0 {
		return Rule{}, noDerivationsError(lhs)
	}

	owned := make([]Production, len(derivations))
	copy(owned, derivations)
	return Rule{symbol, owned}, nil
}

// Symbol returns the left-hand symbol of the rule.
func (r Rule) Symbol() Symbol {
	return r.symbol
}

// Derivations returns a copy of the rule alternatives in definition order.
func (r Rule) Derivations() []Production {
	derivations := make([]Production, len(r.derivations))
	copy(derivations, r.derivations)
	return derivations
}

// HasDirectLeftRecursion reports whether any alternative of the rule
// starts with the rule's own left-hand symbol.
func (r Rule) HasDirectLeftRecursion() bool {
	for _, p := range r.derivations {
		if p.First().text == r.symbol.text {
			return true
		}
	}
	return false
}

// Grammar is an ordered, immutable collection of rules.
type Grammar struct {
	rules []Rule
}

// New creates a Grammar holding a copy of rules. Rule lookup assumes at
// most one rule per left-hand symbol; when duplicates are present the
// first one wins.
func New(rules []Rule) *Grammar {
	owned := make([]Rule, len(rules))
	copy(owned, rules)
	return &Grammar{owned}
}

// Rules returns a copy of the grammar rules in definition order.
func (g *Grammar) Rules() []Rule {
	rules := make([]Rule, len(g.rules))
	copy(rules, g.rules)
	return rules
}

// FindRule returns the rule whose left-hand symbol has the same text as
// symbol, or false if the grammar does not define it.
func (g *Grammar) FindRule(symbol Symbol) (Rule, bool) {
	for _, r := range g.rules {
		if r.symbol.text == symbol.text {
			return r, true
		}
	}
	return Rule{}, false
}
