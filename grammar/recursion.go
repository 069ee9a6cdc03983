package grammar

import (
	"github.com/leftrec/leftrec/internal/strset"
)

// DerivesTo reports whether repeated expansion of leftmost symbols,
// starting from start, can produce a sequence beginning with target.
// Only the leftmost symbol of each alternative is followed: symbols in
// other positions cannot contribute to left recursion. Returns
// UndefinedNonTermError when the walk reaches a non-terminal the
// grammar does not define.
func (g *Grammar) DerivesTo(start, target Symbol) (bool, error) {
	return g.derivesTo(start, target, strset.New())
}

// visited holds the non-terminals already expanded, so leftmost cycles
// that do not pass through target terminate as "not reachable".
func (g *Grammar) derivesTo(start, target Symbol, visited *strset.Set) (bool, error) {
	if start.IsTerminal() {
		return false, nil
	}
	if visited.Contains(start.text) {
		return false, nil
	}
	visited.Add(start.text)

	rule, found := g.FindRule(start)
	if !found {
		return false, undefinedNonTermError(start.text)
	}

	for _, p := range rule.derivations {
		first := p.First()
		if first.text == target.text {
			return true, nil
		}
		reached, e := g.derivesTo(first, target, visited)
		if e != nil || reached {
			return reached, e
		}
	}
	return false, nil
}

// HasIndirectLeftRecursion reports whether any rule's left-hand symbol
// reaches itself through the leftmost-derivation relation. Cycles of
// length one count, so direct recursion is included as a degenerate case.
func (g *Grammar) HasIndirectLeftRecursion() (bool, error) {
	for _, r := range g.rules {
		recursive, e := g.DerivesTo(r.symbol, r.symbol)
		if e != nil || recursive {
			return recursive, e
		}
	}
	return false, nil
}

// HasLeftRecursion reports whether the grammar has direct or indirect
// left recursion. The per-rule direct scan runs first; the derivation
// walk is skipped when the scan already found a recursive rule.
func (g *Grammar) HasLeftRecursion() (bool, error) {
	for _, r := range g.rules {
		if r.HasDirectLeftRecursion() {
			return true, nil
		}
	}
	return g.HasIndirectLeftRecursion()
}
