// Package format renders grammars as text.
package format

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leftrec/leftrec/grammar"
)

// Text renders the grammar one rule per line, left-hand symbols padded
// to a common width, alternatives joined with " or ":
//
//	<KLEENE>  := "*" or EmptyString
func Text(g *grammar.Grammar) string {
	rules := g.Rules()
	longest := 0
	for _, r := range rules {
		if len(r.Symbol().Text()) > longest {
			longest = len(r.Symbol().Text())
		}
	}

	var b strings.Builder
	for _, r := range rules {
		lhs := r.Symbol().Text()
		b.WriteString(lhs)
		b.WriteString(strings.Repeat(" ", longest-len(lhs)+1))
		b.WriteString(":= ")
		b.WriteString(derivations(r))
		b.WriteString("\n")
	}
	return b.String()
}

// Table renders the grammar rules as a two-column table.
func Table(g *grammar.Grammar) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"Rule", "Derivations"})
	for _, r := range g.Rules() {
		w.AppendRow(table.Row{r.Symbol().Text(), derivations(r)})
	}
	return w.Render()
}

func derivations(r grammar.Rule) string {
	ds := r.Derivations()
	parts := make([]string, 0, len(ds))
	for _, p := range ds {
		parts = append(parts, production(p))
	}
	return strings.Join(parts, " or ")
}

func production(p grammar.Production) string {
	symbols := p.Symbols()
	parts := make([]string, 0, len(symbols))
	for _, s := range symbols {
		parts = append(parts, symbolText(s))
	}
	return strings.Join(parts, " ")
}

// Symbols colliding with the bnf notation are quoted, the rest are
// rendered verbatim.
func symbolText(s grammar.Symbol) string {
	text := s.Text()
	if text == "|" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, `"`) {
		return `"` + text + `"`
	}
	return text
}
