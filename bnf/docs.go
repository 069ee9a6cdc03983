/*
Package bnf converts grammar descriptions written in a line-oriented BNF
notation to grammar structures.

Each non-empty line defines one rule: a non-terminal name, the definition
operator, and one or more alternatives separated by "|":

	<NAME> := symbol symbol | symbol

Symbols are separated by spaces. A name starting with "<" is a
non-terminal, anything else is a terminal. A symbol that collides with
the notation itself (the "|" separator, a leading "#") or contains no
text at all can be written as a double-quoted string:

	<ALTERNAT> := "|" <LOW_PRECEDENCE> | EmptyString

Blank lines and lines starting with "#" are ignored. Every non-terminal
may be defined at most once; alternatives must not be empty.

The parser performs no reachability analysis: whether every referenced
non-terminal is actually defined surfaces later, when the grammar is
queried (see grammar.UndefinedNonTermError).
*/
package bnf
