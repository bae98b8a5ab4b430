package cfg

import (
	"strings"

	"github.com/mkestner/cfguide"
	"github.com/mkestner/cfguide/symset"
)

// symbolFromToken classifies one token and mints its Symbol. The token
// has already passed validation.
func symbolFromToken(tok string) *cfguide.Symbol {
	switch {
	case isTerminalToken(tok):
		return cfguide.NewSymbol(tok, cfguide.Terminal)
	case isRegexToken(tok):
		pattern := tok[len(`Regex("`) : len(tok)-len(`")`)]
		return cfguide.NewSymbol(pattern, cfguide.Regex)
	case len(tok) == 1 && strings.Contains(`()[]{}`, tok):
		return cfguide.NewSymbol(tok, cfguide.Special)
	default:
		return cfguide.NewSymbol(tok, cfguide.NonTerminal)
	}
}

// ConstructSubgraph builds an atomic SymbolGraph from a flat token list
// without nested delimiters. A top-level `|` splits the list into
// parallel chains which share no edges. The result is cast to the given
// graph kind (Standard is the identity).
func ConstructSubgraph(tokens []string, kind GraphKind) *SymbolGraph {
	g := NewSymbolGraph()
	if len(tokens) == 0 {
		return g
	}

	initial := symbolFromToken(tokens[0])
	g.Initials.Add(initial)
	g.Nodes.Touch(initial)

	if len(tokens) == 1 {
		g.Initials, g.Finals = symset.New(initial), symset.New(initial)
		g.Nodes.Touch(initial)
		return g
	}

	prev := initial
	for _, tok := range tokens[1:] {
		if tok == "|" {
			g.Finals.Add(prev)
			continue
		}
		node := symbolFromToken(tok)
		if g.Finals.Contains(prev) {
			// just crossed a `|`: start a new parallel chain
			g.Initials.Add(node)
			g.Nodes.Touch(node)
			prev = node
			continue
		}
		g.Nodes.AddEdge(prev, node)
		prev = node
	}
	g.Finals.Add(prev)

	return Cast(g, kind)
}
