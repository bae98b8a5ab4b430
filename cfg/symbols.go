package cfg

import (
	"fmt"

	"github.com/mkestner/cfguide"
)

// Walk visits the graph from its entry points in breadth-first order,
// following insertion order at every level, and returns the visited
// symbols. Singleton symbols without adjacency entries are reached via
// the entry points.
func Walk(g *SymbolGraph) []*cfguide.Symbol {
	var visited []*cfguide.Symbol
	seen := make(map[*cfguide.Symbol]bool)

	queue := g.Initials.Values()
	for len(queue) > 0 {
		sym := queue[0]
		queue = queue[1:]
		if seen[sym] {
			continue
		}
		seen[sym] = true
		visited = append(visited, sym)
		queue = append(queue, g.Nodes.Successors(sym).Values()...)
	}
	return visited
}

// SymbolsByContent indexes a graph's symbols under handles of the form
// "content|n", where n counts repeated contents in walk order. Repeated
// surface symbols carry distinct IDs; the handle makes each occurrence
// addressable, which the test-suite relies on.
func SymbolsByContent(g *SymbolGraph) map[string]*cfguide.Symbol {
	symbols := make(map[string]*cfguide.Symbol)
	order := make(map[string]int)

	for _, sym := range Walk(g) {
		symbols[fmt.Sprintf("%s|%d", sym.Content, order[sym.Content])] = sym
		order[sym.Content]++
	}
	return symbols
}
