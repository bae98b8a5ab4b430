package cfg

import (
	"github.com/mkestner/cfguide"
)

// Connect sequentially composes two graphs: every exit point of lhs is
// wired to every entry point of rhs. An ε-marker among the left exit
// points is resolved to its predecessors, which become the connection
// anchors, and the edges into the marker are dropped.
//
// Connect is not commutative; the ordering of initials and finals is
// semantically relevant.
func Connect(lhs, rhs *SymbolGraph) *SymbolGraph {
	if lhs.Nodes.Empty() && rhs.Nodes.Empty() {
		return NewSymbolGraph()
	}
	if lhs.Nodes.Empty() {
		return rhs
	}
	if rhs.Nodes.Empty() {
		return lhs
	}

	l, r := lhs.Copy(), rhs.Copy()

	// Singleton nodes connect through initials and finals only.
	l.Nodes = l.Nodes.withoutSingletons()
	r.Nodes = r.Nodes.withoutSingletons()

	nodes := l.Nodes.Merge(r.Nodes)

	l.Finals.Each(func(final *cfguide.Symbol) {
		anchors := []*cfguide.Symbol{final}
		if final.IsEOS() {
			preds := nodes.predecessors(final)
			for _, pred := range preds {
				nodes.Successors(pred).Discard(final)
			}
			anchors = preds
		}
		r.Initials.Each(func(initial *cfguide.Symbol) {
			for _, anchor := range anchors {
				nodes.AddEdge(anchor, initial)
			}
		})
	})

	return &SymbolGraph{
		Initials: l.Initials,
		Nodes:    nodes,
		Finals:   r.Finals,
	}
}

// Union combines two graphs as alternatives: entry and exit points are
// concatenated (left order first), adjacencies merged key-wise. A
// duplicate ε entry point on the right is dropped; one skip marker per
// graph suffices.
func Union(lhs, rhs *SymbolGraph) *SymbolGraph {
	if lhs.Nodes.Empty() && rhs.Nodes.Empty() {
		return NewSymbolGraph()
	}
	if lhs.Nodes.Empty() {
		return rhs
	}
	if rhs.Nodes.Empty() {
		return lhs
	}

	l, r := lhs.Copy(), rhs.Copy()

	if containsEOS(l.Initials) && containsEOS(r.Initials) {
		dup := symbolsByContent(r.Initials, cfguide.EOS)
		r.Initials.Discard(dup[0])
	}

	return &SymbolGraph{
		Initials: l.Initials.Extend(r.Initials),
		Nodes:    l.Nodes.Merge(r.Nodes),
		Finals:   l.Finals.Extend(r.Finals),
	}
}
