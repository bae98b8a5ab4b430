package cfg

import (
	"github.com/mkestner/cfguide"
	"github.com/mkestner/cfguide/symset"
)

// Cast rewrites a built graph under optional or star semantics.
//
// NoneOnce ([X]) makes sure an ε-marker sits among the entry points, so
// the subgraph may be skipped once. NoneAny ({X}) additionally wires
// every exit point back to every entry point and funnels the exits
// through a fresh ε-marker, realizing repetition. Standard is the
// identity.
//
// Group delimiters can induce connections which Connect and Union cannot
// express; when a star group nests a composite definition, the loop
// edges added here are exactly those remaining connections. Casting an
// already-looped graph again is idempotent with respect to its ε-marker
// population.
func Cast(g *SymbolGraph, kind GraphKind) *SymbolGraph {
	out := g.Copy()

	switch kind {
	case NoneAny:
		out.Finals.Each(func(final *cfguide.Symbol) {
			anchors := []*cfguide.Symbol{final}
			if final.IsEOS() {
				// An ε exit of an inner group: loop from its
				// predecessors. The edges into the marker stay; an
				// enclosing Connect resolves them.
				anchors = out.Nodes.predecessors(final)
			}
			out.Initials.Each(func(initial *cfguide.Symbol) {
				if initial.IsEOS() {
					return
				}
				for _, anchor := range anchors {
					out.Nodes.AddEdge(anchor, initial)
				}
			})
		})

		if containsEOS(out.Initials) && containsEOS(out.Finals) {
			return out
		}
		if !containsEOS(out.Initials) {
			eos := cfguide.NewEOS()
			out.Initials.Add(eos)
			out.Nodes.Touch(eos)
		}
		if !containsEOS(out.Finals) {
			eos := cfguide.NewEOS()
			out.Finals.Each(func(final *cfguide.Symbol) {
				out.Nodes.AddEdge(final, eos)
			})
			out.Finals = symset.New(eos)
		}
		return out

	case NoneOnce:
		if containsEOS(out.Initials) {
			return out
		}
		eos := cfguide.NewEOS()
		out.Initials.Add(eos)
		out.Nodes.Touch(eos)
		return out

	default:
		return out
	}
}
