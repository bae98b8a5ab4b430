package cfg

import (
	"bytes"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/mkestner/cfguide"
	"github.com/mkestner/cfguide/symset"
)

// GraphKind selects the semantics a built graph is cast to.
type GraphKind int8

const (
	// Standard leaves a graph as built.
	Standard GraphKind = iota + 1
	// NoneAny encodes zero-or-more repetition ({…}).
	NoneAny
	// NoneOnce encodes zero-or-one occurrence ([…]).
	NoneOnce
)

func (k GraphKind) String() string {
	switch k {
	case NoneAny:
		return "none-any"
	case NoneOnce:
		return "none-once"
	}
	return "standard"
}

// --- Adjacency -------------------------------------------------------------

// Adjacency maps a symbol to the ordered set of symbols which may
// immediately follow it. Key order is the order keys were first touched;
// merging keeps left keys first, then right-only keys in right order.
type Adjacency struct {
	m *linkedhashmap.Map
}

// NewAdjacency creates an empty adjacency.
func NewAdjacency() *Adjacency {
	return &Adjacency{m: linkedhashmap.New()}
}

// Successors returns the successor set of sym, or an empty set if sym has
// no entry. The adjacency is not modified.
func (a *Adjacency) Successors(sym *cfguide.Symbol) *symset.Set {
	if v, ok := a.m.Get(sym); ok {
		return v.(*symset.Set)
	}
	return symset.New()
}

// At returns the successor set of sym and whether sym has an entry.
func (a *Adjacency) At(sym *cfguide.Symbol) (*symset.Set, bool) {
	v, ok := a.m.Get(sym)
	if !ok {
		return nil, false
	}
	return v.(*symset.Set), true
}

// Touch makes sure sym has an entry and returns its successor set.
func (a *Adjacency) Touch(sym *cfguide.Symbol) *symset.Set {
	if v, ok := a.m.Get(sym); ok {
		return v.(*symset.Set)
	}
	succs := symset.New()
	a.m.Put(sym, succs)
	return succs
}

// AddEdge records "to may immediately follow from".
func (a *Adjacency) AddEdge(from, to *cfguide.Symbol) {
	a.Touch(from).Add(to)
}

// Keys returns all entry keys in touch order.
func (a *Adjacency) Keys() []*cfguide.Symbol {
	keys := a.m.Keys()
	syms := make([]*cfguide.Symbol, len(keys))
	for i, k := range keys {
		syms[i] = k.(*cfguide.Symbol)
	}
	return syms
}

// Each calls f for every (key, successors) pair in touch order.
func (a *Adjacency) Each(f func(*cfguide.Symbol, *symset.Set)) {
	it := a.m.Iterator()
	for it.Next() {
		f(it.Key().(*cfguide.Symbol), it.Value().(*symset.Set))
	}
}

// Size returns the number of keys.
func (a *Adjacency) Size() int {
	return a.m.Size()
}

// Empty is true for adjacencies without keys.
func (a *Adjacency) Empty() bool {
	return a.m.Empty()
}

// Copy returns a deep copy of the container structure. Symbols are shared;
// they are immutable once constructed.
func (a *Adjacency) Copy() *Adjacency {
	out := NewAdjacency()
	a.Each(func(sym *cfguide.Symbol, succs *symset.Set) {
		out.m.Put(sym, succs.Copy())
	})
	return out
}

// Merge returns a new adjacency with a's keys first, then b's keys not
// already present. Successor sets are copied, not shared.
func (a *Adjacency) Merge(b *Adjacency) *Adjacency {
	out := a.Copy()
	b.Each(func(sym *cfguide.Symbol, succs *symset.Set) {
		if _, ok := out.m.Get(sym); !ok {
			out.m.Put(sym, succs.Copy())
		}
	})
	return out
}

// withoutSingletons drops keys whose successor set is empty. Singleton
// nodes re-enter a composition via initials and finals; keeping both
// representations would double-count them.
func (a *Adjacency) withoutSingletons() *Adjacency {
	out := NewAdjacency()
	a.Each(func(sym *cfguide.Symbol, succs *symset.Set) {
		if !succs.Empty() {
			out.m.Put(sym, succs.Copy())
		}
	})
	return out
}

// predecessors collects every key which lists target among its
// successors. An empty result breaks the caller's invariant and panics
// with a SymbolNotFoundError.
func (a *Adjacency) predecessors(target *cfguide.Symbol) []*cfguide.Symbol {
	var preds []*cfguide.Symbol
	a.Each(func(sym *cfguide.Symbol, succs *symset.Set) {
		if succs.Contains(target) {
			preds = append(preds, sym)
		}
	})
	if len(preds) == 0 {
		panic(&SymbolNotFoundError{
			Message: "No Symbol predecessor for " + target.Content + " was found.",
		})
	}
	return preds
}

// Equals compares key sets (order-insensitively) and successor sets
// (order included).
func (a *Adjacency) Equals(b *Adjacency) bool {
	if b == nil || a.Size() != b.Size() {
		return false
	}
	equal := true
	a.Each(func(sym *cfguide.Symbol, succs *symset.Set) {
		other, ok := b.At(sym)
		if !ok || !succs.Equals(other) {
			equal = false
		}
	})
	return equal
}

func (a *Adjacency) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	first := true
	a.Each(func(sym *cfguide.Symbol, succs *symset.Set) {
		if first {
			buf.WriteString(" ")
			first = false
		} else {
			buf.WriteString(", ")
		}
		buf.WriteString(sym.String())
		buf.WriteString(" -> ")
		buf.WriteString(succs.String())
	})
	buf.WriteString(" }")
	return buf.String()
}

// --- Symbol graphs ---------------------------------------------------------

// SymbolGraph is the graph form of one grammar rule. Initials are the
// symbols which may appear first, Finals the symbols which may appear
// last, Nodes the may-immediately-follow relation. Initials and Finals
// may overlap.
type SymbolGraph struct {
	Initials *symset.Set
	Nodes    *Adjacency
	Finals   *symset.Set
}

// NewSymbolGraph creates an empty graph.
func NewSymbolGraph() *SymbolGraph {
	return &SymbolGraph{
		Initials: symset.New(),
		Nodes:    NewAdjacency(),
		Finals:   symset.New(),
	}
}

// Copy clones the graph's containers. Symbols are shared.
func (g *SymbolGraph) Copy() *SymbolGraph {
	return &SymbolGraph{
		Initials: g.Initials.Copy(),
		Nodes:    g.Nodes.Copy(),
		Finals:   g.Finals.Copy(),
	}
}

// complete is true when the graph has entry points, nodes and exit
// points. Freshly created and not-yet-composed graphs are incomplete.
func (g *SymbolGraph) complete() bool {
	return !g.Initials.Empty() && !g.Nodes.Empty() && !g.Finals.Empty()
}

// Equals compares two graphs structurally: initials and finals in order,
// adjacency key-wise.
func (g *SymbolGraph) Equals(other *SymbolGraph) bool {
	if other == nil {
		return false
	}
	return g.Initials.Equals(other.Initials) &&
		g.Nodes.Equals(other.Nodes) &&
		g.Finals.Equals(other.Finals)
}

func (g *SymbolGraph) String() string {
	var buf bytes.Buffer
	buf.WriteString("initials=")
	buf.WriteString(g.Initials.String())
	buf.WriteString(" nodes=")
	buf.WriteString(g.Nodes.String())
	buf.WriteString(" finals=")
	buf.WriteString(g.Finals.String())
	return buf.String()
}

// containsEOS checks a set for an ε-marker.
func containsEOS(s *symset.Set) bool {
	found := false
	s.Each(func(sym *cfguide.Symbol) {
		if sym.IsEOS() {
			found = true
		}
	})
	return found
}

// symbolsByContent collects the members of s with the given content. An
// empty result breaks the caller's invariant and panics with a
// SymbolNotFoundError.
func symbolsByContent(s *symset.Set, content string) []*cfguide.Symbol {
	var syms []*cfguide.Symbol
	s.Each(func(sym *cfguide.Symbol) {
		if sym.Content == content {
			syms = append(syms, sym)
		}
	})
	if len(syms) == 0 {
		panic(&SymbolNotFoundError{
			Message: "No Symbol matching " + content + " was found.",
		})
	}
	return syms
}
