package cfg

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/mkestner/cfguide"
)

// succs returns the successor contents of the symbol addressed by handle,
// in insertion order.
func succs(t *testing.T, g *SymbolGraph, symbols map[string]*cfguide.Symbol, handle string) []string {
	t.Helper()
	sym, ok := symbols[handle]
	if !ok {
		t.Fatalf("no symbol for handle %s", handle)
	}
	var contents []string
	g.Nodes.Successors(sym).Each(func(s *cfguide.Symbol) {
		contents = append(contents, s.Content)
	})
	return contents
}

func contents(syms []*cfguide.Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = s.Content
	}
	return out
}

func expectList(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSubgraphSimpleChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	g := ConstructSubgraph(strings.Fields(` "(" expression ")" `), Standard)
	symbols := SymbolsByContent(g)
	expectList(t, contents(g.Initials.Values()), `"("`)
	expectList(t, contents(g.Finals.Values()), `")"`)
	expectList(t, succs(t, g, symbols, `"("|0`), "expression")
	expectList(t, succs(t, g, symbols, "expression|0"), `")"`)
}

func TestSubgraphSingleSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	g := ConstructSubgraph([]string{`Regex("[0-9]*.[0-9]*")`}, Standard)
	if g.Initials.Size() != 1 || g.Finals.Size() != 1 {
		t.Fatalf("expected single-symbol graph, got %v", g)
	}
	sym := g.Initials.Values()[0]
	if sym != g.Finals.Values()[0] {
		t.Errorf("initials and finals of a single-symbol graph must hold the same symbol")
	}
	if sym.Kind != cfguide.Regex || sym.Content != "[0-9]*.[0-9]*" {
		t.Errorf("expected unquoted regex content, got %q (%s)", sym.Content, sym.Kind)
	}
	if set, ok := g.Nodes.At(sym); !ok || !set.Empty() {
		t.Errorf("single node must be present with empty successors")
	}
}

func TestSubgraphEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	g := ConstructSubgraph(nil, Standard)
	if !g.Initials.Empty() || !g.Nodes.Empty() || !g.Finals.Empty() {
		t.Errorf("expected the empty graph, got %v", g)
	}
}

func TestSubgraphWithAlternation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	g := ConstructSubgraph(strings.Fields(` factor "+" | factor "-" `), Standard)
	symbols := SymbolsByContent(g)
	// two distinct `factor` symbols despite equal content
	expectList(t, contents(g.Initials.Values()), "factor", "factor")
	if symbols["factor|0"] == symbols["factor|1"] {
		t.Fatalf("parallel chains must not share symbols")
	}
	expectList(t, contents(g.Finals.Values()), `"+"`, `"-"`)
	expectList(t, succs(t, g, symbols, "factor|0"), `"+"`)
	expectList(t, succs(t, g, symbols, "factor|1"), `"-"`)
}

func TestSubgraphTerminalKeepsQuotes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	g := ConstructSubgraph([]string{`"+"`}, Standard)
	sym := g.Initials.Values()[0]
	if sym.Kind != cfguide.Terminal || sym.Content != `"+"` {
		t.Errorf("terminal content must include the quotes, got %q", sym.Content)
	}
}
