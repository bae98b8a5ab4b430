package cfg

import (
	"fmt"
	"os"

	"github.com/mkestner/cfguide"
	"github.com/mkestner/cfguide/symset"
)

// Graph2GraphViz exports a SymbolGraph to the Graphviz Dot format, given
// a filename. Entry points are drawn light gray, exit points double
// circled, ε-markers dashed.
func Graph2GraphViz(g *SymbolGraph, name string, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		panic(fmt.Sprintf("file open error: %v", err.Error()))
	}
	defer f.Close()
	f.WriteString(fmt.Sprintf(`digraph "%s" {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=circle, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`, name))
	ids := make(map[*cfguide.Symbol]int)
	for i, sym := range Walk(g) {
		ids[sym] = i
		f.WriteString(fmt.Sprintf("s%03d [fillcolor=%s shape=%s style=\"%s\" label=%q]\n",
			i, nodecolor(g, sym), nodeshape(g, sym), nodestyle(sym), sym.Content))
	}
	g.Nodes.Each(func(from *cfguide.Symbol, succs *symset.Set) {
		succs.Each(func(to *cfguide.Symbol) {
			f.WriteString(fmt.Sprintf("s%03d -> s%03d\n", ids[from], ids[to]))
		})
	})
	f.WriteString("}\n")
}

func nodecolor(g *SymbolGraph, sym *cfguide.Symbol) string {
	if g.Initials.Contains(sym) {
		return "lightgray"
	}
	return "white"
}

func nodeshape(g *SymbolGraph, sym *cfguide.Symbol) string {
	if g.Finals.Contains(sym) {
		return "doublecircle"
	}
	return "circle"
}

func nodestyle(sym *cfguide.Symbol) string {
	if sym.IsEOS() {
		return "filled,dashed"
	}
	return "filled"
}
