package cfg

// StartRule is the mandatory entry rule of every grammar.
const StartRule = "start"

// Grammar maps rule names to their compiled symbol graphs. A compiled
// grammar always holds StartRule and is immutable after compilation.
type Grammar map[string]*SymbolGraph

// Compile parses a grammar source and builds one SymbolGraph per rule.
func Compile(source string) (Grammar, error) {
	rules, order, err := splitGrammar(source)
	if err != nil {
		return nil, err
	}

	grammar := make(Grammar, len(rules))
	for _, name := range order {
		g, err := BuildSymbolGraph(rules[name])
		if err != nil {
			return nil, err
		}
		tracer().Debugf("compiled rule %q: %v", name, g)
		grammar[name] = g
	}
	return grammar, nil
}
