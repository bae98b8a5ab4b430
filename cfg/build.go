package cfg

// BuildSymbolGraph compiles one rule definition into its SymbolGraph.
// The definition is normalized into a token stream, validated, and
// consumed by a recursive builder.
func BuildSymbolGraph(def string) (*SymbolGraph, error) {
	tokens := lexDefinition(def)
	if err := checkTokens(tokens); err != nil {
		return nil, err
	}
	tracer().Debugf("building symbol graph for %d tokens", len(tokens))
	return recurseBuild(newTokenQueue(tokens)), nil
}

// recurseBuild processes exactly one delimited group per invocation; the
// outermost call consumes the synthetic `(…)` wrapper. Within a level it
// accumulates flat tokens until a delimiter forces a subgraph build, and
// composes the level's graph left to right.
//
// Graphs are built from the left. On an opening delimiter, everything
// accumulated so far becomes the bottom subgraph, the recursion yields
// the inner group's graph, and both are connected onto the level's
// accumulator. On a closing delimiter the remaining accumulated tokens
// are built (splitting at a top-level `|` into a union) and the finished
// level is cast to the group's kind. A `|` directly followed by an
// opening delimiter finalizes the left-hand side early and consumes the
// opener, so the recursion is entered exactly once for that group.
func recurseBuild(q *tokenQueue) *SymbolGraph {
	var accTokens []string
	accGraph := NewSymbolGraph()

	for {
		tok := q.popFront()

		switch tok {
		case "(", "[", "{":
			bottom := ConstructSubgraph(accTokens, Standard)
			// Not clearing the accumulator here would leak this level's
			// tokens into the builds that follow the inner group.
			accTokens = accTokens[:0]

			upper := recurseBuild(q)

			if accGraph.complete() {
				accGraph = Connect(accGraph, Connect(bottom, upper))
			} else {
				accGraph = Connect(bottom, upper)
			}

			if q.len() > 0 {
				continue
			}
			return accGraph

		case ")", "]", "}":
			kind := Standard
			switch tok {
			case "}":
				kind = NoneAny
			case "]":
				kind = NoneOnce
			}

			// A `|` may still sit in the accumulator when no opening
			// delimiter followed it; split at the first one.
			if idx := indexOf(accTokens, "|"); idx >= 0 {
				left := ConstructSubgraph(accTokens[:idx], Standard)
				right := ConstructSubgraph(accTokens[idx+1:], Standard)
				accGraph = Connect(accGraph, left)
				return Cast(Union(accGraph, right), kind)
			}

			tail := ConstructSubgraph(accTokens, Standard)
			return Cast(Connect(accGraph, tail), kind)

		case "|":
			if next := q.peek(); next != "(" && next != "[" && next != "{" {
				// handled at the closing delimiter
				accTokens = append(accTokens, tok)
				continue
			}

			left := ConstructSubgraph(accTokens, Standard)
			accTokens = accTokens[:0]
			accGraph = Connect(accGraph, left)

			// Consume the opener; recursing on top of the `|` branch as
			// well would steal an enclosing delimiter.
			q.popFront()

			rhs := recurseBuild(q)
			accGraph = Union(accGraph, rhs)

			if q.len() > 0 {
				continue
			}
			return accGraph

		default:
			accTokens = append(accTokens, tok)
		}
	}
}

func indexOf(tokens []string, needle string) int {
	for i, tok := range tokens {
		if tok == needle {
			return i
		}
	}
	return -1
}
