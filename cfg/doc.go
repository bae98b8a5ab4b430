/*
Package cfg compiles EBNF-style grammar rules into symbol graphs.

A rule's right-hand side is normalized into a token stream, validated,
and assembled bottom-up: flat token runs become atomic subgraphs,
sequential composition and alternation combine subgraphs, and optional
([…]) or star ({…}) groups are rewritten by injecting ε-markers and loop
edges. The result of compiling a grammar source is one SymbolGraph per
rule, with edges meaning "may immediately follow".

Compiled grammars are immutable; package guide walks them without
mutation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Martin Kestner

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfguide.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("cfguide.cfg")
}
