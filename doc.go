/*
Package cfguide turns EBNF-style context-free grammars into directed
symbol graphs and walks those graphs to steer a constrained text
generator.

cfguide strives to be a small and predictable tool for guided token
production: given a grammar and a partial derivation, it enumerates the
terminals that may legally come next. Package structure is as follows:

■ cfg: Package cfg compiles grammar sources into symbol graphs, one graph
per non-terminal rule, together with the graph algebra (sequential
composition, alternation, optional/star rewriting) the compiler is built
from.

■ symset: Package symset provides the insertion-ordered symbol set all
graph containers are made of.

■ guide: Package guide maintains a stack of stateful graph frames and
produces, step by step, the set of admissible next terminals.

■ scanner: Package scanner compiles a grammar's terminal alphabet into a
DFA tokenizer for drivers that need to align raw generator output with
grammar terminals.

The base package contains the symbol model which is used throughout all
the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Martin Kestner

*/
package cfguide
