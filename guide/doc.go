/*
Package guide walks compiled symbol graphs to steer a constrained text
generator.

A Guide holds a compiled grammar and answers one question, step by step:
which terminals may legally come next? Derivation state is an ordered
stack of frames, one frame per active non-terminal; frames are pushed on
non-terminal entry and popped on exit or ε-skip. Every admissible
terminal is returned together with a clone of the derivation state at
that point, so the caller can commit to one of them and hand the state
back for the next step.

Cycles of non-terminals which would never consume input are detected,
reported through the tracer, and their paths skipped; all other paths
proceed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Martin Kestner

*/
package guide

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfguide.guide'.
func tracer() tracing.Trace {
	return tracing.Select("cfguide.guide")
}
