/*
Package semantics provides referents, universes and meanings.

A Universe is a finite, ordered set of referents: the domain of discourse
an expression is evaluated against. Evaluating an expression over a
universe produces a Meaning: a mapping from each referent to the value the
expression denotes for it. Meanings carry a canonical digest so that
expression pools can be keyed by semantics without re-evaluation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package semantics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'altk.semantics'.
func tracer() tracing.Trace {
	return tracing.Select("altk.semantics")
}
