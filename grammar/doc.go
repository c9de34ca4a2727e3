/*
Package grammar implements typed compositional grammars.

A Grammar is a set of Rules, each a production from a semantic result type
to an ordered list of argument types, realized by a function. Grammars
generate complex functions from basic ones: expression trees built from
rules are callable, denoting the composition of the rule functions along
the tree.

The package provides several ways to obtain a grammar (explicit rule
registration, a fluent builder, a declarative YAML file, reflective
ingestion of typed Go functions) and three ways to obtain expressions:
parsing the textual notation `name(child1, child2, …)`, weighted stochastic
generation, and exhaustive depth-bounded enumeration with shared-subproblem
memoization. A canonicalization pass can filter enumeration down to one
minimal expression per semantic key.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'altk.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("altk.grammar")
}
