/*
Package altk is a toolbox for typed compositional grammars.

ALTK lets clients define a space of compositional expressions (a grammar
whose rules are functions over semantic types) and then generate, parse and
exhaustively enumerate members of that space up to a bounded derivation
depth. Package structure is as follows:

■ grammar: Package grammar implements the rule model, expression trees, the
textual-notation parser, weighted stochastic generation, depth-bounded
memoized enumeration and a canonicalization pass keeping one minimal
expression per semantic key.

■ semantics: Package semantics provides referents, universes and meanings,
the finite domains expressions are evaluated against.

■ language: Package language holds the base expression contract (a textual
form plus an optional meaning) that grammatical expressions extend.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package altk
