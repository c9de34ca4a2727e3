/*
Package language holds the base expression contract.

An Expression couples a textual form with an optional meaning. Grammatical
expressions (package grammar) embed it and keep both fields in sync: the
form is the canonical term notation, the meaning is populated lazily on
first evaluation against a universe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package language

import (
	"github.com/CLMBRs/altk/semantics"
)

// Expression is the base contract shared by all expression kinds: a textual
// form plus the meaning it denotes, if one has been computed.
type Expression struct {
	Form    string
	Meaning semantics.Meaning
}

// HasMeaning reports whether a meaning has been computed for the expression.
func (e *Expression) HasMeaning() bool {
	return e.Meaning != nil
}
