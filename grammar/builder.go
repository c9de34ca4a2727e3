package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"

	"github.com/CLMBRs/altk"
)

// GrammarBuilder is a fluent API for grammar construction. Rule declaration
// reads like the production it creates:
//
//	b := grammar.NewGrammarBuilder("Boolean", "bool")
//	b.LHS("bool").Rule("and", andFn).N("bool").N("bool").End()
//	b.LHS("bool").Terminal("true", trueFn).Weight(2).End()
//	g, err := b.Grammar()
//
// Errors are collected during building and reported by Grammar().
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder creates a builder for a named grammar with a start
// symbol.
func NewGrammarBuilder(name string, start altk.Typ) *GrammarBuilder {
	g := NewGrammar(start)
	g.name = name
	return &GrammarBuilder{g: g}
}

// LHS starts the declaration of a rule producing the given type.
func (gb *GrammarBuilder) LHS(lhs altk.Typ) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: lhs}
}

// Grammar returns the finished grammar, or the first error encountered
// while declaring rules.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	return gb.g, nil
}

// RuleBuilder collects the parts of a single rule declaration.
type RuleBuilder struct {
	gb       *GrammarBuilder
	lhs      altk.Typ
	name     string
	fn       Func
	rhs      []altk.Typ
	weight   float64
	terminal bool
}

// Rule names a non-terminal production and sets its function.
func (rb *RuleBuilder) Rule(name string, fn Func) *RuleBuilder {
	rb.name = name
	rb.fn = fn
	return rb
}

// Terminal names a terminal production and sets its function. Terminal
// rules take the external input directly; N must not be called on them.
func (rb *RuleBuilder) Terminal(name string, fn Func) *RuleBuilder {
	rb.name = name
	rb.fn = fn
	rb.terminal = true
	return rb
}

// N appends a non-terminal of the given type to the RHS of the rule.
func (rb *RuleBuilder) N(typ altk.Typ) *RuleBuilder {
	rb.rhs = append(rb.rhs, typ)
	return rb
}

// Weight sets the generation weight of the rule; the default is 1.
func (rb *RuleBuilder) Weight(w float64) *RuleBuilder {
	rb.weight = w
	return rb
}

// End finishes the rule declaration and registers the rule with the
// grammar under construction.
func (rb *RuleBuilder) End() *GrammarBuilder {
	gb := rb.gb
	if gb.err != nil {
		return gb
	}
	if rb.name == "" {
		gb.err = fmt.Errorf("rule for LHS %q lacks a name; call Rule or Terminal before End", rb.lhs)
		return gb
	}
	if rb.terminal && len(rb.rhs) > 0 {
		gb.err = fmt.Errorf("terminal rule %q may not have RHS symbols", rb.name)
		return gb
	}
	if !rb.terminal && len(rb.rhs) == 0 {
		gb.err = fmt.Errorf("non-terminal rule %q needs at least one RHS symbol", rb.name)
		return gb
	}
	rule := Rule{
		Name:   rb.name,
		LHS:    rb.lhs,
		RHS:    rb.rhs,
		Fn:     rb.fn,
		Weight: rb.weight,
	}
	if err := gb.g.AddRule(rule); err != nil {
		gb.err = err
	}
	return gb
}
