package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"strings"

	"github.com/CLMBRs/altk/language"
	"github.com/CLMBRs/altk/semantics"
)

// An Expr has been built up from a grammar by applying a sequence of rules.
// Crucially, it is callable, using the functions corresponding to each
// rule: a leaf forwards the external input to its rule function, an inner
// node calls every child with the same input and forwards the results as
// its rule function's arguments. The tree denotes a composed function, not
// a precomputed value.
//
// Exprs are immutable once exposed, except for the one-time lazy population
// of the embedded Meaning on first evaluation.
type Expr struct {
	language.Expression
	ruleName string
	fn       Func
	children []*Expr // nil for a leaf
}

// newExpr creates a frozen expression node for a rule. children must match
// the rule's RHS arity (nil for terminal rules); callers guarantee this.
func newExpr(rule Rule, children []*Expr) *Expr {
	e := &Expr{
		ruleName: rule.Name,
		fn:       rule.Fn,
		children: children,
	}
	e.Form = e.buildForm()
	return e
}

// RuleName returns the name of the top-most rule of the expression.
func (e *Expr) RuleName() string {
	return e.ruleName
}

// Children returns the ordered child expressions; nil for a leaf. Callers
// must not modify the returned slice.
func (e *Expr) Children() []*Expr {
	return e.children
}

// IsLeaf reports whether the expression is a single terminal node.
func (e *Expr) IsLeaf() bool {
	return e.children == nil
}

// Call executes the composed function the expression denotes, on the given
// external input.
func (e *Expr) Call(args ...interface{}) interface{} {
	if e.fn == nil {
		// opaque rule from a structural-only grammar load
		return fmt.Errorf("rule %q has no function", e.ruleName)
	}
	if e.children == nil {
		return e.fn(args...)
	}
	vals := make([]interface{}, len(e.children))
	for i, child := range e.children {
		vals[i] = child.Call(args...)
	}
	return e.fn(vals...)
}

// Evaluate maps the expression over every referent of a universe and
// records the resulting meaning. The meaning is memoized after the first
// computation and never recomputed.
func (e *Expr) Evaluate(u *semantics.Universe) semantics.Meaning {
	if e.Meaning == nil {
		m := make(semantics.Meaning, u.Size())
		for _, ref := range u.Referents() {
			m[ref.Name()] = e.Call(ref)
		}
		e.Meaning = m
	}
	return e.Meaning
}

// Size returns the number of rule applications in the expression:
// 1 for a leaf, 1 plus the sizes of all children otherwise. It is the
// default complexity measure for canonicalization.
func (e *Expr) Size() int {
	size := 1
	for _, child := range e.children {
		size += child.Size()
	}
	return size
}

// String returns the canonical term notation of the expression, exactly
// the notation Parse consumes, so Parse(expr.String()) reproduces a
// structurally identical tree.
func (e *Expr) String() string {
	return e.Form
}

func (e *Expr) buildForm() string {
	if e.children == nil {
		return e.ruleName
	}
	parts := make([]string, len(e.children))
	for i, child := range e.children {
		parts[i] = child.Form
	}
	return e.ruleName + "(" + strings.Join(parts, ", ") + ")"
}

// YieldString returns the 'yield' of the expression: the concatenation of
// its leaf names. Thinking of the grammar as generating derivation trees
// for an underlying CFG, this is the string the derivation produces.
func (e *Expr) YieldString() string {
	if e.children == nil {
		return e.ruleName
	}
	var b strings.Builder
	for _, child := range e.children {
		b.WriteString(child.YieldString())
	}
	return b.String()
}

// --- Serialization ---------------------------------------------------------

// Dict returns a nested-map form of the expression, suitable for JSON or
// YAML encoding. Functions are not serialized; rehydration resolves them by
// rule name against the owning grammar (see Grammar.ExprFromDict).
func (e *Expr) Dict() map[string]interface{} {
	d := map[string]interface{}{
		"rule_name":       e.ruleName,
		"term_expression": e.Form,
		"length":          e.Size(),
	}
	if e.children != nil {
		children := make([]interface{}, len(e.children))
		for i, child := range e.children {
			children[i] = child.Dict()
		}
		d["children"] = children
	}
	if e.Meaning != nil {
		d["meaning"] = map[string]interface{}(e.Meaning)
	}
	return d
}

// ExprFromDict rehydrates an expression from its nested-map form,
// resolving rule names against this grammar.
func (g *Grammar) ExprFromDict(d map[string]interface{}) (*Expr, error) {
	name, ok := d["rule_name"].(string)
	if !ok {
		return nil, fmt.Errorf("expression dict lacks a rule_name")
	}
	rule, ok := g.rulesByName[name]
	if !ok {
		return nil, fmt.Errorf("grammar has no rule named %q", name)
	}
	var children []*Expr
	if rawChildren, ok := d["children"].([]interface{}); ok {
		children = make([]*Expr, len(rawChildren))
		for i, raw := range rawChildren {
			childDict, ok := raw.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("child %d of rule %q is not a dict", i, name)
			}
			child, err := g.ExprFromDict(childDict)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
	}
	if err := checkArity(rule, len(children)); err != nil {
		return nil, err
	}
	e := newExpr(rule, children)
	if rawMeaning, ok := d["meaning"].(map[string]interface{}); ok {
		e.Meaning = semantics.Meaning(rawMeaning)
	}
	return e, nil
}

// checkArity enforces the child-count invariant len(children) == len(RHS).
func checkArity(rule Rule, childCount int) error {
	if rule.IsTerminal() {
		if childCount != 0 {
			return fmt.Errorf("terminal rule %q cannot take %d children", rule.Name, childCount)
		}
		return nil
	}
	if childCount != len(rule.RHS) {
		return fmt.Errorf("rule %q takes %d children, got %d", rule.Name, len(rule.RHS), childCount)
	}
	return nil
}
