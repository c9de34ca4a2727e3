package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/CLMBRs/altk"
	"github.com/CLMBRs/altk/semantics"
)

// ErrMissingReturn flags a typed function without a result type; such a
// function cannot serve as a rule.
var ErrMissingReturn = errors.New("function must have a result type to be used as a rule")

// Func is the untyped calling convention for rule functions. A terminal
// rule's function receives the external input (usually a single
// semantics.Referent); a non-terminal rule's function receives the values
// its children evaluated to, in RHS order.
type Func func(args ...interface{}) interface{}

// Rule is a single production of a grammar. Conceptually a rule is a typed
// function: LHS is its result type, RHS the ordered argument types. A nil
// RHS marks a terminal rule, which consumes one external input directly
// instead of recursive children.
//
// Rules are immutable once added to a grammar.
type Rule struct {
	Name   string     // unique within one grammar
	LHS    altk.Typ   // result type
	RHS    []altk.Typ // argument types; nil ⇒ terminal
	Fn     Func       // function computed when a node with this rule is executed
	Weight float64    // relative weight for stochastic generation
}

// IsTerminal reports whether this is a terminal rule, i.e. whether it has
// no recursive children.
func (r Rule) IsTerminal() bool {
	return r.RHS == nil
}

func (r Rule) String() string {
	if r.RHS == nil {
		return fmt.Sprintf("%s -> %s", r.LHS, r.Name)
	}
	args := make([]string, len(r.RHS))
	for i, typ := range r.RHS {
		args[i] = typ.String()
	}
	return fmt.Sprintf("%s -> %s(%s)", r.LHS, r.Name, strings.Join(args, ", "))
}

// --- Rules from typed Go functions -----------------------------------------

// RuleOption configures rule derivation from a typed function.
type RuleOption func(*ruleConfig)

type ruleConfig struct {
	weight float64
}

// WithWeight sets the generation weight of a derived rule. Go functions
// have no parameter defaults, so the weight travels as an option rather
// than as a reserved parameter.
func WithWeight(w float64) RuleOption {
	return func(cfg *ruleConfig) {
		cfg.weight = w
	}
}

var referentType = reflect.TypeOf((*semantics.Referent)(nil)).Elem()

// RuleFromFunc derives a rule from a typed Go function: the result type
// becomes the LHS, the parameter types, in declaration order, become the
// RHS. If every parameter is a semantics.Referent the rule is terminal.
//
// For example, given
//
//	func and(p, q bool) bool { return p && q }
//
// RuleFromFunc("and", and) returns the rule
//
//	bool -> and(bool, bool)
//
// A function without a result yields ErrMissingReturn.
func RuleFromFunc(name string, fn interface{}, opts ...RuleOption) (Rule, error) {
	cfg := ruleConfig{weight: 1.0}
	for _, opt := range opts {
		opt(&cfg)
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return Rule{}, fmt.Errorf("rule %q: not a function: %T", name, fn)
	}
	t := v.Type()
	if t.NumOut() == 0 {
		return Rule{}, fmt.Errorf("rule %q: %w", name, ErrMissingReturn)
	}
	if t.NumIn() == 0 {
		return Rule{}, fmt.Errorf("rule %q: function takes no parameters; terminal rules consume a referent", name)
	}
	rule := Rule{
		Name:   name,
		LHS:    typFor(t.Out(0)),
		Fn:     wrapFunc(v),
		Weight: cfg.weight,
	}
	terminal := t.NumIn() > 0
	for i := 0; i < t.NumIn(); i++ {
		if t.In(i) != referentType {
			terminal = false
		}
	}
	if terminal {
		return rule, nil // all inputs are referents ⇒ leaf rule, RHS stays nil
	}
	rhs := make([]altk.Typ, t.NumIn())
	for i := 0; i < t.NumIn(); i++ {
		rhs[i] = typFor(t.In(i))
	}
	rule.RHS = rhs
	return rule, nil
}

// typFor maps a Go type to a semantic type symbol.
func typFor(t reflect.Type) altk.Typ {
	if t.Name() != "" {
		return altk.Typ(t.Name())
	}
	return altk.Typ(t.String())
}

// wrapFunc adapts a reflected function to the untyped Func convention.
func wrapFunc(v reflect.Value) Func {
	t := v.Type()
	return func(args ...interface{}) interface{} {
		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			if arg == nil {
				in[i] = reflect.Zero(t.In(i))
			} else {
				in[i] = reflect.ValueOf(arg)
			}
		}
		return v.Call(in)[0].Interface()
	}
}

// NamedFunc pairs a rule name with a typed Go function for FromFuncs.
// A zero Weight means the default weight of 1.
type NamedFunc struct {
	Name   string
	Fn     interface{}
	Weight float64
}

// FromFuncs builds a grammar by converting every given typed function into
// a rule, in order. The start symbol is the WithStart option if present,
// otherwise the LHS of the first function.
func FromFuncs(funcs []NamedFunc, opts ...GrammarOption) (*Grammar, error) {
	if len(funcs) == 0 {
		return nil, errors.New("cannot build a grammar from zero functions")
	}
	cfg := grammarConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	var g *Grammar
	for _, nf := range funcs {
		ropts := []RuleOption(nil)
		if nf.Weight != 0 {
			ropts = append(ropts, WithWeight(nf.Weight))
		}
		rule, err := RuleFromFunc(nf.Name, nf.Fn, ropts...)
		if err != nil {
			return nil, err
		}
		if g == nil {
			start := cfg.start
			if start == "" {
				start = rule.LHS
			}
			g = NewGrammar(start)
		}
		if err := g.AddRule(rule); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// GrammarOption configures grammar construction from functions or files.
type GrammarOption func(*grammarConfig)

type grammarConfig struct {
	start altk.Typ
}

// WithStart overrides the start symbol of a constructed grammar.
func WithStart(start altk.Typ) GrammarOption {
	return func(cfg *grammarConfig) {
		cfg.start = start
	}
}
