package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/CLMBRs/altk"
)

// ErrDuplicateRuleName flags the registration of a rule under a name the
// grammar already carries. Rule names must be unique within one grammar.
var ErrDuplicateRuleName = errors.New("rules of a grammar must have unique names")

// At its core, a Grammar is a set of rules with methods for parsing,
// generating and enumerating expressions. A grammar is built once and
// read-only afterwards; any goroutine may then enumerate, generate or parse
// against it concurrently, provided each enumeration owns its cache and
// uniqueness store.
type Grammar struct {
	name        string
	start       altk.Typ
	rules       map[altk.Typ]*arraylist.List // LHS ⇒ rules, in registration order
	rulesByName map[string]Rule              // for fast lookup in parsing
	lhsOrder    []altk.Typ                   // LHS symbols in first-seen order
}

// NewGrammar creates an empty grammar with the given start symbol.
func NewGrammar(start altk.Typ) *Grammar {
	return &Grammar{
		start:       start,
		rules:       make(map[altk.Typ]*arraylist.List),
		rulesByName: make(map[string]Rule),
	}
}

// Name returns the name of the grammar, if one has been set by the builder.
func (g *Grammar) Name() string {
	return g.name
}

// Start returns the start symbol of the grammar.
func (g *Grammar) Start() altk.Typ {
	return g.start
}

// AddRule registers a rule under its LHS. A zero weight is normalized to
// the default weight of 1. Registration fails with ErrDuplicateRuleName if
// the grammar already has a rule of that name.
func (g *Grammar) AddRule(rule Rule) error {
	if _, ok := g.rulesByName[rule.Name]; ok {
		return fmt.Errorf("%w: this grammar already has a rule named %q", ErrDuplicateRuleName, rule.Name)
	}
	if rule.Weight == 0 {
		rule.Weight = 1.0
	}
	list, ok := g.rules[rule.LHS]
	if !ok {
		list = arraylist.New()
		g.rules[rule.LHS] = list
		g.lhsOrder = append(g.lhsOrder, rule.LHS)
	}
	list.Add(rule)
	g.rulesByName[rule.Name] = rule
	tracer().Debugf("added rule %v", rule)
	return nil
}

// Rule looks up a rule by name.
func (g *Grammar) Rule(name string) (Rule, bool) {
	rule, ok := g.rulesByName[name]
	return rule, ok
}

// RuleCount returns the total number of rules.
func (g *Grammar) RuleCount() int {
	return len(g.rulesByName)
}

// eachRule calls f for every rule registered under lhs, in registration
// order, until f returns false.
func (g *Grammar) eachRule(lhs altk.Typ, f func(Rule) bool) {
	list, ok := g.rules[lhs]
	if !ok {
		return
	}
	it := list.Iterator()
	for it.Next() {
		if !f(it.Value().(Rule)) {
			return
		}
	}
}

// GetAllRules returns all rules as a list, grouped by LHS in first-seen
// order and by registration order within each LHS.
func (g *Grammar) GetAllRules() []Rule {
	rules := make([]Rule, 0, len(g.rulesByName))
	for _, lhs := range g.lhsOrder {
		g.eachRule(lhs, func(r Rule) bool {
			rules = append(rules, r)
			return true
		})
	}
	return rules
}

func (g *Grammar) String() string {
	var b strings.Builder
	b.WriteString("Rules:")
	for _, rule := range g.GetAllRules() {
		b.WriteString("\n\t")
		b.WriteString(rule.String())
	}
	return b.String()
}

// Dump logs all rules of the grammar to the tracer. Debugging helper.
func (g *Grammar) Dump() {
	tracer().Debugf("grammar %q, start symbol %q", g.name, g.start)
	for _, rule := range g.GetAllRules() {
		tracer().Debugf("  %v", rule)
	}
}
