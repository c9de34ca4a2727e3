package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"math/rand"

	"github.com/CLMBRs/altk"
)

// Generate derives a random expression from the start symbol. See
// GenerateFrom.
func (g *Grammar) Generate(rnd *rand.Rand) (*Expr, error) {
	return g.GenerateFrom(rnd, g.start)
}

// GenerateFrom derives a random expression from a given LHS, top-down:
// among the rules registered under the current LHS one is chosen with
// probability proportional to its weight; a terminal rule emits a leaf,
// otherwise one child is generated per RHS entry.
//
// The random source is injected so callers control determinism by seeding.
// There is no termination guarantee: a grammar whose reachable types lack
// terminal rules can recurse without bound. Authoring a terminating grammar
// is the caller's responsibility.
func (g *Grammar) GenerateFrom(rnd *rand.Rand, lhs altk.Typ) (*Expr, error) {
	rule, err := g.chooseRule(rnd, lhs)
	if err != nil {
		return nil, err
	}
	if rule.IsTerminal() {
		return newExpr(rule, nil), nil
	}
	children := make([]*Expr, len(rule.RHS))
	for i, childLHS := range rule.RHS {
		child, err := g.GenerateFrom(rnd, childLHS)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return newExpr(rule, children), nil
}

// chooseRule draws one rule under lhs, weight-proportionally.
func (g *Grammar) chooseRule(rnd *rand.Rand, lhs altk.Typ) (Rule, error) {
	list, ok := g.rules[lhs]
	if !ok || list.Size() == 0 {
		return Rule{}, fmt.Errorf("grammar has no rules for type %q", lhs)
	}
	var total float64
	g.eachRule(lhs, func(r Rule) bool {
		total += r.Weight
		return true
	})
	x := rnd.Float64() * total
	var chosen Rule
	g.eachRule(lhs, func(r Rule) bool {
		if x < r.Weight {
			chosen = r
			return false
		}
		x -= r.Weight
		chosen = r // keep last, guards against float round-off
		return true
	})
	return chosen, nil
}
