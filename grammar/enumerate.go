package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/CLMBRs/altk"
)

// --- Lazy expression sequences ---------------------------------------------

// ExprSeq is a lazy sequence of expressions. A sequence is finite and
// restartable: every call to Enumerate produces a fresh one, and ceasing to
// pull from it is all the cancellation there is.
type ExprSeq struct {
	expr *Expr
	seq  exprGenerator
}

// exprGenerator is a function type to generate a sequence.
type exprGenerator func() ExprSeq

// seqOf wraps a materialized level of expressions into a sequence.
func seqOf(level *arraylist.List) ExprSeq {
	i := 0
	var S exprGenerator
	S = func() ExprSeq {
		if i >= level.Size() {
			return ExprSeq{nil, nil}
		}
		v, _ := level.Get(i)
		i++
		return ExprSeq{v.(*Expr), S}
	}
	return S()
}

// Break signals a sequence to stop iterating.
func (seq *ExprSeq) Break() {
	seq.seq = nil
}

// Done returns true if a sequence stopped iterating.
func (seq *ExprSeq) Done() bool {
	return seq.seq == nil
}

// Empty returns true if the sequence holds no expression at all.
func (seq ExprSeq) Empty() bool {
	return seq.expr == nil
}

// First returns the first expression of a sequence, together with a
// sequence successor.
func (seq ExprSeq) First() (*Expr, ExprSeq) {
	return seq.expr, seq
}

// Next returns the next expression of a sequence, or nil at the end.
func (seq *ExprSeq) Next() *Expr {
	if seq.Done() {
		return nil
	}
	next := seq.seq()
	seq.expr = next.expr
	if seq.expr == nil {
		seq.seq = nil
	} else {
		seq.seq = next.seq
	}
	return seq.expr
}

// List returns all the expressions of a sequence as an instantiated slice.
func (seq ExprSeq) List() []*Expr {
	var all []*Expr
	for expr, S := seq.First(); !S.Done() && expr != nil; expr = S.Next() {
		all = append(all, expr)
	}
	return all
}

// --- Depth-bounded enumeration ---------------------------------------------

// EnumCache memoizes enumeration levels by (depth, LHS), shared across one
// whole enumeration call. Overlapping type/depth subproblems requested by
// different parent rules are computed once; without this the cost is
// exponential in the number of distinct rule/type pairs, not merely in
// depth.
//
// A cache must not be shared across concurrently running enumerations; one
// cache belongs to one top-level call.
type EnumCache struct {
	levels map[cacheKey]*arraylist.List
}

type cacheKey struct {
	depth int
	lhs   altk.Typ
}

// NewEnumCache creates an empty enumeration cache.
func NewEnumCache() *EnumCache {
	return &EnumCache{levels: make(map[cacheKey]*arraylist.List)}
}

// Enumerate lazily produces every expression derivable under lhs at
// derivation depth 0 … depth-1, depth ascending. An empty lhs defaults to
// the grammar's start symbol. Without a uniqueness pass every structurally
// distinct tree is yielded exactly once per depth; structurally distinct
// but semantically equal trees at different depths are not deduplicated.
//
// With a uniqueness pass, every freshly built candidate is gated before
// being cached or yielded (see Uniqueness).
func (g *Grammar) Enumerate(depth int, lhs altk.Typ, uniq *Uniqueness) ExprSeq {
	if lhs == "" {
		lhs = g.start
	}
	cache := NewEnumCache()
	d := 0
	var level ExprSeq
	levelDone := true
	var S exprGenerator
	S = func() ExprSeq {
		for {
			if levelDone {
				if d >= depth {
					return ExprSeq{nil, nil}
				}
				level = seqOf(g.enumerateAtDepth(d, lhs, uniq, cache))
				levelDone = false
				d++
				if level.expr != nil {
					return ExprSeq{level.expr, S}
				}
				levelDone = true
				continue
			}
			if expr := level.Next(); expr != nil {
				return ExprSeq{expr, S}
			}
			levelDone = true
		}
	}
	return S()
}

// EnumerateAtDepth produces every expression derivable under lhs at
// exactly the given derivation depth. The cache may be shared across
// several calls belonging to one logical enumeration; passing nil creates
// a private one.
func (g *Grammar) EnumerateAtDepth(depth int, lhs altk.Typ, uniq *Uniqueness, cache *EnumCache) ExprSeq {
	if lhs == "" {
		lhs = g.start
	}
	if cache == nil {
		cache = NewEnumCache()
	}
	return seqOf(g.enumerateAtDepth(depth, lhs, uniq, cache))
}

// enumerateAtDepth is the combinatorial core. Depth 0 yields one leaf per
// terminal rule under lhs. Depth d>0 considers every non-terminal rule
// under lhs and every assignment of per-child depths in [0, d-1] such that
// at least one child sits at exactly d-1, which guarantees the parent
// lands at exactly d, never shallower, and emits one parent per element
// of the cross product of the memoized child levels.
// An exhausted key budget on the uniqueness store (see GetUniqueExpressions)
// halts emission mid-level; truncated levels never enter the memo.
func (g *Grammar) enumerateAtDepth(depth int, lhs altk.Typ, uniq *Uniqueness, cache *EnumCache) *arraylist.List {
	if uniq != nil && uniq.saturated() {
		return arraylist.New()
	}
	key := cacheKey{depth: depth, lhs: lhs}
	if level, ok := cache.levels[key]; ok {
		return level
	}
	level := arraylist.New()
	emit := func(rule Rule, children []*Expr) bool {
		expr := newExpr(rule, children)
		if uniq == nil || uniq.add(lhs, expr) {
			level.Add(expr)
		}
		return uniq == nil || !uniq.saturated()
	}
	if depth == 0 {
		g.eachRule(lhs, func(rule Rule) bool {
			if !rule.IsTerminal() {
				return true
			}
			return emit(rule, nil)
		})
	} else {
		g.eachRule(lhs, func(rule Rule) bool {
			if rule.IsTerminal() { // terminal rules cannot reach depth > 0
				return true
			}
			arity := len(rule.RHS)
			return forEachDepthAssignment(depth, arity, func(childDepths []int) bool {
				levels := make([]*arraylist.List, arity)
				for i, childDepth := range childDepths {
					levels[i] = g.enumerateAtDepth(childDepth, rule.RHS[i], uniq, cache)
					if levels[i].Size() == 0 { // no derivation for this child at this depth
						return uniq == nil || !uniq.saturated()
					}
				}
				return forEachCombination(levels, func(children []*Expr) bool {
					return emit(rule, children)
				})
			})
		})
	}
	if uniq == nil || !uniq.saturated() {
		cache.levels[key] = level
	}
	tracer().Debugf("enumerated %d expressions of type %q at depth %d", level.Size(), lhs, depth)
	return level
}

// forEachDepthAssignment enumerates every vector in [0, depth-1]^arity
// whose maximum is exactly depth-1, in odometer order with the last
// position moving fastest. f returning false aborts the walk; the return
// value reports whether the walk ran to completion.
func forEachDepthAssignment(depth, arity int, f func(childDepths []int) bool) bool {
	depths := make([]int, arity)
	for {
		max := 0
		for _, d := range depths {
			if d > max {
				max = d
			}
		}
		if max == depth-1 {
			if !f(depths) {
				return false
			}
		}
		i := arity - 1
		for i >= 0 {
			depths[i]++
			if depths[i] < depth {
				break
			}
			depths[i] = 0
			i--
		}
		if i < 0 {
			return true
		}
	}
}

// forEachCombination walks the cross product of the given levels, last
// position moving fastest. All levels are non-empty. f returning false
// aborts the walk; the return value reports whether the walk ran to
// completion.
func forEachCombination(levels []*arraylist.List, f func(children []*Expr) bool) bool {
	idx := make([]int, len(levels))
	children := make([]*Expr, len(levels))
	for {
		for i, level := range levels {
			v, _ := level.Get(idx[i])
			children[i] = v.(*Expr)
		}
		frozen := make([]*Expr, len(children))
		copy(frozen, children)
		if !f(frozen) {
			return false
		}
		i := len(levels) - 1
		for i >= 0 {
			idx[i]++
			if idx[i] < levels[i].Size() {
				break
			}
			idx[i] = 0
			i--
		}
		if i < 0 {
			return true
		}
	}
}
