package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/CLMBRs/altk"
	"github.com/CLMBRs/altk/semantics"
)

// KeyFunc computes the semantic key of an expression, e.g. a digest of its
// meaning. Expressions sharing a key are considered equivalent for
// canonicalization.
type KeyFunc func(*Expr) string

// BetterFunc decides which of two expressions sharing a key to keep. It
// must be a strict, transitive, anti-symmetric ordering: true iff a is
// strictly better than b.
type BetterFunc func(a, b *Expr) bool

// SizeBetter is the default ordering for canonicalization: strictly
// smaller size wins.
func SizeBetter(a, b *Expr) bool {
	return a.Size() < b.Size()
}

// MeaningKey returns the default semantic key: the digest of the
// expression's meaning over the given universe.
func MeaningKey(u *semantics.Universe) KeyFunc {
	return func(e *Expr) string {
		return e.Evaluate(u).Digest()
	}
}

// Uniqueness is a canonicalization pass over an enumeration: per (LHS,
// key) only the minimal expression under Better survives. Every freshly
// built candidate is gated before being cached or yielded: if no entry for
// its key exists yet, or Better declares it strictly better than the
// stored one, it replaces the entry and is accepted; otherwise it is
// discarded.
//
// Ties are resolved first-wins: when Better(candidate, stored) is false
// the stored expression stays, so with equal candidates the one earlier in
// enumeration order (rule-registration order, ascending depth) survives.
// This is a deliberate policy, not an accident of traversal.
//
// A Uniqueness store belongs to one top-level enumeration; it must not be
// shared across concurrently running calls. A caller-constructed literal
// with only Key set is usable: a nil Better defaults to SizeBetter.
type Uniqueness struct {
	Key    KeyFunc
	Better BetterFunc
	store  map[altk.Typ]*treemap.Map // key ⇒ *Expr, deterministic key order

	// early-stop key budget, armed by GetUniqueExpressions; 0 = none
	limit    int
	limitLHS altk.Typ
}

// NewUniqueness creates an empty canonicalization pass. A nil better
// defaults to SizeBetter.
func NewUniqueness(key KeyFunc, better BetterFunc) *Uniqueness {
	if better == nil {
		better = SizeBetter
	}
	return &Uniqueness{
		Key:    key,
		Better: better,
		store:  make(map[altk.Typ]*treemap.Map),
	}
}

// add gates one candidate; it reports whether the candidate was accepted.
func (u *Uniqueness) add(lhs altk.Typ, expr *Expr) bool {
	if u.store == nil { // zero-value stores are usable
		u.store = make(map[altk.Typ]*treemap.Map)
	}
	better := u.Better
	if better == nil {
		better = SizeBetter
	}
	bucket, ok := u.store[lhs]
	if !ok {
		bucket = treemap.NewWith(utils.StringComparator)
		u.store[lhs] = bucket
	}
	key := u.Key(expr)
	if stored, ok := bucket.Get(key); ok && !better(expr, stored.(*Expr)) {
		return false
	}
	bucket.Put(key, expr)
	return true
}

// limitKeys arms the early-stop budget: enumeration driven by this store
// halts once n distinct keys exist for lhs.
func (u *Uniqueness) limitKeys(lhs altk.Typ, n int) {
	u.limit = n
	u.limitLHS = lhs
}

// saturated reports whether the armed key budget has been reached.
func (u *Uniqueness) saturated() bool {
	return u.limit > 0 && u.Count(u.limitLHS) >= u.limit
}

// Count returns the number of distinct keys stored for an LHS.
func (u *Uniqueness) Count(lhs altk.Typ) int {
	bucket, ok := u.store[lhs]
	if !ok {
		return 0
	}
	return bucket.Size()
}

// Expressions returns the surviving key ⇒ expression mapping for an LHS.
func (u *Uniqueness) Expressions(lhs altk.Typ) map[string]*Expr {
	out := make(map[string]*Expr)
	bucket, ok := u.store[lhs]
	if !ok {
		return out
	}
	bucket.Each(func(k, v interface{}) {
		out[k.(string)] = v.(*Expr)
	})
	return out
}

// GetUniqueExpressions drives a full enumeration under a uniqueness pass
// and returns only the final surviving key ⇒ expression mapping for lhs
// (empty lhs defaults to the start symbol). The surviving expression per
// key is minimal under better among all expressions generated during the
// run that share the key.
//
// maxSize > 0 stops the enumeration early once that many distinct keys
// exist for lhs, at expression granularity: candidates past the budget are
// neither gated nor cached. maxSize <= 0 means no early stop.
func (g *Grammar) GetUniqueExpressions(depth int, key KeyFunc, better BetterFunc, lhs altk.Typ, maxSize int) map[string]*Expr {
	if lhs == "" {
		lhs = g.start
	}
	uniq := NewUniqueness(key, better)
	if maxSize > 0 {
		uniq.limitKeys(lhs, maxSize)
	}
	for expr, S := g.Enumerate(depth, lhs, uniq).First(); !S.Done() && expr != nil; expr = S.Next() {
		if uniq.saturated() {
			S.Break()
		}
	}
	return uniq.Expressions(lhs)
}
