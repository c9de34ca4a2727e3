package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGetUniqueExpressionsBoolean(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	// over one referent every Boolean expression denotes true or false,
	// so canonicalization must collapse the space to exactly two keys
	g := boolGrammar(t)
	u := singletonUniverse(t)
	unique := g.GetUniqueExpressions(3, MeaningKey(u), SizeBetter, "", 0)
	if len(unique) != 2 {
		t.Fatalf("expected 2 semantic classes, got %d", len(unique))
	}
	for key, expr := range unique {
		if expr.Size() != 1 {
			t.Errorf("class %q: expected a minimal leaf survivor, got %q (size %d)",
				key, expr.String(), expr.Size())
		}
	}
}

func TestUniquenessMinimality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	// not(True) and and(False, x) all denote false; only the plain False
	// leaf may survive under SizeBetter
	g := boolGrammar(t)
	u := singletonUniverse(t)
	unique := g.GetUniqueExpressions(4, MeaningKey(u), SizeBetter, "", 0)
	for _, expr := range unique {
		if expr.String() != "True" && expr.String() != "False" {
			t.Errorf("non-minimal survivor %q", expr.String())
		}
	}
}

func TestUniquenessFirstWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	// True and False share size 1; with a constant key they tie, and the
	// earlier-registered True must survive
	g := boolGrammar(t)
	constKey := func(e *Expr) string { return "k" }
	unique := g.GetUniqueExpressions(1, constKey, SizeBetter, "", 0)
	if len(unique) != 1 {
		t.Fatalf("expected a single survivor, got %d", len(unique))
	}
	if unique["k"].String() != "True" {
		t.Errorf("tie not resolved first-wins: survivor is %q", unique["k"].String())
	}
}

func TestUniquenessGatesEnumeration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	// the gate prunes while enumerating, so a uniqueness-filtered run must
	// yield far fewer expressions than the raw space
	g := boolGrammar(t)
	u := singletonUniverse(t)
	uniq := NewUniqueness(MeaningKey(u), nil)
	yielded := len(g.Enumerate(3, "", uniq).List())
	raw := len(g.Enumerate(3, "", nil).List())
	if yielded >= raw {
		t.Errorf("uniqueness pass did not prune: %d yielded of %d raw", yielded, raw)
	}
	if uniq.Count("bool") != 2 {
		t.Errorf("expected 2 distinct keys, got %d", uniq.Count("bool"))
	}
}

func TestGetUniqueExpressionsMaxSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	g := boolGrammar(t)
	u := singletonUniverse(t)
	unique := g.GetUniqueExpressions(3, MeaningKey(u), SizeBetter, "", 1)
	if len(unique) != 1 {
		t.Errorf("expected early stop at 1 key, got %d surviving keys", len(unique))
	}
}

func TestGetUniqueExpressionsMaxSizeStopsPerExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	// the stop must take effect mid-level: with a budget of 1 the very
	// first candidate fills it, and no further candidate may be gated
	g := boolGrammar(t)
	u := singletonUniverse(t)
	gated := 0
	key := MeaningKey(u)
	counting := func(e *Expr) string {
		gated++
		return key(e)
	}
	unique := g.GetUniqueExpressions(3, counting, SizeBetter, "", 1)
	if len(unique) != 1 {
		t.Fatalf("expected 1 surviving key, got %d", len(unique))
	}
	if gated != 1 {
		t.Errorf("expected gating to stop after the first candidate, gated %d", gated)
	}
	if unique[key(mustParse(t, g, "True"))].String() != "True" {
		t.Errorf("expected the first enumerated expression to survive, got %v", unique)
	}
}

func mustParse(t *testing.T, g *Grammar, input string) *Expr {
	expr, err := g.Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	return expr
}

func TestUniquenessZeroValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	// a caller-constructed store with only Key set must work; Better
	// defaults to SizeBetter
	g := boolGrammar(t)
	u := singletonUniverse(t)
	uniq := &Uniqueness{Key: MeaningKey(u)}
	g.Enumerate(3, "", uniq).List()
	if uniq.Count("bool") != 2 {
		t.Fatalf("expected 2 distinct keys, got %d", uniq.Count("bool"))
	}
	for _, expr := range uniq.Expressions("bool") {
		if expr.Size() != 1 {
			t.Errorf("expected minimal leaf survivors, got %q", expr.String())
		}
	}
}

func TestNewUniquenessDefaultsToSizeBetter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	g := boolGrammar(t)
	uniq := NewUniqueness(func(e *Expr) string { return "k" }, nil)
	big, err := g.Parse("not(not(True))")
	if err != nil {
		t.Fatal(err)
	}
	small, err := g.Parse("True")
	if err != nil {
		t.Fatal(err)
	}
	if !uniq.add("bool", big) {
		t.Error("first candidate must always be accepted")
	}
	if !uniq.add("bool", small) {
		t.Error("strictly smaller candidate must replace the stored one")
	}
	if uniq.add("bool", big) {
		t.Error("larger candidate must be discarded")
	}
	if uniq.Expressions("bool")["k"] != small {
		t.Error("expected the small expression to survive")
	}
}
