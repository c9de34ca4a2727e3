package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func collectForms(seq ExprSeq) []string {
	var forms []string
	for _, expr := range seq.List() {
		forms = append(forms, expr.String())
	}
	return forms
}

func TestEnumerateTinyComplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	g := tinyGrammar(t)
	forms := collectForms(g.Enumerate(2, "", nil))
	want := []string{"True", "False", "not(True)", "not(False)"}
	if len(forms) != len(want) {
		t.Fatalf("expected %d expressions, got %v", len(want), forms)
	}
	for i := range want {
		if forms[i] != want[i] {
			t.Errorf("expression %d: expected %q, got %q", i, want[i], forms[i])
		}
	}
}

func TestEnumerateDepthExactness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	g := tinyGrammar(t)
	for depth, want := range map[int][]string{
		0: {"True", "False"},
		1: {"not(True)", "not(False)"},
		2: {"not(not(True))", "not(not(False))"},
	} {
		seq := g.EnumerateAtDepth(depth, "bool", nil, nil)
		forms := collectForms(seq)
		if len(forms) != len(want) {
			t.Fatalf("depth %d: expected %v, got %v", depth, want, forms)
		}
		for i := range want {
			if forms[i] != want[i] {
				t.Errorf("depth %d, expression %d: expected %q, got %q", depth, i, want[i], forms[i])
			}
		}
	}
}

func TestEnumerateCountsWithBinaryRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	// with terminals T, rules not/1 and and/2:
	//   depth 0: 2
	//   depth 1: not(d0) = 2, and(d0, d0) = 4             ⇒ 6
	//   depth 2: not(d1) = 6,
	//            and with max child depth exactly 1:
	//            (d0,d1) + (d1,d0) + (d1,d1) = 12+12+36   ⇒ 66
	g := boolGrammar(t)
	for depth, want := range map[int]int{0: 2, 1: 6, 2: 66} {
		seq := g.EnumerateAtDepth(depth, "bool", nil, nil)
		if n := len(seq.List()); n != want {
			t.Errorf("depth %d: expected %d expressions, got %d", depth, want, n)
		}
	}
}

func TestEnumerateNoDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	g := boolGrammar(t)
	seen := map[string]bool{}
	for expr, S := g.Enumerate(3, "", nil).First(); !S.Done() && expr != nil; expr = S.Next() {
		if seen[expr.String()] {
			t.Fatalf("expression %q enumerated twice", expr.String())
		}
		seen[expr.String()] = true
	}
	if len(seen) != 2+6+66 {
		t.Errorf("expected %d expressions up to depth 3, got %d", 2+6+66, len(seen))
	}
}

func TestEnumerateDepthAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	g := boolGrammar(t)
	lastDepth := 0
	for expr, S := g.Enumerate(3, "", nil).First(); !S.Done() && expr != nil; expr = S.Next() {
		d := exprDepth(expr)
		if d < lastDepth {
			t.Fatalf("depth order violated: %q at depth %d after depth %d", expr.String(), d, lastDepth)
		}
		lastDepth = d
	}
}

func exprDepth(e *Expr) int {
	if e.IsLeaf() {
		return 0
	}
	max := 0
	for _, child := range e.Children() {
		if d := exprDepth(child); d > max {
			max = d
		}
	}
	return max + 1
}

func TestEnumerateZeroDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	g := boolGrammar(t)
	seq := g.Enumerate(0, "", nil)
	if !seq.Empty() {
		t.Error("expected an empty sequence for depth bound 0")
	}
	if all := seq.List(); len(all) != 0 {
		t.Errorf("expected no expressions, got %d", len(all))
	}
}

func TestEnumerateBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	g := boolGrammar(t)
	count := 0
	for expr, S := g.Enumerate(3, "", nil).First(); !S.Done() && expr != nil; expr = S.Next() {
		count++
		if count == 5 {
			S.Break()
		}
	}
	if count != 5 {
		t.Errorf("expected iteration to stop after 5 expressions, did %d", count)
	}
}

func TestEnumerateSharedCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	g := boolGrammar(t)
	cache := NewEnumCache()
	first := g.EnumerateAtDepth(2, "bool", nil, cache).List()
	second := g.EnumerateAtDepth(2, "bool", nil, cache).List()
	if len(first) != len(second) {
		t.Fatalf("cached re-enumeration differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] { // same *Expr nodes, not merely equal forms
			t.Fatal("expected cached levels to be shared verbatim")
		}
	}
}
