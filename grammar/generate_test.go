package grammar

import (
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGenerateTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	g := boolGrammar(t)
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		expr, err := g.Generate(rnd)
		if err != nil {
			t.Fatal(err)
		}
		if expr.Size() < 1 {
			t.Fatalf("generated expression of size %d", expr.Size())
		}
		// whatever came out must survive a round trip through notation
		back, err := g.Parse(expr.String())
		if err != nil {
			t.Fatalf("generated expression does not re-parse: %v", err)
		}
		if back.String() != expr.String() {
			t.Errorf("round trip broken for generated %q", expr.String())
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	g := boolGrammar(t)
	a, err := g.Generate(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.Generate(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Errorf("same seed produced %q and %q", a.String(), b.String())
	}
}

func TestGenerateWeights(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	// two terminals only, weighted 3:1
	g := NewGrammar("bool")
	if err := g.AddRule(Rule{Name: "True", LHS: "bool", Fn: constFn(true), Weight: 3}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddRule(Rule{Name: "False", LHS: "bool", Fn: constFn(false), Weight: 1}); err != nil {
		t.Fatal(err)
	}
	rnd := rand.New(rand.NewSource(1))
	const N = 10000
	trues := 0
	for i := 0; i < N; i++ {
		expr, err := g.Generate(rnd)
		if err != nil {
			t.Fatal(err)
		}
		if expr.RuleName() == "True" {
			trues++
		}
	}
	ratio := float64(trues) / N
	if math.Abs(ratio-0.75) > 0.02 {
		t.Errorf("expected True frequency near 0.75, got %f", ratio)
	}
}

func TestGenerateFromUnknownType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.grammar")
	defer teardown()
	//
	g := boolGrammar(t)
	if _, err := g.GenerateFrom(rand.New(rand.NewSource(1)), "int"); err == nil {
		t.Error("expected generation from an unknown type to fail")
	}
}
