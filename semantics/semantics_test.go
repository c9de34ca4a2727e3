package semantics

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewUniverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.semantics")
	defer teardown()
	//
	u, err := NewUniverse(Atom("a"), Atom("b"), Atom("c"))
	if err != nil {
		t.Fatal(err)
	}
	if u.Size() != 3 {
		t.Errorf("expected 3 referents, got %d", u.Size())
	}
	if ref := u.Referent("b"); ref == nil || ref.Name() != "b" {
		t.Errorf("lookup of referent 'b' failed, got %v", ref)
	}
	if ref := u.Referent("z"); ref != nil {
		t.Errorf("expected nil for unknown referent, got %v", ref)
	}
	names := []string{}
	for _, ref := range u.Referents() {
		names = append(names, ref.Name())
	}
	for i, want := range []string{"a", "b", "c"} {
		if names[i] != want {
			t.Errorf("referent %d: expected %q, got %q", i, want, names[i])
		}
	}
}

func TestNewUniverseDuplicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.semantics")
	defer teardown()
	//
	if _, err := NewUniverse(Atom("a"), Atom("a")); err == nil {
		t.Error("expected duplicate referent names to be rejected")
	}
}

func TestMeaningDigest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.semantics")
	defer teardown()
	//
	m1 := Meaning{"a": true, "b": false}
	m2 := Meaning{"b": false, "a": true} // same content, different insertion order
	m3 := Meaning{"a": true, "b": true}
	if m1.Digest() != m2.Digest() {
		t.Error("digest must not depend on insertion order")
	}
	if m1.Digest() == m3.Digest() {
		t.Error("digest must distinguish different meanings")
	}
}

func TestMeaningValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "altk.semantics")
	defer teardown()
	//
	m := Meaning{"a": 42}
	if v := m.Value(Atom("a")); v != 42 {
		t.Errorf("expected 42, got %v", v)
	}
	if v := m.Value(Atom("z")); v != nil {
		t.Errorf("expected nil for absent referent, got %v", v)
	}
}
