package semantics

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Referent is a single element of a universe. Implementations may carry
// arbitrary attributes; the engine only relies on a stable name.
type Referent interface {
	Name() string
}

// Atom is a minimal referent: a bare name.
type Atom string

// Name returns the atom itself.
func (a Atom) Name() string {
	return string(a)
}

// --- Universes -------------------------------------------------------------

// A Universe is a finite, ordered collection of referents. It is built once
// and read-only afterwards.
type Universe struct {
	referents []Referent
	index     map[string]Referent
}

// NewUniverse creates a universe from an ordered list of referents.
// Referent names must be unique.
func NewUniverse(referents ...Referent) (*Universe, error) {
	u := &Universe{
		referents: make([]Referent, 0, len(referents)),
		index:     make(map[string]Referent, len(referents)),
	}
	for _, ref := range referents {
		if _, ok := u.index[ref.Name()]; ok {
			return nil, fmt.Errorf("universe already contains a referent named %q", ref.Name())
		}
		u.referents = append(u.referents, ref)
		u.index[ref.Name()] = ref
	}
	tracer().Debugf("created universe with %d referents", len(u.referents))
	return u, nil
}

// Referents returns the referents of the universe, in construction order.
// Callers must not modify the returned slice.
func (u *Universe) Referents() []Referent {
	return u.referents
}

// Size returns the number of referents.
func (u *Universe) Size() int {
	return len(u.referents)
}

// Referent looks up a referent by name; it returns nil for unknown names.
func (u *Universe) Referent(name string) Referent {
	return u.index[name]
}

// --- Meanings --------------------------------------------------------------

// A Meaning maps referent names to the value an expression denotes for them.
// Meanings are created by evaluating an expression over a universe and are
// treated as immutable once exposed.
type Meaning map[string]interface{}

// Value returns the value a meaning assigns to a referent.
func (m Meaning) Value(ref Referent) interface{} {
	return m[ref.Name()]
}

// Digest returns a canonical hash of the meaning, identical for semantically
// equal meanings regardless of evaluation order. It is the default
// uniqueness key for canonicalization.
func (m Meaning) Digest() string {
	// structhash serializes map entries in sorted key order
	return fmt.Sprintf("%x", structhash.Md5(struct {
		V map[string]interface{}
	}{m}, 1))
}
