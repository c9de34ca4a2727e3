package altk

import "fmt"

// --- Semantic type symbols -------------------------------------------------

// Typ is a semantic category symbol, e.g. the type of truth values or of
// entities. Grammar rules are indexed by Typ; no structure is imposed on it
// beyond comparability, so applications are free to choose any naming scheme.
type Typ string

func (t Typ) String() string {
	return string(t)
}

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants
// here, as it is up to scanners to define them (see package grammar for the
// expression-notation token classes).
type TokType int

// Tokens represent input tokens of the expression notation. They are
// produced by a scanner and consumed by the notation parser.
//
// An example would be a token opening a sub-expression:
//
//	TokType = TokOpen      // identifier for this kind of tokens
//	Lexeme  = "and("       // lexeme as it appeared in the input stream
//	Span    = 4…8          // occurred from position 4 in the input stream
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
