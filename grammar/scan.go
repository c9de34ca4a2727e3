package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/CLMBRs/altk"
)

// Token classes of the expression notation. The notation knows exactly
// three kinds of input: a name opening a sub-expression, a bare name, and
// the separators closing one (delimiter or closer).
const (
	TokEOF   altk.TokType = -1
	TokOpen  altk.TokType = 1 // name immediately followed by the opener
	TokName  altk.TokType = 2 // bare name
	TokSep   altk.TokType = 3 // delimiter, trailing whitespace absorbed
	TokClose altk.TokType = 4 // closer
)

// Notation configures the delimiters of the textual expression notation.
type Notation struct {
	Opener    string
	Closer    string
	Delimiter string
}

// DefaultNotation is the standard prefix functional notation
// `name(child1, child2, …)`.
var DefaultNotation = Notation{Opener: "(", Closer: ")", Delimiter: ","}

// notationLexer wraps a lexmachine DFA compiled for one notation.
type notationLexer struct {
	lexer *lexmachine.Lexer
}

var defaultLexer *notationLexer
var defaultLexerErr error
var initOnce sync.Once // monitors one-time compilation of the default DFA

// lexerFor returns a lexer for the notation. The default notation is
// compiled exactly once; custom notations are compiled on demand.
func lexerFor(n Notation) (*notationLexer, error) {
	if n == DefaultNotation {
		initOnce.Do(func() {
			defaultLexer, defaultLexerErr = newNotationLexer(n)
		})
		return defaultLexer, defaultLexerErr
	}
	return newNotationLexer(n)
}

// newNotationLexer compiles a DFA for the three token classes of a
// notation. lexmachine matches with maximal munch, so an opening name
// `and(` always wins over the bare name `and`.
func newNotationLexer(n Notation) (*notationLexer, error) {
	if n.Opener == "" || n.Closer == "" || n.Delimiter == "" {
		return nil, fmt.Errorf("notation delimiters may not be empty")
	}
	name := "[^" + charclass(n.Opener+n.Closer+n.Delimiter) + "]+"
	nl := &notationLexer{lexer: lexmachine.NewLexer()}
	nl.lexer.Add([]byte(name+escape(n.Opener)), makeToken(TokOpen))
	nl.lexer.Add([]byte(name), makeToken(TokName))
	nl.lexer.Add([]byte(escape(n.Delimiter)+`( |\t|\n|\r)*`), makeToken(TokSep))
	nl.lexer.Add([]byte(escape(n.Closer)), makeToken(TokClose))
	if err := nl.lexer.Compile(); err != nil {
		tracer().Errorf("error compiling notation DFA: %v", err)
		return nil, err
	}
	return nl, nil
}

// escape escapes every character of a literal for use in a lexmachine
// pattern.
func escape(lit string) string {
	return "\\" + strings.Join(strings.Split(lit, ""), "\\")
}

// charclass escapes every character of a literal for use inside a
// character class.
func charclass(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		b.WriteString("\\")
		b.WriteRune(r)
	}
	return b.String()
}

func makeToken(kind altk.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return notationToken{
			kind:   kind,
			lexeme: string(m.Bytes),
			span:   altk.Span{uint64(m.StartColumn), uint64(m.EndColumn)},
		}, nil
	}
}

// scanner creates a token stream over one input string.
func (nl *notationLexer) scanner(input string) (*notationScanner, error) {
	s, err := nl.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &notationScanner{scanner: s}, nil
}

// notationScanner scans one input, remembering the first scan error.
type notationScanner struct {
	scanner *lexmachine.Scanner
	err     error
}

// NextToken returns the next token of the input, or a TokEOF token at the
// end. Scan errors are recorded and the offending input skipped, in the
// manner of a tolerant scanner; Err surfaces the first one.
func (ns *notationScanner) NextToken() altk.Token {
	tok, err, eof := ns.scanner.Next()
	for err != nil {
		if ns.err == nil {
			ns.err = err
		}
		if ui, is := err.(*machines.UnconsumedInput); is {
			ns.scanner.TC = ui.FailTC
		}
		tok, err, eof = ns.scanner.Next()
	}
	if eof {
		return notationToken{kind: TokEOF}
	}
	return tok.(notationToken)
}

// Err returns the first scan error, if any.
func (ns *notationScanner) Err() error {
	return ns.err
}

// --- Notation tokens -------------------------------------------------------

// notationToken is a very unsophisticated token type for the three
// notation token classes.
type notationToken struct {
	kind   altk.TokType
	lexeme string
	span   altk.Span
}

func (t notationToken) TokType() altk.TokType {
	return t.kind
}

func (t notationToken) Lexeme() string {
	return t.lexeme
}

func (t notationToken) Span() altk.Span {
	return t.span
}
