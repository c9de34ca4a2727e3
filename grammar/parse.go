package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"strings"

	"github.com/CLMBRs/altk"
)

// ParseError flags malformed expression notation or a reference to a rule
// the grammar does not carry. It is surfaced to the caller and never
// retried.
type ParseError struct {
	Input string    // the full input under parse
	Pos   altk.Span // input run of the offending construct, if known
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Pos.IsNull() {
		return fmt.Sprintf("could not parse %q: %s", e.Input, e.Msg)
	}
	return fmt.Sprintf("could not parse %q at %v: %s", e.Input, e.Pos, e.Msg)
}

func parseError(input string, pos altk.Span, format string, args ...interface{}) *ParseError {
	return &ParseError{Input: input, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// buildNode is the mutable node representation used during parsing. The
// shift/reduce stack grows and attaches buildNodes; only the final
// reduction to a single root freezes them into immutable Exprs. The span
// of a node covers the input run of its whole sub-expression.
type buildNode struct {
	name     string
	span     altk.Span
	children []*buildNode
	open     bool // opened with `name(`, expects children
}

// Parse parses the canonical notation `name(child1, child2, …)` / bare
// `name` into an expression tree, resolving rule names against this
// grammar.
//
// Note that this is not a general-purpose parsing algorithm: parent names
// must be rules of this grammar with matching arity, and child names rules
// for each child.
func (g *Grammar) Parse(input string) (*Expr, error) {
	return g.ParseWith(input, DefaultNotation)
}

// ParseWith parses expression notation with custom delimiters.
//
// The token stream is reduced with a shift/reduce stack: an opening token
// pushes a new partial node, a bare name pushes a completed leaf, and a
// delimiter or closer pops the top node and attaches it as a child of the
// node beneath it.
func (g *Grammar) ParseWith(input string, notation Notation) (*Expr, error) {
	lex, err := lexerFor(notation)
	if err != nil {
		return nil, err
	}
	scan, err := lex.scanner(input)
	if err != nil {
		return nil, err
	}
	var stack []*buildNode
	for tok := scan.NextToken(); tok.TokType() != TokEOF; tok = scan.NextToken() {
		switch tok.TokType() {
		case TokOpen:
			name := strings.TrimSpace(strings.TrimSuffix(tok.Lexeme(), notation.Opener))
			if _, ok := g.rulesByName[name]; !ok {
				return nil, parseError(input, tok.Span(), "no rule named %q", name)
			}
			stack = append(stack, &buildNode{name: name, span: tok.Span(), open: true})
		case TokName:
			name := strings.TrimSpace(tok.Lexeme())
			if name == "" {
				continue
			}
			if _, ok := g.rulesByName[name]; !ok {
				return nil, parseError(input, tok.Span(), "no rule named %q", name)
			}
			stack = append(stack, &buildNode{name: name, span: tok.Span()})
		case TokSep, TokClose:
			// finished a child expression: pop it, attach to the node below
			if len(stack) < 2 {
				return nil, parseError(input, tok.Span(), "unbalanced %q", tok.Lexeme())
			}
			child := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			if !parent.open {
				return nil, parseError(input, parent.span, "leaf %q cannot take children", parent.name)
			}
			parent.children = append(parent.children, child)
			parent.span = parent.span.Extend(child.span).Extend(tok.Span())
		}
	}
	if err := scan.Err(); err != nil {
		return nil, parseError(input, altk.Span{}, "scan error: %v", err)
	}
	if len(stack) != 1 {
		return nil, parseError(input, altk.Span{}, "notation does not reduce to a single expression")
	}
	return g.freeze(input, stack[0])
}

// freeze turns the mutable parse representation into an immutable Expr,
// resolving functions by rule name and enforcing the arity invariant.
func (g *Grammar) freeze(input string, node *buildNode) (*Expr, error) {
	rule, ok := g.rulesByName[node.name]
	if !ok {
		return nil, parseError(input, node.span, "no rule named %q", node.name)
	}
	if err := checkArity(rule, len(node.children)); err != nil {
		return nil, parseError(input, node.span, "%v", err)
	}
	var children []*Expr
	if node.children != nil {
		children = make([]*Expr, len(node.children))
		for i, child := range node.children {
			frozen, err := g.freeze(input, child)
			if err != nil {
				return nil, err
			}
			children[i] = frozen
		}
	}
	return newExpr(rule, children), nil
}
