package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/CLMBRs/altk/grammar"
	"github.com/CLMBRs/altk/semantics"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// tracer traces with key 'altk.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("altk.grammar")
}

// We provide a simple Boolean grammar as a default for parsing, generation
// and enumeration experiments:
//
//	bool ➞ and(bool, bool)  |  or(bool, bool)  |  not(bool)
//	bool ➞ True  |  False
func makeBoolGrammar() *grammar.Grammar {
	b := grammar.NewGrammarBuilder("Boolean", "bool")
	b.LHS("bool").Terminal("True", func(args ...interface{}) interface{} {
		return true
	}).End()
	b.LHS("bool").Terminal("False", func(args ...interface{}) interface{} {
		return false
	}).End()
	b.LHS("bool").Rule("not", func(args ...interface{}) interface{} {
		return !args[0].(bool)
	}).N("bool").End()
	b.LHS("bool").Rule("and", func(args ...interface{}) interface{} {
		return args[0].(bool) && args[1].(bool)
	}).N("bool").N("bool").End()
	b.LHS("bool").Rule("or", func(args ...interface{}) interface{} {
		return args[0].(bool) || args[1].(bool)
	}).N("bool").N("bool").End()
	g, err := b.Grammar()
	if err != nil {
		panic(fmt.Errorf("error creating grammar: %s", err.Error()))
	}
	return g
}

// boolRegistry is the function registry used for grammar files loaded into
// the shell: the usual Boolean connectives plus constants.
func boolRegistry() grammar.FuncRegistry {
	g := makeBoolGrammar()
	reg := grammar.FuncRegistry{}
	for _, rule := range g.GetAllRules() {
		reg[rule.Name] = rule.Fn
	}
	return reg
}

// main starts an interactive CLI ("G.REPL") for grammar exploration: users
// may parse expression notation, generate random expressions, enumerate
// the expression space to a bounded depth, and render expression trees.
//
// It is intended as a sandbox during grammar authoring, before the grammar
// is handed to enumeration pipelines.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	grammarFile := flag.String("grammar", "", "Declarative grammar file (YAML)")
	seed := flag.Int64("seed", 1, "Seed for the :gen command")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to GREPL")
	//
	g := makeBoolGrammar()
	if *grammarFile != "" {
		loaded, err := grammar.LoadGrammar(*grammarFile, grammar.WithFuncs(boolRegistry()), grammar.WithOpaqueFuncs())
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(2)
		}
		g = loaded
	}
	g.Dump() // only visible in debug mode
	universe, err := semantics.NewUniverse(semantics.Atom("w"))
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	repl, err := readline.New("grepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		g:        g,
		repl:     repl,
		rnd:      rand.New(rand.NewSource(*seed)),
		universe: universe,
	}
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	g        *grammar.Grammar
	repl     *readline.Instance
	rnd      *rand.Rand
	universe *semantics.Universe
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.Exec(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
}

// Exec handles one input line: either a colon-command or expression
// notation to parse and evaluate.
func (intp *Intp) Exec(line string) error {
	if !strings.HasPrefix(line, ":") {
		return intp.parseAndShow(line)
	}
	args := strings.Fields(line)
	switch args[0] {
	case ":rules":
		pterm.Info.Println(intp.g.String())
	case ":gen":
		n := 1
		if len(args) > 1 {
			n, _ = strconv.Atoi(args[1])
		}
		for i := 0; i < n; i++ {
			expr, err := intp.g.Generate(intp.rnd)
			if err != nil {
				return err
			}
			pterm.Info.Println(expr.String())
		}
	case ":enum":
		if len(args) < 2 {
			return fmt.Errorf("usage: :enum <depth>")
		}
		depth, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		count := 0
		for expr, S := intp.g.Enumerate(depth, "", nil).First(); !S.Done() && expr != nil; expr = S.Next() {
			pterm.Info.Println(expr.String())
			count++
		}
		pterm.Info.Println(fmt.Sprintf("%d expressions up to depth %d", count, depth))
	case ":unique":
		if len(args) < 2 {
			return fmt.Errorf("usage: :unique <depth>")
		}
		depth, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		unique := intp.g.GetUniqueExpressions(depth, grammar.MeaningKey(intp.universe), grammar.SizeBetter, "", 0)
		for _, expr := range unique {
			pterm.Info.Println(fmt.Sprintf("%s  (size %d)", expr.String(), expr.Size()))
		}
	case ":tree":
		input := strings.TrimSpace(strings.TrimPrefix(line, ":tree"))
		expr, err := intp.g.Parse(input)
		if err != nil {
			return err
		}
		showTree(expr)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func (intp *Intp) parseAndShow(line string) error {
	expr, err := intp.g.Parse(line)
	if err != nil {
		return err
	}
	meaning := expr.Evaluate(intp.universe)
	for _, ref := range intp.universe.Referents() {
		pterm.Info.Println(fmt.Sprintf("%s = %v  (size %d)", expr.String(), meaning.Value(ref), expr.Size()))
	}
	return nil
}

// showTree renders an expression tree on the terminal.
func showTree(expr *grammar.Expr) {
	ll := leveledExpr(expr, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledExpr(expr *grammar.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  expr.RuleName(),
	})
	for _, child := range expr.Children() {
		ll = leveledExpr(child, ll, level+1)
	}
	return ll
}
