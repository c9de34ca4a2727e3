package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CLMBRs/altk"
)

// FuncRegistry maps function names to callables for declarative grammar
// files. Grammar files cannot carry executable code; every rule's `func`
// entry is resolved against a registry the caller supplies explicitly.
type FuncRegistry map[string]Func

// LoaderOption configures declarative grammar loading.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	funcs  FuncRegistry
	opaque bool
}

// WithFuncs supplies the function registry rule entries resolve against.
// Passing a registry is the explicit opt-in for binding behavior to a
// grammar file.
func WithFuncs(reg FuncRegistry) LoaderOption {
	return func(cfg *loaderConfig) {
		cfg.funcs = reg
	}
}

// WithOpaqueFuncs allows rules whose function is not registered. Such
// grammars support purely structural work (parsing, enumeration,
// generation), while calling one of their expressions yields an error
// value.
func WithOpaqueFuncs() LoaderOption {
	return func(cfg *loaderConfig) {
		cfg.opaque = true
	}
}

// grammarYAML is the declarative grammar file format:
//
//	start: bool
//	rules:
//	  - name: "and"
//	    lhs: bool
//	    rhs: [bool, bool]
//	    func: "and"
//	    weight: 2
//	  - name: "true"
//	    lhs: bool
//	    func: "true"
//
// A missing or empty rhs marks a terminal rule. The func entry names a
// callable in the caller-supplied registry and defaults to the rule name.
type grammarYAML struct {
	Start string     `yaml:"start"`
	Rules []ruleYAML `yaml:"rules"`
}

type ruleYAML struct {
	Name   string   `yaml:"name"`
	LHS    string   `yaml:"lhs"`
	RHS    []string `yaml:"rhs"`
	Func   string   `yaml:"func"`
	Weight float64  `yaml:"weight"`
}

// GrammarFromYAML builds a grammar from a declarative YAML document.
func GrammarFromYAML(data []byte, opts ...LoaderOption) (*Grammar, error) {
	cfg := loaderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	var doc grammarYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed grammar file: %w", err)
	}
	if doc.Start == "" {
		return nil, fmt.Errorf("grammar file lacks a start symbol")
	}
	g := NewGrammar(altk.Typ(doc.Start))
	for _, entry := range doc.Rules {
		rule, err := cfg.rule(entry)
		if err != nil {
			return nil, err
		}
		if err := g.AddRule(rule); err != nil {
			return nil, err
		}
	}
	tracer().Infof("loaded grammar with %d rules, start symbol %q", g.RuleCount(), g.Start())
	return g, nil
}

// LoadGrammar reads a declarative grammar from a YAML file.
func LoadGrammar(path string, opts ...LoaderOption) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return GrammarFromYAML(data, opts...)
}

func (cfg *loaderConfig) rule(entry ruleYAML) (Rule, error) {
	if entry.Name == "" {
		return Rule{}, fmt.Errorf("grammar file entry lacks a name")
	}
	if entry.LHS == "" {
		return Rule{}, fmt.Errorf("rule %q lacks an lhs", entry.Name)
	}
	fname := entry.Func
	if fname == "" {
		fname = entry.Name
	}
	fn, ok := cfg.funcs[fname]
	if !ok && !cfg.opaque {
		return Rule{}, fmt.Errorf("no function registered for rule %q (missing %q); pass WithFuncs or WithOpaqueFuncs", entry.Name, fname)
	}
	var rhs []altk.Typ
	if len(entry.RHS) > 0 {
		rhs = make([]altk.Typ, len(entry.RHS))
		for i, typ := range entry.RHS {
			rhs[i] = altk.Typ(typ)
		}
	}
	return Rule{
		Name:   entry.Name,
		LHS:    altk.Typ(entry.LHS),
		RHS:    rhs,
		Fn:     fn,
		Weight: entry.Weight,
	}, nil
}
