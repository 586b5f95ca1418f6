// Package scan drives a minimized DFA over input bytes with a longest-match
// policy, tracking line/column positions (spec.md §4.4), and reads/writes
// the token file both processes of the pipeline share (spec.md §6 "Token
// file format").
package scan

import (
	"io"

	"github.com/nihei9/minicc/automaton/dfa"
	"github.com/nihei9/minicc/automaton/nfa"
	"github.com/nihei9/minicc/lexrule"
	"github.com/nihei9/minicc/regexast"
)

// Compile turns a loaded rule set into a minimized DFA ready to drive a
// Scanner: regex AST per rule (C1 output) -> master NFA via Thompson's
// construction (C2) -> DFA via subset construction (C3) -> minimized DFA
// (C3). This is the wiring spec.md's component table (§2) describes as
// flowing leaf-to-root.
func Compile(rs *lexrule.RuleSet) *dfa.Automaton {
	rules := make([]nfa.Rule, len(rs.Rules))
	for i, r := range rs.Rules {
		rules[i] = nfa.Rule{Kind: r.Kind, Pattern: regexast.Build(r.Pattern)}
	}
	master, err := nfa.BuildMaster(rules)
	if err != nil {
		// Every pattern accepted by lexrule.Load is either a built-in or a
		// literal string; both compile unconditionally in regexast.Build,
		// so BuildMaster cannot fail for input that reached this point.
		panic(err)
	}
	raw := dfa.Build(master)
	return dfa.Minimize(raw)
}

// CompileUnminimized is Compile without the minimization step: it returns
// the raw subset-construction DFA, for comparison against Compile's
// minimized one (the "DFA equivalence under minimization" property, spec.md
// §8).
func CompileUnminimized(rs *lexrule.RuleSet) *dfa.Automaton {
	rules := make([]nfa.Rule, len(rs.Rules))
	for i, r := range rs.Rules {
		rules[i] = nfa.Rule{Kind: r.Kind, Pattern: regexast.Build(r.Pattern)}
	}
	master, err := nfa.BuildMaster(rules)
	if err != nil {
		panic(err)
	}
	return dfa.Build(master)
}

// New reads src fully and returns a Scanner ready to tokenize it with d.
func New(d *dfa.Automaton, src io.Reader) (*Scanner, error) {
	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return &Scanner{dfa: d, buf: buf, line: 1, col: 1}, nil
}
