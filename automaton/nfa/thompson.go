package nfa

import (
	"fmt"

	"github.com/nihei9/minicc/regexast"
	"github.com/nihei9/minicc/token"
)

// Rule is one (token kind, pattern) entry from the lexical rule file,
// already compiled to a regex AST.
type Rule struct {
	Kind    token.Kind
	Pattern *regexast.Node
}

// build runs Thompson's construction over a single regex AST node,
// following the four textbook cases from spec.md §4.2 and
// original_source/Lexical_analyzer/automata/thompson.cpp's buildNFA.
func build(a *Automaton, node *regexast.Node) (Fragment, error) {
	if node == nil {
		return Fragment{}, fmt.Errorf("nfa: nil regex node")
	}

	switch node.Kind {
	case regexast.Char:
		s := a.newState()
		t := a.newState()
		a.addByteTrans(s, node.Byte, t)
		return Fragment{Start: s, Accept: t}, nil

	case regexast.Concat:
		l, err := build(a, node.Left)
		if err != nil {
			return Fragment{}, err
		}
		r, err := build(a, node.Right)
		if err != nil {
			return Fragment{}, err
		}
		a.addEps(l.Accept, r.Start)
		return Fragment{Start: l.Start, Accept: r.Accept}, nil

	case regexast.Union:
		s := a.newState()
		t := a.newState()
		l, err := build(a, node.Left)
		if err != nil {
			return Fragment{}, err
		}
		r, err := build(a, node.Right)
		if err != nil {
			return Fragment{}, err
		}
		a.addEps(s, l.Start)
		a.addEps(s, r.Start)
		a.addEps(l.Accept, t)
		a.addEps(r.Accept, t)
		return Fragment{Start: s, Accept: t}, nil

	case regexast.Star:
		s := a.newState()
		t := a.newState()
		l, err := build(a, node.Left)
		if err != nil {
			return Fragment{}, err
		}
		a.addEps(s, l.Start)
		a.addEps(s, t)
		a.addEps(l.Accept, l.Start)
		a.addEps(l.Accept, t)
		return Fragment{Start: s, Accept: t}, nil

	default:
		return Fragment{}, fmt.Errorf("nfa: unknown regex node kind %v", node.Kind)
	}
}

// BuildMaster produces a single master NFA for the whole rule set: one
// fresh start state with an ε-transition to each per-rule fragment's start,
// and each fragment's accept state tagged with that rule's token kind
// (spec.md §4.2: "A single master NFA"). Rules earlier in the slice win
// ties only insofar as token.Priority breaks them later; construction order
// here doesn't matter for correctness.
func BuildMaster(rules []Rule) (*Automaton, error) {
	a := newAutomaton()
	start := a.newState()
	a.Start = start

	for _, r := range rules {
		frag, err := build(a, r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("nfa: building rule for %v: %w", r.Kind, err)
		}
		a.States[frag.Accept].Accept = r.Kind
		a.addEps(start, frag.Start)
	}

	return a, nil
}
