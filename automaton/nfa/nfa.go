// Package nfa builds a nondeterministic finite automaton from a regex AST
// via Thompson's construction (spec.md §4.2), grounded on
// original_source/Lexical_analyzer/automata/thompson.cpp and nfa.h. States
// live in one owning arena and are referenced by integer index rather than
// pointer, per the "graphs with shared nodes" design note in spec.md §9:
// this breaks the ownership cycles ε-transitions would otherwise create and
// makes state-set identity a matter of comparing sorted integer slices.
package nfa

import "github.com/nihei9/minicc/token"

// StateID indexes into an Automaton's States slice.
type StateID int

// State is one NFA state. Trans maps an input byte to the set of states
// reachable on that byte; Eps holds ε-transitions. Accept is
// token.Invalid for non-accepting states.
type State struct {
	Trans  map[byte][]StateID
	Eps    []StateID
	Accept token.Kind
}

// Automaton is the owning arena for every state built during construction.
// Start is the single NFA start state (spec.md §3: "NFA state... a single
// start state").
type Automaton struct {
	States []*State
	Start  StateID
}

func newAutomaton() *Automaton {
	return &Automaton{}
}

func (a *Automaton) newState() StateID {
	id := StateID(len(a.States))
	a.States = append(a.States, &State{
		Trans:  map[byte][]StateID{},
		Accept: token.Invalid,
	})
	return id
}

func (a *Automaton) addByteTrans(from StateID, b byte, to StateID) {
	s := a.States[from]
	s.Trans[b] = append(s.Trans[b], to)
}

func (a *Automaton) addEps(from, to StateID) {
	a.States[from].Eps = append(a.States[from].Eps, to)
}

// Fragment is a piece of NFA under construction: a start state and an
// accept state, not yet wired into a larger automaton (NFA{start, accept}
// in the original source).
type Fragment struct {
	Start  StateID
	Accept StateID
}
