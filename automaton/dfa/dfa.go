// Package dfa converts an NFA into a deterministic finite automaton via
// subset construction and minimizes it by partition refinement (spec.md
// §4.3), grounded on original_source/Lexical_analyzer/automata/dfa.cpp and
// dfa_min.cpp. As in package nfa, states are arena-indexed integers; a
// DFA-state's identity during construction is its sorted slice of
// contributing NFA state IDs, compared by value rather than hashed (the
// "sorted integer lists" technique from spec.md §9).
package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nihei9/minicc/automaton/nfa"
	"github.com/nihei9/minicc/token"
)

// StateID indexes into an Automaton's States slice.
type StateID int

// State is one DFA state: exactly one destination per input byte, plus an
// accept flag and accept-token kind when accepting (spec.md §3 "DFA
// state"). NFASet is the NFA-state set a state represents; Build fills it in
// and leaves it in place on the states it returns, while minimization
// produces states with NFASet left nil.
type State struct {
	Trans  map[byte]StateID
	Accept bool
	Kind   token.Kind
	NFASet []nfa.StateID
}

// Automaton is the owning arena for a DFA's states.
type Automaton struct {
	States []*State
	Start  StateID
}

func epsilonClosure(a *nfa.Automaton, seed []nfa.StateID) []nfa.StateID {
	seen := map[nfa.StateID]bool{}
	var stack []nfa.StateID
	for _, s := range seed {
		if !seen[s] {
			seen[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.States[s].Eps {
			if !seen[t] {
				seen[t] = true
				stack = append(stack, t)
			}
		}
	}
	out := make([]nfa.StateID, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func move(a *nfa.Automaton, set []nfa.StateID, b byte) []nfa.StateID {
	seen := map[nfa.StateID]bool{}
	var out []nfa.StateID
	for _, s := range set {
		for _, t := range a.States[s].Trans[b] {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

func setKey(set []nfa.StateID) string {
	var b strings.Builder
	for i, s := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	return b.String()
}

// chooseAcceptKind picks the accept kind for a DFA state from the NFA
// states it subsumes: whichever tagged kind has the lowest token.Priority
// (spec.md §3 invariant; §4.3 "choose by lowest numeric priority").
func chooseAcceptKind(a *nfa.Automaton, set []nfa.StateID) (bool, token.Kind) {
	best := token.Invalid
	found := false
	for _, s := range set {
		k := a.States[s].Accept
		if k == token.Invalid {
			continue
		}
		if !found || token.Priority(k) < token.Priority(best) {
			best = k
			found = true
		}
	}
	return found, best
}

// alphabetOf collects every byte that has an outgoing transition from any
// state in set.
func alphabetOf(a *nfa.Automaton, set []nfa.StateID) []byte {
	seen := map[byte]bool{}
	for _, s := range set {
		for b := range a.States[s].Trans {
			seen[b] = true
		}
	}
	out := make([]byte, 0, len(seen))
	for b := range seen {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Build performs subset construction over master, the NFA produced by
// nfa.BuildMaster (spec.md §4.3 "Subset construction").
func Build(master *nfa.Automaton) *Automaton {
	d := &Automaton{}

	startSet := epsilonClosure(master, []nfa.StateID{master.Start})
	byKey := map[string]StateID{}

	newDFAState := func(set []nfa.StateID) StateID {
		id := StateID(len(d.States))
		accept, kind := chooseAcceptKind(master, set)
		d.States = append(d.States, &State{
			Trans:  map[byte]StateID{},
			Accept: accept,
			Kind:   kind,
			NFASet: set,
		})
		byKey[setKey(set)] = id
		return id
	}

	d.Start = newDFAState(startSet)

	worklist := []StateID{d.Start}
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		curSet := d.States[cur].NFASet

		for _, b := range alphabetOf(master, curSet) {
			moved := move(master, curSet, b)
			if len(moved) == 0 {
				continue
			}
			nextSet := epsilonClosure(master, moved)
			key := setKey(nextSet)
			next, ok := byKey[key]
			if !ok {
				next = newDFAState(nextSet)
				worklist = append(worklist, next)
			}
			d.States[cur].Trans[b] = next
		}
	}

	return d
}

// Step looks up the destination of a transition, reporting whether one
// exists (scan.Scanner uses this to detect "transition missing", spec.md
// §4.4 step 4).
func (a *Automaton) Step(s StateID, b byte) (StateID, bool) {
	next, ok := a.States[s].Trans[b]
	return next, ok
}
